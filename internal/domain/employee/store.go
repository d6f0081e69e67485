package employee

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
)

var (
	ErrNotFound  = errors.New("employee not found")
	ErrDuplicate = errors.New("registration already exists")
)

type Store struct {
	DB *pgxpool.Pool
}

func NewStore(db *pgxpool.Pool) *Store {
	return &Store{DB: db}
}

func (s *Store) Create(ctx context.Context, emp Employee) (Employee, error) {
	emp.ID = uuid.NewString()
	_, err := s.DB.Exec(ctx, `
		INSERT INTO employees (id, registration, name, sector, company, base_salary, additions, discounts, admission_date, termination_date)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
	`, emp.ID, emp.Registration, emp.Name, emp.Sector, emp.Company, emp.BaseSalary, emp.Additions, emp.Discounts,
		nullableDate(emp.AdmissionDate), nullableDate(emp.TerminationDate))
	if isUniqueViolation(err) {
		return Employee{}, ErrDuplicate
	}
	if err != nil {
		return Employee{}, fmt.Errorf("create employee: %w", err)
	}
	return emp, nil
}

func (s *Store) Update(ctx context.Context, emp Employee) error {
	tag, err := s.DB.Exec(ctx, `
		UPDATE employees
		SET name = $2, sector = $3, company = $4, base_salary = $5, additions = $6, discounts = $7,
		    admission_date = $8, termination_date = $9, updated_at = now()
		WHERE registration = $1
	`, emp.Registration, emp.Name, emp.Sector, emp.Company, emp.BaseSalary, emp.Additions, emp.Discounts,
		nullableDate(emp.AdmissionDate), nullableDate(emp.TerminationDate))
	if err != nil {
		return fmt.Errorf("update employee: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

func (s *Store) Delete(ctx context.Context, registration string) error {
	tag, err := s.DB.Exec(ctx, "DELETE FROM employees WHERE registration = $1", registration)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

func (s *Store) ByRegistration(ctx context.Context, registration string) (Employee, error) {
	row := s.DB.QueryRow(ctx, `
		SELECT id, registration, name, sector, company, base_salary, additions, discounts,
		       COALESCE(admission_date, '0001-01-01'), COALESCE(termination_date, '0001-01-01')
		FROM employees
		WHERE registration = $1
	`, registration)
	emp, err := scanEmployee(row)
	if errors.Is(err, pgx.ErrNoRows) {
		return Employee{}, ErrNotFound
	}
	return emp, err
}

func (s *Store) List(ctx context.Context) ([]Employee, error) {
	rows, err := s.DB.Query(ctx, `
		SELECT id, registration, name, sector, company, base_salary, additions, discounts,
		       COALESCE(admission_date, '0001-01-01'), COALESCE(termination_date, '0001-01-01')
		FROM employees
		ORDER BY name
	`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var employees []Employee
	for rows.Next() {
		emp, err := scanEmployee(rows)
		if err != nil {
			return nil, err
		}
		employees = append(employees, emp)
	}
	return employees, rows.Err()
}

func (s *Store) Components(ctx context.Context) ([]PayComponent, error) {
	rows, err := s.DB.Query(ctx, "SELECT id, name, kind, amount FROM pay_components ORDER BY kind, name")
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var components []PayComponent
	for rows.Next() {
		var component PayComponent
		if err := rows.Scan(&component.ID, &component.Name, &component.Kind, &component.Amount); err != nil {
			return nil, err
		}
		components = append(components, component)
	}
	return components, rows.Err()
}

func (s *Store) AddComponent(ctx context.Context, component PayComponent) error {
	_, err := s.DB.Exec(ctx, `
		INSERT INTO pay_components (id, name, kind, amount)
		VALUES ($1, $2, $3, $4)
	`, uuid.NewString(), component.Name, component.Kind, component.Amount)
	if isUniqueViolation(err) {
		return ErrDuplicate
	}
	return err
}

func (s *Store) RemoveComponent(ctx context.Context, kind, name string) error {
	tag, err := s.DB.Exec(ctx, "DELETE FROM pay_components WHERE kind = $1 AND lower(name) = lower($2)", kind, name)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

func scanEmployee(row pgx.Row) (Employee, error) {
	var emp Employee
	err := row.Scan(&emp.ID, &emp.Registration, &emp.Name, &emp.Sector, &emp.Company, &emp.BaseSalary,
		&emp.Additions, &emp.Discounts, &emp.AdmissionDate, &emp.TerminationDate)
	return emp, err
}

func nullableDate(value interface{ IsZero() bool }) any {
	if value.IsZero() {
		return nil
	}
	return value
}

func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == "23505"
}
