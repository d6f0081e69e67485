package employee

import (
	"context"
	"errors"
	"strings"
)

type Service struct {
	Store *Store
}

func NewService(store *Store) *Service {
	return &Service{Store: store}
}

// List returns every employee with the derived total pay filled in.
func (s *Service) List(ctx context.Context) ([]Employee, error) {
	employees, err := s.Store.List(ctx)
	if err != nil {
		return nil, err
	}
	components, err := s.Store.Components(ctx)
	if err != nil {
		return nil, err
	}
	for i := range employees {
		employees[i].TotalPay = TotalPay(employees[i].BaseSalary, employees[i].Additions, components)
	}
	return employees, nil
}

func (s *Service) ByRegistration(ctx context.Context, registration string) (Employee, error) {
	emp, err := s.Store.ByRegistration(ctx, registration)
	if err != nil {
		return Employee{}, err
	}
	components, err := s.Store.Components(ctx)
	if err != nil {
		return Employee{}, err
	}
	emp.TotalPay = TotalPay(emp.BaseSalary, emp.Additions, components)
	return emp, nil
}

func (s *Service) Save(ctx context.Context, emp Employee) (Employee, error) {
	if err := validate(emp); err != nil {
		return Employee{}, err
	}
	created, err := s.Store.Create(ctx, emp)
	if errors.Is(err, ErrDuplicate) {
		// the SPA sends addEmployee/updateEmployee through the same form;
		// an existing registration means update
		if err := s.Store.Update(ctx, emp); err != nil {
			return Employee{}, err
		}
		return s.Store.ByRegistration(ctx, emp.Registration)
	}
	return created, err
}

func (s *Service) Update(ctx context.Context, emp Employee) error {
	if err := validate(emp); err != nil {
		return err
	}
	return s.Store.Update(ctx, emp)
}

func (s *Service) Delete(ctx context.Context, registration string) error {
	return s.Store.Delete(ctx, registration)
}

func (s *Service) Components(ctx context.Context) ([]PayComponent, error) {
	return s.Store.Components(ctx)
}

func (s *Service) AddComponent(ctx context.Context, component PayComponent) error {
	if strings.TrimSpace(component.Name) == "" {
		return errors.New("component name is required")
	}
	if component.Kind != ComponentAddition && component.Kind != ComponentDiscount {
		return errors.New("component kind must be addition or discount")
	}
	if component.Amount < 0 {
		return errors.New("component amount must not be negative")
	}
	return s.Store.AddComponent(ctx, component)
}

func (s *Service) RemoveComponent(ctx context.Context, kind, name string) error {
	return s.Store.RemoveComponent(ctx, kind, name)
}

func validate(emp Employee) error {
	if strings.TrimSpace(emp.Registration) == "" {
		return errors.New("registration is required")
	}
	if strings.TrimSpace(emp.Name) == "" {
		return errors.New("name is required")
	}
	if emp.BaseSalary < 0 {
		return errors.New("base salary must not be negative")
	}
	return nil
}
