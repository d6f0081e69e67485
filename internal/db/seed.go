package db

import (
	"context"
	"strings"

	"github.com/jackc/pgx/v5/pgxpool"

	"aprendiz/internal/auth"
	"aprendiz/internal/domain/configset"
	"aprendiz/internal/domain/evaluation"
	"aprendiz/internal/platform/config"
)

// Seed is idempotent: it ensures the admin user, the built-in questionnaire
// revisions (revision 1 active) and the default configuration lists exist.
func Seed(ctx context.Context, pool *pgxpool.Pool, cfg config.Config) error {
	if err := ensureAdminUser(ctx, pool, cfg.SeedAdminEmail, cfg.SeedAdminPassword); err != nil {
		return err
	}
	if err := ensureQuestionnaires(ctx, pool); err != nil {
		return err
	}
	return ensureConfigLists(ctx, pool)
}

func ensureAdminUser(ctx context.Context, pool *pgxpool.Pool, email, password string) error {
	email = strings.ToLower(strings.TrimSpace(email))
	if email == "" || password == "" {
		return nil
	}

	var exists bool
	if err := pool.QueryRow(ctx, "SELECT EXISTS (SELECT 1 FROM users WHERE email = $1)", email).Scan(&exists); err != nil {
		return err
	}
	if exists {
		return nil
	}

	hash, err := auth.HashPassword(password)
	if err != nil {
		return err
	}
	_, err = pool.Exec(ctx, `
		INSERT INTO users (email, password_hash, role)
		VALUES ($1, $2, $3)
	`, email, hash, auth.RoleAdmin)
	return err
}

func ensureQuestionnaires(ctx context.Context, pool *pgxpool.Pool) error {
	var count int
	if err := pool.QueryRow(ctx, "SELECT COUNT(1) FROM questionnaires").Scan(&count); err != nil {
		return err
	}
	if count > 0 {
		return nil
	}

	store := evaluation.NewStore(pool)
	for i, q := range evaluation.BuiltinRevisions() {
		if err := store.Upsert(ctx, q, i == 0); err != nil {
			return err
		}
	}
	return nil
}

func ensureConfigLists(ctx context.Context, pool *pgxpool.Pool) error {
	defaults := map[string][]string{
		configset.ListSectors:     {"Produção", "Logística", "Administrativo"},
		configset.ListSupervisors: {},
		configset.ListCompanies:   {},
	}
	store := configset.NewStore(pool)
	for list, names := range defaults {
		existing, err := store.Items(ctx, list)
		if err != nil {
			return err
		}
		if len(existing) > 0 {
			continue
		}
		for _, name := range names {
			if err := store.Add(ctx, list, name); err != nil {
				return err
			}
		}
	}
	return nil
}
