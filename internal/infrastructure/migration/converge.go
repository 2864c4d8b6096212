// Package migration brings the active backend's schema to the required
// shape without destructive side effects. It only ever creates what is
// missing; existing tables, indexes, and rows are never touched, so the
// routine can run any number of times, including at every startup.
package migration

import (
	"context"
	"strings"

	"folios/internal/infrastructure/database"
	"folios/internal/shared/constants"
	"folios/internal/shared/logger"
)

// Converge creates missing tables and indexes and seeds the fixed roles.
// Against a fully provisioned database it performs zero writes.
func Converge(ctx context.Context, engine database.Engine, log logger.Interface) error {
	existingTables, err := engine.TableNames(ctx)
	if err != nil {
		return err
	}
	existingIndexes, err := engine.IndexNames(ctx)
	if err != nil {
		return err
	}

	tables := toSet(existingTables)
	indexes := toSet(existingIndexes)

	dialect := engine.Dialect()
	for _, spec := range requiredTables {
		created := false
		if !tables[spec.name] {
			if err := executeDDL(ctx, engine, spec.ddl[dialect]); err != nil {
				return err
			}
			created = true
			log.Infow("created table", "table", spec.name)
		}

		for _, idx := range spec.indexes {
			if indexes[idx.name] {
				continue
			}
			if err := executeDDL(ctx, engine, idx.ddl); err != nil {
				return err
			}
			log.Infow("created index", "index", idx.name)
		}

		if spec.name == "roles" {
			if err := seedRoles(ctx, engine, created, log); err != nil {
				return err
			}
		}
	}

	return nil
}

// Missing returns the required tables absent from the active backend.
func Missing(ctx context.Context, engine database.Engine) ([]string, error) {
	existing, err := engine.TableNames(ctx)
	if err != nil {
		return nil, err
	}
	tables := toSet(existing)

	missing := make([]string, 0)
	for _, spec := range requiredTables {
		if !tables[spec.name] {
			missing = append(missing, spec.name)
		}
	}
	return missing, nil
}

// seedRoles inserts the two fixed roles, but only when the table was just
// created or holds no rows. A populated table is left exactly as found.
func seedRoles(ctx context.Context, engine database.Engine, justCreated bool, log logger.Interface) error {
	if !justCreated {
		res, err := engine.Execute(ctx, `SELECT COUNT(*) AS n FROM roles`)
		if err != nil {
			return err
		}
		if len(res.Rows) > 0 && res.Rows[0].Int64("n") > 0 {
			return nil
		}
	}

	for _, name := range []string{constants.RoleAdministrator, constants.RoleResolver} {
		if _, err := engine.Execute(ctx, `INSERT INTO roles (name) VALUES (?)`, name); err != nil {
			// A concurrent seeder beat us to it; the end state is the same.
			if database.IsConstraintViolation(err) {
				continue
			}
			return err
		}
		log.Infow("seeded role", "name", name)
	}
	return nil
}

// executeDDL runs a create statement, treating "already exists" as success.
// This is the one place an error is deliberately downgraded.
func executeDDL(ctx context.Context, engine database.Engine, ddl string) error {
	if _, err := engine.Execute(ctx, ddl); err != nil {
		if strings.Contains(strings.ToLower(err.Error()), "already exists") {
			return nil
		}
		return err
	}
	return nil
}

func toSet(names []string) map[string]bool {
	set := make(map[string]bool, len(names))
	for _, n := range names {
		set[strings.ToLower(n)] = true
	}
	return set
}
