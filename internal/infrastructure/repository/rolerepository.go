package repository

import (
	"context"

	"folios/internal/domain/role"
	"folios/internal/infrastructure/database"
	"folios/internal/shared/errors"
)

type roleRepository struct {
	db database.Engine
}

func NewRoleRepository(db database.Engine) role.Repository {
	return &roleRepository{db: db}
}

func (r *roleRepository) FindAll(ctx context.Context) ([]*role.Role, error) {
	res, err := r.db.Execute(ctx, `SELECT id, name FROM roles ORDER BY id`)
	if err != nil {
		return nil, err
	}
	roles := make([]*role.Role, 0, len(res.Rows))
	for _, row := range res.Rows {
		roles = append(roles, &role.Role{ID: row.Int64("id"), Name: row.String("name")})
	}
	return roles, nil
}

func (r *roleRepository) FindByID(ctx context.Context, id int64) (*role.Role, error) {
	res, err := r.db.Execute(ctx, `SELECT id, name FROM roles WHERE id = ?`, id)
	if err != nil {
		return nil, err
	}
	if len(res.Rows) == 0 {
		return nil, errors.NewNotFoundError("role not found")
	}
	return &role.Role{ID: res.Rows[0].Int64("id"), Name: res.Rows[0].String("name")}, nil
}

func (r *roleRepository) Save(ctx context.Context, rl *role.Role) error {
	res, err := r.db.Execute(ctx, `INSERT INTO roles (name) VALUES (?)`, rl.Name)
	if err != nil {
		if database.IsConstraintViolation(err) {
			return errors.NewConflictError("role name already exists")
		}
		return err
	}
	if res.GeneratedID != nil {
		rl.ID = *res.GeneratedID
	}
	return nil
}

func (r *roleRepository) Update(ctx context.Context, rl *role.Role) error {
	res, err := r.db.Execute(ctx, `UPDATE roles SET name = ? WHERE id = ?`, rl.Name, rl.ID)
	if err != nil {
		if database.IsConstraintViolation(err) {
			return errors.NewConflictError("role name already exists")
		}
		return err
	}
	if res.AffectedRows == 0 {
		return errors.NewNotFoundError("role not found")
	}
	return nil
}

func (r *roleRepository) Delete(ctx context.Context, id int64) error {
	res, err := r.db.Execute(ctx, `DELETE FROM roles WHERE id = ?`, id)
	if err != nil {
		return err
	}
	if res.AffectedRows == 0 {
		return errors.NewNotFoundError("role not found")
	}
	return nil
}
