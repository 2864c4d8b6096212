package repository

import (
	"context"
	"time"

	"folios/internal/domain/user"
	"folios/internal/infrastructure/database"
	"folios/internal/shared/errors"
)

// userColumns deliberately excludes password_hash; the hash only leaves the
// table through Credentials.
const userColumns = `id, full_name, login_name, email, role_id, plant_id, created_at`

type userRepository struct {
	db database.Engine
}

func NewUserRepository(db database.Engine) user.Repository {
	return &userRepository{db: db}
}

func (r *userRepository) FindAll(ctx context.Context) ([]*user.User, error) {
	res, err := r.db.Execute(ctx,
		`SELECT `+userColumns+` FROM users ORDER BY created_at DESC`)
	if err != nil {
		return nil, err
	}
	users := make([]*user.User, 0, len(res.Rows))
	for _, row := range res.Rows {
		users = append(users, scanUser(row))
	}
	return users, nil
}

func (r *userRepository) FindByID(ctx context.Context, id int64) (*user.User, error) {
	res, err := r.db.Execute(ctx,
		`SELECT `+userColumns+` FROM users WHERE id = ?`, id)
	if err != nil {
		return nil, err
	}
	if len(res.Rows) == 0 {
		return nil, errors.NewNotFoundError("user not found")
	}
	return scanUser(res.Rows[0]), nil
}

func (r *userRepository) FindByLoginName(ctx context.Context, loginName string) (*user.User, error) {
	res, err := r.db.Execute(ctx,
		`SELECT `+userColumns+` FROM users WHERE login_name = ?`, loginName)
	if err != nil {
		return nil, err
	}
	if len(res.Rows) == 0 {
		return nil, errors.NewNotFoundError("user not found")
	}
	return scanUser(res.Rows[0]), nil
}

func (r *userRepository) Save(ctx context.Context, u *user.User) error {
	if u.CreatedAt.IsZero() {
		u.CreatedAt = time.Now().UTC()
	}

	res, err := r.db.Execute(ctx,
		`INSERT INTO users (full_name, login_name, email, password_hash, role_id, plant_id, created_at)
		 VALUES (?, ?, ?, ?, ?, ?, ?)`,
		u.FullName,
		u.LoginName,
		u.Email,
		u.PasswordHash,
		nullableInt(u.RoleID),
		nullableInt(u.PlantID),
		database.FormatTime(u.CreatedAt),
	)
	if err != nil {
		if database.IsConstraintViolation(err) {
			return errors.NewConflictError("login name or email already in use")
		}
		return err
	}
	if res.GeneratedID != nil {
		u.ID = *res.GeneratedID
	}
	u.PasswordHash = ""
	return nil
}

func (r *userRepository) Update(ctx context.Context, u *user.User) error {
	var res *database.Result
	var err error

	// The hash is only rewritten when the caller supplies a new one.
	if u.PasswordHash != "" {
		res, err = r.db.Execute(ctx,
			`UPDATE users SET full_name = ?, login_name = ?, email = ?, password_hash = ?, role_id = ?, plant_id = ? WHERE id = ?`,
			u.FullName, u.LoginName, u.Email, u.PasswordHash, nullableInt(u.RoleID), nullableInt(u.PlantID), u.ID)
	} else {
		res, err = r.db.Execute(ctx,
			`UPDATE users SET full_name = ?, login_name = ?, email = ?, role_id = ?, plant_id = ? WHERE id = ?`,
			u.FullName, u.LoginName, u.Email, nullableInt(u.RoleID), nullableInt(u.PlantID), u.ID)
	}
	if err != nil {
		if database.IsConstraintViolation(err) {
			return errors.NewConflictError("login name or email already in use")
		}
		return err
	}
	if res.AffectedRows == 0 {
		return errors.NewNotFoundError("user not found")
	}
	u.PasswordHash = ""
	return nil
}

func (r *userRepository) Delete(ctx context.Context, id int64) error {
	res, err := r.db.Execute(ctx, `DELETE FROM users WHERE id = ?`, id)
	if err != nil {
		return err
	}
	if res.AffectedRows == 0 {
		return errors.NewNotFoundError("user not found")
	}
	return nil
}

func (r *userRepository) Credentials(ctx context.Context, loginName string) (int64, string, error) {
	res, err := r.db.Execute(ctx,
		`SELECT id, password_hash FROM users WHERE login_name = ?`, loginName)
	if err != nil {
		return 0, "", err
	}
	if len(res.Rows) == 0 {
		return 0, "", errors.NewNotFoundError("user not found")
	}
	row := res.Rows[0]
	return row.Int64("id"), row.String("password_hash"), nil
}

func scanUser(row database.Row) *user.User {
	return &user.User{
		ID:        row.Int64("id"),
		FullName:  row.String("full_name"),
		LoginName: row.String("login_name"),
		Email:     row.String("email"),
		RoleID:    row.NullInt64("role_id"),
		PlantID:   row.NullInt64("plant_id"),
		CreatedAt: row.Time("created_at"),
	}
}

func nullableInt(v *int64) any {
	if v == nil {
		return nil
	}
	return *v
}
