package role

import "context"

type Repository interface {
	FindAll(ctx context.Context) ([]*Role, error)
	FindByID(ctx context.Context, id int64) (*Role, error)
	Save(ctx context.Context, r *Role) error
	Update(ctx context.Context, r *Role) error
	Delete(ctx context.Context, id int64) error
}
