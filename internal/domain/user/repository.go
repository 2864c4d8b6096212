package user

import "context"

// Repository provides user persistence. Read methods return users with the
// password hash stripped; Credentials is the single sanctioned path to the
// stored hash.
type Repository interface {
	FindAll(ctx context.Context) ([]*User, error)
	FindByID(ctx context.Context, id int64) (*User, error)
	FindByLoginName(ctx context.Context, loginName string) (*User, error)
	Save(ctx context.Context, u *User) error
	Update(ctx context.Context, u *User) error
	Delete(ctx context.Context, id int64) error
	Credentials(ctx context.Context, loginName string) (id int64, passwordHash string, err error)
}
