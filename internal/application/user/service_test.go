package user

import (
	"context"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"folios/internal/domain/folio"
	"folios/internal/domain/user"
	"folios/internal/shared/errors"
	"folios/internal/shared/logger"
)

type mockUserRepository struct {
	FindAllFunc         func(ctx context.Context) ([]*user.User, error)
	FindByIDFunc        func(ctx context.Context, id int64) (*user.User, error)
	FindByLoginNameFunc func(ctx context.Context, loginName string) (*user.User, error)
	SaveFunc            func(ctx context.Context, u *user.User) error
	UpdateFunc          func(ctx context.Context, u *user.User) error
	DeleteFunc          func(ctx context.Context, id int64) error
	CredentialsFunc     func(ctx context.Context, loginName string) (int64, string, error)
}

func (m *mockUserRepository) FindAll(ctx context.Context) ([]*user.User, error) {
	if m.FindAllFunc != nil {
		return m.FindAllFunc(ctx)
	}
	return nil, nil
}

func (m *mockUserRepository) FindByID(ctx context.Context, id int64) (*user.User, error) {
	if m.FindByIDFunc != nil {
		return m.FindByIDFunc(ctx, id)
	}
	return nil, nil
}

func (m *mockUserRepository) FindByLoginName(ctx context.Context, loginName string) (*user.User, error) {
	if m.FindByLoginNameFunc != nil {
		return m.FindByLoginNameFunc(ctx, loginName)
	}
	return nil, nil
}

func (m *mockUserRepository) Save(ctx context.Context, u *user.User) error {
	if m.SaveFunc != nil {
		return m.SaveFunc(ctx, u)
	}
	return nil
}

func (m *mockUserRepository) Update(ctx context.Context, u *user.User) error {
	if m.UpdateFunc != nil {
		return m.UpdateFunc(ctx, u)
	}
	return nil
}

func (m *mockUserRepository) Delete(ctx context.Context, id int64) error {
	if m.DeleteFunc != nil {
		return m.DeleteFunc(ctx, id)
	}
	return nil
}

func (m *mockUserRepository) Credentials(ctx context.Context, loginName string) (int64, string, error) {
	if m.CredentialsFunc != nil {
		return m.CredentialsFunc(ctx, loginName)
	}
	return 0, "", nil
}

type mockAssignmentRepository struct {
	ListByUserFunc func(ctx context.Context, userID int64) ([]folio.AssignedFolio, error)
}

func (m *mockAssignmentRepository) ListByFolio(ctx context.Context, folioID int64) ([]folio.Assignee, error) {
	return nil, nil
}

func (m *mockAssignmentRepository) ListByUser(ctx context.Context, userID int64) ([]folio.AssignedFolio, error) {
	if m.ListByUserFunc != nil {
		return m.ListByUserFunc(ctx, userID)
	}
	return nil, nil
}

func (m *mockAssignmentRepository) Save(ctx context.Context, a *folio.Assignment) error {
	return nil
}

func (m *mockAssignmentRepository) Delete(ctx context.Context, folioID, userID int64) error {
	return nil
}

type mockHasher struct {
	HashFunc    func(password string) (string, error)
	CompareFunc func(hash, password string) error
}

func (m *mockHasher) Hash(password string) (string, error) {
	if m.HashFunc != nil {
		return m.HashFunc(password)
	}
	return "hashed:" + password, nil
}

func (m *mockHasher) Compare(hash, password string) error {
	if m.CompareFunc != nil {
		return m.CompareFunc(hash, password)
	}
	return nil
}

type noopLogger struct{}

func (noopLogger) Debug(msg string, args ...any)                   {}
func (noopLogger) Info(msg string, args ...any)                    {}
func (noopLogger) Warn(msg string, args ...any)                    {}
func (noopLogger) Error(msg string, args ...any)                   {}
func (l noopLogger) With(args ...any) logger.Interface             { return l }
func (l noopLogger) Named(name string) logger.Interface            { return l }
func (noopLogger) Debugw(msg string, keysAndValues ...interface{}) {}
func (noopLogger) Infow(msg string, keysAndValues ...interface{})  {}
func (noopLogger) Warnw(msg string, keysAndValues ...interface{})  {}
func (noopLogger) Errorw(msg string, keysAndValues ...interface{}) {}

func newTestService(users *mockUserRepository, hasher *mockHasher) *Service {
	return NewService(users, &mockAssignmentRepository{}, hasher, noopLogger{})
}

func TestService_Create(t *testing.T) {
	t.Run("hashes the password before saving", func(t *testing.T) {
		var saved *user.User
		users := &mockUserRepository{
			SaveFunc: func(ctx context.Context, u *user.User) error {
				u.ID = 1
				saved = u
				return nil
			},
		}

		svc := newTestService(users, &mockHasher{})
		u, err := svc.Create(context.Background(), CreateUserCommand{
			FullName:  "Luis Vega",
			LoginName: "lvega",
			Email:     "luis@example.com",
			Password:  "s3cret",
		})

		require.NoError(t, err)
		assert.Equal(t, int64(1), u.ID)
		require.NotNil(t, saved)
		assert.Equal(t, "hashed:s3cret", saved.PasswordHash)
	})

	t.Run("collects missing fields", func(t *testing.T) {
		svc := newTestService(&mockUserRepository{}, &mockHasher{})
		_, err := svc.Create(context.Background(), CreateUserCommand{FullName: "Luis Vega"})

		require.Error(t, err)
		appErr := errors.GetAppError(err)
		require.NotNil(t, appErr)
		assert.Equal(t, errors.ErrorTypeValidation, appErr.Type)
		assert.Equal(t, "login_name, email, password", appErr.Details)
	})

	t.Run("duplicate login surfaces conflict", func(t *testing.T) {
		users := &mockUserRepository{
			SaveFunc: func(ctx context.Context, u *user.User) error {
				return errors.NewConflictError("login name or email already in use")
			},
		}

		svc := newTestService(users, &mockHasher{})
		_, err := svc.Create(context.Background(), CreateUserCommand{
			FullName:  "Luis Vega",
			LoginName: "lvega",
			Email:     "luis@example.com",
			Password:  "s3cret",
		})

		assert.True(t, errors.IsConflictError(err))
	})
}

func TestService_Login(t *testing.T) {
	t.Run("valid credentials", func(t *testing.T) {
		users := &mockUserRepository{
			CredentialsFunc: func(ctx context.Context, loginName string) (int64, string, error) {
				return 1, "stored-hash", nil
			},
			FindByIDFunc: func(ctx context.Context, id int64) (*user.User, error) {
				return &user.User{ID: id, LoginName: "lvega"}, nil
			},
		}
		hasher := &mockHasher{
			CompareFunc: func(hash, password string) error {
				assert.Equal(t, "stored-hash", hash)
				assert.Equal(t, "s3cret", password)
				return nil
			},
		}

		svc := newTestService(users, hasher)
		u, err := svc.Login(context.Background(), "lvega", "s3cret")

		require.NoError(t, err)
		assert.Equal(t, "lvega", u.LoginName)
	})

	t.Run("unknown login and bad password look identical", func(t *testing.T) {
		unknownUsers := &mockUserRepository{
			CredentialsFunc: func(ctx context.Context, loginName string) (int64, string, error) {
				return 0, "", errors.NewNotFoundError("user not found")
			},
		}
		svc := newTestService(unknownUsers, &mockHasher{})
		_, errUnknown := svc.Login(context.Background(), "ghost", "whatever")

		badPassUsers := &mockUserRepository{
			CredentialsFunc: func(ctx context.Context, loginName string) (int64, string, error) {
				return 1, "stored-hash", nil
			},
		}
		hasher := &mockHasher{
			CompareFunc: func(hash, password string) error {
				return errors.NewUnauthorizedError("mismatch")
			},
		}
		svc = newTestService(badPassUsers, hasher)
		_, errBadPass := svc.Login(context.Background(), "lvega", "wrong")

		require.Error(t, errUnknown)
		require.Error(t, errBadPass)
		assert.Equal(t, errUnknown.Error(), errBadPass.Error())
	})

	t.Run("empty credentials rejected", func(t *testing.T) {
		svc := newTestService(&mockUserRepository{}, &mockHasher{})
		_, err := svc.Login(context.Background(), "", "")
		assert.True(t, errors.IsValidationError(err))
	})
}

func TestService_Update_RehashesOnlyWhenPasswordGiven(t *testing.T) {
	stored := &user.User{ID: 1, FullName: "Luis Vega", LoginName: "lvega", PasswordHash: "old-hash"}
	var updated *user.User
	users := &mockUserRepository{
		FindByIDFunc: func(ctx context.Context, id int64) (*user.User, error) {
			u := *stored
			return &u, nil
		},
		UpdateFunc: func(ctx context.Context, u *user.User) error {
			updated = u
			return nil
		},
	}

	svc := newTestService(users, &mockHasher{})

	name := "Luis A. Vega"
	_, err := svc.Update(context.Background(), 1, UpdateUserCommand{FullName: &name})
	require.NoError(t, err)
	assert.Equal(t, "old-hash", updated.PasswordHash)

	password := "newpass"
	_, err = svc.Update(context.Background(), 1, UpdateUserCommand{Password: &password})
	require.NoError(t, err)
	assert.Equal(t, "hashed:newpass", updated.PasswordHash)
}

func TestUser_PasswordHashNeverSerialized(t *testing.T) {
	u := &user.User{ID: 1, FullName: "Luis Vega", LoginName: "lvega", PasswordHash: "top-secret"}

	data, err := json.Marshal(u)
	require.NoError(t, err)
	assert.NotContains(t, string(data), "top-secret")
	assert.NotContains(t, string(data), "password")
}
