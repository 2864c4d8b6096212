package usecases

import (
	"context"

	"folios/internal/domain/folio"
	"folios/internal/domain/user"
	"folios/internal/shared/logger"
)

type mockFolioRepository struct {
	FindAllFunc            func(ctx context.Context) ([]*folio.Folio, error)
	FindByIDFunc           func(ctx context.Context, id int64) (*folio.Folio, error)
	FindByPriorityFunc     func(ctx context.Context, priority string) ([]*folio.Folio, error)
	FindByEmployeeCodeFunc func(ctx context.Context, code int) ([]*folio.Folio, error)
	SaveFunc               func(ctx context.Context, f *folio.Folio) error
	UpdateFunc             func(ctx context.Context, f *folio.Folio) error
	DeleteFunc             func(ctx context.Context, id int64) error
}

func (m *mockFolioRepository) FindAll(ctx context.Context) ([]*folio.Folio, error) {
	if m.FindAllFunc != nil {
		return m.FindAllFunc(ctx)
	}
	return nil, nil
}

func (m *mockFolioRepository) FindByID(ctx context.Context, id int64) (*folio.Folio, error) {
	if m.FindByIDFunc != nil {
		return m.FindByIDFunc(ctx, id)
	}
	return nil, nil
}

func (m *mockFolioRepository) FindByPriority(ctx context.Context, priority string) ([]*folio.Folio, error) {
	if m.FindByPriorityFunc != nil {
		return m.FindByPriorityFunc(ctx, priority)
	}
	return nil, nil
}

func (m *mockFolioRepository) FindByEmployeeCode(ctx context.Context, code int) ([]*folio.Folio, error) {
	if m.FindByEmployeeCodeFunc != nil {
		return m.FindByEmployeeCodeFunc(ctx, code)
	}
	return nil, nil
}

func (m *mockFolioRepository) Save(ctx context.Context, f *folio.Folio) error {
	if m.SaveFunc != nil {
		return m.SaveFunc(ctx, f)
	}
	return nil
}

func (m *mockFolioRepository) Update(ctx context.Context, f *folio.Folio) error {
	if m.UpdateFunc != nil {
		return m.UpdateFunc(ctx, f)
	}
	return nil
}

func (m *mockFolioRepository) Delete(ctx context.Context, id int64) error {
	if m.DeleteFunc != nil {
		return m.DeleteFunc(ctx, id)
	}
	return nil
}

type mockAssignmentRepository struct {
	ListByFolioFunc func(ctx context.Context, folioID int64) ([]folio.Assignee, error)
	ListByUserFunc  func(ctx context.Context, userID int64) ([]folio.AssignedFolio, error)
	SaveFunc        func(ctx context.Context, a *folio.Assignment) error
	DeleteFunc      func(ctx context.Context, folioID, userID int64) error
}

func (m *mockAssignmentRepository) ListByFolio(ctx context.Context, folioID int64) ([]folio.Assignee, error) {
	if m.ListByFolioFunc != nil {
		return m.ListByFolioFunc(ctx, folioID)
	}
	return nil, nil
}

func (m *mockAssignmentRepository) ListByUser(ctx context.Context, userID int64) ([]folio.AssignedFolio, error) {
	if m.ListByUserFunc != nil {
		return m.ListByUserFunc(ctx, userID)
	}
	return nil, nil
}

func (m *mockAssignmentRepository) Save(ctx context.Context, a *folio.Assignment) error {
	if m.SaveFunc != nil {
		return m.SaveFunc(ctx, a)
	}
	return nil
}

func (m *mockAssignmentRepository) Delete(ctx context.Context, folioID, userID int64) error {
	if m.DeleteFunc != nil {
		return m.DeleteFunc(ctx, folioID, userID)
	}
	return nil
}

type mockResponseRepository struct {
	ListByFolioFunc func(ctx context.Context, folioID int64) ([]folio.ResponseWithAuthor, error)
	SaveFunc        func(ctx context.Context, r *folio.Response) error
}

func (m *mockResponseRepository) ListByFolio(ctx context.Context, folioID int64) ([]folio.ResponseWithAuthor, error) {
	if m.ListByFolioFunc != nil {
		return m.ListByFolioFunc(ctx, folioID)
	}
	return nil, nil
}

func (m *mockResponseRepository) Save(ctx context.Context, r *folio.Response) error {
	if m.SaveFunc != nil {
		return m.SaveFunc(ctx, r)
	}
	return nil
}

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

type mockLogger struct{}

func (m *mockLogger) Debug(msg string, args ...any)                   {}
func (m *mockLogger) Info(msg string, args ...any)                    {}
func (m *mockLogger) Warn(msg string, args ...any)                    {}
func (m *mockLogger) Error(msg string, args ...any)                   {}
func (m *mockLogger) With(args ...any) logger.Interface               { return m }
func (m *mockLogger) Named(name string) logger.Interface              { return m }
func (m *mockLogger) Debugw(msg string, keysAndValues ...interface{}) {}
func (m *mockLogger) Infow(msg string, keysAndValues ...interface{})  {}
func (m *mockLogger) Warnw(msg string, keysAndValues ...interface{})  {}
func (m *mockLogger) Errorw(msg string, keysAndValues ...interface{}) {}
