// Package user implements the application service for staff members.
package user

import (
	"context"
	"strings"

	"folios/internal/domain/folio"
	"folios/internal/domain/user"
	"folios/internal/shared/errors"
	"folios/internal/shared/logger"
)

// PasswordHasher abstracts the hashing scheme so the service never sees
// hashing internals.
type PasswordHasher interface {
	Hash(password string) (string, error)
	Compare(hash, password string) error
}

type CreateUserCommand struct {
	FullName  string
	LoginName string
	Email     string
	Password  string
	RoleID    *int64
	PlantID   *int64
}

type UpdateUserCommand struct {
	FullName  *string
	LoginName *string
	Email     *string
	Password  *string
	RoleID    *int64
	PlantID   *int64
}

type Service struct {
	users       user.Repository
	assignments folio.AssignmentRepository
	hasher      PasswordHasher
	logger      logger.Interface
}

func NewService(
	users user.Repository,
	assignments folio.AssignmentRepository,
	hasher PasswordHasher,
	log logger.Interface,
) *Service {
	return &Service{
		users:       users,
		assignments: assignments,
		hasher:      hasher,
		logger:      log,
	}
}

func (s *Service) List(ctx context.Context) ([]*user.User, error) {
	return s.users.FindAll(ctx)
}

func (s *Service) Get(ctx context.Context, id int64) (*user.User, error) {
	return s.users.FindByID(ctx, id)
}

func (s *Service) Create(ctx context.Context, cmd CreateUserCommand) (*user.User, error) {
	missing := make([]string, 0, 4)
	if cmd.FullName == "" {
		missing = append(missing, "full_name")
	}
	if cmd.LoginName == "" {
		missing = append(missing, "login_name")
	}
	if cmd.Email == "" {
		missing = append(missing, "email")
	}
	if cmd.Password == "" {
		missing = append(missing, "password")
	}
	if len(missing) > 0 {
		return nil, errors.NewValidationError("missing required fields", strings.Join(missing, ", "))
	}

	hash, err := s.hasher.Hash(cmd.Password)
	if err != nil {
		s.logger.Errorw("failed to hash password", "error", err)
		return nil, errors.NewInternalError("failed to create user")
	}

	u := &user.User{
		FullName:     cmd.FullName,
		LoginName:    cmd.LoginName,
		Email:        cmd.Email,
		PasswordHash: hash,
		RoleID:       cmd.RoleID,
		PlantID:      cmd.PlantID,
	}
	if err := s.users.Save(ctx, u); err != nil {
		return nil, err
	}

	s.logger.Infow("user created", "user_id", u.ID, "login_name", u.LoginName)
	return u, nil
}

func (s *Service) Update(ctx context.Context, id int64, cmd UpdateUserCommand) (*user.User, error) {
	u, err := s.users.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if cmd.FullName != nil {
		u.FullName = *cmd.FullName
	}
	if cmd.LoginName != nil {
		u.LoginName = *cmd.LoginName
	}
	if cmd.Email != nil {
		u.Email = *cmd.Email
	}
	if cmd.RoleID != nil {
		u.RoleID = cmd.RoleID
	}
	if cmd.PlantID != nil {
		u.PlantID = cmd.PlantID
	}
	if cmd.Password != nil && *cmd.Password != "" {
		hash, err := s.hasher.Hash(*cmd.Password)
		if err != nil {
			s.logger.Errorw("failed to hash password", "error", err)
			return nil, errors.NewInternalError("failed to update user")
		}
		u.PasswordHash = hash
	}

	if err := s.users.Update(ctx, u); err != nil {
		return nil, err
	}
	return u, nil
}

func (s *Service) Delete(ctx context.Context, id int64) error {
	if err := s.users.Delete(ctx, id); err != nil {
		return err
	}
	s.logger.Infow("user deleted", "user_id", id)
	return nil
}

// Login verifies credentials and returns the sanitized user. Unknown login
// names and bad passwords are indistinguishable to the caller.
func (s *Service) Login(ctx context.Context, loginName, password string) (*user.User, error) {
	if loginName == "" || password == "" {
		return nil, errors.NewValidationError("login name and password are required")
	}

	id, hash, err := s.users.Credentials(ctx, loginName)
	if err != nil {
		if errors.IsNotFoundError(err) {
			return nil, errors.NewUnauthorizedError("invalid credentials")
		}
		return nil, err
	}

	if err := s.hasher.Compare(hash, password); err != nil {
		return nil, errors.NewUnauthorizedError("invalid credentials")
	}

	return s.users.FindByID(ctx, id)
}

// AssignedFolios lists the folios a user is responsible for, newest
// assignment first.
func (s *Service) AssignedFolios(ctx context.Context, userID int64) ([]folio.AssignedFolio, error) {
	if _, err := s.users.FindByID(ctx, userID); err != nil {
		return nil, err
	}
	return s.assignments.ListByUser(ctx, userID)
}
