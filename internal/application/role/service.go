// Package role implements the application service for roles.
package role

import (
	"context"

	"folios/internal/domain/role"
	"folios/internal/shared/errors"
	"folios/internal/shared/logger"
)

type Service struct {
	roles  role.Repository
	logger logger.Interface
}

func NewService(roles role.Repository, log logger.Interface) *Service {
	return &Service{roles: roles, logger: log}
}

func (s *Service) List(ctx context.Context) ([]*role.Role, error) {
	return s.roles.FindAll(ctx)
}

func (s *Service) Get(ctx context.Context, id int64) (*role.Role, error) {
	return s.roles.FindByID(ctx, id)
}

func (s *Service) Create(ctx context.Context, name string) (*role.Role, error) {
	if name == "" {
		return nil, errors.NewValidationError("role name is required")
	}

	r := &role.Role{Name: name}
	if err := s.roles.Save(ctx, r); err != nil {
		return nil, err
	}

	s.logger.Infow("role created", "role_id", r.ID, "name", r.Name)
	return r, nil
}

func (s *Service) Update(ctx context.Context, id int64, name string) (*role.Role, error) {
	if name == "" {
		return nil, errors.NewValidationError("role name is required")
	}

	r, err := s.roles.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	r.Name = name
	if err := s.roles.Update(ctx, r); err != nil {
		return nil, err
	}
	return r, nil
}

// Delete removes a role. Deleting a role still referenced by users fails at
// the storage layer; that failure is surfaced as-is.
func (s *Service) Delete(ctx context.Context, id int64) error {
	if err := s.roles.Delete(ctx, id); err != nil {
		return err
	}
	s.logger.Infow("role deleted", "role_id", id)
	return nil
}
