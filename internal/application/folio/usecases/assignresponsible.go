package usecases

import (
	"context"

	"folios/internal/domain/folio"
	"folios/internal/domain/user"
	"folios/internal/shared/errors"
	"folios/internal/shared/logger"
)

type AssignResponsibleCommand struct {
	FolioID int64
	UserID  int64
}

type AssignResponsibleResult struct {
	Assignment *folio.Assignment `json:"assignment"`
}

type AssignResponsibleUseCase struct {
	folioRepo      folio.Repository
	assignmentRepo folio.AssignmentRepository
	userRepo       user.Repository
	logger         logger.Interface
}

func NewAssignResponsibleUseCase(
	folioRepo folio.Repository,
	assignmentRepo folio.AssignmentRepository,
	userRepo user.Repository,
	log logger.Interface,
) *AssignResponsibleUseCase {
	return &AssignResponsibleUseCase{
		folioRepo:      folioRepo,
		assignmentRepo: assignmentRepo,
		userRepo:       userRepo,
		logger:         log,
	}
}

// Execute makes the user responsible for the folio. The unique (folio,
// user) constraint is enforced by the backend; a duplicate pair surfaces as
// a conflict, never a silent no-op.
func (uc *AssignResponsibleUseCase) Execute(ctx context.Context, cmd AssignResponsibleCommand) (*AssignResponsibleResult, error) {
	if err := uc.validateCommand(cmd); err != nil {
		return nil, err
	}

	if _, err := uc.folioRepo.FindByID(ctx, cmd.FolioID); err != nil {
		return nil, err
	}
	if _, err := uc.userRepo.FindByID(ctx, cmd.UserID); err != nil {
		return nil, err
	}

	assignment := &folio.Assignment{
		FolioID: cmd.FolioID,
		UserID:  cmd.UserID,
	}
	if err := uc.assignmentRepo.Save(ctx, assignment); err != nil {
		if errors.IsConflictError(err) {
			uc.logger.Warnw("duplicate assignment rejected", "folio_id", cmd.FolioID, "user_id", cmd.UserID)
		} else {
			uc.logger.Errorw("failed to save assignment", "error", err)
		}
		return nil, err
	}

	uc.logger.Infow("responsible assigned", "folio_id", cmd.FolioID, "user_id", cmd.UserID)
	return &AssignResponsibleResult{Assignment: assignment}, nil
}

func (uc *AssignResponsibleUseCase) validateCommand(cmd AssignResponsibleCommand) error {
	if cmd.FolioID == 0 {
		return errors.NewValidationError("folio ID is required")
	}
	if cmd.UserID == 0 {
		return errors.NewValidationError("user ID is required")
	}
	return nil
}
