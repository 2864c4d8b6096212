package usecases

import (
	"context"

	"folios/internal/domain/folio"
	"folios/internal/shared/errors"
	"folios/internal/shared/logger"
)

type UnassignResponsibleCommand struct {
	FolioID int64
	UserID  int64
}

type UnassignResponsibleUseCase struct {
	assignmentRepo folio.AssignmentRepository
	logger         logger.Interface
}

func NewUnassignResponsibleUseCase(assignmentRepo folio.AssignmentRepository, log logger.Interface) *UnassignResponsibleUseCase {
	return &UnassignResponsibleUseCase{assignmentRepo: assignmentRepo, logger: log}
}

func (uc *UnassignResponsibleUseCase) Execute(ctx context.Context, cmd UnassignResponsibleCommand) error {
	if cmd.FolioID == 0 {
		return errors.NewValidationError("folio ID is required")
	}
	if cmd.UserID == 0 {
		return errors.NewValidationError("user ID is required")
	}

	if err := uc.assignmentRepo.Delete(ctx, cmd.FolioID, cmd.UserID); err != nil {
		return err
	}

	uc.logger.Infow("responsible unassigned", "folio_id", cmd.FolioID, "user_id", cmd.UserID)
	return nil
}
