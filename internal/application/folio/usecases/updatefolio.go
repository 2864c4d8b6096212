package usecases

import (
	"context"
	"strconv"
	"strings"

	"folios/internal/domain/folio"
	"folios/internal/shared/errors"
	"folios/internal/shared/logger"
)

// UpdateFolioCommand overwrites only the supplied fields; nil pointers keep
// the stored value. The fetch-then-write sequence is not transactional, so
// two concurrent updates to the same folio can race (last write wins).
type UpdateFolioCommand struct {
	FolioID       int64
	RequesterName *string
	EmployeeCode  *string
	Plant         *string
	PayScheme     *string
	RequestType   *string
	Description   *string
	Priority      *string
}

type UpdateFolioResult struct {
	Folio *folio.Folio `json:"folio"`
}

type UpdateFolioUseCase struct {
	folioRepo folio.Repository
	logger    logger.Interface
}

func NewUpdateFolioUseCase(folioRepo folio.Repository, log logger.Interface) *UpdateFolioUseCase {
	return &UpdateFolioUseCase{folioRepo: folioRepo, logger: log}
}

func (uc *UpdateFolioUseCase) Execute(ctx context.Context, cmd UpdateFolioCommand) (*UpdateFolioResult, error) {
	f, err := uc.folioRepo.FindByID(ctx, cmd.FolioID)
	if err != nil {
		return nil, err
	}

	if cmd.RequesterName != nil {
		f.RequesterName = *cmd.RequesterName
	}
	if cmd.EmployeeCode != nil {
		code, convErr := strconv.Atoi(strings.TrimSpace(*cmd.EmployeeCode))
		if convErr != nil {
			return nil, errors.NewValidationError("employee code must be an integer")
		}
		f.EmployeeCode = code
	}
	if cmd.Plant != nil {
		f.Plant = *cmd.Plant
	}
	if cmd.PayScheme != nil {
		f.PayScheme = *cmd.PayScheme
	}
	if cmd.RequestType != nil {
		f.RequestType = *cmd.RequestType
	}
	if cmd.Description != nil {
		f.Description = *cmd.Description
	}
	if cmd.Priority != nil {
		f.Priority = *cmd.Priority
	}

	if err := uc.folioRepo.Update(ctx, f); err != nil {
		uc.logger.Errorw("failed to update folio", "error", err, "folio_id", f.ID)
		return nil, err
	}

	return &UpdateFolioResult{Folio: f}, nil
}
