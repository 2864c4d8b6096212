package usecases

import (
	"context"
	"strings"

	"folios/internal/domain/folio"
	"folios/internal/domain/user"
	"folios/internal/shared/errors"
	"folios/internal/shared/logger"
)

type AddResponseCommand struct {
	FolioID      int64
	Body         string
	AuthorUserID *int64
}

type AddResponseResult struct {
	Response *folio.Response `json:"response"`
}

type AddResponseUseCase struct {
	folioRepo    folio.Repository
	responseRepo folio.ResponseRepository
	userRepo     user.Repository
	logger       logger.Interface
}

func NewAddResponseUseCase(
	folioRepo folio.Repository,
	responseRepo folio.ResponseRepository,
	userRepo user.Repository,
	log logger.Interface,
) *AddResponseUseCase {
	return &AddResponseUseCase{
		folioRepo:    folioRepo,
		responseRepo: responseRepo,
		userRepo:     userRepo,
		logger:       log,
	}
}

func (uc *AddResponseUseCase) Execute(ctx context.Context, cmd AddResponseCommand) (*AddResponseResult, error) {
	if strings.TrimSpace(cmd.Body) == "" {
		return nil, errors.NewValidationError("response body is required")
	}

	if _, err := uc.folioRepo.FindByID(ctx, cmd.FolioID); err != nil {
		return nil, err
	}
	if cmd.AuthorUserID != nil {
		if _, err := uc.userRepo.FindByID(ctx, *cmd.AuthorUserID); err != nil {
			return nil, err
		}
	}

	response := &folio.Response{
		FolioID:      cmd.FolioID,
		Body:         cmd.Body,
		AuthorUserID: cmd.AuthorUserID,
	}
	if err := uc.responseRepo.Save(ctx, response); err != nil {
		uc.logger.Errorw("failed to save response", "error", err, "folio_id", cmd.FolioID)
		return nil, err
	}

	uc.logger.Infow("response added", "folio_id", cmd.FolioID, "response_id", response.ID)
	return &AddResponseResult{Response: response}, nil
}
