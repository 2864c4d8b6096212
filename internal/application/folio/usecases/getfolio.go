package usecases

import (
	"context"

	"folios/internal/domain/folio"
	"folios/internal/shared/logger"
)

type GetFolioQuery struct {
	FolioID int64
}

// FolioDetail is the aggregate read: the folio itself, who is responsible
// for it, and its response thread.
type FolioDetail struct {
	*folio.Folio
	Assignees []folio.Assignee           `json:"assignees"`
	Responses []folio.ResponseWithAuthor `json:"responses"`
}

type GetFolioUseCase struct {
	folioRepo      folio.Repository
	assignmentRepo folio.AssignmentRepository
	responseRepo   folio.ResponseRepository
	logger         logger.Interface
}

func NewGetFolioUseCase(
	folioRepo folio.Repository,
	assignmentRepo folio.AssignmentRepository,
	responseRepo folio.ResponseRepository,
	log logger.Interface,
) *GetFolioUseCase {
	return &GetFolioUseCase{
		folioRepo:      folioRepo,
		assignmentRepo: assignmentRepo,
		responseRepo:   responseRepo,
		logger:         log,
	}
}

func (uc *GetFolioUseCase) Execute(ctx context.Context, query GetFolioQuery) (*FolioDetail, error) {
	f, err := uc.folioRepo.FindByID(ctx, query.FolioID)
	if err != nil {
		return nil, err
	}

	assignees, err := uc.assignmentRepo.ListByFolio(ctx, f.ID)
	if err != nil {
		uc.logger.Errorw("failed to load assignees", "error", err, "folio_id", f.ID)
		return nil, err
	}

	responses, err := uc.responseRepo.ListByFolio(ctx, f.ID)
	if err != nil {
		uc.logger.Errorw("failed to load responses", "error", err, "folio_id", f.ID)
		return nil, err
	}

	return &FolioDetail{
		Folio:     f,
		Assignees: assignees,
		Responses: responses,
	}, nil
}
