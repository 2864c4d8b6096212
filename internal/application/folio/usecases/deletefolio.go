package usecases

import (
	"context"

	"folios/internal/domain/folio"
	"folios/internal/shared/logger"
)

type DeleteFolioCommand struct {
	FolioID int64
}

type DeleteFolioUseCase struct {
	folioRepo folio.Repository
	logger    logger.Interface
}

func NewDeleteFolioUseCase(folioRepo folio.Repository, log logger.Interface) *DeleteFolioUseCase {
	return &DeleteFolioUseCase{folioRepo: folioRepo, logger: log}
}

// Execute deletes the folio. The schema's cascade rules remove its
// assignments and responses with it.
func (uc *DeleteFolioUseCase) Execute(ctx context.Context, cmd DeleteFolioCommand) error {
	if err := uc.folioRepo.Delete(ctx, cmd.FolioID); err != nil {
		return err
	}
	uc.logger.Infow("folio deleted", "folio_id", cmd.FolioID)
	return nil
}
