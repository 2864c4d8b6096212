package usecases

import (
	"context"
	"strconv"

	"folios/internal/domain/folio"
	"folios/internal/shared/errors"
	"folios/internal/shared/logger"
	"folios/internal/shared/utils"
)

// ListFoliosQuery filters by priority or by employee code, never both.
// EmployeeCode is carried as raw text and parsed here so string inputs get
// the same integer validation as everywhere else.
type ListFoliosQuery struct {
	Priority     string
	EmployeeCode string
	Page         int
	PageSize     int
}

type ListFoliosResult struct {
	Items      []*folio.Folio `json:"items"`
	Total      int64          `json:"total"`
	Page       int            `json:"page"`
	PageSize   int            `json:"page_size"`
	TotalPages int            `json:"total_pages"`
}

type ListFoliosUseCase struct {
	folioRepo folio.Repository
	logger    logger.Interface
}

func NewListFoliosUseCase(folioRepo folio.Repository, log logger.Interface) *ListFoliosUseCase {
	return &ListFoliosUseCase{folioRepo: folioRepo, logger: log}
}

func (uc *ListFoliosUseCase) Execute(ctx context.Context, query ListFoliosQuery) (*ListFoliosResult, error) {
	if query.Priority != "" && query.EmployeeCode != "" {
		return nil, errors.NewValidationError("filter by priority or employee code, not both")
	}

	var (
		folios []*folio.Folio
		err    error
	)
	switch {
	case query.Priority != "":
		folios, err = uc.folioRepo.FindByPriority(ctx, query.Priority)
	case query.EmployeeCode != "":
		code, convErr := strconv.Atoi(query.EmployeeCode)
		if convErr != nil {
			return nil, errors.NewValidationError("employee code must be an integer")
		}
		folios, err = uc.folioRepo.FindByEmployeeCode(ctx, code)
	default:
		folios, err = uc.folioRepo.FindAll(ctx)
	}
	if err != nil {
		uc.logger.Errorw("failed to list folios", "error", err)
		return nil, err
	}

	p := utils.ValidatePagination(query.Page, query.PageSize)
	total := len(folios)
	start, end := utils.ApplyPagination(total, p.Page, p.PageSize)

	return &ListFoliosResult{
		Items:      folios[start:end],
		Total:      int64(total),
		Page:       p.Page,
		PageSize:   p.PageSize,
		TotalPages: utils.TotalPages(int64(total), p.PageSize),
	}, nil
}
