package usecases

import (
	"context"
	"strconv"
	"strings"
	"time"

	"folios/internal/domain/folio"
	"folios/internal/shared/errors"
	"folios/internal/shared/logger"
)

// CreateFolioCommand carries the submitted request. EmployeeCode is raw
// text because callers send it as either a number or a quoted string; it
// must parse as an integer.
type CreateFolioCommand struct {
	CreatedAt     *time.Time
	RequesterName string
	EmployeeCode  string
	Plant         string
	PayScheme     string
	RequestType   string
	Description   string
	Priority      string
}

type CreateFolioResult struct {
	Folio *folio.Folio `json:"folio"`
}

type CreateFolioUseCase struct {
	folioRepo folio.Repository
	logger    logger.Interface
}

func NewCreateFolioUseCase(folioRepo folio.Repository, log logger.Interface) *CreateFolioUseCase {
	return &CreateFolioUseCase{folioRepo: folioRepo, logger: log}
}

func (uc *CreateFolioUseCase) Execute(ctx context.Context, cmd CreateFolioCommand) (*CreateFolioResult, error) {
	code, err := uc.validateCommand(cmd)
	if err != nil {
		uc.logger.Warnw("invalid create folio command", "error", err)
		return nil, err
	}

	f := &folio.Folio{
		RequesterName: cmd.RequesterName,
		EmployeeCode:  code,
		Plant:         cmd.Plant,
		PayScheme:     cmd.PayScheme,
		RequestType:   cmd.RequestType,
		Description:   cmd.Description,
		Priority:      cmd.Priority,
	}
	if cmd.CreatedAt != nil {
		f.CreatedAt = *cmd.CreatedAt
	}

	if err := uc.folioRepo.Save(ctx, f); err != nil {
		uc.logger.Errorw("failed to save folio", "error", err)
		return nil, err
	}

	uc.logger.Infow("folio created", "folio_id", f.ID, "priority", f.Priority)
	return &CreateFolioResult{Folio: f}, nil
}

func (uc *CreateFolioUseCase) validateCommand(cmd CreateFolioCommand) (int, error) {
	missing := make([]string, 0, 7)
	if cmd.RequesterName == "" {
		missing = append(missing, "requester_name")
	}
	if cmd.EmployeeCode == "" {
		missing = append(missing, "employee_code")
	}
	if cmd.Plant == "" {
		missing = append(missing, "plant")
	}
	if cmd.PayScheme == "" {
		missing = append(missing, "pay_scheme")
	}
	if cmd.RequestType == "" {
		missing = append(missing, "request_type")
	}
	if cmd.Description == "" {
		missing = append(missing, "description")
	}
	if cmd.Priority == "" {
		missing = append(missing, "priority")
	}
	if len(missing) > 0 {
		return 0, errors.NewValidationError("missing required fields", strings.Join(missing, ", "))
	}

	code, err := strconv.Atoi(strings.TrimSpace(cmd.EmployeeCode))
	if err != nil {
		return 0, errors.NewValidationError("employee code must be an integer")
	}
	return code, nil
}
