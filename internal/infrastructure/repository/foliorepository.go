// Package repository implements the domain repository contracts on top of
// the database.Engine adapter. Every statement is written in the canonical
// dialect; nothing here knows which backend is active.
package repository

import (
	"context"
	"time"

	"folios/internal/domain/folio"
	"folios/internal/infrastructure/database"
	"folios/internal/shared/errors"
)

const folioColumns = `id, created_at, requester_name, employee_code, plant, pay_scheme, request_type, description, priority, record_created_at`

type folioRepository struct {
	db database.Engine
}

func NewFolioRepository(db database.Engine) folio.Repository {
	return &folioRepository{db: db}
}

func (r *folioRepository) FindAll(ctx context.Context) ([]*folio.Folio, error) {
	res, err := r.db.Execute(ctx,
		`SELECT `+folioColumns+` FROM folios ORDER BY created_at DESC`)
	if err != nil {
		return nil, err
	}
	return scanFolios(res.Rows), nil
}

func (r *folioRepository) FindByID(ctx context.Context, id int64) (*folio.Folio, error) {
	res, err := r.db.Execute(ctx,
		`SELECT `+folioColumns+` FROM folios WHERE id = ?`, id)
	if err != nil {
		return nil, err
	}
	if len(res.Rows) == 0 {
		return nil, errors.NewNotFoundError("folio not found")
	}
	return scanFolio(res.Rows[0]), nil
}

func (r *folioRepository) FindByPriority(ctx context.Context, priority string) ([]*folio.Folio, error) {
	res, err := r.db.Execute(ctx,
		`SELECT `+folioColumns+` FROM folios WHERE priority = ? ORDER BY created_at DESC`, priority)
	if err != nil {
		return nil, err
	}
	return scanFolios(res.Rows), nil
}

func (r *folioRepository) FindByEmployeeCode(ctx context.Context, code int) ([]*folio.Folio, error) {
	res, err := r.db.Execute(ctx,
		`SELECT `+folioColumns+` FROM folios WHERE employee_code = ? ORDER BY created_at DESC`, code)
	if err != nil {
		return nil, err
	}
	return scanFolios(res.Rows), nil
}

func (r *folioRepository) Save(ctx context.Context, f *folio.Folio) error {
	now := time.Now().UTC()
	if f.CreatedAt.IsZero() {
		f.CreatedAt = now
	}
	f.RecordCreatedAt = now

	res, err := r.db.Execute(ctx,
		`INSERT INTO folios (created_at, requester_name, employee_code, plant, pay_scheme, request_type, description, priority, record_created_at)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		database.FormatTime(f.CreatedAt),
		f.RequesterName,
		f.EmployeeCode,
		f.Plant,
		f.PayScheme,
		f.RequestType,
		f.Description,
		f.Priority,
		database.FormatTime(f.RecordCreatedAt),
	)
	if err != nil {
		return err
	}
	if res.GeneratedID != nil {
		f.ID = *res.GeneratedID
	}
	return nil
}

func (r *folioRepository) Update(ctx context.Context, f *folio.Folio) error {
	res, err := r.db.Execute(ctx,
		`UPDATE folios
		 SET requester_name = ?, employee_code = ?, plant = ?, pay_scheme = ?, request_type = ?, description = ?, priority = ?
		 WHERE id = ?`,
		f.RequesterName,
		f.EmployeeCode,
		f.Plant,
		f.PayScheme,
		f.RequestType,
		f.Description,
		f.Priority,
		f.ID,
	)
	if err != nil {
		return err
	}
	if res.AffectedRows == 0 {
		return errors.NewNotFoundError("folio not found")
	}
	return nil
}

func (r *folioRepository) Delete(ctx context.Context, id int64) error {
	res, err := r.db.Execute(ctx, `DELETE FROM folios WHERE id = ?`, id)
	if err != nil {
		return err
	}
	if res.AffectedRows == 0 {
		return errors.NewNotFoundError("folio not found")
	}
	return nil
}

func scanFolios(rows []database.Row) []*folio.Folio {
	out := make([]*folio.Folio, 0, len(rows))
	for _, row := range rows {
		out = append(out, scanFolio(row))
	}
	return out
}

func scanFolio(row database.Row) *folio.Folio {
	return &folio.Folio{
		ID:              row.Int64("id"),
		CreatedAt:       row.Time("created_at"),
		RequesterName:   row.String("requester_name"),
		EmployeeCode:    int(row.Int64("employee_code")),
		Plant:           row.String("plant"),
		PayScheme:       row.String("pay_scheme"),
		RequestType:     row.String("request_type"),
		Description:     row.String("description"),
		Priority:        row.String("priority"),
		RecordCreatedAt: row.Time("record_created_at"),
	}
}
