package repository

import (
	"context"
	"time"

	"folios/internal/domain/folio"
	"folios/internal/infrastructure/database"
	"folios/internal/shared/errors"
)

type assignmentRepository struct {
	db database.Engine
}

func NewAssignmentRepository(db database.Engine) folio.AssignmentRepository {
	return &assignmentRepository{db: db}
}

func (r *assignmentRepository) ListByFolio(ctx context.Context, folioID int64) ([]folio.Assignee, error) {
	res, err := r.db.Execute(ctx,
		`SELECT a.user_id, u.full_name, u.email, a.assigned_at
		 FROM folio_assignments a
		 INNER JOIN users u ON a.user_id = u.id
		 WHERE a.folio_id = ?
		 ORDER BY a.assigned_at`, folioID)
	if err != nil {
		return nil, err
	}

	assignees := make([]folio.Assignee, 0, len(res.Rows))
	for _, row := range res.Rows {
		assignees = append(assignees, folio.Assignee{
			UserID:     row.Int64("user_id"),
			Name:       row.String("full_name"),
			Email:      row.String("email"),
			AssignedAt: row.Time("assigned_at"),
		})
	}
	return assignees, nil
}

func (r *assignmentRepository) ListByUser(ctx context.Context, userID int64) ([]folio.AssignedFolio, error) {
	res, err := r.db.Execute(ctx,
		`SELECT a.folio_id, f.requester_name, f.priority, f.request_type, a.assigned_at
		 FROM folio_assignments a
		 INNER JOIN folios f ON a.folio_id = f.id
		 WHERE a.user_id = ?
		 ORDER BY a.assigned_at DESC`, userID)
	if err != nil {
		return nil, err
	}

	assigned := make([]folio.AssignedFolio, 0, len(res.Rows))
	for _, row := range res.Rows {
		assigned = append(assigned, folio.AssignedFolio{
			FolioID:       row.Int64("folio_id"),
			RequesterName: row.String("requester_name"),
			Priority:      row.String("priority"),
			RequestType:   row.String("request_type"),
			AssignedAt:    row.Time("assigned_at"),
		})
	}
	return assigned, nil
}

func (r *assignmentRepository) Save(ctx context.Context, a *folio.Assignment) error {
	if a.AssignedAt.IsZero() {
		a.AssignedAt = time.Now().UTC()
	}

	res, err := r.db.Execute(ctx,
		`INSERT INTO folio_assignments (folio_id, user_id, assigned_at) VALUES (?, ?, ?)`,
		a.FolioID, a.UserID, database.FormatTime(a.AssignedAt))
	if err != nil {
		if database.IsConstraintViolation(err) {
			return errors.NewConflictError("user already assigned to this folio")
		}
		return err
	}
	if res.GeneratedID != nil {
		a.ID = *res.GeneratedID
	}
	return nil
}

func (r *assignmentRepository) Delete(ctx context.Context, folioID, userID int64) error {
	res, err := r.db.Execute(ctx,
		`DELETE FROM folio_assignments WHERE folio_id = ? AND user_id = ?`, folioID, userID)
	if err != nil {
		return err
	}
	if res.AffectedRows == 0 {
		return errors.NewNotFoundError("assignment not found")
	}
	return nil
}
