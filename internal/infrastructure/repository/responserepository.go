package repository

import (
	"context"
	"time"

	"folios/internal/domain/folio"
	"folios/internal/infrastructure/database"
)

type responseRepository struct {
	db database.Engine
}

func NewResponseRepository(db database.Engine) folio.ResponseRepository {
	return &responseRepository{db: db}
}

func (r *responseRepository) ListByFolio(ctx context.Context, folioID int64) ([]folio.ResponseWithAuthor, error) {
	res, err := r.db.Execute(ctx,
		`SELECT r.id, r.folio_id, r.body, r.responded_at, r.author_user_id, u.full_name AS author_name
		 FROM folio_responses r
		 LEFT JOIN users u ON r.author_user_id = u.id
		 WHERE r.folio_id = ?
		 ORDER BY r.responded_at`, folioID)
	if err != nil {
		return nil, err
	}

	responses := make([]folio.ResponseWithAuthor, 0, len(res.Rows))
	for _, row := range res.Rows {
		responses = append(responses, folio.ResponseWithAuthor{
			Response: folio.Response{
				ID:           row.Int64("id"),
				FolioID:      row.Int64("folio_id"),
				Body:         row.String("body"),
				RespondedAt:  row.Time("responded_at"),
				AuthorUserID: row.NullInt64("author_user_id"),
			},
			AuthorName: row.NullString("author_name"),
		})
	}
	return responses, nil
}

func (r *responseRepository) Save(ctx context.Context, resp *folio.Response) error {
	if resp.RespondedAt.IsZero() {
		resp.RespondedAt = time.Now().UTC()
	}

	var author any
	if resp.AuthorUserID != nil {
		author = *resp.AuthorUserID
	}

	res, err := r.db.Execute(ctx,
		`INSERT INTO folio_responses (folio_id, body, responded_at, author_user_id) VALUES (?, ?, ?, ?)`,
		resp.FolioID, resp.Body, database.FormatTime(resp.RespondedAt), author)
	if err != nil {
		return err
	}
	if res.GeneratedID != nil {
		resp.ID = *res.GeneratedID
	}
	return nil
}
