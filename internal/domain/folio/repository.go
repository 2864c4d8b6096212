package folio

import "context"

// Repository provides folio persistence. Listing methods return folios
// ordered by creation instant, newest first.
type Repository interface {
	FindAll(ctx context.Context) ([]*Folio, error)
	FindByID(ctx context.Context, id int64) (*Folio, error)
	FindByPriority(ctx context.Context, priority string) ([]*Folio, error)
	FindByEmployeeCode(ctx context.Context, code int) ([]*Folio, error)
	Save(ctx context.Context, f *Folio) error
	Update(ctx context.Context, f *Folio) error
	Delete(ctx context.Context, id int64) error
}

// AssignmentRepository manages the folio/user responsibility junction.
type AssignmentRepository interface {
	ListByFolio(ctx context.Context, folioID int64) ([]Assignee, error)
	ListByUser(ctx context.Context, userID int64) ([]AssignedFolio, error)
	Save(ctx context.Context, a *Assignment) error
	Delete(ctx context.Context, folioID, userID int64) error
}

// ResponseRepository manages the response thread of a folio.
type ResponseRepository interface {
	ListByFolio(ctx context.Context, folioID int64) ([]ResponseWithAuthor, error)
	Save(ctx context.Context, r *Response) error
}
