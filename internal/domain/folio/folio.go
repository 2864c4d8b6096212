// Package folio holds the ticket ("folio") entities and repository
// contracts. A folio's state is the composition of its own fields plus the
// current membership of its assignment and response sets; there is no
// explicit status field.
package folio

import "time"

// Folio is a submitted request tracked through assignment and response
// activity. Identity is immutable once created; every other field may be
// updated.
type Folio struct {
	ID              int64     `json:"id"`
	CreatedAt       time.Time `json:"created_at"`
	RequesterName   string    `json:"requester_name"`
	EmployeeCode    int       `json:"employee_code"`
	Plant           string    `json:"plant"`
	PayScheme       string    `json:"pay_scheme"`
	RequestType     string    `json:"request_type"`
	Description     string    `json:"description"`
	Priority        string    `json:"priority"`
	RecordCreatedAt time.Time `json:"record_created_at"`
}

// Assignment records that a user is responsible for a folio. At most one
// assignment exists per (folio, user) pair; deleting either parent removes
// the row.
type Assignment struct {
	ID         int64     `json:"id"`
	FolioID    int64     `json:"folio_id"`
	UserID     int64     `json:"user_id"`
	AssignedAt time.Time `json:"assigned_at"`
}

// Assignee is an assignment joined with the responsible user's identity,
// as presented in the folio detail view.
type Assignee struct {
	UserID     int64     `json:"user_id"`
	Name       string    `json:"name"`
	Email      string    `json:"email"`
	AssignedAt time.Time `json:"assigned_at"`
}

// Response is a timestamped message attached to a folio. Authorship is
// optional attribution: deleting the author clears AuthorUserID but keeps
// the response.
type Response struct {
	ID           int64     `json:"id"`
	FolioID      int64     `json:"folio_id"`
	Body         string    `json:"body"`
	RespondedAt  time.Time `json:"responded_at"`
	AuthorUserID *int64    `json:"author_user_id"`
}

// ResponseWithAuthor is a response joined with its author's name, nil when
// the response has become anonymous.
type ResponseWithAuthor struct {
	Response
	AuthorName *string `json:"author_name"`
}

// AssignedFolio is a folio summary as seen from a user's assignment list.
type AssignedFolio struct {
	FolioID       int64     `json:"folio_id"`
	RequesterName string    `json:"requester_name"`
	Priority      string    `json:"priority"`
	RequestType   string    `json:"request_type"`
	AssignedAt    time.Time `json:"assigned_at"`
}
