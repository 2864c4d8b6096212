package folio

import (
	"encoding/json"
	"time"

	"folios/internal/application/folio/usecases"
)

// flexString accepts either a JSON string or a JSON number and keeps the
// raw text. Employee codes arrive both ways from existing clients.
type flexString string

func (f *flexString) UnmarshalJSON(b []byte) error {
	var s string
	if err := json.Unmarshal(b, &s); err == nil {
		*f = flexString(s)
		return nil
	}
	var n json.Number
	if err := json.Unmarshal(b, &n); err != nil {
		return err
	}
	*f = flexString(n.String())
	return nil
}

type CreateFolioRequest struct {
	CreatedAt     *time.Time `json:"created_at"`
	RequesterName string     `json:"requester_name"`
	EmployeeCode  flexString `json:"employee_code"`
	Plant         string     `json:"plant"`
	PayScheme     string     `json:"pay_scheme"`
	RequestType   string     `json:"request_type"`
	Description   string     `json:"description"`
	Priority      string     `json:"priority"`
}

func (r CreateFolioRequest) ToCommand() usecases.CreateFolioCommand {
	return usecases.CreateFolioCommand{
		CreatedAt:     r.CreatedAt,
		RequesterName: r.RequesterName,
		EmployeeCode:  string(r.EmployeeCode),
		Plant:         r.Plant,
		PayScheme:     r.PayScheme,
		RequestType:   r.RequestType,
		Description:   r.Description,
		Priority:      r.Priority,
	}
}

type UpdateFolioRequest struct {
	RequesterName *string     `json:"requester_name"`
	EmployeeCode  *flexString `json:"employee_code"`
	Plant         *string     `json:"plant"`
	PayScheme     *string     `json:"pay_scheme"`
	RequestType   *string     `json:"request_type"`
	Description   *string     `json:"description"`
	Priority      *string     `json:"priority"`
}

func (r UpdateFolioRequest) ToCommand(folioID int64) usecases.UpdateFolioCommand {
	cmd := usecases.UpdateFolioCommand{
		FolioID:       folioID,
		RequesterName: r.RequesterName,
		Plant:         r.Plant,
		PayScheme:     r.PayScheme,
		RequestType:   r.RequestType,
		Description:   r.Description,
		Priority:      r.Priority,
	}
	if r.EmployeeCode != nil {
		code := string(*r.EmployeeCode)
		cmd.EmployeeCode = &code
	}
	return cmd
}

type AssignResponsibleRequest struct {
	UserID int64 `json:"user_id" binding:"required"`
}

type AddResponseRequest struct {
	Body         string `json:"body"`
	AuthorUserID *int64 `json:"author_user_id"`
}
