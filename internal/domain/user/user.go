// Package user holds the staff member entity and repository contract.
package user

import "time"

// User is a staff member who can be assigned folios and author responses.
// PasswordHash is never serialized and is left empty on every read path;
// credential checks go through Repository.Credentials.
type User struct {
	ID           int64     `json:"id"`
	FullName     string    `json:"full_name"`
	LoginName    string    `json:"login_name"`
	Email        string    `json:"email"`
	PasswordHash string    `json:"-"`
	RoleID       *int64    `json:"role_id"`
	PlantID      *int64    `json:"plant_id"`
	CreatedAt    time.Time `json:"created_at"`
}
