// Package role holds the role entity and repository contract.
package role

// Role names a staff capability. Two fixed roles are seeded at schema
// creation; roles in use by users must not be deleted.
type Role struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
}
