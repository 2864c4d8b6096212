// Package constants defines application-wide constant values.
package constants

const (
	DefaultPage     = 1
	DefaultPageSize = 10
	MaxPageSize     = 100
)

// Seeded role names. The schema convergence routine inserts these when the
// roles table is created or found empty.
const (
	RoleAdministrator = "Administrator"
	RoleResolver      = "Resolver"
)
