package entity

import "time"

// Well-known role names. The vocabulary is fixed; rows are seeded at startup.
const (
	RoleUser  = "user"
	RoleAdmin = "admin"
)

// Role is an authorization tag, many-to-many with User via user_roles.
type Role struct {
	ID        string
	Name      string
	CreatedAt time.Time
	UpdatedAt time.Time
}
