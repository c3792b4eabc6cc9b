package model

import "time"

const (
	RoleAdmin    = "admin"
	RoleOperator = "operator"
	RoleCourier  = "courier"
)

// ValidRole reports whether r is one of the three user roles.
func ValidRole(r string) bool {
	return r == RoleAdmin || r == RoleOperator || r == RoleCourier
}

// User represents a user in the system
type User struct {
	ID           int       `json:"id"`
	Email        string    `json:"email"`
	PasswordHash string    `json:"-"` // Do not expose password hash in JSON responses
	Role         string    `json:"role"`
	CreatedAt    time.Time `json:"created_at"`
}

// UpdateRoleRequest changes a user's role (admin only)
type UpdateRoleRequest struct {
	Role string `json:"role" binding:"required,oneof=admin operator courier"`
}
