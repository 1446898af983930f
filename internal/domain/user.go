package domain

import (
	"strings"
)

// Role identifies which side of the marketplace a user is acting on.
type Role string

const (
	RoleFreelancer Role = "freelancer"
	RoleClient     Role = "client"
)

// ParseRole maps a query or form value to a Role. Anything that is not
// "client" resolves to RoleFreelancer, which is the dashboard's default view.
func ParseRole(s string) Role {
	if strings.EqualFold(strings.TrimSpace(s), string(RoleClient)) {
		return RoleClient
	}
	return RoleFreelancer
}

// IsFreelancer reports whether the role is the freelancer role.
func (r Role) IsFreelancer() bool {
	return r != RoleClient
}

// Toggle returns the opposite role.
func (r Role) Toggle() Role {
	if r.IsFreelancer() {
		return RoleClient
	}
	return RoleFreelancer
}

// User is the signed-in user as returned by the authentication endpoint and
// kept in the browser session.
type User struct {
	ID       string `json:"user_id"`
	Username string `json:"username"`
	Email    string `json:"email"`
	Name     string `json:"name"`
	Role     string `json:"role"`
}

// Credentials is the payload submitted by the login form.
type Credentials struct {
	Email    string `json:"email" form:"email" validate:"required"`
	Password string `json:"password" form:"password" validate:"required"`
}
