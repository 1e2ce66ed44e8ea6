package domain

import (
	"fmt"
	"time"
)

// Role is the access tier of a user account.
type Role string

const (
	RoleCitizen   Role = "CITIZEN"
	RoleStaff     Role = "STAFF"
	RoleCollector Role = "COLLECTOR"
	RoleAdmin     Role = "ADMIN"
)

// ParseRole validates a boundary string against the closed role set.
func ParseRole(s string) (Role, error) {
	switch Role(s) {
	case RoleCitizen, RoleStaff, RoleCollector, RoleAdmin:
		return Role(s), nil
	}
	return "", fmt.Errorf("unknown role %q", s)
}

// User is an account able to file or handle tickets. Department is nil when
// the user is not assigned to any department.
type User struct {
	ID           string
	Username     string
	PasswordHash string
	Role         Role
	Name         string
	Department   *string
	CreatedAt    time.Time
	UpdatedAt    time.Time
}
