package dto

import (
	"time"

	"github.com/civichub/mts/internal/domain"
)

// UserResponse is the external representation of an account. The password
// hash is deliberately absent; redaction happens here, not in the service.
type UserResponse struct {
	ID         string      `json:"id"`
	Username   string      `json:"username"`
	Role       domain.Role `json:"role"`
	Name       string      `json:"name"`
	Department *string     `json:"department"`
	CreatedAt  time.Time   `json:"created_at"`
	UpdatedAt  time.Time   `json:"updated_at"`
}

// NewUserResponse maps a domain user onto the redacted response shape.
func NewUserResponse(user *domain.User) UserResponse {
	return UserResponse{
		ID:         user.ID,
		Username:   user.Username,
		Role:       user.Role,
		Name:       user.Name,
		Department: user.Department,
		CreatedAt:  user.CreatedAt,
		UpdatedAt:  user.UpdatedAt,
	}
}

// UpdateUserRoleRequest payload for role changes.
type UpdateUserRoleRequest struct {
	Role string `json:"role"`
}

// UpdateUserDepartmentRequest payload for department assignment. An empty
// department string clears the assignment.
type UpdateUserDepartmentRequest struct {
	Department string `json:"department"`
}
