package dto

import (
	"time"

	"github.com/civichub/mts/internal/domain"
)

// CreateDepartmentRequest payload; the caller supplies the short code.
type CreateDepartmentRequest struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

// UpdateDepartmentRequest payload; only the display name is mutable.
type UpdateDepartmentRequest struct {
	Name string `json:"name"`
}

// DepartmentResponse response shape.
type DepartmentResponse struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// NewDepartmentResponse maps a domain department onto the response shape.
func NewDepartmentResponse(dept *domain.Department) DepartmentResponse {
	return DepartmentResponse{
		ID:        dept.ID,
		Name:      dept.Name,
		CreatedAt: dept.CreatedAt,
		UpdatedAt: dept.UpdatedAt,
	}
}
