package handlers

import (
	"github.com/gofiber/fiber/v2"

	"github.com/civichub/mts/internal/api/dto"
	"github.com/civichub/mts/internal/domain"
	"github.com/civichub/mts/internal/service"
	apperrors "github.com/civichub/mts/pkg/util"
)

// UsersHandler exposes user administration endpoints.
type UsersHandler struct {
	service *service.UserService
}

// NewUsersHandler constructs the handler.
func NewUsersHandler(userService *service.UserService) *UsersHandler {
	return &UsersHandler{service: userService}
}

// List GET /api/users.
func (h *UsersHandler) List(c *fiber.Ctx) error {
	users, err := h.service.List(c.Context())
	if err != nil {
		return err
	}
	items := make([]dto.UserResponse, 0, len(users))
	for i := range users {
		items = append(items, dto.NewUserResponse(&users[i]))
	}
	return c.JSON(fiber.Map{"data": items})
}

// UpdateRole PUT /api/users/:id/role.
func (h *UsersHandler) UpdateRole(c *fiber.Ctx) error {
	var req dto.UpdateUserRoleRequest
	if err := c.BodyParser(&req); err != nil {
		return apperrors.NewValidationError("invalid payload", nil)
	}
	role, err := domain.ParseRole(req.Role)
	if err != nil {
		return apperrors.NewValidationError("invalid role", map[string]any{"role": req.Role})
	}

	user, err := h.service.UpdateRole(c.Context(), c.Params("id"), role)
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"data": dto.NewUserResponse(user)})
}

// UpdateDepartment PUT /api/users/:id/department. An empty department string
// clears the assignment.
func (h *UsersHandler) UpdateDepartment(c *fiber.Ctx) error {
	var req dto.UpdateUserDepartmentRequest
	if err := c.BodyParser(&req); err != nil {
		return apperrors.NewValidationError("invalid payload", nil)
	}

	var departmentID *string
	if req.Department != "" {
		departmentID = &req.Department
	}

	user, err := h.service.UpdateDepartment(c.Context(), c.Params("id"), departmentID)
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"data": dto.NewUserResponse(user)})
}
