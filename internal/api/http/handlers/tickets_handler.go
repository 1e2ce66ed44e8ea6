package handlers

import (
	"net/http"

	"github.com/gofiber/fiber/v2"

	"github.com/civichub/mts/internal/api/dto"
	"github.com/civichub/mts/internal/auth"
	"github.com/civichub/mts/internal/domain"
	"github.com/civichub/mts/internal/service"
	apperrors "github.com/civichub/mts/pkg/util"
)

// TicketsHandler manages ticket endpoints.
type TicketsHandler struct {
	service *service.TicketService
}

// NewTicketsHandler constructs the handler.
func NewTicketsHandler(ticketService *service.TicketService) *TicketsHandler {
	return &TicketsHandler{service: ticketService}
}

// CreateTicket POST /api/tickets.
func (h *TicketsHandler) CreateTicket(c *fiber.Ctx) error {
	var req dto.CreateTicketRequest
	if err := c.BodyParser(&req); err != nil {
		return apperrors.NewValidationError("invalid payload", nil)
	}

	// Field contents are stored as supplied; only enum values are checked.
	var priority domain.TicketPriority
	if req.Priority != "" {
		parsed, err := domain.ParseTicketPriority(req.Priority)
		if err != nil {
			return apperrors.NewValidationError("invalid priority", map[string]any{"priority": req.Priority})
		}
		priority = parsed
	}

	input := service.TicketCreateInput{
		Title:         req.Title,
		Description:   req.Description,
		Category:      req.Category,
		Priority:      priority,
		Location:      req.Location,
		Department:    req.Department,
		CreatedBy:     req.CreatedBy,
		CreatedByName: req.CreatedByName,
	}
	// Payload attribution passes through; the token principal only fills
	// fields the caller left empty.
	if principal, ok := auth.PrincipalFromContext(c); ok && principal.User != nil {
		if input.CreatedBy == "" {
			input.CreatedBy = principal.User.ID
		}
		if input.CreatedByName == "" {
			input.CreatedByName = principal.User.Name
		}
	}
	ticket, err := h.service.CreateTicket(c.Context(), input)
	if err != nil {
		return err
	}
	return c.Status(http.StatusCreated).JSON(fiber.Map{"data": dto.NewTicketResponse(ticket)})
}

// UpdateStatus PUT /api/tickets/:id/status.
func (h *TicketsHandler) UpdateStatus(c *fiber.Ctx) error {
	var req dto.UpdateTicketStatusRequest
	if err := c.BodyParser(&req); err != nil {
		return apperrors.NewValidationError("invalid payload", nil)
	}
	status, err := domain.ParseTicketStatus(req.Status)
	if err != nil {
		return apperrors.NewValidationError("invalid status", map[string]any{"status": req.Status})
	}

	ticket, err := h.service.UpdateTicketStatus(c.Context(), c.Params("id"), status)
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"data": dto.NewTicketResponse(ticket)})
}

// ListTickets GET /api/tickets. Query parameters select among three mutually
// exclusive read modes: by creator (userId), by department, or unfiltered,
// honored in that priority order.
func (h *TicketsHandler) ListTickets(c *fiber.Ctx) error {
	var (
		tickets []domain.Ticket
		err     error
	)
	switch {
	case c.Query("userId") != "":
		tickets, err = h.service.ListByCreator(c.Context(), c.Query("userId"))
	case c.Query("department") != "":
		tickets, err = h.service.ListByDepartment(c.Context(), c.Query("department"))
	default:
		tickets, err = h.service.ListTickets(c.Context())
	}
	if err != nil {
		return err
	}

	items := make([]dto.TicketResponse, 0, len(tickets))
	for i := range tickets {
		items = append(items, dto.NewTicketResponse(&tickets[i]))
	}
	return c.JSON(fiber.Map{"data": items})
}
