package dto

import (
	"time"

	"github.com/civichub/mts/internal/domain"
)

// CreateTicketRequest is the raw ticket payload. Status, ticket number and
// timestamps are not part of it; the service assigns those.
type CreateTicketRequest struct {
	Title         string `json:"title"`
	Description   string `json:"description"`
	Category      string `json:"category"`
	Priority      string `json:"priority"`
	Location      string `json:"location"`
	Department    string `json:"department"`
	CreatedBy     string `json:"createdBy"`
	CreatedByName string `json:"createdByName"`
}

// UpdateTicketStatusRequest carries the bare status string.
type UpdateTicketStatusRequest struct {
	Status string `json:"status"`
}

// TicketResponse is the persisted entity with generated fields populated.
type TicketResponse struct {
	ID            string                `json:"id"`
	TicketNumber  string                `json:"ticketNumber"`
	Title         string                `json:"title"`
	Description   string                `json:"description"`
	Category      string                `json:"category"`
	Priority      domain.TicketPriority `json:"priority"`
	Location      string                `json:"location"`
	Department    string                `json:"department"`
	Status        domain.TicketStatus   `json:"status"`
	CreatedBy     string                `json:"createdBy"`
	CreatedByName string                `json:"createdByName"`
	CreatedAt     time.Time             `json:"createdAt"`
	UpdatedAt     time.Time             `json:"updatedAt"`
}

// NewTicketResponse maps a domain ticket onto the response shape.
func NewTicketResponse(ticket *domain.Ticket) TicketResponse {
	return TicketResponse{
		ID:            ticket.ID,
		TicketNumber:  ticket.TicketNumber,
		Title:         ticket.Title,
		Description:   ticket.Description,
		Category:      ticket.Category,
		Priority:      ticket.Priority,
		Location:      ticket.Location,
		Department:    ticket.Department,
		Status:        ticket.Status,
		CreatedBy:     ticket.CreatedBy,
		CreatedByName: ticket.CreatedByName,
		CreatedAt:     ticket.CreatedAt,
		UpdatedAt:     ticket.UpdatedAt,
	}
}
