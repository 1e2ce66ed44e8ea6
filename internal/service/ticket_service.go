package service

import (
	"context"
	"errors"
	"strconv"
	"time"

	"github.com/civichub/mts/internal/domain"
	"github.com/civichub/mts/internal/events"
	"github.com/civichub/mts/internal/repository"
	apperrors "github.com/civichub/mts/pkg/util"
)

const ticketNumberPrefix = "TKT"

// TicketService coordinates ticket workflows.
type TicketService struct {
	tickets    repository.TicketRepository
	dispatcher events.Dispatcher
}

// TicketDependencies bundles requirements for the ticket service.
type TicketDependencies struct {
	TicketRepo repository.TicketRepository
	Dispatcher events.Dispatcher
}

// TicketCreateInput describes the caller-supplied part of a new ticket.
// Status, ticket number and timestamps are never taken from the caller.
type TicketCreateInput struct {
	Title         string
	Description   string
	Category      string
	Priority      domain.TicketPriority
	Location      string
	Department    string
	CreatedBy     string
	CreatedByName string
}

// NewTicketService constructs the service.
func NewTicketService(deps TicketDependencies) *TicketService {
	return &TicketService{
		tickets:    deps.TicketRepo,
		dispatcher: deps.Dispatcher,
	}
}

// CreateTicket persists a new ticket. The service assigns the ticket number,
// OPEN status and both timestamps, overwriting anything the caller supplied
// for those fields.
func (s *TicketService) CreateTicket(ctx context.Context, input TicketCreateInput) (*domain.Ticket, error) {
	now := time.Now()
	ticket := &domain.Ticket{
		TicketNumber:  newTicketNumber(now),
		Title:         input.Title,
		Description:   input.Description,
		Category:      input.Category,
		Priority:      input.Priority,
		Location:      input.Location,
		Department:    input.Department,
		Status:        domain.TicketStatusOpen,
		CreatedBy:     input.CreatedBy,
		CreatedByName: input.CreatedByName,
		CreatedAt:     now,
		UpdatedAt:     now,
	}

	if err := s.tickets.Create(ctx, ticket); err != nil {
		return nil, err
	}

	s.publish(ctx, events.Event{
		Type: events.EventTicketCreated,
		Payload: events.TicketCreatedPayload{
			TicketID:     ticket.ID,
			TicketNumber: ticket.TicketNumber,
			Department:   ticket.Department,
			Priority:     ticket.Priority,
			Title:        ticket.Title,
		},
	})
	return ticket, nil
}

// UpdateTicketStatus moves a ticket to the given status. Any status may move
// to any other status; the update always refreshes UpdatedAt. The write is a
// plain read-modify-write, last writer wins.
func (s *TicketService) UpdateTicketStatus(ctx context.Context, id string, status domain.TicketStatus) (*domain.Ticket, error) {
	ticket, err := s.tickets.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, apperrors.NewNotFound("ticket", map[string]any{"id": id})
		}
		return nil, err
	}

	oldStatus := ticket.Status
	ticket.Status = status
	ticket.UpdatedAt = time.Now()

	if err := s.tickets.Update(ctx, ticket); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, apperrors.NewNotFound("ticket", map[string]any{"id": id})
		}
		return nil, err
	}

	s.publish(ctx, events.Event{
		Type: events.EventTicketStatusChanged,
		Payload: events.TicketStatusChangedPayload{
			TicketID:  ticket.ID,
			OldStatus: oldStatus,
			NewStatus: status,
		},
	})
	return ticket, nil
}

// ListTickets returns every ticket in store order.
func (s *TicketService) ListTickets(ctx context.Context) ([]domain.Ticket, error) {
	return s.tickets.List(ctx)
}

// ListByCreator returns tickets filed by the given user, empty when none.
func (s *TicketService) ListByCreator(ctx context.Context, userID string) ([]domain.Ticket, error) {
	return s.tickets.ListByCreator(ctx, userID)
}

// ListByDepartment returns tickets routed to the given department code.
func (s *TicketService) ListByDepartment(ctx context.Context, department string) ([]domain.Ticket, error) {
	return s.tickets.ListByDepartment(ctx, department)
}

func (s *TicketService) publish(ctx context.Context, event events.Event) {
	if s.dispatcher == nil {
		return
	}
	_ = s.dispatcher.Publish(ctx, event)
}

// newTicketNumber derives a display identifier from the creation time. Two
// tickets created within the same millisecond would share a number; nothing
// enforces uniqueness at the store level.
func newTicketNumber(t time.Time) string {
	return ticketNumberPrefix + strconv.FormatInt(t.UnixMilli(), 10)
}
