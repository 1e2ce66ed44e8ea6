package domain

import (
	"fmt"
	"time"
)

// TicketStatus enumerates lifecycle states for tickets. Any status may move
// to any other status; no adjacency restriction is enforced.
type TicketStatus string

const (
	TicketStatusOpen       TicketStatus = "OPEN"
	TicketStatusInProgress TicketStatus = "IN_PROGRESS"
	TicketStatusResolved   TicketStatus = "RESOLVED"
	TicketStatusClosed     TicketStatus = "CLOSED"
)

// ParseTicketStatus validates a boundary string against the closed status set.
func ParseTicketStatus(s string) (TicketStatus, error) {
	switch TicketStatus(s) {
	case TicketStatusOpen, TicketStatusInProgress, TicketStatusResolved, TicketStatusClosed:
		return TicketStatus(s), nil
	}
	return "", fmt.Errorf("unknown ticket status %q", s)
}

// TicketPriority enumerates urgency levels.
type TicketPriority string

const (
	TicketPriorityLow    TicketPriority = "LOW"
	TicketPriorityMedium TicketPriority = "MEDIUM"
	TicketPriorityHigh   TicketPriority = "HIGH"
)

// ParseTicketPriority validates a boundary string against the closed priority set.
func ParseTicketPriority(s string) (TicketPriority, error) {
	switch TicketPriority(s) {
	case TicketPriorityLow, TicketPriorityMedium, TicketPriorityHigh:
		return TicketPriority(s), nil
	}
	return "", fmt.Errorf("unknown ticket priority %q", s)
}

// Ticket is a citizen-filed service request.
//
// Department is the department short code stored as free text; there is no
// foreign-key relationship. CreatedByName is a snapshot of the creator's
// display name taken at creation time and never refreshed.
type Ticket struct {
	ID            string
	TicketNumber  string
	Title         string
	Description   string
	Category      string
	Priority      TicketPriority
	Location      string
	Department    string
	Status        TicketStatus
	CreatedBy     string
	CreatedByName string
	CreatedAt     time.Time
	UpdatedAt     time.Time
}
