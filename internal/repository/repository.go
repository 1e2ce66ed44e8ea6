package repository

import (
	"context"
	"errors"

	"github.com/civichub/mts/internal/domain"
)

// ErrNotFound reports an id-keyed lookup with no match. Both store backends
// return it so services can translate it without knowing the backend.
var ErrNotFound = errors.New("not found")

// UserRepository defines persistence access for user accounts.
type UserRepository interface {
	Create(ctx context.Context, user *domain.User) error
	Update(ctx context.Context, user *domain.User) error
	GetByID(ctx context.Context, id string) (*domain.User, error)
	GetByUsername(ctx context.Context, username string) (*domain.User, error)
	List(ctx context.Context) ([]domain.User, error)
	Count(ctx context.Context) (int64, error)
}

// TicketRepository encapsulates ticket persistence.
type TicketRepository interface {
	Create(ctx context.Context, ticket *domain.Ticket) error
	Update(ctx context.Context, ticket *domain.Ticket) error
	GetByID(ctx context.Context, id string) (*domain.Ticket, error)
	List(ctx context.Context) ([]domain.Ticket, error)
	ListByCreator(ctx context.Context, userID string) ([]domain.Ticket, error)
	ListByDepartment(ctx context.Context, department string) ([]domain.Ticket, error)
	Count(ctx context.Context) (int64, error)
}

// DepartmentRepository manages department persistence. Save is an upsert
// keyed on the human-assigned department code.
type DepartmentRepository interface {
	Save(ctx context.Context, dept *domain.Department) error
	GetByID(ctx context.Context, id string) (*domain.Department, error)
	Delete(ctx context.Context, id string) (bool, error)
	List(ctx context.Context) ([]domain.Department, error)
	Count(ctx context.Context) (int64, error)
}
