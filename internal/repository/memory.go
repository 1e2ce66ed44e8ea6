package repository

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/civichub/mts/internal/domain"
)

// In-memory implementations of the repositories, used when POSTGRES_DSN is
// absent and by the test suite. Single-entity writes are atomic under the
// mutex, matching the store contract; listing follows insertion order.

type memoryUserRepository struct {
	mu    sync.RWMutex
	users map[string]domain.User
	order []string
}

// NewMemoryUserRepository builds a map-backed user repository.
func NewMemoryUserRepository() UserRepository {
	return &memoryUserRepository{users: make(map[string]domain.User)}
}

func (r *memoryUserRepository) Create(_ context.Context, user *domain.User) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	now := time.Now()
	user.ID = uuid.NewString()
	user.CreatedAt = now
	user.UpdatedAt = now
	r.users[user.ID] = *user
	r.order = append(r.order, user.ID)
	return nil
}

func (r *memoryUserRepository) Update(_ context.Context, user *domain.User) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.users[user.ID]; !ok {
		return ErrNotFound
	}
	r.users[user.ID] = *user
	return nil
}

func (r *memoryUserRepository) GetByID(_ context.Context, id string) (*domain.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	user, ok := r.users[id]
	if !ok {
		return nil, ErrNotFound
	}
	return &user, nil
}

func (r *memoryUserRepository) GetByUsername(_ context.Context, username string) (*domain.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	for _, id := range r.order {
		if user := r.users[id]; user.Username == username {
			return &user, nil
		}
	}
	return nil, ErrNotFound
}

func (r *memoryUserRepository) List(_ context.Context) ([]domain.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	result := make([]domain.User, 0, len(r.order))
	for _, id := range r.order {
		result = append(result, r.users[id])
	}
	return result, nil
}

func (r *memoryUserRepository) Count(_ context.Context) (int64, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return int64(len(r.users)), nil
}

type memoryTicketRepository struct {
	mu      sync.RWMutex
	tickets map[string]domain.Ticket
	order   []string
}

// NewMemoryTicketRepository builds a map-backed ticket repository.
func NewMemoryTicketRepository() TicketRepository {
	return &memoryTicketRepository{tickets: make(map[string]domain.Ticket)}
}

func (r *memoryTicketRepository) Create(_ context.Context, ticket *domain.Ticket) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	ticket.ID = uuid.NewString()
	r.tickets[ticket.ID] = *ticket
	r.order = append(r.order, ticket.ID)
	return nil
}

func (r *memoryTicketRepository) Update(_ context.Context, ticket *domain.Ticket) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.tickets[ticket.ID]; !ok {
		return ErrNotFound
	}
	r.tickets[ticket.ID] = *ticket
	return nil
}

func (r *memoryTicketRepository) GetByID(_ context.Context, id string) (*domain.Ticket, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	ticket, ok := r.tickets[id]
	if !ok {
		return nil, ErrNotFound
	}
	return &ticket, nil
}

func (r *memoryTicketRepository) List(_ context.Context) ([]domain.Ticket, error) {
	return r.filter(func(domain.Ticket) bool { return true })
}

func (r *memoryTicketRepository) ListByCreator(_ context.Context, userID string) ([]domain.Ticket, error) {
	return r.filter(func(t domain.Ticket) bool { return t.CreatedBy == userID })
}

func (r *memoryTicketRepository) ListByDepartment(_ context.Context, department string) ([]domain.Ticket, error) {
	return r.filter(func(t domain.Ticket) bool { return t.Department == department })
}

func (r *memoryTicketRepository) Count(_ context.Context) (int64, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return int64(len(r.tickets)), nil
}

func (r *memoryTicketRepository) filter(keep func(domain.Ticket) bool) ([]domain.Ticket, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	var result []domain.Ticket
	for _, id := range r.order {
		if ticket := r.tickets[id]; keep(ticket) {
			result = append(result, ticket)
		}
	}
	return result, nil
}

type memoryDepartmentRepository struct {
	mu    sync.RWMutex
	depts map[string]domain.Department
	order []string
}

// NewMemoryDepartmentRepository builds a map-backed department repository.
func NewMemoryDepartmentRepository() DepartmentRepository {
	return &memoryDepartmentRepository{depts: make(map[string]domain.Department)}
}

func (r *memoryDepartmentRepository) Save(_ context.Context, dept *domain.Department) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	now := time.Now()
	if existing, ok := r.depts[dept.ID]; ok {
		dept.CreatedAt = existing.CreatedAt
	} else {
		dept.CreatedAt = now
		r.order = append(r.order, dept.ID)
	}
	dept.UpdatedAt = now
	r.depts[dept.ID] = *dept
	return nil
}

func (r *memoryDepartmentRepository) GetByID(_ context.Context, id string) (*domain.Department, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	dept, ok := r.depts[id]
	if !ok {
		return nil, ErrNotFound
	}
	return &dept, nil
}

func (r *memoryDepartmentRepository) Delete(_ context.Context, id string) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.depts[id]; !ok {
		return false, nil
	}
	delete(r.depts, id)
	for i, existing := range r.order {
		if existing == id {
			r.order = append(r.order[:i], r.order[i+1:]...)
			break
		}
	}
	return true, nil
}

func (r *memoryDepartmentRepository) List(_ context.Context) ([]domain.Department, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	result := make([]domain.Department, 0, len(r.order))
	for _, id := range r.order {
		result = append(result, r.depts[id])
	}
	return result, nil
}

func (r *memoryDepartmentRepository) Count(_ context.Context) (int64, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return int64(len(r.depts)), nil
}
