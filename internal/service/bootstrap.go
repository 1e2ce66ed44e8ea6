package service

import (
	"context"
	"errors"
	"fmt"

	"go.uber.org/zap"

	"github.com/civichub/mts/internal/auth"
	"github.com/civichub/mts/internal/config"
	"github.com/civichub/mts/internal/domain"
	"github.com/civichub/mts/internal/repository"
)

// seedPassword is shared by every demo account.
const seedPassword = "password"

// Bootstrap seeds demo data on first startup. Each collection is guarded by
// its own emptiness check, so the seed never runs, and never partially
// re-runs, once a collection holds any row.
type Bootstrap struct {
	users       repository.UserRepository
	tickets     repository.TicketRepository
	departments repository.DepartmentRepository
	ticketSvc   *TicketService
	bcryptCost  int
	logger      *zap.Logger
}

// BootstrapDependencies bundles requirements for the bootstrap step.
type BootstrapDependencies struct {
	UserRepo       repository.UserRepository
	TicketRepo     repository.TicketRepository
	DepartmentRepo repository.DepartmentRepository
	TicketService  *TicketService
}

// NewBootstrap constructs the bootstrap step.
func NewBootstrap(cfg config.Config, deps BootstrapDependencies, logger *zap.Logger) *Bootstrap {
	return &Bootstrap{
		users:       deps.UserRepo,
		tickets:     deps.TicketRepo,
		departments: deps.DepartmentRepo,
		ticketSvc:   deps.TicketService,
		bcryptCost:  cfg.Auth.BcryptCost,
		logger:      logger,
	}
}

// Run executes the seed once, invoked explicitly from main after wiring.
func (b *Bootstrap) Run(ctx context.Context) error {
	if err := b.seedUsers(ctx); err != nil {
		return fmt.Errorf("seed users: %w", err)
	}
	if err := b.seedDepartments(ctx); err != nil {
		return fmt.Errorf("seed departments: %w", err)
	}
	if err := b.seedTickets(ctx); err != nil {
		return fmt.Errorf("seed tickets: %w", err)
	}
	return nil
}

func (b *Bootstrap) seedUsers(ctx context.Context) error {
	count, err := b.users.Count(ctx)
	if err != nil {
		return err
	}
	if count > 0 {
		return nil
	}

	hash, err := auth.HashPassword(seedPassword, b.bcryptCost)
	if err != nil {
		return err
	}

	sanitation := "SANITATION"
	seeds := []domain.User{
		{Username: "citizen1", Name: "John Doe", Role: domain.RoleCitizen},
		{Username: "staff1", Name: "Jane Smith", Role: domain.RoleStaff, Department: &sanitation},
		{Username: "collector1", Name: "Alice Brown", Role: domain.RoleCollector},
		{Username: "admin1", Name: "Bob White", Role: domain.RoleAdmin},
	}
	for i := range seeds {
		seeds[i].PasswordHash = hash
		if err := b.users.Create(ctx, &seeds[i]); err != nil {
			return err
		}
	}
	b.logger.Info("seeded demo users", zap.Int("count", len(seeds)))
	return nil
}

func (b *Bootstrap) seedDepartments(ctx context.Context) error {
	count, err := b.departments.Count(ctx)
	if err != nil {
		return err
	}
	if count > 0 {
		return nil
	}

	seeds := []domain.Department{
		{ID: "SANITATION", Name: "Sanitation Department"},
		{ID: "WATER_SUPPLY", Name: "Water Supply Department"},
		{ID: "ELECTRICITY", Name: "Electricity Department"},
	}
	for i := range seeds {
		if err := b.departments.Save(ctx, &seeds[i]); err != nil {
			return err
		}
	}
	b.logger.Info("seeded departments", zap.Int("count", len(seeds)))
	return nil
}

// seedTickets files two demo tickets through the normal creation path so
// they receive generated ticket numbers and OPEN status.
func (b *Bootstrap) seedTickets(ctx context.Context) error {
	count, err := b.tickets.Count(ctx)
	if err != nil {
		return err
	}
	if count > 0 {
		return nil
	}

	citizen, err := b.users.GetByUsername(ctx, "citizen1")
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			b.logger.Warn("seed citizen missing; skipping demo tickets")
			return nil
		}
		return err
	}

	seeds := []TicketCreateInput{
		{
			Title:       "Streetlight not working",
			Description: "Streetlight near main park is not working for a week.",
			Category:    "STREETLIGHTS",
			Priority:    domain.TicketPriorityHigh,
			Location:    "Main Park, Sector 10",
			Department:  "ELECTRICITY",
		},
		{
			Title:       "Garbage not collected",
			Description: "Garbage has not been collected from our area for 3 days.",
			Category:    "SANITATION",
			Priority:    domain.TicketPriorityMedium,
			Location:    "Block C, Apartment 5",
			Department:  "SANITATION",
		},
	}
	for _, input := range seeds {
		input.CreatedBy = citizen.ID
		input.CreatedByName = citizen.Name
		if _, err := b.ticketSvc.CreateTicket(ctx, input); err != nil {
			return err
		}
	}
	b.logger.Info("seeded demo tickets", zap.Int("count", len(seeds)))
	return nil
}
