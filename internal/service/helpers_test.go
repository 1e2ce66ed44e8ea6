package service_test

import (
	"testing"

	"go.uber.org/zap"

	"github.com/civichub/mts/internal/cache"
	"github.com/civichub/mts/internal/config"
	"github.com/civichub/mts/internal/events"
	"github.com/civichub/mts/internal/repository"
	"github.com/civichub/mts/internal/service"
)

// Bcrypt cost 4 keeps the suite fast.
func testConfig() config.Config {
	return config.Config{
		Auth: config.AuthConfig{
			JWTSecret:             "test-secret-key-for-unit-tests",
			AccessTokenTTLMinutes: 60,
			BcryptCost:            4,
		},
	}
}

type fixture struct {
	users       repository.UserRepository
	tickets     repository.TicketRepository
	departments repository.DepartmentRepository

	auth      *service.AuthService
	ticketSvc *service.TicketService
	deptSvc   *service.DepartmentService
	userSvc   *service.UserService
	bootstrap *service.Bootstrap
}

// newFixture wires every service over the in-memory store, the way main does
// when no database is configured. The department cache runs without a Redis
// client and always falls through to the store.
func newFixture(t *testing.T) *fixture {
	t.Helper()

	cfg := testConfig()
	users := repository.NewMemoryUserRepository()
	tickets := repository.NewMemoryTicketRepository()
	departments := repository.NewMemoryDepartmentRepository()
	dispatcher := events.NewInMemoryDispatcher()

	ticketSvc := service.NewTicketService(service.TicketDependencies{
		TicketRepo: tickets,
		Dispatcher: dispatcher,
	})

	return &fixture{
		users:       users,
		tickets:     tickets,
		departments: departments,
		auth: service.NewAuthService(cfg, service.AuthDependencies{
			UserRepo:   users,
			Dispatcher: dispatcher,
		}),
		ticketSvc: ticketSvc,
		deptSvc: service.NewDepartmentService(service.DepartmentDependencies{
			DepartmentRepo: departments,
			Cache:          cache.NewDepartmentCache(nil, 0, zap.NewNop()),
		}),
		userSvc: service.NewUserService(service.UserDependencies{
			UserRepo: users,
		}),
		bootstrap: service.NewBootstrap(cfg, service.BootstrapDependencies{
			UserRepo:       users,
			TicketRepo:     tickets,
			DepartmentRepo: departments,
			TicketService:  ticketSvc,
		}, zap.NewNop()),
	}
}
