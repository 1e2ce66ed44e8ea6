package http_test

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	httptransport "github.com/civichub/mts/internal/api/http"
	"github.com/civichub/mts/internal/api/http/handlers"
	"github.com/civichub/mts/internal/auth"
	"github.com/civichub/mts/internal/cache"
	"github.com/civichub/mts/internal/config"
	"github.com/civichub/mts/internal/events"
	"github.com/civichub/mts/internal/observability"
	"github.com/civichub/mts/internal/persistence"
	"github.com/civichub/mts/internal/repository"
	"github.com/civichub/mts/internal/service"
)

// newTestApp wires the full HTTP surface over the in-memory store and runs
// the bootstrap seed, so the demo accounts are available for login.
func newTestApp(t *testing.T) *fiber.App {
	t.Helper()

	cfg := config.Config{
		App: config.AppConfig{Name: "mts-test", Version: "test"},
		Auth: config.AuthConfig{
			JWTSecret:             "test-secret-key-for-unit-tests",
			AccessTokenTTLMinutes: 60,
			BcryptCost:            4,
		},
	}

	users := repository.NewMemoryUserRepository()
	tickets := repository.NewMemoryTicketRepository()
	departments := repository.NewMemoryDepartmentRepository()
	dispatcher := events.NewInMemoryDispatcher()

	authService := service.NewAuthService(cfg, service.AuthDependencies{
		UserRepo:   users,
		Dispatcher: dispatcher,
	})
	ticketService := service.NewTicketService(service.TicketDependencies{
		TicketRepo: tickets,
		Dispatcher: dispatcher,
	})
	departmentService := service.NewDepartmentService(service.DepartmentDependencies{
		DepartmentRepo: departments,
		Cache:          cache.NewDepartmentCache(nil, 0, zap.NewNop()),
	})
	userService := service.NewUserService(service.UserDependencies{UserRepo: users})

	bootstrap := service.NewBootstrap(cfg, service.BootstrapDependencies{
		UserRepo:       users,
		TicketRepo:     tickets,
		DepartmentRepo: departments,
		TicketService:  ticketService,
	}, zap.NewNop())
	if err := bootstrap.Run(context.Background()); err != nil {
		t.Fatalf("bootstrap: %v", err)
	}

	app := fiber.New()
	httptransport.RegisterMiddlewares(app, zap.NewNop(), observability.NewMetrics(), 0)
	httptransport.RegisterRoutes(app, httptransport.RouteConfig{
		Health:         handlers.NewHealthHandler(cfg.App.Name, cfg.App.Version, &persistence.Postgres{}, &persistence.Redis{}),
		Auth:           handlers.NewAuthHandler(authService),
		Tickets:        handlers.NewTicketsHandler(ticketService),
		Departments:    handlers.NewDepartmentsHandler(departmentService),
		Users:          handlers.NewUsersHandler(userService),
		AuthMiddleware: auth.NewMiddleware(authService.TokenManager(), users),
	})
	return app
}

func doJSON(t *testing.T, app *fiber.App, method, path, token string, body any) *http.Response {
	t.Helper()

	var reader io.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		if err != nil {
			t.Fatalf("marshal body: %v", err)
		}
		reader = bytes.NewReader(raw)
	}
	req := httptest.NewRequest(method, path, reader)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := app.Test(req, 5000)
	if err != nil {
		t.Fatalf("%s %s: %v", method, path, err)
	}
	return resp
}

func decodeBody(t *testing.T, resp *http.Response) map[string]any {
	t.Helper()
	defer resp.Body.Close()
	var payload map[string]any
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		t.Fatalf("decode body: %v", err)
	}
	return payload
}

func login(t *testing.T, app *fiber.App, username, password string) string {
	t.Helper()
	resp := doJSON(t, app, http.MethodPost, "/api/auth/login", "", fiber.Map{
		"username": username,
		"password": password,
	})
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("login %s: status %d", username, resp.StatusCode)
	}
	payload := decodeBody(t, resp)
	data := payload["data"].(map[string]any)
	authData := data["auth"].(map[string]any)
	return authData["token"].(string)
}

func TestHealthLive(t *testing.T) {
	app := newTestApp(t)
	resp := doJSON(t, app, http.MethodGet, "/health/live", "", nil)
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("expected 200, got %d", resp.StatusCode)
	}
}

func TestLoginFailureReturnsUnauthorized(t *testing.T) {
	app := newTestApp(t)
	resp := doJSON(t, app, http.MethodPost, "/api/auth/login", "", fiber.Map{
		"username": "citizen1",
		"password": "wrong",
	})
	if resp.StatusCode != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %d", resp.StatusCode)
	}
	payload := decodeBody(t, resp)
	errObj := payload["error"].(map[string]any)
	if errObj["code"] != "UNAUTHORIZED" {
		t.Fatalf("expected UNAUTHORIZED code, got %v", errObj["code"])
	}
}

func TestRegisterConflict(t *testing.T) {
	app := newTestApp(t)
	resp := doJSON(t, app, http.MethodPost, "/api/auth/register", "", fiber.Map{
		"username": "citizen1",
		"password": "whatever",
		"name":     "Impostor",
	})
	if resp.StatusCode != http.StatusConflict {
		t.Fatalf("expected 409, got %d", resp.StatusCode)
	}
}

func TestTicketEndpointsRequireAuth(t *testing.T) {
	app := newTestApp(t)
	resp := doJSON(t, app, http.MethodGet, "/api/tickets", "", nil)
	if resp.StatusCode != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %d", resp.StatusCode)
	}
}

func TestTicketLifecycleOverHTTP(t *testing.T) {
	app := newTestApp(t)
	token := login(t, app, "citizen1", "password")

	resp := doJSON(t, app, http.MethodPost, "/api/tickets", token, fiber.Map{
		"title":       "Pothole on 5th Avenue",
		"description": "Large pothole breaking axles.",
		"category":    "ROADS",
		"priority":    "HIGH",
		"location":    "5th Avenue",
		"department":  "SANITATION",
	})
	if resp.StatusCode != http.StatusCreated {
		t.Fatalf("expected 201, got %d", resp.StatusCode)
	}
	created := decodeBody(t, resp)["data"].(map[string]any)
	if created["status"] != "OPEN" {
		t.Fatalf("expected OPEN status, got %v", created["status"])
	}
	ticketNumber, _ := created["ticketNumber"].(string)
	if !strings.HasPrefix(ticketNumber, "TKT") {
		t.Fatalf("unexpected ticket number %q", ticketNumber)
	}
	ticketID := created["id"].(string)

	// Unknown status string is rejected at the boundary.
	resp = doJSON(t, app, http.MethodPut, "/api/tickets/"+ticketID+"/status", token, fiber.Map{
		"status": "REOPENED",
	})
	if resp.StatusCode != http.StatusBadRequest {
		t.Fatalf("expected 400 for bad status, got %d", resp.StatusCode)
	}

	resp = doJSON(t, app, http.MethodPut, "/api/tickets/"+ticketID+"/status", token, fiber.Map{
		"status": "IN_PROGRESS",
	})
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("expected 200, got %d", resp.StatusCode)
	}
	updated := decodeBody(t, resp)["data"].(map[string]any)
	if updated["status"] != "IN_PROGRESS" {
		t.Fatalf("expected IN_PROGRESS, got %v", updated["status"])
	}

	resp = doJSON(t, app, http.MethodPut, "/api/tickets/00000000-0000-0000-0000-000000000000/status", token, fiber.Map{
		"status": "CLOSED",
	})
	if resp.StatusCode != http.StatusNotFound {
		t.Fatalf("expected 404, got %d", resp.StatusCode)
	}
}

func TestTicketCreateAcceptsRawPayload(t *testing.T) {
	app := newTestApp(t)
	token := login(t, app, "staff1", "password")

	// No description, no priority: the payload is stored as supplied, and a
	// caller-provided createdBy passes through untouched.
	resp := doJSON(t, app, http.MethodPost, "/api/tickets", token, fiber.Map{
		"title":         "Fallen tree",
		"department":    "SANITATION",
		"createdBy":     "walkin-citizen-id",
		"createdByName": "Walk-in Citizen",
	})
	if resp.StatusCode != http.StatusCreated {
		t.Fatalf("expected 201, got %d", resp.StatusCode)
	}
	created := decodeBody(t, resp)["data"].(map[string]any)
	if created["description"] != "" {
		t.Fatalf("expected empty description to be kept, got %v", created["description"])
	}
	if created["createdBy"] != "walkin-citizen-id" {
		t.Fatalf("caller-supplied createdBy discarded: got %v", created["createdBy"])
	}
	if created["createdByName"] != "Walk-in Citizen" {
		t.Fatalf("caller-supplied createdByName discarded: got %v", created["createdByName"])
	}
}

func TestTicketCreateDefaultsAttributionFromToken(t *testing.T) {
	app := newTestApp(t)
	token := login(t, app, "citizen1", "password")

	resp := doJSON(t, app, http.MethodPost, "/api/tickets", token, fiber.Map{
		"title":       "Broken bench",
		"description": "Bench in central square has a broken slat.",
		"department":  "SANITATION",
	})
	if resp.StatusCode != http.StatusCreated {
		t.Fatalf("expected 201, got %d", resp.StatusCode)
	}
	created := decodeBody(t, resp)["data"].(map[string]any)
	if created["createdBy"] == "" {
		t.Fatal("expected createdBy to default to the caller")
	}
	if created["createdByName"] != "John Doe" {
		t.Fatalf("expected caller name default, got %v", created["createdByName"])
	}
}

func TestTicketListModes(t *testing.T) {
	app := newTestApp(t)
	token := login(t, app, "citizen1", "password")

	resp := doJSON(t, app, http.MethodGet, "/api/tickets?department=SANITATION", token, nil)
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("expected 200, got %d", resp.StatusCode)
	}
	items := decodeBody(t, resp)["data"].([]any)
	if len(items) != 1 {
		t.Fatalf("expected 1 seeded sanitation ticket, got %d", len(items))
	}

	resp = doJSON(t, app, http.MethodGet, "/api/tickets?department=NOWHERE", token, nil)
	items = decodeBody(t, resp)["data"].([]any)
	if len(items) != 0 {
		t.Fatalf("expected empty list, got %d", len(items))
	}

	resp = doJSON(t, app, http.MethodGet, "/api/tickets", token, nil)
	items = decodeBody(t, resp)["data"].([]any)
	if len(items) != 2 {
		t.Fatalf("expected 2 seeded tickets, got %d", len(items))
	}
}

func TestAdminSurfacesAreRoleGated(t *testing.T) {
	app := newTestApp(t)
	citizenToken := login(t, app, "citizen1", "password")
	adminToken := login(t, app, "admin1", "password")

	resp := doJSON(t, app, http.MethodGet, "/api/users", citizenToken, nil)
	if resp.StatusCode != http.StatusForbidden {
		t.Fatalf("expected 403 for citizen, got %d", resp.StatusCode)
	}

	resp = doJSON(t, app, http.MethodGet, "/api/users", adminToken, nil)
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("expected 200 for admin, got %d", resp.StatusCode)
	}
	raw, err := io.ReadAll(resp.Body)
	resp.Body.Close()
	if err != nil {
		t.Fatalf("read body: %v", err)
	}
	if strings.Contains(string(raw), "password") {
		t.Fatal("user listing leaks password material")
	}
}

func TestDepartmentAdminOverHTTP(t *testing.T) {
	app := newTestApp(t)
	adminToken := login(t, app, "admin1", "password")

	resp := doJSON(t, app, http.MethodDelete, "/api/departments/WATER_SUPPLY", adminToken, nil)
	if resp.StatusCode != http.StatusNoContent {
		t.Fatalf("expected 204, got %d", resp.StatusCode)
	}

	resp = doJSON(t, app, http.MethodDelete, "/api/departments/WATER_SUPPLY", adminToken, nil)
	if resp.StatusCode != http.StatusNotFound {
		t.Fatalf("expected 404 on second delete, got %d", resp.StatusCode)
	}

	resp = doJSON(t, app, http.MethodPut, "/api/users/some-id/role", adminToken, fiber.Map{
		"role": "MAYOR",
	})
	if resp.StatusCode != http.StatusBadRequest {
		t.Fatalf("expected 400 for bad role, got %d", resp.StatusCode)
	}
}
