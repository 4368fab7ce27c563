package handler

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/alexdelx20/WeddingDream/internal/middleware"
	"github.com/alexdelx20/WeddingDream/internal/models"
	"github.com/alexdelx20/WeddingDream/internal/service"
	"github.com/alexdelx20/WeddingDream/internal/storage/memory"
	"github.com/alexdelx20/WeddingDream/internal/ws"
	jwtPkg "github.com/alexdelx20/WeddingDream/pkg/jwt"
	"github.com/alexdelx20/WeddingDream/pkg/utils"
)

// fakeHub records broadcasts instead of writing to websockets.
type fakeHub struct {
	events []ws.Event
}

func (f *fakeHub) Broadcast(ev ws.Event) {
	f.events = append(f.events, ev)
}

type testEnv struct {
	app   *fiber.App
	store *memory.Storage
	hub   *fakeHub
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()
	t.Setenv("JWT_SECRET", "test-secret")

	store := memory.New()
	hub := &fakeHub{}
	v := utils.NewValidator()
	logger := zap.NewNop()

	app := fiber.New()
	api := app.Group("/api")
	api.Use(middleware.AuthMiddleware())

	api.Get("/wedding-settings", NewSettingsHandler(store, v, hub, logger).GetSettings)
	api.Post("/wedding-settings", NewSettingsHandler(store, v, hub, logger).SaveSettings)

	NewTaskHandler(store, v, hub, logger).RegisterRoutes(api, "/tasks")
	NewBudgetHandler(store, v, hub, logger).RegisterRoutes(api, "/budget")
	NewGuestHandler(store, v, hub, logger).RegisterRoutes(api, "/guests")
	NewVendorHandler(store, v, hub, logger).RegisterRoutes(api, "/vendors")
	NewTimelineHandler(store, v, hub, logger).RegisterRoutes(api, "/timeline")

	api.Get("/dashboard", NewDashboardHandler(service.NewDashboardService(store), logger).GetSummary)

	return &testEnv{app: app, store: store, hub: hub}
}

// newUser creates a user in the store and returns a valid bearer token.
func (e *testEnv) newUser(t *testing.T, username string) (uint, string) {
	t.Helper()

	user := &models.User{
		Username: username,
		Email:    username + "@example.com",
		Password: "hash",
	}
	require.NoError(t, e.store.CreateUser(user))

	token, err := jwtPkg.GenerateToken(user.Email, user.ID)
	require.NoError(t, err)

	return user.ID, token
}

func (e *testEnv) request(t *testing.T, method, path, token string, body any) *http.Response {
	t.Helper()

	var reader io.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(payload)
	}

	req := httptest.NewRequest(method, path, reader)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := e.app.Test(req)
	require.NoError(t, err)
	return resp
}

func decode[T any](t *testing.T, resp *http.Response) T {
	t.Helper()
	var out T
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&out))
	return out
}

func TestRequestsWithoutTokenAreRejected(t *testing.T) {
	env := newTestEnv(t)

	resp := env.request(t, http.MethodGet, "/api/tasks", "", nil)
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)

	resp = env.request(t, http.MethodPost, "/api/guests", "", fiber.Map{"name": "x"})
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
}

func TestCreateTask(t *testing.T) {
	env := newTestEnv(t)
	userID, token := env.newUser(t, "alex")

	resp := env.request(t, http.MethodPost, "/api/tasks", token, fiber.Map{
		"title":    "Book venue",
		"priority": "high",
		"dueDate":  "2026-09-01",
	})
	require.Equal(t, http.StatusCreated, resp.StatusCode)

	task := decode[models.Task](t, resp)
	assert.Equal(t, userID, task.UserID)
	assert.Equal(t, "Book venue", task.Title)
	assert.Equal(t, models.TaskPriorityHigh, task.Priority)
	require.NotNil(t, task.DueDate)
	assert.NotZero(t, task.ID)

	require.Len(t, env.hub.events, 1)
	assert.Equal(t, "TASK_CREATED", env.hub.events[0].Type)
}

func TestCreateTaskAppliesDefaults(t *testing.T) {
	env := newTestEnv(t)
	_, token := env.newUser(t, "alex")

	resp := env.request(t, http.MethodPost, "/api/tasks", token, fiber.Map{"title": "Plain"})
	require.Equal(t, http.StatusCreated, resp.StatusCode)

	task := decode[models.Task](t, resp)
	assert.Equal(t, models.TaskPriorityMedium, task.Priority)
	assert.False(t, task.Completed)
}

func TestCreateIgnoresClientSuppliedOwner(t *testing.T) {
	env := newTestEnv(t)
	userID, token := env.newUser(t, "alex")

	resp := env.request(t, http.MethodPost, "/api/tasks", token, fiber.Map{
		"title":  "Sneaky",
		"userId": 999,
	})
	require.Equal(t, http.StatusCreated, resp.StatusCode)

	task := decode[models.Task](t, resp)
	assert.Equal(t, userID, task.UserID)
}

func TestCreateTaskValidation(t *testing.T) {
	env := newTestEnv(t)
	_, token := env.newUser(t, "alex")

	// Missing required title
	resp := env.request(t, http.MethodPost, "/api/tasks", token, fiber.Map{"description": "no title"})
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)

	// Priority outside the enum
	resp = env.request(t, http.MethodPost, "/api/tasks", token, fiber.Map{"title": "x", "priority": "urgent"})
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)

	assert.Empty(t, env.hub.events)
}

func TestListReturnsEmptyArrayNotNull(t *testing.T) {
	env := newTestEnv(t)
	_, token := env.newUser(t, "alex")

	resp := env.request(t, http.MethodGet, "/api/vendors", token, nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	assert.JSONEq(t, "[]", string(body))
}

func TestOwnershipIsolation(t *testing.T) {
	env := newTestEnv(t)
	_, aliceToken := env.newUser(t, "alice")
	_, bobToken := env.newUser(t, "bob")

	resp := env.request(t, http.MethodPost, "/api/guests", aliceToken, fiber.Map{"name": "Aunt Carol"})
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	guest := decode[models.Guest](t, resp)

	path := fmt.Sprintf("/api/guests/%d", guest.ID)

	// Bob cannot see, change or delete Alice's guest; every attempt
	// looks like the record does not exist.
	resp = env.request(t, http.MethodGet, path, bobToken, nil)
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)

	resp = env.request(t, http.MethodPatch, path, bobToken, fiber.Map{"rsvpStatus": "declined"})
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)

	resp = env.request(t, http.MethodDelete, path, bobToken, nil)
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)

	// Alice still sees the untouched record
	resp = env.request(t, http.MethodGet, path, aliceToken, nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	unchanged := decode[models.Guest](t, resp)
	assert.Equal(t, models.RsvpPending, unchanged.RsvpStatus)

	// Bob's list is empty; no cross-user leakage
	resp = env.request(t, http.MethodGet, "/api/guests", bobToken, nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	guests := decode[[]models.Guest](t, resp)
	assert.Empty(t, guests)
}

func TestPartialUpdateLeavesOtherFieldsAlone(t *testing.T) {
	env := newTestEnv(t)
	_, token := env.newUser(t, "alex")

	resp := env.request(t, http.MethodPost, "/api/tasks", token, fiber.Map{
		"title":    "Order cake",
		"priority": "high",
		"dueDate":  "2026-08-15",
	})
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	task := decode[models.Task](t, resp)

	resp = env.request(t, http.MethodPatch, fmt.Sprintf("/api/tasks/%d", task.ID), token, fiber.Map{
		"completed": true,
	})
	require.Equal(t, http.StatusOK, resp.StatusCode)

	updated := decode[models.Task](t, resp)
	assert.True(t, updated.Completed)
	assert.Equal(t, "Order cake", updated.Title)
	assert.Equal(t, models.TaskPriorityHigh, updated.Priority)
	require.NotNil(t, updated.DueDate)

	assert.Equal(t, "TASK_UPDATED", env.hub.events[len(env.hub.events)-1].Type)
}

func TestDeleteThenDeleteAgain(t *testing.T) {
	env := newTestEnv(t)
	_, token := env.newUser(t, "alex")

	resp := env.request(t, http.MethodPost, "/api/vendors", token, fiber.Map{
		"name":     "Dream Flowers",
		"category": "Florist",
	})
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	vendor := decode[models.Vendor](t, resp)

	path := fmt.Sprintf("/api/vendors/%d", vendor.ID)

	resp = env.request(t, http.MethodDelete, path, token, nil)
	assert.Equal(t, http.StatusNoContent, resp.StatusCode)
	assert.Equal(t, "VENDOR_DELETED", env.hub.events[len(env.hub.events)-1].Type)

	resp = env.request(t, http.MethodDelete, path, token, nil)
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
}

func TestBroadcastEventPerMutation(t *testing.T) {
	env := newTestEnv(t)
	_, token := env.newUser(t, "alex")

	resp := env.request(t, http.MethodPost, "/api/timeline", token, fiber.Map{
		"title":        "Send save-the-dates",
		"monthsBefore": 8,
	})
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	event := decode[models.TimelineEvent](t, resp)

	env.request(t, http.MethodPatch, fmt.Sprintf("/api/timeline/%d", event.ID), token, fiber.Map{"completed": true})
	env.request(t, http.MethodDelete, fmt.Sprintf("/api/timeline/%d", event.ID), token, nil)

	require.Len(t, env.hub.events, 3)
	assert.Equal(t, "TIMELINE_CREATED", env.hub.events[0].Type)
	assert.Equal(t, "TIMELINE_UPDATED", env.hub.events[1].Type)
	assert.Equal(t, "TIMELINE_DELETED", env.hub.events[2].Type)
}

func TestDashboardSummaryEndpoint(t *testing.T) {
	env := newTestEnv(t)
	_, token := env.newUser(t, "alex")

	env.request(t, http.MethodPost, "/api/tasks", token, fiber.Map{"title": "done", "completed": true})
	env.request(t, http.MethodPost, "/api/tasks", token, fiber.Map{"title": "open"})
	env.request(t, http.MethodPost, "/api/budget", token, fiber.Map{"name": "Venue", "estimatedCost": 1000, "actualCost": 400})

	resp := env.request(t, http.MethodGet, "/api/dashboard", token, nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	summary := decode[models.DashboardSummary](t, resp)
	assert.Equal(t, 2, summary.TotalTasks)
	assert.Equal(t, 1, summary.CompletedTasks)
	assert.Equal(t, 50, summary.TaskPercent)
	assert.Equal(t, 600, summary.RemainingBudget)
	assert.Equal(t, 40, summary.BudgetPercent)
}
