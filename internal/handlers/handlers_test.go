package handlers_test

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/ahmetcoskunkizilkaya/wellness-backend/internal/config"
	"github.com/ahmetcoskunkizilkaya/wellness-backend/internal/handlers"
	"github.com/ahmetcoskunkizilkaya/wellness-backend/internal/repository/memstore"
	"github.com/ahmetcoskunkizilkaya/wellness-backend/internal/routes"
	"github.com/ahmetcoskunkizilkaya/wellness-backend/internal/services"
	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

type envelope struct {
	Success bool              `json:"success"`
	Data    json.RawMessage   `json:"data"`
	Message string            `json:"message"`
	Errors  map[string]string `json:"errors"`
}

type pageEnvelope struct {
	Data            json.RawMessage `json:"data"`
	Page            int             `json:"page"`
	PageSize        int             `json:"pageSize"`
	TotalCount      int64           `json:"totalCount"`
	TotalPages      int             `json:"totalPages"`
	HasPreviousPage bool            `json:"hasPreviousPage"`
	HasNextPage     bool            `json:"hasNextPage"`
	Links           struct {
		Self     string  `json:"self"`
		First    string  `json:"first"`
		Last     string  `json:"last"`
		Previous *string `json:"previous"`
		Next     *string `json:"next"`
	} `json:"links"`
}

type testServer struct {
	app   *fiber.App
	store *memstore.Store
}

func testConfig() *config.Config {
	return &config.Config{
		Storage:       config.StorageMemory,
		JWTSecret:     "test-secret-at-least-32-chars-long-for-security",
		JWTIssuer:     "wellness-test",
		JWTExpiry:     time.Hour,
		BcryptCost:    bcrypt.MinCost,
		AuthRateLimit: 1000,
	}
}

func newServer(t *testing.T, cfg *config.Config) *testServer {
	t.Helper()
	store := memstore.New()

	accounts := services.NewAccountService(store, cfg)
	tips := services.NewTipService(store)
	require.NoError(t, tips.SeedDefaults(context.Background()))

	app := fiber.New(fiber.Config{ErrorHandler: handlers.ErrorHandler})
	routes.Setup(app, cfg, accounts,
		handlers.NewHealthHandler(store, cfg.Storage),
		handlers.NewAuthHandler(accounts),
		handlers.NewUserHandler(accounts),
		handlers.NewCheckinHandler(services.NewCheckinService(store)),
		handlers.NewInsightHandler(services.NewInsightService(store, store)),
		handlers.NewTipHandler(tips),
	)
	return &testServer{app: app, store: store}
}

func (s *testServer) do(t *testing.T, method, target, token string, body interface{}) (int, []byte) {
	t.Helper()

	var reader io.Reader
	if body != nil {
		b, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(b)
	}

	req := httptest.NewRequest(method, target, reader)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := s.app.Test(req, -1)
	require.NoError(t, err)
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	return resp.StatusCode, raw
}

type authData struct {
	Token string `json:"token"`
	User  struct {
		ID    string `json:"id"`
		Email string `json:"email"`
		Name  string `json:"name"`
	} `json:"user"`
}

// register creates an account and returns its token and user id.
func (s *testServer) register(t *testing.T, email, password string) authData {
	t.Helper()
	status, raw := s.do(t, http.MethodPost, "/api/auth/register", "", map[string]string{
		"email": email, "password": password, "name": "Test User",
	})
	require.Equal(t, http.StatusCreated, status, string(raw))

	var env envelope
	require.NoError(t, json.Unmarshal(raw, &env))
	var data authData
	require.NoError(t, json.Unmarshal(env.Data, &data))
	return data
}

func decode[T any](t *testing.T, raw []byte) T {
	t.Helper()
	var v T
	require.NoError(t, json.Unmarshal(raw, &v), string(raw))
	return v
}
