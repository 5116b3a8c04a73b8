package http

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/MKhiriev/go-pulse-keeper/internal/config"
	"github.com/MKhiriev/go-pulse-keeper/internal/logger"
	"github.com/MKhiriev/go-pulse-keeper/internal/service"
	"github.com/MKhiriev/go-pulse-keeper/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// newRouterHandler builds a Handler with enough configuration for Init to
// stand up the full middleware chain.
func newRouterHandler(env string, services *service.Services) *Handler {
	cfg := &config.StructuredConfig{}
	cfg.App.Env = env
	cfg.Server.RateLimitRequests = config.DefaultRateLimitRequests
	cfg.Server.RateLimitWindow = time.Minute

	return &Handler{
		services: services,
		cfg:      cfg,
		logger:   logger.Nop(),
	}
}

func TestRoutes_Health(t *testing.T) {
	h := newRouterHandler(config.EnvTest, &service.Services{})
	router := h.Init()

	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	rr := httptest.NewRecorder()
	router.ServeHTTP(rr, req)

	require.Equal(t, http.StatusOK, rr.Code)
	assert.JSONEq(t, `{"status":"healthy"}`, rr.Body.String())
	assert.Equal(t, "application/json", rr.Header().Get("Content-Type"))
}

func TestRoutes_SecurityHeaders(t *testing.T) {
	h := newRouterHandler(config.EnvTest, &service.Services{})
	router := h.Init()

	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	rr := httptest.NewRecorder()
	router.ServeHTTP(rr, req)

	assert.Equal(t, "nosniff", rr.Header().Get("X-Content-Type-Options"))
	assert.Equal(t, "DENY", rr.Header().Get("X-Frame-Options"))
	assert.Equal(t, "no-referrer", rr.Header().Get("Referrer-Policy"))
	assert.NotEmpty(t, rr.Header().Get("Content-Security-Policy"))

	// HSTS is reserved for production deployments behind TLS.
	assert.Empty(t, rr.Header().Get("Strict-Transport-Security"))
}

func TestRoutes_SecurityHeaders_ProductionHSTS(t *testing.T) {
	h := newRouterHandler(config.EnvProduction, &service.Services{})
	router := h.Init()

	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	rr := httptest.NewRecorder()
	router.ServeHTTP(rr, req)

	assert.Contains(t, rr.Header().Get("Strict-Transport-Security"), "max-age=")
}

func TestRoutes_TraceIDHeader(t *testing.T) {
	h := newRouterHandler(config.EnvTest, &service.Services{})
	router := h.Init()

	t.Run("generated when absent", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/health", nil)
		rr := httptest.NewRecorder()
		router.ServeHTTP(rr, req)

		assert.NotEmpty(t, rr.Header().Get("X-Trace-ID"))
	})

	t.Run("propagated when present", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/health", nil)
		req.Header.Set("X-Trace-ID", "trace-from-client")
		rr := httptest.NewRecorder()
		router.ServeHTTP(rr, req)

		assert.Equal(t, "trace-from-client", rr.Header().Get("X-Trace-ID"))
	})
}

func TestRoutes_ProtectedRoutesRequireToken(t *testing.T) {
	h := newRouterHandler(config.EnvTest, &service.Services{
		AuthService: &mockAuthService{
			parseTokenFn: func(_ context.Context, _ string) (models.Token, error) {
				t.Fatal("ParseToken should not be called without a header")
				return models.Token{}, nil
			},
		},
	})
	router := h.Init()

	protected := []struct {
		method string
		target string
	}{
		{http.MethodGet, "/api/auth/login"},
		{http.MethodGet, "/api/users/login"},
		{http.MethodPost, "/api/data"},
		{http.MethodGet, "/api/data"},
		{http.MethodGet, "/api/data/range"},
		{http.MethodGet, "/api/data/1"},
	}

	for _, route := range protected {
		t.Run(route.method+" "+route.target, func(t *testing.T) {
			req := httptest.NewRequest(route.method, route.target, nil)
			rr := httptest.NewRecorder()
			router.ServeHTTP(rr, req)

			assert.Equal(t, http.StatusUnauthorized, rr.Code)
		})
	}
}

func TestRoutes_AuthenticatedFlowThroughRouter(t *testing.T) {
	h := newRouterHandler(config.EnvTest, &service.Services{
		AuthService: &mockAuthService{
			parseTokenFn: func(_ context.Context, _ string) (models.Token, error) {
				return models.Token{UserID: 7}, nil
			},
		},
		DataPointService: &mockDataPointService{
			dataPointsByUserFn: func(_ context.Context, userID int64) ([]models.DataPoint, error) {
				return []models.DataPoint{{ID: 1, UserID: userID}}, nil
			},
		},
	})
	router := h.Init()

	req := httptest.NewRequest(http.MethodGet, "/api/data", nil)
	req.Header.Set("Authorization", "Bearer valid-token")
	rr := httptest.NewRecorder()
	router.ServeHTTP(rr, req)

	require.Equal(t, http.StatusOK, rr.Code)
	assert.Contains(t, rr.Body.String(), `"user_id":7`)
}

func TestRoutes_UserLoginTakesPrecedenceOverUserByID(t *testing.T) {
	h := newRouterHandler(config.EnvTest, &service.Services{
		AuthService: &mockAuthService{
			parseTokenFn: func(_ context.Context, _ string) (models.Token, error) {
				return models.Token{UserID: 7}, nil
			},
		},
		UserService: &mockUserService{
			userByIDFn: func(_ context.Context, userID int64) (models.User, error) {
				return models.User{UserID: userID, Username: "ivan"}, nil
			},
		},
	})
	router := h.Init()

	req := httptest.NewRequest(http.MethodGet, "/api/users/login", nil)
	req.Header.Set("Authorization", "Bearer valid-token")
	rr := httptest.NewRecorder()
	router.ServeHTTP(rr, req)

	// The static segment must route to currentUser, not userByID("login").
	require.Equal(t, http.StatusOK, rr.Code)
	assert.Contains(t, rr.Body.String(), `"id":7`)
}
