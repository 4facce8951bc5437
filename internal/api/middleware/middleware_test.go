package middleware_test

import (
	"net/http"
	"net/http/httptest"
	"strconv"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/gorilla/mux"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/Mila-BookingService/internal/api/middleware"
	"github.com/m04kA/Mila-BookingService/internal/domain"
	"github.com/m04kA/Mila-BookingService/internal/infra/session"
	"github.com/m04kA/Mila-BookingService/pkg/logger"
	"github.com/m04kA/Mila-BookingService/pkg/metrics"
)

var hashKey = []byte("0123456789abcdef0123456789abcdef")

func newSessions() *session.Manager {
	return session.NewManager(hashKey, nil, "mila_session", time.Hour, false)
}

// whoAmI отвечает ID и ролью пользователя из контекста
func whoAmI(t *testing.T) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		id, ok := middleware.GetUserID(r.Context())
		require.True(t, ok)
		role, ok := middleware.GetRole(r.Context())
		require.True(t, ok)
		w.Header().Set("X-User", string(role))
		w.Header().Set("X-User-ID", strconv.FormatInt(id, 10))
		w.WriteHeader(http.StatusOK)
	})
}

func TestAuth(t *testing.T) {
	sessions := newSessions()
	h := middleware.Auth(sessions, logger.NewNop())(whoAmI(t))

	t.Run("bearer token", func(t *testing.T) {
		token, err := sessions.Encode(5, domain.RoleClient)
		require.NoError(t, err)

		req := httptest.NewRequest(http.MethodGet, "/api/v1/me", nil)
		req.Header.Set("Authorization", "Bearer "+token)
		rec := httptest.NewRecorder()

		h.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, "client", rec.Header().Get("X-User"))
		assert.Equal(t, "5", rec.Header().Get("X-User-ID"))
	})

	t.Run("session cookie", func(t *testing.T) {
		token, err := sessions.Encode(1, domain.RoleAdmin)
		require.NoError(t, err)

		req := httptest.NewRequest(http.MethodGet, "/api/v1/me", nil)
		req.AddCookie(&http.Cookie{Name: "mila_session", Value: token})
		rec := httptest.NewRecorder()

		h.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, "admin", rec.Header().Get("X-User"))
	})

	t.Run("missing token", func(t *testing.T) {
		rec := httptest.NewRecorder()

		h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/v1/me", nil))

		assert.Equal(t, http.StatusUnauthorized, rec.Code)
		assert.JSONEq(t, `{"code":401,"message":"authentication required"}`, rec.Body.String())
	})

	t.Run("forged token", func(t *testing.T) {
		other := session.NewManager([]byte("ffffffffffffffffffffffffffffffff"), nil, "mila_session", time.Hour, false)
		token, err := other.Encode(1, domain.RoleAdmin)
		require.NoError(t, err)

		req := httptest.NewRequest(http.MethodGet, "/api/v1/me", nil)
		req.Header.Set("Authorization", "Bearer "+token)
		rec := httptest.NewRecorder()

		h.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusUnauthorized, rec.Code)
	})
}

func TestRequireRole(t *testing.T) {
	ok := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) { w.WriteHeader(http.StatusOK) })
	h := middleware.RequireRole(domain.RoleAdmin, logger.NewNop())(ok)

	tests := []struct {
		name string
		req  *http.Request
		want int
	}{
		{
			name: "admin passes",
			req: httptest.NewRequest(http.MethodGet, "/", nil).WithContext(
				middleware.WithUser(httptest.NewRequest(http.MethodGet, "/", nil).Context(), 1, domain.RoleAdmin)),
			want: http.StatusOK,
		},
		{
			name: "client is forbidden",
			req: httptest.NewRequest(http.MethodGet, "/", nil).WithContext(
				middleware.WithUser(httptest.NewRequest(http.MethodGet, "/", nil).Context(), 2, domain.RoleClient)),
			want: http.StatusForbidden,
		},
		{
			name: "anonymous is unauthorized",
			req:  httptest.NewRequest(http.MethodGet, "/", nil),
			want: http.StatusUnauthorized,
		},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			rec := httptest.NewRecorder()
			h.ServeHTTP(rec, tc.req)
			assert.Equal(t, tc.want, rec.Code)
		})
	}
}

func TestRequestID(t *testing.T) {
	var seen string
	h := middleware.RequestID(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		seen = middleware.GetRequestID(r.Context())
	}))

	t.Run("generates id", func(t *testing.T) {
		rec := httptest.NewRecorder()
		h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))

		_, err := uuid.Parse(seen)
		require.NoError(t, err)
		assert.Equal(t, seen, rec.Header().Get(middleware.RequestIDHeader))
	})

	t.Run("keeps incoming uuid", func(t *testing.T) {
		incoming := uuid.NewString()
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		req.Header.Set(middleware.RequestIDHeader, incoming)
		rec := httptest.NewRecorder()

		h.ServeHTTP(rec, req)

		assert.Equal(t, incoming, seen)
	})

	t.Run("replaces garbage", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		req.Header.Set(middleware.RequestIDHeader, "<script>")
		rec := httptest.NewRecorder()

		h.ServeHTTP(rec, req)

		assert.NotEqual(t, "<script>", seen)
	})
}

func TestMetrics_UsesRouteTemplate(t *testing.T) {
	reg := prometheus.NewRegistry()
	m := metrics.New("mila-test", reg)

	r := mux.NewRouter()
	r.Use(middleware.Metrics(m))
	r.HandleFunc("/api/v1/bookings/{bookingId}", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	}).Methods(http.MethodGet)

	for _, id := range []string{"1", "2", "3"} {
		rec := httptest.NewRecorder()
		r.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/v1/bookings/"+id, nil))
	}

	got := testutil.ToFloat64(m.HTTPRequestsTotal.WithLabelValues(http.MethodGet, "/api/v1/bookings/{bookingId}", "404"))
	assert.Equal(t, 3.0, got)
}

func TestRateLimiter(t *testing.T) {
	limiter := middleware.NewRateLimiter(1, 2, logger.NewNop())
	h := limiter.Middleware(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	}))

	call := func(addr string) int {
		req := httptest.NewRequest(http.MethodPost, "/api/v1/auth/login", nil)
		req.RemoteAddr = addr
		rec := httptest.NewRecorder()
		h.ServeHTTP(rec, req)
		return rec.Code
	}

	assert.Equal(t, http.StatusOK, call("10.0.0.1:5000"))
	assert.Equal(t, http.StatusOK, call("10.0.0.1:5001"))
	assert.Equal(t, http.StatusTooManyRequests, call("10.0.0.1:5002"))

	// Другой IP имеет собственный лимит
	assert.Equal(t, http.StatusOK, call("10.0.0.2:5000"))
}
