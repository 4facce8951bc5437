package session_test

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/Mila-BookingService/internal/domain"
	"github.com/m04kA/Mila-BookingService/internal/infra/session"
)

var hashKey = []byte("0123456789abcdef0123456789abcdef")

func newManager() *session.Manager {
	return session.NewManager(hashKey, nil, "mila_session", time.Hour, false)
}

func TestManager_EncodeDecode(t *testing.T) {
	m := newManager()

	token, err := m.Encode(2, domain.RoleClient)
	require.NoError(t, err)

	s, err := m.Decode(token)
	require.NoError(t, err)
	assert.Equal(t, int64(2), s.UserID)
	assert.Equal(t, domain.RoleClient, s.Role)
}

func TestManager_DecodeRejectsForeignKey(t *testing.T) {
	other := session.NewManager([]byte("ffffffffffffffffffffffffffffffff"), nil, "mila_session", time.Hour, false)
	token, err := other.Encode(1, domain.RoleAdmin)
	require.NoError(t, err)

	_, err = newManager().Decode(token)
	assert.ErrorIs(t, err, session.ErrInvalidToken)
}

func TestManager_FromRequest(t *testing.T) {
	m := newManager()
	token, err := m.Encode(1, domain.RoleAdmin)
	require.NoError(t, err)

	t.Run("cookie", func(t *testing.T) {
		r := httptest.NewRequest(http.MethodGet, "/", nil)
		r.AddCookie(&http.Cookie{Name: "mila_session", Value: token})

		s, err := m.FromRequest(r)
		require.NoError(t, err)
		assert.Equal(t, domain.RoleAdmin, s.Role)
	})

	t.Run("bearer header", func(t *testing.T) {
		r := httptest.NewRequest(http.MethodGet, "/", nil)
		r.Header.Set("Authorization", "Bearer "+token)

		s, err := m.FromRequest(r)
		require.NoError(t, err)
		assert.Equal(t, int64(1), s.UserID)
	})

	t.Run("malformed header", func(t *testing.T) {
		r := httptest.NewRequest(http.MethodGet, "/", nil)
		r.Header.Set("Authorization", "Basic abc")

		_, err := m.FromRequest(r)
		assert.ErrorIs(t, err, session.ErrInvalidToken)
	})

	t.Run("no token", func(t *testing.T) {
		r := httptest.NewRequest(http.MethodGet, "/", nil)

		_, err := m.FromRequest(r)
		assert.ErrorIs(t, err, session.ErrNoSession)
	})
}

func TestManager_Cookies(t *testing.T) {
	m := newManager()

	rec := httptest.NewRecorder()
	m.SetCookie(rec, "token-value")
	cookies := rec.Result().Cookies()
	require.Len(t, cookies, 1)
	assert.Equal(t, "mila_session", cookies[0].Name)
	assert.True(t, cookies[0].HttpOnly)
	assert.Equal(t, 3600, cookies[0].MaxAge)

	rec = httptest.NewRecorder()
	m.ClearCookie(rec)
	cookies = rec.Result().Cookies()
	require.Len(t, cookies, 1)
	assert.Equal(t, -1, cookies[0].MaxAge)
}
