package session

import (
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/gorilla/securecookie"

	"github.com/m04kA/Mila-BookingService/internal/domain"
)

var (
	// ErrNoSession возвращается, если в запросе нет токена
	ErrNoSession = errors.New("session: no session token")

	// ErrInvalidToken возвращается при поддельном, повреждённом или просроченном токене
	ErrInvalidToken = errors.New("session: invalid session token")
)

// Session данные, зашитые в подписанный токен
type Session struct {
	UserID   int64
	Role     domain.UserRole
	IssuedAt int64
}

// Manager выпускает и проверяет токены сессии (securecookie).
// Один и тот же токен передаётся в cookie и в заголовке Authorization: Bearer
type Manager struct {
	sc         *securecookie.SecureCookie
	cookieName string
	ttl        time.Duration
	secure     bool
}

// NewManager создает менеджер сессий. blockKey может быть пустым - тогда токен
// только подписывается, без шифрования
func NewManager(hashKey, blockKey []byte, cookieName string, ttl time.Duration, secure bool) *Manager {
	if len(blockKey) == 0 {
		blockKey = nil
	}
	sc := securecookie.New(hashKey, blockKey)
	sc.MaxAge(int(ttl.Seconds()))
	return &Manager{
		sc:         sc,
		cookieName: cookieName,
		ttl:        ttl,
		secure:     secure,
	}
}

// Encode выпускает токен для пользователя
func (m *Manager) Encode(userID int64, role domain.UserRole) (string, error) {
	token, err := m.sc.Encode(m.cookieName, Session{
		UserID:   userID,
		Role:     role,
		IssuedAt: time.Now().Unix(),
	})
	if err != nil {
		return "", fmt.Errorf("session: encode: %w", err)
	}
	return token, nil
}

// Decode проверяет подпись и срок действия токена
func (m *Manager) Decode(token string) (*Session, error) {
	var s Session
	if err := m.sc.Decode(m.cookieName, token, &s); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidToken, err)
	}
	if s.UserID <= 0 {
		return nil, ErrInvalidToken
	}
	return &s, nil
}

// FromRequest достаёт сессию из cookie или заголовка Authorization: Bearer
func (m *Manager) FromRequest(r *http.Request) (*Session, error) {
	if c, err := r.Cookie(m.cookieName); err == nil && c.Value != "" {
		return m.Decode(c.Value)
	}

	if auth := r.Header.Get("Authorization"); auth != "" {
		token, ok := strings.CutPrefix(auth, "Bearer ")
		if !ok || strings.TrimSpace(token) == "" {
			return nil, ErrInvalidToken
		}
		return m.Decode(strings.TrimSpace(token))
	}

	return nil, ErrNoSession
}

// SetCookie кладёт токен в cookie ответа
func (m *Manager) SetCookie(w http.ResponseWriter, token string) {
	http.SetCookie(w, &http.Cookie{
		Name:     m.cookieName,
		Value:    token,
		Path:     "/",
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
		Secure:   m.secure,
		MaxAge:   int(m.ttl.Seconds()),
	})
}

// ClearCookie удаляет cookie сессии
func (m *Manager) ClearCookie(w http.ResponseWriter) {
	http.SetCookie(w, &http.Cookie{
		Name:     m.cookieName,
		Value:    "",
		Path:     "/",
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
		Secure:   m.secure,
		MaxAge:   -1,
	})
}
