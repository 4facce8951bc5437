package models

import (
	"errors"
	"net/mail"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/m04kA/Mila-BookingService/internal/domain"
)

// DefaultCountryCode код страны, если клиент его не передал
const DefaultCountryCode = "+1"

var (
	ErrNameRequired    = errors.New("name is required")
	ErrNameTooLong     = errors.New("name is too long")
	ErrInvalidEmail    = errors.New("invalid email")
	ErrInvalidLanguage = errors.New("language must be en or es")
	ErrInvalidTheme    = errors.New("theme must be light or dark")
)

// LoginRequest вход по номеру телефона
type LoginRequest struct {
	Phone       string `json:"phone"`
	CountryCode string `json:"countryCode"`
}

// RegisterRequest регистрация клиента
type RegisterRequest struct {
	Name        string `json:"name"`
	Phone       string `json:"phone"`
	CountryCode string `json:"countryCode"`
}

// Validate проверяет имя клиента; телефон проверяется отдельно
func (r *RegisterRequest) Validate() error {
	return validateName(r.Name)
}

// UpdateProfileRequest изменение профиля; nil-поля не меняются.
// Пустая строка в Email удаляет email
type UpdateProfileRequest struct {
	Name     *string `json:"name,omitempty"`
	Email    *string `json:"email,omitempty"`
	Language *string `json:"language,omitempty"`
	Theme    *string `json:"theme,omitempty"`
}

// Apply валидирует запрос и применяет его к пользователю
func (r *UpdateProfileRequest) Apply(u *domain.User) error {
	if r.Name != nil {
		if err := validateName(*r.Name); err != nil {
			return err
		}
		u.Name = strings.TrimSpace(*r.Name)
	}
	if r.Email != nil {
		email := strings.TrimSpace(*r.Email)
		if email == "" {
			u.Email = nil
		} else {
			if _, err := mail.ParseAddress(email); err != nil {
				return ErrInvalidEmail
			}
			u.Email = &email
		}
	}
	if r.Language != nil {
		lang := domain.Language(*r.Language)
		if !lang.IsValid() {
			return ErrInvalidLanguage
		}
		u.Language = lang
	}
	if r.Theme != nil {
		theme := domain.Theme(*r.Theme)
		if !theme.IsValid() {
			return ErrInvalidTheme
		}
		u.Theme = theme
	}
	return nil
}

// UserResponse профиль пользователя
type UserResponse struct {
	ID          int64     `json:"id"`
	Name        string    `json:"name"`
	Phone       string    `json:"phone"`
	CountryCode string    `json:"countryCode"`
	Email       *string   `json:"email,omitempty"`
	Role        string    `json:"role"`
	Language    string    `json:"language"`
	Theme       string    `json:"theme"`
	CreatedAt   time.Time `json:"createdAt"`
}

// AuthResponse результат входа или регистрации
type AuthResponse struct {
	Token   string       `json:"token"`
	User    UserResponse `json:"user"`
	Created bool         `json:"created"`
}

// FromDomainUser конвертирует domain модель в DTO
func FromDomainUser(u *domain.User) UserResponse {
	return UserResponse{
		ID:          u.ID,
		Name:        u.Name,
		Phone:       u.Phone,
		CountryCode: u.CountryCode,
		Email:       u.Email,
		Role:        string(u.Role),
		Language:    string(u.Language),
		Theme:       string(u.Theme),
		CreatedAt:   u.CreatedAt,
	}
}

// NormalizePhone оставляет только цифры; ok=false, если цифр не 7..15
// или встречаются символы кроме пробелов, дефисов, точек и скобок
func NormalizePhone(phone string) (string, bool) {
	var b strings.Builder
	for _, r := range phone {
		switch {
		case r >= '0' && r <= '9':
			b.WriteRune(r)
		case r == ' ' || r == '-' || r == '.' || r == '(' || r == ')':
		default:
			return "", false
		}
	}
	digits := b.String()
	if len(digits) < domain.MinPhoneDigits || len(digits) > domain.MaxPhoneDigits {
		return "", false
	}
	return digits, true
}

// NormalizeCountryCode подставляет код по умолчанию
func NormalizeCountryCode(code string) string {
	code = strings.TrimSpace(code)
	if code == "" {
		return DefaultCountryCode
	}
	if !strings.HasPrefix(code, "+") {
		code = "+" + code
	}
	return code
}

func validateName(name string) error {
	name = strings.TrimSpace(name)
	if name == "" {
		return ErrNameRequired
	}
	if utf8.RuneCountInString(name) > domain.MaxUserNameLength {
		return ErrNameTooLong
	}
	return nil
}
