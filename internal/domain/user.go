package domain

import "time"

// UserRole represents what a user may do
type UserRole string

const (
	RoleClient  UserRole = "client"
	RoleAdmin   UserRole = "admin"
	RoleStylist UserRole = "stylist"
)

// Language of the user interface
type Language string

const (
	LanguageEN Language = "en"
	LanguageES Language = "es"
)

// IsValid returns true for a supported language
func (l Language) IsValid() bool {
	return l == LanguageEN || l == LanguageES
}

// Theme of the user interface
type Theme string

const (
	ThemeLight Theme = "light"
	ThemeDark  Theme = "dark"
)

// IsValid returns true for a supported theme
func (t Theme) IsValid() bool {
	return t == ThemeLight || t == ThemeDark
}

// User is a client, admin or stylist account identified by phone
type User struct {
	ID          int64
	Name        string
	Phone       string
	CountryCode string
	Email       *string
	Role        UserRole
	Language    Language
	Theme       Theme
	CreatedAt   time.Time
}

// IsAdmin returns true for salon administrators
func (u *User) IsAdmin() bool {
	return u.Role == RoleAdmin
}
