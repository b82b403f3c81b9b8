package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// AuthProvider identifies how a user account was created.
type AuthProvider string

const (
	ProviderLocal  AuthProvider = "local" // email/password
	ProviderGoogle AuthProvider = "google"
	ProviderGithub AuthProvider = "github"
)

// User represents a user of the application in the domain.
type User struct {
	UserID         string       `json:"userID"` // Primary Key (UUID)
	Name           string       `json:"name"`
	Email          string       `json:"email"`
	AuthProvider   AuthProvider `json:"authProvider"`
	ProviderUserID string       `json:"-"` // External ID for OAuth accounts
	PasswordHash   string       `json:"-"` // bcrypt; empty for OAuth accounts

	// Preferences surfaced on the profile page.
	Currency      string          `json:"currency"`
	MonthlyBudget decimal.Decimal `json:"monthlyBudget"`

	// Refresh token state (hash only, the token itself is never stored).
	RefreshTokenHash   string     `json:"-"`
	RefreshTokenExpiry *time.Time `json:"-"`

	AuditFields
	DeletedAt *time.Time `json:"deletedAt,omitempty"` // Used for soft delete
}
