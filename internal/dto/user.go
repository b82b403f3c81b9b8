package dto

import (
	"time"

	"github.com/budgetbuddy/bb_backend/internal/core/domain"
	"github.com/shopspring/decimal"
)

// UpdateProfileRequest defines the data allowed when updating a profile.
// Pointers differentiate omitted fields from zero values.
type UpdateProfileRequest struct {
	Name          *string          `json:"name"`
	Currency      *string          `json:"currency" binding:"omitempty,uppercase,len=3"`
	MonthlyBudget *decimal.Decimal `json:"monthlyBudget"`
}

// UserResponse is the wire representation of a user profile.
type UserResponse struct {
	ID            string          `json:"id"`
	Name          string          `json:"name"`
	Email         string          `json:"email"`
	AuthProvider  string          `json:"authProvider"`
	Currency      string          `json:"currency"`
	MonthlyBudget decimal.Decimal `json:"monthlyBudget"`
	CreatedAt     time.Time       `json:"createdAt"`
	UpdatedAt     time.Time       `json:"updatedAt"`
}

// ToUserResponse converts a domain user to its wire shape.
func ToUserResponse(user *domain.User) UserResponse {
	return UserResponse{
		ID:            user.UserID,
		Name:          user.Name,
		Email:         user.Email,
		AuthProvider:  string(user.AuthProvider),
		Currency:      user.Currency,
		MonthlyBudget: user.MonthlyBudget,
		CreatedAt:     user.CreatedAt,
		UpdatedAt:     user.LastUpdatedAt,
	}
}
