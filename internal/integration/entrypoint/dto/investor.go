package dto

import (
	"time"

	"github.com/estateshare/backend/internal/domain/entity"
)

// UpsertInvestorRequest represents the request body for an investor profile.
type UpsertInvestorRequest struct {
	Email string `json:"email"`
	Name  string `json:"name"`
}

// SetRoleRequest represents the request body for a role change.
type SetRoleRequest struct {
	Role string `json:"role" binding:"required,oneof=INVESTOR UNDERWRITER ADMIN"`
}

// SetKYCStatusRequest represents the request body for a KYC decision.
type SetKYCStatusRequest struct {
	Status string `json:"status" binding:"required,oneof=PENDING APPROVED REJECTED"`
}

// InvestorResponse represents an investor profile in API responses.
type InvestorResponse struct {
	ID                 string    `json:"id"`
	Email              string    `json:"email"`
	Name               string    `json:"name"`
	Role               string    `json:"role"`
	KYCStatus          string    `json:"kyc_status"`
	EmailNotifications bool      `json:"email_notifications"`
	UpdatedAt          time.Time `json:"updated_at"`
}

// ToInvestorResponse converts a domain User entity to an InvestorResponse DTO.
func ToInvestorResponse(u *entity.User) InvestorResponse {
	return InvestorResponse{
		ID:                 u.ID.String(),
		Email:              u.Email,
		Name:               u.Name,
		Role:               string(u.Role),
		KYCStatus:          string(u.KYCStatus),
		EmailNotifications: u.EmailNotifications,
		UpdatedAt:          u.UpdatedAt,
	}
}
