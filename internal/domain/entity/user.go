// Package entity defines the core business entities for the domain layer.
package entity

import (
	"time"

	"github.com/google/uuid"
)

// UserRole is the investor classification that decides payout eligibility.
type UserRole string

const (
	UserRoleInvestor    UserRole = "INVESTOR"
	UserRoleUnderwriter UserRole = "UNDERWRITER"
	UserRoleAdmin       UserRole = "ADMIN"
)

// IsValid checks if the role is a known value.
func (r UserRole) IsValid() bool {
	switch r {
	case UserRoleInvestor, UserRoleUnderwriter, UserRoleAdmin:
		return true
	}
	return false
}

// KYCStatus is the identity verification state of an investor.
type KYCStatus string

const (
	KYCStatusPending  KYCStatus = "PENDING"
	KYCStatusApproved KYCStatus = "APPROVED"
	KYCStatusRejected KYCStatus = "REJECTED"
)

// IsValid checks if the KYC status is a known value.
func (s KYCStatus) IsValid() bool {
	switch s {
	case KYCStatusPending, KYCStatusApproved, KYCStatusRejected:
		return true
	}
	return false
}

// User is the ledger's copy of an investor profile. Identity is owned by the
// auth service, so the ID is supplied rather than generated.
type User struct {
	ID                 uuid.UUID
	Email              string
	Name               string
	Role               UserRole
	KYCStatus          KYCStatus
	EmailNotifications bool
	CreatedAt          time.Time
	UpdatedAt          time.Time
}

// NewUser creates an investor profile with pending KYC.
func NewUser(id uuid.UUID, email, name string) *User {
	now := time.Now().UTC()
	return &User{
		ID:                 id,
		Email:              email,
		Name:               name,
		Role:               UserRoleInvestor,
		KYCStatus:          KYCStatusPending,
		EmailNotifications: true,
		CreatedAt:          now,
		UpdatedAt:          now,
	}
}

// IsKYCApproved reports whether the investor passed identity checks.
func (u *User) IsKYCApproved() bool {
	return u.KYCStatus == KYCStatusApproved
}
