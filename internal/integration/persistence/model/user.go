// Package model defines database models for persistence layer.
package model

import (
	"time"

	"github.com/google/uuid"

	"github.com/estateshare/backend/internal/domain/entity"
)

// UserModel represents the investor profile table in the database.
type UserModel struct {
	ID                 uuid.UUID `gorm:"type:uuid;primaryKey"`
	Email              string    `gorm:"type:varchar(255);uniqueIndex;not null"`
	Name               string    `gorm:"type:varchar(100);not null"`
	Role               string    `gorm:"type:varchar(20);not null;default:'INVESTOR'"`
	KYCStatus          string    `gorm:"column:kyc_status;type:varchar(10);not null;default:'PENDING'"`
	EmailNotifications bool      `gorm:"not null"`
	CreatedAt          time.Time `gorm:"not null"`
	UpdatedAt          time.Time `gorm:"not null"`
}

// TableName returns the table name for the UserModel.
func (UserModel) TableName() string {
	return "users"
}

// ToEntity converts a UserModel to a domain User entity.
func (m *UserModel) ToEntity() *entity.User {
	return &entity.User{
		ID:                 m.ID,
		Email:              m.Email,
		Name:               m.Name,
		Role:               entity.UserRole(m.Role),
		KYCStatus:          entity.KYCStatus(m.KYCStatus),
		EmailNotifications: m.EmailNotifications,
		CreatedAt:          m.CreatedAt,
		UpdatedAt:          m.UpdatedAt,
	}
}

// UserFromEntity creates a UserModel from a domain User entity.
func UserFromEntity(user *entity.User) *UserModel {
	return &UserModel{
		ID:                 user.ID,
		Email:              user.Email,
		Name:               user.Name,
		Role:               string(user.Role),
		KYCStatus:          string(user.KYCStatus),
		EmailNotifications: user.EmailNotifications,
		CreatedAt:          user.CreatedAt,
		UpdatedAt:          user.UpdatedAt,
	}
}
