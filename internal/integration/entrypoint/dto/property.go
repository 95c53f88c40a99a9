package dto

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/estateshare/backend/internal/application/usecase/investment"
	"github.com/estateshare/backend/internal/application/usecase/property"
	"github.com/estateshare/backend/internal/domain/entity"
)

// CreatePropertyRequest represents the request body for property creation.
type CreatePropertyRequest struct {
	Name          string          `json:"name" binding:"required,max=255"`
	TotalShares   int64           `json:"total_shares" binding:"required,gt=0"`
	PricePerShare decimal.Decimal `json:"price_per_share"`
	Currency      string          `json:"currency,omitempty" binding:"omitempty,len=3"`
}

// SetPropertyStatusRequest represents the request body for opening or closing a property.
type SetPropertyStatusRequest struct {
	Status string `json:"status" binding:"required,oneof=OPEN CLOSED"`
}

// PropertyResponse represents a property in API responses.
type PropertyResponse struct {
	ID              string    `json:"id"`
	Name            string    `json:"name"`
	TotalShares     int64     `json:"total_shares"`
	AvailableShares *int64    `json:"available_shares,omitempty"`
	PricePerShare   string    `json:"price_per_share"`
	Currency        string    `json:"currency"`
	Status          string    `json:"status"`
	CreatedAt       time.Time `json:"created_at"`
}

// PropertyListResponse represents the property catalogue.
type PropertyListResponse struct {
	Properties []PropertyResponse `json:"properties"`
}

// AvailabilityResponse represents the share availability of a property.
type AvailabilityResponse struct {
	PropertyID      string `json:"property_id"`
	TotalShares     int64  `json:"total_shares"`
	SoldShares      int64  `json:"sold_shares"`
	AvailableShares int64  `json:"available_shares"`
	Status          string `json:"status"`
}

// ToPropertyResponse converts a domain Property entity to a PropertyResponse DTO.
func ToPropertyResponse(p *entity.Property) PropertyResponse {
	return PropertyResponse{
		ID:            p.ID.String(),
		Name:          p.Name,
		TotalShares:   p.TotalShares,
		PricePerShare: p.PricePerShare.String(),
		Currency:      p.Currency,
		Status:        string(p.Status),
		CreatedAt:     p.CreatedAt,
	}
}

// ToPropertyListResponse converts catalogue listings to a PropertyListResponse DTO.
func ToPropertyListResponse(listings []property.PropertyListing) PropertyListResponse {
	properties := make([]PropertyResponse, len(listings))
	for i, l := range listings {
		available := l.AvailableShares
		properties[i] = ToPropertyResponse(l.Property)
		properties[i].AvailableShares = &available
	}
	return PropertyListResponse{Properties: properties}
}

// ToAvailabilityResponse converts an availability lookup to an AvailabilityResponse DTO.
func ToAvailabilityResponse(output *investment.GetAvailabilityOutput) AvailabilityResponse {
	return AvailabilityResponse{
		PropertyID:      output.Property.ID.String(),
		TotalShares:     output.Property.TotalShares,
		SoldShares:      output.SoldShares,
		AvailableShares: output.AvailableShares,
		Status:          string(output.Property.Status),
	}
}
