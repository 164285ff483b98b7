package entity

import (
	"slices"
	"time"
)

// ProviderStatusActive is the activity status of a provider that accepts bookings.
const ProviderStatusActive = "active"

// VerificationStatus is the admin review workflow state of a provider.
type VerificationStatus string

const (
	VerificationPending  VerificationStatus = "pending"
	VerificationApproved VerificationStatus = "approved"
	VerificationRejected VerificationStatus = "rejected"
)

// ProviderService is one entry of a provider's service catalog.
type ProviderService struct {
	ServiceID string  `json:"service_id"`
	Name      string  `json:"name"`
	Price     float64 `json:"price"`
}

// Provider is a service-offering entity with verification, activity status and an aggregate rating.
type Provider struct {
	ID                 string             `json:"id"`                  // Document ID.
	OwnerUID           string             `json:"owner_uid"`           // uid of the identity that owns this provider.
	Name               string             `json:"name"`                // Display name.
	CategoryID         string             `json:"category_id"`         // Service category.
	Status             string             `json:"status"`              // Activity status, "active" when bookable.
	Verified           bool               `json:"verified"`            // Set by admin approval.
	VerificationStatus VerificationStatus `json:"verification_status"` // Admin workflow state.
	VerifiedAt         *time.Time         `json:"verified_at,omitempty"`
	VerifiedBy         string             `json:"verified_by,omitempty"`
	AdminNotes         string             `json:"admin_notes,omitempty"`
	Lat                float64            `json:"lat"`
	Lng                float64            `json:"lng"`
	Services           []ProviderService  `json:"services"`     // Service catalog.
	RatingAvg          float64            `json:"rating_avg"`   // Mean of folded ratings, 2 decimals.
	RatingCount        int                `json:"rating_count"` // Number of folded ratings.
}

// IsBookable reports whether the provider is active and verified.
func (p *Provider) IsBookable() bool {
	return p.Status == ProviderStatusActive && p.Verified
}

// OffersService reports whether serviceID is part of the provider's catalog.
func (p *Provider) OffersService(serviceID string) bool {
	return slices.ContainsFunc(p.Services, func(s ProviderService) bool {
		return s.ServiceID == serviceID
	})
}

// IsOwnedBy reports whether uid acts as this provider.
func (p *Provider) IsOwnedBy(uid string) bool {
	return uid != "" && (p.OwnerUID == uid || p.ID == uid)
}

// ProviderVerification carries the fields written by an admin approval decision.
type ProviderVerification struct {
	Verified   bool
	Status     VerificationStatus
	VerifiedAt time.Time
	VerifiedBy string
	Notes      string // Written only when non-empty.
}
