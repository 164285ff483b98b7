package repository

import (
	"context"
	"time"

	"allserve/internal/domain/entity"
)

// ProviderBoundsQuery selects active, verified providers inside a lat/lng box.
type ProviderBoundsQuery struct {
	MinLat, MaxLat float64
	MinLng, MaxLng float64
	CategoryID     string // Optional exact match.
}

// Contains reports whether the point lies inside the box, edges included.
func (q ProviderBoundsQuery) Contains(lat, lng float64) bool {
	return lat >= q.MinLat && lat <= q.MaxLat && lng >= q.MinLng && lng <= q.MaxLng
}

// ProviderRepository defines the interface for provider persistence.
type ProviderRepository interface {
	// FindProviderByID retrieves a provider. Returns ErrNotFound when missing.
	FindProviderByID(ctx context.Context, id string) (*entity.Provider, error)

	// FindProvidersInBounds returns active, verified providers inside the query box.
	FindProvidersInBounds(ctx context.Context, query ProviderBoundsQuery) ([]*entity.Provider, error)

	// UpdateRating overwrites the rating aggregate.
	UpdateRating(ctx context.Context, id string, avg float64, count int, updatedAt time.Time) error

	// UpdateVerification records an admin verification decision.
	UpdateVerification(ctx context.Context, id string, verification entity.ProviderVerification) error
}
