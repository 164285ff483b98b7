package usecase

import (
	"context"

	"allserve/internal/domain/entity"
)

// NearbyQuery describes a proximity search. Zero RadiusKm means the default radius.
type NearbyQuery struct {
	Lat        float64
	Lng        float64
	RadiusKm   float64
	CategoryID string
	Keywords   string
}

// NearbyProvider is a search hit annotated with its distance from the query point.
type NearbyProvider struct {
	*entity.Provider
	DistanceKm float64
}

// SearchUsecase defines provider discovery.
type SearchUsecase interface {
	// SearchNearby returns active, verified providers within the radius,
	// closest first, ties broken by higher rating.
	SearchNearby(ctx context.Context, query *NearbyQuery) ([]*NearbyProvider, error)
}
