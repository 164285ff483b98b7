package impl

import (
	"cmp"
	"context"
	"log/slog"
	"slices"
	"strings"

	"allserve/config"
	deliverycontext "allserve/internal/delivery/context"
	"allserve/internal/domain/entity"
	domainerrors "allserve/internal/domain/errors"
	"allserve/internal/domain/repository"
	"allserve/internal/errors"
	"allserve/internal/geo"
	"allserve/internal/usecase"

	"go.uber.org/fx"
)

type searchService struct {
	providerRepo    repository.ProviderRepository
	defaultRadiusKm float64
	maxRadiusKm     float64
	maxResults      int
	logger          *slog.Logger
}

// SearchServiceParams holds dependencies for SearchService, injected by Fx.
type SearchServiceParams struct {
	fx.In

	ProviderRepo repository.ProviderRepository
	Config       *config.Config
	Logger       *slog.Logger
}

// NewSearchService creates a new nearby search service
func NewSearchService(params SearchServiceParams) usecase.SearchUsecase {
	cfg := params.Config.Search

	return &searchService{
		providerRepo:    params.ProviderRepo,
		defaultRadiusKm: cfg.DefaultRadiusKm,
		maxRadiusKm:     cfg.MaxRadiusKm,
		maxResults:      cfg.MaxResults,
		logger:          params.Logger,
	}
}

// SearchNearby boxes the store query around the point, then keeps exact matches within the radius
func (s *searchService) SearchNearby(ctx context.Context, query *usecase.NearbyQuery) ([]*usecase.NearbyProvider, error) {
	if !geo.IsValidCoordinate(query.Lat, query.Lng) {
		return nil, domainerrors.NewInvalidArgument("Latitude and longitude are invalid")
	}

	radiusKm := query.RadiusKm
	if radiusKm == 0 {
		radiusKm = s.defaultRadiusKm
	}
	if radiusKm < 0 || radiusKm > s.maxRadiusKm {
		return nil, domainerrors.NewInvalidArgument("radiusKm is out of range")
	}

	center := geo.NewPoint(query.Lat, query.Lng)
	box := geo.BoundingBox(center, radiusKm)

	candidates, err := s.providerRepo.FindProvidersInBounds(ctx, repository.ProviderBoundsQuery{
		MinLat:     box.Min.Lat(),
		MaxLat:     box.Max.Lat(),
		MinLng:     box.Min.Lon(),
		MaxLng:     box.Max.Lon(),
		CategoryID: query.CategoryID,
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to query providers in bounds")
	}

	keywords := strings.ToLower(strings.TrimSpace(query.Keywords))

	results := make([]*usecase.NearbyProvider, 0, len(candidates))
	for _, provider := range candidates {
		distance := geo.DistanceKm(center, geo.NewPoint(provider.Lat, provider.Lng))
		if distance > radiusKm {
			continue
		}
		if keywords != "" && !matchesKeywords(provider, keywords) {
			continue
		}

		results = append(results, &usecase.NearbyProvider{Provider: provider, DistanceKm: distance})
	}

	slices.SortStableFunc(results, func(a, b *usecase.NearbyProvider) int {
		if c := cmp.Compare(a.DistanceKm, b.DistanceKm); c != 0 {
			return c
		}

		return cmp.Compare(b.RatingAvg, a.RatingAvg)
	})

	if len(results) > s.maxResults {
		results = results[:s.maxResults]
	}

	deliverycontext.GetLoggerOrDefault(ctx, s.logger).Debug("Nearby search",
		slog.Float64("radius_km", radiusKm),
		slog.Int("candidates", len(candidates)),
		slog.Int("results", len(results)),
	)

	return results, nil
}

// matchesKeywords reports whether the lower-cased phrase occurs in the provider or service names.
func matchesKeywords(provider *entity.Provider, keywords string) bool {
	if strings.Contains(strings.ToLower(provider.Name), keywords) {
		return true
	}

	return slices.ContainsFunc(provider.Services, func(svc entity.ProviderService) bool {
		return strings.Contains(strings.ToLower(svc.Name), keywords)
	})
}
