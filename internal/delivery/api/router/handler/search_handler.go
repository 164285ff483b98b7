package handler

import (
	"log/slog"
	"net/http"

	"allserve/internal/delivery/api/response"
	deliverycontext "allserve/internal/delivery/context"
	"allserve/internal/domain/entity"
	domainerrors "allserve/internal/domain/errors"
	"allserve/internal/errors"
	"allserve/internal/usecase"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// SearchHandlerParams holds dependencies for SearchHandler, injected by Fx.
type SearchHandlerParams struct {
	fx.In

	SearchUC usecase.SearchUsecase
	Logger   *slog.Logger
}

// SearchHandler serves the public nearby search endpoint
type SearchHandler struct {
	searchUC usecase.SearchUsecase
	logger   *slog.Logger
}

// NewSearchHandler is the constructor for SearchHandler
func NewSearchHandler(params SearchHandlerParams) *SearchHandler {
	return &SearchHandler{
		searchUC: params.SearchUC,
		logger:   params.Logger,
	}
}

// NearbyRequest is the body of fetchProvidersNearby
type NearbyRequest struct {
	Lat        *float64 `json:"lat" validate:"required"`
	Lng        *float64 `json:"lng" validate:"required"`
	RadiusKm   float64  `json:"radiusKm"`
	CategoryID string   `json:"categoryId"`
	Keywords   string   `json:"keywords"`
}

// NearbyProviderResponse is one provider of the search result
type NearbyProviderResponse struct {
	ID          string                   `json:"id"`
	OwnerUID    string                   `json:"ownerUid"`
	Name        string                   `json:"name"`
	CategoryID  string                   `json:"categoryId"`
	Status      string                   `json:"status"`
	Verified    bool                     `json:"verified"`
	Lat         float64                  `json:"lat"`
	Lng         float64                  `json:"lng"`
	Services    []entity.ProviderService `json:"services"`
	RatingAvg   float64                  `json:"ratingAvg"`
	RatingCount int                      `json:"ratingCount"`
	Distance    float64                  `json:"distance"`
}

// NearbyResponse is the result of fetchProvidersNearby
type NearbyResponse struct {
	Providers []NearbyProviderResponse `json:"providers"`
}

// FetchProvidersNearby handles fetchProvidersNearby. It is a plain HTTP endpoint,
// so errors are written as `{error}` bodies here instead of the callable format.
func (h *SearchHandler) FetchProvidersNearby(c echo.Context) error {
	switch c.Request().Method {
	case http.MethodOptions:
		return c.NoContent(http.StatusNoContent)
	case http.MethodPost:
	default:
		return response.PlainError(c, http.StatusMethodNotAllowed, "Method not allowed")
	}

	var req NearbyRequest
	if err := c.Bind(&req); err != nil {
		return response.PlainError(c, http.StatusBadRequest, "Malformed request body")
	}
	if err := c.Validate(&req); err != nil {
		return response.PlainError(c, http.StatusBadRequest, "Latitude and longitude are required")
	}

	ctx := c.Request().Context()
	providers, err := h.searchUC.SearchNearby(ctx, &usecase.NearbyQuery{
		Lat:        *req.Lat,
		Lng:        *req.Lng,
		RadiusKm:   req.RadiusKm,
		CategoryID: req.CategoryID,
		Keywords:   req.Keywords,
	})
	if err != nil {
		var appErr domainerrors.AppError
		if errors.As(err, &appErr) && appErr.Kind() == domainerrors.KindInvalidArgument {
			return response.PlainError(c, http.StatusBadRequest, appErr.Message())
		}
		deliverycontext.GetLoggerOrDefault(ctx, h.logger).Error("Nearby search failed", slog.Any("error", err))

		return response.PlainError(c, http.StatusInternalServerError, "Failed to fetch providers")
	}

	resp := NearbyResponse{Providers: make([]NearbyProviderResponse, 0, len(providers))}
	for _, p := range providers {
		resp.Providers = append(resp.Providers, NearbyProviderResponse{
			ID:          p.ID,
			OwnerUID:    p.OwnerUID,
			Name:        p.Name,
			CategoryID:  p.CategoryID,
			Status:      p.Status,
			Verified:    p.Verified,
			Lat:         p.Lat,
			Lng:         p.Lng,
			Services:    p.Services,
			RatingAvg:   p.RatingAvg,
			RatingCount: p.RatingCount,
			Distance:    p.DistanceKm,
		})
	}

	return response.OK(c, resp)
}
