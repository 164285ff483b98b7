package handler

import (
	"log/slog"
	"time"

	"allserve/internal/delivery/api/response"
	domainerrors "allserve/internal/domain/errors"
	"allserve/internal/usecase"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// BookingHandlerParams holds dependencies for BookingHandler, injected by Fx.
type BookingHandlerParams struct {
	fx.In

	BookingUC usecase.BookingUsecase
	Logger    *slog.Logger
}

// BookingHandler serves the booking lifecycle operations
type BookingHandler struct {
	bookingUC usecase.BookingUsecase
	logger    *slog.Logger
}

// NewBookingHandler is the constructor for BookingHandler
func NewBookingHandler(params BookingHandlerParams) *BookingHandler {
	return &BookingHandler{
		bookingUC: params.BookingUC,
		logger:    params.Logger,
	}
}

// CreateBookingRequest is the body of createBooking
type CreateBookingRequest struct {
	ProviderID  string `json:"providerId" validate:"required"`
	ServiceID   string `json:"serviceId" validate:"required"`
	ScheduledAt string `json:"scheduledAt" validate:"required"`
	Address     string `json:"address"`
}

// CreateBookingResponse is the result of createBooking
type CreateBookingResponse struct {
	BookingID string `json:"bookingId"`
	Status    string `json:"status"`
}

// UpdateBookingStatusRequest is the body of updateBookingStatus
type UpdateBookingStatusRequest struct {
	BookingID string `json:"bookingId" validate:"required"`
	Action    string `json:"action" validate:"required"`
}

// UpdateBookingStatusResponse is the result of updateBookingStatus
type UpdateBookingStatusResponse struct {
	Success bool   `json:"success"`
	Status  string `json:"status"`
}

// CreateBooking handles createBooking
func (h *BookingHandler) CreateBooking(c echo.Context) error {
	uid, err := callerUID(c)
	if err != nil {
		return err
	}

	var req CreateBookingRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	scheduledAt, err := time.Parse(time.RFC3339, req.ScheduledAt)
	if err != nil {
		return domainerrors.NewInvalidArgument("scheduledAt must be an RFC3339 timestamp")
	}

	out, err := h.bookingUC.CreateBooking(c.Request().Context(), uid, &usecase.CreateBookingInput{
		ProviderID:  req.ProviderID,
		ServiceID:   req.ServiceID,
		ScheduledAt: scheduledAt,
		Address:     req.Address,
	})
	if err != nil {
		return err
	}

	return response.OK(c, CreateBookingResponse{BookingID: out.BookingID, Status: out.Status.String()})
}

// UpdateBookingStatus handles updateBookingStatus
func (h *BookingHandler) UpdateBookingStatus(c echo.Context) error {
	uid, err := callerUID(c)
	if err != nil {
		return err
	}

	var req UpdateBookingStatusRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	status, err := h.bookingUC.UpdateBookingStatus(c.Request().Context(), uid, req.BookingID, req.Action)
	if err != nil {
		return err
	}

	return response.OK(c, UpdateBookingStatusResponse{Success: true, Status: status.String()})
}
