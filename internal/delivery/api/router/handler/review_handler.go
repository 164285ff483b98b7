package handler

import (
	"log/slog"

	"allserve/internal/delivery/api/response"
	"allserve/internal/usecase"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// ReviewHandlerParams holds dependencies for ReviewHandler, injected by Fx.
type ReviewHandlerParams struct {
	fx.In

	ReviewUC usecase.ReviewUsecase
	Logger   *slog.Logger
}

// ReviewHandler serves review posting and moderation
type ReviewHandler struct {
	reviewUC usecase.ReviewUsecase
	logger   *slog.Logger
}

// NewReviewHandler is the constructor for ReviewHandler
func NewReviewHandler(params ReviewHandlerParams) *ReviewHandler {
	return &ReviewHandler{
		reviewUC: params.ReviewUC,
		logger:   params.Logger,
	}
}

// PostReviewRequest is the body of postReview
type PostReviewRequest struct {
	BookingID string `json:"bookingId" validate:"required"`
	Rating    int    `json:"rating" validate:"min=1,max=5"`
	Comment   string `json:"comment"`
	IsUpdate  bool   `json:"isUpdate"`
	ReviewID  string `json:"reviewId" validate:"required_if=IsUpdate true"`
}

// PostReviewResponse is the result of postReview
type PostReviewResponse struct {
	ReviewID string `json:"reviewId"`
	Success  bool   `json:"success"`
}

// FlagReviewRequest is the body of flagReview. Older clients send flagReason.
type FlagReviewRequest struct {
	ReviewID   string `json:"reviewId" validate:"required"`
	Reason     string `json:"reason" validate:"required_without=FlagReason"`
	FlagReason string `json:"flagReason"`
}

// PostReview handles postReview
func (h *ReviewHandler) PostReview(c echo.Context) error {
	uid, err := callerUID(c)
	if err != nil {
		return err
	}

	var req PostReviewRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	reviewID, err := h.reviewUC.PostReview(c.Request().Context(), uid, &usecase.PostReviewInput{
		BookingID: req.BookingID,
		Rating:    req.Rating,
		Comment:   req.Comment,
		IsUpdate:  req.IsUpdate,
		ReviewID:  req.ReviewID,
	})
	if err != nil {
		return err
	}

	return response.OK(c, PostReviewResponse{ReviewID: reviewID, Success: true})
}

// FlagReview handles flagReview
func (h *ReviewHandler) FlagReview(c echo.Context) error {
	uid, err := callerUID(c)
	if err != nil {
		return err
	}

	var req FlagReviewRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	reason := req.Reason
	if reason == "" {
		reason = req.FlagReason
	}

	if err := h.reviewUC.FlagReview(c.Request().Context(), uid, req.ReviewID, reason); err != nil {
		return err
	}

	return response.Done(c)
}
