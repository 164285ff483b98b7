package handler

import (
	"log/slog"

	"allserve/internal/delivery/api/response"
	"allserve/internal/domain/entity"
	"allserve/internal/usecase"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// AdminHandlerParams holds dependencies for AdminHandler, injected by Fx.
type AdminHandlerParams struct {
	fx.In

	AdminUC usecase.AdminUsecase
	Logger  *slog.Logger
}

// AdminHandler serves the admin-only operations
type AdminHandler struct {
	adminUC usecase.AdminUsecase
	logger  *slog.Logger
}

// NewAdminHandler is the constructor for AdminHandler
func NewAdminHandler(params AdminHandlerParams) *AdminHandler {
	return &AdminHandler{
		adminUC: params.AdminUC,
		logger:  params.Logger,
	}
}

// ApproveProviderRequest is the body of adminApproveProvider.
// Fields are validated by the usecase after the admin check.
type ApproveProviderRequest struct {
	ProviderID string `json:"providerId"`
	Approve    bool   `json:"approve"`
	Notes      string `json:"notes"`
}

// SendAnnouncementRequest is the body of sendAnnouncement
type SendAnnouncementRequest struct {
	Title    string `json:"title"`
	Message  string `json:"message"`
	Audience string `json:"audience"`
}

// ApproveProvider handles adminApproveProvider
func (h *AdminHandler) ApproveProvider(c echo.Context) error {
	uid, err := callerUID(c)
	if err != nil {
		return err
	}

	var req ApproveProviderRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	err = h.adminUC.ApproveProvider(c.Request().Context(), uid, &usecase.ApproveProviderInput{
		ProviderID: req.ProviderID,
		Approve:    req.Approve,
		Notes:      req.Notes,
	})
	if err != nil {
		return err
	}

	return response.Done(c)
}

// SendAnnouncement handles sendAnnouncement
func (h *AdminHandler) SendAnnouncement(c echo.Context) error {
	uid, err := callerUID(c)
	if err != nil {
		return err
	}

	var req SendAnnouncementRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	if _, err := h.adminUC.SendAnnouncement(c.Request().Context(), uid, &usecase.AnnouncementInput{
		Title:    req.Title,
		Message:  req.Message,
		Audience: entity.Audience(req.Audience),
	}); err != nil {
		return err
	}

	return response.Done(c)
}
