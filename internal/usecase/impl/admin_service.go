package impl

import (
	"context"
	"log/slog"
	"strings"
	"time"

	deliverycontext "allserve/internal/delivery/context"
	"allserve/internal/domain/entity"
	domainerrors "allserve/internal/domain/errors"
	"allserve/internal/domain/repository"
	"allserve/internal/domain/service"
	"allserve/internal/errors"
	"allserve/internal/usecase"

	"go.uber.org/fx"
)

const announcementTypeInfo = "info"

// adminService implements the AdminUsecase interface.
type adminService struct {
	txManager        repository.TransactionManager
	userRepo         repository.UserRepository
	announcementRepo repository.AnnouncementRepository
	dispatcher       usecase.Dispatcher
	logger           *slog.Logger
}

// AdminServiceParams holds dependencies for AdminService, injected by Fx.
type AdminServiceParams struct {
	fx.In

	TxManager        repository.TransactionManager
	UserRepo         repository.UserRepository
	AnnouncementRepo repository.AnnouncementRepository
	Dispatcher       usecase.Dispatcher
	Logger           *slog.Logger
}

// NewAdminService is the constructor for adminService.
func NewAdminService(params AdminServiceParams) usecase.AdminUsecase {
	return &adminService{
		txManager:        params.TxManager,
		userRepo:         params.UserRepo,
		announcementRepo: params.AnnouncementRepo,
		dispatcher:       params.Dispatcher,
		logger:           params.Logger,
	}
}

func (s *adminService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, s.logger)
}

// ApproveProvider records the verification decision together with its audit entry
func (s *adminService) ApproveProvider(ctx context.Context, callerUID string, input *usecase.ApproveProviderInput) error {
	if err := requireAdmin(ctx, s.userRepo, callerUID); err != nil {
		return err
	}

	if strings.TrimSpace(input.ProviderID) == "" {
		return domainerrors.NewInvalidArgument("providerId is required")
	}

	notes := strings.TrimSpace(input.Notes)
	now := time.Now().UTC()

	status := entity.VerificationRejected
	action := entity.AuditActionRejectProvider
	if input.Approve {
		status = entity.VerificationApproved
		action = entity.AuditActionApproveProvider
	}

	var provider *entity.Provider
	err := s.txManager.Execute(ctx, func(txRepoFactory repository.RepositoryFactory) error {
		providerRepo := txRepoFactory.NewProviderRepository()

		var findErr error
		provider, findErr = providerRepo.FindProviderByID(ctx, input.ProviderID)
		if errors.Is(findErr, repository.ErrNotFound) {
			return domainerrors.ErrProviderNotFound
		}
		if findErr != nil {
			return errors.Wrap(findErr, "failed to load provider")
		}

		if err := providerRepo.UpdateVerification(ctx, input.ProviderID, entity.ProviderVerification{
			Verified:   input.Approve,
			Status:     status,
			VerifiedAt: now,
			VerifiedBy: callerUID,
			Notes:      notes,
		}); err != nil {
			return errors.Wrap(err, "failed to update provider verification")
		}

		return errors.Wrap(txRepoFactory.NewAuditLogRepository().AppendAuditLog(ctx, &entity.AdminAuditLog{
			ActorUID: callerUID,
			Action:   action,
			Detail: map[string]any{
				"providerId": input.ProviderID,
				"notes":      notes,
				"timestamp":  now,
			},
			CreatedAt: now,
		}), "failed to append audit log")
	})
	if err != nil {
		return errors.Wrap(err, "failed to execute approve provider transaction")
	}

	s.log(ctx).Info("Provider verification updated",
		slog.String("provider_id", input.ProviderID),
		slog.String("status", string(status)),
		slog.String("admin_uid", callerUID),
	)

	s.dispatcher.Dispatch(ctx, verificationNotice(provider, input.Approve, notes))

	return nil
}

func verificationNotice(provider *entity.Provider, approved bool, notes string) *service.PushEvent {
	event := &service.PushEvent{
		Target: service.PushTargetUser,
		UserID: recipientOf(provider),
		Data: map[string]string{
			"providerId": provider.ID,
			"notes":      notes,
		},
	}

	if approved {
		event.Title = "Account Approved!"
		event.Body = "Congratulations! Your provider account has been approved and is now active."
		event.Data["type"] = entity.NotificationTypeProviderApproved
		event.Priority = entity.PriorityHigh

		return event
	}

	event.Title = "Verification Update"
	event.Body = "Your provider verification was not approved. Please review and resubmit your documents."
	if notes != "" {
		event.Body = "Your provider verification was not approved. Reason: " + notes
	}
	event.Data["type"] = entity.NotificationTypeProviderRejected
	event.Priority = entity.PriorityNormal

	return event
}

// SendAnnouncement stores the announcement and pushes it to every profile in the audience
func (s *adminService) SendAnnouncement(ctx context.Context, callerUID string, input *usecase.AnnouncementInput) (string, error) {
	if err := requireAdmin(ctx, s.userRepo, callerUID); err != nil {
		return "", err
	}

	title := strings.TrimSpace(input.Title)
	message := strings.TrimSpace(input.Message)
	if title == "" || message == "" {
		return "", domainerrors.NewInvalidArgument("title and message are required")
	}

	if !input.Audience.IsValid() {
		return "", domainerrors.NewInvalidArgument("audience must be one of all, customers, providers, admins")
	}

	announcement := &entity.Announcement{
		Title:     title,
		Message:   message,
		Audience:  input.Audience,
		CreatedBy: callerUID,
		CreatedAt: time.Now().UTC(),
	}
	if err := s.announcementRepo.CreateAnnouncement(ctx, announcement); err != nil {
		return "", errors.Wrap(err, "failed to create announcement")
	}

	s.log(ctx).Info("Announcement created",
		slog.String("announcement_id", announcement.ID),
		slog.String("audience", string(announcement.Audience)),
	)

	s.dispatcher.Dispatch(ctx, &service.PushEvent{
		Target:   service.PushTargetAudience,
		Audience: announcement.Audience,
		Title:    title,
		Body:     message,
		Data: map[string]string{
			"type":             entity.NotificationTypeAnnouncement,
			"audience":         string(announcement.Audience),
			"announcementType": announcementTypeInfo,
			"priority":         string(entity.PriorityNormal),
		},
		Priority: entity.PriorityNormal,
	})

	return announcement.ID, nil
}
