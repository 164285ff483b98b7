package impl

import (
	"context"

	"allserve/internal/domain/entity"
	domainerrors "allserve/internal/domain/errors"
	"allserve/internal/domain/repository"
	"allserve/internal/errors"
)

// requireCaller rejects anonymous requests.
func requireCaller(callerUID string) error {
	if callerUID == "" {
		return domainerrors.ErrUnauthenticated
	}

	return nil
}

// requireAdmin checks that the caller's profile carries the admin role.
// A missing profile is treated as not an admin.
func requireAdmin(ctx context.Context, users repository.UserRepository, callerUID string) error {
	if err := requireCaller(callerUID); err != nil {
		return err
	}

	profile, err := users.FindUserByID(ctx, callerUID)
	if errors.Is(err, repository.ErrNotFound) {
		return domainerrors.ErrAdminRequired
	}
	if err != nil {
		return errors.Wrap(err, "failed to load caller profile")
	}

	if !profile.IsAdmin() {
		return domainerrors.ErrAdminRequired
	}

	return nil
}

// isProviderParty reports whether the caller acts for the booking's provider,
// either as the provider document's owner or under the provider id itself.
func isProviderParty(callerUID string, booking *entity.Booking, provider *entity.Provider) bool {
	if callerUID == booking.ProviderID {
		return true
	}

	return provider != nil && provider.IsOwnedBy(callerUID)
}
