package firestoredb

import (
	"context"
	"time"

	"allserve/internal/domain/entity"
	"allserve/internal/domain/repository"
	"allserve/internal/errors"
	"allserve/internal/infra/persistence/model"

	"cloud.google.com/go/firestore"
)

// providerRepository implements the domain.ProviderRepository interface on the 'providers' collection.
type providerRepository struct {
	sess session
}

// NewProviderRepository is the constructor for providerRepository.
func NewProviderRepository(client *firestore.Client) repository.ProviderRepository {
	return &providerRepository{sess: session{client: client}}
}

func (repo *providerRepository) collection() *firestore.CollectionRef {
	return repo.sess.client.Collection(model.CollectionProviders)
}

// FindProviderByID retrieves a single provider document.
func (repo *providerRepository) FindProviderByID(ctx context.Context, id string) (*entity.Provider, error) {
	snap, err := repo.sess.get(ctx, repo.collection().Doc(id))
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, repository.ErrNotFound
		}

		return nil, errors.Wrap(err, "failed to find provider by id")
	}

	var m model.ProviderModel
	if err := snap.DataTo(&m); err != nil {
		return nil, errors.Wrap(err, "failed to decode provider")
	}

	return toProviderDomain(snap.Ref.ID, &m), nil
}

// FindProvidersInBounds filters by status, verification, latitude range and category in Firestore.
// The longitude range is applied to the result so the query needs a single range index.
func (repo *providerRepository) FindProvidersInBounds(ctx context.Context, query repository.ProviderBoundsQuery) ([]*entity.Provider, error) {
	q := repo.collection().
		Where("status", "==", entity.ProviderStatusActive).
		Where("verified", "==", true).
		Where("lat", ">=", query.MinLat).
		Where("lat", "<=", query.MaxLat)
	if query.CategoryID != "" {
		q = q.Where("categoryId", "==", query.CategoryID)
	}

	snaps, err := repo.sess.query(ctx, q)
	if err != nil {
		return nil, errors.Wrap(err, "failed to query providers in bounds")
	}

	providers := make([]*entity.Provider, 0, len(snaps))
	for _, snap := range snaps {
		var m model.ProviderModel
		if err := snap.DataTo(&m); err != nil {
			return nil, errors.Wrapf(err, "failed to decode provider %s", snap.Ref.ID)
		}
		if !query.Contains(m.Lat, m.Lng) {
			continue
		}
		providers = append(providers, toProviderDomain(snap.Ref.ID, &m))
	}

	return providers, nil
}

// UpdateRating overwrites the rating aggregate of a provider.
func (repo *providerRepository) UpdateRating(ctx context.Context, id string, avg float64, count int, updatedAt time.Time) error {
	err := repo.sess.update(ctx, repo.collection().Doc(id), []firestore.Update{
		{Path: "ratingAvg", Value: avg},
		{Path: "ratingCount", Value: count},
		{Path: "updatedAt", Value: updatedAt},
	})
	if err != nil && !errors.Is(err, repository.ErrNotFound) {
		return errors.Wrap(err, "failed to update provider rating")
	}

	return err
}

// UpdateVerification records an admin decision. Notes are written only when present.
func (repo *providerRepository) UpdateVerification(ctx context.Context, id string, verification entity.ProviderVerification) error {
	updates := []firestore.Update{
		{Path: "verified", Value: verification.Verified},
		{Path: "verificationStatus", Value: string(verification.Status)},
		{Path: "verifiedAt", Value: verification.VerifiedAt},
		{Path: "verifiedBy", Value: verification.VerifiedBy},
		{Path: "updatedAt", Value: verification.VerifiedAt},
	}
	if verification.Notes != "" {
		updates = append(updates, firestore.Update{Path: "adminNotes", Value: verification.Notes})
	}

	err := repo.sess.update(ctx, repo.collection().Doc(id), updates)
	if err != nil && !errors.Is(err, repository.ErrNotFound) {
		return errors.Wrap(err, "failed to update provider verification")
	}

	return err
}
