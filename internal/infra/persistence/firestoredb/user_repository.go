package firestoredb

import (
	"context"
	"slices"

	"allserve/internal/domain/entity"
	"allserve/internal/domain/repository"
	"allserve/internal/errors"
	"allserve/internal/infra/persistence/model"

	"cloud.google.com/go/firestore"
)

// maxArrayContainsAny is the largest value list Firestore accepts for an array-contains-any filter.
const maxArrayContainsAny = 30

// userRepository implements the domain.UserRepository interface on the 'users' collection.
type userRepository struct {
	sess session
}

// NewUserRepository is the constructor for userRepository.
func NewUserRepository(client *firestore.Client) repository.UserRepository {
	return &userRepository{sess: session{client: client}}
}

func (repo *userRepository) collection() *firestore.CollectionRef {
	return repo.sess.client.Collection(model.CollectionUsers)
}

// FindUserByID retrieves a single profile by uid.
func (repo *userRepository) FindUserByID(ctx context.Context, uid string) (*entity.UserProfile, error) {
	snap, err := repo.sess.get(ctx, repo.collection().Doc(uid))
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, repository.ErrNotFound
		}

		return nil, errors.Wrap(err, "failed to find user by id")
	}

	var m model.UserModel
	if err := snap.DataTo(&m); err != nil {
		return nil, errors.Wrap(err, "failed to decode user")
	}

	return toUserDomain(snap.Ref.ID, &m), nil
}

// ListUsers returns every profile, or only the profiles of one role.
func (repo *userRepository) ListUsers(ctx context.Context, role *entity.Role) ([]*entity.UserProfile, error) {
	q := repo.collection().Query
	if role != nil {
		q = q.Where("role", "==", role.String())
	}

	snaps, err := repo.sess.query(ctx, q)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list users")
	}

	users := make([]*entity.UserProfile, 0, len(snaps))
	for _, snap := range snaps {
		var m model.UserModel
		if err := snap.DataTo(&m); err != nil {
			return nil, errors.Wrapf(err, "failed to decode user %s", snap.Ref.ID)
		}
		users = append(users, toUserDomain(snap.Ref.ID, &m))
	}

	return users, nil
}

// RemoveDeviceTokens finds every profile listing one of the tokens and removes them with a bulk writer.
// Profiles are looked up in chunks because array-contains-any takes a bounded value list.
func (repo *userRepository) RemoveDeviceTokens(ctx context.Context, tokens []string) (int, error) {
	if len(tokens) == 0 {
		return 0, nil
	}

	refs := make(map[string]*firestore.DocumentRef)
	for chunk := range slices.Chunk(tokens, maxArrayContainsAny) {
		q := repo.collection().Where("deviceTokens", "array-contains-any", chunk)
		snaps, err := q.Documents(ctx).GetAll()
		if err != nil {
			return 0, errors.Wrap(err, "failed to find users by device token")
		}
		for _, snap := range snaps {
			refs[snap.Ref.ID] = snap.Ref
		}
	}
	if len(refs) == 0 {
		return 0, nil
	}

	removal := make([]any, len(tokens))
	for i, token := range tokens {
		removal[i] = token
	}

	writer := repo.sess.client.BulkWriter(ctx)
	jobs := make([]*firestore.BulkWriterJob, 0, len(refs))
	var errs []error
	for _, ref := range refs {
		job, err := writer.Update(ref, []firestore.Update{
			{Path: "deviceTokens", Value: firestore.ArrayRemove(removal...)},
		})
		if err != nil {
			errs = append(errs, errors.Wrapf(err, "failed to enqueue token removal for %s", ref.ID))

			continue
		}
		jobs = append(jobs, job)
	}
	writer.End()

	updated := 0
	for _, job := range jobs {
		if _, err := job.Results(); err != nil {
			errs = append(errs, errors.WithStack(err))

			continue
		}
		updated++
	}

	return updated, errors.Join(errs...)
}
