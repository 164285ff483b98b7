// Package firestoredb contains the concrete implementation of the persistence layer on Cloud Firestore.
package firestoredb

import (
	"context"
	"log/slog"

	"allserve/internal/domain/lifecycle"
	"allserve/internal/domain/repository"
	"allserve/internal/errors"

	"cloud.google.com/go/firestore"
	firebase "firebase.google.com/go/v4"
	"go.uber.org/fx"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

// NewClient creates the Firestore client of the Firebase app and closes it on shutdown
func NewClient(ctx context.Context, lc fx.Lifecycle, app *firebase.App, logger *slog.Logger) (*firestore.Client, error) {
	ctx, cancel := context.WithTimeout(ctx, lifecycle.DefaultTimeout)
	defer cancel()

	client, err := app.Firestore(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to create Firestore client")
	}

	lc.Append(fx.Hook{
		OnStop: func(_ context.Context) error {
			logger.Info("Closing Firestore client")

			return errors.WithStack(client.Close())
		},
	})

	return client, nil
}

// session routes reads and writes either directly to the client or through a transaction.
// Inside a transaction every read must happen before the first write.
type session struct {
	client *firestore.Client
	tx     *firestore.Transaction
}

func (s session) get(ctx context.Context, ref *firestore.DocumentRef) (*firestore.DocumentSnapshot, error) {
	var (
		snap *firestore.DocumentSnapshot
		err  error
	)
	if s.tx != nil {
		snap, err = s.tx.Get(ref)
	} else {
		snap, err = ref.Get(ctx)
	}

	return snap, mapError(err)
}

func (s session) query(ctx context.Context, q firestore.Query) ([]*firestore.DocumentSnapshot, error) {
	var (
		snaps []*firestore.DocumentSnapshot
		err   error
	)
	if s.tx != nil {
		snaps, err = s.tx.Documents(q).GetAll()
	} else {
		snaps, err = q.Documents(ctx).GetAll()
	}

	return snaps, mapError(err)
}

func (s session) create(ctx context.Context, ref *firestore.DocumentRef, data any) error {
	if s.tx != nil {
		return mapError(s.tx.Create(ref, data))
	}
	_, err := ref.Create(ctx, data)

	return mapError(err)
}

func (s session) update(ctx context.Context, ref *firestore.DocumentRef, updates []firestore.Update) error {
	if s.tx != nil {
		return mapError(s.tx.Update(ref, updates))
	}
	_, err := ref.Update(ctx, updates)

	return mapError(err)
}

// mapError converts a Firestore NotFound status into repository.ErrNotFound.
func mapError(err error) error {
	if err == nil {
		return nil
	}
	if status.Code(err) == codes.NotFound {
		return repository.ErrNotFound
	}

	return errors.WithStack(err)
}
