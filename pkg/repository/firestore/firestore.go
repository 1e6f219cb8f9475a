package firestore

import (
	"context"

	"cloud.google.com/go/firestore"
	"github.com/m-mizutani/goerr/v2"

	"github.com/secmon-lab/ticklist/pkg/domain/interfaces"
)

type Firestore struct {
	client    *firestore.Client
	checklist *checklistRepository
	changeLog *changeLogRepository
}

var _ interfaces.Repository = &Firestore{}

type Option func(*Firestore)

// WithCollectionPrefix prepends a prefix to every collection name, to share a
// Firestore database between deployments.
func WithCollectionPrefix(prefix string) Option {
	return func(f *Firestore) {
		f.checklist.collectionPrefix = prefix
		f.changeLog.collectionPrefix = prefix
	}
}

func New(ctx context.Context, projectID, databaseID string, opts ...Option) (*Firestore, error) {
	var client *firestore.Client
	var err error
	if databaseID != "" {
		client, err = firestore.NewClientWithDatabase(ctx, projectID, databaseID)
	} else {
		client, err = firestore.NewClient(ctx, projectID)
	}
	if err != nil {
		return nil, goerr.Wrap(err, "failed to create firestore client",
			goerr.V("projectID", projectID),
			goerr.V("databaseID", databaseID))
	}

	f := &Firestore{
		client:    client,
		checklist: newChecklistRepository(client),
		changeLog: newChangeLogRepository(client),
	}

	for _, opt := range opts {
		opt(f)
	}

	return f, nil
}

func (f *Firestore) Checklist() interfaces.ChecklistRepository {
	return f.checklist
}

func (f *Firestore) ChangeLog() interfaces.ChangeLogRepository {
	return f.changeLog
}

func (f *Firestore) Close() error {
	if f.client != nil {
		return f.client.Close()
	}
	return nil
}
