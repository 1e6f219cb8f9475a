package firestore

import (
	"context"
	"time"

	"cloud.google.com/go/firestore"
	"github.com/m-mizutani/goerr/v2"
	"google.golang.org/api/iterator"

	"github.com/secmon-lab/ticklist/pkg/domain/model"
	"github.com/secmon-lab/ticklist/pkg/domain/types"
)

type changeLogRepository struct {
	client           *firestore.Client
	collectionPrefix string
}

func newChangeLogRepository(client *firestore.Client) *changeLogRepository {
	return &changeLogRepository{
		client: client,
	}
}

func (r *changeLogRepository) collection() string {
	if r.collectionPrefix != "" {
		return r.collectionPrefix + "_changelogs"
	}
	return "changelogs"
}

func (r *changeLogRepository) Append(ctx context.Context, rec *model.ChangeRecord) error {
	stored := *rec
	if stored.ID == "" {
		stored.ID = model.NewChangeRecordID()
	}
	if stored.CreatedAt.IsZero() {
		stored.CreatedAt = time.Now().UTC()
	}

	_, err := r.client.Collection(r.collection()).Doc(string(stored.ID)).Set(ctx, stored)
	if err != nil {
		return goerr.Wrap(err, "failed to append change record",
			goerr.V("id", stored.ID),
			goerr.V("sessionID", stored.SessionID))
	}
	return nil
}

func (r *changeLogRepository) List(ctx context.Context, sessionID types.SessionID, limit int) ([]*model.ChangeRecord, error) {
	query := r.client.Collection(r.collection()).
		Where("sessionID", "==", sessionID.String()).
		OrderBy("createdAt", firestore.Desc)
	if limit > 0 {
		query = query.Limit(limit)
	}

	iter := query.Documents(ctx)
	defer iter.Stop()

	var result []*model.ChangeRecord
	for {
		docSnap, err := iter.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			return nil, goerr.Wrap(err, "failed to iterate change records",
				goerr.V("sessionID", sessionID))
		}

		var rec model.ChangeRecord
		if err := docSnap.DataTo(&rec); err != nil {
			return nil, goerr.Wrap(err, "failed to decode change record",
				goerr.V("doc", docSnap.Ref.ID))
		}
		result = append(result, &rec)
	}
	return result, nil
}

func (r *changeLogRepository) Prune(ctx context.Context, before time.Time) (int, error) {
	iter := r.client.Collection(r.collection()).
		Where("createdAt", "<", before).
		Documents(ctx)
	defer iter.Stop()

	bw := r.client.BulkWriter(ctx)
	deleted := 0
	for {
		docSnap, err := iter.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			return deleted, goerr.Wrap(err, "failed to iterate change records for prune")
		}

		if _, err := bw.Delete(docSnap.Ref); err != nil {
			return deleted, goerr.Wrap(err, "failed to enqueue delete",
				goerr.V("doc", docSnap.Ref.ID))
		}
		deleted++
	}
	bw.End()

	return deleted, nil
}
