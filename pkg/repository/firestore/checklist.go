package firestore

import (
	"context"
	"time"

	"cloud.google.com/go/firestore"
	"github.com/m-mizutani/goerr/v2"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"github.com/secmon-lab/ticklist/pkg/domain/model"
	"github.com/secmon-lab/ticklist/pkg/domain/types"
	"github.com/secmon-lab/ticklist/pkg/utils/logging"
)

type checklistRepository struct {
	client           *firestore.Client
	collectionPrefix string
}

func newChecklistRepository(client *firestore.Client) *checklistRepository {
	return &checklistRepository{
		client: client,
	}
}

func (r *checklistRepository) collection() string {
	if r.collectionPrefix != "" {
		return r.collectionPrefix + "_checklists"
	}
	return "checklists"
}

// checklistDoc is the stored shape of one session's checklist
type checklistDoc struct {
	Categories []model.Category `firestore:"categories"`
	UpdatedAt  time.Time        `firestore:"updatedAt"`
}

func (r *checklistRepository) Get(ctx context.Context, sessionID types.SessionID) (model.Checklist, error) {
	docSnap, err := r.client.Collection(r.collection()).Doc(sessionID.String()).Get(ctx)
	if err != nil {
		if status.Code(err) == codes.NotFound {
			return model.Checklist{}, nil
		}
		return model.Checklist{}, goerr.Wrap(err, "failed to get checklist",
			goerr.V("sessionID", sessionID))
	}

	var doc checklistDoc
	if err := docSnap.DataTo(&doc); err != nil {
		// Malformed stored data degrades to an empty checklist instead of
		// failing the session.
		logging.From(ctx).Warn("stored checklist is not decodable, treating as empty",
			"sessionID", sessionID.String(),
			"error", err.Error())
		return model.Checklist{}, nil
	}

	return model.Checklist{Categories: doc.Categories}, nil
}

func (r *checklistRepository) Put(ctx context.Context, sessionID types.SessionID, cl model.Checklist) error {
	doc := checklistDoc{
		Categories: cl.Categories,
		UpdatedAt:  time.Now().UTC(),
	}

	_, err := r.client.Collection(r.collection()).Doc(sessionID.String()).Set(ctx, doc)
	if err != nil {
		return goerr.Wrap(err, "failed to put checklist",
			goerr.V("sessionID", sessionID),
			goerr.V("categories", len(cl.Categories)))
	}
	return nil
}

func (r *checklistRepository) Delete(ctx context.Context, sessionID types.SessionID) error {
	_, err := r.client.Collection(r.collection()).Doc(sessionID.String()).Delete(ctx)
	if err != nil {
		return goerr.Wrap(err, "failed to delete checklist",
			goerr.V("sessionID", sessionID))
	}
	return nil
}
