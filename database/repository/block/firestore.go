package blockRepo

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"pagecraft/config"
	"pagecraft/models"
	"pagecraft/utils"

	"cloud.google.com/go/firestore"
	"github.com/google/uuid"
	"google.golang.org/api/iterator"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

type firestoreBlockRepo struct {
	client *firestore.Client
	coll   string
}

// NewFirestoreBlockRepo returns a BlockRepository backed by Firestore, the
// backend the hosted editor deployments use.
func NewFirestoreBlockRepo() BlockRepository {
	return &firestoreBlockRepo{
		client: utils.GetFirestoreClient(),
		coll:   config.AppConfig.BlocksCollection,
	}
}

func (r *firestoreBlockRepo) Upsert(ctx context.Context, block models.Block) (string, error) {
	if block.ID == "" {
		block.ID = uuid.New().String()
	}
	block.UpdatedAt = time.Now().UTC()

	doc, err := toFirestoreDocument(block)
	if err != nil {
		return "", fmt.Errorf("failed to encode block: %w", err)
	}
	delete(doc, "created_at")
	doc["revision"] = firestore.Increment(1)

	ref := r.client.Collection(r.coll).Doc(block.ID)
	err = r.client.RunTransaction(ctx, func(ctx context.Context, tx *firestore.Transaction) error {
		snap, err := tx.Get(ref)
		if err != nil && status.Code(err) != codes.NotFound {
			return err
		}
		if err != nil || !snap.Exists() {
			doc["created_at"] = block.UpdatedAt.Format(time.RFC3339Nano)
		}
		return tx.Set(ref, doc, firestore.MergeAll)
	})
	if err != nil {
		return "", fmt.Errorf("failed to upsert block %s: %w", block.ID, err)
	}
	return block.ID, nil
}

func (r *firestoreBlockRepo) GetByID(ctx context.Context, id string) (*models.Block, error) {
	snap, err := r.client.Collection(r.coll).Doc(id).Get(ctx)
	if status.Code(err) == codes.NotFound {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	var block models.Block
	if err := fromFirestoreDocument(snap.Data(), &block); err != nil {
		return nil, err
	}
	return &block, nil
}

func (r *firestoreBlockRepo) ListByParent(ctx context.Context, parentID string) ([]models.Block, error) {
	q := r.client.Collection(r.coll).
		Where("parentId", "==", parentID).
		OrderBy("order", firestore.Asc)
	return r.collect(q.Documents(ctx))
}

func (r *firestoreBlockRepo) ListByPage(ctx context.Context, pageID string) ([]models.Block, error) {
	q := r.client.Collection(r.coll).
		Where("pageId", "==", pageID).
		OrderBy("order", firestore.Asc)
	return r.collect(q.Documents(ctx))
}

func (r *firestoreBlockRepo) collect(it *firestore.DocumentIterator) ([]models.Block, error) {
	defer it.Stop()
	var blocks []models.Block
	for {
		snap, err := it.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			return nil, err
		}
		var block models.Block
		if err := fromFirestoreDocument(snap.Data(), &block); err != nil {
			return nil, err
		}
		blocks = append(blocks, block)
	}
	return blocks, nil
}

func (r *firestoreBlockRepo) CountByParent(ctx context.Context, parentID string) (int64, error) {
	blocks, err := r.ListByParent(ctx, parentID)
	if err != nil {
		return 0, err
	}
	return int64(len(blocks)), nil
}

func (r *firestoreBlockRepo) CountByPage(ctx context.Context, pageID string) (int64, error) {
	blocks, err := r.ListByPage(ctx, pageID)
	if err != nil {
		return 0, err
	}
	return int64(len(blocks)), nil
}

func (r *firestoreBlockRepo) Delete(ctx context.Context, id string) error {
	ref := r.client.Collection(r.coll).Doc(id)
	if _, err := ref.Get(ctx); status.Code(err) == codes.NotFound {
		return ErrNotFound
	}
	_, err := ref.Delete(ctx)
	return err
}

// Reorder runs inside a Firestore transaction so the whole batch of order
// rewrites commits or aborts as one unit.
func (r *firestoreBlockRepo) Reorder(ctx context.Context, parentID string, orderedIDs []string, expectedRevision int64) error {
	return r.client.RunTransaction(ctx, func(ctx context.Context, tx *firestore.Transaction) error {
		q := r.client.Collection(r.coll).Where("parentId", "==", parentID)
		it := tx.Documents(q)
		defer it.Stop()

		var blocks []models.Block
		refs := make(map[string]*firestore.DocumentRef)
		for {
			snap, err := it.Next()
			if err == iterator.Done {
				break
			}
			if err != nil {
				return err
			}
			var block models.Block
			if err := fromFirestoreDocument(snap.Data(), &block); err != nil {
				return err
			}
			blocks = append(blocks, block)
			refs[block.ID] = snap.Ref
		}

		if ListRevision(blocks) != expectedRevision {
			return ErrReorderConflict
		}
		if len(orderedIDs) != len(blocks) {
			return ErrReorderConflict
		}

		now := time.Now().UTC().Format(time.RFC3339Nano)
		for index, id := range orderedIDs {
			ref, ok := refs[id]
			if !ok {
				return ErrReorderConflict
			}
			if err := tx.Update(ref, []firestore.Update{
				{Path: "order", Value: index},
				{Path: "updated_at", Value: now},
				{Path: "revision", Value: firestore.Increment(1)},
			}); err != nil {
				return err
			}
		}
		return nil
	})
}

// toFirestoreDocument converts a model into a plain map through its JSON
// wire shape, so Firestore documents keep the same field names as Mongo and
// the HTTP API.
func toFirestoreDocument(v any) (map[string]any, error) {
	raw, err := json.Marshal(v)
	if err != nil {
		return nil, err
	}
	var doc map[string]any
	if err := json.Unmarshal(raw, &doc); err != nil {
		return nil, err
	}
	return doc, nil
}

func fromFirestoreDocument(data map[string]any, v any) error {
	raw, err := json.Marshal(data)
	if err != nil {
		return err
	}
	return json.Unmarshal(raw, v)
}
