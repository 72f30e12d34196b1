package blockRepo

import (
	"context"
	"fmt"
	"time"

	"pagecraft/config"
	"pagecraft/database"
	"pagecraft/models"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type mongoBlockRepo struct {
	coll *mongo.Collection
}

// NewMongoBlockRepo returns a BlockRepository backed by MongoDB.
func NewMongoBlockRepo() BlockRepository {
	db := database.MongoClient.Database(config.AppConfig.MongoDatabase)
	return &mongoBlockRepo{
		coll: db.Collection(config.AppConfig.BlocksCollection),
	}
}

// Upsert writes the block with merge semantics: created_at is only set when
// the document does not exist yet, updated_at is always refreshed, and the
// revision counter is bumped.
func (r *mongoBlockRepo) Upsert(ctx context.Context, block models.Block) (string, error) {
	if block.ID == "" {
		block.ID = uuid.New().String()
	}
	block.UpdatedAt = time.Now().UTC()

	doc, err := toUpdateDocument(block)
	if err != nil {
		return "", fmt.Errorf("failed to encode block: %w", err)
	}

	update := bson.M{
		"$set":         doc,
		"$setOnInsert": bson.M{"created_at": block.UpdatedAt},
		"$inc":         bson.M{"revision": 1},
	}
	opts := options.Update().SetUpsert(true)
	if _, err := r.coll.UpdateOne(ctx, bson.M{"id": block.ID}, update, opts); err != nil {
		return "", fmt.Errorf("failed to upsert block %s: %w", block.ID, err)
	}
	return block.ID, nil
}

func (r *mongoBlockRepo) GetByID(ctx context.Context, id string) (*models.Block, error) {
	var block models.Block
	err := r.coll.FindOne(ctx, bson.M{"id": id}).Decode(&block)
	if err == mongo.ErrNoDocuments {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &block, nil
}

func (r *mongoBlockRepo) ListByParent(ctx context.Context, parentID string) ([]models.Block, error) {
	return r.list(ctx, bson.M{"parentId": parentID})
}

func (r *mongoBlockRepo) ListByPage(ctx context.Context, pageID string) ([]models.Block, error) {
	return r.list(ctx, bson.M{"pageId": pageID})
}

func (r *mongoBlockRepo) list(ctx context.Context, filter bson.M) ([]models.Block, error) {
	opts := options.Find().SetSort(bson.D{{Key: "order", Value: 1}})
	cursor, err := r.coll.Find(ctx, filter, opts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var blocks []models.Block
	if err := cursor.All(ctx, &blocks); err != nil {
		return nil, err
	}
	return blocks, nil
}

func (r *mongoBlockRepo) CountByParent(ctx context.Context, parentID string) (int64, error) {
	return r.coll.CountDocuments(ctx, bson.M{"parentId": parentID})
}

func (r *mongoBlockRepo) CountByPage(ctx context.Context, pageID string) (int64, error) {
	return r.coll.CountDocuments(ctx, bson.M{"pageId": pageID})
}

func (r *mongoBlockRepo) Delete(ctx context.Context, id string) error {
	res, err := r.coll.DeleteOne(ctx, bson.M{"id": id})
	if err != nil {
		return err
	}
	if res.DeletedCount == 0 {
		return ErrNotFound
	}
	return nil
}

// Reorder rewrites the order of every listed block inside one transaction.
// The stored list revision must match expectedRevision, otherwise the block
// list changed under the caller and ErrReorderConflict is returned.
func (r *mongoBlockRepo) Reorder(ctx context.Context, parentID string, orderedIDs []string, expectedRevision int64) error {
	client := r.coll.Database().Client()
	sess, err := client.StartSession()
	if err != nil {
		return fmt.Errorf("could not start mongo session: %w", err)
	}
	defer sess.EndSession(ctx)

	txnFn := func(sc mongo.SessionContext) error {
		blocks, err := r.list(sc, bson.M{"parentId": parentID})
		if err != nil {
			return fmt.Errorf("failed to load blocks for reorder: %w", err)
		}
		if ListRevision(blocks) != expectedRevision {
			return ErrReorderConflict
		}
		stored := make(map[string]bool, len(blocks))
		for _, b := range blocks {
			stored[b.ID] = true
		}
		if len(orderedIDs) != len(blocks) {
			return ErrReorderConflict
		}
		for _, id := range orderedIDs {
			if !stored[id] {
				return ErrReorderConflict
			}
		}

		now := time.Now().UTC()
		for index, id := range orderedIDs {
			update := bson.M{
				"$set": bson.M{"order": index, "updated_at": now},
				"$inc": bson.M{"revision": 1},
			}
			res, err := r.coll.UpdateOne(sc, bson.M{"id": id, "parentId": parentID}, update)
			if err != nil {
				return fmt.Errorf("failed to reorder block %s: %w", id, err)
			}
			if res.MatchedCount == 0 {
				return ErrReorderConflict
			}
		}
		return nil
	}

	if err := mongo.WithSession(ctx, sess, func(sc mongo.SessionContext) error {
		if err := sc.StartTransaction(); err != nil {
			return err
		}
		if err := txnFn(sc); err != nil {
			_ = sc.AbortTransaction(sc)
			return err
		}
		return sc.CommitTransaction(sc)
	}); err != nil {
		return err
	}
	return nil
}

// toUpdateDocument converts a model into a bson document suitable for $set,
// stripping the fields managed by the upsert operators.
func toUpdateDocument(v any) (bson.M, error) {
	raw, err := bson.Marshal(v)
	if err != nil {
		return nil, err
	}
	var doc bson.M
	if err := bson.Unmarshal(raw, &doc); err != nil {
		return nil, err
	}
	delete(doc, "_id")
	delete(doc, "created_at")
	delete(doc, "revision")
	return doc, nil
}
