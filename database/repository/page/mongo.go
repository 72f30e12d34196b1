package pageRepo

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

type mongoPageRepo struct {
	coll *mongo.Collection
}

// NewMongoPageRepo returns a PageRepository backed by MongoDB.
func NewMongoPageRepo() PageRepository {
	db := database.MongoClient.Database(config.AppConfig.MongoDatabase)
	return &mongoPageRepo{
		coll: db.Collection(config.AppConfig.PagesCollection),
	}
}

func (r *mongoPageRepo) Upsert(ctx context.Context, page models.Page) (string, error) {
	if page.ID == "" {
		page.ID = uuid.New().String()
	}
	page.UpdatedAt = time.Now().UTC()

	raw, err := bson.Marshal(page)
	if err != nil {
		return "", fmt.Errorf("failed to encode page: %w", err)
	}
	var doc bson.M
	if err := bson.Unmarshal(raw, &doc); err != nil {
		return "", fmt.Errorf("failed to encode page: %w", err)
	}
	delete(doc, "_id")
	delete(doc, "created_at")
	delete(doc, "revision")

	update := bson.M{
		"$set":         doc,
		"$setOnInsert": bson.M{"created_at": page.UpdatedAt},
		"$inc":         bson.M{"revision": 1},
	}
	opts := options.Update().SetUpsert(true)
	if _, err := r.coll.UpdateOne(ctx, bson.M{"id": page.ID}, update, opts); err != nil {
		return "", fmt.Errorf("failed to upsert page %s: %w", page.ID, err)
	}
	return page.ID, nil
}

func (r *mongoPageRepo) GetByID(ctx context.Context, id string) (*models.Page, error) {
	return r.get(ctx, bson.M{"id": id})
}

func (r *mongoPageRepo) GetBySlug(ctx context.Context, slug string) (*models.Page, error) {
	return r.get(ctx, bson.M{"slug": slug})
}

func (r *mongoPageRepo) get(ctx context.Context, filter bson.M) (*models.Page, error) {
	var page models.Page
	err := r.coll.FindOne(ctx, filter).Decode(&page)
	if err == mongo.ErrNoDocuments {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &page, nil
}

// List returns all pages, most recently updated first.
func (r *mongoPageRepo) List(ctx context.Context) ([]models.Page, error) {
	opts := options.Find().SetSort(bson.D{{Key: "updated_at", Value: -1}})
	cursor, err := r.coll.Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var pages []models.Page
	if err := cursor.All(ctx, &pages); err != nil {
		return nil, err
	}
	return pages, nil
}

func (r *mongoPageRepo) Delete(ctx context.Context, id string) error {
	res, err := r.coll.DeleteOne(ctx, bson.M{"id": id})
	if err != nil {
		return err
	}
	if res.DeletedCount == 0 {
		return ErrNotFound
	}
	return nil
}
