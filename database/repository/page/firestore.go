package pageRepo

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

type firestorePageRepo struct {
	client *firestore.Client
	coll   string
}

// NewFirestorePageRepo returns a PageRepository backed by Firestore.
func NewFirestorePageRepo() PageRepository {
	return &firestorePageRepo{
		client: utils.GetFirestoreClient(),
		coll:   config.AppConfig.PagesCollection,
	}
}

func (r *firestorePageRepo) Upsert(ctx context.Context, page models.Page) (string, error) {
	if page.ID == "" {
		page.ID = uuid.New().String()
	}
	page.UpdatedAt = time.Now().UTC()

	raw, err := json.Marshal(page)
	if err != nil {
		return "", fmt.Errorf("failed to encode page: %w", err)
	}
	var doc map[string]any
	if err := json.Unmarshal(raw, &doc); err != nil {
		return "", fmt.Errorf("failed to encode page: %w", err)
	}
	delete(doc, "created_at")
	doc["revision"] = firestore.Increment(1)

	ref := r.client.Collection(r.coll).Doc(page.ID)
	err = r.client.RunTransaction(ctx, func(ctx context.Context, tx *firestore.Transaction) error {
		snap, err := tx.Get(ref)
		if err != nil && status.Code(err) != codes.NotFound {
			return err
		}
		if err != nil || !snap.Exists() {
			doc["created_at"] = page.UpdatedAt.Format(time.RFC3339Nano)
		}
		return tx.Set(ref, doc, firestore.MergeAll)
	})
	if err != nil {
		return "", fmt.Errorf("failed to upsert page %s: %w", page.ID, err)
	}
	return page.ID, nil
}

func (r *firestorePageRepo) GetByID(ctx context.Context, id string) (*models.Page, error) {
	snap, err := r.client.Collection(r.coll).Doc(id).Get(ctx)
	if status.Code(err) == codes.NotFound {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return decodePage(snap.Data())
}

func (r *firestorePageRepo) GetBySlug(ctx context.Context, slug string) (*models.Page, error) {
	it := r.client.Collection(r.coll).Where("slug", "==", slug).Limit(1).Documents(ctx)
	defer it.Stop()
	snap, err := it.Next()
	if err == iterator.Done {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return decodePage(snap.Data())
}

func (r *firestorePageRepo) List(ctx context.Context) ([]models.Page, error) {
	it := r.client.Collection(r.coll).
		OrderBy("updated_at", firestore.Desc).
		Documents(ctx)
	defer it.Stop()

	var pages []models.Page
	for {
		snap, err := it.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			return nil, err
		}
		page, err := decodePage(snap.Data())
		if err != nil {
			return nil, err
		}
		pages = append(pages, *page)
	}
	return pages, nil
}

func (r *firestorePageRepo) Delete(ctx context.Context, id string) error {
	ref := r.client.Collection(r.coll).Doc(id)
	if _, err := ref.Get(ctx); status.Code(err) == codes.NotFound {
		return ErrNotFound
	}
	_, err := ref.Delete(ctx)
	return err
}

func decodePage(data map[string]any) (*models.Page, error) {
	raw, err := json.Marshal(data)
	if err != nil {
		return nil, err
	}
	var page models.Page
	if err := json.Unmarshal(raw, &page); err != nil {
		return nil, err
	}
	return &page, nil
}
