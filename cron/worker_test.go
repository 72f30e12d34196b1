package cron

import (
	"context"
	"encoding/json"
	"testing"

	"github.com/hibiken/asynq"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakePublisher struct {
	published []string
}

func (f *fakePublisher) PublishPage(ctx context.Context, id string) error {
	f.published = append(f.published, id)
	return nil
}

type fakeRenderCache struct {
	scopes []string
}

func (f *fakeRenderCache) Invalidate(ctx context.Context, scope string) error {
	f.scopes = append(f.scopes, scope)
	return nil
}

func TestHandlePublishTask(t *testing.T) {
	publisher := &fakePublisher{}
	handler := handlePublishTask(publisher)

	payload, err := json.Marshal(PublishPayload{PageID: "page-1"})
	require.NoError(t, err)

	err = handler(context.Background(), asynq.NewTask(TypePublishScheduled, payload))
	require.NoError(t, err)
	assert.Equal(t, []string{"page-1"}, publisher.published)
}

func TestHandlePublishTaskRejectsBadPayload(t *testing.T) {
	handler := handlePublishTask(&fakePublisher{})
	err := handler(context.Background(), asynq.NewTask(TypePublishScheduled, []byte("{")))
	assert.Error(t, err)
}

func TestHandleInvalidateTask(t *testing.T) {
	cache := &fakeRenderCache{}
	handler := handleInvalidateTask(cache)

	payload, err := json.Marshal(InvalidatePayload{Scope: "store-1"})
	require.NoError(t, err)

	err = handler(context.Background(), asynq.NewTask(TypeInvalidateRender, payload))
	require.NoError(t, err)
	assert.Equal(t, []string{"store-1"}, cache.scopes)
}

func TestHandleInvalidateTaskWithoutCache(t *testing.T) {
	handler := handleInvalidateTask(nil)
	payload, err := json.Marshal(InvalidatePayload{Scope: "store-1"})
	require.NoError(t, err)
	assert.NoError(t, handler(context.Background(), asynq.NewTask(TypeInvalidateRender, payload)))
}
