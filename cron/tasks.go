package cron

import (
	"context"
	"encoding/json"
	"time"

	"pagecraft/config"

	"github.com/hibiken/asynq"
)

const (
	TypePublishScheduled = "page:publish_scheduled"
	TypeInvalidateRender = "render:invalidate"
)

// PublishPayload identifies the page a deferred publish applies to.
type PublishPayload struct {
	PageID string `json:"pageId"`
}

// InvalidatePayload identifies the render-cache scope to drop.
type InvalidatePayload struct {
	Scope string `json:"scope"`
}

func redisOpts() asynq.RedisClientOpt {
	return asynq.RedisClientOpt{
		Addr:     config.AppConfig.RedisAddr,
		Password: config.AppConfig.RedisPassword,
		DB:       config.AppConfig.RedisQueueDB,
	}
}

// TaskClient enqueues background tasks. It implements the page service's
// PublishScheduler and Invalidator, so render-cache invalidation runs on
// the worker instead of the request path.
type TaskClient struct {
	client *asynq.Client
}

func NewTaskClient() *TaskClient {
	return &TaskClient{client: asynq.NewClient(redisOpts())}
}

// SchedulePublish enqueues a publish task to run at the given time.
func (t *TaskClient) SchedulePublish(pageID string, at time.Time) error {
	payload, err := json.Marshal(PublishPayload{PageID: pageID})
	if err != nil {
		return err
	}
	task := asynq.NewTask(TypePublishScheduled, payload)
	_, err = t.client.Enqueue(task, asynq.ProcessAt(at))
	return err
}

// EnqueueInvalidate schedules a render-cache invalidation.
func (t *TaskClient) EnqueueInvalidate(scope string) error {
	payload, err := json.Marshal(InvalidatePayload{Scope: scope})
	if err != nil {
		return err
	}
	_, err = t.client.Enqueue(asynq.NewTask(TypeInvalidateRender, payload))
	return err
}

// Invalidate satisfies the page service's Invalidator by deferring the
// cache drop to the worker.
func (t *TaskClient) Invalidate(ctx context.Context, scope string) error {
	return t.EnqueueInvalidate(scope)
}

func (t *TaskClient) Close() error {
	return t.client.Close()
}
