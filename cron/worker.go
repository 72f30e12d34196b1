package cron

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"time"

	"github.com/hibiken/asynq"
)

// PagePublisher flips a page to published. The page service implements it.
type PagePublisher interface {
	PublishPage(ctx context.Context, id string) error
}

// RenderInvalidator drops cached render output for one scope. The render
// cache implements it.
type RenderInvalidator interface {
	Invalidate(ctx context.Context, scope string) error
}

// InitWorker runs the async worker in background.
func InitWorker(publisher PagePublisher, cache RenderInvalidator) {
	srv := asynq.NewServer(
		redisOpts(),
		asynq.Config{
			Concurrency: 10,
			Queues: map[string]int{
				"default": 1,
			},
		},
	)

	mux := asynq.NewServeMux()
	mux.HandleFunc(TypePublishScheduled, handlePublishTask(publisher))
	mux.HandleFunc(TypeInvalidateRender, handleInvalidateTask(cache))

	// Start async worker with retry logic.
	go func() {
		log.Println("[Worker] starting async worker...")
		const maxAttempts = 5

		for attempts := 1; attempts <= maxAttempts; attempts++ {
			if err := srv.Run(mux); err != nil {
				log.Printf("[Worker] attempt %d/%d failed to start worker: %v", attempts, maxAttempts, err)

				if attempts == maxAttempts {
					log.Fatal("[Worker] max retry attempts reached. Exiting.")
				}
				time.Sleep(time.Duration(attempts*2) * time.Second) // Exponential backoff
			} else {
				break
			}
		}
	}()
}

func handlePublishTask(publisher PagePublisher) asynq.HandlerFunc {
	return func(ctx context.Context, task *asynq.Task) error {
		var payload PublishPayload
		if err := json.Unmarshal(task.Payload(), &payload); err != nil {
			return fmt.Errorf("invalid publish payload: %w", err)
		}
		if err := publisher.PublishPage(ctx, payload.PageID); err != nil {
			return fmt.Errorf("deferred publish of page %s failed: %w", payload.PageID, err)
		}
		return nil
	}
}

func handleInvalidateTask(cache RenderInvalidator) asynq.HandlerFunc {
	return func(ctx context.Context, task *asynq.Task) error {
		var payload InvalidatePayload
		if err := json.Unmarshal(task.Payload(), &payload); err != nil {
			return fmt.Errorf("invalid invalidate payload: %w", err)
		}
		if cache == nil {
			return nil
		}
		return cache.Invalidate(ctx, payload.Scope)
	}
}
