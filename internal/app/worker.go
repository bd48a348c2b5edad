package app

import (
	"context"
	"errors"

	"github.com/redis/go-redis/v9"
)

// WorkerLoop drains queued triage jobs and runs classify+reply for each.
// It returns only when ctx is cancelled or the queue handle is missing.
func (a *App) WorkerLoop(ctx context.Context) error {
	if a.Cache == nil {
		return errors.New("worker requires redis (set SD_REDIS_URL)")
	}
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		default:
		}
		inquiry, err := a.Cache.PopTriageJob(ctx, a.Config.Worker.PopTimeout)
		if errors.Is(err, redis.Nil) {
			continue
		}
		if err != nil {
			if ctx.Err() != nil {
				return ctx.Err()
			}
			a.logger.Printf("worker pop error: %v", err)
			continue
		}
		cat, reply, err := a.Tasks.ClassifyAndReply(ctx, inquiry)
		if err != nil {
			a.logger.Printf("worker triage error: %v", err)
			continue
		}
		a.logger.Printf("worker triaged category=%s reply_chars=%d", cat, len(reply))
	}
}
