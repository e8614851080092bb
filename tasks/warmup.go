package tasks

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"

	"github.com/hibiken/asynq"

	"github.com/jobportal/jobportal/internal/jobposting"
)

// SearchWarmupPayload names the keywords whose listings should be
// pre-populated. Empty keywords means the default landing query.
type SearchWarmupPayload struct {
	Keywords []string `json:"keywords"`
}

// NewSearchWarmupTask prepares a warmup task for the scheduler.
func NewSearchWarmupTask(payload SearchWarmupPayload) (*asynq.Task, error) {
	raw, err := json.Marshal(payload)
	if err != nil {
		return nil, err
	}
	return asynq.NewTask(TaskSearchWarmup, raw, asynq.Queue(QueueDefault)), nil
}

// SearchWarmupJob re-runs hot keyword searches so the listing cache stays
// warm between invalidations.
type SearchWarmupJob struct {
	Listings *jobposting.Service
	Logger   *slog.Logger
}

// NewSearchWarmupJob wires dependencies for the warmup handler.
func NewSearchWarmupJob(listings *jobposting.Service, logger *slog.Logger) *SearchWarmupJob {
	return &SearchWarmupJob{Listings: listings, Logger: logger}
}

// Handle processes warmup tasks.
func (j *SearchWarmupJob) Handle(ctx context.Context, t *asynq.Task) error {
	if j == nil || j.Listings == nil {
		return errors.New("search warmup: handler not configured")
	}
	var payload SearchWarmupPayload
	if err := json.Unmarshal(t.Payload(), &payload); err != nil {
		return asynq.SkipRetry
	}
	if len(payload.Keywords) == 0 {
		payload.Keywords = []string{""}
	}

	for _, keyword := range payload.Keywords {
		if _, err := j.Listings.List(ctx, keyword); err != nil {
			j.Logger.Error("warm listing", slog.String("keyword", keyword), slog.Any("error", err))
			return err
		}
	}
	j.Logger.Info("listing cache warmed", slog.Int("keywords", len(payload.Keywords)))
	return nil
}
