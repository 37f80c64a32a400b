package redisrepo

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"aipricing/domain"
)

// Jobs are short-lived bookkeeping; a day is plenty for the admin UI to
// poll the outcome.
const jobTTL = 24 * time.Hour

var ErrJobNotFound = errors.New("rescore job not found")

// RescoreJobRepository keeps rescore job progress in Redis so any API
// instance can answer status polls for a job running elsewhere.
type RescoreJobRepository struct {
	client *redis.Client
}

func NewRescoreJobRepository(client *redis.Client) *RescoreJobRepository {
	return &RescoreJobRepository{client: client}
}

func jobKey(id string) string {
	return "rescore:job:" + id
}

func (r *RescoreJobRepository) Save(ctx context.Context, job domain.RescoreJob) error {
	if err := ctx.Err(); err != nil {
		return fmt.Errorf("context error: %w", err)
	}

	raw, err := json.Marshal(job)
	if err != nil {
		return fmt.Errorf("failed to marshal rescore job: %w", err)
	}

	if err := r.client.Set(ctx, jobKey(job.ID), raw, jobTTL).Err(); err != nil {
		return fmt.Errorf("failed to save rescore job: %w", err)
	}

	return nil
}

func (r *RescoreJobRepository) Find(ctx context.Context, id string) (domain.RescoreJob, error) {
	if err := ctx.Err(); err != nil {
		return domain.RescoreJob{}, fmt.Errorf("context error: %w", err)
	}

	raw, err := r.client.Get(ctx, jobKey(id)).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return domain.RescoreJob{}, ErrJobNotFound
		}
		return domain.RescoreJob{}, fmt.Errorf("failed to load rescore job: %w", err)
	}

	var job domain.RescoreJob
	if err := json.Unmarshal(raw, &job); err != nil {
		return domain.RescoreJob{}, fmt.Errorf("failed to unmarshal rescore job: %w", err)
	}

	return job, nil
}
