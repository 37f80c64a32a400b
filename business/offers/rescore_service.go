package offers

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"aipricing/business/pricing"
	"aipricing/domain"
	"aipricing/pkg/logger"
	"aipricing/pkg/metrics"
)

type RescoreJobRepository interface {
	Save(ctx context.Context, job domain.RescoreJob) error
	Find(ctx context.Context, id string) (domain.RescoreJob, error)
}

const (
	rescoreTimeout       = 10 * time.Minute
	rescoreProgressEvery = 25
)

// RescoreService re-prices the whole offer book in the background. Job
// state lives in Redis so status survives across API instances.
type RescoreService struct {
	offerRepo   OfferRepository
	companyRepo CompanyRepository
	jobRepo     RescoreJobRepository
	engine      *pricing.Engine
	model       pricing.Model
}

func NewRescoreService(
	offerRepo OfferRepository,
	companyRepo CompanyRepository,
	jobRepo RescoreJobRepository,
	engine *pricing.Engine,
	model pricing.Model,
) *RescoreService {
	return &RescoreService{
		offerRepo:   offerRepo,
		companyRepo: companyRepo,
		jobRepo:     jobRepo,
		engine:      engine,
		model:       model,
	}
}

// StartRescore registers a pending job and kicks off the batch in a
// goroutine. The returned id can be polled via JobStatus.
func (s *RescoreService) StartRescore(ctx context.Context) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", fmt.Errorf("context error: %w", err)
	}

	job := domain.RescoreJob{
		ID:        uuid.NewString(),
		Status:    domain.RescoreStatusPending,
		StartedAt: time.Now().UTC(),
	}
	if err := s.jobRepo.Save(ctx, job); err != nil {
		return "", err
	}

	go s.run(job)

	return job.ID, nil
}

func (s *RescoreService) JobStatus(ctx context.Context, id string) (domain.RescoreJob, error) {
	if err := ctx.Err(); err != nil {
		return domain.RescoreJob{}, fmt.Errorf("context error: %w", err)
	}

	return s.jobRepo.Find(ctx, id)
}

// run drives one batch to completion. It is detached from the request
// context on purpose; the batch carries its own timeout.
func (s *RescoreService) run(job domain.RescoreJob) {
	ctx, cancel := context.WithTimeout(context.Background(), rescoreTimeout)
	defer cancel()

	if err := s.execute(ctx, &job); err != nil {
		job.Status = domain.RescoreStatusFailed
		if ctx.Err() != nil {
			job.Status = domain.RescoreStatusCanceled
		}
		job.Error = err.Error()
		logger.Error("rescore job aborted", "job_id", job.ID, "error", err.Error())
	} else {
		job.Status = domain.RescoreStatusDone
	}
	job.FinishedAt = time.Now().UTC()

	metrics.RescoreJobsTotal.WithLabelValues(job.Status).Inc()

	// The batch context may already be dead; the final status write gets
	// its own deadline.
	saveCtx, saveCancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer saveCancel()
	if err := s.jobRepo.Save(saveCtx, job); err != nil {
		logger.Error("persist rescore job result", err)
	}
}

func (s *RescoreService) execute(ctx context.Context, job *domain.RescoreJob) error {
	job.Status = domain.RescoreStatusRunning
	if err := s.jobRepo.Save(ctx, *job); err != nil {
		return err
	}

	offers, err := s.offerRepo.FindAll(ctx)
	if err != nil {
		return fmt.Errorf("load offers: %w", err)
	}
	job.Total = len(offers)

	risks := make(map[uint64]float64)
	attrs := make([]domain.OfferAttributes, len(offers))
	for i, offer := range offers {
		attrs[i] = offer.Attributes(s.industryRisk(ctx, risks, offer.CompanyID))
	}

	batch, err := s.engine.RescoreAll(ctx, attrs, s.model)
	if err != nil {
		return err
	}
	job.Degraded = batch.Degraded
	job.Failed = batch.Failed

	for i, item := range batch.Items {
		if err := ctx.Err(); err != nil {
			return fmt.Errorf("rescore canceled: %w", err)
		}
		if item.Err != nil {
			logger.Warn("offer skipped during rescore",
				"offer_id", offers[i].ID,
				"error", item.Err.Error(),
			)
			continue
		}
		if err := s.offerRepo.UpdateScores(ctx, offers[i].ID, item.Result.Score, item.Result.Price.FinalPrice); err != nil {
			return fmt.Errorf("persist offer %d: %w", offers[i].ID, err)
		}
		job.Updated++
		if job.Updated%rescoreProgressEvery == 0 {
			if err := s.jobRepo.Save(ctx, *job); err != nil {
				logger.Warn("persist rescore progress", "job_id", job.ID, "error", err.Error())
			}
		}
	}

	logger.Info("rescore job finished",
		"job_id", job.ID,
		"total", job.Total,
		"updated", job.Updated,
		"degraded", job.Degraded,
		"failed", job.Failed,
	)

	return nil
}

// industryRisk resolves a company's industry risk with a per-batch cache.
// Unresolvable companies fall back to the default risk rather than
// aborting the whole batch.
func (s *RescoreService) industryRisk(ctx context.Context, cache map[uint64]float64, companyID uint64) float64 {
	if risk, ok := cache[companyID]; ok {
		return risk
	}

	risk := domain.DefaultIndustryRisk
	company, err := s.companyRepo.FindByID(ctx, companyID)
	if err == nil && company.Industry != nil {
		risk = company.Industry.RiskFactor
	}
	cache[companyID] = risk

	return risk
}
