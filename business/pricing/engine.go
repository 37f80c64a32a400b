package pricing

import (
	"errors"
	"fmt"
	"time"

	"aipricing/domain"
)

// Engine is the hybrid scoring & pricing pipeline. It holds only its
// frozen configuration; every method is pure and safe for concurrent use
// without coordination.
type Engine struct {
	cfg EngineConfig
}

// NewEngine validates the configuration up front. A configuration error
// is a broken deployment, not a data problem, so it is returned here once
// and never per-request.
func NewEngine(cfg EngineConfig) (*Engine, error) {
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("engine config: %w", err)
	}
	return &Engine{cfg: cfg}, nil
}

func (e *Engine) Config() EngineConfig {
	return e.cfg
}

// ComputeOffer runs the full pipeline for one offer: feature encoding and
// rule evaluation, model scoring, hybrid blending, tier mapping, price
// cascade. Model unavailability is absorbed into the degraded rule-only
// path and recorded on the breakdown; any other model error propagates.
func (e *Engine) ComputeOffer(attrs domain.OfferAttributes, model Model) (domain.OfferResult, error) {
	if err := ValidateAttributes(attrs); err != nil {
		return domain.OfferResult{}, err
	}

	features := BuildFeatureVector(attrs)
	ruleScore := EvaluateRules(attrs)

	modelScore, err := scoreModel(model, features)
	degraded := false
	if err != nil {
		if !errors.Is(err, ErrModelUnavailable) {
			return domain.OfferResult{}, fmt.Errorf("model predict: %w", err)
		}
		degraded = true
		modelScore = 0
	}

	score := e.cfg.combine(ruleScore, modelScore, degraded)
	price := e.cfg.Price(attrs, score.PriorityTier)

	offersScoredTotal.WithLabelValues(string(score.PriorityTier)).Inc()
	if degraded {
		degradedScoringsTotal.Inc()
	}

	return domain.OfferResult{
		Attributes: attrs,
		Score:      score,
		Price:      price,
		CreatedAt:  time.Now().UTC(),
	}, nil
}
