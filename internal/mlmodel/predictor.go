package mlmodel

import (
	"encoding/json"
	"fmt"
	"os"
	"sync/atomic"

	"aipricing/business/pricing"
)

// artifact is the on-disk format the training pipeline exports: a linear
// approximation of the regressor, one coefficient per feature slot plus
// an intercept. Training itself happens outside this service.
type artifact struct {
	Version      string    `json:"version"`
	Intercept    float64   `json:"intercept"`
	Coefficients []float64 `json:"coefficients"`
}

type snapshot struct {
	version      string
	intercept    float64
	coefficients [len(pricing.FeatureVector{})]float64
}

// Predictor serves predictions from the most recently loaded artifact.
// Reload swaps the snapshot atomically, so concurrent scorers always see
// either the old or the new model, never a partial one. An unloaded
// predictor reports pricing.ErrModelUnavailable.
type Predictor struct {
	current atomic.Pointer[snapshot]
}

var _ pricing.Model = (*Predictor)(nil)

func NewPredictor() *Predictor {
	return &Predictor{}
}

// Load reads and swaps in an artifact file. The old snapshot stays active
// until the new one is fully parsed.
func (p *Predictor) Load(path string) error {
	raw, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read model artifact: %w", err)
	}

	var art artifact
	if err := json.Unmarshal(raw, &art); err != nil {
		return fmt.Errorf("parse model artifact: %w", err)
	}

	snap := &snapshot{version: art.Version, intercept: art.Intercept}
	if len(art.Coefficients) != len(snap.coefficients) {
		return fmt.Errorf("model artifact has %d coefficients, want %d",
			len(art.Coefficients), len(snap.coefficients))
	}
	copy(snap.coefficients[:], art.Coefficients)

	p.current.Store(snap)
	return nil
}

// Version reports the loaded artifact version, empty when unloaded.
func (p *Predictor) Version() string {
	if snap := p.current.Load(); snap != nil {
		return snap.version
	}
	return ""
}

func (p *Predictor) Loaded() bool {
	return p.current.Load() != nil
}

func (p *Predictor) Predict(features pricing.FeatureVector) (float64, error) {
	snap := p.current.Load()
	if snap == nil {
		return 0, pricing.ErrModelUnavailable
	}

	score := snap.intercept
	for i, c := range snap.coefficients {
		score += c * features[i]
	}
	return score, nil
}
