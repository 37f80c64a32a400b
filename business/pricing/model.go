package pricing

import "errors"

// Model is the statistical regressor contract. Concrete implementations
// live outside the engine; the engine only holds a read-only reference to
// whichever snapshot the caller passes in.
type Model interface {
	Predict(features FeatureVector) (float64, error)
}

// ErrModelUnavailable marks a recoverable condition: the model is not
// loaded (or mid-retrain). The combiner degrades to rule-only scoring
// instead of failing. Retry policy, if any, belongs to the caller.
var ErrModelUnavailable = errors.New("model unavailable")

// scoreModel invokes the model and normalizes its raw prediction into
// [0,100]. It never retries.
func scoreModel(model Model, features FeatureVector) (float64, error) {
	if model == nil {
		return 0, ErrModelUnavailable
	}
	raw, err := model.Predict(features)
	if err != nil {
		return 0, err
	}
	return clamp(raw, 0, 100), nil
}
