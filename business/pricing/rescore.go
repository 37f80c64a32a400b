package pricing

import (
	"context"
	"fmt"

	"aipricing/domain"
)

// BatchItem pairs one offer's result with the per-offer failure, if any.
// A failed item never aborts the batch.
type BatchItem struct {
	Result domain.OfferResult
	Err    error
}

// BatchResult summarizes a rescoring pass.
type BatchResult struct {
	Items    []BatchItem
	Degraded int
	Failed   int
}

// RescoreAll re-runs the exact per-offer pipeline over a collection of
// offers. Offers are independent: each one is scored or degraded on its
// own, and failures are collected instead of propagated. Cancellation is
// cooperative between offers, never mid-offer.
func (e *Engine) RescoreAll(ctx context.Context, offers []domain.OfferAttributes, model Model) (BatchResult, error) {
	out := BatchResult{Items: make([]BatchItem, 0, len(offers))}

	for _, attrs := range offers {
		if err := ctx.Err(); err != nil {
			return out, fmt.Errorf("rescore canceled: %w", err)
		}

		result, err := e.ComputeOffer(attrs, model)
		if err != nil {
			out.Failed++
			out.Items = append(out.Items, BatchItem{Err: err})
			continue
		}
		if result.Score.ModelUnavailable {
			out.Degraded++
		}
		out.Items = append(out.Items, BatchItem{Result: result})
	}

	return out, nil
}
