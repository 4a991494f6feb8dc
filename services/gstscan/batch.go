package gstscan

import (
	"context"
	"log/slog"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"

	"gstscan-backend/lib/scrapers/gstportal"
)

var tracer = otel.Tracer("services/gstscan")

// BatchResult aggregates the outcome of one sequential run over a list
// of identifiers, order-preserving.
type BatchResult struct {
	Outcomes  []gstportal.Outcome
	Succeeded int
	Failed    int
}

// Records returns the successful records in run order.
func (r BatchResult) Records() []gstportal.Record {
	records := make([]gstportal.Record, 0, r.Succeeded)
	for _, o := range r.Outcomes {
		if o.OK() {
			records = append(records, *o.Record)
		}
	}
	return records
}

// Scrape runs the pipeline for one identifier, answering from the demo
// catalog instead of the network when demo mode is on.
func (s *Service) Scrape(ctx context.Context, id string) gstportal.Outcome {
	if s.cfg.DemoMode {
		return demoOutcome(id, s.now())
	}
	return s.client.Scrape(ctx, id)
}

// Run scrapes the identifiers strictly in order, one at a time, with a
// randomized delay between consecutive identifiers (never after the
// last). Failures are tallied and the batch continues.
func (s *Service) Run(ctx context.Context, ids []string) BatchResult {
	ctx, span := tracer.Start(ctx, "service:Run")
	defer span.End()
	span.SetAttributes(attribute.Int("batch_size", len(ids)))

	result := BatchResult{Outcomes: make([]gstportal.Outcome, 0, len(ids))}
	delayMin, delayMax := s.delayWindow()

	for i, id := range ids {
		slog.InfoContext(ctx, "processing gstin",
			"position", i+1,
			"total", len(ids),
			"gstin", id,
		)

		outcome := s.Scrape(ctx, id)
		result.Outcomes = append(result.Outcomes, outcome)
		if outcome.OK() {
			result.Succeeded++
		} else {
			result.Failed++
			slog.WarnContext(ctx, "gstin failed",
				"gstin", id,
				"kind", outcome.Kind.String(),
				"err", outcome.Err,
			)
		}

		if i < len(ids)-1 && !s.cfg.DemoMode {
			s.sleep(ctx, delayMin, delayMax)
		}
	}

	slog.InfoContext(ctx, "batch complete",
		"total", len(ids),
		"succeeded", result.Succeeded,
		"failed", result.Failed,
	)
	return result
}
