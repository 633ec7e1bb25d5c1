package app

import (
	"context"
	"fmt"
	"sync"

	"github.com/daniel5151/analog-literals/internal/ctxlog"
	"github.com/daniel5151/analog-literals/internal/literal"
	"github.com/daniel5151/analog-literals/internal/model"
	"github.com/daniel5151/analog-literals/internal/report"
)

// Run executes the main application logic: load every manifest, parse every
// literal, and either print the extracted dimensions or abort at the first
// malformed literal in declaration order.
func (a *App) Run(ctx context.Context) error {
	ctx = ctxlog.WithLogger(ctx, a.logger)
	a.logger.Debug("App.Run method started.")

	manifest, err := a.loader.Load(ctx, a.config.ManifestPath)
	if err != nil {
		return fmt.Errorf("failed to load shape manifests: %w", err)
	}
	if len(manifest.Shapes) == 0 {
		a.logger.Warn("No shape blocks found, nothing to parse.")
		return nil
	}

	results := a.parseAll(ctx, manifest.Shapes)

	// One literal, one diagnostic: render the first failure in declaration
	// order and abort without producing any value output.
	for _, r := range results {
		if r.Err == nil {
			continue
		}
		wr := report.NewWriter(a.outW, a.loader.Files())
		if werr := wr.WriteDiagnostic(report.Diagnostic(r.Shape, r.Err)); werr != nil {
			return fmt.Errorf("failed to render diagnostic: %w", werr)
		}
		return fmt.Errorf("shape %q is malformed: %w", r.Shape.Name, r.Err)
	}

	switch a.config.Output {
	case "json":
		out, err := model.MarshalResultsJSON(results)
		if err != nil {
			return fmt.Errorf("failed to marshal results: %w", err)
		}
		fmt.Fprintln(a.outW, string(out))
	default:
		for _, r := range results {
			fmt.Fprintf(a.outW, "%s: %s\n", r.Shape.Name, r.Value)
		}
	}

	a.logger.Debug("App.Run method finished.")
	return nil
}

// parseAll fans the literals out over a bounded worker pool. Invocations are
// fully independent and own their intermediate state, so the workers need no
// coordination beyond the WaitGroup; results land at their shape's index to
// preserve declaration order.
func (a *App) parseAll(ctx context.Context, shapes []*model.Shape) []*model.Result {
	logger := ctxlog.FromContext(ctx)

	workers := a.config.WorkerCount
	if workers > len(shapes) {
		workers = len(shapes)
	}

	results := make([]*model.Result, len(shapes))
	jobs := make(chan int)
	var wg sync.WaitGroup
	for w := 0; w < workers; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for i := range jobs {
				s := shapes[i]
				v, perr := literal.Parse(s.Art)
				results[i] = &model.Result{Shape: s, Value: v, Err: perr}
			}
		}()
	}
	for i := range shapes {
		jobs <- i
	}
	close(jobs)
	wg.Wait()

	logger.Debug("All literals parsed.", "count", len(shapes), "workers", workers)
	return results
}
