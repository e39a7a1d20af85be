package analyzer

import (
	"context"
	"fmt"
	"sort"

	"github.com/google/uuid"
	"github.com/jonathan/ats-checker/internal/types"
	"golang.org/x/sync/errgroup"
)

// DefaultConcurrency bounds AnalyzeBatch when no limit is given.
const DefaultConcurrency = 4

// AnalyzeBatch analyzes resumeText against each job with at most concurrency analyses in flight.
// Entries are ranked by score descending, then job name ascending. It returns ctx.Err() if the
// context is canceled before every job is analyzed.
func (a *Analyzer) AnalyzeBatch(ctx context.Context, resumeText string, jobs []types.JobInput, concurrency int) (*types.BatchReport, error) {
	if concurrency <= 0 {
		concurrency = DefaultConcurrency
	}

	entries := make([]types.BatchEntry, len(jobs))

	g, gCtx := errgroup.WithContext(ctx)
	g.SetLimit(concurrency)

	for i, job := range jobs {
		if err := gCtx.Err(); err != nil {
			break
		}
		i, job := i, job
		g.Go(func() error {
			if err := gCtx.Err(); err != nil {
				return err
			}
			entries[i] = types.BatchEntry{Job: job.Name, Result: a.Analyze(resumeText, job.Text)}
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, fmt.Errorf("batch analysis canceled: %w", err)
	}
	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("batch analysis canceled: %w", err)
	}

	sort.SliceStable(entries, func(i, j int) bool {
		if entries[i].Result.Score != entries[j].Result.Score {
			return entries[i].Result.Score > entries[j].Result.Score
		}
		return entries[i].Job < entries[j].Job
	})

	return &types.BatchReport{RunID: uuid.New(), Entries: entries}, nil
}
