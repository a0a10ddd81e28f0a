package app

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"github.com/gridironlab/coachnet/internal/domain/model"
	"github.com/gridironlab/coachnet/pkg/logger"
)

// RecommendAll fans recommendation runs out across a bounded worker
// pool. Each run only reads the shared graph and closeness table, which
// are immutable after Build, so no locking is needed. Results keep the
// input target order; a failed target is reported in the joined error
// and omitted from the results, without aborting the other targets.
func (s *Service) RecommendAll(ctx context.Context, targets []int) ([]*model.StaffRecommendation, error) {
	if !s.built {
		return nil, ErrNotBuilt
	}

	type result struct {
		idx int
		rec *model.StaffRecommendation
		err error
	}

	jobs := make(chan int)
	results := make(chan result)

	workers := s.workerCount
	if workers > len(targets) {
		workers = len(targets)
	}
	if workers < 1 {
		workers = 1
	}

	var wg sync.WaitGroup
	for w := 0; w < workers; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for idx := range jobs {
				rec, err := s.Recommend(ctx, targets[idx])
				results <- result{idx: idx, rec: rec, err: err}
			}
		}()
	}

	go func() {
		defer close(jobs)
		for idx := range targets {
			select {
			case <-ctx.Done():
				return
			case jobs <- idx:
			}
		}
	}()

	go func() {
		wg.Wait()
		close(results)
	}()

	recs := make([]*model.StaffRecommendation, len(targets))
	var errs []error
	for r := range results {
		if r.err != nil {
			errs = append(errs, fmt.Errorf("target %d: %w", targets[r.idx], r.err))
			s.log.Warn(ctx, "recommendation run failed",
				logger.Int("target", targets[r.idx]),
				logger.Error(r.err),
			)
			continue
		}
		recs[r.idx] = r.rec
	}

	out := make([]*model.StaffRecommendation, 0, len(targets))
	for _, rec := range recs {
		if rec != nil {
			out = append(out, rec)
		}
	}
	return out, errors.Join(errs...)
}
