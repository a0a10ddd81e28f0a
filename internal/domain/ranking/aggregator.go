// Package ranking aggregates staff recommendations across many target
// head coaches into summaries, cross-coach rankings, and the
// position-by-coach score matrix.
package ranking

import (
	"context"
	"sort"

	"github.com/gridironlab/coachnet/internal/domain/model"
	"github.com/gridironlab/coachnet/pkg/logger"
)

const top3Window = 3

// Option applies a configuration option to the Aggregator.
type Option func(*Aggregator)

// WithLogger sets a custom logger for the aggregator.
func WithLogger(log logger.Logger) Option {
	return func(a *Aggregator) {
		if log != nil {
			a.log = log
		}
	}
}

// Aggregator ingests staff recommendation sets, one per target head
// coach, and produces comparative outputs. Not safe for concurrent Add;
// the pipeline aggregates after all runs complete.
type Aggregator struct {
	catalog []model.RoleSide
	recs    []*model.StaffRecommendation
	log     logger.Logger
}

// NewAggregator creates an aggregator over the open-position catalog the
// recommendations were assembled against.
func NewAggregator(catalog []model.RoleSide, opts ...Option) *Aggregator {
	a := &Aggregator{
		catalog: catalog,
		log:     logger.Named("ranking"),
	}
	for _, opt := range opts {
		opt(a)
	}
	return a
}

// Add ingests one target head coach's recommendation set.
func (a *Aggregator) Add(rec *model.StaffRecommendation) {
	if rec != nil {
		a.recs = append(a.recs, rec)
	}
}

// Len returns the number of ingested recommendation sets.
func (a *Aggregator) Len() int { return len(a.recs) }

// Summarize computes the aggregate statistics over one recommendation's
// top-per-position candidates.
func (a *Aggregator) Summarize(rec *model.StaffRecommendation) model.StaffSummary {
	s := model.StaffSummary{
		TargetID:      rec.TargetID,
		TargetName:    rec.TargetName,
		PositionsOpen: len(a.catalog),
	}

	top := rec.Top()
	s.PositionsFilled = len(top)
	if len(top) == 0 {
		return s
	}

	scores := make([]float64, 0, len(top))
	degreeOne := 0
	var coordSum float64
	coordCount := 0
	var yearSum int
	for _, c := range top {
		scores = append(scores, c.ConnectionScore)
		yearSum += c.YearsTogether
		if c.Degree == 1 {
			degreeOne++
		}
		if c.TargetPosition == model.RoleCoordinator {
			coordSum += c.ConnectionScore
			coordCount++
		}
	}

	s.AvgScore = mean(scores)
	s.MedianScore = median(scores)
	s.PctDegreeOne = float64(degreeOne) / float64(len(top)) * 100
	s.AvgYearsTogether = float64(yearSum) / float64(len(top))
	s.TotalExperience = yearSum
	if coordCount > 0 {
		s.CoordinatorAvg = coordSum / float64(coordCount)
	}

	sorted := make([]float64, len(scores))
	copy(sorted, scores)
	sort.Sort(sort.Reverse(sort.Float64Slice(sorted)))
	if len(sorted) > top3Window {
		sorted = sorted[:top3Window]
	}
	s.Top3Avg = mean(sorted)

	return s
}

// Ranking returns one summary per ingested target, ranked by average
// connection score, then coordinator average, then total experience,
// then coach id. Rank is 1-based.
func (a *Aggregator) Ranking(ctx context.Context) []model.StaffSummary {
	out := make([]model.StaffSummary, 0, len(a.recs))
	for _, rec := range a.recs {
		out = append(out, a.Summarize(rec))
	}

	sort.Slice(out, func(i, j int) bool {
		if out[i].AvgScore != out[j].AvgScore {
			return out[i].AvgScore > out[j].AvgScore
		}
		if out[i].CoordinatorAvg != out[j].CoordinatorAvg {
			return out[i].CoordinatorAvg > out[j].CoordinatorAvg
		}
		if out[i].TotalExperience != out[j].TotalExperience {
			return out[i].TotalExperience > out[j].TotalExperience
		}
		return out[i].TargetID < out[j].TargetID
	})
	for i := range out {
		out[i].Rank = i + 1
	}

	a.log.Info(ctx, "cross-coach ranking computed", logger.Int("targets", len(out)))

	return out
}

func mean(xs []float64) float64 {
	if len(xs) == 0 {
		return 0
	}
	var sum float64
	for _, x := range xs {
		sum += x
	}
	return sum / float64(len(xs))
}

func median(xs []float64) float64 {
	if len(xs) == 0 {
		return 0
	}
	sorted := make([]float64, len(xs))
	copy(sorted, xs)
	sort.Float64s(sorted)
	mid := len(sorted) / 2
	if len(sorted)%2 == 1 {
		return sorted[mid]
	}
	return (sorted[mid-1] + sorted[mid]) / 2
}
