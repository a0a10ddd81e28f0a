// Package relationship derives the co-staff relationship table: one row
// per unordered coach pair that ever shared a team in a season.
package relationship

import (
	"context"
	"sort"

	mapset "github.com/deckarep/golang-set/v2"

	"github.com/gridironlab/coachnet/internal/domain/model"
	"github.com/gridironlab/coachnet/pkg/logger"
)

// pair is a canonically ordered coach id pair, low id first.
type pair struct {
	a, b int
}

func makePair(x, y int) pair {
	if x < y {
		return pair{a: x, b: y}
	}
	return pair{a: y, b: x}
}

type rosterKey struct {
	team string
	year int
}

// valueAcc accumulates one endpoint's performance values over the rows
// that co-occur with the other endpoint.
type valueAcc struct {
	sum   float64
	count int
}

func (v *valueAcc) add(pv model.PerfValue) {
	if pv.Valid {
		v.sum += pv.Value
		v.count++
	}
}

func (v *valueAcc) mean() model.PerfValue {
	if v.count == 0 {
		return model.PerfValue{}
	}
	return model.SomeValue(v.sum / float64(v.count))
}

// Result is the relationship table plus the deduplicated coach roster.
type Result struct {
	Coaches []model.Coach
	Edges   []model.RelationshipEdge
}

// Option applies a configuration option to the Builder.
type Option func(*Builder)

// WithLogger sets a custom logger for the builder.
func WithLogger(log logger.Logger) Option {
	return func(b *Builder) {
		if log != nil {
			b.log = log
		}
	}
}

// Builder aggregates staff records into coaches and relationship edges.
type Builder struct {
	log logger.Logger
}

// NewBuilder creates a relationship table builder.
func NewBuilder(opts ...Option) *Builder {
	b := &Builder{log: logger.Named("relationship")}
	for _, opt := range opts {
		opt(b)
	}
	return b
}

// Build derives one Coach per unique id and one edge per unordered pair
// sharing a (team, year). Tenure accumulates across franchise moves and
// counts each season once regardless of role overlap. Returns ErrNoRecords
// on empty input.
func (b *Builder) Build(ctx context.Context, records []model.StaffRecord) (*Result, error) {
	if len(records) == 0 {
		return nil, ErrNoRecords
	}

	coaches := dedupeCoaches(records)

	rosters := make(map[rosterKey][]model.StaffRecord)
	for _, r := range records {
		k := rosterKey{team: r.Team, year: r.Year}
		rosters[k] = append(rosters[k], r)
	}

	years := make(map[pair]mapset.Set[int])
	accs := make(map[pair]*[2]valueAcc)

	for k, roster := range rosters {
		for i := range roster {
			for j := range roster {
				if i == j {
					continue
				}
				src, dst := roster[i], roster[j]
				if src.CoachID == dst.CoachID {
					// Same coach holding two roles on one staff; not a pair.
					continue
				}
				if src.CoachID > dst.CoachID {
					// Each unordered pair is visited once, low id driving.
					continue
				}
				p := makePair(src.CoachID, dst.CoachID)
				ys, ok := years[p]
				if !ok {
					ys = mapset.NewThreadUnsafeSet[int]()
					years[p] = ys
					accs[p] = &[2]valueAcc{}
				}
				ys.Add(k.year)
				accs[p][0].add(src.Value)
				accs[p][1].add(dst.Value)
			}
		}
	}

	edges := make([]model.RelationshipEdge, 0, len(years))
	for p, ys := range years {
		acc := accs[p]
		edges = append(edges, model.RelationshipEdge{
			CoachID1:      p.a,
			CoachID2:      p.b,
			YearsTogether: ys.Cardinality(),
			Value1:        acc[0].mean(),
			Value2:        acc[1].mean(),
		})
	}
	sort.Slice(edges, func(i, j int) bool {
		if edges[i].CoachID1 != edges[j].CoachID1 {
			return edges[i].CoachID1 < edges[j].CoachID1
		}
		return edges[i].CoachID2 < edges[j].CoachID2
	})

	b.log.Info(ctx, "relationship table built",
		logger.Int("coaches", len(coaches)),
		logger.Int("pairs", len(edges)),
	)

	return &Result{Coaches: coaches, Edges: edges}, nil
}

// dedupeCoaches collapses records into one Coach per id carrying the
// most-recent role, side, team, and performance value.
func dedupeCoaches(records []model.StaffRecord) []model.Coach {
	sorted := make([]model.StaffRecord, len(records))
	copy(sorted, records)
	sort.Slice(sorted, func(i, j int) bool {
		if sorted[i].Year != sorted[j].Year {
			return sorted[i].Year < sorted[j].Year
		}
		if sorted[i].Team != sorted[j].Team {
			return sorted[i].Team < sorted[j].Team
		}
		if sorted[i].Role != sorted[j].Role {
			return sorted[i].Role < sorted[j].Role
		}
		return sorted[i].Side < sorted[j].Side
	})

	byID := make(map[int]model.Coach)
	for _, r := range sorted {
		c := model.Coach{
			ID:       r.CoachID,
			Name:     r.Name,
			Role:     r.Role,
			Side:     r.Side,
			LastTeam: r.Team,
			LastYear: r.Year,
			Value:    r.Value,
		}
		prev, ok := byID[r.CoachID]
		if ok && !r.Value.Valid && prev.Value.Valid && prev.LastYear == r.Year {
			// Keep a known value over a missing one within the same season.
			c.Value = prev.Value
		}
		byID[r.CoachID] = c
	}

	out := make([]model.Coach, 0, len(byID))
	for _, c := range byID {
		out = append(out, c)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out
}
