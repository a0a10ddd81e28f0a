// Package assembler ranks and greedily assigns candidates to the open
// positions of one target head coach's staff.
package assembler

import (
	"context"
	"fmt"
	"sort"

	mapset "github.com/deckarep/golang-set/v2"
	"github.com/google/uuid"

	"github.com/gridironlab/coachnet/internal/domain/graph"
	"github.com/gridironlab/coachnet/internal/domain/model"
	"github.com/gridironlab/coachnet/internal/domain/roles"
	"github.com/gridironlab/coachnet/internal/domain/scoring"
	"github.com/gridironlab/coachnet/pkg/logger"
	"github.com/gridironlab/coachnet/pkg/metrics"
)

// Default assembly bounds.
const (
	DefaultMaxDegree      = 2
	DefaultTopPerPosition = 5
)

// Option applies a configuration option to the Assembler.
type Option func(*Assembler)

// WithMaxDegree bounds the candidate search distance from the target.
func WithMaxDegree(d int) Option {
	return func(a *Assembler) {
		if d > 0 {
			a.maxDegree = d
		}
	}
}

// WithTopPerPosition caps the recommendation list per open position.
func WithTopPerPosition(n int) Option {
	return func(a *Assembler) {
		if n > 0 {
			a.topN = n
		}
	}
}

// WithCatalog overrides the open-position catalog. Iteration order is the
// assignment order; the greedy pass is order-dependent.
func WithCatalog(catalog []model.RoleSide) Option {
	return func(a *Assembler) {
		if len(catalog) > 0 {
			a.catalog = catalog
		}
	}
}

// WithLogger sets a custom logger for the assembler.
func WithLogger(log logger.Logger) Option {
	return func(a *Assembler) {
		if log != nil {
			a.log = log
		}
	}
}

// Assembler builds staff recommendations against an immutable graph,
// closeness table, and scorer. Safe for concurrent use across targets.
type Assembler struct {
	graph  *graph.Graph
	table  *roles.Table
	mapper *roles.Mapper
	scorer *scoring.Scorer

	catalog   []model.RoleSide
	maxDegree int
	topN      int

	log logger.Logger
}

// New creates an Assembler. The default catalog is every (role, side)
// pair in the closeness table except Head Coach, in hierarchy order.
func New(g *graph.Graph, table *roles.Table, mapper *roles.Mapper, scorer *scoring.Scorer, opts ...Option) *Assembler {
	a := &Assembler{
		graph:     g,
		table:     table,
		mapper:    mapper,
		scorer:    scorer,
		catalog:   table.Positions(),
		maxDegree: DefaultMaxDegree,
		topN:      DefaultTopPerPosition,
		log:       logger.Named("assembler"),
	}
	for _, opt := range opts {
		opt(a)
	}
	return a
}

// Assemble runs the greedy multi-position assignment for one target head
// coach. A target absent from the graph is a fatal precondition failure;
// a position with no eligible candidate is skipped, not an error; a
// target with zero reachable candidates yields an empty recommendation
// set.
//
// Ties on connection score break toward the lower coach id, fixed so that
// identical inputs always produce identical assignments.
func (a *Assembler) Assemble(ctx context.Context, targetID int) (*model.StaffRecommendation, error) {
	target, ok := a.graph.Coach(targetID)
	if !ok {
		return nil, fmt.Errorf("target coach %d: %w", targetID, ErrTargetNotInGraph)
	}

	rec := &model.StaffRecommendation{
		RunID:      uuid.NewString(),
		TargetID:   target.ID,
		TargetName: target.Name,
	}

	pool := a.graph.WithinK(targetID, a.maxDegree)
	if len(pool) == 0 {
		a.log.Warn(ctx, "no reachable candidates for target",
			logger.Int("target", targetID),
			logger.Int("max_degree", a.maxDegree),
		)
		return rec, nil
	}

	assigned := mapset.NewThreadUnsafeSet[int]()

	for _, position := range a.catalog {
		candidates := a.scorePosition(targetID, position, pool, assigned)
		if len(candidates) == 0 {
			metrics.RecordPositionUnfilled()
			continue
		}

		sort.Slice(candidates, func(i, j int) bool {
			if candidates[i].ConnectionScore != candidates[j].ConnectionScore {
				return candidates[i].ConnectionScore > candidates[j].ConnectionScore
			}
			return candidates[i].CoachID < candidates[j].CoachID
		})

		candidates[0].Assigned = true
		assigned.Add(candidates[0].CoachID)
		metrics.RecordPositionFilled()

		if len(candidates) > a.topN {
			candidates = candidates[:a.topN]
		}
		rec.Positions = append(rec.Positions, model.PositionRecommendation{
			Position:   position,
			Candidates: candidates,
		})
	}

	a.log.Debug(ctx, "staff assembled",
		logger.String("run_id", rec.RunID),
		logger.Int("target", targetID),
		logger.Int("positions_filled", len(rec.Positions)),
		logger.Int("positions_open", len(a.catalog)),
	)

	return rec, nil
}

// scorePosition filters the pool to coaches whose current role promotes
// to the position, excluding coaches already assigned earlier in this
// run, and scores the rest against the target.
func (a *Assembler) scorePosition(targetID int, position model.RoleSide, pool []graph.Neighbor, assigned mapset.Set[int]) []model.Candidate {
	var out []model.Candidate
	for _, nb := range pool {
		if assigned.Contains(nb.ID) {
			continue
		}
		coach, ok := a.graph.Coach(nb.ID)
		if !ok {
			continue
		}
		current := model.RoleSide{Role: coach.Role, Side: coach.Side}
		if !a.mapper.Maps(current, position) {
			continue
		}

		// Tenure is with the target head coach specifically, not the
		// candidate's aggregate tenure with anyone.
		years := 0
		if e, ok := a.graph.Edge(targetID, nb.ID); ok {
			years = e.YearsTogether
		}

		score := a.scorer.Score(coach.Value, years, nb.Degree)
		metrics.RecordCandidateScored()

		out = append(out, model.Candidate{
			CoachID:         coach.ID,
			Name:            coach.Name,
			CurrentRole:     coach.Role,
			CurrentSide:     coach.Side,
			TargetPosition:  position.Role,
			TargetSide:      position.Side,
			Degree:          nb.Degree,
			YearsTogether:   years,
			Value:           coach.Value,
			ConnectionScore: score,
		})
	}
	return out
}

// Catalog returns the open-position catalog in assignment order.
func (a *Assembler) Catalog() []model.RoleSide {
	out := make([]model.RoleSide, len(a.catalog))
	copy(out, a.catalog)
	return out
}
