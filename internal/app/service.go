// Package app wires the pipeline stages into one batch service: ingest,
// relationship table, co-staff graph, staff assembly, aggregation, and
// clustering.
package app

import (
	"context"
	"runtime"
	"time"

	"github.com/gridironlab/coachnet/internal/adapters/csvio"
	"github.com/gridironlab/coachnet/internal/adapters/performance"
	"github.com/gridironlab/coachnet/internal/domain/assembler"
	"github.com/gridironlab/coachnet/internal/domain/cluster"
	"github.com/gridironlab/coachnet/internal/domain/graph"
	"github.com/gridironlab/coachnet/internal/domain/model"
	"github.com/gridironlab/coachnet/internal/domain/ranking"
	"github.com/gridironlab/coachnet/internal/domain/relationship"
	"github.com/gridironlab/coachnet/internal/domain/roles"
	"github.com/gridironlab/coachnet/internal/domain/scoring"
	"github.com/gridironlab/coachnet/pkg/logger"
	"github.com/gridironlab/coachnet/pkg/metrics"
)

// Service runs the staff recommendation pipeline. After Build the graph
// and closeness table are immutable, so per-target recommendation runs
// share them freely across goroutines.
type Service struct {
	// Inputs
	staffFiles       []string
	closenessFile    string
	performanceFiles []string

	// Tunables
	recencyCutoff  int
	maxDegree      int
	promotionStep  float64
	topPerPosition int
	clusterCount   int
	workerCount    int

	// Built state
	table  *roles.Table
	mapper *roles.Mapper
	scorer *scoring.Scorer
	graph  *graph.Graph
	asm    *assembler.Assembler
	built  bool

	log logger.Logger
}

// Option applies a configuration option to the Service.
type Option func(*Service)

// WithStaffFiles sets the staff history CSV inputs.
func WithStaffFiles(paths []string) Option {
	return func(s *Service) { s.staffFiles = paths }
}

// WithClosenessFile sets the closeness table CSV; empty keeps the
// built-in table.
func WithClosenessFile(path string) Option {
	return func(s *Service) { s.closenessFile = path }
}

// WithPerformanceFiles sets the composite CSVs in coalesce priority order.
func WithPerformanceFiles(paths []string) Option {
	return func(s *Service) { s.performanceFiles = paths }
}

// WithRecencyCutoff keeps only coaches active in or after the year as
// graph nodes.
func WithRecencyCutoff(year int) Option {
	return func(s *Service) {
		if year > 0 {
			s.recencyCutoff = year
		}
	}
}

// WithMaxDegree bounds candidate search distance.
func WithMaxDegree(d int) Option {
	return func(s *Service) {
		if d > 0 {
			s.maxDegree = d
		}
	}
}

// WithPromotionStep bounds the closeness delta per promotion.
func WithPromotionStep(step float64) Option {
	return func(s *Service) {
		if step > 0 {
			s.promotionStep = step
		}
	}
}

// WithTopPerPosition caps the per-position recommendation list.
func WithTopPerPosition(n int) Option {
	return func(s *Service) {
		if n > 0 {
			s.topPerPosition = n
		}
	}
}

// WithClusterCount sets k for candidate clustering.
func WithClusterCount(k int) Option {
	return func(s *Service) {
		if k > 0 {
			s.clusterCount = k
		}
	}
}

// WithWorkerCount bounds parallel per-target runs.
func WithWorkerCount(n int) Option {
	return func(s *Service) {
		if n > 0 {
			s.workerCount = n
		}
	}
}

// WithLogger sets a custom logger for the service.
func WithLogger(log logger.Logger) Option {
	return func(s *Service) {
		if log != nil {
			s.log = log
		}
	}
}

// New constructs a Service with defaults.
func New(opts ...Option) *Service {
	s := &Service{
		maxDegree:      assembler.DefaultMaxDegree,
		promotionStep:  roles.DefaultPromotionStep,
		topPerPosition: assembler.DefaultTopPerPosition,
		clusterCount:   cluster.DefaultK,
		workerCount:    runtime.NumCPU(),
		log:            nil, // resolved in Build
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Build loads inputs and constructs the immutable graph, closeness
// table, and assembler. Must be called once before any recommendation.
func (s *Service) Build(ctx context.Context) error {
	if s.log == nil {
		s.log = logger.Named("app")
	}

	start := time.Now()
	loader := csvio.NewLoader()

	records, err := loader.StaffRecords(ctx, s.staffFiles)
	if err != nil {
		return err
	}

	var coalesce *performance.Coalesce
	if len(s.performanceFiles) > 0 {
		coalesce = loader.PerformanceSources(ctx, s.performanceFiles)
		coalesce.Annotate(records)
	}

	table, err := loader.ClosenessTable(ctx, s.closenessFile)
	if err != nil {
		return err
	}
	s.table = table
	metrics.ObserveStageDuration("ingest", time.Since(start).Seconds())

	start = time.Now()
	rel, err := relationship.NewBuilder().Build(ctx, records)
	if err != nil {
		return err
	}
	metrics.ObserveStageDuration("relationships", time.Since(start).Seconds())

	start = time.Now()
	s.graph = graph.Build(rel.Coaches, rel.Edges, graph.WithRecencyCutoff(s.recencyCutoff))
	if s.graph.NodeCount() == 0 {
		return ErrEmptyGraph
	}
	metrics.UpdateGraphNodes(s.graph.NodeCount())
	metrics.UpdateGraphEdges(s.graph.EdgeCount())
	metrics.ObserveStageDuration("graph", time.Since(start).Seconds())

	s.mapper = roles.NewMapper(s.table, roles.WithStep(s.promotionStep))
	s.scorer = scoring.New()
	s.asm = assembler.New(s.graph, s.table, s.mapper, s.scorer,
		assembler.WithMaxDegree(s.maxDegree),
		assembler.WithTopPerPosition(s.topPerPosition),
	)
	s.built = true

	s.log.Info(ctx, "pipeline built",
		logger.Int("records", len(records)),
		logger.Int("graph_nodes", s.graph.NodeCount()),
		logger.Int("graph_edges", s.graph.EdgeCount()),
	)

	return nil
}

// Recommend runs the staff assembler for one target head coach.
func (s *Service) Recommend(ctx context.Context, targetID int) (*model.StaffRecommendation, error) {
	if !s.built {
		return nil, ErrNotBuilt
	}
	rec, err := s.asm.Assemble(ctx, targetID)
	if err != nil {
		metrics.RecordRunFailed()
		return nil, err
	}
	metrics.RecordRunCompleted()
	return rec, nil
}

// HeadCoachCandidates returns every graph node whose current (role,
// side) promotion-maps to Head Coach, ordered by id. These are the
// targets compared by the aggregation stage.
func (s *Service) HeadCoachCandidates() []int {
	if !s.built {
		return nil
	}
	hc := model.RoleSide{Role: model.RoleHeadCoach, Side: model.SideBoth}
	var out []int
	for _, c := range s.graph.Nodes() {
		if s.mapper.Maps(model.RoleSide{Role: c.Role, Side: c.Side}, hc) {
			out = append(out, c.ID)
		}
	}
	return out
}

// Aggregate summarizes many recommendation sets into the cross-coach
// ranking and the position-by-coach score matrix.
func (s *Service) Aggregate(ctx context.Context, recs []*model.StaffRecommendation) ([]model.StaffSummary, *ranking.Matrix) {
	agg := ranking.NewAggregator(s.asm.Catalog())
	for _, rec := range recs {
		agg.Add(rec)
	}
	return agg.Ranking(ctx), agg.Matrix()
}

// Cluster partitions target head coaches by personal composite value
// versus their recommended staff's average candidate value.
func (s *Service) Cluster(ctx context.Context, recs []*model.StaffRecommendation) []model.ClusterAssignment {
	agg := ranking.NewAggregator(s.asm.Catalog())
	points := make([]cluster.Point, 0, len(recs))
	for _, rec := range recs {
		coach, ok := s.graph.Coach(rec.TargetID)
		if !ok {
			continue
		}
		summary := agg.Summarize(rec)
		points = append(points, cluster.Point{
			CoachID:  coach.ID,
			Name:     coach.Name,
			Personal: s.scorer.PerformanceWeight(coach.Value),
			Staff:    summary.AvgScore,
		})
	}
	return cluster.New(cluster.WithK(s.clusterCount)).Partition(points)
}

// Graph exposes the built co-staff graph.
func (s *Service) Graph() *graph.Graph { return s.graph }

// Catalog exposes the open-position catalog in assignment order.
func (s *Service) Catalog() []model.RoleSide {
	if !s.built {
		return nil
	}
	return s.asm.Catalog()
}
