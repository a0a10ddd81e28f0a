package csvio

import (
	"context"
	"encoding/csv"
	"fmt"
	"os"
	"path/filepath"
	"strconv"

	"github.com/gocarina/gocsv"

	"github.com/gridironlab/coachnet/internal/domain/model"
	"github.com/gridironlab/coachnet/internal/domain/ranking"
	"github.com/gridironlab/coachnet/pkg/logger"
)

// candidateRow is one output line of the per-target recommendation table.
type candidateRow struct {
	TargetID        int      `csv:"target_coach_id"`
	TargetName      string   `csv:"target_coach"`
	RunID           string   `csv:"run_id"`
	CoachID         int      `csv:"coach_id"`
	Name            string   `csv:"candidate_name"`
	CurrentRole     string   `csv:"current_role"`
	CurrentSide     string   `csv:"current_side"`
	TargetPosition  string   `csv:"target_position"`
	TargetSide      string   `csv:"target_side"`
	Degree          int      `csv:"degree"`
	YearsTogether   int      `csv:"years_together"`
	CoachValue      *float64 `csv:"coach_value"`
	ConnectionScore float64  `csv:"connection_score"`
	Assigned        bool     `csv:"assigned"`
}

// summaryRow is one output line of the cross-coach ranking table.
type summaryRow struct {
	Rank             int     `csv:"rank"`
	TargetID         int     `csv:"coach_id"`
	TargetName       string  `csv:"coach"`
	AvgScore         float64 `csv:"avg_connection_score"`
	MedianScore      float64 `csv:"median_connection_score"`
	PctDegreeOne     float64 `csv:"pct_degree_one"`
	AvgYearsTogether float64 `csv:"avg_years_together"`
	TotalExperience  int     `csv:"total_experience"`
	CoordinatorAvg   float64 `csv:"coordinator_avg_score"`
	Top3Avg          float64 `csv:"top3_avg_score"`
	PositionsFilled  int     `csv:"positions_filled"`
	PositionsOpen    int     `csv:"positions_open"`
}

// clusterRow is one output line of the cluster assignment table.
type clusterRow struct {
	CoachID       int     `csv:"coach_id"`
	Name          string  `csv:"coach"`
	PersonalValue float64 `csv:"personal_value"`
	StaffValue    float64 `csv:"staff_value"`
	Cluster       int     `csv:"cluster"`
}

// Writer emits the batch outputs under one directory.
type Writer struct {
	dir string
	log logger.Logger
}

// WriterOption applies a configuration option to the Writer.
type WriterOption func(*Writer)

// WithWriterLogger sets a custom logger for the writer.
func WithWriterLogger(log logger.Logger) WriterOption {
	return func(w *Writer) {
		if log != nil {
			w.log = log
		}
	}
}

// NewWriter creates a CSV writer rooted at dir.
func NewWriter(dir string, opts ...WriterOption) *Writer {
	w := &Writer{dir: dir, log: logger.Named("csvio")}
	for _, opt := range opts {
		opt(w)
	}
	return w
}

// Recommendations writes every target's ranked candidate lists to
// recommendations.csv.
func (w *Writer) Recommendations(ctx context.Context, recs []*model.StaffRecommendation) error {
	var rows []candidateRow
	for _, rec := range recs {
		for _, pr := range rec.Positions {
			for _, c := range pr.Candidates {
				row := candidateRow{
					TargetID:        rec.TargetID,
					TargetName:      rec.TargetName,
					RunID:           rec.RunID,
					CoachID:         c.CoachID,
					Name:            c.Name,
					CurrentRole:     string(c.CurrentRole),
					CurrentSide:     string(c.CurrentSide),
					TargetPosition:  string(c.TargetPosition),
					TargetSide:      string(c.TargetSide),
					Degree:          c.Degree,
					YearsTogether:   c.YearsTogether,
					ConnectionScore: c.ConnectionScore,
					Assigned:        c.Assigned,
				}
				if c.Value.Valid {
					v := c.Value.Value
					row.CoachValue = &v
				}
				rows = append(rows, row)
			}
		}
	}
	return w.writeCSV(ctx, "recommendations.csv", &rows)
}

// Ranking writes the cross-coach ranking table to ranking.csv.
func (w *Writer) Ranking(ctx context.Context, summaries []model.StaffSummary) error {
	rows := make([]summaryRow, 0, len(summaries))
	for _, s := range summaries {
		rows = append(rows, summaryRow{
			Rank:             s.Rank,
			TargetID:         s.TargetID,
			TargetName:       s.TargetName,
			AvgScore:         s.AvgScore,
			MedianScore:      s.MedianScore,
			PctDegreeOne:     s.PctDegreeOne,
			AvgYearsTogether: s.AvgYearsTogether,
			TotalExperience:  s.TotalExperience,
			CoordinatorAvg:   s.CoordinatorAvg,
			Top3Avg:          s.Top3Avg,
			PositionsFilled:  s.PositionsFilled,
			PositionsOpen:    s.PositionsOpen,
		})
	}
	return w.writeCSV(ctx, "ranking.csv", &rows)
}

// Clusters writes the cluster assignments to clusters.csv.
func (w *Writer) Clusters(ctx context.Context, assignments []model.ClusterAssignment) error {
	rows := make([]clusterRow, 0, len(assignments))
	for _, a := range assignments {
		rows = append(rows, clusterRow{
			CoachID:       a.CoachID,
			Name:          a.Name,
			PersonalValue: a.PersonalValue,
			StaffValue:    a.StaffValue,
			Cluster:       a.Cluster,
		})
	}
	return w.writeCSV(ctx, "clusters.csv", &rows)
}

// Matrix writes the position-by-coach pivot to position_matrix.csv. The
// column set is dynamic (one per target), so this goes through
// encoding/csv directly instead of a tagged struct.
func (w *Writer) Matrix(ctx context.Context, m *ranking.Matrix) error {
	if err := os.MkdirAll(w.dir, 0o755); err != nil {
		return err
	}
	path := filepath.Join(w.dir, "position_matrix.csv")
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()

	cw := csv.NewWriter(f)
	header := []string{"position", "side"}
	for i := range m.TargetIDs {
		header = append(header, fmt.Sprintf("%s (%d)", m.Names[i], m.TargetIDs[i]))
	}
	if err := cw.Write(header); err != nil {
		return err
	}
	for row, pos := range m.Positions {
		line := []string{string(pos.Role), string(pos.Side)}
		for col := range m.TargetIDs {
			line = append(line, strconv.FormatFloat(m.Scores[row][col], 'f', -1, 64))
		}
		if err := cw.Write(line); err != nil {
			return err
		}
	}
	cw.Flush()
	if err := cw.Error(); err != nil {
		return err
	}

	w.log.Info(ctx, "output written", logger.String("path", path))
	return nil
}

// writeCSV marshals tagged rows to a file under the output directory.
func (w *Writer) writeCSV(ctx context.Context, name string, rows interface{}) error {
	if err := os.MkdirAll(w.dir, 0o755); err != nil {
		return err
	}
	path := filepath.Join(w.dir, name)
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()

	if err := gocsv.MarshalFile(rows, f); err != nil {
		return fmt.Errorf("write %s: %w", path, err)
	}

	w.log.Info(ctx, "output written", logger.String("path", path))
	return nil
}
