// Package csvio loads the tabular inputs (staff history, closeness
// table, performance composites) and writes the tabular outputs. All
// interchange is batch CSV; there is no wire protocol.
package csvio

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/gocarina/gocsv"

	"github.com/gridironlab/coachnet/internal/adapters/performance"
	"github.com/gridironlab/coachnet/internal/domain/model"
	"github.com/gridironlab/coachnet/internal/domain/roles"
	"github.com/gridironlab/coachnet/pkg/logger"
	"github.com/gridironlab/coachnet/pkg/metrics"
)

// staffRow mirrors one line of a staff history CSV.
type staffRow struct {
	Year    int      `csv:"year"`
	Team    string   `csv:"team"`
	CoachID int      `csv:"coach_id"`
	Name    string   `csv:"coach"`
	Role    string   `csv:"role_category"`
	Side    string   `csv:"side_of_ball"`
	Value   *float64 `csv:"performance_value,omitempty"`
}

// closenessRow mirrors one line of the closeness table CSV.
type closenessRow struct {
	RoleFrom  string  `csv:"role_from"`
	SideFrom  string  `csv:"side_from"`
	RoleTo    string  `csv:"role_to"`
	SideTo    string  `csv:"side_to"`
	Closeness float64 `csv:"closeness"`
	Hierarchy int     `csv:"hierarchy_rank"`
}

// compositeRow mirrors one line of a performance composite CSV.
type compositeRow struct {
	Season      int     `csv:"season"`
	Team        string  `csv:"team"`
	Role        string  `csv:"role_category"`
	Side        string  `csv:"side_of_ball"`
	Subcategory string  `csv:"subcategory"`
	Value       float64 `csv:"value"`
}

// Option applies a configuration option to the Loader.
type Option func(*Loader)

// WithLogger sets a custom logger for the loader.
func WithLogger(log logger.Logger) Option {
	return func(l *Loader) {
		if log != nil {
			l.log = log
		}
	}
}

// Loader reads the batch inputs. Per-file failures are logged and
// skipped so one bad file never aborts unrelated files.
type Loader struct {
	log logger.Logger
}

// NewLoader creates a CSV loader.
func NewLoader(opts ...Option) *Loader {
	l := &Loader{log: logger.Named("csvio")}
	for _, opt := range opts {
		opt(l)
	}
	return l
}

// StaffRecords loads and combines staff history files. Rows duplicated
// across files for the same (year, team, coach, role, side) are collapsed
// keeping the most complete one: a recorded performance value wins, then
// a non-empty name. Returns ErrNoInputFiles when every file failed.
func (l *Loader) StaffRecords(ctx context.Context, paths []string) ([]model.StaffRecord, error) {
	type rowKey struct {
		year    int
		team    string
		coachID int
		role    model.Role
		side    model.Side
	}

	byKey := make(map[rowKey]model.StaffRecord)
	var order []rowKey
	loaded := 0

	for _, path := range paths {
		rows, err := readRows[staffRow](path)
		if err != nil {
			l.log.Warn(ctx, "skipping staff file",
				logger.String("path", path),
				logger.Error(err),
			)
			metrics.RecordFileSkipped()
			continue
		}
		loaded++
		metrics.RecordFileIngested()
		metrics.RecordRecordsIngested(len(rows))

		for _, r := range rows {
			rec := model.StaffRecord{
				Year:    r.Year,
				Team:    r.Team,
				CoachID: r.CoachID,
				Name:    r.Name,
				Role:    parseRole(r.Role),
				Side:    parseSide(r.Side),
			}
			if r.Value != nil {
				rec.Value = model.SomeValue(*r.Value)
			}

			k := rowKey{year: rec.Year, team: rec.Team, coachID: rec.CoachID, role: rec.Role, side: rec.Side}
			prev, seen := byKey[k]
			if !seen {
				byKey[k] = rec
				order = append(order, k)
				continue
			}
			if moreComplete(rec, prev) {
				byKey[k] = rec
			}
		}
	}

	if loaded == 0 && len(paths) > 0 {
		return nil, fmt.Errorf("%w: %d path(s) given", ErrNoInputFiles, len(paths))
	}

	out := make([]model.StaffRecord, 0, len(order))
	for _, k := range order {
		out = append(out, byKey[k])
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Year != out[j].Year {
			return out[i].Year < out[j].Year
		}
		if out[i].Team != out[j].Team {
			return out[i].Team < out[j].Team
		}
		return out[i].CoachID < out[j].CoachID
	})

	l.log.Info(ctx, "staff records loaded",
		logger.Int("files", loaded),
		logger.Int("records", len(out)),
	)

	return out, nil
}

// moreComplete prefers a row with a recorded value, then a non-empty name.
func moreComplete(candidate, current model.StaffRecord) bool {
	if candidate.Value.Valid != current.Value.Valid {
		return candidate.Value.Valid
	}
	return candidate.Name != "" && current.Name == ""
}

// ClosenessTable loads the role closeness CSV, falling back to the
// built-in table when no path is configured.
func (l *Loader) ClosenessTable(ctx context.Context, path string) (*roles.Table, error) {
	if path == "" {
		l.log.Info(ctx, "using built-in closeness table")
		return roles.DefaultTable(), nil
	}

	rows, err := readRows[closenessRow](path)
	if err != nil {
		return nil, fmt.Errorf("closeness table %s: %w", path, err)
	}

	entries := make([]roles.Entry, 0, len(rows))
	for _, r := range rows {
		entries = append(entries, roles.Entry{
			From:      model.RoleSide{Role: parseRole(r.RoleFrom), Side: parseSide(r.SideFrom)},
			To:        model.RoleSide{Role: parseRole(r.RoleTo), Side: parseSide(r.SideTo)},
			Closeness: r.Closeness,
			Hierarchy: r.Hierarchy,
		})
	}

	l.log.Info(ctx, "closeness table loaded",
		logger.String("path", path),
		logger.Int("entries", len(entries)),
	)

	return roles.NewTable(entries), nil
}

// PerformanceSources loads composite files into a coalesce chain in the
// given priority order. Files that fail to parse are skipped.
func (l *Loader) PerformanceSources(ctx context.Context, paths []string) *performance.Coalesce {
	var sources []performance.Source
	for _, path := range paths {
		rows, err := readRows[compositeRow](path)
		if err != nil {
			l.log.Warn(ctx, "skipping composite file",
				logger.String("path", path),
				logger.Error(err),
			)
			metrics.RecordFileSkipped()
			continue
		}
		metrics.RecordFileIngested()

		name := strings.TrimSuffix(filepath.Base(path), filepath.Ext(path))
		src := performance.NewMapSource(name, nil)
		for _, r := range rows {
			src.Set(performance.Query{
				Season:      r.Season,
				Team:        r.Team,
				Role:        parseRole(r.Role),
				Side:        parseSide(r.Side),
				Subcategory: r.Subcategory,
			}, r.Value)
		}
		sources = append(sources, src)
	}
	return performance.NewCoalesce(sources...)
}

// readRows opens and unmarshals one CSV file into typed rows.
func readRows[T any](path string) ([]T, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	var rows []T
	if err := gocsv.UnmarshalFile(f, &rows); err != nil {
		return nil, err
	}
	return rows, nil
}

// parseRole normalizes a raw role category string. Unknown categories
// pass through so the closeness fallback can handle them.
func parseRole(s string) model.Role {
	switch strings.TrimSpace(s) {
	case string(model.RoleHeadCoach):
		return model.RoleHeadCoach
	case string(model.RoleCoordinator):
		return model.RoleCoordinator
	case string(model.RolePositionCoach), "Position Coach - Offense", "Position Coach - Defense":
		return model.RolePositionCoach
	case string(model.RoleSpecialistCoach):
		return model.RoleSpecialistCoach
	default:
		return model.Role(strings.TrimSpace(s))
	}
}

// parseSide normalizes a raw side-of-ball string.
func parseSide(s string) model.Side {
	switch strings.TrimSpace(s) {
	case string(model.SideOffense):
		return model.SideOffense
	case string(model.SideDefense):
		return model.SideDefense
	case string(model.SideSpecialTeams), "ST":
		return model.SideSpecialTeams
	case string(model.SideBoth):
		return model.SideBoth
	default:
		return model.Side(strings.TrimSpace(s))
	}
}
