// Package performance abstracts the precomputed performance composites
// (wins-over-expected, EPA-over-expected, WAR-over-expected) behind one
// lookup capability with a uniform first-match coalesce policy.
package performance

import (
	"github.com/gridironlab/coachnet/internal/domain/model"
)

// Query identifies one performance composite cell.
type Query struct {
	Season      int
	Team        string
	Role        model.Role
	Side        model.Side
	Subcategory string
}

// Source is one composite type's lookup capability.
type Source interface {
	// Name identifies the composite, e.g. "wins_oe", "epa_oe", "war_oe".
	Name() string

	// Lookup returns the composite value for the query, if present.
	Lookup(q Query) (float64, bool)
}

// MapSource is an in-memory Source fed from a parsed composite table.
type MapSource struct {
	name   string
	values map[Query]float64
}

// NewMapSource creates a map-backed source.
func NewMapSource(name string, values map[Query]float64) *MapSource {
	if values == nil {
		values = make(map[Query]float64)
	}
	return &MapSource{name: name, values: values}
}

// Name identifies the composite.
func (s *MapSource) Name() string { return s.name }

// Lookup returns the value for the query, if present.
func (s *MapSource) Lookup(q Query) (float64, bool) {
	v, ok := s.values[q]
	return v, ok
}

// Set stores one cell; used while loading composite tables.
func (s *MapSource) Set(q Query, v float64) { s.values[q] = v }

// Coalesce chains sources with a first-match policy, replacing the
// hand-written join chains that attached each composite table separately.
type Coalesce struct {
	sources []Source
}

// NewCoalesce creates a coalescing lookup over sources in priority order.
func NewCoalesce(sources ...Source) *Coalesce {
	return &Coalesce{sources: sources}
}

// Lookup asks each source in order for the exact query, then once more
// with the subcategory cleared, and returns the first hit. A full miss is
// an absent PerfValue, never an error.
func (c *Coalesce) Lookup(q Query) model.PerfValue {
	for _, s := range c.sources {
		if v, ok := s.Lookup(q); ok {
			return model.SomeValue(v)
		}
	}
	if q.Subcategory != "" {
		q.Subcategory = ""
		for _, s := range c.sources {
			if v, ok := s.Lookup(q); ok {
				return model.SomeValue(v)
			}
		}
	}
	return model.PerfValue{}
}

// Annotate fills missing performance values on staff records from the
// coalesce chain. Values already present are kept.
func (c *Coalesce) Annotate(records []model.StaffRecord) {
	for i := range records {
		if records[i].Value.Valid {
			continue
		}
		records[i].Value = c.Lookup(Query{
			Season: records[i].Year,
			Team:   records[i].Team,
			Role:   records[i].Role,
			Side:   records[i].Side,
		})
	}
}
