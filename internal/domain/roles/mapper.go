package roles

import (
	"sort"

	"github.com/gridironlab/coachnet/internal/domain/model"
)

// DefaultPromotionStep bounds how far up the closeness scale a coach can
// move in one hiring cycle.
const DefaultPromotionStep = 0.4

// MapperOption applies a configuration option to the Mapper.
type MapperOption func(*Mapper)

// WithStep sets the promotion step bound.
func WithStep(step float64) MapperOption {
	return func(m *Mapper) {
		if step >= 0 {
			m.step = step
		}
	}
}

// Mapper resolves a coach's current (role, side) to the set of positions
// they can plausibly step into.
type Mapper struct {
	table *Table
	step  float64
}

// NewMapper creates a promotion mapper over the given closeness table.
func NewMapper(table *Table, opts ...MapperOption) *Mapper {
	m := &Mapper{
		table: table,
		step:  DefaultPromotionStep,
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// Targets returns every (role, side) whose closeness lies within
// [current, current + step] of the coach's current level, subject to the
// side rule. An unknown current pair maps to itself; this never fails.
func (m *Mapper) Targets(current model.RoleSide) []model.RoleSide {
	cur, ok := m.table.Weight(current)
	if !ok {
		return []model.RoleSide{current}
	}

	var out []model.RoleSide
	for key, e := range m.table.entries {
		if key.from != current {
			continue
		}
		if key.to == current {
			// The identity step is always reachable; handled below to
			// avoid duplicates.
			continue
		}
		if e.Closeness < cur || e.Closeness > cur+m.step {
			continue
		}
		if !sideEligible(current.Side, key.to.Side) {
			continue
		}
		out = append(out, key.to)
	}
	out = append(out, current)

	sort.Slice(out, func(i, j int) bool {
		ri, rj := m.table.Rank(out[i]), m.table.Rank(out[j])
		if ri != rj {
			return ri < rj
		}
		if out[i].Role != out[j].Role {
			return out[i].Role < out[j].Role
		}
		return sideOrder(out[i].Side) < sideOrder(out[j].Side)
	})
	return out
}

// Maps reports whether current promotion-maps to target.
func (m *Mapper) Maps(current, target model.RoleSide) bool {
	for _, t := range m.Targets(current) {
		if t == target {
			return true
		}
	}
	return false
}

// sideEligible applies the side rule: a coach on Both can cross sides;
// everyone else may only target their own side or Both.
func sideEligible(current, target model.Side) bool {
	if current == model.SideBoth {
		return true
	}
	return target == current || target == model.SideBoth
}
