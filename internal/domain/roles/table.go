// Package roles holds the role closeness table and the promotion mapper
// that derives reachable next-step positions for a coach.
package roles

import (
	"sort"

	"github.com/gridironlab/coachnet/internal/domain/model"
)

// Entry is one directed closeness relation between two (role, side) pairs.
// Closeness is in [0, 1]; Hierarchy ranks the target position, 1 highest.
type Entry struct {
	From      model.RoleSide
	To        model.RoleSide
	Closeness float64
	Hierarchy int
}

type pairKey struct {
	from model.RoleSide
	to   model.RoleSide
}

// Table is an immutable closeness lookup. Any (role, side) observed in
// staff records must resolve here or fall back to the identity pair,
// never error.
type Table struct {
	entries map[pairKey]Entry
}

// NewTable builds a Table from directed entries. Later duplicates of the
// same (from, to) pair win.
func NewTable(entries []Entry) *Table {
	t := &Table{entries: make(map[pairKey]Entry, len(entries))}
	for _, e := range entries {
		t.entries[pairKey{from: e.From, to: e.To}] = e
	}
	return t
}

// Lookup returns the directed entry for (from, to).
func (t *Table) Lookup(from, to model.RoleSide) (Entry, bool) {
	e, ok := t.entries[pairKey{from: from, to: to}]
	return e, ok
}

// Weight returns the identity closeness of a (role, side) pair, the
// scalar level the promotion window is anchored on.
func (t *Table) Weight(rs model.RoleSide) (float64, bool) {
	e, ok := t.Lookup(rs, rs)
	if !ok {
		return 0, false
	}
	return e.Closeness, true
}

// Rank returns the hierarchy rank of a (role, side) pair, or 0 when the
// pair is unknown.
func (t *Table) Rank(rs model.RoleSide) int {
	e, ok := t.Lookup(rs, rs)
	if !ok {
		return 0
	}
	return e.Hierarchy
}

// Positions returns every known (role, side) pair except Head Coach,
// ordered by hierarchy rank, then role, then side. This is the catalog of
// open positions a staff must fill.
func (t *Table) Positions() []model.RoleSide {
	seen := make(map[model.RoleSide]bool)
	var out []model.RoleSide
	for k := range t.entries {
		if k.from != k.to {
			continue
		}
		if k.from.Role == model.RoleHeadCoach {
			continue
		}
		if !seen[k.from] {
			seen[k.from] = true
			out = append(out, k.from)
		}
	}
	sort.Slice(out, func(i, j int) bool {
		ri, rj := t.Rank(out[i]), t.Rank(out[j])
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

// sideOrder fixes a deterministic side ordering: offense, defense,
// special teams, both.
func sideOrder(s model.Side) int {
	switch s {
	case model.SideOffense:
		return 0
	case model.SideDefense:
		return 1
	case model.SideSpecialTeams:
		return 2
	case model.SideBoth:
		return 3
	default:
		return 4
	}
}
