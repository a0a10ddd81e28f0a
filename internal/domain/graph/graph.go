// Package graph provides the undirected co-staff graph and its
// shortest-path queries. A Graph is immutable after Build and safe to
// share across concurrent recommendation runs without locking.
package graph

import (
	"math"
	"sort"

	mapset "github.com/deckarep/golang-set/v2"

	"github.com/gridironlab/coachnet/internal/domain/model"
)

// Infinity is the distance reported for unreachable coach pairs.
const Infinity = math.MaxInt

type pairKey struct {
	a, b int
}

func makePairKey(x, y int) pairKey {
	if x < y {
		return pairKey{a: x, b: y}
	}
	return pairKey{a: y, b: x}
}

// Neighbor is a coach reachable from a BFS origin, with its edge distance.
type Neighbor struct {
	ID     int
	Degree int
}

// Graph is an undirected simple graph over coach identities. Edge
// attributes (tenure, performance) are used for scoring only, never as
// path cost.
type Graph struct {
	nodes map[int]model.Coach
	adj   map[int][]int
	edges map[pairKey]model.RelationshipEdge
}

// Option applies a configuration option to Build.
type Option func(*builderConfig)

type builderConfig struct {
	recencyCutoff int
}

// WithRecencyCutoff drops coaches whose most-recent active year is before
// the given year. Zero keeps everyone.
func WithRecencyCutoff(year int) Option {
	return func(c *builderConfig) {
		c.recencyCutoff = year
	}
}

// Build constructs a graph from the deduplicated roster and relationship
// table. Self-loops are dropped; edges touching filtered-out coaches are
// dropped; the first edge per unordered pair wins (the relationship
// builder already merges duplicates).
func Build(coaches []model.Coach, edges []model.RelationshipEdge, opts ...Option) *Graph {
	cfg := builderConfig{}
	for _, opt := range opts {
		opt(&cfg)
	}

	g := &Graph{
		nodes: make(map[int]model.Coach, len(coaches)),
		adj:   make(map[int][]int, len(coaches)),
		edges: make(map[pairKey]model.RelationshipEdge, len(edges)),
	}

	for _, c := range coaches {
		if cfg.recencyCutoff > 0 && c.LastYear < cfg.recencyCutoff {
			continue
		}
		g.nodes[c.ID] = c
	}

	for _, e := range edges {
		if e.CoachID1 == e.CoachID2 {
			continue
		}
		if _, ok := g.nodes[e.CoachID1]; !ok {
			continue
		}
		if _, ok := g.nodes[e.CoachID2]; !ok {
			continue
		}
		k := makePairKey(e.CoachID1, e.CoachID2)
		if _, dup := g.edges[k]; dup {
			continue
		}
		g.edges[k] = e
		g.adj[e.CoachID1] = append(g.adj[e.CoachID1], e.CoachID2)
		g.adj[e.CoachID2] = append(g.adj[e.CoachID2], e.CoachID1)
	}

	// Sorted adjacency gives deterministic BFS frontiers.
	for id := range g.adj {
		sort.Ints(g.adj[id])
	}

	return g
}

// Has reports whether the coach is a node in the graph.
func (g *Graph) Has(id int) bool {
	_, ok := g.nodes[id]
	return ok
}

// Coach returns the node attributes for a coach id.
func (g *Graph) Coach(id int) (model.Coach, bool) {
	c, ok := g.nodes[id]
	return c, ok
}

// Edge returns the relationship edge between two coaches, in either order.
func (g *Graph) Edge(a, b int) (model.RelationshipEdge, bool) {
	e, ok := g.edges[makePairKey(a, b)]
	return e, ok
}

// NodeCount returns the number of coach nodes.
func (g *Graph) NodeCount() int { return len(g.nodes) }

// EdgeCount returns the number of relationship edges.
func (g *Graph) EdgeCount() int { return len(g.edges) }

// Nodes returns all coach nodes ordered by id.
func (g *Graph) Nodes() []model.Coach {
	out := make([]model.Coach, 0, len(g.nodes))
	for _, c := range g.nodes {
		out = append(out, c)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out
}

// Distance returns the unweighted shortest-path edge count between two
// coaches, or Infinity when either is absent or no path exists.
func (g *Graph) Distance(target, other int) int {
	if !g.Has(target) || !g.Has(other) {
		return Infinity
	}
	if target == other {
		return 0
	}

	visited := mapset.NewThreadUnsafeSet[int](target)
	frontier := []int{target}
	depth := 0
	for len(frontier) > 0 {
		depth++
		var next []int
		for _, id := range frontier {
			for _, nb := range g.adj[id] {
				if visited.Contains(nb) {
					continue
				}
				if nb == other {
					return depth
				}
				visited.Add(nb)
				next = append(next, nb)
			}
		}
		frontier = next
	}
	return Infinity
}

// WithinK returns every coach at distance d with 0 < d <= k from the
// target, ordered by degree then id. An absent target yields nil.
func (g *Graph) WithinK(target, k int) []Neighbor {
	if !g.Has(target) || k < 1 {
		return nil
	}

	visited := mapset.NewThreadUnsafeSet[int](target)
	frontier := []int{target}
	var out []Neighbor
	for depth := 1; depth <= k && len(frontier) > 0; depth++ {
		var next []int
		for _, id := range frontier {
			for _, nb := range g.adj[id] {
				if visited.Contains(nb) {
					continue
				}
				visited.Add(nb)
				next = append(next, nb)
				out = append(out, Neighbor{ID: nb, Degree: depth})
			}
		}
		frontier = next
	}

	sort.Slice(out, func(i, j int) bool {
		if out[i].Degree != out[j].Degree {
			return out[i].Degree < out[j].Degree
		}
		return out[i].ID < out[j].ID
	})
	return out
}
