package graph_test

import (
	"testing"

	"github.com/gridironlab/coachnet/internal/domain/graph"
	"github.com/gridironlab/coachnet/internal/domain/model"
	. "github.com/smartystreets/goconvey/convey"
)

func coach(id int, lastYear int) model.Coach {
	return model.Coach{ID: id, Name: "coach", LastYear: lastYear}
}

func edge(a, b, years int) model.RelationshipEdge {
	if a > b {
		a, b = b, a
	}
	return model.RelationshipEdge{CoachID1: a, CoachID2: b, YearsTogether: years}
}

// chain builds 1-2-3-4-5 plus an isolated node 9.
func chain() *graph.Graph {
	coaches := []model.Coach{
		coach(1, 2023), coach(2, 2023), coach(3, 2023),
		coach(4, 2023), coach(5, 2023), coach(9, 2023),
	}
	edges := []model.RelationshipEdge{
		edge(1, 2, 3), edge(2, 3, 1), edge(3, 4, 2), edge(4, 5, 1),
	}
	return graph.Build(coaches, edges)
}

func TestGraph_Build(t *testing.T) {
	Convey("Given a roster with self-loops and duplicate pairs", t, func() {
		coaches := []model.Coach{coach(1, 2023), coach(2, 2023)}
		edges := []model.RelationshipEdge{
			edge(1, 1, 5),
			edge(1, 2, 3),
			edge(2, 1, 7),
		}
		g := graph.Build(coaches, edges)

		Convey("Then self-loops are dropped and the first pair wins", func() {
			So(g.NodeCount(), ShouldEqual, 2)
			So(g.EdgeCount(), ShouldEqual, 1)
			e, ok := g.Edge(1, 2)
			So(ok, ShouldBeTrue)
			So(e.YearsTogether, ShouldEqual, 3)
		})
	})

	Convey("Given a recency cutoff", t, func() {
		coaches := []model.Coach{coach(1, 2023), coach(2, 2019), coach(3, 2023)}
		edges := []model.RelationshipEdge{edge(1, 2, 4), edge(1, 3, 2)}
		g := graph.Build(coaches, edges, graph.WithRecencyCutoff(2022))

		Convey("Then stale coaches and their edges are filtered", func() {
			So(g.Has(2), ShouldBeFalse)
			So(g.NodeCount(), ShouldEqual, 2)
			So(g.EdgeCount(), ShouldEqual, 1)
			_, ok := g.Edge(1, 2)
			So(ok, ShouldBeFalse)
		})
	})
}

func TestGraph_Edge(t *testing.T) {
	Convey("Given a built graph", t, func() {
		g := chain()

		Convey("Then edges resolve in either endpoint order", func() {
			a, okA := g.Edge(1, 2)
			b, okB := g.Edge(2, 1)
			So(okA, ShouldBeTrue)
			So(okB, ShouldBeTrue)
			So(b, ShouldResemble, a)
		})

		Convey("And a non-adjacent pair has no edge", func() {
			_, ok := g.Edge(1, 3)
			So(ok, ShouldBeFalse)
		})
	})
}

func TestGraph_Distance(t *testing.T) {
	Convey("Given the chain graph 1-2-3-4-5 with isolated 9", t, func() {
		g := chain()

		Convey("Then distance counts edges on the shortest path", func() {
			So(g.Distance(1, 2), ShouldEqual, 1)
			So(g.Distance(1, 3), ShouldEqual, 2)
			So(g.Distance(1, 5), ShouldEqual, 4)
		})

		Convey("And distance is symmetric", func() {
			So(g.Distance(5, 1), ShouldEqual, g.Distance(1, 5))
		})

		Convey("And distance to self is zero", func() {
			So(g.Distance(3, 3), ShouldEqual, 0)
		})

		Convey("And unreachable pairs report Infinity", func() {
			So(g.Distance(1, 9), ShouldEqual, graph.Infinity)
		})

		Convey("And absent coaches report Infinity", func() {
			So(g.Distance(1, 42), ShouldEqual, graph.Infinity)
			So(g.Distance(42, 1), ShouldEqual, graph.Infinity)
		})
	})
}

func TestGraph_WithinK(t *testing.T) {
	Convey("Given the chain graph", t, func() {
		g := chain()

		Convey("When collecting neighbors within two hops of node 1", func() {
			pool := g.WithinK(1, 2)

			Convey("Then only distance one and two appear, in order", func() {
				So(pool, ShouldResemble, []graph.Neighbor{
					{ID: 2, Degree: 1},
					{ID: 3, Degree: 2},
				})
			})

			Convey("And the origin is never its own neighbor", func() {
				for _, nb := range pool {
					So(nb.ID, ShouldNotEqual, 1)
				}
			})
		})

		Convey("When the target is absent", func() {
			So(g.WithinK(42, 2), ShouldBeNil)
		})

		Convey("When k is zero", func() {
			So(g.WithinK(1, 0), ShouldBeNil)
		})

		Convey("When the pool is recomputed", func() {
			first := g.WithinK(2, 2)
			second := g.WithinK(2, 2)

			Convey("Then results are deterministic", func() {
				So(second, ShouldResemble, first)
			})
		})
	})
}
