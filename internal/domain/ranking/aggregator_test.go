package ranking_test

import (
	"context"
	"testing"

	"github.com/gridironlab/coachnet/internal/domain/model"
	"github.com/gridironlab/coachnet/internal/domain/ranking"
	"github.com/gridironlab/coachnet/pkg/logger"
	. "github.com/smartystreets/goconvey/convey"
)

func init() {
	// Initialize logging for tests
	if err := logger.Init(); err != nil {
		panic(err)
	}
}

var catalog = []model.RoleSide{
	{Role: model.RoleCoordinator, Side: model.SideOffense},
	{Role: model.RoleCoordinator, Side: model.SideDefense},
	{Role: model.RolePositionCoach, Side: model.SideOffense},
}

func position(rs model.RoleSide, candidates ...model.Candidate) model.PositionRecommendation {
	return model.PositionRecommendation{Position: rs, Candidates: candidates}
}

func candidate(id int, role model.Role, score float64, degree, years int) model.Candidate {
	return model.Candidate{
		CoachID: id, TargetPosition: role,
		ConnectionScore: score, Degree: degree, YearsTogether: years,
		Assigned: true,
	}
}

func TestAggregator_Summarize(t *testing.T) {
	Convey("Given a recommendation with three filled positions", t, func() {
		rec := &model.StaffRecommendation{
			TargetID:   7,
			TargetName: "Target",
			Positions: []model.PositionRecommendation{
				position(catalog[0], candidate(1, model.RoleCoordinator, 2.0, 1, 4)),
				position(catalog[1], candidate(2, model.RoleCoordinator, 1.0, 1, 2)),
				position(catalog[2], candidate(3, model.RolePositionCoach, 0.6, 2, 0)),
			},
		}
		agg := ranking.NewAggregator(catalog)

		s := agg.Summarize(rec)

		Convey("Then the aggregate statistics cover the top picks only", func() {
			So(s.TargetID, ShouldEqual, 7)
			So(s.PositionsOpen, ShouldEqual, 3)
			So(s.PositionsFilled, ShouldEqual, 3)
			So(s.AvgScore, ShouldAlmostEqual, 1.2)
			So(s.MedianScore, ShouldAlmostEqual, 1.0)
			So(s.PctDegreeOne, ShouldAlmostEqual, 100.0*2/3)
			So(s.AvgYearsTogether, ShouldAlmostEqual, 2.0)
			So(s.TotalExperience, ShouldEqual, 6)
		})

		Convey("Then the coordinator average spans coordinator slots only", func() {
			So(s.CoordinatorAvg, ShouldAlmostEqual, 1.5)
		})

		Convey("Then the top-3 average covers the best three scores", func() {
			So(s.Top3Avg, ShouldAlmostEqual, 1.2)
		})
	})

	Convey("Given a recommendation with no filled positions", t, func() {
		rec := &model.StaffRecommendation{TargetID: 7}
		agg := ranking.NewAggregator(catalog)

		s := agg.Summarize(rec)

		Convey("Then the summary is zero-valued but well-formed", func() {
			So(s.PositionsFilled, ShouldEqual, 0)
			So(s.PositionsOpen, ShouldEqual, 3)
			So(s.AvgScore, ShouldEqual, 0)
			So(s.MedianScore, ShouldEqual, 0)
		})
	})
}

func TestAggregator_Ranking(t *testing.T) {
	Convey("Given three targets with distinct average scores", t, func() {
		agg := ranking.NewAggregator(catalog)
		agg.Add(&model.StaffRecommendation{
			TargetID: 1, TargetName: "Low",
			Positions: []model.PositionRecommendation{
				position(catalog[0], candidate(10, model.RoleCoordinator, 0.5, 1, 1)),
			},
		})
		agg.Add(&model.StaffRecommendation{
			TargetID: 2, TargetName: "High",
			Positions: []model.PositionRecommendation{
				position(catalog[0], candidate(11, model.RoleCoordinator, 2.5, 1, 1)),
			},
		})
		agg.Add(&model.StaffRecommendation{
			TargetID: 3, TargetName: "Mid",
			Positions: []model.PositionRecommendation{
				position(catalog[0], candidate(12, model.RoleCoordinator, 1.5, 1, 1)),
			},
		})

		ranked := agg.Ranking(context.Background())

		Convey("Then targets are ordered by average score descending", func() {
			So(agg.Len(), ShouldEqual, 3)
			So(ranked, ShouldHaveLength, 3)
			So(ranked[0].TargetID, ShouldEqual, 2)
			So(ranked[1].TargetID, ShouldEqual, 3)
			So(ranked[2].TargetID, ShouldEqual, 1)
		})

		Convey("And rank is one-based and sequential", func() {
			So(ranked[0].Rank, ShouldEqual, 1)
			So(ranked[1].Rank, ShouldEqual, 2)
			So(ranked[2].Rank, ShouldEqual, 3)
		})
	})

	Convey("Given two targets tied on every statistic", t, func() {
		agg := ranking.NewAggregator(catalog)
		for _, id := range []int{9, 4} {
			agg.Add(&model.StaffRecommendation{
				TargetID: id,
				Positions: []model.PositionRecommendation{
					position(catalog[0], candidate(20, model.RoleCoordinator, 1.0, 1, 2)),
				},
			})
		}

		ranked := agg.Ranking(context.Background())

		Convey("Then the lower coach id ranks first", func() {
			So(ranked[0].TargetID, ShouldEqual, 4)
			So(ranked[1].TargetID, ShouldEqual, 9)
		})
	})
}

func TestAggregator_Matrix(t *testing.T) {
	Convey("Given two targets with partially overlapping filled positions", t, func() {
		agg := ranking.NewAggregator(catalog)
		agg.Add(&model.StaffRecommendation{
			TargetID: 1, TargetName: "Alpha",
			Positions: []model.PositionRecommendation{
				position(catalog[0], candidate(10, model.RoleCoordinator, 2.0, 1, 3)),
				position(catalog[2], candidate(11, model.RolePositionCoach, 0.4, 2, 0)),
			},
		})
		agg.Add(&model.StaffRecommendation{
			TargetID: 2, TargetName: "Bravo",
			Positions: []model.PositionRecommendation{
				position(catalog[1], candidate(12, model.RoleCoordinator, 1.1, 1, 2)),
			},
		})

		m := agg.Matrix()

		Convey("Then rows follow the catalog and columns the ingestion order", func() {
			So(m.Positions, ShouldResemble, catalog)
			So(m.TargetIDs, ShouldResemble, []int{1, 2})
			So(m.Names, ShouldResemble, []string{"Alpha", "Bravo"})
		})

		Convey("Then filled cells carry the top candidate score", func() {
			So(m.Score(0, 0), ShouldAlmostEqual, 2.0)
			So(m.Score(2, 0), ShouldAlmostEqual, 0.4)
			So(m.Score(1, 1), ShouldAlmostEqual, 1.1)
		})

		Convey("Then unfilled combinations are zero, not absent", func() {
			So(m.Score(1, 0), ShouldEqual, 0)
			So(m.Score(0, 1), ShouldEqual, 0)
			So(m.Score(2, 1), ShouldEqual, 0)
		})
	})
}
