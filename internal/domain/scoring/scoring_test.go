package scoring_test

import (
	"testing"

	"github.com/gridironlab/coachnet/internal/domain/model"
	"github.com/gridironlab/coachnet/internal/domain/scoring"
	. "github.com/smartystreets/goconvey/convey"
)

func TestScorer_Score(t *testing.T) {
	Convey("Given a connection scorer", t, func() {
		s := scoring.New()

		Convey("When the coach has a recorded value", func() {
			Convey("Then the score is value x tenure x degree", func() {
				So(s.Score(model.SomeValue(1.2), 3, 1), ShouldAlmostEqual, 2.4)
				So(s.Score(model.SomeValue(1.0), 4, 2), ShouldAlmostEqual, 1.25)
				So(s.Score(model.SomeValue(0.5), 1, 3), ShouldAlmostEqual, 0.05)
			})
		})

		Convey("When the coach has no recorded value", func() {
			Convey("Then the performance weight is exactly the 0.3 floor", func() {
				So(s.PerformanceWeight(model.PerfValue{}), ShouldEqual, 0.3)
				So(s.Score(model.PerfValue{}, 1, 1), ShouldAlmostEqual, 0.3)
			})
		})

		Convey("When the floor is overridden", func() {
			custom := scoring.New(scoring.WithMissingValueFloor(0.5))

			Convey("Then missing values use the override", func() {
				So(custom.PerformanceWeight(model.PerfValue{}), ShouldEqual, 0.5)
			})
		})
	})
}

func TestTenureMultiplier(t *testing.T) {
	Convey("Given the tenure step function", t, func() {
		Convey("Then each step matches the documented multiplier", func() {
			So(scoring.TenureMultiplier(1), ShouldEqual, 1.0)
			So(scoring.TenureMultiplier(2), ShouldEqual, 1.5)
			So(scoring.TenureMultiplier(3), ShouldEqual, 2.0)
			So(scoring.TenureMultiplier(4), ShouldEqual, 2.5)
			So(scoring.TenureMultiplier(9), ShouldEqual, 2.5)
		})

		Convey("And zero shared seasons behaves like one", func() {
			So(scoring.TenureMultiplier(0), ShouldEqual, 1.0)
		})
	})
}

func TestDegreeMultiplier(t *testing.T) {
	Convey("Given the degree step function", t, func() {
		Convey("Then distance maps to the documented multiplier", func() {
			So(scoring.DegreeMultiplier(1), ShouldEqual, 1.0)
			So(scoring.DegreeMultiplier(2), ShouldEqual, 0.5)
			So(scoring.DegreeMultiplier(3), ShouldEqual, 0.1)
			So(scoring.DegreeMultiplier(7), ShouldEqual, 0.1)
		})
	})
}

func TestScore_Monotonicity(t *testing.T) {
	Convey("Given fixed value and tenure", t, func() {
		s := scoring.New()
		v := model.SomeValue(1.0)

		Convey("Then score never increases with degree", func() {
			So(s.Score(v, 3, 1), ShouldBeGreaterThanOrEqualTo, s.Score(v, 3, 2))
			So(s.Score(v, 3, 2), ShouldBeGreaterThanOrEqualTo, s.Score(v, 3, 3))
		})
	})

	Convey("Given fixed value and degree", t, func() {
		s := scoring.New()
		v := model.SomeValue(1.0)

		Convey("Then score never decreases with tenure", func() {
			for years := 1; years < 6; years++ {
				So(s.Score(v, years+1, 1), ShouldBeGreaterThanOrEqualTo, s.Score(v, years, 1))
			}
		})
	})
}
