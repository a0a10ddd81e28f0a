package roles_test

import (
	"testing"

	"github.com/gridironlab/coachnet/internal/domain/model"
	"github.com/gridironlab/coachnet/internal/domain/roles"
	. "github.com/smartystreets/goconvey/convey"
)

func rs(role model.Role, side model.Side) model.RoleSide {
	return model.RoleSide{Role: role, Side: side}
}

func TestDefaultTable(t *testing.T) {
	Convey("Given the built-in closeness table", t, func() {
		table := roles.DefaultTable()

		Convey("Then identity weights follow the role hierarchy", func() {
			w, ok := table.Weight(rs(model.RoleHeadCoach, model.SideBoth))
			So(ok, ShouldBeTrue)
			So(w, ShouldEqual, 1.0)

			w, ok = table.Weight(rs(model.RoleCoordinator, model.SideOffense))
			So(ok, ShouldBeTrue)
			So(w, ShouldEqual, 0.8)

			w, ok = table.Weight(rs(model.RoleSpecialistCoach, model.SideSpecialTeams))
			So(ok, ShouldBeTrue)
			So(w, ShouldEqual, 0.1)
		})

		Convey("Then an unknown pair has no weight", func() {
			_, ok := table.Weight(rs("Analytics Intern", model.SideBoth))
			So(ok, ShouldBeFalse)
		})

		Convey("Then the position catalog excludes Head Coach", func() {
			positions := table.Positions()
			So(len(positions), ShouldEqual, 9)
			for _, p := range positions {
				So(p.Role, ShouldNotEqual, model.RoleHeadCoach)
			}
		})

		Convey("Then the catalog is ordered by hierarchy rank", func() {
			positions := table.Positions()
			So(positions[0], ShouldResemble, rs(model.RoleCoordinator, model.SideOffense))
			So(positions[1], ShouldResemble, rs(model.RoleCoordinator, model.SideDefense))
			So(positions[2], ShouldResemble, rs(model.RoleCoordinator, model.SideSpecialTeams))
		})
	})
}

func TestMapper_Targets(t *testing.T) {
	Convey("Given a mapper with the default step over the built-in table", t, func() {
		m := roles.NewMapper(roles.DefaultTable())

		Convey("When mapping an offensive position coach", func() {
			targets := m.Targets(rs(model.RolePositionCoach, model.SideOffense))

			Convey("Then the offensive coordinator step is reachable", func() {
				So(targets, ShouldContain, rs(model.RoleCoordinator, model.SideOffense))
			})

			Convey("And the identity pair is always included", func() {
				So(targets, ShouldContain, rs(model.RolePositionCoach, model.SideOffense))
			})

			Convey("And Head Coach is out of reach", func() {
				So(targets, ShouldNotContain, rs(model.RoleHeadCoach, model.SideBoth))
			})

			Convey("And defensive targets are blocked by the side rule", func() {
				So(targets, ShouldNotContain, rs(model.RoleCoordinator, model.SideDefense))
				So(targets, ShouldNotContain, rs(model.RolePositionCoach, model.SideDefense))
			})
		})

		Convey("When mapping an offensive coordinator", func() {
			targets := m.Targets(rs(model.RoleCoordinator, model.SideOffense))

			Convey("Then Head Coach is reachable because its side is Both", func() {
				So(targets, ShouldContain, rs(model.RoleHeadCoach, model.SideBoth))
			})
		})

		Convey("When mapping a head coach", func() {
			targets := m.Targets(rs(model.RoleHeadCoach, model.SideBoth))

			Convey("Then a Both-side coach may cross to any side", func() {
				So(targets, ShouldContain, rs(model.RoleHeadCoach, model.SideBoth))
			})
		})

		Convey("When the current pair has no closeness entry", func() {
			unknown := rs("Strength Coach", model.SideBoth)
			targets := m.Targets(unknown)

			Convey("Then only the identity pair comes back, never an error", func() {
				So(targets, ShouldResemble, []model.RoleSide{unknown})
			})
		})
	})

	Convey("Given a mapper with a zero step", t, func() {
		m := roles.NewMapper(roles.DefaultTable(), roles.WithStep(0))

		Convey("Then only same-level moves are allowed", func() {
			targets := m.Targets(rs(model.RoleCoordinator, model.SideOffense))
			So(targets, ShouldContain, rs(model.RoleCoordinator, model.SideOffense))
			So(targets, ShouldNotContain, rs(model.RoleHeadCoach, model.SideBoth))
		})
	})
}

func TestMapper_Maps(t *testing.T) {
	Convey("Given the default mapper", t, func() {
		m := roles.NewMapper(roles.DefaultTable())

		Convey("Then Maps agrees with Targets", func() {
			So(m.Maps(rs(model.RolePositionCoach, model.SideOffense), rs(model.RoleCoordinator, model.SideOffense)), ShouldBeTrue)
			So(m.Maps(rs(model.RolePositionCoach, model.SideOffense), rs(model.RoleHeadCoach, model.SideBoth)), ShouldBeFalse)
		})
	})
}
