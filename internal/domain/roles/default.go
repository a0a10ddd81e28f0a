package roles

import "github.com/gridironlab/coachnet/internal/domain/model"

// roleWeight pins each (role, side) pair to its level of responsibility.
// Head Coach 1.0 down to special-teams specialist 0.1.
type roleWeight struct {
	pair   model.RoleSide
	weight float64
	rank   int
}

func defaultWeights() []roleWeight {
	return []roleWeight{
		{pair: model.RoleSide{Role: model.RoleHeadCoach, Side: model.SideBoth}, weight: 1.0, rank: 1},
		{pair: model.RoleSide{Role: model.RoleCoordinator, Side: model.SideOffense}, weight: 0.8, rank: 2},
		{pair: model.RoleSide{Role: model.RoleCoordinator, Side: model.SideDefense}, weight: 0.8, rank: 2},
		{pair: model.RoleSide{Role: model.RoleCoordinator, Side: model.SideSpecialTeams}, weight: 0.6, rank: 3},
		{pair: model.RoleSide{Role: model.RolePositionCoach, Side: model.SideOffense}, weight: 0.4, rank: 4},
		{pair: model.RoleSide{Role: model.RolePositionCoach, Side: model.SideDefense}, weight: 0.4, rank: 4},
		{pair: model.RoleSide{Role: model.RolePositionCoach, Side: model.SideSpecialTeams}, weight: 0.3, rank: 5},
		{pair: model.RoleSide{Role: model.RoleSpecialistCoach, Side: model.SideOffense}, weight: 0.2, rank: 6},
		{pair: model.RoleSide{Role: model.RoleSpecialistCoach, Side: model.SideDefense}, weight: 0.2, rank: 6},
		{pair: model.RoleSide{Role: model.RoleSpecialistCoach, Side: model.SideSpecialTeams}, weight: 0.1, rank: 7},
	}
}

// DefaultTable builds the built-in closeness table from the role weight
// system: the closeness of (from, to) is the weight of the target pair,
// so the identity entry carries each pair's own level.
func DefaultTable() *Table {
	weights := defaultWeights()
	entries := make([]Entry, 0, len(weights)*len(weights))
	for _, from := range weights {
		for _, to := range weights {
			entries = append(entries, Entry{
				From:      from.pair,
				To:        to.pair,
				Closeness: to.weight,
				Hierarchy: to.rank,
			})
		}
	}
	return NewTable(entries)
}
