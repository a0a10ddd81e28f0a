// Package model contains domain records passed between pipeline stages.
package model

// Role is a canonical coaching role category.
type Role string

// Canonical role categories, as produced by the upstream classifier.
const (
	RoleHeadCoach       Role = "Head Coach"
	RoleCoordinator     Role = "Coordinator"
	RolePositionCoach   Role = "Position Coach"
	RoleSpecialistCoach Role = "Specialist Coach"
)

// Side is a side-of-ball category.
type Side string

// Side-of-ball categories. Both matches any side in promotion lookups.
const (
	SideOffense      Side = "Offense"
	SideDefense      Side = "Defense"
	SideSpecialTeams Side = "Special Teams"
	SideBoth         Side = "Both"
)

// RoleSide is an enumerated (role, side) pair used as a node attribute and
// closeness-table key.
type RoleSide struct {
	Role Role
	Side Side
}

// PerfValue is a performance composite that may be absent. Missing values
// are defaulted at scoring time, never propagated as null.
type PerfValue struct {
	Value float64
	Valid bool
}

// SomeValue returns a present PerfValue.
func SomeValue(v float64) PerfValue { return PerfValue{Value: v, Valid: true} }

// StaffRecord is one row of the staff history table: a coach holding a
// role on a team in a season.
type StaffRecord struct {
	Year    int
	Team    string
	CoachID int
	Name    string
	Role    Role
	Side    Side
	Value   PerfValue
}

// Coach is one unique individual, deduplicated from staff records and
// carrying most-recent attributes. Immutable per analysis run.
type Coach struct {
	ID       int
	Name     string
	Role     Role
	Side     Side
	LastTeam string
	LastYear int
	Value    PerfValue
}

// RelationshipEdge is an unordered coach pair that shared a team roster.
// CoachID1 < CoachID2 always holds (canonical ordering).
type RelationshipEdge struct {
	CoachID1 int
	CoachID2 int

	// YearsTogether counts distinct co-occurring seasons across any team.
	YearsTogether int

	// Value1 and Value2 are each coach's mean performance value over the
	// co-occurring rows only.
	Value1 PerfValue
	Value2 PerfValue
}

// Other returns the edge endpoint that is not id.
func (e RelationshipEdge) Other(id int) int {
	if e.CoachID1 == id {
		return e.CoachID2
	}
	return e.CoachID1
}

// ValueOf returns the mean performance value for the given endpoint.
func (e RelationshipEdge) ValueOf(id int) PerfValue {
	if e.CoachID1 == id {
		return e.Value1
	}
	return e.Value2
}

// Candidate is an ephemeral per-(target, position) scoring record.
type Candidate struct {
	CoachID         int
	Name            string
	CurrentRole     Role
	CurrentSide     Side
	TargetPosition  Role
	TargetSide      Side
	Degree          int
	YearsTogether   int
	Value           PerfValue
	ConnectionScore float64

	// Assigned marks the greedy top pick for some position in this run.
	Assigned bool
}

// PositionRecommendation is the ranked candidate list for one open position.
type PositionRecommendation struct {
	Position   RoleSide
	Candidates []Candidate
}

// StaffRecommendation is the full recommendation set for one target head
// coach: up to N ranked candidates per open position.
type StaffRecommendation struct {
	RunID      string
	TargetID   int
	TargetName string
	Positions  []PositionRecommendation
}

// Top returns the top candidate per position, in catalog order.
func (r StaffRecommendation) Top() []Candidate {
	top := make([]Candidate, 0, len(r.Positions))
	for _, p := range r.Positions {
		if len(p.Candidates) > 0 {
			top = append(top, p.Candidates[0])
		}
	}
	return top
}

// StaffSummary aggregates one StaffRecommendation's top-per-position
// candidates; input to cross-coach ranking.
type StaffSummary struct {
	Rank       int
	TargetID   int
	TargetName string

	AvgScore         float64
	MedianScore      float64
	PctDegreeOne     float64
	AvgYearsTogether float64
	TotalExperience  int
	CoordinatorAvg   float64
	Top3Avg          float64

	PositionsFilled int
	PositionsOpen   int
}

// ClusterAssignment places one head-coaching candidate in a cluster over
// the (personal value, staff value) plane.
type ClusterAssignment struct {
	CoachID       int
	Name          string
	PersonalValue float64
	StaffValue    float64
	Cluster       int
}
