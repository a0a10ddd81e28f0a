package ranking

import "github.com/gridironlab/coachnet/internal/domain/model"

// Matrix is the position-by-head-coach top score pivot. A cell holds 0
// where no candidate was ever found for that combination; 0 means "no
// viable candidate", distinct from "not computed", which cannot occur
// because every catalog position has a row.
type Matrix struct {
	Positions []model.RoleSide
	TargetIDs []int
	Names     []string

	// Scores is indexed [position][target].
	Scores [][]float64
}

// Score returns the cell for (position index, target index).
func (m *Matrix) Score(pos, target int) float64 {
	return m.Scores[pos][target]
}

// Matrix builds the pivot over all ingested recommendations. Columns
// follow ingestion order; rows follow the catalog order.
func (a *Aggregator) Matrix() *Matrix {
	m := &Matrix{
		Positions: a.catalog,
		TargetIDs: make([]int, len(a.recs)),
		Names:     make([]string, len(a.recs)),
		Scores:    make([][]float64, len(a.catalog)),
	}
	for i := range m.Scores {
		m.Scores[i] = make([]float64, len(a.recs))
	}

	posIndex := make(map[model.RoleSide]int, len(a.catalog))
	for i, p := range a.catalog {
		posIndex[p] = i
	}

	for col, rec := range a.recs {
		m.TargetIDs[col] = rec.TargetID
		m.Names[col] = rec.TargetName
		for _, pr := range rec.Positions {
			row, ok := posIndex[pr.Position]
			if !ok || len(pr.Candidates) == 0 {
				continue
			}
			m.Scores[row][col] = pr.Candidates[0].ConnectionScore
		}
	}

	return m
}
