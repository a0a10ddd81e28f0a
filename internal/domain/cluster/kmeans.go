// Package cluster groups head-coaching candidates by personal quality
// versus best-available staff quality. Presentation-only terminal step;
// nothing feeds back into upstream scoring.
package cluster

import (
	"math"
	"sort"

	"github.com/gridironlab/coachnet/internal/domain/model"
)

// DefaultK is the elbow-method chosen cluster count.
const DefaultK = 3

const maxIterations = 100

// Point is one candidate in the 2-D (personal value, staff value) space.
type Point struct {
	CoachID  int
	Name     string
	Personal float64
	Staff    float64
}

// Option applies a configuration option to the Clusterer.
type Option func(*Clusterer)

// WithK sets the cluster count.
func WithK(k int) Option {
	return func(c *Clusterer) {
		if k > 0 {
			c.k = k
		}
	}
}

// Clusterer runs a deterministic k-means over candidate points.
// Determinism comes from farthest-point seeding anchored on the lowest
// coach id rather than a random initialization, so identical inputs
// always partition identically.
type Clusterer struct {
	k int
}

// New creates a Clusterer.
func New(opts ...Option) *Clusterer {
	c := &Clusterer{k: DefaultK}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Partition assigns each point to one of k clusters. Fewer points than k
// yields one cluster per point.
func (c *Clusterer) Partition(points []Point) []model.ClusterAssignment {
	if len(points) == 0 {
		return nil
	}

	sorted := make([]Point, len(points))
	copy(sorted, points)
	sort.Slice(sorted, func(i, j int) bool { return sorted[i].CoachID < sorted[j].CoachID })

	k := c.k
	if k > len(sorted) {
		k = len(sorted)
	}

	centroids := seedCentroids(sorted, k)
	assign := make([]int, len(sorted))

	for iter := 0; iter < maxIterations; iter++ {
		changed := false
		for i, p := range sorted {
			best := nearest(centroids, p)
			if assign[i] != best {
				assign[i] = best
				changed = true
			}
		}
		if !changed && iter > 0 {
			break
		}

		// Recompute centroids; an emptied cluster keeps its previous
		// centroid so k stays fixed.
		sums := make([][2]float64, k)
		counts := make([]int, k)
		for i, p := range sorted {
			sums[assign[i]][0] += p.Personal
			sums[assign[i]][1] += p.Staff
			counts[assign[i]]++
		}
		for j := range centroids {
			if counts[j] > 0 {
				centroids[j][0] = sums[j][0] / float64(counts[j])
				centroids[j][1] = sums[j][1] / float64(counts[j])
			}
		}
	}

	out := make([]model.ClusterAssignment, len(sorted))
	for i, p := range sorted {
		out[i] = model.ClusterAssignment{
			CoachID:       p.CoachID,
			Name:          p.Name,
			PersonalValue: p.Personal,
			StaffValue:    p.Staff,
			Cluster:       assign[i],
		}
	}
	return out
}

// seedCentroids picks the lowest-id point first, then repeatedly the
// point farthest from its nearest chosen centroid.
func seedCentroids(points []Point, k int) [][2]float64 {
	centroids := make([][2]float64, 0, k)
	centroids = append(centroids, [2]float64{points[0].Personal, points[0].Staff})

	for len(centroids) < k {
		bestIdx := -1
		bestDist := -1.0
		for i, p := range points {
			d := math.Inf(1)
			for _, c := range centroids {
				if dd := dist(p, c); dd < d {
					d = dd
				}
			}
			if d > bestDist {
				bestDist = d
				bestIdx = i
			}
		}
		centroids = append(centroids, [2]float64{points[bestIdx].Personal, points[bestIdx].Staff})
	}
	return centroids
}

func nearest(centroids [][2]float64, p Point) int {
	best := 0
	bestDist := math.Inf(1)
	for j, c := range centroids {
		if d := dist(p, c); d < bestDist {
			bestDist = d
			best = j
		}
	}
	return best
}

func dist(p Point, c [2]float64) float64 {
	dx := p.Personal - c[0]
	dy := p.Staff - c[1]
	return math.Hypot(dx, dy)
}
