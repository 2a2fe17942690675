// Package kmeans implements seeded k-means++ clustering with an optional
// per-cluster size bound.
//
// Runs are fully deterministic for a given seed: initial centres come from a
// math/rand source seeded by Config.Seed, restarts draw from the same source in
// sequence, and every tie (equal distance, equal inertia) is broken by index.
package kmeans

import (
	"errors"
	"fmt"
	"math"
	"math/rand"
	"slices"

	"gonum.org/v1/gonum/floats"
)

// Defaults used when Config fields are zero.
const (
	DefaultRestarts      = 10
	DefaultMaxIterations = 300
	DefaultTolerance     = 1e-4
)

var (
	// ErrInvalidK is returned when K is not positive.
	ErrInvalidK = errors.New("kmeans: k must be >= 1")

	// ErrNoPoints is returned when there is nothing to cluster.
	ErrNoPoints = errors.New("kmeans: no points")

	// ErrInfeasible is returned when K*Capacity cannot hold every point.
	ErrInfeasible = errors.New("kmeans: capacity too small for k clusters")

	// ErrDimension is returned when points differ in length.
	ErrDimension = errors.New("kmeans: points differ in dimension")
)

// Config controls one clustering run.
type Config struct {
	// K is the number of clusters. Values above the number of points are clamped.
	K int

	// Capacity bounds the size of every cluster; 0 means unbounded.
	Capacity int

	// Seed feeds the k-means++ initialisation.
	Seed int64

	// Restarts is the number of independent initialisations; the lowest inertia wins.
	Restarts int

	// MaxIterations bounds the Lloyd iterations per restart.
	MaxIterations int

	// Tolerance stops a restart once the total squared centre shift drops to it.
	Tolerance float64
}

// Result is the best clustering found.
type Result struct {
	// Labels holds one cluster label per point. Labels are numbered in order of
	// first appearance, so point 0 is always in cluster 0.
	Labels []int

	// Centroids are indexed by label.
	Centroids [][]float64

	// Inertia is the sum of squared distances from points to their centroid.
	Inertia float64

	// Iterations is the number of Lloyd iterations of the winning restart.
	Iterations int
}

// Sizes returns the number of points per label.
func (r *Result) Sizes() []int {
	sizes := make([]int, len(r.Centroids))
	for _, l := range r.Labels {
		sizes[l]++
	}

	return sizes
}

// Fit clusters points.
//
// With Capacity > 0 the assignment step fills clusters greedily by ascending
// point-to-centre distance and never exceeds Capacity. When
// K == ceil(len(points)/Capacity) this guarantees that every cluster is
// non-empty.
//
// Parameters:
//   - points: Feature vectors, all of the same dimension
//   - cfg: Run configuration
//
// Returns:
//   - *Result: Lowest-inertia clustering over all restarts
//   - error: ErrInvalidK, ErrNoPoints, ErrInfeasible or ErrDimension
func Fit(points [][]float64, cfg Config) (*Result, error) {
	if len(points) == 0 {
		return nil, ErrNoPoints
	}
	if cfg.K < 1 {
		return nil, ErrInvalidK
	}
	for _, p := range points[1:] {
		if len(p) != len(points[0]) {
			return nil, ErrDimension
		}
	}
	cfg = withDefaults(cfg, len(points))
	if cfg.Capacity > 0 && cfg.K*cfg.Capacity < len(points) {
		return nil, fmt.Errorf("%w: k=%d capacity=%d points=%d", ErrInfeasible, cfg.K, cfg.Capacity, len(points))
	}

	rng := rand.New(rand.NewSource(cfg.Seed)) //nolint:gosec // reproducible clustering, not security sensitive

	var best *Result
	for range cfg.Restarts {
		res := run(points, cfg, rng)
		if best == nil || res.Inertia < best.Inertia {
			best = res
		}
	}

	return canonical(best), nil
}

func withDefaults(cfg Config, n int) Config {
	cfg.K = min(cfg.K, n)
	if cfg.Restarts <= 0 {
		cfg.Restarts = DefaultRestarts
	}
	if cfg.MaxIterations <= 0 {
		cfg.MaxIterations = DefaultMaxIterations
	}
	if cfg.Tolerance <= 0 {
		cfg.Tolerance = DefaultTolerance
	}

	return cfg
}

func run(points [][]float64, cfg Config, rng *rand.Rand) *Result {
	centroids := initPlusPlus(points, cfg.K, rng)
	labels := make([]int, len(points))
	iter := 0
	for iter < cfg.MaxIterations {
		iter++
		next := assign(points, centroids, cfg.Capacity)
		moved := update(points, next, centroids)
		stable := slices.Equal(labels, next)
		labels = next
		if (iter > 1 && stable) || moved <= cfg.Tolerance {
			break
		}
	}
	// final assignment against the settled centres
	labels = assign(points, centroids, cfg.Capacity)

	return &Result{
		Labels:     labels,
		Centroids:  centroids,
		Inertia:    inertia(points, labels, centroids),
		Iterations: iter,
	}
}

// initPlusPlus picks k initial centres with D² weighting.
func initPlusPlus(points [][]float64, k int, rng *rand.Rand) [][]float64 {
	n := len(points)
	chosen := make([]bool, n)
	centroids := make([][]float64, 0, k)

	first := rng.Intn(n)
	chosen[first] = true
	centroids = append(centroids, slices.Clone(points[first]))

	d2 := make([]float64, n)
	for i, p := range points {
		d2[i] = sqDist(p, centroids[0])
	}

	for len(centroids) < k {
		total := floats.Sum(d2)
		idx := -1
		if total > 0 {
			target := rng.Float64() * total
			acc := 0.0
			for i, d := range d2 {
				acc += d
				if d > 0 && acc >= target {
					idx = i
					break
				}
			}
		}
		if idx < 0 && total > 0 {
			// rounding left target past the running sum
			idx = slices.IndexFunc(d2, func(d float64) bool { return d > 0 })
		}
		if idx < 0 {
			// all remaining points coincide with a centre
			idx = slices.Index(chosen, false)
		}

		chosen[idx] = true
		c := slices.Clone(points[idx])
		centroids = append(centroids, c)
		for i, p := range points {
			d2[i] = min(d2[i], sqDist(p, c))
		}
	}

	return centroids
}

type pair struct {
	point, cluster int
	dist           float64
}

// assign maps every point to a centre, honouring capacity when positive.
func assign(points, centroids [][]float64, capacity int) []int {
	labels := make([]int, len(points))
	if capacity <= 0 {
		for i, p := range points {
			best, bestD := 0, math.Inf(1)
			for c, centre := range centroids {
				if d := sqDist(p, centre); d < bestD {
					best, bestD = c, d
				}
			}
			labels[i] = best
		}

		return labels
	}

	pairs := make([]pair, 0, len(points)*len(centroids))
	for i, p := range points {
		for c, centre := range centroids {
			pairs = append(pairs, pair{point: i, cluster: c, dist: sqDist(p, centre)})
		}
	}
	slices.SortFunc(pairs, func(a, b pair) int {
		switch {
		case a.dist < b.dist:
			return -1
		case a.dist > b.dist:
			return 1
		case a.point != b.point:
			return a.point - b.point
		default:
			return a.cluster - b.cluster
		}
	})

	for i := range labels {
		labels[i] = -1
	}
	sizes := make([]int, len(centroids))
	remaining := len(points)
	for _, pr := range pairs {
		if remaining == 0 {
			break
		}
		if labels[pr.point] >= 0 || sizes[pr.cluster] >= capacity {
			continue
		}
		labels[pr.point] = pr.cluster
		sizes[pr.cluster]++
		remaining--
	}

	return labels
}

// update moves every centre to the mean of its points and returns the total
// squared shift. Empty clusters keep their centre.
func update(points [][]float64, labels []int, centroids [][]float64) float64 {
	dim := len(points[0])
	sums := make([][]float64, len(centroids))
	counts := make([]int, len(centroids))
	for c := range sums {
		sums[c] = make([]float64, dim)
	}
	for i, p := range points {
		floats.Add(sums[labels[i]], p)
		counts[labels[i]]++
	}

	shift := 0.0
	for c := range centroids {
		if counts[c] == 0 {
			continue
		}
		floats.Scale(1/float64(counts[c]), sums[c])
		shift += sqDist(sums[c], centroids[c])
		centroids[c] = sums[c]
	}

	return shift
}

func inertia(points [][]float64, labels []int, centroids [][]float64) float64 {
	total := 0.0
	for i, p := range points {
		total += sqDist(p, centroids[labels[i]])
	}

	return total
}

// canonical renumbers labels by first appearance and drops unused centres.
func canonical(r *Result) *Result {
	remap := make(map[int]int, len(r.Centroids))
	labels := make([]int, len(r.Labels))
	centroids := make([][]float64, 0, len(r.Centroids))
	for i, l := range r.Labels {
		nl, ok := remap[l]
		if !ok {
			nl = len(remap)
			remap[l] = nl
			centroids = append(centroids, r.Centroids[l])
		}
		labels[i] = nl
	}

	return &Result{
		Labels:     labels,
		Centroids:  centroids,
		Inertia:    r.Inertia,
		Iterations: r.Iterations,
	}
}

func sqDist(a, b []float64) float64 {
	d := floats.Distance(a, b, 2)

	return d * d
}
