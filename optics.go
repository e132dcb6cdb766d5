package optics

import (
	"errors"
	"fmt"
	"math"
	"runtime"
)

// ErrInvalidInput is wrapped by every validation error returned from Run and
// RunPrecomputed. Test with errors.Is.
var ErrInvalidInput = errors.New("optics: invalid input")

// Config controls an OPTICS run. Start with [DefaultConfig] and override the
// fields you need. A Config is an immutable value: it is copied into the run
// and never mutated, so the same Config can drive concurrent runs from
// independent goroutines.
type Config struct {
	// Epsilon is the neighborhood radius. A point q is a neighbor of p iff
	// distance(p, q) < Epsilon (strictly: a point exactly at Epsilon is not
	// a neighbor). Must be >= 0; 0 is meaningful (every neighborhood is
	// empty and every point becomes a singleton cluster), so the zero value
	// is not rewritten. DefaultConfig sets 1.
	Epsilon float64

	// MinPts is the minimum number of neighbors (excluding the point itself)
	// a point needs to be a core point. Must be >= 0. Set to 0 to default
	// to 1, under which any point with a neighbor is a core point.
	MinPts int

	// Metric is the distance function used for neighborhood queries and
	// reachability values. Built-in: EuclideanMetric, ManhattanMetric,
	// ChebyshevMetric, MinkowskiMetric. Use DistanceFunc to wrap a custom
	// function. Default: EuclideanMetric.
	Metric DistanceMetric

	// Queue constructs the seed priority queue used during frontier
	// expansion; a fresh queue is created for every cluster. Default: an
	// indexed binary heap with ties broken by ascending point index.
	Queue func() PriorityQueue

	// PrecomputeDistances computes the full pairwise distance matrix up
	// front instead of evaluating the metric on the fly. O(n²) memory, each
	// distance evaluated once; the clustering result is identical.
	// Ignored by RunPrecomputed. Default: false.
	PrecomputeDistances bool

	// Workers controls the number of goroutines used to precompute the
	// distance matrix. Only used when PrecomputeDistances is set.
	// 0 means use runtime.NumCPU(). Default: 0 (auto).
	Workers int
}

// DefaultConfig returns a Config with reasonable defaults.
func DefaultConfig() Config {
	return Config{
		Epsilon: 1,
		MinPts:  1,
		Metric:  EuclideanMetric{},
	}
}

// applyDefaults fills in zero-valued config fields with their defaults.
func applyDefaults(cfg *Config) {
	if cfg.MinPts == 0 {
		cfg.MinPts = 1
	}
	if cfg.Metric == nil {
		cfg.Metric = EuclideanMetric{}
	}
	if cfg.Queue == nil {
		cfg.Queue = newSeedQueue
	}
	if cfg.Workers == 0 {
		cfg.Workers = runtime.NumCPU()
	}
}

// validateConfig checks that cfg fields are valid and returns a descriptive
// error (wrapping ErrInvalidInput) if not.
func validateConfig(cfg *Config) error {
	if math.IsNaN(cfg.Epsilon) || cfg.Epsilon < 0 {
		return fmt.Errorf("%w: Epsilon must be >= 0, got %v", ErrInvalidInput, cfg.Epsilon)
	}
	if cfg.MinPts < 0 {
		return fmt.Errorf("%w: MinPts must be >= 0 (0 means default to 1), got %d", ErrInvalidInput, cfg.MinPts)
	}
	return nil
}

// Result contains the output of an OPTICS run.
type Result struct {
	// Ordering is the density-based visitation order: every point index
	// appears exactly once. Concatenating Clusters in discovery order
	// reproduces it.
	Ordering []int

	// Clusters partitions the point indices: each cluster holds the points
	// swept up by one frontier expansion, in the order they were visited.
	// Points that never became reachable from a core point appear as
	// singleton clusters.
	Clusters [][]int

	// Reachability[i] is point i's reachability distance: the smallest
	// max(coreDist(p), dist(p, i)) over the core points p that discovered i
	// before i was visited. +Inf means i was never discovered via
	// relaxation (it seeded its own cluster).
	Reachability []float64

	// CoreDistances[i] is point i's core distance, or +Inf if i had fewer
	// than MinPts neighbors at visitation time (not a core point).
	CoreDistances []float64
}

// PlotEntry is one step of the reachability plot: a point index paired with
// the reachability distance recorded when the point was visited.
type PlotEntry struct {
	Point        int
	Reachability float64
}

// Defined reports whether the entry carries a reachability value. The first
// point of each cluster has none: it was not discovered via relaxation.
func (e PlotEntry) Defined() bool { return !math.IsInf(e.Reachability, 1) }

// ReachabilityPlot re-projects the run output into the reachability plot:
// the visitation ordering paired with each point's frozen reachability value.
func (r *Result) ReachabilityPlot() []PlotEntry {
	plot := make([]PlotEntry, len(r.Ordering))
	for i, p := range r.Ordering {
		plot[i] = PlotEntry{Point: p, Reachability: r.Reachability[p]}
	}
	return plot
}

// Run performs OPTICS clustering on the given points. Each element is a
// point (float64 slice); points are identified by their index in data.
// An empty or nil dataset yields an empty Result without error.
func Run(data [][]float64, cfg Config) (*Result, error) {
	applyDefaults(&cfg)
	if err := validateConfig(&cfg); err != nil {
		return nil, err
	}

	n := len(data)
	if n == 0 {
		return emptyResult(0), nil
	}

	var dist func(i, j int) float64
	if cfg.PrecomputeDistances {
		matrix := PairwiseDistancesParallel(data, cfg.Metric, cfg.Workers)
		dist = func(i, j int) float64 { return matrix[i*n+j] }
	} else {
		metric := cfg.Metric
		dist = func(i, j int) float64 { return metric.Distance(data[i], data[j]) }
	}

	return newTraversal(n, dist, cfg).run(), nil
}

// RunPrecomputed performs OPTICS on a precomputed distance matrix.
// distMatrix is a flat []float64 of length n×n in row-major order, where
// distMatrix[i*n+j] is the distance between points i and j. The Config.Metric
// field is ignored since distances are already computed.
func RunPrecomputed(distMatrix []float64, n int, cfg Config) (*Result, error) {
	applyDefaults(&cfg)
	if err := validateConfig(&cfg); err != nil {
		return nil, err
	}

	if n < 0 {
		return nil, fmt.Errorf("%w: n must be >= 0, got %d", ErrInvalidInput, n)
	}
	if len(distMatrix) != n*n {
		return nil, fmt.Errorf("%w: distMatrix length %d does not match n*n = %d (n=%d)",
			ErrInvalidInput, len(distMatrix), n*n, n)
	}

	if n == 0 {
		return emptyResult(0), nil
	}

	dist := func(i, j int) float64 { return distMatrix[i*n+j] }
	return newTraversal(n, dist, cfg).run(), nil
}

// emptyResult returns a Result with empty (but non-nil) outputs for n points.
func emptyResult(n int) *Result {
	r := &Result{
		Ordering:      make([]int, 0, n),
		Clusters:      [][]int{},
		Reachability:  make([]float64, n),
		CoreDistances: make([]float64, n),
	}
	for i := 0; i < n; i++ {
		r.Reachability[i] = math.Inf(1)
		r.CoreDistances[i] = math.Inf(1)
	}
	return r
}
