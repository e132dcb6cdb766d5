package optics

import "math"

// DistanceMetric measures the dissimilarity of two points. Implementations
// must return a non-negative value and must be deterministic: the traversal
// order (and therefore the clustering) is only reproducible if the metric is.
//
// All built-in metrics operate over the shared coordinate prefix of the two
// points: when dimensionalities differ, the extra coordinates of the longer
// point are ignored rather than rejected. A custom metric is free to replace
// that policy.
type DistanceMetric interface {
	Distance(a, b []float64) float64
}

// DistanceFunc adapts a plain function into a DistanceMetric.
type DistanceFunc func(a, b []float64) float64

func (f DistanceFunc) Distance(a, b []float64) float64 { return f(a, b) }

// sharedDims returns the length of the coordinate prefix common to a and b.
func sharedDims(a, b []float64) int {
	if len(a) < len(b) {
		return len(a)
	}
	return len(b)
}

// EuclideanMetric computes the Euclidean (L2) distance.
type EuclideanMetric struct{}

func (EuclideanMetric) Distance(a, b []float64) float64 {
	var sum float64
	for i := 0; i < sharedDims(a, b); i++ {
		d := a[i] - b[i]
		sum += d * d
	}
	return math.Sqrt(sum)
}

// ManhattanMetric computes the Manhattan (L1 / city-block) distance.
type ManhattanMetric struct{}

func (ManhattanMetric) Distance(a, b []float64) float64 {
	var sum float64
	for i := 0; i < sharedDims(a, b); i++ {
		sum += math.Abs(a[i] - b[i])
	}
	return sum
}

// ChebyshevMetric computes the Chebyshev (L-infinity) distance.
type ChebyshevMetric struct{}

func (ChebyshevMetric) Distance(a, b []float64) float64 {
	var maxVal float64
	for i := 0; i < sharedDims(a, b); i++ {
		if v := math.Abs(a[i] - b[i]); v > maxVal {
			maxVal = v
		}
	}
	return maxVal
}

// MinkowskiMetric computes the Minkowski distance parameterized by P.
// P must be >= 1. Panics if P < 1.
type MinkowskiMetric struct {
	P float64
}

func (m MinkowskiMetric) Distance(a, b []float64) float64 {
	if m.P < 1 {
		panic("MinkowskiMetric: P must be >= 1")
	}
	var sum float64
	for i := 0; i < sharedDims(a, b); i++ {
		sum += math.Pow(math.Abs(a[i]-b[i]), m.P)
	}
	return math.Pow(sum, 1.0/m.P)
}

// PairwiseDistances computes the full n×n distance matrix for the given
// points. Returns a flat []float64 of length n×n in row-major order, suitable
// for RunPrecomputed.
func PairwiseDistances(points [][]float64, metric DistanceMetric) []float64 {
	n := len(points)
	result := make([]float64, n*n)

	for i := 0; i < n; i++ {
		for j := i + 1; j < n; j++ {
			d := metric.Distance(points[i], points[j])
			result[i*n+j] = d
			result[j*n+i] = d
		}
	}

	return result
}
