// Package optics implements the OPTICS (Ordering Points To Identify the
// Clustering Structure) density-based cluster ordering algorithm.
//
// OPTICS visits every point of a dataset in density-driven order, recording
// for each point a core distance (a density estimate) and a reachability
// distance (the distance at which it was first reached from an already
// visited core point). The visitation order plus the reachability values form
// the reachability plot, from which cluster structure can be read off
// directly. As a side effect the traversal yields a greedy partition of the
// points into clusters: every time the outer loop hits an unvisited point it
// opens a new cluster, and all points swept up by that point's frontier
// expansion join it. Points too sparse to ever become core points are emitted
// as singleton clusters rather than dropped.
//
// Basic usage:
//
//	cfg := optics.DefaultConfig()
//	cfg.Epsilon = 5
//	cfg.MinPts = 2
//	result, err := optics.Run(data, cfg)
//	// result.Clusters[k] is the k-th cluster's point indices
//	// result.Ordering is the full visitation order
//	// result.ReachabilityPlot() pairs the ordering with reachability values
//
// For precomputed distance matrices:
//
//	result, err := optics.RunPrecomputed(distMatrix, n, cfg)
//
// Neighborhood search is an exhaustive O(n) scan per point, so a full run
// costs O(n²) distance evaluations. Set Config.PrecomputeDistances to trade
// O(n²) memory for evaluating each pairwise distance exactly once (in
// parallel when Config.Workers > 1); the clustering result is identical.
package optics
