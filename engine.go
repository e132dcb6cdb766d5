package optics

import "math"

// traversal holds the per-run state of one OPTICS pass. A traversal is built
// fresh for every call to Run/RunPrecomputed and never shared, so the engine
// itself needs no locking.
type traversal struct {
	n       int
	dist    func(i, j int) float64
	epsilon float64
	minPts  int
	queue   func() PriorityQueue

	processed []bool
	result    *Result
}

func newTraversal(n int, dist func(i, j int) float64, cfg Config) *traversal {
	return &traversal{
		n:         n,
		dist:      dist,
		epsilon:   cfg.Epsilon,
		minPts:    cfg.MinPts,
		queue:     cfg.Queue,
		processed: make([]bool, n),
		result:    emptyResult(n),
	}
}

// run performs the outer traversal loop: every still-unprocessed point in
// dataset order opens a new cluster, and, if it is a core point, expands a
// frontier that sweeps its density-connected region into the same cluster.
func (t *traversal) run() *Result {
	for pointID := 0; pointID < t.n; pointID++ {
		if t.processed[pointID] {
			continue
		}
		t.result.Clusters = append(t.result.Clusters, nil)
		cluster := len(t.result.Clusters) - 1

		neighbors := t.visit(pointID, cluster)
		coreDist := t.result.CoreDistances[pointID]
		if math.IsInf(coreDist, 1) {
			continue // not a core point; the cluster stays a singleton
		}

		queue := t.queue()
		t.relax(pointID, coreDist, neighbors, queue)
		t.expand(cluster, queue)
	}
	return t.result
}

// visit marks pointID processed, appends it to the open cluster and to the
// ordering, and evaluates its neighborhood and core distance. Each point is
// visited exactly once per run.
func (t *traversal) visit(pointID, cluster int) []int {
	t.processed[pointID] = true
	t.result.Clusters[cluster] = append(t.result.Clusters[cluster], pointID)
	t.result.Ordering = append(t.result.Ordering, pointID)

	neighbors := t.regionQuery(pointID)
	t.result.CoreDistances[pointID] = t.coreDistance(pointID, neighbors)
	return neighbors
}

// regionQuery returns every other point strictly within epsilon of pointID,
// by exhaustive scan. A point exactly at epsilon is not a neighbor.
func (t *traversal) regionQuery(pointID int) []int {
	var neighbors []int
	for j := 0; j < t.n; j++ {
		if j != pointID && t.dist(pointID, j) < t.epsilon {
			neighbors = append(neighbors, j)
		}
	}
	return neighbors
}

// coreDistance returns pointID's core distance given its epsilon
// neighborhood, or +Inf if the point has fewer than minPts neighbors and is
// not a core point. The minimum is seeded with epsilon so the result stays
// bounded even for an empty qualifying neighborhood.
func (t *traversal) coreDistance(pointID int, neighbors []int) float64 {
	if len(neighbors) < t.minPts {
		return math.Inf(1)
	}
	coreDist := t.epsilon
	for _, nb := range neighbors {
		if d := t.dist(pointID, nb); d < coreDist {
			coreDist = d
		}
	}
	return coreDist
}

// relax updates the seed queue with the neighbors of core point p: each
// unprocessed neighbor's reachability candidate is max(coreDist(p), dist).
// Undiscovered neighbors enter the queue at that priority; already queued
// neighbors are lowered (remove then insert) when the candidate is strictly
// smaller. Reachability values only ever decrease while a point sits in the
// frontier, and freeze once the point is visited.
func (t *traversal) relax(p int, coreDist float64, neighbors []int, queue PriorityQueue) {
	reach := t.result.Reachability
	for _, nb := range neighbors {
		if t.processed[nb] {
			continue
		}
		candidate := t.dist(p, nb)
		if coreDist > candidate {
			candidate = coreDist
		}
		switch {
		case math.IsInf(reach[nb], 1):
			reach[nb] = candidate
			queue.Insert(nb, candidate)
		case candidate < reach[nb]:
			reach[nb] = candidate
			queue.Remove(nb)
			queue.Insert(nb, candidate)
		}
	}
}

// expand drains the seed queue, always consuming the current least-
// reachability candidate. The ordered frontier is re-read before every
// consumption so that insertions and priority drops made by the relaxation
// of freshly visited core points are visible immediately. Every consumption
// either visits a new point or skips an already-processed entry, so the loop
// terminates after at most n visits.
func (t *traversal) expand(cluster int, queue PriorityQueue) {
	for queue.Len() > 0 {
		pointID := queue.Ordered()[0]
		queue.Remove(pointID)
		if t.processed[pointID] {
			continue
		}

		neighbors := t.visit(pointID, cluster)
		coreDist := t.result.CoreDistances[pointID]
		if !math.IsInf(coreDist, 1) {
			t.relax(pointID, coreDist, neighbors, queue)
		}
	}
}
