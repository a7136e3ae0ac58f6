package layout

import "sort"

// ClusterGroups sorts values and splits them wherever the distance between
// neighbours is at least gapThreshold. Every gap inside a group is smaller
// than the threshold and every gap between groups is at least the threshold.
// NaN and infinite values are ignored. The input slice is not modified.
func ClusterGroups(values []float64, gapThreshold float64) [][]float64 {
	sorted := make([]float64, 0, len(values))
	for _, v := range values {
		if isFinite(v) {
			sorted = append(sorted, v)
		}
	}
	if len(sorted) == 0 {
		return nil
	}
	sort.Float64s(sorted)

	var groups [][]float64
	start := 0
	for i := 1; i < len(sorted); i++ {
		if sorted[i]-sorted[i-1] >= gapThreshold {
			groups = append(groups, sorted[start:i:i])
			start = i
		}
	}
	groups = append(groups, sorted[start:])
	return groups
}

// ClusterPositions returns one representative per cluster, the cluster's
// smallest value, in ascending order. Empty input yields no clusters.
func ClusterPositions(values []float64, gapThreshold float64) []float64 {
	groups := ClusterGroups(values, gapThreshold)
	if len(groups) == 0 {
		return nil
	}
	reps := make([]float64, len(groups))
	for i, g := range groups {
		reps[i] = g[0]
	}
	return reps
}
