package alg

import "github.com/espsim/edgeplan/internal/model"

// NearestNeighborhoods restricts each station's candidate sites to its
// N/k nearest stations, itself included. Selection partitions each row
// instead of sorting it, so the returned indices are in no particular order.
// With k=1 the quota covers the whole row and every site stays a candidate.
func NearestNeighborhoods(table *model.DistanceTable, serverCount int) [][]int {
	n := table.Len()
	size := n / serverCount

	neighborhoods := make([][]int, n)
	for i := 0; i < n; i++ {
		row := table.Row(nil, i)
		indices := make([]int, n)
		for j := range indices {
			indices[j] = j
		}

		selectSmallest(row, indices, size)
		neighborhoods[i] = indices[:size]
	}

	return neighborhoods
}

// selectSmallest rearranges dists, and indices alongside it, so the k
// smallest distances occupy the first k positions. Median-of-three
// quickselect, average O(n).
func selectSmallest(dists []float64, indices []int, k int) {
	if k <= 0 || k >= len(dists) {
		return
	}

	lo, hi := 0, len(dists)-1
	for lo < hi {
		p := partition(dists, indices, lo, hi)
		switch {
		case p == k:
			return
		case p < k:
			lo = p + 1
		default:
			hi = p - 1
		}
	}
}

func partition(dists []float64, indices []int, lo, hi int) int {
	mid := lo + (hi-lo)/2
	if dists[mid] < dists[lo] {
		swapBoth(dists, indices, lo, mid)
	}
	if dists[hi] < dists[lo] {
		swapBoth(dists, indices, lo, hi)
	}
	if dists[hi] < dists[mid] {
		swapBoth(dists, indices, mid, hi)
	}
	swapBoth(dists, indices, mid, hi)

	pivot := dists[hi]
	store := lo
	for j := lo; j < hi; j++ {
		if dists[j] < pivot {
			swapBoth(dists, indices, store, j)
			store++
		}
	}
	swapBoth(dists, indices, store, hi)

	return store
}

func swapBoth(dists []float64, indices []int, i, j int) {
	dists[i], dists[j] = dists[j], dists[i]
	indices[i], indices[j] = indices[j], indices[i]
}
