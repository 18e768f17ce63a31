package stats

// Histogram buckets integer outcomes into equal-width bins. Edges has one
// more element than Counts; bin i spans [Edges[i], Edges[i+1]), with the
// last bin closed on the right.
type Histogram struct {
	Edges  []float64 `json:"edges"`
	Counts []int     `json:"counts"`
}

// NewHistogram buckets xs into bins equal-width bins spanning the sample
// range. Empty input or a non-positive bin count yields an empty histogram.
func NewHistogram(xs []int, bins int) Histogram {
	if len(xs) == 0 || bins <= 0 {
		return Histogram{}
	}

	min, max := xs[0], xs[0]
	for _, x := range xs {
		if x < min {
			min = x
		}
		if x > max {
			max = x
		}
	}

	// Degenerate sample: everything lands in one bin.
	if min == max {
		return Histogram{
			Edges:  []float64{float64(min), float64(min + 1)},
			Counts: []int{len(xs)},
		}
	}

	width := float64(max-min) / float64(bins)
	edges := make([]float64, bins+1)
	for i := range edges {
		edges[i] = float64(min) + width*float64(i)
	}

	counts := make([]int, bins)
	for _, x := range xs {
		idx := int(float64(x-min) / width)
		if idx >= bins {
			idx = bins - 1
		}
		counts[idx]++
	}

	return Histogram{Edges: edges, Counts: counts}
}

// Centers returns the midpoint of each bin, for plotting.
func (h Histogram) Centers() []float64 {
	if len(h.Counts) == 0 {
		return nil
	}
	centers := make([]float64, len(h.Counts))
	for i := range centers {
		centers[i] = (h.Edges[i] + h.Edges[i+1]) / 2
	}
	return centers
}

// MaxCount returns the largest bin count.
func (h Histogram) MaxCount() int {
	max := 0
	for _, c := range h.Counts {
		if c > max {
			max = c
		}
	}
	return max
}
