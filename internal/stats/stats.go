// Package stats provides the pure aggregation functions behind every report
// section. All functions are total: empty input yields the neutral zero
// summary, never an error or a division by zero.
package stats

import "sort"

// BucketCategories are the score buckets shown in distribution displays.
// Bucket 0 is the "not applicable" sentinel and is intentionally included.
var BucketCategories = []int{0, 1, 2, 3, 4, 5}

// Valid filters out the "not applicable" sentinel (value 0) and anything
// below it.
func Valid(responses []float64) []float64 {
	out := make([]float64, 0, len(responses))
	for _, v := range responses {
		if v > 0 {
			out = append(out, v)
		}
	}
	return out
}

// Average returns the arithmetic mean, 0 for an empty slice.
func Average(values []float64) float64 {
	if len(values) == 0 {
		return 0
	}
	var sum float64
	for _, v := range values {
		sum += v
	}
	return sum / float64(len(values))
}

// Median returns the middle element of the ascending sort. For even-length
// input it takes the lower-middle index rather than interpolating; this
// matches the historical report output and must not be "fixed" to a textbook
// median.
func Median(values []float64) float64 {
	if len(values) == 0 {
		return 0
	}
	sorted := make([]float64, len(values))
	copy(sorted, values)
	sort.Float64s(sorted)
	return sorted[(len(sorted)-1)/2]
}

// Min returns the smallest value, 0 for an empty slice.
func Min(values []float64) float64 {
	if len(values) == 0 {
		return 0
	}
	min := values[0]
	for _, v := range values[1:] {
		if v < min {
			min = v
		}
	}
	return min
}

// Max returns the largest value, 0 for an empty slice.
func Max(values []float64) float64 {
	if len(values) == 0 {
		return 0
	}
	max := values[0]
	for _, v := range values[1:] {
		if v > max {
			max = v
		}
	}
	return max
}

// BucketCounts counts responses whose floored value equals each category in
// BucketCategories. It runs over the full response set, sentinel included,
// because distribution displays show "not applicable" as its own bucket.
func BucketCounts(responses []float64) map[int]int {
	counts := make(map[int]int, len(BucketCategories))
	for _, cat := range BucketCategories {
		counts[cat] = 0
	}
	for _, v := range responses {
		bucket := int(v)
		if v < 0 {
			continue
		}
		if _, ok := counts[bucket]; ok {
			counts[bucket]++
		}
	}
	return counts
}

// ActiveBuckets returns the categories with a non-zero count, in ascending
// category order.
func ActiveBuckets(counts map[int]int) []int {
	active := make([]int, 0, len(BucketCategories))
	for _, cat := range BucketCategories {
		if counts[cat] > 0 {
			active = append(active, cat)
		}
	}
	return active
}

// Percentage returns count/total as a percentage, 0 when total is 0.
func Percentage(count, total int) float64 {
	if total == 0 {
		return 0
	}
	return float64(count) / float64(total) * 100
}

// Summary bundles the headline numbers for one response sequence.
type Summary struct {
	Total   int
	Valid   int
	Average float64
	Median  float64
	Min     float64
	Max     float64
}

// Summarize reduces a raw response sequence. When every response is the
// sentinel, the computation falls back to the full set so the result stays
// defined; callers must treat a zero average as "no meaningful data" for
// display, not as an error.
func Summarize(responses []float64) Summary {
	valid := Valid(responses)
	basis := valid
	if len(basis) == 0 {
		basis = responses
	}
	return Summary{
		Total:   len(responses),
		Valid:   len(valid),
		Average: Average(basis),
		Median:  Median(basis),
		Min:     Min(basis),
		Max:     Max(basis),
	}
}

// HasData reports whether the summary carries anything worth drawing.
func (s Summary) HasData() bool {
	return s.Total > 0 && s.Average > 0
}
