package profiler

import (
	"math"
	"sort"
	"strconv"
)

// numCount is a parsed numeric value weighted by its occurrence count.
type numCount struct {
	val   float64
	raw   string
	count int
}

// numericCounts parses the numeric members of a tracked value set,
// silently skipping anything unparsable.
func numericCounts(items []ValueCount) []numCount {
	nums := make([]numCount, 0, len(items))
	for _, it := range items {
		v, err := strconv.ParseFloat(it.Value, 64)
		if err != nil {
			continue
		}
		nums = append(nums, numCount{val: v, raw: it.Value, count: it.Count})
	}
	return nums
}

// weightedMean is the arithmetic average over the expanded value set.
func weightedMean(nums []numCount) (float64, bool) {
	var sum float64
	var n int
	for _, nc := range nums {
		sum += nc.val * float64(nc.count)
		n += nc.count
	}
	if n == 0 {
		return 0, false
	}
	return sum / float64(n), true
}

// weightedMedian is the middle value of the sorted expanded set, or the
// average of the two central values when the total count is even.
func weightedMedian(nums []numCount) (float64, bool) {
	if len(nums) == 0 {
		return 0, false
	}
	sorted := make([]numCount, len(nums))
	copy(sorted, nums)
	sort.Slice(sorted, func(i, j int) bool { return sorted[i].val < sorted[j].val })

	var n int
	for _, nc := range sorted {
		n += nc.count
	}
	if n == 0 {
		return 0, false
	}

	at := func(idx int) float64 {
		cum := 0
		for _, nc := range sorted {
			cum += nc.count
			if idx < cum {
				return nc.val
			}
		}
		return sorted[len(sorted)-1].val
	}

	if n%2 == 1 {
		return at(n / 2), true
	}
	return (at(n/2-1) + at(n/2)) / 2, true
}

// weightedVariance computes the population variance (denominator = count,
// not count-1) and its square root.
func weightedVariance(nums []numCount, mean float64) (variance, stddev float64) {
	var sum float64
	var n int
	for _, nc := range nums {
		d := nc.val - mean
		sum += d * d * float64(nc.count)
		n += nc.count
	}
	if n == 0 {
		return 0, 0
	}
	variance = sum / float64(n)
	return variance, math.Sqrt(variance)
}
