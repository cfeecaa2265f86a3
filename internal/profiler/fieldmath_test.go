package profiler

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func nc(pairs ...[2]float64) []numCount {
	nums := make([]numCount, 0, len(pairs))
	for _, p := range pairs {
		nums = append(nums, numCount{val: p[0], count: int(p[1])})
	}
	return nums
}

func TestWeightedMedian(t *testing.T) {
	tests := []struct {
		name string
		nums []numCount
		want float64
		ok   bool
	}{
		{"empty", nil, 0, false},
		{"single value", nc([2]float64{3, 1}), 3, true},
		{"single value twice", nc([2]float64{3, 2}), 3, true},
		{"single value thrice", nc([2]float64{3, 3}), 3, true},
		{"two singles", nc([2]float64{1, 1}, [2]float64{2, 1}), 1.5, true},
		{
			"even count of singles",
			nc([2]float64{1, 1}, [2]float64{2, 1}, [2]float64{6, 1}, [2]float64{5, 1}, [2]float64{4, 1}, [2]float64{3, 1}),
			3.5, true,
		},
		{
			"odd count of singles",
			nc([2]float64{1, 1}, [2]float64{2, 1}, [2]float64{5, 1}, [2]float64{4, 1}, [2]float64{3, 1}),
			3, true,
		},
		{
			"even total with triples",
			nc([2]float64{1, 3}, [2]float64{2, 3}, [2]float64{6, 3}, [2]float64{5, 3}, [2]float64{4, 3}, [2]float64{3, 3}),
			3.5, true,
		},
		{
			"odd total with skew",
			nc([2]float64{1, 10}, [2]float64{2, 4}, [2]float64{6, 3}, [2]float64{5, 2}, [2]float64{4, 1}, [2]float64{3, 1}),
			2, true,
		},
		{
			"even total with skew",
			nc([2]float64{1, 10}, [2]float64{2, 4}, [2]float64{6, 3}, [2]float64{5, 2}, [2]float64{4, 1}),
			1.5, true,
		},
		{"negative and positive", nc([2]float64{-1, 1}, [2]float64{1, 1}), 0, true},
		{"floats", nc([2]float64{0.1, 1}, [2]float64{0.3, 1}), 0.2, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := weightedMedian(tt.nums)
			require.Equal(t, tt.ok, ok)
			if ok {
				assert.InDelta(t, tt.want, got, 1e-9)
			}
		})
	}
}

func TestWeightedMean(t *testing.T) {
	tests := []struct {
		name string
		nums []numCount
		want float64
		ok   bool
	}{
		{"empty", nil, 0, false},
		{"weighted", nc([2]float64{10, 4}, [2]float64{100, 86}), 96, true},
		{"tuples", nc([2]float64{10, 4}, [2]float64{15, 4}), 12.5, true},
		{"floats", nc([2]float64{2.5, 4}, [2]float64{10, 1}), 4, true},
		{
			"eleven singles",
			nc([2]float64{2, 1}, [2]float64{3, 1}, [2]float64{9, 1}, [2]float64{12, 1}, [2]float64{13, 1},
				[2]float64{15, 1}, [2]float64{17, 1}, [2]float64{19, 1}, [2]float64{22, 1}, [2]float64{23, 1}, [2]float64{25, 1}),
			14.5455, true,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := weightedMean(tt.nums)
			require.Equal(t, tt.ok, ok)
			if ok {
				assert.InDelta(t, tt.want, got, 1e-4)
			}
		})
	}
}

func TestWeightedVariance(t *testing.T) {
	tests := []struct {
		name       string
		nums       []numCount
		wantVar    float64
		wantStdDev float64
	}{
		{"single value", nc([2]float64{2, 1}), 0, 0},
		{"single float repeated", nc([2]float64{2.5, 2}), 0, 0},
		{"three singles", nc([2]float64{2, 1}, [2]float64{3, 1}, [2]float64{4, 1}), 0.67, 0.82},
		{
			"eleven singles",
			nc([2]float64{2, 1}, [2]float64{3, 1}, [2]float64{9, 1}, [2]float64{12, 1}, [2]float64{13, 1},
				[2]float64{15, 1}, [2]float64{17, 1}, [2]float64{19, 1}, [2]float64{22, 1}, [2]float64{23, 1}, [2]float64{25, 1}),
			53.88, 7.34,
		},
		{
			"weighted",
			nc([2]float64{2, 10}, [2]float64{3, 15}, [2]float64{9, 10}, [2]float64{12, 7}, [2]float64{13, 4},
				[2]float64{15, 2}, [2]float64{17, 1}, [2]float64{19, 1}, [2]float64{22, 1}, [2]float64{23, 1}, [2]float64{25, 1}),
			37.11, 6.09,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mean, ok := weightedMean(tt.nums)
			require.True(t, ok)
			variance, stddev := weightedVariance(tt.nums, mean)
			assert.InDelta(t, tt.wantVar, variance, 0.005)
			assert.InDelta(t, tt.wantStdDev, stddev, 0.005)
		})
	}
}

func TestNumericCountsSkipsUnparsable(t *testing.T) {
	nums := numericCounts([]ValueCount{
		{Value: "2", Count: 2},
		{Value: "bar", Count: 2},
		{Value: "3.5", Count: 1},
	})
	require.Len(t, nums, 2)
	assert.Equal(t, 2.0, nums[0].val)
	assert.Equal(t, 3.5, nums[1].val)
}

func TestReferenceColumn(t *testing.T) {
	// Values [8, 6, 6, 2, 19] from a known-good reference run.
	nums := nc([2]float64{8, 1}, [2]float64{6, 2}, [2]float64{2, 1}, [2]float64{19, 1})

	mean, ok := weightedMean(nums)
	require.True(t, ok)
	assert.InDelta(t, 8.2, mean, 1e-9)

	median, ok := weightedMedian(nums)
	require.True(t, ok)
	assert.InDelta(t, 6.0, median, 1e-9)

	variance, stddev := weightedVariance(nums, mean)
	assert.InDelta(t, 32.96, variance, 1e-9)
	assert.InDelta(t, 5.74108003776, stddev, 1e-9)
}
