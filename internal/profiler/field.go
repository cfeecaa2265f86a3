package profiler

import (
	"math"
	"strings"
)

// FieldType is the inferred value domain of a column.
type FieldType string

const (
	TypeString  FieldType = "string"
	TypeInteger FieldType = "integer"
	TypeFloat   FieldType = "float"
)

// FieldCase classifies the letter casing of a string column.
type FieldCase string

const (
	CaseUpper FieldCase = "upper"
	CaseLower FieldCase = "lower"
	CaseMixed FieldCase = "mixed"
)

// FieldProfile accumulates and reports everything known about one column.
// It is created at analysis start, fed once per qualifying record through
// its frequency table, and finalized once at the end. A profile belongs to
// exactly one analysis run.
type FieldProfile struct {
	FieldNumber int
	Name        string
	Type        FieldType

	KnownValues   int // distinct values tracked
	UniqueValues  int // tracked values occurring exactly once
	WrongFieldCnt int // records excluded for a field-count mismatch

	Min string
	Max string

	// String statistics.
	Case       FieldCase
	MinLength  int
	MaxLength  int
	MeanLength float64

	// Numeric statistics (population formulas).
	Mean     float64
	Median   float64
	Variance float64
	StdDev   float64

	// Overflowed mirrors the frequency table's cap flag; it is surfaced
	// as a non-fatal warning on this field, never as a run failure.
	Overflowed bool

	// AllUnique marks the "no concentration to show" sentinel: every
	// tracked value occurred exactly once across more than one record,
	// so TopValues is suppressed instead of dumping the full cardinality.
	AllUnique bool
	TopValues []ValueCount

	Freq *FrequencyTable
}

func NewFieldProfile(number int, name string, maxFreq int) *FieldProfile {
	return &FieldProfile{
		FieldNumber: number,
		Name:        name,
		Freq:        NewFrequencyTable(maxFreq),
	}
}

// isBlank reports whether a value is empty or whitespace-only. Blanks are
// tracked in the frequency table but sit out type inference and all
// min/max, length, case, and numeric statistics.
func isBlank(s string) bool {
	return strings.TrimSpace(s) == ""
}

// finalize derives every reported statistic from the tracked value set.
// Working off the frequency table rather than the raw stream means the
// distinct-key cap bounds the extremes too: a capped field reports min/max
// over the tracked subset, not the true file-wide extremes.
func (f *FieldProfile) finalize(recordCount int) {
	items := f.Freq.Items()
	f.Overflowed = f.Freq.Overflowed
	f.KnownValues = len(items)

	allUnique := len(items) > 0
	for _, it := range items {
		if it.Count == 1 {
			f.UniqueValues++
		} else {
			allUnique = false
		}
	}
	if allUnique && recordCount > 1 {
		f.AllUnique = true
	} else {
		f.TopValues = items
	}

	nonBlank := items[:0:0]
	for _, it := range items {
		if !isBlank(it.Value) {
			nonBlank = append(nonBlank, it)
		}
	}

	f.Type = inferType(nonBlank)
	switch f.Type {
	case TypeInteger, TypeFloat:
		f.finalizeNumeric(nonBlank)
	default:
		f.finalizeString(nonBlank)
	}
}

func (f *FieldProfile) finalizeNumeric(items []ValueCount) {
	nums := numericCounts(items)
	if len(nums) == 0 {
		return
	}

	minNC, maxNC := nums[0], nums[0]
	for _, nc := range nums[1:] {
		if nc.val < minNC.val {
			minNC = nc
		}
		if nc.val > maxNC.val {
			maxNC = nc
		}
	}
	f.Min, f.Max = minNC.raw, maxNC.raw

	if mean, ok := weightedMean(nums); ok {
		f.Mean = mean
		f.Variance, f.StdDev = weightedVariance(nums, mean)
	}
	if median, ok := weightedMedian(nums); ok {
		f.Median = median
	}
}

func (f *FieldProfile) finalizeString(items []ValueCount) {
	if len(items) == 0 {
		return
	}

	f.Min, f.Max = items[0].Value, items[0].Value
	var lenSum, n int
	f.MinLength = len(items[0].Value)
	for _, it := range items {
		if it.Value < f.Min {
			f.Min = it.Value
		}
		if it.Value > f.Max {
			f.Max = it.Value
		}
		l := len(it.Value)
		if l < f.MinLength {
			f.MinLength = l
		}
		if l > f.MaxLength {
			f.MaxLength = l
		}
		lenSum += l * it.Count
		n += it.Count
	}
	if n > 0 {
		f.MeanLength = math.Round(float64(lenSum)/float64(n)*10) / 10
	}
	f.Case = classifyCase(items)
}

// classifyCase reports upper when every alphabetic value is all-uppercase,
// lower when every alphabetic value is all-lowercase, mixed otherwise.
func classifyCase(items []ValueCount) FieldCase {
	sawUpper, sawLower := false, false
	for _, it := range items {
		upper := strings.ToUpper(it.Value)
		lower := strings.ToLower(it.Value)
		if upper == lower {
			continue // no letters to classify
		}
		switch it.Value {
		case upper:
			sawUpper = true
		case lower:
			sawLower = true
		default:
			return CaseMixed
		}
	}
	switch {
	case sawUpper && !sawLower:
		return CaseUpper
	case sawLower && !sawUpper:
		return CaseLower
	default:
		return CaseMixed
	}
}
