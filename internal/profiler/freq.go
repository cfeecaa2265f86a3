package profiler

import "sort"

// ValueCount pairs an observed value with its occurrence count.
type ValueCount struct {
	Value string
	Count int
}

// FrequencyTable is a bounded value-to-count distribution for one field.
// Once the distinct-key cap is reached no new keys are admitted, but keys
// already tracked keep accumulating counts. Eviction is deliberately not
// used: it would change which values get reported as known.
type FrequencyTable struct {
	counts     map[string]int
	maxKeys    int
	Overflowed bool
}

func NewFrequencyTable(maxKeys int) *FrequencyTable {
	return &FrequencyTable{
		counts:  make(map[string]int),
		maxKeys: maxKeys,
	}
}

// Add records one occurrence of value, subject to the distinct-key cap.
func (t *FrequencyTable) Add(value string) {
	if _, ok := t.counts[value]; ok {
		t.counts[value]++
		return
	}
	if len(t.counts) >= t.maxKeys {
		t.Overflowed = true
		return
	}
	t.counts[value] = 1
}

// Len is the number of distinct keys actually tracked.
func (t *FrequencyTable) Len() int {
	return len(t.counts)
}

// Count returns the occurrence count for value, zero if untracked.
func (t *FrequencyTable) Count(value string) int {
	return t.counts[value]
}

// Items returns the tracked pairs ordered by descending count, ties broken
// by ascending value. The order is total, so repeated runs over identical
// input produce identical output.
func (t *FrequencyTable) Items() []ValueCount {
	items := make([]ValueCount, 0, len(t.counts))
	for v, c := range t.counts {
		items = append(items, ValueCount{Value: v, Count: c})
	}
	sort.Slice(items, func(i, j int) bool {
		if items[i].Count != items[j].Count {
			return items[i].Count > items[j].Count
		}
		return items[i].Value < items[j].Value
	})
	return items
}
