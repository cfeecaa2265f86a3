package profiler

import "strconv"

// inferType classifies a column from its non-blank tracked values: integer
// when every value parses as a base-10 integer, float when every value
// parses as a decimal number but not all as integers, string otherwise.
// Blank values never disqualify a numeric classification; the caller
// filters them out before the vote. A column with no non-blank values is
// reported as string.
func inferType(items []ValueCount) FieldType {
	if len(items) == 0 {
		return TypeString
	}
	allInt, allNum := true, true
	for _, it := range items {
		if allInt {
			if _, err := strconv.ParseInt(it.Value, 10, 64); err != nil {
				allInt = false
			}
		}
		if _, err := strconv.ParseFloat(it.Value, 64); err != nil {
			allNum = false
			break
		}
	}
	switch {
	case allInt:
		return TypeInteger
	case allNum:
		return TypeFloat
	default:
		return TypeString
	}
}
