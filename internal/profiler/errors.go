package profiler

// NoDataError reports an input with zero header and zero data records.
// Callers map it to the dedicated no-data exit status rather than a
// generic failure.
type NoDataError struct {
	Source string
}

func (e *NoDataError) Error() string {
	if e.Source == "" {
		return "no data available"
	}
	return "no data available in " + e.Source
}
