package profiler

import (
	"fmt"

	"go.uber.org/zap"

	"csvprobe/internal/config"
	"csvprobe/internal/dialect"
	"csvprobe/internal/sampler"
)

// FileProfile is the engine's sole output artifact: the file-level result
// plus one finalized FieldProfile per column.
type FileProfile struct {
	RecordCount int
	IsEstimated bool
	FieldCount  int
	Dialect     dialect.Dialect
	HasHeader   bool
	FormatType  string
	Fields      []*FieldProfile
}

// Analyzer runs one profiling pass over a set of input sources. It owns
// its accumulators exclusively; a single run is one blocking, synchronous
// computation with no concurrent writers.
type Analyzer struct {
	opts     config.Options
	log      *zap.Logger
	progress func(source string)
}

func NewAnalyzer(opts config.Options, log *zap.Logger) *Analyzer {
	if log == nil {
		log = zap.NewNop()
	}
	return &Analyzer{opts: opts, log: log}
}

// SetProgress registers a callback fired once per input source as
// sampling finishes or skips it.
func (a *Analyzer) SetProgress(fn func(source string)) {
	a.progress = fn
}

// Run samples the sources, settles the dialect and header, feeds every
// qualifying record through the per-field frequency tables, and composes
// the finalized FileProfile. Fatal errors abort with no partial result;
// malformed records and frequency overflow are tallied per field and
// never abort the run.
func (a *Analyzer) Run(sources []sampler.Source) (*FileProfile, error) {
	sample, err := sampler.Read(sources, a.opts.ReadLimit, a.opts.RecDelimiter, a.progress)
	if err != nil {
		return nil, err
	}
	if len(sample.Lines) == 0 {
		return nil, &NoDataError{Source: sourceNames(sources)}
	}

	det := dialect.NewDetector(a.log)
	d, err := det.Detect(sample.Lines, a.opts)
	if err != nil {
		return nil, err
	}

	records, err := sample.Records(d)
	if err != nil {
		return nil, err
	}
	if len(records) == 0 {
		return nil, &NoDataError{Source: sourceNames(sources)}
	}

	header := det.DetectHeader(records, a.opts.Header())

	data := records
	if header.HasHeader {
		data = records[1:]
	}
	recordCount := len(data)
	if header.HasHeader && recordCount == 0 {
		// A header-only file still counts its single record.
		recordCount = 1
	}

	fieldCount := modalFieldCount(data)
	if fieldCount == 0 {
		fieldCount = len(records[0])
	}

	fields := make([]*FieldProfile, fieldCount)
	for i := range fields {
		name := fmt.Sprintf("field_%d", i)
		if header.HasHeader && i < len(header.Header) {
			name = header.Header[i]
		}
		fields[i] = NewFieldProfile(i, name, a.opts.MaxFreq)
	}

	for _, rec := range data {
		if len(rec) != fieldCount {
			for _, f := range fields {
				f.WrongFieldCnt++
			}
			continue
		}
		for i, v := range rec {
			fields[i].Freq.Add(v)
		}
	}

	for _, f := range fields {
		f.finalize(recordCount)
		if f.Overflowed {
			a.log.Warn("frequency table overflowed, value tracking capped",
				zap.String("field", f.Name),
				zap.Int("cap", a.opts.MaxFreq))
		}
	}

	return &FileProfile{
		RecordCount: recordCount,
		IsEstimated: sample.IsEstimated,
		FieldCount:  fieldCount,
		Dialect:     d,
		HasHeader:   header.HasHeader,
		FormatType:  "csv",
		Fields:      fields,
	}, nil
}

// modalFieldCount is the most common record length; longer records win
// ties so truncated rows read as malformed rather than the norm.
func modalFieldCount(records [][]string) int {
	counts := make(map[int]int)
	for _, rec := range records {
		counts[len(rec)]++
	}
	mode, best := 0, 0
	for n, freq := range counts {
		if freq > best || (freq == best && n > mode) {
			mode, best = n, freq
		}
	}
	return mode
}

func sourceNames(sources []sampler.Source) string {
	if len(sources) == 1 {
		return sources[0].Name
	}
	names := ""
	for i, s := range sources {
		if i > 0 {
			names += ", "
		}
		names += s.Name
	}
	return names
}
