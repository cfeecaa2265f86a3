package sampler

import (
	"bufio"
	"bytes"
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"strings"

	"csvprobe/internal/dialect"
)

// maxLineBytes is the per-record buffer cap for the line scanner.
const maxLineBytes = 1 << 20

// UnreadableError reports a named input source that could not be opened
// or read. It is fatal: the run aborts with no partial result.
type UnreadableError struct {
	Name string
	Err  error
}

func (e *UnreadableError) Error() string {
	return fmt.Sprintf("cannot read source %s: %v", e.Name, e.Err)
}

func (e *UnreadableError) Unwrap() error {
	return e.Err
}

// Source is one ordered input: a named file, or a pre-opened stream such
// as standard input.
type Source struct {
	Name string
	r    io.Reader
}

// FileSource names a file to be opened when sampling reaches it.
func FileSource(path string) Source {
	return Source{Name: path}
}

// ReaderSource wraps an already-open stream.
func ReaderSource(name string, r io.Reader) Source {
	return Source{Name: name, r: r}
}

// Sample is the bounded, possibly truncated sequence of raw records read
// from the concatenated sources. IsEstimated is true whenever the sources
// held more records than were read.
type Sample struct {
	Lines       []string
	IsEstimated bool
}

// Read pulls at most limit raw records from the sources in order,
// treating them as one logical stream. A negative limit reads everything.
// Reading stops the moment the limit is reached; remaining sources are
// not opened, and the sample is marked estimated even if those sources
// would have turned out to be empty. The optional progress callback
// fires once per source as it is finished or skipped.
func Read(sources []Source, limit int, terminator string, progress func(name string)) (*Sample, error) {
	s := &Sample{}
	for i, src := range sources {
		if limit >= 0 && len(s.Lines) >= limit {
			// Sources past the limit are presumed to hold records.
			s.IsEstimated = true
			if progress != nil {
				for _, rest := range sources[i:] {
					progress(rest.Name)
				}
			}
			break
		}
		if err := readSource(src, limit, terminator, s); err != nil {
			return nil, err
		}
		if progress != nil {
			progress(src.Name)
		}
	}
	return s, nil
}

func readSource(src Source, limit int, terminator string, s *Sample) error {
	r := src.r
	if r == nil {
		f, err := os.Open(src.Name)
		if err != nil {
			return &UnreadableError{Name: src.Name, Err: err}
		}
		defer f.Close()
		r = f
	}

	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), maxLineBytes)
	if terminator != "" && terminator != "\n" {
		scanner.Split(splitOn(terminator))
	} else {
		scanner.Split(bufio.ScanLines)
	}

	for scanner.Scan() {
		if limit >= 0 && len(s.Lines) >= limit {
			s.IsEstimated = true
			return nil
		}
		s.Lines = append(s.Lines, strings.TrimSuffix(scanner.Text(), "\r"))
	}
	if err := scanner.Err(); err != nil {
		return &UnreadableError{Name: src.Name, Err: err}
	}
	return nil
}

// splitOn builds a bufio.SplitFunc for a custom record terminator.
func splitOn(terminator string) bufio.SplitFunc {
	sep := []byte(terminator)
	return func(data []byte, atEOF bool) (int, []byte, error) {
		if atEOF && len(data) == 0 {
			return 0, nil, nil
		}
		if i := bytes.Index(data, sep); i >= 0 {
			return i + len(sep), data[:i], nil
		}
		if atEOF {
			return len(data), data, nil
		}
		return 0, nil, nil
	}
}

// Records splits the sampled lines into records using the standard
// delimited-text reader configured from the dialect. Under QUOTE_NONE the
// quote character is literal data and a plain split is used instead.
func (s *Sample) Records(d dialect.Dialect) ([][]string, error) {
	if d.Quoting == dialect.QuoteNone {
		records := make([][]string, 0, len(s.Lines))
		for _, line := range s.Lines {
			records = append(records, strings.Split(line, string(d.Delimiter)))
		}
		return records, nil
	}

	r := csv.NewReader(strings.NewReader(strings.Join(s.Lines, "\n")))
	r.Comma = d.Delimiter
	r.FieldsPerRecord = -1
	r.LazyQuotes = true
	r.TrimLeadingSpace = d.SkipInitialSpace
	records, err := r.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("splitting records: %w", err)
	}
	return records, nil
}
