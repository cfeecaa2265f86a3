package dialect

import (
	"strconv"
	"strings"

	"go.uber.org/zap"

	"csvprobe/internal/config"
)

// sniffRecords is how many sampled records the heuristics look at.
const sniffRecords = 20

// candidateDelimiters is the ranked set tried by delimiter sniffing.
// Earlier candidates win ties.
var candidateDelimiters = []rune{',', '\t', '|', ';', ':'}

// Detector infers a Dialect and a HeaderState from sampled records.
// Explicitly configured attributes short-circuit inference.
type Detector struct {
	log *zap.Logger
}

func NewDetector(log *zap.Logger) *Detector {
	if log == nil {
		log = zap.NewNop()
	}
	return &Detector{log: log}
}

// Detect produces the single authoritative Dialect for a run from the raw
// sampled lines and any overrides.
func (d *Detector) Detect(lines []string, opts config.Options) (Dialect, error) {
	sample := lines
	if len(sample) > sniffRecords {
		sample = sample[:sniffRecords]
	}

	dia := Dialect{
		QuoteChar:      '"',
		LineTerminator: "\n",
	}
	if opts.QuoteChar != "" {
		dia.QuoteChar = []rune(opts.QuoteChar)[0]
	}
	if opts.EscapeChar != "" {
		dia.EscapeChar = []rune(opts.EscapeChar)[0]
	}
	if opts.RecDelimiter != "" {
		dia.LineTerminator = opts.RecDelimiter
	}

	if opts.Delimiter != "" {
		dia.Delimiter = []rune(opts.Delimiter)[0]
	} else {
		dia.Delimiter = sniffDelimiter(sample)
		d.log.Debug("sniffed delimiter", zap.String("delimiter", string(dia.Delimiter)))
	}

	if opts.Quoting != "" {
		q, err := ParseQuoting(opts.Quoting)
		if err != nil {
			return Dialect{}, err
		}
		dia.Quoting = q
	} else {
		dia.Quoting = sniffQuoting(sample, dia.Delimiter, dia.QuoteChar)
		d.log.Debug("sniffed quoting", zap.String("quoting", dia.Quoting.String()))
	}

	if dia.Quoting != QuoteNone {
		qq := string(dia.QuoteChar) + string(dia.QuoteChar)
		for _, line := range sample {
			if strings.Contains(line, qq) {
				dia.DoubleQuote = true
				break
			}
		}
	}

	return dia, nil
}

// sniffDelimiter tries each ranked candidate and keeps the one producing a
// consistent multi-field count across the most sampled records.
func sniffDelimiter(sample []string) rune {
	best := ','
	bestScore := 0
	for _, cand := range candidateDelimiters {
		counts := make(map[int]int)
		for _, line := range sample {
			counts[strings.Count(line, string(cand))+1]++
		}
		fields, score := 0, 0
		for n, freq := range counts {
			if freq > score || (freq == score && n > fields) {
				fields, score = n, freq
			}
		}
		if fields < 2 {
			continue
		}
		if score > bestScore {
			best, bestScore = cand, score
		}
	}
	return best
}

// sniffQuoting classifies the file as fully quoted, unquoted, or quoted
// only where needed, by inspecting naively split sample fields.
func sniffQuoting(sample []string, delim, quoteChar rune) Quoting {
	qc := string(quoteChar)
	quoted, unquoted := 0, 0
	sawQuote := false
	for _, line := range sample {
		for _, f := range strings.Split(line, string(delim)) {
			if f == "" {
				continue
			}
			if strings.Contains(f, qc) {
				sawQuote = true
			}
			if len(f) >= 2 && strings.HasPrefix(f, qc) && strings.HasSuffix(f, qc) {
				quoted++
			} else {
				unquoted++
			}
		}
	}
	switch {
	case quoted > 0 && unquoted == 0:
		return QuoteAll
	case !sawQuote:
		return QuoteNone
	default:
		return QuoteMinimal
	}
}

type valueKind int

const (
	kindBlank valueKind = iota
	kindNumeric
	kindString
)

func kindOf(value string) valueKind {
	if strings.TrimSpace(value) == "" {
		return kindBlank
	}
	if _, err := strconv.ParseFloat(value, 64); err == nil {
		return kindNumeric
	}
	return kindString
}

// DetectHeader decides whether the first parsed record is a header. The
// override, when non-nil, wins. Otherwise record 1's apparent column types
// are compared against the majority types of the following records:
// string-over-numeric columns vote for a header, numeric-over-numeric
// columns vote against. Ties and all-string data mean no header.
func (d *Detector) DetectHeader(records [][]string, override *bool) HeaderState {
	if len(records) == 0 {
		return HeaderState{}
	}
	first := records[0]

	if override != nil {
		if *override {
			return HeaderState{HasHeader: true, Header: first}
		}
		return HeaderState{}
	}

	if len(records) == 1 {
		// A lone record of non-numeric, non-blank fields reads as a
		// header-only file.
		for _, v := range first {
			if kindOf(v) != kindString {
				return HeaderState{}
			}
		}
		return HeaderState{HasHeader: true, Header: first}
	}

	rest := records[1:]
	if len(rest) > sniffRecords {
		rest = rest[:sniffRecords]
	}

	votes := 0
	for i, v := range first {
		if majorityKind(rest, i) != kindNumeric {
			continue
		}
		switch kindOf(v) {
		case kindString:
			votes++
		case kindNumeric:
			votes--
		}
	}
	d.log.Debug("header heuristic", zap.Int("votes", votes))
	if votes > 0 {
		return HeaderState{HasHeader: true, Header: first}
	}
	return HeaderState{}
}

// majorityKind returns the dominant non-blank kind of column i, or
// kindBlank when there is no clear majority.
func majorityKind(records [][]string, i int) valueKind {
	numeric, str := 0, 0
	for _, rec := range records {
		if i >= len(rec) {
			continue
		}
		switch kindOf(rec[i]) {
		case kindNumeric:
			numeric++
		case kindString:
			str++
		}
	}
	switch {
	case numeric > str:
		return kindNumeric
	case str > numeric:
		return kindString
	default:
		return kindBlank
	}
}
