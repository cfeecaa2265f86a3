// Package render flattens a FileProfile into textual reports. The engine
// itself never formats output; these renderers are the external
// collaborators that do.
package render

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"csvprobe/internal/dialect"
	"csvprobe/internal/profiler"
)

const (
	divisionFile  = "file_analysis_results"
	divisionField = "field_analysis_results"

	// topValuesSentinel replaces the top-values listing when every
	// tracked value is unique: a full-cardinality dump would be
	// meaningless.
	topValuesSentinel = "not shown - all are unique"
)

// WriteParsable emits the machine-readable report: one record per line,
// five double-quoted pipe-delimited fields keyed by
// division|section|subsection|key|value.
func WriteParsable(w io.Writer, fp *profiler.FileProfile) error {
	p := &parsableWriter{w: w}

	p.row(divisionFile, "main", "main", "format_type", fp.FormatType)
	p.row(divisionFile, "main", "main", "field_count", strconv.Itoa(fp.FieldCount))
	p.row(divisionFile, "main", "main", "record_count", formatRecordCount(fp.RecordCount, fp.IsEstimated))
	p.row(divisionFile, "main", "main", "hasheader", strconv.FormatBool(fp.HasHeader))
	p.row(divisionFile, "main", "main", "delimiter", fmt.Sprintf("'%s'", string(fp.Dialect.Delimiter)))
	p.row(divisionFile, "main", "main", "quoting", fp.Dialect.Quoting.String())
	p.row(divisionFile, "main", "main", "csv_quoting", strconv.FormatBool(fp.Dialect.Quoting != dialect.QuoteNone))
	p.row(divisionFile, "main", "main", "escapechar", formatEscapeChar(fp.Dialect.EscapeChar))
	p.row(divisionFile, "main", "main", "doublequote", strconv.FormatBool(fp.Dialect.DoubleQuote))
	p.row(divisionFile, "main", "main", "skipinitialspace", strconv.FormatBool(fp.Dialect.SkipInitialSpace))

	for _, f := range fp.Fields {
		section := fmt.Sprintf("field_%d", f.FieldNumber)
		if f.Overflowed {
			p.warn(fmt.Sprintf("WARNING: field %s frequency table overflowed - value tracking was capped", f.Name))
		}
		p.row(divisionField, section, "main", "field_number", strconv.Itoa(f.FieldNumber))
		p.row(divisionField, section, "main", "name", f.Name)
		p.row(divisionField, section, "main", "type", string(f.Type))
		p.row(divisionField, section, "main", "known_values", strconv.Itoa(f.KnownValues))
		p.row(divisionField, section, "main", "unique_values", strconv.Itoa(f.UniqueValues))
		p.row(divisionField, section, "main", "wrong_field_cnt", strconv.Itoa(f.WrongFieldCnt))
		p.row(divisionField, section, "main", "min", f.Min)
		p.row(divisionField, section, "main", "max", f.Max)

		switch f.Type {
		case profiler.TypeInteger, profiler.TypeFloat:
			p.row(divisionField, section, "main", "mean", formatFloat(f.Mean))
			p.row(divisionField, section, "main", "median", formatFloat(f.Median))
			p.row(divisionField, section, "main", "variance", formatFloat(f.Variance))
			p.row(divisionField, section, "main", "std_dev", formatFloat(f.StdDev))
		default:
			p.row(divisionField, section, "main", "case", string(f.Case))
			p.row(divisionField, section, "main", "min_length", strconv.Itoa(f.MinLength))
			p.row(divisionField, section, "main", "max_length", strconv.Itoa(f.MaxLength))
			p.row(divisionField, section, "main", "mean_length", strconv.FormatFloat(f.MeanLength, 'f', 1, 64))
		}

		if f.AllUnique {
			p.row(divisionField, section, "top_values", "top_values", topValuesSentinel)
			continue
		}
		for _, vc := range f.TopValues {
			p.row(divisionField, section, "top_values", vc.Value, strconv.Itoa(vc.Count))
		}
	}

	return p.err
}

type parsableWriter struct {
	w   io.Writer
	err error
}

func (p *parsableWriter) row(division, section, subsection, key, value string) {
	if p.err != nil {
		return
	}
	fields := []string{division, section, subsection, key, value}
	for i, f := range fields {
		fields[i] = `"` + strings.ReplaceAll(f, `"`, `""`) + `"`
	}
	_, p.err = fmt.Fprintln(p.w, strings.Join(fields, "|"))
}

func (p *parsableWriter) warn(msg string) {
	if p.err != nil {
		return
	}
	_, p.err = fmt.Fprintln(p.w, msg)
}

func formatRecordCount(n int, estimated bool) string {
	if estimated {
		return fmt.Sprintf("%d (est)", n)
	}
	return strconv.Itoa(n)
}

func formatEscapeChar(c rune) string {
	if c == 0 {
		return "none"
	}
	return string(c)
}

// formatFloat renders a statistic at 11 decimal places with trailing
// zeros trimmed, so accumulated floating-point noise stays out of
// reports (32.959999999999994 prints as 32.96).
func formatFloat(v float64) string {
	s := strconv.FormatFloat(v, 'f', 11, 64)
	s = strings.TrimRight(s, "0")
	return strings.TrimRight(s, ".")
}
