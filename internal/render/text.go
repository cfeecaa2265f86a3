package render

import (
	"fmt"
	"io"
	"strconv"
	"text/tabwriter"

	"github.com/dustin/go-humanize"

	"csvprobe/internal/profiler"
)

// maxDisplayedTopValues keeps the readable report short; the parsable
// report carries the full tracked distribution.
const maxDisplayedTopValues = 10

// WriteText emits the human-readable report.
func WriteText(w io.Writer, fp *profiler.FileProfile) error {
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)

	fmt.Fprintf(tw, "File Structure:\n")
	fmt.Fprintf(tw, "  format type:\t%s\n", fp.FormatType)
	fmt.Fprintf(tw, "  field count:\t%d\n", fp.FieldCount)
	fmt.Fprintf(tw, "  record count:\t%s\n", humanRecordCount(fp.RecordCount, fp.IsEstimated))
	fmt.Fprintf(tw, "  has header:\t%t\n", fp.HasHeader)
	fmt.Fprintf(tw, "  delimiter:\t%q\n", string(fp.Dialect.Delimiter))
	fmt.Fprintf(tw, "  quoting:\t%s\n", fp.Dialect.Quoting)
	fmt.Fprintf(tw, "  quote char:\t%q\n", string(fp.Dialect.QuoteChar))
	fmt.Fprintf(tw, "  escape char:\t%s\n", formatEscapeChar(fp.Dialect.EscapeChar))
	fmt.Fprintf(tw, "  double quote:\t%t\n", fp.Dialect.DoubleQuote)

	for _, f := range fp.Fields {
		fmt.Fprintf(tw, "\nField %d: %s\n", f.FieldNumber, f.Name)
		if f.Overflowed {
			fmt.Fprintf(tw, "  WARNING:\tvalue tracking was capped for this field\n")
		}
		fmt.Fprintf(tw, "  type:\t%s\n", f.Type)
		fmt.Fprintf(tw, "  known values:\t%s\n", humanize.Comma(int64(f.KnownValues)))
		fmt.Fprintf(tw, "  unique values:\t%s\n", humanize.Comma(int64(f.UniqueValues)))
		fmt.Fprintf(tw, "  wrong field cnt:\t%d\n", f.WrongFieldCnt)
		fmt.Fprintf(tw, "  min:\t%s\n", f.Min)
		fmt.Fprintf(tw, "  max:\t%s\n", f.Max)

		switch f.Type {
		case profiler.TypeInteger, profiler.TypeFloat:
			fmt.Fprintf(tw, "  mean:\t%s\n", formatFloat(f.Mean))
			fmt.Fprintf(tw, "  median:\t%s\n", formatFloat(f.Median))
			fmt.Fprintf(tw, "  variance:\t%s\n", formatFloat(f.Variance))
			fmt.Fprintf(tw, "  std dev:\t%s\n", formatFloat(f.StdDev))
		default:
			fmt.Fprintf(tw, "  case:\t%s\n", f.Case)
			fmt.Fprintf(tw, "  min length:\t%d\n", f.MinLength)
			fmt.Fprintf(tw, "  max length:\t%d\n", f.MaxLength)
			fmt.Fprintf(tw, "  mean length:\t%s\n", strconv.FormatFloat(f.MeanLength, 'f', 1, 64))
		}

		if f.AllUnique {
			fmt.Fprintf(tw, "  top values:\t%s\n", topValuesSentinel)
			continue
		}
		fmt.Fprintf(tw, "  top values:\n")
		for i, vc := range f.TopValues {
			if i >= maxDisplayedTopValues {
				fmt.Fprintf(tw, "    ...\t(%d more)\n", len(f.TopValues)-i)
				break
			}
			fmt.Fprintf(tw, "    %s\tx %s\n", vc.Value, humanize.Comma(int64(vc.Count)))
		}
	}

	return tw.Flush()
}

func humanRecordCount(n int, estimated bool) string {
	s := humanize.Comma(int64(n))
	if estimated {
		return s + " (estimated)"
	}
	return s
}
