package cmd

import (
	"fmt"
	"os"

	"github.com/schollz/progressbar/v3"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"csvprobe/internal/config"
	"csvprobe/internal/profiler"
	"csvprobe/internal/render"
	"csvprobe/internal/sampler"
)

var (
	delimiter    string
	quoteChar    string
	escapeChar   string
	quoting      string
	hasHeader    bool
	hasNoHeader  bool
	recDelimiter string
	readLimit    int
	maxFreq      int
	outputFormat string
	outputFile   string
)

var analyzeCmd = &cobra.Command{
	Use:   "analyze [files... | -]",
	Short: "Profile one or more delimited files",
	Long: `Analyze delimited files (or standard input via "-") and report the
inferred dialect, header, column types, statistics, and value
frequencies. Multiple inputs are concatenated in order and profiled
as a single logical stream.

Examples:
  csvprobe analyze data.csv
  csvprobe analyze --read-limit 10000 huge.csv
  csvprobe analyze -d '|' --hasnoheader part1.csv part2.csv
  cat data.csv | csvprobe analyze --output-format parsable -`,
	Args: cobra.MinimumNArgs(1),
	RunE: runAnalyze,
}

func init() {
	rootCmd.AddCommand(analyzeCmd)

	f := analyzeCmd.Flags()
	f.StringVarP(&delimiter, "delimiter", "d", "",
		"single-character field delimiter (sniffed when omitted)")
	f.StringVar(&quoteChar, "quotechar", "",
		"field quoting character, default double-quote")
	f.StringVar(&escapeChar, "escapechar", "",
		"escape character, default none")
	f.StringVar(&quoting, "quoting", "",
		"field quoting mode: quote_all, quote_minimal, quote_nonnumeric or quote_none (sniffed when omitted)")
	f.BoolVar(&hasHeader, "hasheader", false,
		"treat the first record as a header")
	f.BoolVar(&hasNoHeader, "hasnoheader", false,
		"never treat the first record as a header")
	f.StringVar(&recDelimiter, "recdelimiter", "",
		"record terminator override, default newline")
	f.IntVar(&readLimit, "read-limit", -1,
		"maximum records to read; the record count becomes an estimate (-1 = all)")
	f.IntVar(&maxFreq, "max-freq", config.DefaultMaxFreq,
		"maximum distinct values tracked per field")
	f.StringVar(&outputFormat, "output-format", "readable",
		"report format: readable or parsable")
	f.StringVarP(&outputFile, "output", "o", "",
		"write the report to a file instead of stdout")
}

// buildOptions merges flag values with config-file/env defaults. Flags the
// user actually set win over viper-provided values.
func buildOptions(cmd *cobra.Command) config.Options {
	opts := config.New()
	opts.Delimiter = delimiter
	opts.QuoteChar = quoteChar
	opts.EscapeChar = escapeChar
	opts.Quoting = quoting
	opts.HasHeader = hasHeader
	opts.HasNoHeader = hasNoHeader
	opts.RecDelimiter = recDelimiter
	opts.ReadLimit = readLimit
	opts.MaxFreq = maxFreq

	if !cmd.Flags().Changed("read-limit") && viper.IsSet("read-limit") {
		opts.ReadLimit = viper.GetInt("read-limit")
	}
	if !cmd.Flags().Changed("max-freq") && viper.IsSet("max-freq") {
		opts.MaxFreq = viper.GetInt("max-freq")
	}
	return opts
}

func runAnalyze(cmd *cobra.Command, args []string) error {
	logger := newLogger()
	defer logger.Sync()

	opts := buildOptions(cmd)
	if err := opts.Validate(); err != nil {
		return err
	}

	sources := make([]sampler.Source, 0, len(args))
	for _, arg := range args {
		if arg == "-" {
			sources = append(sources, sampler.ReaderSource("stdin", os.Stdin))
		} else {
			sources = append(sources, sampler.FileSource(arg))
		}
	}

	analyzer := profiler.NewAnalyzer(opts, logger)
	if len(sources) > 1 {
		bar := progressbar.NewOptions(len(sources),
			progressbar.OptionSetWriter(os.Stderr),
			progressbar.OptionSetDescription("Sampling inputs..."),
			progressbar.OptionShowCount(),
			progressbar.OptionOnCompletion(func() {
				fmt.Fprintln(os.Stderr)
			}),
		)
		analyzer.SetProgress(func(string) { bar.Add(1) })
		defer bar.Finish()
	}

	fp, err := analyzer.Run(sources)
	if err != nil {
		return err
	}

	out := os.Stdout
	if outputFile != "" {
		f, err := os.Create(outputFile)
		if err != nil {
			return fmt.Errorf("creating output file: %w", err)
		}
		defer f.Close()
		out = f
	}

	switch outputFormat {
	case "parsable":
		return render.WriteParsable(out, fp)
	case "readable":
		return render.WriteText(out, fp)
	default:
		return fmt.Errorf("unknown output format %q (expected readable or parsable)", outputFormat)
	}
}
