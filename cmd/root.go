package cmd

import (
	"errors"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.uber.org/zap"

	"csvprobe/internal/profiler"
)

// exitNoData is the distinguished status for inputs with zero header and
// zero data records (ENODATA).
const exitNoData = 61

var (
	cfgFile string
	verbose bool
)

var rootCmd = &cobra.Command{
	Use:   "csvprobe",
	Short: "CSV dialect, type, and statistics profiler",
	Long: `csvprobe gives a quick structural summary of an unknown delimited
file: it infers the CSV dialect, detects a header row, infers each
column's type, and reports per-column statistics and value frequencies.`,
}

// Execute runs the root command and maps engine errors onto the exit
// status contract.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		var nd *profiler.NoDataError
		if errors.As(err, &nd) {
			os.Exit(exitNoData)
		}
		os.Exit(1)
	}
}

func init() {
	cobra.OnInitialize(initConfig)
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "",
		"config file (default is $HOME/.csvprobe.yaml)")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false,
		"enable debug logging")
}

func initConfig() {
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else if home, err := os.UserHomeDir(); err == nil {
		viper.AddConfigPath(home)
		viper.SetConfigType("yaml")
		viper.SetConfigName(".csvprobe")
	}

	viper.SetEnvPrefix("CSVPROBE")
	viper.AutomaticEnv()

	// A missing config file is fine; explicit files that fail to parse
	// surface when their values are read.
	_ = viper.ReadInConfig()
}

func newLogger() *zap.Logger {
	if verbose {
		l, err := zap.NewDevelopment()
		if err != nil {
			return zap.NewNop()
		}
		return l
	}
	cfg := zap.NewProductionConfig()
	cfg.Level = zap.NewAtomicLevelAt(zap.WarnLevel)
	l, err := cfg.Build()
	if err != nil {
		return zap.NewNop()
	}
	return l
}
