// Package cmd is for command line interactions with the seq-scripts tools.
package cmd

import (
	"log"
	"os"

	"github.com/spf13/cobra"

	"github.com/sharpton/seq-scripts/config"
	"github.com/sharpton/seq-scripts/internal/benchmark"
)

var (
	settingsFile string
	benchmarking bool
)

// rootCmd represents the base command when called without any subcommands.
var rootCmd = &cobra.Command{
	Use: "seqscripts",
	Short: `Sequence set utilities: simulate sequencing reads from references,
generate random reference sequences, and summarize read sets`,
	Version:       config.Version,
	SilenceUsage:  true,
	SilenceErrors: true,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&settingsFile, "settings", "", "settings file overriding flag defaults")
	rootCmd.PersistentFlags().BoolVar(&benchmarking, "benchmark", false, "report wall clock and memory usage after the run")
}

// wrap executes a command body, under the benchmark reporter when asked
// for. The report goes to stderr so piped record output stays clean.
func wrap(label string, fn func() error) error {
	if benchmarking {
		return benchmark.Run(os.Stderr, label, fn)
	}
	return fn()
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		log.Fatalf("%v", err)
	}
}
