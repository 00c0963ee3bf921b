package cmd

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/sharpton/seq-scripts/internal/fastx"
	"github.com/sharpton/seq-scripts/internal/readstats"
)

// statsCmd summarizes a read set.
var statsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Summarize a FASTA or FASTQ read set",
	Long: `Summarize a read set: read and base counts, length spread, GC
content, and quality aggregates when the input is FASTQ. The summary
prints to stdout; --csv writes it as CSV and --plots renders SVG
distribution plots into a directory.`,
	RunE: runStats,
}

func init() {
	rootCmd.AddCommand(statsCmd)

	statsCmd.Flags().StringP("in", "i", "", "input FASTA or FASTQ, plain or gzip ('-' for stdin)")
	statsCmd.Flags().String("csv", "", "also write the summary to this CSV file")
	statsCmd.Flags().String("plots", "", "also render SVG plots into this directory")

	statsCmd.MarkFlagRequired("in")
}

func runStats(cmd *cobra.Command, args []string) error {
	return wrap("seqscripts stats", func() error {
		in, _ := cmd.Flags().GetString("in")
		csvPath, _ := cmd.Flags().GetString("csv")
		plotsDir, _ := cmd.Flags().GetString("plots")

		c := readstats.NewCollector()
		if err := fastx.Stream(in, func(rec fastx.Record) error {
			c.Add(rec)
			return nil
		}); err != nil {
			return err
		}

		summary := c.Summary()
		summary.WriteText(os.Stdout)

		if csvPath != "" {
			f, err := os.Create(csvPath)
			if err != nil {
				return fmt.Errorf("failed to create %s: %w", csvPath, err)
			}
			if err := summary.WriteCSV(f); err != nil {
				f.Close()
				return err
			}
			if err := f.Close(); err != nil {
				return err
			}
		}

		if plotsDir != "" {
			if err := writePlots(c, summary, plotsDir); err != nil {
				return err
			}
		}
		return nil
	})
}

// writePlots renders every plot the input supports. Quality plots are
// skipped for FASTA input.
func writePlots(c *readstats.Collector, summary readstats.Summary, dir string) error {
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("failed to create %s: %w", dir, err)
	}

	plots := []struct {
		name   string
		render func() (string, error)
		skip   bool
	}{
		{name: "length.svg", render: c.LengthPlotSVG},
		{name: "gc.svg", render: c.GCPlotSVG},
		{name: "quality.svg", render: c.QualityPlotSVG, skip: !summary.HasQuality},
		{name: "per_base_quality.svg", render: c.PerBaseQualityPlotSVG, skip: !summary.HasQuality},
	}
	for _, p := range plots {
		if p.skip {
			continue
		}
		svg, err := p.render()
		if err != nil {
			return fmt.Errorf("failed to render %s: %w", p.name, err)
		}
		if err := os.WriteFile(filepath.Join(dir, p.name), []byte(svg), 0644); err != nil {
			return err
		}
	}
	return nil
}
