package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/sharpton/seq-scripts/config"
	"github.com/sharpton/seq-scripts/internal/fastx"
	"github.com/sharpton/seq-scripts/internal/output"
	"github.com/sharpton/seq-scripts/internal/simulate"
)

// simCmd turns reference sequences into simulated sequencing reads.
var simCmd = &cobra.Command{
	Use:   "sim",
	Short: "Simulate sequencing reads from FASTA or FASTQ references",
	Long: `Simulate sequencing reads from reference sequences.

Each reference is cut into regions, fragments are placed at random or
at regular intervals, and reads come out as FASTQ (FASTA for contig
mode) on stdout or --out. Length models follow the library type: fixed
for se and contig tiles, a normal insert for pe and mp pairs, and a
dispersed long read distribution for pacbio.`,
	RunE: runSim,
}

func init() {
	rootCmd.AddCommand(simCmd)

	simCmd.Flags().StringP("in", "i", "", "input FASTA or FASTQ, plain or gzip ('-' for stdin)")
	simCmd.Flags().StringP("out", "o", "", "output file ('-' or empty for stdout, .gz compresses)")
	simCmd.Flags().StringP("mode", "m", "", "library type: se, pe, mp, pacbio or contig")
	simCmd.Flags().IntP("read-length", "l", 0, "length of simulated reads")
	simCmd.Flags().Float64P("coverage", "c", 0, "target depth of coverage (contig mode defaults to 1)")
	simCmd.Flags().Int("insert-size", simulate.DefaultInsertSize, "fragment length for pe and mp libraries")
	simCmd.Flags().Int("region-length", simulate.DefaultRegionLength, "window length when chunking long references")
	simCmd.Flags().String("prefix", simulate.DefaultPrefix, "read name prefix")
	simCmd.Flags().Bool("systematic", false, "place fragments at regular intervals instead of randomly")
	simCmd.Flags().Int64("seed", 0, "random seed (0 seeds from the clock)")
	simCmd.Flags().Bool("split", false, "write mates to separate _R1/_R2 files (needs --out)")

	simCmd.MarkFlagRequired("in")
	simCmd.MarkFlagRequired("mode")
}

func runSim(cmd *cobra.Command, args []string) error {
	return wrap("seqscripts sim", func() error {
		settings, err := config.Load(settingsFile, cmd.Flags())
		if err != nil {
			return err
		}
		modeName, _ := cmd.Flags().GetString("mode")
		mode, err := simulate.ParseMode(modeName)
		if err != nil {
			return err
		}
		systematic, _ := cmd.Flags().GetBool("systematic")

		sim, err := simulate.New(simulate.Config{
			Mode:         mode,
			ReadLength:   settings.ReadLength,
			Coverage:     settings.Coverage,
			InsertSize:   settings.InsertSize,
			RegionLength: settings.RegionLength,
			Prefix:       settings.Prefix,
			Systematic:   systematic,
		})
		if err != nil {
			return err
		}

		in, _ := cmd.Flags().GetString("in")
		out, _ := cmd.Flags().GetString("out")
		split, _ := cmd.Flags().GetBool("split")

		var files []*output.File
		closeAll := func() error {
			var first error
			for _, f := range files {
				if err := f.Close(); err != nil && first == nil {
					first = err
				}
			}
			return first
		}
		open := func(path string) (*output.File, error) {
			f, err := output.Create(path)
			if err != nil {
				return nil, err
			}
			files = append(files, f)
			return f, nil
		}

		var emit simulate.Emit
		if split {
			if mode != simulate.ModePaired && mode != simulate.ModeMatePair {
				return fmt.Errorf("--split only applies to pe and mp runs")
			}
			if out == "" || out == "-" {
				return fmt.Errorf("--split needs --out to derive the mate file names")
			}
			p1, p2 := output.MatePaths(out)
			f1, err := open(p1)
			if err != nil {
				return err
			}
			f2, err := open(p2)
			if err != nil {
				closeAll()
				return err
			}
			emit = output.SplitWriter{R1: output.NewWriter(f1), R2: output.NewWriter(f2)}.Write
		} else {
			f, err := open(out)
			if err != nil {
				return err
			}
			emit = output.NewWriter(f).Write
		}

		ctx := simulate.NewRunContext(settings.Seed)
		records := 0
		streamErr := fastx.Stream(in, func(rec fastx.Record) error {
			records++
			return sim.Record(ctx, simulate.Record{ID: rec.ID, Seq: rec.Seq, Qual: rec.Qual}, emit)
		})
		if err := closeAll(); streamErr == nil {
			streamErr = err
		}
		if streamErr != nil {
			return streamErr
		}

		fmt.Fprintf(os.Stderr, "simulated %d fragments from %d records\n", ctx.Fragments(), records)
		return nil
	})
}
