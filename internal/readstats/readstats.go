// Package readstats summarizes FASTA and FASTQ read sets: aggregate
// numbers, a CSV report, and SVG distribution plots of the kind produced
// for sequencing QC.
package readstats

import (
	"encoding/csv"
	"fmt"
	"io"
	"sort"
	"strconv"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"

	"github.com/sharpton/seq-scripts/internal/fastx"
)

// Collector folds records into running statistics one at a time, keeping
// a few numbers per read and per base position instead of the reads
// themselves.
type Collector struct {
	lengths   []float64
	gc        []float64 // percent, per read
	qualMeans []float64 // per read, quality input only

	bases    int
	gcBases  int
	nBases   int
	q20, q30 int
	hasQual  bool

	posSum   []float64
	posSumSq []float64
	posCount []int
}

func NewCollector() *Collector { return &Collector{} }

// Add folds one record into the running statistics.
func (c *Collector) Add(rec fastx.Record) {
	length := len(rec.Seq)
	gc, n := 0, 0
	for _, b := range rec.Seq {
		switch b {
		case 'G', 'g', 'C', 'c':
			gc++
		case 'N', 'n':
			n++
		}
	}
	c.lengths = append(c.lengths, float64(length))
	if length > 0 {
		c.gc = append(c.gc, float64(gc)/float64(length)*100)
	}
	c.bases += length
	c.gcBases += gc
	c.nBases += n

	if rec.Qual == nil {
		return
	}
	c.hasQual = true
	for len(c.posSum) < len(rec.Qual) {
		c.posSum = append(c.posSum, 0)
		c.posSumSq = append(c.posSumSq, 0)
		c.posCount = append(c.posCount, 0)
	}
	sum := 0
	for i, q := range rec.Qual {
		score := int(q) - 33
		sum += score
		if score >= 20 {
			c.q20++
		}
		if score >= 30 {
			c.q30++
		}
		c.posSum[i] += float64(score)
		c.posSumSq[i] += float64(score) * float64(score)
		c.posCount[i]++
	}
	if length > 0 {
		c.qualMeans = append(c.qualMeans, float64(sum)/float64(length))
	}
}

// Summary are the aggregate statistics of one read set. Quality fields
// are zero when the input carried no quality.
type Summary struct {
	Reads        int
	Bases        int
	MinLength    int
	MaxLength    int
	MeanLength   float64
	MedianLength float64
	LengthStdDev float64
	GCPercent    float64
	GCStdDev     float64
	NPercent     float64
	HasQuality   bool
	MeanQual     float64
	QualStdDev   float64
	Q20Percent   float64
	Q30Percent   float64
}

func (c *Collector) Summary() Summary {
	s := Summary{Reads: len(c.lengths), Bases: c.bases, HasQuality: c.hasQual}
	if s.Reads == 0 {
		return s
	}
	s.MinLength = int(floats.Min(c.lengths))
	s.MaxLength = int(floats.Max(c.lengths))
	s.MeanLength = stat.Mean(c.lengths, nil)
	sorted := append([]float64(nil), c.lengths...)
	sort.Float64s(sorted)
	s.MedianLength = stat.Quantile(0.5, stat.LinInterp, sorted, nil)
	if s.Reads > 1 {
		s.LengthStdDev = stat.StdDev(c.lengths, nil)
	}
	s.GCPercent = percent(c.gcBases, c.bases)
	if len(c.gc) > 1 {
		s.GCStdDev = stat.StdDev(c.gc, nil)
	}
	s.NPercent = percent(c.nBases, c.bases)
	if c.hasQual {
		s.MeanQual = stat.Mean(c.qualMeans, nil)
		if len(c.qualMeans) > 1 {
			s.QualStdDev = stat.StdDev(c.qualMeans, nil)
		}
		s.Q20Percent = percent(c.q20, c.bases)
		s.Q30Percent = percent(c.q30, c.bases)
	}
	return s
}

func percent(part, total int) float64 {
	if total == 0 {
		return 0
	}
	return float64(part) / float64(total) * 100
}

// WriteText prints the summary as an aligned key/value block.
func (s Summary) WriteText(w io.Writer) {
	fmt.Fprintf(w, "reads\t%d\n", s.Reads)
	fmt.Fprintf(w, "bases\t%d\n", s.Bases)
	fmt.Fprintf(w, "length\t%d..%d (mean %.2f, median %.2f, sd %.2f)\n", s.MinLength, s.MaxLength, s.MeanLength, s.MedianLength, s.LengthStdDev)
	fmt.Fprintf(w, "gc%%\t%.2f (sd %.2f)\n", s.GCPercent, s.GCStdDev)
	fmt.Fprintf(w, "n%%\t%.2f\n", s.NPercent)
	if s.HasQuality {
		fmt.Fprintf(w, "quality\tmean %.2f (sd %.2f)\n", s.MeanQual, s.QualStdDev)
		fmt.Fprintf(w, "q20\t%.2f%% of bases\n", s.Q20Percent)
		fmt.Fprintf(w, "q30\t%.2f%% of bases\n", s.Q30Percent)
	}
}

// WriteCSV writes the summary as a two-row header/value table.
func (s Summary) WriteCSV(w io.Writer) error {
	cw := csv.NewWriter(w)
	headers := []string{
		"Reads", "Bases", "MinLength", "MaxLength", "MeanLength", "MedianLength",
		"LengthStdDev", "GCPercent", "GCStdDev", "NPercent", "MeanQual",
		"QualStdDev", "Q20Percent", "Q30Percent",
	}
	values := []string{
		strconv.Itoa(s.Reads),
		strconv.Itoa(s.Bases),
		strconv.Itoa(s.MinLength),
		strconv.Itoa(s.MaxLength),
		fmt.Sprintf("%.2f", s.MeanLength),
		fmt.Sprintf("%.2f", s.MedianLength),
		fmt.Sprintf("%.2f", s.LengthStdDev),
		fmt.Sprintf("%.2f", s.GCPercent),
		fmt.Sprintf("%.2f", s.GCStdDev),
		fmt.Sprintf("%.2f", s.NPercent),
		fmt.Sprintf("%.2f", s.MeanQual),
		fmt.Sprintf("%.2f", s.QualStdDev),
		fmt.Sprintf("%.2f", s.Q20Percent),
		fmt.Sprintf("%.2f", s.Q30Percent),
	}
	if err := cw.Write(headers); err != nil {
		return err
	}
	if err := cw.Write(values); err != nil {
		return err
	}
	cw.Flush()
	return cw.Error()
}
