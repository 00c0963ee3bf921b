package readstats

import (
	"bytes"
	"errors"
	"image/color"
	"math"

	"gonum.org/v1/gonum/stat"
	"gonum.org/v1/gonum/stat/distuv"
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
)

var errNoData = errors.New("no data to plot")

// LengthPlotSVG renders the read length distribution as a binned line.
func (c *Collector) LengthPlotSVG() (string, error) {
	if len(c.lengths) == 0 {
		return "", errNoData
	}

	p := plot.New()
	p.Title.Text = "Read Length Distribution"
	p.X.Label.Text = "Read Length"
	p.Y.Label.Text = "Read Count"

	minLen := math.Floor(c.lengths[0])
	maxLen := minLen
	for _, l := range c.lengths {
		minLen = math.Min(minLen, l)
		maxLen = math.Max(maxLen, l)
	}

	const binCount = 100
	binWidth := (maxLen - minLen + 1) / binCount
	counts := make([]float64, binCount)
	for _, l := range c.lengths {
		bin := int((l - minLen) / binWidth)
		if bin >= binCount {
			bin = binCount - 1
		}
		counts[bin]++
	}

	points := make(plotter.XYs, binCount)
	for i := range points {
		points[i].X = minLen + binWidth*float64(i) + binWidth/2
		points[i].Y = counts[i]
	}
	line, err := plotter.NewLine(points)
	if err != nil {
		return "", err
	}
	line.LineStyle.Color = color.RGBA{R: 50, G: 100, B: 200, A: 255}
	line.LineStyle.Width = vg.Points(2)
	p.Add(line)
	p.Legend.Add("Read Count", line)
	p.Legend.Top = true

	return renderSVG(p)
}

// GCPlotSVG renders the per-read GC histogram with a modeled normal
// overlay when the spread supports one.
func (c *Collector) GCPlotSVG() (string, error) {
	if len(c.gc) == 0 {
		return "", errNoData
	}

	p := plot.New()
	p.Title.Text = "Per Read GC Content"
	p.X.Label.Text = "GC Content (%)"
	p.Y.Label.Text = "Read Count"

	const binCount = 100
	const binWidth = 100.0 / binCount
	observed := make([]float64, binCount)
	for _, v := range c.gc {
		bin := int(v / binWidth)
		if bin >= binCount {
			bin = binCount - 1
		}
		observed[bin]++
	}

	observedXY := make(plotter.XYs, binCount)
	for i := range observedXY {
		observedXY[i].X = binWidth*float64(i) + binWidth/2
		observedXY[i].Y = observed[i]
	}
	obsLine, err := plotter.NewLine(observedXY)
	if err != nil {
		return "", err
	}
	obsLine.Color = color.RGBA{B: 255, A: 255}
	obsLine.Width = vg.Points(2)
	p.Add(obsLine)
	p.Legend.Add("Observed", obsLine)
	p.Legend.Top = true

	mean := stat.Mean(c.gc, nil)
	stddev := stat.StdDev(c.gc, nil)
	if stddev > 0 {
		norm := distuv.Normal{Mu: mean, Sigma: stddev}
		scale := float64(len(c.gc)) * binWidth
		expectedXY := make(plotter.XYs, binCount)
		for i := range expectedXY {
			x := binWidth*float64(i) + binWidth/2
			expectedXY[i].X = x
			expectedXY[i].Y = norm.Prob(x) * scale
		}
		expLine, err := plotter.NewLine(expectedXY)
		if err != nil {
			return "", err
		}
		expLine.Color = color.RGBA{R: 255, G: 100, B: 100, A: 255}
		expLine.Width = vg.Points(2)
		expLine.Dashes = []vg.Length{vg.Points(3), vg.Points(3)}
		p.Add(expLine)
		p.Legend.Add("Modelled Normal", expLine)
	}

	return renderSVG(p)
}

// QualityPlotSVG renders the distribution of per-read mean qualities.
func (c *Collector) QualityPlotSVG() (string, error) {
	if len(c.qualMeans) == 0 {
		return "", errNoData
	}

	p := plot.New()
	p.Title.Text = "Per Read Quality Scores"
	p.X.Label.Text = "Mean Quality Score"
	p.Y.Label.Text = "Number of Reads"

	minScore := math.Floor(c.qualMeans[0])
	maxScore := minScore
	for _, v := range c.qualMeans {
		minScore = math.Min(minScore, math.Floor(v))
		maxScore = math.Max(maxScore, math.Ceil(v))
	}
	if maxScore == minScore {
		maxScore = minScore + 1
	}

	const binCount = 50
	binWidth := (maxScore - minScore) / binCount
	counts := make([]float64, binCount)
	for _, v := range c.qualMeans {
		bin := int((v - minScore) / binWidth)
		if bin >= binCount {
			bin = binCount - 1
		}
		counts[bin]++
	}

	pts := make(plotter.XYs, binCount)
	for i := range pts {
		pts[i].X = minScore + binWidth*float64(i) + binWidth/2
		pts[i].Y = counts[i]
	}
	line, err := plotter.NewLine(pts)
	if err != nil {
		return "", err
	}
	line.LineStyle.Width = vg.Points(2)
	line.LineStyle.Color = color.RGBA{R: 200, G: 100, B: 100, A: 255}
	p.Add(line)
	p.Legend.Add("Mean Read Quality", line)
	p.Legend.Top = true

	return renderSVG(p)
}

// PerBaseQualityPlotSVG renders mean quality per base position with a
// one standard deviation ribbon.
func (c *Collector) PerBaseQualityPlotSVG() (string, error) {
	if len(c.posCount) == 0 {
		return "", errNoData
	}

	p := plot.New()
	p.Title.Text = "Per Base Quality"
	p.X.Label.Text = "Base Position"
	p.Y.Label.Text = "Quality Score"
	p.Y.Min = 0
	p.Y.Max = 45
	p.Add(plotter.NewGrid())

	means := make(plotter.XYs, len(c.posCount))
	stddevs := make([]float64, len(c.posCount))
	for i, n := range c.posCount {
		if n == 0 {
			continue
		}
		mean := c.posSum[i] / float64(n)
		variance := c.posSumSq[i]/float64(n) - mean*mean
		means[i].X = float64(i + 1)
		means[i].Y = mean
		stddevs[i] = math.Sqrt(math.Max(variance, 0))
	}

	band := make(plotter.XYs, 0, 2*len(means))
	for i := len(means) - 1; i >= 0; i-- {
		band = append(band, plotter.XY{X: means[i].X, Y: means[i].Y - stddevs[i]})
	}
	for i := range means {
		band = append(band, plotter.XY{X: means[i].X, Y: means[i].Y + stddevs[i]})
	}
	if fill, err := plotter.NewPolygon(band); err == nil {
		fill.Color = color.RGBA{R: 200, G: 200, B: 255, A: 255}
		p.Add(fill)
	}

	meanLine, err := plotter.NewLine(means)
	if err != nil {
		return "", err
	}
	meanLine.Color = color.RGBA{B: 255, A: 255}
	meanLine.Width = vg.Points(2)
	p.Add(meanLine)
	p.Legend.Add("Mean Quality", meanLine)

	return renderSVG(p)
}

func renderSVG(p *plot.Plot) (string, error) {
	var buf bytes.Buffer
	w, err := p.WriterTo(10*vg.Inch, 4*vg.Inch, "svg")
	if err != nil {
		return "", err
	}
	if _, err := w.WriteTo(&buf); err != nil {
		return "", err
	}
	return buf.String(), nil
}
