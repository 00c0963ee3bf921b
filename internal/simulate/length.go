package simulate

import (
	"math"

	"gonum.org/v1/gonum/stat/distuv"
)

const (
	// longReadShape is the negative binomial shape behind pacbio lengths.
	// The success probability scales with read length, so the mean of the
	// distribution tracks the configured length with a long right tail.
	longReadShape = 5

	// insertSpread is the standard deviation of paired fragment lengths
	// relative to the insert size.
	insertSpread = 0.12

	// Contig tile fuzz parameters. The shifted draw lands near zero with
	// a heavy positive tail and a floor near -tileFuzzShift, so adjacent
	// tiles overlap, abut, or gap by up to a few hundred bases.
	tileFuzzShape = 5
	tileFuzzP     = 0.01
	tileFuzzShift = 400
)

// negBinomial draws from a negative binomial with the given shape and
// success probability, composed as a gamma-poisson mixture so both stages
// consume the run's single random source.
func negBinomial(ctx *RunContext, shape, p float64) float64 {
	gamma := distuv.Gamma{Alpha: shape, Beta: p / (1 - p), Src: ctx.src}
	pois := distuv.Poisson{Lambda: gamma.Rand(), Src: ctx.src}
	return pois.Rand()
}

// longReadLength draws one pacbio fragment length, floored to an integer.
// Draws that overrun their region are discarded later by the assembler.
func longReadLength(ctx *RunContext, readLength int) int {
	return int(negBinomial(ctx, longReadShape, longReadShape/float64(readLength)))
}

// insertLength draws one paired fragment length around the insert size.
// Draws below readLength clamp up, so a fragment always covers a full
// read at each end.
func insertLength(ctx *RunContext, insertSize, readLength int) int {
	n := distuv.Normal{
		Mu:    float64(insertSize),
		Sigma: insertSpread * float64(insertSize),
		Src:   ctx.src,
	}
	l := int(math.Floor(n.Rand()))
	if l < readLength {
		l = readLength
	}
	return l
}

// tileFuzz draws the boundary adjustment applied between two consecutive
// contig anchors. The tile covering a gap of gap bases gets length
// gap - fuzz, subject to the clamps in tileLength.
func tileFuzz(ctx *RunContext) int {
	return int(negBinomial(ctx, tileFuzzShape, tileFuzzP)) - tileFuzzShift
}

// tileLength resolves the length of a contig tile starting at start and
// nominally spanning gap bases inside a region of regionLen. A fuzzed
// length below one base collapses to half the gap; a fuzzed end past the
// region end drops the fuzz entirely.
func tileLength(ctx *RunContext, gap, start, regionLen int) int {
	l := gap - tileFuzz(ctx)
	if l < 1 {
		l = gap / 2
	}
	if start+l > regionLen {
		l = gap
	}
	return l
}
