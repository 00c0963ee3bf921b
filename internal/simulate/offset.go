package simulate

import "sort"

// randomOffsets draws count fragment start positions uniformly over
// [0, span] and returns them sorted, so reads come out in rough
// positional order. Duplicates are permitted.
func randomOffsets(ctx *RunContext, span, count int) []int {
	offs := make([]int, count)
	for i := range offs {
		offs[i] = ctx.rand.IntN(span + 1)
	}
	sort.Ints(offs)
	return offs
}

// systematicOffsets places count start positions a fixed stride apart
// beginning at zero. The stride is span/count rounded down, which keeps
// the last offset short of span instead of past it.
func systematicOffsets(span, count int) []int {
	step := span / count
	offs := make([]int, count)
	for i := range offs {
		offs[i] = i * step
	}
	return offs
}
