package simulate

import (
	"math/rand/v2"
	"time"
)

// RunContext is the mutable state threaded through a run: the fragment
// counter behind read names and the random source behind every draw. One
// context spans all records and regions of a run, so numbering never
// restarts and draws stay on a single reproducible stream.
type RunContext struct {
	src  *rand.PCG
	rand *rand.Rand
	next uint64
}

// NewRunContext seeds a fresh context. A zero seed falls back to the
// current time, so repeated runs differ unless a seed is pinned.
func NewRunContext(seed int64) *RunContext {
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	src := rand.NewPCG(uint64(seed), uint64(seed))
	return &RunContext{src: src, rand: rand.New(src)}
}

// nextID hands out the next fragment number. A mate pair consumes one.
func (c *RunContext) nextID() uint64 {
	id := c.next
	c.next++
	return id
}

// Fragments reports how many fragments have been numbered so far.
func (c *RunContext) Fragments() uint64 { return c.next }

// flip is the per-fragment strand draw.
func (c *RunContext) flip() bool { return c.rand.Float64() < 0.5 }
