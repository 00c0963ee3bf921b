// Package randseq produces random reference sequences with a controlled
// GC fraction, handy for exercising the simulator without a real genome.
package randseq

import (
	"fmt"
	"math/rand/v2"
	"strconv"
	"strings"
)

// Request describes one sequence to generate.
type Request struct {
	ID     string
	Length int
	GC     float64
}

// Validate rejects requests the generator cannot honor.
func (r Request) Validate() error {
	if r.ID == "" {
		return fmt.Errorf("sequence name must not be empty")
	}
	if r.Length < 1 {
		return fmt.Errorf("sequence length must be positive, got %d", r.Length)
	}
	if r.GC < 0 || r.GC > 1 {
		return fmt.Errorf("gc fraction must be within [0,1], got %g", r.GC)
	}
	return nil
}

// Parse reads the name,length[,gc] form used by the repeatable --seq
// flag. GC defaults to 0.5.
func Parse(s string) (Request, error) {
	parts := strings.Split(s, ",")
	if len(parts) < 2 || len(parts) > 3 {
		return Request{}, fmt.Errorf("invalid sequence request %q, want name,length[,gc]", s)
	}
	length, err := strconv.Atoi(parts[1])
	if err != nil {
		return Request{}, fmt.Errorf("invalid length in %q", s)
	}
	gc := 0.5
	if len(parts) == 3 {
		if gc, err = strconv.ParseFloat(parts[2], 64); err != nil {
			return Request{}, fmt.Errorf("invalid gc fraction in %q", s)
		}
	}
	req := Request{ID: parts[0], Length: length, GC: gc}
	if err := req.Validate(); err != nil {
		return Request{}, fmt.Errorf("invalid sequence request %q: %w", s, err)
	}
	return req, nil
}

// Generate draws Length bases where G and C together appear with the
// requested fraction, split evenly, and A and T share the rest.
func Generate(r *rand.Rand, req Request) []byte {
	cWeight := req.GC / 2
	aWeight := (1 - req.GC) / 2
	tWeight := aWeight

	seq := make([]byte, req.Length)
	for i := range seq {
		x := r.Float64()
		switch {
		case x < aWeight:
			seq[i] = 'A'
		case x < aWeight+tWeight:
			seq[i] = 'T'
		case x < aWeight+tWeight+cWeight:
			seq[i] = 'C'
		default:
			seq[i] = 'G'
		}
	}
	return seq
}
