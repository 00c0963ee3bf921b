package simulate

import (
	"bytes"
	"strconv"
)

// flatQualSym fills synthesized quality strings for sequence-only input.
const flatQualSym = 'I'

// assembler turns (offset, length) draws into named reads. It owns the
// bound check, the strand flip, mate construction and quality handling
// for every mode. Names are assigned only to fragments that survive the
// bound check, so emitted numbering has no holes.
type assembler struct {
	cfg Config
}

func (a assembler) name(ctx *RunContext) string {
	return a.cfg.Prefix + strconv.FormatUint(ctx.nextID(), 10)
}

// fragment bound-checks one draw against its region and slices sequence
// and quality. Draws that overrun the region are dropped silently, the
// expected fate of long draws seeded near a region's end.
func (a assembler) fragment(reg Region, off, length int) (seq, qual []byte, ok bool) {
	if length < 1 || off+length > len(reg.Seq) {
		return nil, nil, false
	}
	seq = reg.Seq[off : off+length]
	if reg.Qual != nil {
		qual = reg.Qual[off : off+length]
	} else {
		qual = bytes.Repeat([]byte{flatQualSym}, length)
	}
	return seq, qual, true
}

// single emits one read covering the whole fragment (se and pacbio).
func (a assembler) single(ctx *RunContext, reg Region, off, length int, emit Emit) error {
	seq, qual, ok := a.fragment(reg, off, length)
	if !ok {
		return nil
	}
	if ctx.flip() {
		seq = reverseComplement(seq)
		qual = reverseBytes(qual)
	}
	return emit(Read{Name: a.name(ctx), Seq: seq, Qual: qual})
}

// pair emits both mates of one fragment, mate 1 first. The mates are the
// two read-length ends of the fragment and may overlap when the fragment
// is shorter than two reads. Inward-facing pairs reverse-complement mate
// 2, outward-facing pairs mate 1.
func (a assembler) pair(ctx *RunContext, reg Region, off, length int, outward bool, emit Emit) error {
	seq, qual, ok := a.fragment(reg, off, length)
	if !ok {
		return nil
	}
	if ctx.flip() {
		seq = reverseComplement(seq)
		qual = reverseBytes(qual)
	}

	rl := a.cfg.ReadLength
	m1s, m1q := seq[:rl], qual[:rl]
	m2s, m2q := seq[length-rl:], qual[length-rl:]
	if outward {
		m1s, m1q = reverseComplement(m1s), reverseBytes(m1q)
	} else {
		m2s, m2q = reverseComplement(m2s), reverseBytes(m2q)
	}

	base := a.name(ctx)
	if err := emit(Read{Name: base + "/1", Seq: m1s, Qual: m1q}); err != nil {
		return err
	}
	return emit(Read{Name: base + "/2", Seq: m2s, Qual: m2q})
}

// tile emits one sequence-only contig record.
func (a assembler) tile(ctx *RunContext, reg Region, off, length int, emit Emit) error {
	if length < 1 || off+length > len(reg.Seq) {
		return nil
	}
	seq := reg.Seq[off : off+length]
	if ctx.flip() {
		seq = reverseComplement(seq)
	}
	return emit(Read{Name: a.name(ctx), Seq: seq})
}

// reverseComplement returns the reverse complement of seq in a fresh
// slice, preserving case. Bases outside the DNA alphabet map to N.
func reverseComplement(seq []byte) []byte {
	rc := make([]byte, len(seq))
	last := len(seq) - 1
	for i, b := range seq {
		rc[last-i] = complement(b)
	}
	return rc
}

func complement(b byte) byte {
	switch b {
	case 'A':
		return 'T'
	case 'a':
		return 't'
	case 'T':
		return 'A'
	case 't':
		return 'a'
	case 'C':
		return 'G'
	case 'c':
		return 'g'
	case 'G':
		return 'C'
	case 'g':
		return 'c'
	case 'N':
		return 'N'
	case 'n':
		return 'n'
	default:
		return 'N'
	}
}

// reverseBytes reverses b into a fresh slice, leaving the original (often
// a view into the input record) untouched.
func reverseBytes(b []byte) []byte {
	r := make([]byte, len(b))
	last := len(b) - 1
	for i, c := range b {
		r[last-i] = c
	}
	return r
}
