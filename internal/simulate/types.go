package simulate

// Record is one input sequence to simulate from. Qual is nil when the
// source format carries no per-base quality; otherwise it has the same
// length as Seq. The caller owns both slices for the duration of one
// record's processing.
type Record struct {
	ID   string
	Seq  []byte
	Qual []byte
}

// Region is a window of a Record handed to one round of generation.
// Offset is the window's start within the original sequence and is kept
// for bookkeeping only.
type Region struct {
	Seq    []byte
	Qual   []byte
	Offset int
}

// Read is one finished output read. A nil Qual marks a sequence-only
// record meant to be written as FASTA rather than FASTQ.
type Read struct {
	Name string
	Seq  []byte
	Qual []byte
}

// Emit receives each read the moment it is assembled, so output streams
// instead of accumulating. Returning an error aborts the run.
type Emit func(Read) error
