// Package output serializes simulated reads. Reads carrying quality go
// out as FASTQ; sequence-only records go out as wrapped FASTA. A File
// layers buffering and optional gzip compression over the destination.
package output

import (
	"bufio"
	"compress/gzip"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/biogo/biogo/alphabet"
	"github.com/biogo/biogo/io/seqio/fasta"
	"github.com/biogo/biogo/seq/linear"

	"github.com/sharpton/seq-scripts/internal/simulate"
)

// FastaWidth is the line width for FASTA output.
const FastaWidth = 60

// Writer emits reads in their natural format, keyed off quality presence.
type Writer struct {
	w  io.Writer
	fa *fasta.Writer
}

func NewWriter(w io.Writer) *Writer {
	return &Writer{w: w, fa: fasta.NewWriter(w, FastaWidth)}
}

func (w *Writer) Write(r simulate.Read) error {
	if r.Qual == nil {
		s := linear.NewSeq(r.Name, alphabet.BytesToLetters(r.Seq), alphabet.DNA)
		_, err := w.fa.Write(s)
		return err
	}
	_, err := fmt.Fprintf(w.w, "@%s\n%s\n+\n%s\n", r.Name, r.Seq, r.Qual)
	return err
}

// SplitWriter routes the mates of a pair to separate writers, keyed by
// the /1 and /2 name suffix.
type SplitWriter struct {
	R1, R2 *Writer
}

func (s SplitWriter) Write(r simulate.Read) error {
	if strings.HasSuffix(r.Name, "/2") {
		return s.R2.Write(r)
	}
	return s.R1.Write(r)
}

// File is a buffered output destination, gzip-compressed when its name
// ends in .gz. An empty path or "-" writes to stdout.
type File struct {
	buf *bufio.Writer
	gz  *gzip.Writer
	f   *os.File
}

func Create(path string) (*File, error) {
	out := &File{}
	var w io.Writer = os.Stdout
	if path != "" && path != "-" {
		f, err := os.Create(path)
		if err != nil {
			return nil, fmt.Errorf("failed to create %s: %w", path, err)
		}
		out.f = f
		w = f
	}
	if strings.HasSuffix(path, ".gz") {
		out.gz = gzip.NewWriter(w)
		w = out.gz
	}
	out.buf = bufio.NewWriter(w)
	return out, nil
}

func (o *File) Write(p []byte) (int, error) { return o.buf.Write(p) }

// Close flushes every layer. Stdout itself is left open.
func (o *File) Close() error {
	if err := o.buf.Flush(); err != nil {
		return err
	}
	if o.gz != nil {
		if err := o.gz.Close(); err != nil {
			return err
		}
	}
	if o.f != nil {
		return o.f.Close()
	}
	return nil
}

// MatePaths derives per-mate file names from a combined output path,
// keeping any .gz layer: reads.fq becomes reads_R1.fq and reads_R2.fq.
func MatePaths(path string) (string, string) {
	gz := ""
	if strings.HasSuffix(path, ".gz") {
		path, gz = strings.TrimSuffix(path, ".gz"), ".gz"
	}
	ext := filepath.Ext(path)
	stem := strings.TrimSuffix(path, ext)
	return stem + "_R1" + ext + gz, stem + "_R2" + ext + gz
}
