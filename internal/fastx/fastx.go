// Package fastx streams sequence records out of FASTA and FASTQ input,
// plain or gzip-compressed, picking the format off the first byte of the
// stream. FASTA records surface with a nil quality so downstream code can
// branch on its presence.
package fastx

import (
	"bufio"
	"compress/gzip"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/biogo/biogo/alphabet"
	"github.com/biogo/biogo/io/seqio"
	"github.com/biogo/biogo/io/seqio/fasta"
	"github.com/biogo/biogo/seq/linear"
)

// Record is one parsed input sequence. Qual is nil for FASTA input and
// matches Seq in length for FASTQ input.
type Record struct {
	ID   string
	Seq  []byte
	Qual []byte
}

// ErrFormat marks input that is neither FASTA nor FASTQ.
var ErrFormat = errors.New("unrecognized sequence format")

// Stream opens path ("-" or empty for stdin) and passes every record to
// fn in file order. An error from fn aborts the stream.
func Stream(path string, fn func(Record) error) error {
	if path == "" || path == "-" {
		return StreamReader(os.Stdin, fn)
	}
	f, err := os.Open(path)
	if err != nil {
		return fmt.Errorf("failed to open %s: %w", path, err)
	}
	defer f.Close()
	return StreamReader(f, fn)
}

// StreamReader detects compression and format on r and streams records to
// fn. The whole input is consumed unless fn errors.
func StreamReader(r io.Reader, fn func(Record) error) error {
	br := bufio.NewReader(r)
	if magic, err := br.Peek(2); err == nil && magic[0] == 0x1f && magic[1] == 0x8b {
		gz, err := gzip.NewReader(br)
		if err != nil {
			return fmt.Errorf("failed to open gzip stream: %w", err)
		}
		defer gz.Close()
		br = bufio.NewReader(gz)
	}

	first, err := br.Peek(1)
	if err != nil {
		if err == io.EOF {
			return fmt.Errorf("%w: empty input", ErrFormat)
		}
		return err
	}
	switch first[0] {
	case '>':
		return streamFasta(br, fn)
	case '@':
		return streamFastq(br, fn)
	}
	return fmt.Errorf("%w: input starts with %q, want '>' or '@'", ErrFormat, first[0])
}

func streamFasta(r io.Reader, fn func(Record) error) error {
	in := fasta.NewReader(r, linear.NewSeq("", nil, alphabet.DNA))
	sc := seqio.NewScanner(in)
	for sc.Next() {
		s := sc.Seq().(*linear.Seq)
		if err := fn(Record{ID: s.Name(), Seq: lettersToBytes(s.Seq)}); err != nil {
			return err
		}
	}
	return sc.Error()
}

func lettersToBytes(ls []alphabet.Letter) []byte {
	b := make([]byte, len(ls))
	for i, l := range ls {
		b[i] = byte(l)
	}
	return b
}

// streamFastq walks strict four-line FASTQ records.
func streamFastq(r io.Reader, fn func(Record) error) error {
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 64*1024), 1024*1024)

	n := 0
	for sc.Scan() {
		head := strings.TrimSuffix(sc.Text(), "\r")
		if head == "" {
			continue
		}
		n++
		if head[0] != '@' {
			return fmt.Errorf("%w: record %d header %q does not start with '@'", ErrFormat, n, head)
		}
		id := head[1:]
		if i := strings.IndexAny(id, " \t"); i >= 0 {
			id = id[:i]
		}

		if !sc.Scan() {
			return fmt.Errorf("%w: record %d truncated after header", ErrFormat, n)
		}
		seq := chomp(append([]byte(nil), sc.Bytes()...))

		if !sc.Scan() {
			return fmt.Errorf("%w: record %d truncated before '+' line", ErrFormat, n)
		}
		if plus := chomp(sc.Bytes()); len(plus) == 0 || plus[0] != '+' {
			return fmt.Errorf("%w: record %d missing '+' separator", ErrFormat, n)
		}

		if !sc.Scan() {
			return fmt.Errorf("%w: record %d truncated before quality", ErrFormat, n)
		}
		qual := chomp(append([]byte(nil), sc.Bytes()...))
		if len(qual) != len(seq) {
			return fmt.Errorf("%w: record %d (%s) quality length %d does not match sequence length %d",
				ErrFormat, n, id, len(qual), len(seq))
		}

		if err := fn(Record{ID: id, Seq: seq, Qual: qual}); err != nil {
			return err
		}
	}
	return sc.Err()
}

func chomp(b []byte) []byte {
	if len(b) > 0 && b[len(b)-1] == '\r' {
		return b[:len(b)-1]
	}
	return b
}
