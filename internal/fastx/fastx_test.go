package fastx

import (
	"bytes"
	"compress/gzip"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func readAll(t *testing.T, in string) ([]Record, error) {
	t.Helper()
	var recs []Record
	err := StreamReader(strings.NewReader(in), func(r Record) error {
		recs = append(recs, r)
		return nil
	})
	return recs, err
}

func Test_StreamReader_fasta(t *testing.T) {
	recs, err := readAll(t, ">chr1 assembled\nACGTACGT\nACGT\n>chr2\nTTTT\n")
	if err != nil {
		t.Fatal(err)
	}
	if len(recs) != 2 {
		t.Fatalf("got %d records, want 2", len(recs))
	}
	if recs[0].ID != "chr1" || string(recs[0].Seq) != "ACGTACGTACGT" {
		t.Errorf("record 0 = %s %q", recs[0].ID, recs[0].Seq)
	}
	if recs[0].Qual != nil {
		t.Error("FASTA record carries quality")
	}
	if recs[1].ID != "chr2" || string(recs[1].Seq) != "TTTT" {
		t.Errorf("record 1 = %s %q", recs[1].ID, recs[1].Seq)
	}
}

func Test_StreamReader_fastq(t *testing.T) {
	recs, err := readAll(t, "@r0 len=4\nACGT\n+\nIIII\n@r1\nGG\n+r1\nJJ\n")
	if err != nil {
		t.Fatal(err)
	}
	if len(recs) != 2 {
		t.Fatalf("got %d records, want 2", len(recs))
	}
	if recs[0].ID != "r0" || string(recs[0].Seq) != "ACGT" || string(recs[0].Qual) != "IIII" {
		t.Errorf("record 0 = %s %q %q", recs[0].ID, recs[0].Seq, recs[0].Qual)
	}
	if recs[1].ID != "r1" || string(recs[1].Qual) != "JJ" {
		t.Errorf("record 1 = %s %q", recs[1].ID, recs[1].Qual)
	}
}

func Test_StreamReader_fastqWindowsLineEndings(t *testing.T) {
	recs, err := readAll(t, "@r0\r\nACGT\r\n+\r\nIIII\r\n")
	if err != nil {
		t.Fatal(err)
	}
	if len(recs) != 1 || string(recs[0].Seq) != "ACGT" || string(recs[0].Qual) != "IIII" {
		t.Fatalf("got %+v", recs)
	}
}

func Test_StreamReader_badInput(t *testing.T) {
	tests := []struct {
		name, in string
	}{
		{"empty input", ""},
		{"neither format", "hello world\n"},
		{"quality length mismatch", "@r0\nACGT\n+\nIII\n"},
		{"missing separator", "@r0\nACGT\nIIII\nACGT\n"},
		{"truncated record", "@r0\nACGT\n+\n"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := readAll(t, tt.in)
			if !errors.Is(err, ErrFormat) {
				t.Errorf("error = %v, want ErrFormat", err)
			}
		})
	}
}

func Test_StreamReader_callbackErrorAborts(t *testing.T) {
	boom := errors.New("stop here")
	calls := 0
	err := StreamReader(strings.NewReader("@a\nAC\n+\nII\n@b\nGG\n+\nII\n"), func(Record) error {
		calls++
		return boom
	})
	if !errors.Is(err, boom) {
		t.Errorf("error = %v, want the callback's", err)
	}
	if calls != 1 {
		t.Errorf("callback ran %d times after erroring", calls)
	}
}

func Test_StreamReader_gzip(t *testing.T) {
	var buf bytes.Buffer
	zw := gzip.NewWriter(&buf)
	if _, err := zw.Write([]byte(">chr1\nACGTAC\n")); err != nil {
		t.Fatal(err)
	}
	if err := zw.Close(); err != nil {
		t.Fatal(err)
	}

	var recs []Record
	err := StreamReader(&buf, func(r Record) error {
		recs = append(recs, r)
		return nil
	})
	if err != nil {
		t.Fatal(err)
	}
	if len(recs) != 1 || string(recs[0].Seq) != "ACGTAC" {
		t.Fatalf("got %+v", recs)
	}
}

func Test_Stream(t *testing.T) {
	path := filepath.Join(t.TempDir(), "reads.fq")
	if err := os.WriteFile(path, []byte("@a\nAC\n+\nII\n"), 0644); err != nil {
		t.Fatal(err)
	}

	var recs []Record
	if err := Stream(path, func(r Record) error { recs = append(recs, r); return nil }); err != nil {
		t.Fatal(err)
	}
	if len(recs) != 1 || recs[0].ID != "a" {
		t.Fatalf("got %+v", recs)
	}

	if err := Stream(filepath.Join(t.TempDir(), "missing.fa"), func(Record) error { return nil }); err == nil {
		t.Error("missing file did not error")
	}
}
