package cmd

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestRandseq_singleSequenceFlags(t *testing.T) {
	dir := t.TempDir()
	out := filepath.Join(dir, "single.fa")

	rootCmd.SetArgs([]string{
		"randseq", "--name", "plasmid", "--length", "250", "--gc", "0.4",
		"-o", out, "--seed", "11",
	})
	if err := rootCmd.Execute(); err != nil {
		t.Fatalf("randseq: %v", err)
	}

	raw, err := os.ReadFile(out)
	if err != nil {
		t.Fatal(err)
	}
	lines := strings.Split(strings.TrimRight(string(raw), "\n"), "\n")
	if !strings.HasPrefix(lines[0], ">") || strings.Fields(lines[0][1:])[0] != "plasmid" {
		t.Errorf("header = %q, want >plasmid", lines[0])
	}
	bases := 0
	for _, line := range lines[1:] {
		if len(line) > 60 {
			t.Errorf("line longer than 60 bases: %d", len(line))
		}
		bases += len(line)
	}
	if bases != 250 {
		t.Errorf("bases = %d, want 250", bases)
	}
}

func TestRandseq_endToEnd(t *testing.T) {
	dir := t.TempDir()
	out := filepath.Join(dir, "ref.fa")

	rootCmd.SetArgs([]string{
		"randseq",
		"--seq", "chr1,120,0.6",
		"--seq", "chr2,80",
		"-o", out, "--seed", "3",
	})
	if err := rootCmd.Execute(); err != nil {
		t.Fatalf("randseq: %v", err)
	}

	raw, err := os.ReadFile(out)
	if err != nil {
		t.Fatal(err)
	}

	type rec struct {
		name string
		seq  string
	}
	var recs []rec
	for _, line := range strings.Split(strings.TrimRight(string(raw), "\n"), "\n") {
		if strings.HasPrefix(line, ">") {
			recs = append(recs, rec{name: strings.Fields(line[1:])[0]})
			continue
		}
		if len(recs) == 0 {
			t.Fatalf("sequence before first header: %q", line)
		}
		recs[len(recs)-1].seq += line
	}

	if len(recs) != 2 {
		t.Fatalf("records = %d, want 2", len(recs))
	}
	wants := []rec{{name: "chr1"}, {name: "chr2"}}
	lengths := []int{120, 80}
	for i, r := range recs {
		if r.name != wants[i].name {
			t.Errorf("record %d name = %q, want %q", i, r.name, wants[i].name)
		}
		if len(r.seq) != lengths[i] {
			t.Errorf("record %d length = %d, want %d", i, len(r.seq), lengths[i])
		}
		if strings.Trim(r.seq, "ACGT") != "" {
			t.Errorf("record %d has bases outside ACGT: %q", i, r.seq)
		}
	}
}

func TestRandseq_rejectsBadRequest(t *testing.T) {
	rootCmd.SetArgs([]string{"randseq", "--seq", "chr1"})
	if err := rootCmd.Execute(); err == nil {
		t.Fatal("randseq accepted a request without a length")
	}
}
