package cmd

import (
	"encoding/csv"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestStats_endToEnd(t *testing.T) {
	dir := t.TempDir()
	in := filepath.Join(dir, "reads.fq")
	fastq := "@r0\nACGT\n+\nIIII\n@r1\nGGGGGG\n+\n555555\n"
	if err := os.WriteFile(in, []byte(fastq), 0644); err != nil {
		t.Fatal(err)
	}
	csvPath := filepath.Join(dir, "summary.csv")
	plotsDir := filepath.Join(dir, "plots")

	rootCmd.SetArgs([]string{"stats", "-i", in, "--csv", csvPath, "--plots", plotsDir})
	if err := rootCmd.Execute(); err != nil {
		t.Fatalf("stats: %v", err)
	}

	f, err := os.Open(csvPath)
	if err != nil {
		t.Fatal(err)
	}
	defer f.Close()
	rows, err := csv.NewReader(f).ReadAll()
	if err != nil {
		t.Fatal(err)
	}
	if len(rows) != 2 {
		t.Fatalf("csv rows = %d, want 2", len(rows))
	}
	byName := map[string]string{}
	for i, h := range rows[0] {
		byName[h] = rows[1][i]
	}
	if byName["Reads"] != "2" || byName["GCPercent"] != "80.00" {
		t.Errorf("summary cells = %v", byName)
	}

	for _, name := range []string{"length.svg", "gc.svg", "quality.svg", "per_base_quality.svg"} {
		raw, err := os.ReadFile(filepath.Join(plotsDir, name))
		if err != nil {
			t.Errorf("missing plot %s: %v", name, err)
			continue
		}
		if !strings.Contains(string(raw), "<svg") {
			t.Errorf("%s is not svg", name)
		}
	}
}

func TestStats_fastaSkipsQualityPlots(t *testing.T) {
	dir := t.TempDir()
	in := filepath.Join(dir, "ref.fa")
	if err := os.WriteFile(in, []byte(">tig0\nACGTACGT\n"), 0644); err != nil {
		t.Fatal(err)
	}
	plotsDir := filepath.Join(dir, "plots")

	rootCmd.SetArgs([]string{"stats", "-i", in, "--csv", "", "--plots", plotsDir})
	if err := rootCmd.Execute(); err != nil {
		t.Fatalf("stats: %v", err)
	}

	if _, err := os.Stat(filepath.Join(plotsDir, "length.svg")); err != nil {
		t.Errorf("length plot missing: %v", err)
	}
	if _, err := os.Stat(filepath.Join(plotsDir, "quality.svg")); !os.IsNotExist(err) {
		t.Errorf("quality plot written for FASTA input: %v", err)
	}
}
