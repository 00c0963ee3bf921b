package simulate

import (
	"testing"

	"gonum.org/v1/gonum/stat"
)

func Test_insertLength(t *testing.T) {
	ctx := NewRunContext(11)
	const insert, readLen = 180, 100

	draws := make([]float64, 2000)
	for i := range draws {
		l := insertLength(ctx, insert, readLen)
		if l < readLen {
			t.Fatalf("draw %d shorter than read length %d", l, readLen)
		}
		draws[i] = float64(l)
	}
	if mean := stat.Mean(draws, nil); mean < 170 || mean > 190 {
		t.Errorf("mean insert length %.1f outside [170, 190]", mean)
	}
	if sd := stat.StdDev(draws, nil); sd < 10 || sd > 35 {
		t.Errorf("insert length spread %.1f outside [10, 35]", sd)
	}
}

func Test_longReadLength(t *testing.T) {
	ctx := NewRunContext(3)
	const readLen = 1000

	draws := make([]float64, 4000)
	for i := range draws {
		l := longReadLength(ctx, readLen)
		if l < 0 {
			t.Fatalf("negative length %d", l)
		}
		draws[i] = float64(l)
	}
	if mean := stat.Mean(draws, nil); mean < 850 || mean > 1150 {
		t.Errorf("mean long read length %.1f outside [850, 1150]", mean)
	}
	// Lengths should be widely dispersed, not clustered at the mean.
	if sd := stat.StdDev(draws, nil); sd < 300 || sd > 600 {
		t.Errorf("long read length spread %.1f outside [300, 600]", sd)
	}
}

func Test_tileFuzz(t *testing.T) {
	ctx := NewRunContext(5)
	neg, pos := 0, 0
	for i := 0; i < 2000; i++ {
		f := tileFuzz(ctx)
		if f < -tileFuzzShift {
			t.Fatalf("fuzz %d below floor %d", f, -tileFuzzShift)
		}
		if f < 0 {
			neg++
		} else if f > 0 {
			pos++
		}
	}
	if neg == 0 || pos == 0 {
		t.Errorf("fuzz draws never cross zero: %d negative, %d positive", neg, pos)
	}
}

func Test_tileLength_staysInRegion(t *testing.T) {
	ctx := NewRunContext(9)
	for i := 0; i < 500; i++ {
		// Gap of 100 starting at 900 in a 1000-base region: negative fuzz
		// would overrun the region end and must collapse back to the gap.
		l := tileLength(ctx, 100, 900, 1000)
		if l < 1 || l > 100 {
			t.Fatalf("tile length %d outside [1, 100]", l)
		}
	}
	for i := 0; i < 500; i++ {
		// A one-base gap mid-region: positive fuzz halves to zero, negative
		// fuzz extends the tile but never past the fuzz floor.
		l := tileLength(ctx, 1, 0, 1000)
		if l < 0 || l > 1+tileFuzzShift {
			t.Fatalf("tile length %d outside [0, %d]", l, 1+tileFuzzShift)
		}
	}
}
