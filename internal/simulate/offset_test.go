package simulate

import (
	"reflect"
	"testing"
)

func Test_systematicOffsets(t *testing.T) {
	tests := []struct {
		name        string
		span, count int
		wantStep    int
	}{
		{"even split", 900, 20, 45},
		{"step rounds down", 1000, 30, 33},
		{"span smaller than count", 10, 20, 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			offs := systematicOffsets(tt.span, tt.count)
			if len(offs) != tt.count {
				t.Fatalf("got %d offsets, want %d", len(offs), tt.count)
			}
			if offs[0] != 0 {
				t.Errorf("first offset %d, want 0", offs[0])
			}
			for i, off := range offs {
				if off != i*tt.wantStep {
					t.Errorf("offset %d = %d, want %d", i, off, i*tt.wantStep)
				}
				if off > tt.span {
					t.Errorf("offset %d = %d exceeds span %d", i, off, tt.span)
				}
			}
		})
	}
}

func Test_randomOffsets(t *testing.T) {
	ctx := NewRunContext(42)
	offs := randomOffsets(ctx, 500, 200)
	if len(offs) != 200 {
		t.Fatalf("got %d offsets, want 200", len(offs))
	}
	for i, off := range offs {
		if off < 0 || off > 500 {
			t.Errorf("offset %d = %d outside [0, 500]", i, off)
		}
		if i > 0 && off < offs[i-1] {
			t.Errorf("offsets not sorted at index %d: %d after %d", i, off, offs[i-1])
		}
	}
}

func Test_randomOffsets_seedRepeatable(t *testing.T) {
	a := randomOffsets(NewRunContext(7), 1000, 50)
	b := randomOffsets(NewRunContext(7), 1000, 50)
	if !reflect.DeepEqual(a, b) {
		t.Error("same seed produced different offsets")
	}
}
