package conv2d

import (
	"errors"
	"testing"
)

func TestNewGeometrySpans(t *testing.T) {
	tests := []struct {
		name   string
		kh, kw int
		rowLo  int
		rowHi  int
		colLo  int
		colHi  int
	}{
		{"1x1", 1, 1, 0, 0, 0, 0},
		{"2x2", 2, 2, -1, 0, -1, 0},
		{"3x3", 3, 3, -1, 1, -1, 1},
		{"4x4", 4, 4, -2, 1, -2, 1},
		{"7x7", 7, 7, -3, 3, -3, 3},
		{"5x2", 5, 2, -2, 2, -1, 0},
		{"1x6", 1, 6, 0, 0, -3, 2},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			geo, err := NewGeometry(tt.kh, tt.kw)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}

			rowLo, rowHi := geo.RowSpan()
			colLo, colHi := geo.ColSpan()
			if rowLo != tt.rowLo || rowHi != tt.rowHi {
				t.Errorf("row span: got [%d,%d], want [%d,%d]", rowLo, rowHi, tt.rowLo, tt.rowHi)
			}
			if colLo != tt.colLo || colHi != tt.colHi {
				t.Errorf("col span: got [%d,%d], want [%d,%d]", colLo, colHi, tt.colLo, tt.colHi)
			}

			// The spans must contain exactly kh and kw offsets.
			if n := rowHi - rowLo + 1; n != tt.kh {
				t.Errorf("row tap count: got %d, want %d", n, tt.kh)
			}
			if n := colHi - colLo + 1; n != tt.kw {
				t.Errorf("col tap count: got %d, want %d", n, tt.kw)
			}
		})
	}
}

func TestGeometryKernelIndexMapping(t *testing.T) {
	geo, err := NewGeometry(4, 3)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	rowLo, rowHi := geo.RowSpan()
	for i, want := rowLo, 0; i <= rowHi; i, want = i+1, want+1 {
		if got := geo.KernelRow(i); got != want {
			t.Errorf("KernelRow(%d) = %d, want %d", i, got, want)
		}
	}

	colLo, colHi := geo.ColSpan()
	for j, want := colLo, 0; j <= colHi; j, want = j+1, want+1 {
		if got := geo.KernelCol(j); got != want {
			t.Errorf("KernelCol(%d) = %d, want %d", j, got, want)
		}
	}
}

func TestNewGeometryInvalidDimensions(t *testing.T) {
	for _, dims := range [][2]int{{0, 3}, {3, 0}, {-1, 3}, {3, -1}, {0, 0}} {
		if _, err := NewGeometry(dims[0], dims[1]); !errors.Is(err, ErrInvalidDimension) {
			t.Errorf("NewGeometry(%d, %d): expected ErrInvalidDimension, got %v", dims[0], dims[1], err)
		}
	}
}
