package conv2d

import (
	"errors"
	"math"
	"testing"

	"github.com/cwbudde/algo-conv2d/internal/testutil"
)

func mustMatrix(t *testing.T, height, width int, data []float64) *Matrix {
	t.Helper()
	m, err := FromSlice(height, width, data)
	if err != nil {
		t.Fatalf("FromSlice(%d, %d): %v", height, width, err)
	}
	return m
}

func TestSerialBoundaryAveraging(t *testing.T) {
	// 3x3 all-ones feature, 3x3 box kernel: corners see 4 of 9 taps,
	// edge midpoints 6 of 9, the center all 9.
	feature := mustMatrix(t, 3, 3, testutil.ConstantGrid(1, 3, 3))
	kernel := mustMatrix(t, 3, 3, testutil.ConstantGrid(1.0/9.0, 3, 3))

	out, err := Serial(feature, kernel)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	c, e := 4.0/9.0, 6.0/9.0
	want := []float64{
		c, e, c,
		e, 1, e,
		c, e, c,
	}
	testutil.RequireGridNearlyEqual(t, out.Data(), want, 3, 0.001)
}

func TestSerialZeroKernel(t *testing.T) {
	feature := mustMatrix(t, 4, 5, testutil.UniformGrid(7, 4, 5))
	kernel := mustMatrix(t, 3, 3, make([]float64, 9))

	out, err := Serial(feature, kernel)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	for i, v := range out.Data() {
		if v != 0 {
			t.Fatalf("index %d: got %v, want 0", i, v)
		}
	}
}

func TestSerialIdentityKernel(t *testing.T) {
	feature := mustMatrix(t, 5, 4, testutil.UniformGrid(11, 5, 4))
	kernel := mustMatrix(t, 1, 1, []float64{1})

	out, err := Serial(feature, kernel)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	// Single-tap window: no summation reordering, results are exact.
	for i, v := range out.Data() {
		if v != feature.Data()[i] {
			t.Fatalf("index %d: got %v, want %v exactly", i, v, feature.Data()[i])
		}
	}
}

func TestSerialCenteredImpulseKernel(t *testing.T) {
	feature := mustMatrix(t, 6, 7, testutil.UniformGrid(13, 6, 7))
	kernel := mustMatrix(t, 3, 3, testutil.ImpulseGrid(3, 3, 1, 1))

	out, err := Serial(feature, kernel)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	testutil.RequireGridNearlyEqual(t, out.Data(), feature.Data(), 7, 1e-12)
}

func TestSerialKernelLargerThanFeature(t *testing.T) {
	// 2x2 feature of ones against a 3x3 all-ones kernel: every output
	// cell is a corner with exactly 4 valid taps.
	feature := mustMatrix(t, 2, 2, testutil.ConstantGrid(1, 2, 2))
	kernel := mustMatrix(t, 3, 3, testutil.ConstantGrid(1, 3, 3))

	out, err := Serial(feature, kernel)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if out.Height() != 2 || out.Width() != 2 {
		t.Fatalf("output dimensions: got %dx%d, want 2x2", out.Height(), out.Width())
	}
	testutil.RequireGridNearlyEqual(t, out.Data(), testutil.ConstantGrid(4, 2, 2), 2, 1e-12)
}

func TestSerialEvenKernelCentering(t *testing.T) {
	// For kernel height 2 the taps are {-1, 0}: kernel row 0 reads the
	// neighbor above, kernel row 1 the cell itself.
	feature := mustMatrix(t, 4, 1, []float64{1, 2, 3, 4})
	kernel := mustMatrix(t, 2, 1, []float64{10, 1})

	out, err := Serial(feature, kernel)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	want := []float64{1, 12, 23, 34}
	testutil.RequireGridNearlyEqual(t, out.Data(), want, 1, 1e-12)
}

func TestSerialIsReproducible(t *testing.T) {
	feature := mustMatrix(t, 9, 9, testutil.UniformGrid(17, 9, 9))
	kernel := mustMatrix(t, 4, 5, testutil.UniformGrid(18, 4, 5))

	first, err := Serial(feature, kernel)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	second, err := Serial(feature, kernel)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	for i := range first.Data() {
		if first.Data()[i] != second.Data()[i] {
			t.Fatalf("index %d: runs differ bit-for-bit: %v vs %v",
				i, first.Data()[i], second.Data()[i])
		}
	}
}

func TestSerialDoesNotMutateInputs(t *testing.T) {
	featureData := testutil.UniformGrid(19, 5, 5)
	kernelData := testutil.UniformGrid(20, 3, 3)
	feature := mustMatrix(t, 5, 5, append([]float64(nil), featureData...))
	kernel := mustMatrix(t, 3, 3, append([]float64(nil), kernelData...))

	if _, err := Serial(feature, kernel); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	for i := range featureData {
		if feature.Data()[i] != featureData[i] {
			t.Fatalf("feature mutated at %d", i)
		}
	}
	for i := range kernelData {
		if kernel.Data()[i] != kernelData[i] {
			t.Fatalf("kernel mutated at %d", i)
		}
	}
}

func TestSerialErrors(t *testing.T) {
	valid := mustMatrix(t, 2, 2, make([]float64, 4))

	if _, err := Serial(nil, valid); !errors.Is(err, ErrNilMatrix) {
		t.Errorf("expected ErrNilMatrix, got %v", err)
	}
	if _, err := Serial(valid, nil); !errors.Is(err, ErrNilMatrix) {
		t.Errorf("expected ErrNilMatrix, got %v", err)
	}
}

// naiveReference recomputes one output cell straight from the definition,
// as an independent check on the loop variants.
func naiveReference(feature, kernel *Matrix, n, k int) float64 {
	geo, _ := NewGeometry(kernel.Height(), kernel.Width())
	rowLo, rowHi := geo.RowSpan()
	colLo, colHi := geo.ColSpan()

	sum := 0.0
	for i := rowLo; i <= rowHi; i++ {
		for j := colLo; j <= colHi; j++ {
			row, col := n+i, k+j
			if row < 0 || row >= feature.Height() || col < 0 || col >= feature.Width() {
				continue
			}
			sum += feature.At(row, col) * kernel.At(geo.KernelRow(i), geo.KernelCol(j))
		}
	}
	return sum
}

func TestSerialMatchesDefinition(t *testing.T) {
	feature := mustMatrix(t, 7, 6, testutil.UniformGrid(23, 7, 6))
	kernel := mustMatrix(t, 4, 3, testutil.UniformGrid(24, 4, 3))

	out, err := Serial(feature, kernel)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	for n := 0; n < 7; n++ {
		for k := 0; k < 6; k++ {
			want := naiveReference(feature, kernel, n, k)
			if got := out.At(n, k); math.Abs(got-want) > 1e-12 {
				t.Fatalf("cell (%d,%d): got %v, want %v", n, k, got, want)
			}
		}
	}
}
