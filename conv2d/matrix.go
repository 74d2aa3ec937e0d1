package conv2d

import (
	"math"
	"unsafe"
)

// CacheLineBytes is the assumed cache-line size for aligned output buffers.
const CacheLineBytes = 64

// floatsPerLine is the number of float64 elements in one cache line.
const floatsPerLine = CacheLineBytes / 8

// Matrix is an owned, contiguous, row-major buffer of float64 values with
// height/width metadata. Element (row, col) lives at data[row*width+col];
// no 2D storage is ever used.
//
// Matrices produced by NewAligned carry inert tail padding beyond Data()
// so that the buffer's total extent is a whole number of cache lines. The
// padding has no logical content and is never exposed.
type Matrix struct {
	height int
	width  int
	data   []float64
}

// New returns a zero-filled Matrix with the given dimensions.
// Dimensions must be at least 1.
func New(height, width int) (*Matrix, error) {
	if err := checkDims(height, width); err != nil {
		return nil, err
	}
	return &Matrix{
		height: height,
		width:  width,
		data:   make([]float64, height*width),
	}, nil
}

// NewAligned returns a zero-filled Matrix whose backing buffer starts on a
// cache-line boundary and whose total extent is rounded up to a whole number
// of cache lines. The rounding keeps the tail of the buffer from sharing a
// cache line with unrelated heap data that another goroutine may write.
// It does not protect rows narrower than one cache line from straddling
// lines internally; that is a best-effort mitigation, not a guarantee.
func NewAligned(height, width int) (*Matrix, error) {
	if err := checkDims(height, width); err != nil {
		return nil, err
	}
	n := height * width
	if n > math.MaxInt-2*floatsPerLine {
		return nil, ErrSizeOverflow
	}

	// Length from the aligned base, rounded up to a whole cache line.
	rounded := (n + floatsPerLine - 1) &^ (floatsPerLine - 1)

	// Over-allocate by one cache line so an aligned base always exists,
	// then slice to it. float64 slices are 8-byte aligned, so the gap to
	// the next 64-byte boundary is a whole number of elements.
	raw := make([]float64, rounded+floatsPerLine-1)
	off := 0
	if rem := uintptr(unsafe.Pointer(&raw[0])) % CacheLineBytes; rem != 0 {
		off = int((CacheLineBytes - rem) / 8)
	}

	return &Matrix{
		height: height,
		width:  width,
		data:   raw[off : off+n : off+rounded],
	}, nil
}

// FromSlice wraps an existing row-major slice without copying.
// len(data) must equal height*width. Mutations to the slice are visible
// through the Matrix and vice versa.
func FromSlice(height, width int, data []float64) (*Matrix, error) {
	if err := checkDims(height, width); err != nil {
		return nil, err
	}
	if len(data) != height*width {
		return nil, ErrLengthMismatch
	}
	return &Matrix{height: height, width: width, data: data}, nil
}

func checkDims(height, width int) error {
	if height < 1 || width < 1 {
		return ErrInvalidDimension
	}
	if height > math.MaxInt/width {
		return ErrSizeOverflow
	}
	return nil
}

// Height returns the number of rows.
func (m *Matrix) Height() int {
	return m.height
}

// Width returns the number of columns.
func (m *Matrix) Width() int {
	return m.width
}

// Data returns the underlying row-major slice of length Height()*Width().
func (m *Matrix) Data() []float64 {
	return m.data
}

// Index returns the flat offset of (row, col): row*Width() + col.
func (m *Matrix) Index(row, col int) int {
	return row*m.width + col
}

// At returns the element at (row, col). Indices must be in bounds.
func (m *Matrix) At(row, col int) float64 {
	return m.data[row*m.width+col]
}

// Fill sets every element to value.
func (m *Matrix) Fill(value float64) {
	for i := range m.data {
		m.data[i] = value
	}
}

// Zero sets every element to 0.
func (m *Matrix) Zero() {
	m.Fill(0)
}

// Clone returns a deep copy of the matrix. The copy uses an ordinary
// (unaligned) backing buffer.
func (m *Matrix) Clone() *Matrix {
	data := make([]float64, len(m.data))
	copy(data, m.data)
	return &Matrix{height: m.height, width: m.width, data: data}
}
