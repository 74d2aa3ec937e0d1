// Package matio reads and writes the plain-text matrix format used by the
// conv2d command.
//
// The format is a header line of two whitespace-separated integers
// ("height width") followed by height lines of width decimal values.
// Values are written with three fractional digits and a trailing space per
// value; the reader accepts any whitespace separation.
package matio

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/cwbudde/algo-conv2d/conv2d"
)

// Errors returned by the reader.
var (
	ErrEmptyInput      = errors.New("matio: empty input")
	ErrMalformedHeader = errors.New("matio: malformed header")
	ErrShortData       = errors.New("matio: fewer values than header declares")
)

// maxLineBytes bounds a single row line; generous enough for wide matrices.
const maxLineBytes = 64 * 1024 * 1024

// Read parses a matrix from r.
func Read(r io.Reader) (*conv2d.Matrix, error) {
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 64*1024), maxLineBytes)

	if !sc.Scan() {
		if err := sc.Err(); err != nil {
			return nil, fmt.Errorf("matio: read header: %w", err)
		}
		return nil, ErrEmptyInput
	}

	fields := strings.Fields(sc.Text())
	if len(fields) != 2 {
		return nil, fmt.Errorf("%w: %q", ErrMalformedHeader, sc.Text())
	}
	height, err := strconv.Atoi(fields[0])
	if err != nil {
		return nil, fmt.Errorf("%w: height %q", ErrMalformedHeader, fields[0])
	}
	width, err := strconv.Atoi(fields[1])
	if err != nil {
		return nil, fmt.Errorf("%w: width %q", ErrMalformedHeader, fields[1])
	}

	m, err := conv2d.New(height, width)
	if err != nil {
		return nil, err
	}

	data := m.Data()
	for row := 0; row < height; row++ {
		if !sc.Scan() {
			if err := sc.Err(); err != nil {
				return nil, fmt.Errorf("matio: read row %d: %w", row, err)
			}
			return nil, fmt.Errorf("%w: got %d of %d rows", ErrShortData, row, height)
		}

		values := strings.Fields(sc.Text())
		if len(values) < width {
			return nil, fmt.Errorf("%w: row %d has %d of %d values", ErrShortData, row, len(values), width)
		}
		for col := 0; col < width; col++ {
			v, err := strconv.ParseFloat(values[col], 64)
			if err != nil {
				return nil, fmt.Errorf("matio: row %d col %d: %w", row, col, err)
			}
			data[row*width+col] = v
		}
	}

	return m, nil
}

// ReadFile parses a matrix from the file at path.
func ReadFile(path string) (*conv2d.Matrix, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("matio: %w", err)
	}
	defer f.Close()

	return Read(f)
}

// Write serializes m to w: a "height width" header line, then one line per
// row with each value formatted to three decimal places.
func Write(w io.Writer, m *conv2d.Matrix) error {
	if m == nil {
		return conv2d.ErrNilMatrix
	}

	bw := bufio.NewWriter(w)
	height, width := m.Height(), m.Width()
	data := m.Data()

	if _, err := fmt.Fprintf(bw, "%d %d\n", height, width); err != nil {
		return fmt.Errorf("matio: write header: %w", err)
	}
	for row := 0; row < height; row++ {
		for col := 0; col < width; col++ {
			if _, err := fmt.Fprintf(bw, "%.3f ", data[row*width+col]); err != nil {
				return fmt.Errorf("matio: write row %d: %w", row, err)
			}
		}
		if err := bw.WriteByte('\n'); err != nil {
			return fmt.Errorf("matio: write row %d: %w", row, err)
		}
	}

	if err := bw.Flush(); err != nil {
		return fmt.Errorf("matio: flush: %w", err)
	}
	return nil
}

// WriteFile serializes m to the file at path, creating or truncating it.
func WriteFile(path string, m *conv2d.Matrix) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("matio: %w", err)
	}

	if err := Write(f, m); err != nil {
		f.Close()
		return err
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("matio: close %s: %w", path, err)
	}
	return nil
}
