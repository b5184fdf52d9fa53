package kernel

import (
	"errors"
	"fmt"
)

// ErrShapeMismatch is returned when the declared dimensions of paired
// inputs do not agree, for instance when a symptom vector is shorter
// than the pattern rows it is scored against.
var ErrShapeMismatch = errors.New("shape mismatch")

// Matrix is a dense matrix of 32 bit floats stored as a single flat,
// row-major buffer with its declared shape.
type Matrix struct {
	Rows int
	Cols int
	Data []float32
}

// NewMatrix allocates a zeroed matrix of the given shape.
func NewMatrix(rows, cols int) Matrix {
	return Matrix{
		Rows: rows,
		Cols: cols,
		Data: make([]float32, rows*cols),
	}
}

// Row returns the i-th row of the matrix as a subslice of the
// underlying buffer, no copy is performed.
func (m Matrix) Row(i int) []float32 {
	return m.Data[i*m.Cols : (i+1)*m.Cols]
}

// shape returns an error if the buffer size does not match the
// declared dimensions of the matrix.
func (m Matrix) shape(name string) error {
	if m.Rows < 0 || m.Cols < 0 || len(m.Data) != m.Rows*m.Cols {
		return fmt.Errorf("%w: %s declared as %dx%d but has %d elements",
			ErrShapeMismatch, name, m.Rows, m.Cols, len(m.Data))
	}
	return nil
}

// shapeCols returns an error if the matrix is malformed or its row
// width differs from the width of the vector it is paired with.
func (m Matrix) shapeCols(name string, cols int) error {
	if err := m.shape(name); err != nil {
		return err
	}
	if m.Cols != cols {
		return fmt.Errorf("%w: %s has %d columns, expected %d",
			ErrShapeMismatch, name, m.Cols, cols)
	}
	return nil
}

// sameLength returns an error if a vector paired with another does not
// have the expected number of elements.
func sameLength(name string, v []float32, n int) error {
	if len(v) != n {
		return fmt.Errorf("%w: %s has %d elements, expected %d",
			ErrShapeMismatch, name, len(v), n)
	}
	return nil
}
