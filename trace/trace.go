// Package trace provides the channels-by-time matrix form shared by the
// fluorescence analysis packages, plus the shape bookkeeping around it.
package trace

import (
	"fmt"

	"github.com/cwbudde/algo-vecmath"
)

// Matrix holds one fluorescence trace per row, sampled uniformly in time.
// Rows are independent channels (imaged cells); columns are timepoints.
type Matrix [][]float64

// FromSeries promotes a single trace to a one-row matrix. The samples are
// copied, so the caller's slice is never aliased.
func FromSeries(x []float64) Matrix {
	row := make([]float64, len(x))
	copy(row, x)

	return Matrix{row}
}

// Channels returns the number of rows.
func (m Matrix) Channels() int {
	return len(m)
}

// Samples returns the number of timepoints per channel, 0 for an empty matrix.
func (m Matrix) Samples() int {
	if len(m) == 0 {
		return 0
	}

	return len(m[0])
}

// Validate reports an error when rows differ in length or a row is nil.
func (m Matrix) Validate() error {
	if len(m) == 0 {
		return nil
	}

	want := len(m[0])
	for i, row := range m {
		if len(row) != want {
			return fmt.Errorf("trace: row %d has %d samples, row 0 has %d", i, len(row), want)
		}
	}

	return nil
}

// Clone returns a deep copy.
func (m Matrix) Clone() Matrix {
	out := make(Matrix, len(m))
	for i, row := range m {
		out[i] = make([]float64, len(row))
		copy(out[i], row)
	}

	return out
}

// Negated returns a sign-flipped deep copy, used when the biological signal
// of interest is a fluorescence decrease rather than an increase.
func (m Matrix) Negated() Matrix {
	out := make(Matrix, len(m))
	for i, row := range m {
		out[i] = make([]float64, len(row))
		vecmath.ScaleBlock(out[i], row, -1)
	}

	return out
}
