// Package linalg holds the dense column-major matrix used by the matrix
// kernels and adapts it to the gonum BLAS GEMM routine.
package linalg

import "fmt"

// Dense is a rows x cols matrix stored contiguously in column-major order:
// element (i, j) lives at Data[j*Rows+i].
type Dense struct {
	Rows int
	Cols int
	Data []float64
}

// NewDense allocates a zeroed rows x cols matrix.
func NewDense(rows, cols int) *Dense {
	if rows < 0 || cols < 0 {
		panic(fmt.Sprintf("linalg: negative dimension %dx%d", rows, cols))
	}

	return &Dense{
		Rows: rows,
		Cols: cols,
		Data: make([]float64, rows*cols),
	}
}

// At returns element (i, j).
func (m *Dense) At(i, j int) float64 {
	return m.Data[j*m.Rows+i]
}

// Set stores v at element (i, j).
func (m *Dense) Set(i, j int, v float64) {
	m.Data[j*m.Rows+i] = v
}

// Trace sums the main diagonal.
func (m *Dense) Trace() float64 {
	var sum float64

	n := min(m.Rows, m.Cols)
	for j := 0; j < n; j++ {
		sum += m.Data[j*(m.Rows+1)]
	}

	return sum
}
