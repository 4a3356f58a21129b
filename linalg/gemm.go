package linalg

import (
	"errors"

	"gonum.org/v1/gonum/blas"
	"gonum.org/v1/gonum/blas/blas64"
)

// ErrShape is the panic value for operands whose dimensions do not
// compose.
var ErrShape = errors.New("linalg: dimension mismatch")

// Transpose selects whether an operand enters the product as-is or
// transposed.
type Transpose = blas.Transpose

// Operand flags accepted by Gemm.
const (
	NoTrans = blas.NoTrans
	Trans   = blas.Trans
)

// Gemm computes c = alpha*op(a)*op(b) + beta*c. It panics with ErrShape
// unless op(a) is m x k, op(b) is k x n and c is m x n.
//
// gonum's BLAS is row-major. A column-major buffer read as row-major is the
// transpose of the same matrix, so the product is formed as
// c^T = op(b)^T * op(a)^T on the row-major views with the operands swapped
// and the transpose flags unchanged.
func Gemm(tA, tB Transpose, alpha float64, a, b *Dense, beta float64, c *Dense) {
	am, ak := opDims(tA, a)
	bk, bn := opDims(tB, b)

	if ak != bk || c.Rows != am || c.Cols != bn {
		panic(ErrShape)
	}

	blas64.Gemm(tB, tA, alpha, rowMajor(b), rowMajor(a), beta, rowMajor(c))
}

// Mul returns op(a)*op(b) in a freshly allocated matrix.
func Mul(tA, tB Transpose, a, b *Dense) *Dense {
	rows, _ := opDims(tA, a)
	_, cols := opDims(tB, b)

	c := NewDense(rows, cols)
	Gemm(tA, tB, 1.0, a, b, 0.0, c)

	return c
}

// opDims returns the shape of op(m).
func opDims(t Transpose, m *Dense) (rows, cols int) {
	if t == Trans {
		return m.Cols, m.Rows
	}

	return m.Rows, m.Cols
}

func rowMajor(m *Dense) blas64.General {
	return blas64.General{
		Rows:   m.Cols,
		Cols:   m.Rows,
		Stride: max(1, m.Rows),
		Data:   m.Data,
	}
}
