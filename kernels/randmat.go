package kernels

import (
	"math"

	"github.com/weiihann/microperf/linalg"
)

const statBlock = 5

// Dispersion holds the coefficient-of-variation statistics of the
// fourth-power traces computed by RandMatStat.
type Dispersion struct {
	S1 float64
	S2 float64
}

// RandMatStat runs t trials. Each trial draws four 5x5 standard-normal
// blocks a, b, c, d and forms P = [a b c d] (5x20) and
// Q = [a b; c d] (10x10). It records v = trace((P*P^T)^4), which equals
// trace((P^T*P)^4), and w = trace((Q^T*Q)^4), then returns
//
//	s = sqrt(t*(t*x2 - x1^2) / ((t-1)*x1^2))
//
// for x = v and x = w, where x1 and x2 are the first and second raw sums.
// The result is NaN or Inf when t < 2 or a raw sum is exactly zero.
func RandMatStat(src NormalSource, t int) Dispersion {
	const n = statBlock

	v := make([]float64, t)
	w := make([]float64, t)

	a := linalg.NewDense(n, n)
	b := linalg.NewDense(n, n)
	c := linalg.NewDense(n, n)
	d := linalg.NewDense(n, n)
	p := linalg.NewDense(n, 4*n)
	q := linalg.NewDense(2*n, 2*n)

	pp1 := linalg.NewDense(n, n)
	pp2 := linalg.NewDense(n, n)
	qq1 := linalg.NewDense(2*n, 2*n)
	qq2 := linalg.NewDense(2*n, 2*n)

	for i := 0; i < t; i++ {
		src.FillNormal(a.Data)
		src.FillNormal(b.Data)
		src.FillNormal(c.Data)
		src.FillNormal(d.Data)

		// Column-major horizontal concatenation is buffer concatenation.
		copy(p.Data[0*n*n:], a.Data)
		copy(p.Data[1*n*n:], b.Data)
		copy(p.Data[2*n*n:], c.Data)
		copy(p.Data[3*n*n:], d.Data)

		for col := 0; col < n; col++ {
			for row := 0; row < n; row++ {
				q.Set(row, col, a.At(row, col))
				q.Set(row, n+col, b.At(row, col))
				q.Set(n+row, col, c.At(row, col))
				q.Set(n+row, n+col, d.At(row, col))
			}
		}

		linalg.Gemm(linalg.NoTrans, linalg.Trans, 1.0, p, p, 0.0, pp1)
		linalg.Gemm(linalg.NoTrans, linalg.NoTrans, 1.0, pp1, pp1, 0.0, pp2)
		linalg.Gemm(linalg.NoTrans, linalg.NoTrans, 1.0, pp2, pp2, 0.0, pp1)
		v[i] = pp1.Trace()

		linalg.Gemm(linalg.Trans, linalg.NoTrans, 1.0, q, q, 0.0, qq1)
		linalg.Gemm(linalg.NoTrans, linalg.NoTrans, 1.0, qq1, qq1, 0.0, qq2)
		linalg.Gemm(linalg.NoTrans, linalg.NoTrans, 1.0, qq2, qq2, 0.0, qq1)
		w[i] = qq1.Trace()
	}

	var v1, v2, w1, w2 float64
	for i := 0; i < t; i++ {
		v1 += v[i]
		v2 += v[i] * v[i]
		w1 += w[i]
		w2 += w[i] * w[i]
	}

	ft := float64(t)

	return Dispersion{
		S1: math.Sqrt((ft * (ft*v2 - v1*v1)) / ((ft - 1) * v1 * v1)),
		S2: math.Sqrt((ft * (ft*w2 - w1*w1)) / ((ft - 1) * w1 * w1)),
	}
}

// RandMatMul multiplies two fresh n x n uniform matrices.
func RandMatMul(src UniformSource, n int) *linalg.Dense {
	a := linalg.NewDense(n, n)
	b := linalg.NewDense(n, n)
	src.FillUniform(a.Data)
	src.FillUniform(b.Data)

	return linalg.Mul(linalg.NoTrans, linalg.NoTrans, a, b)
}
