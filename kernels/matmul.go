package kernels

import "github.com/weiihann/microperf/linalg"

// MatmulAAt returns b*b^T for a square matrix b.
func MatmulAAt(b *linalg.Dense) *linalg.Dense {
	return linalg.Mul(linalg.NoTrans, linalg.Trans, b, b)
}
