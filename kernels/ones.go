package kernels

import "github.com/weiihann/microperf/linalg"

// Ones allocates an m x n matrix with every element set to 1.0.
func Ones(m, n int) *linalg.Dense {
	a := linalg.NewDense(m, n)
	for k := range a.Data {
		a.Data[k] = 1.0
	}

	return a
}
