package kernels

import "math/cmplx"

// MandelMaxIter is the iteration cap for Mandel.
const MandelMaxIter = 80

// Mandel iterates z = z*z + c from z = c and returns the iteration at
// which |z| first exceeds 2. A point already outside the radius scores 0;
// a point that never escapes scores MandelMaxIter+1.
func Mandel(z complex128) int {
	c := z

	n := 0
	for ; n < MandelMaxIter; n++ {
		if cmplx.Abs(z) > 2.0 {
			n--

			break
		}

		z = z*z + c
	}

	return n + 1
}

// MandelPerf sums Mandel over re in [-2.0, 0.5] and im in [-1.0, 1.0],
// both stepped by accumulating 0.1.
func MandelPerf() int {
	sum := 0

	for re := -2.0; re <= 0.5; re += 0.1 {
		for im := -1.0; im <= 1.0; im += 0.1 {
			sum += Mandel(complex(re, im))
		}
	}

	return sum
}
