package kernels

// PiSum returns the sum of 1/k^2 for k = 1..10000. The sum is recomputed
// 500 times and only the last pass is kept.
func PiSum() float64 {
	var sum float64

	for j := 0; j < 500; j++ {
		sum = 0.0
		for k := 1; k <= 10000; k++ {
			sum += 1.0 / float64(k*k)
		}
	}

	return sum
}
