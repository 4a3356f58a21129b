package kernels

// Quicksort sorts a[lo..hi] in place. The left partition is sorted
// recursively and the right one by looping, which bounds recursion on
// that side.
func Quicksort(a []float64, lo, hi int) {
	i, j := lo, hi

	for i < hi {
		pivot := a[(lo+hi)/2]

		for i <= j {
			for a[i] < pivot {
				i++
			}
			for a[j] > pivot {
				j--
			}
			if i <= j {
				a[i], a[j] = a[j], a[i]
				i++
				j--
			}
		}

		if lo < j {
			Quicksort(a, lo, j)
		}

		lo, j = i, hi
	}
}
