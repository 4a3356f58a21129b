package kernels

// Fib returns the nth Fibonacci number by naive double recursion.
func Fib(n int) int {
	if n < 2 {
		return n
	}

	return Fib(n-1) + Fib(n-2)
}
