// Package kernels implements the micro-benchmark workloads: recursion,
// integer parsing, array construction, matrix products, Mandelbrot escape
// counts, in-place quicksort, series summation and random-matrix
// statistics. Each kernel is a plain function; randomness is supplied by
// the caller through UniformSource or NormalSource.
package kernels

// UniformSource fills buffers with uniform [0,1) variates.
type UniformSource interface {
	FillUniform(dst []float64)
}

// NormalSource fills buffers with standard-normal variates.
type NormalSource interface {
	FillNormal(dst []float64)
}
