// Package window provides window functions for signal analysis.
//
// See https://wikipedia.org/wiki/Window_function
package window

import "math"

// Function is a function that tapers the buffer in place before a transform.
type Function func(buf []float64)

// Rectangle is just do nothing
func Rectangle(buf []float64) {
	// do nothing
}

// CosSum modifies the buffer to conform to a symmetric cosine sum window
// following a0. The taper touches zero at both ends when a0 is 0.5.
func CosSum(buf []float64, a0 float64) {
	size := len(buf)
	if size < 2 {
		return
	}

	a1 := 1.0 - a0
	coef := 2.0 * math.Pi / float64(size-1)
	for n := 0; n < size; n++ {
		buf[n] *= (a0 - a1*math.Cos(coef*float64(n)))
	}
}

// Hann modifies the buffer to a Hann window
func Hann(buf []float64) {
	CosSum(buf, 0.5)
}

// Hamming modifies the buffer to a Hamming window
func Hamming(buf []float64) {
	CosSum(buf, 25.0/46.0)
}
