// Package fft provides a plan-style wrapper around the fourier transformer.
package fft

import (
	"github.com/pkg/errors"
	"gonum.org/v1/gonum/dsp/fourier"
)

// Plan is a real-to-complex transform bound to fixed input and output
// slices. Building one is the expensive step; Execute just re-runs the
// transform on whatever the input slice currently holds.
type Plan struct {
	input  []float64
	output []complex128
	fft    *fourier.FFT
}

// NewPlan builds a transform for len(input) real samples. The output slice
// must hold len(input)/2+1 bins; bin 0 is the DC component. The buffers are
// bound here and never move afterward.
func NewPlan(input []float64, output []complex128) (*Plan, error) {
	if len(input) < 4 {
		return nil, errors.Errorf("transform size too small: %d (4+ required)", len(input))
	}

	if want := len(input)/2 + 1; len(output) != want {
		return nil, errors.Errorf("output holds %d bins, transform produces %d", len(output), want)
	}

	return &Plan{
		input:  input,
		output: output,
		fft:    fourier.NewFFT(len(input)),
	}, nil
}

// Execute runs the transform, overwriting the bound output slice.
func (p *Plan) Execute() {
	p.fft.Coefficients(p.output, p.input)
}
