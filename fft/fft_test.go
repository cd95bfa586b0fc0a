package fft

import (
	"math"
	"math/cmplx"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewPlanRejectsBadSizes(t *testing.T) {
	_, err := NewPlan(make([]float64, 2), make([]complex128, 2))
	assert.Error(t, err)

	_, err = NewPlan(make([]float64, 64), make([]complex128, 64))
	assert.Error(t, err)

	_, err = NewPlan(make([]float64, 64), make([]complex128, 33))
	assert.NoError(t, err)
}

func TestExecuteZeroInput(t *testing.T) {
	input := make([]float64, 256)
	output := make([]complex128, 129)

	plan, err := NewPlan(input, output)
	require.NoError(t, err)

	plan.Execute()

	for i, bin := range output {
		assert.Zero(t, cmplx.Abs(bin), "bin %d", i)
	}
}

// A bin-aligned sinusoid should put its energy into exactly that bin.
func TestExecuteSinePeak(t *testing.T) {
	const (
		size = 1024
		k    = 37
	)

	input := make([]float64, size)
	output := make([]complex128, size/2+1)

	for i := range input {
		input[i] = math.Sin(2 * math.Pi * k * float64(i) / size)
	}

	plan, err := NewPlan(input, output)
	require.NoError(t, err)

	plan.Execute()

	peak := 0
	for i := range output {
		if cmplx.Abs(output[i]) > cmplx.Abs(output[peak]) {
			peak = i
		}
	}

	assert.Equal(t, k, peak)
	assert.InDelta(t, size/2, cmplx.Abs(output[peak]), 1e-6)
}

// The plan stays bound to its buffers; refilling the input and re-running
// must overwrite the previous result in place.
func TestExecuteReusesBuffers(t *testing.T) {
	input := make([]float64, 128)
	output := make([]complex128, 65)

	plan, err := NewPlan(input, output)
	require.NoError(t, err)

	for i := range input {
		input[i] = 1
	}
	plan.Execute()
	assert.InDelta(t, float64(len(input)), cmplx.Abs(output[0]), 1e-9)

	for i := range input {
		input[i] = 0
	}
	plan.Execute()
	assert.Zero(t, cmplx.Abs(output[0]))
}
