package prism

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestValidate(t *testing.T) {
	cfg := NewZeroConfig()
	assert.NoError(t, cfg.Validate())

	cfg = NewZeroConfig()
	cfg.SampleSize = 2
	assert.ErrorContains(t, cfg.Validate(), "too small")

	cfg = NewZeroConfig()
	cfg.SampleSize = 4095
	assert.ErrorContains(t, cfg.Validate(), "power of two")

	cfg = NewZeroConfig()
	cfg.SampleRate = 1024
	assert.ErrorContains(t, cfg.Validate(), "sample rate")

	cfg = NewZeroConfig()
	cfg.FrameRate = 0
	assert.ErrorContains(t, cfg.Validate(), "frame rate")
}
