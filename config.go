package prism

import (
	"github.com/pkg/errors"

	"github.com/prism-viz/prism/input"
)

// Config is the top-level pipeline configuration.
type Config struct {
	// The name of a registered capture backend
	Backend string
	// The name of the device to capture from. Empty picks the default.
	Device string
	// The rate that samples are captured at
	SampleRate float64
	// The transform window size, in samples
	SampleSize int
	// The render loop cap, in frames per second
	FrameRate int
}

// NewZeroConfig returns the default configuration: the default input device
// at 44100 Hz with a 4096-sample window, drawn at 60 FPS.
func NewZeroConfig() Config {
	return Config{
		Backend:    input.DefaultBackend(),
		SampleRate: 44100,
		SampleSize: 4096,
		FrameRate:  60,
	}
}

// Validate checks the config for values the pipeline cannot run with.
func (cfg *Config) Validate() error {
	if cfg.SampleSize < 4 {
		return errors.New("sample size too small (4+ required)")
	}

	if cfg.SampleSize&(cfg.SampleSize-1) != 0 {
		return errors.New("sample size must be a power of two")
	}

	if cfg.SampleRate < float64(cfg.SampleSize) {
		return errors.New("sample rate lower than sample size")
	}

	if cfg.FrameRate < 1 {
		return errors.New("frame rate too low (1+ required)")
	}

	return nil
}
