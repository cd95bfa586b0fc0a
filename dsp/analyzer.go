// Package dsp converts frequency-domain bins into drawable bar heights.
package dsp

import (
	"math"
	"math/cmplx"
)

const (
	// levelFloor keeps the logarithm defined for silent bins.
	levelFloor = 1e-6

	// dynamicRange is the decibel span mapped onto the display. Levels at or
	// below -dynamicRange clamp to zero height.
	dynamicRange = 80.0
)

// Config holds the analyzer parameters.
type Config struct {
	SampleRate float64 // rate the samples were captured at
	SampleSize int     // transform window size
}

// Analyzer maps transform bins to normalized bar heights.
type Analyzer interface {
	BinCount() int
	BinFrequency(idx int) float64
	ProcessBin(idx int, bins []complex128) float64
}

type analyzer struct {
	cfg Config
}

// NewAnalyzer returns an analyzer for the given capture parameters.
func NewAnalyzer(cfg Config) Analyzer {
	return &analyzer{cfg: cfg}
}

// BinCount returns the number of bins one transform execution produces.
func (az *analyzer) BinCount() int {
	return az.cfg.SampleSize/2 + 1
}

// BinFrequency returns the center frequency of a bin in Hz.
func (az *analyzer) BinFrequency(idx int) float64 {
	return float64(idx) * az.cfg.SampleRate / float64(az.cfg.SampleSize)
}

// ProcessBin returns the bar height for one bin, normalized to [0, 1]. It
// never mutates the bin slice.
func (az *analyzer) ProcessBin(idx int, bins []complex128) float64 {
	mag := cmplx.Abs(bins[idx]) / float64(az.cfg.SampleSize)

	height := (LevelDB(mag) + dynamicRange) / dynamicRange

	if height < 0.0 {
		return 0.0
	}
	if height > 1.0 {
		return 1.0
	}

	return height
}

// LevelDB maps a normalized magnitude to decibels, floored so that silence
// stays finite.
func LevelDB(mag float64) float64 {
	return 10 * math.Log10(mag+levelFloor)
}
