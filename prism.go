// Package prism renders the live frequency spectrum of an audio input
// device as a rainbow bar chart on the terminal.
package prism

import (
	"context"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"

	"github.com/prism-viz/prism/dsp"
	"github.com/prism-viz/prism/dsp/window"
	"github.com/prism-viz/prism/graphic"
	"github.com/prism-viz/prism/input"
	"github.com/prism-viz/prism/processor"
	"github.com/prism-viz/prism/ring"
)

// Run wires the capture, transform, and render stages together and blocks
// until the user quits or a stage fails. Teardown runs in reverse order of
// setup: capture stops first, then the background loop drains, then the
// display and backend are released.
func Run(cfg *Config) error {

	// INPUT SETUP

	backend, err := input.InitBackend(cfg.Backend)
	if err != nil {
		return err
	}
	defer backend.Close()

	device, err := input.GetDevice(backend, cfg.Device)
	if err != nil {
		return err
	}

	ringBuf := ring.New(cfg.SampleSize)

	session, err := backend.Start(input.SessionConfig{
		Device:     device,
		SampleRate: cfg.SampleRate,
		SampleSize: cfg.SampleSize,
	})
	if err != nil {
		return errors.Wrap(err, "failed to open the input session")
	}

	// PROCESSOR SETUP

	display := &graphic.Display{}

	vis, err := processor.New(processor.Config{
		SampleRate: cfg.SampleRate,
		SampleSize: cfg.SampleSize,
		FrameRate:  cfg.FrameRate,
		Ring:       ringBuf,
		Analyzer: dsp.NewAnalyzer(dsp.Config{
			SampleRate: cfg.SampleRate,
			SampleSize: cfg.SampleSize,
		}),
		Windower: window.Hann,
		Output:   display,
	})
	if err != nil {
		return err
	}

	// DISPLAY SETUP

	if err := display.Init(); err != nil {
		return err
	}
	defer display.Close()

	// The display cancels this context when the user quits; the transform
	// loop and the render loop both watch it.
	ctx, cancel := context.WithCancel(context.Background())

	ctx = display.Start(ctx)
	ctx = vis.Start(ctx)

	defer vis.Stop()
	defer cancel()

	if err := session.Start(ringBuf.WriteBlock); err != nil {
		return errors.Wrap(err, "failed to start the input session")
	}
	defer session.Stop()

	logrus.WithFields(logrus.Fields{
		"device": device.String(),
		"rate":   cfg.SampleRate,
		"window": cfg.SampleSize,
	}).Debug("pipeline running")

	return vis.Render(ctx)
}
