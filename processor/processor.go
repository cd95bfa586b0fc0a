// Package processor drives the capture, transform, and render cycle.
package processor

import (
	"context"
	"sync"
	"time"

	"github.com/pkg/errors"

	"github.com/prism-viz/prism/dsp"
	"github.com/prism-viz/prism/dsp/window"
	"github.com/prism-viz/prism/fft"
	"github.com/prism-viz/prism/ring"
)

// Output receives one slice of normalized bar heights per rendered frame.
// It must not retain or mutate the slice.
type Output interface {
	Draw(bars []float64) error
}

// Config holds everything the pipeline coordinator owns or talks to.
type Config struct {
	SampleRate float64         // rate at which samples arrive
	SampleSize int             // transform window size
	FrameRate  int             // render loop cap, frames per second
	Ring       *ring.Buffer    // capture ring, written by the input session
	Analyzer   dsp.Analyzer    // bin to bar height conversion
	Windower   window.Function // taper applied to each analysis window
	Output     Output          // render target
}

type processor struct {
	sampleRate float64
	sampleSize int
	frameRate  int

	ring *ring.Buffer

	// The transform side. winBuf is rebuilt from the ring each cycle and is
	// the plan's bound input; fftBuf is its bound output.
	winBuf []float64
	fftBuf []complex128
	plan   *fft.Plan

	// The latest transform result, shared with the render loop.
	snapshot []complex128
	snapMu   sync.Mutex

	// Render-side buffers. renderBuf takes the snapshot copy so no lock is
	// held during bin math or drawing.
	renderBuf []complex128
	barBuf    []float64

	anlz  dsp.Analyzer
	wndwr window.Function
	out   Output

	wg sync.WaitGroup
}

// New allocates the pipeline buffers and builds the transform plan. Plan
// construction is the one step that can fail.
func New(cfg Config) (*processor, error) {
	bins := cfg.SampleSize/2 + 1

	p := &processor{
		sampleRate: cfg.SampleRate,
		sampleSize: cfg.SampleSize,
		frameRate:  cfg.FrameRate,
		ring:       cfg.Ring,
		winBuf:     make([]float64, cfg.SampleSize),
		fftBuf:     make([]complex128, bins),
		snapshot:   make([]complex128, bins),
		renderBuf:  make([]complex128, bins),
		barBuf:     make([]float64, bins),
		anlz:       cfg.Analyzer,
		wndwr:      cfg.Windower,
		out:        cfg.Output,
	}

	plan, err := fft.NewPlan(p.winBuf, p.fftBuf)
	if err != nil {
		return nil, errors.Wrap(err, "failed to build transform plan")
	}
	p.plan = plan

	return p, nil
}

// Start launches the background transform loop.
func (p *processor) Start(ctx context.Context) context.Context {
	p.wg.Add(1)
	go p.transformLoop(ctx)
	return ctx
}

// Stop waits for the background loop to observe cancellation and exit. Call
// it only after the context passed to Start has been canceled.
func (p *processor) Stop() {
	p.wg.Wait()
}

// transformLoop refreshes the shared snapshot roughly once per window's
// worth of audio. It free-runs on its own timer; it is deliberately not
// synchronized to actual delivery.
func (p *processor) transformLoop(ctx context.Context) {
	defer p.wg.Done()

	interval := time.Duration(float64(p.sampleSize) / p.sampleRate * float64(time.Second))
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		p.transform()

		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
		}
	}
}

// transform runs one window-transform cycle. The ring lock is released
// before Execute runs, and only the result copy happens under the snapshot
// lock.
func (p *processor) transform() {
	p.ring.Snapshot(p.winBuf)

	if p.wndwr != nil {
		p.wndwr(p.winBuf)
	}

	p.plan.Execute()

	p.snapMu.Lock()
	copy(p.snapshot, p.fftBuf)
	p.snapMu.Unlock()
}

// Render runs the foreground draw loop until ctx is canceled, capped at the
// configured frame rate. It returns the first draw error, if any.
func (p *processor) Render(ctx context.Context) error {
	frameRate := p.frameRate
	if frameRate < 1 {
		frameRate = 1
	}

	ticker := time.NewTicker(time.Second / time.Duration(frameRate))
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return nil
		case <-ticker.C:
		}

		if err := p.frame(); err != nil {
			return err
		}
	}
}

// frame copies the snapshot out and draws it. No lock is held during bin
// math or the draw call.
func (p *processor) frame() error {
	p.snapMu.Lock()
	copy(p.renderBuf, p.snapshot)
	p.snapMu.Unlock()

	for idx := range p.barBuf {
		p.barBuf[idx] = p.anlz.ProcessBin(idx, p.renderBuf)
	}

	return p.out.Draw(p.barBuf)
}
