// Package graphic draws the spectrum on the terminal.
package graphic

import (
	"context"

	"github.com/gdamore/tcell/v2"
	"github.com/pkg/errors"
)

const (
	// DisplayBar is the block we use for full bar cells
	DisplayBar rune = '█'

	// NumRunes number of runes for sub step bars
	NumRunes = 8

	// MaxHeightFrac is the share of the surface height the tallest bar may
	// reach.
	MaxHeightFrac = 0.8

	// BarGap is the number of columns left empty after each bar slot.
	BarGap = 2
)

// barRunes are the eighth-block steps, indexed by eighths of a cell.
var barRunes = [NumRunes]rune{
	' ',
	'▁',
	'▂',
	'▃',
	'▄',
	'▅',
	'▆',
	'▇',
}

// Display handles drawing our visualizer
type Display struct {
	screen tcell.Screen
	styles []tcell.Style
}

// Init sets up the screen and puts the terminal into its alternate buffer.
func (d *Display) Init() error {
	screen, err := tcell.NewScreen()
	if err != nil {
		return errors.Wrap(err, "failed to create screen")
	}

	if err = screen.Init(); err != nil {
		return errors.Wrap(err, "failed to initialize screen")
	}

	screen.DisableMouse()
	screen.HideCursor()

	d.screen = screen

	return nil
}

// Start spawns the event poller. The returned context is canceled when the
// user asks to quit.
func (d *Display) Start(ctx context.Context) context.Context {
	dispCtx, dispCancel := context.WithCancel(ctx)
	go d.eventPoller(dispCtx, dispCancel)
	return dispCtx
}

// eventPoller will take events and do things with them
func (d *Display) eventPoller(ctx context.Context, fn context.CancelFunc) {
	defer fn()

	for {
		// first check if we need to exit
		select {
		case <-ctx.Done():
			return
		default:
		}

		ev := d.screen.PollEvent()
		if ev == nil {
			// the screen was finalized under us
			return
		}

		switch ev := ev.(type) {
		case *tcell.EventKey:
			switch ev.Key() {
			case tcell.KeyRune:
				switch ev.Rune() {
				case 'q', 'Q':
					return
				}

			case tcell.KeyEscape, tcell.KeyCtrlC:
				return
			}

		case *tcell.EventResize:
			d.screen.Sync()
		}
	}
}

// Draw renders one frame of bottom-anchored bars, one slot per bin height in
// bars, left to right. The surface size is re-queried every call so resizes
// take effect on the next frame. The bar slice is never mutated.
func (d *Display) Draw(bars []float64) error {
	width, height := d.screen.Size()
	if width < 1 || height < 1 {
		return nil
	}

	d.screen.Clear()

	bins := len(bars)
	slot := float64(width) / float64(bins)

	barWidth := int(slot) - BarGap
	if barWidth < 1 {
		barWidth = 1
	}

	maxHeight := MaxHeightFrac * float64(height)

	for idx, bar := range bars {
		left := int(float64(idx) * slot)

		cells := bar * maxHeight
		whole := int(cells)
		eighths := int((cells - float64(whole)) * NumRunes)

		style := d.style(idx, bins)

		for col := left; col < left+barWidth && col < width; col++ {
			for row := 0; row < whole; row++ {
				d.screen.SetContent(col, height-1-row, DisplayBar, nil, style)
			}

			if eighths > 0 && whole < height {
				d.screen.SetContent(col, height-1-whole, barRunes[eighths], nil, style)
			}
		}
	}

	d.screen.Show()

	return nil
}

// style returns the rainbow style for a bar, rebuilt only when the bar count
// changes.
func (d *Display) style(idx, bins int) tcell.Style {
	if len(d.styles) != bins {
		d.styles = make([]tcell.Style, bins)
		for i := range d.styles {
			r, g, b := HSLToRGB(BarHue(i, bins), 100, 50)
			d.styles[i] = tcell.StyleDefault.
				Foreground(tcell.NewRGBColor(int32(r), int32(g), int32(b)))
		}
	}

	return d.styles[idx]
}

// Close finalizes the screen and restores the terminal. It also unblocks the
// event poller if it is still waiting on an event.
func (d *Display) Close() {
	if d.screen != nil {
		d.screen.Fini()
	}
}
