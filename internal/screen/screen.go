// Package screen renders the frame buffer of the virtual machine as text.
package screen

import (
	"bufio"
	"fmt"
	"io"

	"github.com/fatih/color"
	"github.com/retroenv/retrochip8/internal/vm"
)

// Renderer writes a frame buffer as one line of glyphs per display row.
type Renderer struct {
	On    string       // glyph for a set pixel
	Off   string       // glyph for an unset pixel
	Color *color.Color // optional color for set pixels
}

// New returns a renderer using the given glyphs. If colored is set, set
// pixels are printed in green, unless color output is disabled globally,
// for example because the output is not a terminal.
func New(on, off string, colored bool) *Renderer {
	r := &Renderer{
		On:  on,
		Off: off,
	}
	if colored {
		r.Color = color.New(color.FgHiGreen, color.Bold)
	}
	return r
}

// Render writes all rows of the frame buffer.
func (r *Renderer) Render(w io.Writer, fb vm.FrameBuffer) error {
	on := r.On
	if r.Color != nil {
		on = r.Color.Sprint(r.On)
	}

	buf := bufio.NewWriter(w)
	for y := range vm.DisplayHeight {
		for x := range vm.DisplayWidth {
			glyph := r.Off
			if fb.Pixel(x, y) {
				glyph = on
			}
			if _, err := buf.WriteString(glyph); err != nil {
				return fmt.Errorf("writing pixel: %w", err)
			}
		}
		if err := buf.WriteByte('\n'); err != nil {
			return fmt.Errorf("writing line end: %w", err)
		}
	}

	if err := buf.Flush(); err != nil {
		return fmt.Errorf("flushing screen output: %w", err)
	}
	return nil
}
