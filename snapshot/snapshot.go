// Package snapshot renders a spin configuration as text, one glyph per site,
// row-major with one line per lattice row.
//
// Glyphs may be any strings, including East Asian wide characters; the
// narrower glyph is right-padded to the display width of the wider one so
// that columns stay aligned in a terminal.
package snapshot

import (
	"errors"
	"strings"

	"github.com/mattn/go-runewidth"

	"github.com/katalvlaran/proppwilson/cftp"
)

// Sentinel errors for rendering.
var (
	// ErrShape indicates len(spins) != side*side or side ≤ 0.
	ErrShape = errors.New("snapshot: spins do not form a square lattice")
	// ErrEmptyGlyph indicates an empty Up or Down glyph.
	ErrEmptyGlyph = errors.New("snapshot: glyphs must be non-empty")
)

// Glyphs selects the strings drawn for up and down spins.
type Glyphs struct {
	Up   string
	Down string
}

// DefaultGlyphs returns Up="+" and Down="-".
func DefaultGlyphs() Glyphs {
	return Glyphs{Up: "+", Down: "-"}
}

// Render draws spins (0=down, non-zero=up) on a side×side grid.
// Complexity: O(N) time and output size.
func Render(spins []uint8, side int, g Glyphs) (string, error) {
	if side <= 0 || len(spins) != side*side {
		return "", ErrShape
	}
	if g.Up == "" || g.Down == "" {
		return "", ErrEmptyGlyph
	}
	w := max(runewidth.StringWidth(g.Up), runewidth.StringWidth(g.Down))
	up := runewidth.FillRight(g.Up, w)
	down := runewidth.FillRight(g.Down, w)

	var b strings.Builder
	b.Grow(len(spins)*max(len(up), len(down)) + side)
	for y := 0; y < side; y++ {
		for x := 0; x < side; x++ {
			if spins[y*side+x] != 0 {
				b.WriteString(up)
			} else {
				b.WriteString(down)
			}
		}
		b.WriteByte('\n')
	}

	return b.String(), nil
}

// RenderSample draws the final configuration of a sample.
func RenderSample(s cftp.Sample, g Glyphs) (string, error) {
	return Render(s.Spins, s.Side, g)
}
