package graphing

import (
	"fmt"
	"image/color"
)

// palette is the fixed stage color set carried over from the benchmark's
// original graphs, alpha 0.8. Captures with more stages recycle it.
var palette = []color.NRGBA{
	{R: 0, G: 69, B: 130, A: 204},
	{R: 204, G: 77, B: 0, A: 204},
	{R: 0, G: 110, B: 0, A: 204},
	{R: 163, G: 0, B: 0, A: 204},
	{R: 97, G: 51, B: 138, A: 204},
	{R: 89, G: 36, B: 23, A: 204},
	{R: 176, G: 69, B: 143, A: 204},
	{R: 77, G: 77, B: 77, A: 204},
}

// PaletteSize returns the number of distinct stage colors.
func PaletteSize() int {
	return len(palette)
}

// StageColor returns the bar color for a palette index, recycling the
// palette when the index exceeds it.
func StageColor(index int) color.NRGBA {
	return palette[index%len(palette)]
}

// darken shifts a color toward black for mean line annotations, clamping
// each channel at zero. The 0.2 shift matches the original graphs.
func darken(c color.NRGBA) color.NRGBA {
	const shift = 51 // 0.2 of full scale
	return color.NRGBA{
		R: clampSub(c.R, shift),
		G: clampSub(c.G, shift),
		B: clampSub(c.B, shift),
		A: clampSub(c.A, shift),
	}
}

func clampSub(v, d uint8) uint8 {
	if v < d {
		return 0
	}
	return v - d
}

// hexColor formats a color for the HTML chart, dropping alpha.
func hexColor(c color.NRGBA) string {
	return fmt.Sprintf("#%02x%02x%02x", c.R, c.G, c.B)
}
