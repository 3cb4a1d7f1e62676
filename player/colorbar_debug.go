//go:build debug

package player

import (
	"image"
	"image/color"

	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/math/fixed"
)

// drawBarLabels stamps each top bar's one-letter channel identifier in its
// upper-left corner. Debug-build only: it exists to make bar alignment
// checkable on a monitor without a color chart, not for production use.
func drawBarLabels(img *image.RGBA, width, topH int, names []string) {
	n := len(names)
	d := &font.Drawer{
		Dst:  img,
		Src:  image.NewUniform(color.Black),
		Face: basicfont.Face7x13,
	}
	for i, name := range names {
		x0 := width * i / n
		d.Dot = fixed.Point26_6{
			X: fixed.I(x0 + 2),
			Y: fixed.I(13),
		}
		d.DrawString(name)
	}
}
