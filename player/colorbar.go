package player

import (
	"image"
	"image/color"
)

// SMPTE ECR-1978 test pattern colors, 75% luma unless noted.
var (
	cbWhite   = rgb{192, 192, 192}
	cbYellow  = rgb{192, 192, 0}
	cbCyan    = rgb{0, 192, 192}
	cbGreen   = rgb{0, 192, 0}
	cbMagenta = rgb{192, 0, 192}
	cbRed     = rgb{192, 0, 0}
	cbBlue    = rgb{0, 0, 192}
	cbBlack   = rgb{0, 0, 0}
	cbGray    = rgb{50, 50, 50}

	cbMinusI   = rgb{0, 33, 76}
	cbPlusQ    = rgb{50, 0, 106}
	cbPluge1   = rgb{9, 9, 9}
	cbPluge2   = rgb{19, 19, 19}
	cbPluge3   = rgb{29, 29, 29}
)

type rgb struct{ r, g, b uint8 }

var topBars = [7]rgb{cbWhite, cbYellow, cbCyan, cbGreen, cbMagenta, cbRed, cbBlue}
var midBars = [7]rgb{cbBlue, cbBlack, cbMagenta, cbBlack, cbCyan, cbBlack, cbGray}

// ColorBars renders the SMPTE ECR-1978 pattern into an RGBA image of
// exactly width x height, per spec.md §4.8.
func ColorBars(width, height int) *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, width, height))

	topH := height * 2 / 3
	midH := height / 12
	bottomY := topH + midH

	drawColumns(img, 0, topH, width, topBars[:])
	drawColumns(img, topH, bottomY, width, midBars[:])
	drawBottomRow(img, bottomY, height, width)

	drawBarLabels(img, width, topH, topBarNames[:])

	return img
}

var topBarNames = [7]string{"W", "Y", "C", "G", "M", "R", "B"}

func drawColumns(img *image.RGBA, y0, y1, width int, colors []rgb) {
	n := len(colors)
	for i, c := range colors {
		x0 := width * i / n
		x1 := width * (i + 1) / n
		fillRect(img, x0, y0, x1, y1, c)
	}
}

// drawBottomRow lays out -I, White, +Q, then three PLUGE stripes on black,
// proportioned 5/12, 1/12, 1/12 and the remaining 5/12 split into thirds.
func drawBottomRow(img *image.RGBA, y0, y1, width int) {
	iW := width * 5 / 12
	whiteW := width / 12
	qW := width / 12

	x0 := 0
	x1 := iW
	fillRect(img, x0, y0, x1, y1, cbMinusI)

	x0, x1 = x1, x1+whiteW
	fillRect(img, x0, y0, x1, y1, cbWhite)

	x0, x1 = x1, x1+qW
	fillRect(img, x0, y0, x1, y1, cbPlusQ)

	remStart := x1
	remWidth := width - remStart
	stripes := [3]rgb{cbPluge1, cbPluge2, cbPluge3}
	for i, c := range stripes {
		sx0 := remStart + remWidth*i/3
		sx1 := remStart + remWidth*(i+1)/3
		fillRect(img, sx0, y0, sx1, y1, c)
	}
}

func fillRect(img *image.RGBA, x0, y0, x1, y1 int, c rgb) {
	col := color.RGBA{R: c.r, G: c.g, B: c.b, A: 0xFF}
	for y := y0; y < y1; y++ {
		for x := x0; x < x1; x++ {
			img.SetRGBA(x, y, col)
		}
	}
}
