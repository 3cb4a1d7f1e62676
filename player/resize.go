package player

import (
	"image"
	"image/color"
	"math"

	"golang.org/x/image/draw"
)

// Resize fits src into an RGBA buffer of exactly screenW x screenH using
// the given mode. All three modes use a linear (triangle) filter for
// speed, via x/image/draw's BiLinear scaler.
func Resize(src image.Image, screenW, screenH int, mode ResizeMode) *image.RGBA {
	dst := image.NewRGBA(image.Rect(0, 0, screenW, screenH))
	switch mode {
	case Letterbox:
		fillBlack(dst)
		resizeLetterbox(dst, src, screenW, screenH)
	case Fill:
		resizeFill(dst, src, screenW, screenH)
	default: // Stretch
		draw.BiLinear.Scale(dst, dst.Bounds(), src, src.Bounds(), draw.Src, nil)
	}
	return dst
}

func fillBlack(dst *image.RGBA) {
	draw.Draw(dst, dst.Bounds(), &image.Uniform{C: color.Black}, image.Point{}, draw.Src)
}

// resizeLetterbox scales so the whole source fits, then centers it on the
// already-black dst, padding the edges.
func resizeLetterbox(dst *image.RGBA, src image.Image, screenW, screenH int) {
	iw, ih := src.Bounds().Dx(), src.Bounds().Dy()
	if iw == 0 || ih == 0 {
		return
	}
	scale := math.Min(float64(screenW)/float64(iw), float64(screenH)/float64(ih))
	tw := int(float64(iw) * scale)
	th := int(float64(ih) * scale)
	ox := (screenW - tw) / 2
	oy := (screenH - th) / 2
	target := image.Rect(ox, oy, ox+tw, oy+th)
	draw.BiLinear.Scale(dst, target, src, src.Bounds(), draw.Src, nil)
}

// resizeFill scales so the source covers the whole screen, then crops the
// overflow, centered.
func resizeFill(dst *image.RGBA, src image.Image, screenW, screenH int) {
	iw, ih := src.Bounds().Dx(), src.Bounds().Dy()
	if iw == 0 || ih == 0 {
		return
	}
	scale := math.Max(float64(screenW)/float64(iw), float64(screenH)/float64(ih))
	tw := int(float64(iw) * scale)
	th := int(float64(ih) * scale)
	scaled := image.NewRGBA(image.Rect(0, 0, tw, th))
	draw.BiLinear.Scale(scaled, scaled.Bounds(), src, src.Bounds(), draw.Src, nil)

	ox := (tw - screenW) / 2
	oy := (th - screenH) / 2
	draw.Draw(dst, dst.Bounds(), scaled, image.Pt(ox, oy), draw.Src)
}
