package player

import (
	"image"
	"image/color"
	"testing"
)

func solidImage(w, h int, c color.Color) *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			img.Set(x, y, c)
		}
	}
	return img
}

func TestResizeStretchDims(t *testing.T) {
	src := solidImage(10, 20, color.White)
	out := Resize(src, 40, 40, Stretch)
	if out.Bounds().Dx() != 40 || out.Bounds().Dy() != 40 {
		t.Fatalf("got %v", out.Bounds())
	}
}

func TestResizeLetterboxPadsWithBlack(t *testing.T) {
	src := solidImage(10, 10, color.White)
	out := Resize(src, 40, 20, Letterbox)
	corner := out.RGBAAt(0, 0)
	if corner.R != 0 || corner.G != 0 || corner.B != 0 {
		t.Fatalf("expected black padding at corner, got %v", corner)
	}
	center := out.RGBAAt(20, 10)
	if center.R != 0xFF {
		t.Fatalf("expected white content at center, got %v", center)
	}
}

func TestResizeFillDims(t *testing.T) {
	src := solidImage(100, 50, color.White)
	out := Resize(src, 20, 20, Fill)
	if out.Bounds().Dx() != 20 || out.Bounds().Dy() != 20 {
		t.Fatalf("got %v", out.Bounds())
	}
}
