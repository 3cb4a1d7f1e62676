package player

import "testing"

func TestColorBarsMinusIRegion(t *testing.T) {
	img := ColorBars(700, 300)
	c := img.RGBAAt(100, 290)
	if c.R != 0 || c.G != 33 || c.B != 76 {
		t.Fatalf("got (%d,%d,%d), want (0,33,76)", c.R, c.G, c.B)
	}
}

func TestColorBarsTopLeftIsWhite(t *testing.T) {
	img := ColorBars(700, 300)
	c := img.RGBAAt(0, 0)
	if c.R != 192 || c.G != 192 || c.B != 192 {
		t.Fatalf("got (%d,%d,%d), want (192,192,192)", c.R, c.G, c.B)
	}
}

func TestColorBarsFillsWholeCanvas(t *testing.T) {
	img := ColorBars(12, 12)
	b := img.Bounds()
	if b.Dx() != 12 || b.Dy() != 12 {
		t.Fatalf("got %dx%d, want 12x12", b.Dx(), b.Dy())
	}
}
