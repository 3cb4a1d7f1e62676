package player

import "testing"

func TestRGB565(t *testing.T) {
	if v := RGB565(0xFF, 0xFF, 0xFF); v != 0xFFFF {
		t.Fatal(v)
	}
	if v := RGB565(0, 0, 0); v != 0 {
		t.Fatal(v)
	}
}

func TestConvertPixelsSameBPP(t *testing.T) {
	src := []byte{1, 2, 3, 4, 5, 6}
	out, err := ConvertPixels(src, 24, 24)
	if err != nil {
		t.Fatal(err)
	}
	if len(out) != len(src) {
		t.Fatalf("got %d bytes, want %d", len(out), len(src))
	}
	out[0] = 9
	if src[0] == 9 {
		t.Fatal("ConvertPixels must return a copy")
	}
}

func TestConvertPixels24to32(t *testing.T) {
	out, err := ConvertPixels([]byte{10, 20, 30}, 24, 32)
	if err != nil {
		t.Fatal(err)
	}
	want := []byte{10, 20, 30, 0xFF}
	if string(out) != string(want) {
		t.Fatalf("got %v, want %v", out, want)
	}
}

func TestConvertPixels32to24(t *testing.T) {
	out, err := ConvertPixels([]byte{10, 20, 30, 0x00}, 32, 24)
	if err != nil {
		t.Fatal(err)
	}
	want := []byte{10, 20, 30}
	if string(out) != string(want) {
		t.Fatalf("got %v, want %v", out, want)
	}
}

func TestConvertPixelsUnsupported(t *testing.T) {
	if _, err := ConvertPixels(nil, 16, 24); err == nil {
		t.Fatal("expected error for 16->24")
	}
}
