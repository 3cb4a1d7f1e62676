package player

import (
	"fmt"
	"image"
)

// ConvertPixels converts a packed pixel buffer from srcBPP to dstBPP. The
// supported matrix is {24, 32} x {16, 24, 32} per spec.md §4.8; any other
// combination fails.
func ConvertPixels(src []byte, srcBPP, dstBPP int) ([]byte, error) {
	if srcBPP == dstBPP {
		out := make([]byte, len(src))
		copy(out, src)
		return out, nil
	}
	switch {
	case srcBPP == 24 && dstBPP == 32:
		return rgb888to8888(src), nil
	case srcBPP == 32 && dstBPP == 24:
		return rgba8888to888(src), nil
	case srcBPP == 24 && dstBPP == 16:
		return rgb888to565(src), nil
	case srcBPP == 32 && dstBPP == 16:
		return rgba8888to565(src), nil
	default:
		return nil, fmt.Errorf("player: unsupported bpp conversion %d -> %d", srcBPP, dstBPP)
	}
}

// RGB565 packs an 8-bit RGB triple into little-endian RGB565, per
// spec.md §4.8's exact bit layout.
func RGB565(r, g, b byte) uint16 {
	return (uint16(r&0xF8) << 8) | (uint16(g&0xFC) << 3) | uint16(b>>3)
}

func rgb888to8888(src []byte) []byte {
	n := len(src) / 3
	out := make([]byte, n*4)
	for i := 0; i < n; i++ {
		out[i*4] = src[i*3]
		out[i*4+1] = src[i*3+1]
		out[i*4+2] = src[i*3+2]
		out[i*4+3] = 0xFF
	}
	return out
}

func rgba8888to888(src []byte) []byte {
	n := len(src) / 4
	out := make([]byte, n*3)
	for i := 0; i < n; i++ {
		out[i*3] = src[i*4]
		out[i*3+1] = src[i*4+1]
		out[i*3+2] = src[i*4+2]
	}
	return out
}

func rgb888to565(src []byte) []byte {
	n := len(src) / 3
	out := make([]byte, n*2)
	for i := 0; i < n; i++ {
		v := RGB565(src[i*3], src[i*3+1], src[i*3+2])
		out[i*2] = byte(v)
		out[i*2+1] = byte(v >> 8)
	}
	return out
}

// FrameFromRGBA packs img (its bounds must start at 0,0) into a device
// frame of dstBPP bits per pixel, dropping alpha and converting as needed.
func FrameFromRGBA(img *image.RGBA, dstBPP int) ([]byte, error) {
	b := img.Bounds()
	rgb888 := make([]byte, 0, b.Dx()*b.Dy()*3)
	for y := b.Min.Y; y < b.Max.Y; y++ {
		for x := b.Min.X; x < b.Max.X; x++ {
			c := img.RGBAAt(x, y)
			rgb888 = append(rgb888, c.R, c.G, c.B)
		}
	}
	return ConvertPixels(rgb888, 24, dstBPP)
}

func rgba8888to565(src []byte) []byte {
	n := len(src) / 4
	out := make([]byte, n*2)
	for i := 0; i < n; i++ {
		v := RGB565(src[i*4], src[i*4+1], src[i*4+2])
		out[i*2] = byte(v)
		out[i*2+1] = byte(v >> 8)
	}
	return out
}
