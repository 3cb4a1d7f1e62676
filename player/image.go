package player

import (
	"fmt"
	"image"
	_ "image/jpeg"
	_ "image/png"
	"os"

	_ "golang.org/x/image/bmp"
	_ "golang.org/x/image/tiff"
	_ "golang.org/x/image/webp"
)

// LoadImage decodes a still image from path. The blank imports register
// PNG, JPEG, BMP, TIFF and WebP decoders with the stdlib image package's
// format sniffer, so image.Decode picks the right one automatically.
func LoadImage(path string) (image.Image, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("player: open %s: %w", path, err)
	}
	defer f.Close()

	img, _, err := image.Decode(f)
	if err != nil {
		return nil, fmt.Errorf("player: decode %s: %w", path, err)
	}
	return img, nil
}

// RenderStill decodes, resizes and pushes one still image to screen.
func RenderStill(screen *Screen, path string, mode ResizeMode) error {
	img, err := LoadImage(path)
	if err != nil {
		return err
	}
	w, h := screen.Info.ScreenSize[0], screen.Info.ScreenSize[1]
	resized := Resize(img, w, h, mode)
	frame, err := FrameFromRGBA(resized, screen.Info.BitsPerPixel)
	if err != nil {
		return err
	}
	return screen.Push(frame)
}

// RenderColorBars draws and pushes the SMPTE test pattern.
func RenderColorBars(screen *Screen) error {
	w, h := screen.Info.ScreenSize[0], screen.Info.ScreenSize[1]
	bars := ColorBars(w, h)
	frame, err := FrameFromRGBA(bars, screen.Info.BitsPerPixel)
	if err != nil {
		return err
	}
	return screen.Push(frame)
}
