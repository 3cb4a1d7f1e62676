package player

import (
	"context"
	"fmt"
	"image"
	"image/draw"
	stdgif "image/gif"
	"os"
	"time"
)

// gifFrame is one pre-resized, pre-converted frame ready to push.
type gifFrame struct {
	data  []byte
	delay time.Duration
}

// loadGIF decodes path into a sequence of (frame, delay) pairs resized
// and pixel-converted to the screen's exact dimensions and bpp, matching
// spec.md §4.8's "pre-resize all frames once" cache strategy.
func loadGIF(path string, screen *Screen, mode ResizeMode) ([]gifFrame, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("player: open %s: %w", path, err)
	}
	defer f.Close()

	g, err := stdgif.DecodeAll(f)
	if err != nil {
		return nil, fmt.Errorf("player: decode gif %s: %w", path, err)
	}

	w, h := screen.Info.ScreenSize[0], screen.Info.ScreenSize[1]
	canvas := image.NewRGBA(image.Rect(0, 0, g.Config.Width, g.Config.Height))

	frames := make([]gifFrame, 0, len(g.Image))
	for i, src := range g.Image {
		draw.Draw(canvas, src.Bounds(), src, src.Bounds().Min, draw.Over)

		resized := Resize(canvas, w, h, mode)
		data, err := FrameFromRGBA(resized, screen.Info.BitsPerPixel)
		if err != nil {
			return nil, err
		}

		delayHundredths := 10
		if i < len(g.Delay) {
			delayHundredths = g.Delay[i]
		}
		frames = append(frames, gifFrame{data: data, delay: time.Duration(delayHundredths) * 10 * time.Millisecond})
	}
	return frames, nil
}

// PlayGIF plays a decoded GIF's frames to screen, looping indefinitely if
// repeat is set, else playing once. It returns when ctx is cancelled or,
// for a non-repeating play, after the last frame.
func PlayGIF(ctx context.Context, screen *Screen, path string, mode ResizeMode, repeat bool) error {
	frames, err := loadGIF(path, screen, mode)
	if err != nil {
		return err
	}
	if len(frames) == 0 {
		return fmt.Errorf("player: %s has no frames", path)
	}

	for {
		for _, fr := range frames {
			if err := screen.Push(fr.data); err != nil {
				return err
			}
			select {
			case <-ctx.Done():
				return ctx.Err()
			case <-time.After(fr.delay):
			}
		}
		if !repeat {
			return nil
		}
	}
}
