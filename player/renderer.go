package player

import (
	"context"
	"path/filepath"
	"strings"
)

// Options configures one render invocation, mirroring the player CLI
// surface in spec.md §4.8.
type Options struct {
	ScreenID   string
	Resource   string
	IsURL      bool
	ResizeMode ResizeMode
	Repeat     bool
	Video      bool
}

// Run discovers the screen, fetches the resource if needed, and dispatches
// to the color-bar, still-image, GIF or video renderer.
func Run(ctx context.Context, apiBase string, opts Options) error {
	screen, err := DiscoverScreen(ctx, apiBase, opts.ScreenID)
	if err != nil {
		return err
	}
	defer screen.Close()

	if opts.Resource == "" {
		return RenderColorBars(screen)
	}

	path := opts.Resource
	if opts.IsURL {
		downloaded, err := Download(opts.Resource)
		if err != nil {
			return err
		}
		defer Cleanup()
		path = downloaded
	}

	if opts.Video {
		return PlayVideo(ctx, screen, path, opts.ResizeMode)
	}

	if isGIF(path) {
		return PlayGIF(ctx, screen, path, opts.ResizeMode, opts.Repeat)
	}

	return RenderStill(screen, path, opts.ResizeMode)
}

func isGIF(path string) bool {
	return strings.EqualFold(filepath.Ext(path), ".gif")
}
