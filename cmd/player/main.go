// player streams color bars, a still image, an animated GIF or a video
// onto a screen exposed by haldaemon, through the same REQ/REP frame
// protocol the daemon's screen socket speaks.
package main

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/periphd/halboard/player"
)

func mainImpl() error {
	apiBase := flag.String("api", "http://127.0.0.1:12580", "haldaemon HTTP control-plane base URL")
	isURL := flag.Bool("url", false, "treat the resource argument as a URL to download")
	resizeMode := flag.String("resize-mode", "fill", "stretch|letterbox|fill")
	repeat := flag.Bool("repeat", true, "loop GIF playback indefinitely")
	video := flag.Bool("video", false, "play the resource as video via ffmpeg")
	flag.Parse()

	args := flag.Args()
	if len(args) < 1 || len(args) > 2 {
		return fmt.Errorf("usage: player [flags] <screen_id> [<resource>]")
	}

	mode, err := player.ParseResizeMode(*resizeMode)
	if err != nil {
		return err
	}

	opts := player.Options{
		ScreenID:   args[0],
		ResizeMode: mode,
		Repeat:     *repeat,
		IsURL:      *isURL,
		Video:      *video,
	}
	if len(args) == 2 {
		opts.Resource = args[1]
	}

	return player.Run(context.Background(), *apiBase, opts)
}

func main() {
	if err := mainImpl(); err != nil {
		fmt.Fprintf(os.Stderr, "player: %s.\n", err)
		os.Exit(1)
	}
}
