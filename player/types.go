// Package player implements the client-side renderer that streams image,
// GIF and video content onto a discovered screen through the same ZMQ
// REQ/REP socket protocol the daemon's screen socket speaks.
package player

import "fmt"

// ResizeMode selects how source content is fit into the screen's exact
// pixel dimensions. All three modes produce exactly screen_w x screen_h
// output.
type ResizeMode int

const (
	// Stretch resizes to exact dimensions regardless of aspect ratio.
	Stretch ResizeMode = iota
	// Letterbox scales so the whole source fits, padding the remainder.
	Letterbox
	// Fill scales so the source covers the whole screen, cropping overflow.
	Fill
)

// ParseResizeMode parses the --resize-mode CLI flag value.
func ParseResizeMode(s string) (ResizeMode, error) {
	switch s {
	case "stretch":
		return Stretch, nil
	case "letterbox":
		return Letterbox, nil
	case "fill":
		return Fill, nil
	default:
		return 0, fmt.Errorf("player: unknown resize mode %q", s)
	}
}

// ScreenInfo is the subset of GET /screenN/info this client needs.
type ScreenInfo struct {
	ScreenSize      [2]int `json:"screen_size"`
	BitsPerPixel    int    `json:"bits_per_pixel"`
	FrameBufferPort int    `json:"frame_buffer_port"`
	DeviceType      string `json:"device_type"`
	Description     string `json:"description"`
}

// FrameSize is width*height*bpp/8, the exact size every pushed frame must
// be.
func (s ScreenInfo) FrameSize() int {
	return s.ScreenSize[0] * s.ScreenSize[1] * s.BitsPerPixel / 8
}
