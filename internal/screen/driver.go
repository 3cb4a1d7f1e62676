// Package screen implements the framebuffer device driver: discovery over
// /sys/class/graphics/fb*, the push_frame_buffer contract, and a mock for
// development off-hardware.
package screen

import "fmt"

// Driver is the capability set the screen socket adapter depends on. The
// socket never touches a concrete driver type, only this interface -- per
// the capability-interface design in spec.md §9.
type Driver interface {
	Name() string
	DeviceType() string
	Width() int
	Height() int
	BitsPerPixel() int
	// FrameSize is width*height*bpp/8, fixed for the driver's lifetime.
	FrameSize() int
	// Push validates len(frame) against FrameSize and writes it to the
	// device. Callers must not mutate frame after calling Push.
	Push(frame []byte) error
}

// Info is the JSON shape returned by GET /screenN/info.
type Info struct {
	ScreenSize     [2]int `json:"screen_size"`
	BitsPerPixel   int    `json:"bits_per_pixel"`
	FrameBufferPort int   `json:"frame_buffer_port"`
	DeviceType     string `json:"device_type"`
	Description    string `json:"description"`
}

// frameSize computes width*height*bpp/8 once; shared by every Driver impl.
func frameSize(w, h, bpp int) int {
	return w * h * bpp / 8
}

// ErrBadFrameSize is returned by Push when the frame length doesn't match
// FrameSize. The caller (the screen socket) turns this into a status:1
// reply without touching the device.
type ErrBadFrameSize struct {
	Want, Got int
}

func (e *ErrBadFrameSize) Error() string {
	return fmt.Sprintf("Expected %d bytes, got %d", e.Want, e.Got)
}
