package screen

import (
	"os"
	"sync"
)

// fbDriver writes frames to a real /dev/fbN node.
type fbDriver struct {
	name    string
	width   int
	height  int
	bpp     int
	devPath string
	size    int

	mu sync.Mutex
	f  *os.File
}

// NewFramebuffer opens devPath for writing and returns a Driver backed by
// it. The file is kept open for the driver's lifetime; Push performs one
// write call per frame, overwriting from offset 0.
func NewFramebuffer(name string, width, height, bpp int, devPath string) (Driver, error) {
	f, err := os.OpenFile(devPath, os.O_WRONLY, 0)
	if err != nil {
		return nil, err
	}
	return &fbDriver{
		name:    name,
		width:   width,
		height:  height,
		bpp:     bpp,
		devPath: devPath,
		size:    frameSize(width, height, bpp),
		f:       f,
	}, nil
}

func (d *fbDriver) Name() string       { return d.name }
func (d *fbDriver) DeviceType() string { return "framebuffer" }
func (d *fbDriver) Width() int         { return d.width }
func (d *fbDriver) Height() int        { return d.height }
func (d *fbDriver) BitsPerPixel() int  { return d.bpp }
func (d *fbDriver) FrameSize() int     { return d.size }

func (d *fbDriver) Push(frame []byte) error {
	if len(frame) != d.size {
		return &ErrBadFrameSize{Want: d.size, Got: len(frame)}
	}
	d.mu.Lock()
	defer d.mu.Unlock()
	_, err := d.f.WriteAt(frame, 0)
	return err
}
