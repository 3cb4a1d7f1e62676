package backlight

import (
	"fmt"
	"strconv"

	"github.com/periphd/halboard/internal/sysfsutil"
)

// sysfsDriver is a real backlight, read/write through sysfs.
type sysfsDriver struct {
	name     string
	max      int
	brightnessPath string
}

// NewSysfs returns a Driver backed by a real backlight sysfs directory.
func NewSysfs(c Candidate) Driver {
	return &sysfsDriver{name: c.Name, max: c.MaxBrightness, brightnessPath: c.BrightnessPath}
}

func (d *sysfsDriver) Name() string      { return d.name }
func (d *sysfsDriver) MaxBrightness() int { return d.max }

func (d *sysfsDriver) GetBrightness() (float32, error) {
	raw, err := sysfsutil.ReadInt(d.brightnessPath)
	if err != nil {
		return 0, fmt.Errorf("backlight %s: %w", d.name, err)
	}
	if d.max == 0 {
		return 0, nil
	}
	return float32(raw) / float32(d.max), nil
}

// SetBrightness clamps b into [0.0, 1.0], computes round(b*max) and writes
// it as decimal text, overwriting the brightness file.
func (d *sysfsDriver) SetBrightness(b float32) error {
	b = clamp(b)
	raw := int(b*float32(d.max) + 0.5)
	if err := sysfsutil.WriteString(d.brightnessPath, strconv.Itoa(raw)); err != nil {
		return fmt.Errorf("backlight %s: %w", d.name, err)
	}
	return nil
}
