package imu

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"

	"github.com/periphd/halboard/internal/sysfsutil"
)

// ChannelPaths is the fixed set of well-known sysfs files an IIO device may
// expose, per spec §4.1. Any missing file leaves its field empty; the
// caller applies the documented defaults (scale 1.0, offset 0.0, rate 30).
type ChannelPaths struct {
	Dir string

	AccelX, AccelY, AccelZ    string
	AccelScale                string
	GyroX, GyroY, GyroZ       string
	GyroScale                 string
	MagX, MagY, MagZ          string
	MagScale                  string
	TempRaw, TempInput        string
	TempScale, TempOffset     string
	SamplingFrequency         string
}

// FindIIODevice enumerates /sys/bus/iio/devices/iio:device* and returns the
// sysfs directory of the first device whose "name" file equals targetName
// exactly. Not found is reported as an error to the caller, who logs a
// warning and continues without the device per spec §7.
func FindIIODevice(root, targetName string) (string, error) {
	entries, err := os.ReadDir(root)
	if err != nil {
		return "", fmt.Errorf("iio scan: %w", err)
	}
	names := make([]string, 0, len(entries))
	for _, e := range entries {
		names = append(names, e.Name())
	}
	sort.Strings(names)
	for _, n := range names {
		dir := filepath.Join(root, n)
		name, err := sysfsutil.ReadString(filepath.Join(dir, "name"))
		if err != nil {
			continue
		}
		if name == targetName {
			return dir, nil
		}
	}
	return "", fmt.Errorf("no iio device named %q under %s", targetName, root)
}

// ProbeChannels probes the fixed set of well-known channel files under dir.
// Missing files are left as empty strings rather than erroring.
func ProbeChannels(dir string) ChannelPaths {
	p := ChannelPaths{Dir: dir}
	opt := func(name string) string {
		full := filepath.Join(dir, name)
		if sysfsutil.Exists(full) {
			return full
		}
		return ""
	}

	p.AccelX = opt("in_accel_x_raw")
	p.AccelY = opt("in_accel_y_raw")
	p.AccelZ = opt("in_accel_z_raw")
	p.AccelScale = opt("in_accel_scale")

	p.GyroX = opt("in_anglvel_x_raw")
	p.GyroY = opt("in_anglvel_y_raw")
	p.GyroZ = opt("in_anglvel_z_raw")
	p.GyroScale = opt("in_anglvel_scale")

	p.MagX = opt("in_magn_x_raw")
	p.MagY = opt("in_magn_y_raw")
	p.MagZ = opt("in_magn_z_raw")
	p.MagScale = opt("in_magn_scale")

	p.TempRaw = opt("in_temp_raw")
	p.TempInput = opt("in_temp_input")
	p.TempScale = opt("in_temp_scale")
	p.TempOffset = opt("in_temp_offset")

	p.SamplingFrequency = opt("sampling_frequency")
	if p.SamplingFrequency == "" {
		p.SamplingFrequency = opt("in_accel_sampling_frequency")
	}
	return p
}
