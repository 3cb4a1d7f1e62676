package imu

import (
	"github.com/periphd/halboard/internal/sysfsutil"
)

const (
	defaultScale    = 1.0
	defaultOffset   = 0.0
	defaultRateHz   = 30.0
)

// iioDriver reads a real IIO device's raw channel files on each Read.
type iioDriver struct {
	name string

	accelX, accelY, accelZ string
	accelScale             float64
	gyroX, gyroY, gyroZ    string
	gyroScale              float64
	magX, magY, magZ       string
	magScale               float64

	tempRaw, tempInput string
	tempScale, tempOffset float64
	tempIsInput bool // true => in_temp_input is already processed.

	rateHz float64
}

// NewIIODriver builds a Driver from the channel paths found by
// ProbeChannels. It reads the scale, offset and sampling-frequency files
// itself, falling back to scale 1.0, offset 0.0 and 30 Hz for any that are
// absent or unreadable. name is the IIO device name used for
// logging/device-type reporting.
func NewIIODriver(name string, paths ChannelPaths) *iioDriver {
	d := &iioDriver{
		name:        name,
		accelX:      paths.AccelX,
		accelY:      paths.AccelY,
		accelZ:      paths.AccelZ,
		gyroX:       paths.GyroX,
		gyroY:       paths.GyroY,
		gyroZ:       paths.GyroZ,
		magX:        paths.MagX,
		magY:        paths.MagY,
		magZ:        paths.MagZ,
		accelScale:  readScaleOr(paths.AccelScale, defaultScale),
		gyroScale:   readScaleOr(paths.GyroScale, defaultScale),
		magScale:    readScaleOr(paths.MagScale, defaultScale),
		tempScale:   readScaleOr(paths.TempScale, defaultScale),
		tempOffset:  readScaleOr(paths.TempOffset, defaultOffset),
		rateHz:      readRateOr(paths.SamplingFrequency, defaultRateHz),
	}
	if paths.TempInput != "" {
		d.tempInput = paths.TempInput
		d.tempIsInput = true
	} else {
		d.tempRaw = paths.TempRaw
	}
	return d
}

func readScaleOr(path string, def float64) float64 {
	if path == "" {
		return def
	}
	v, err := sysfsutil.ReadFloat(path)
	if err != nil {
		return def
	}
	return v
}

func readRateOr(path string, def float64) float64 {
	if path == "" {
		return def
	}
	v, err := sysfsutil.ReadFloat(path)
	if err != nil || v <= 0 {
		return def
	}
	return v
}

func (d *iioDriver) Name() string        { return d.name }
func (d *iioDriver) DeviceType() string  { return "iio" }
func (d *iioDriver) SampleRateHz() float64 { return d.rateHz }

func (d *iioDriver) Init() error   { return nil }
func (d *iioDriver) Deinit() error { return nil }

// Read samples every present axis, applying the group scale factor; an
// absent axis path contributes 0.0 per spec §3.
func (d *iioDriver) Read() (Sample, error) {
	var s Sample
	s.Accel[0] = axisOrZero(d.accelX, d.accelScale)
	s.Accel[1] = axisOrZero(d.accelY, d.accelScale)
	s.Accel[2] = axisOrZero(d.accelZ, d.accelScale)

	s.Gyro[0] = axisOrZero(d.gyroX, d.gyroScale)
	s.Gyro[1] = axisOrZero(d.gyroY, d.gyroScale)
	s.Gyro[2] = axisOrZero(d.gyroZ, d.gyroScale)

	s.Mag[0] = axisOrZero(d.magX, d.magScale)
	s.Mag[1] = axisOrZero(d.magY, d.magScale)
	s.Mag[2] = axisOrZero(d.magZ, d.magScale)

	s.TempMilliC = d.readTemp()
	return s, nil
}

func axisOrZero(path string, scale float64) float32 {
	if path == "" {
		return 0
	}
	raw, err := sysfsutil.ReadFloat(path)
	if err != nil {
		return 0
	}
	return float32(raw * scale)
}

func (d *iioDriver) readTemp() float32 {
	if d.tempIsInput {
		raw, err := sysfsutil.ReadFloat(d.tempInput)
		if err != nil {
			return 0
		}
		return float32(raw)
	}
	if d.tempRaw == "" {
		return 0
	}
	raw, err := sysfsutil.ReadFloat(d.tempRaw)
	if err != nil {
		return 0
	}
	return float32(raw*d.tempScale + d.tempOffset)
}
