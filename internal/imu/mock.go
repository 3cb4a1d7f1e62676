package imu

import (
	"math"
	"time"
)

// MockMotion selects which synthetic data the mock IMU produces.
type MockMotion int

const (
	// MockStill reports a stationary sensor: zero rates, 1g on Z.
	MockStill MockMotion = iota
	// MockRotate simulates a slow continuous rotation about the Z axis,
	// for demonstrating the orientation pipeline without hardware.
	MockRotate
)

// mockDriver is a synthetic IMU for development off a real sensor. It never
// touches sysfs.
type mockDriver struct {
	motion MockMotion
	rateHz float64
	start  time.Time
}

// NewMock returns a mock IMU Driver sampling at rateHz.
func NewMock(motion MockMotion, rateHz float64) Driver {
	return &mockDriver{motion: motion, rateHz: rateHz}
}

func (d *mockDriver) Name() string          { return "mock-imu" }
func (d *mockDriver) DeviceType() string    { return "mock" }
func (d *mockDriver) SampleRateHz() float64 { return d.rateHz }

func (d *mockDriver) Init() error {
	d.start = time.Now()
	return nil
}

func (d *mockDriver) Deinit() error { return nil }

func (d *mockDriver) Read() (Sample, error) {
	if d.motion == MockStill {
		return Sample{Accel: [3]float32{0, 0, 1}, TempMilliC: 25000}, nil
	}
	t := time.Since(d.start).Seconds()
	const rps = 0.2 // slow rotation, radians/sec
	gz := float32(rps)
	ax := float32(math.Sin(t * rps))
	ay := float32(math.Cos(t * rps))
	return Sample{
		Accel:      [3]float32{ax * 0.1, ay * 0.1, 1},
		Gyro:       [3]float32{0, 0, gz},
		TempMilliC: 25000,
	}, nil
}
