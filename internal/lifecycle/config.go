// Package lifecycle implements the startup sequencing, HTTP route
// registration, signal handling and cooperative shutdown described in
// spec.md §4.7: the orchestrator that ties device discovery, the socket
// subsystem and the API registry together into one running daemon.
package lifecycle

import "github.com/periphd/halboard/internal/imu"

// Config is the daemon's CLI surface, per spec.md §6: --host, --port,
// --verbose, --mock-screen, --mock-imu.
type Config struct {
	Host    string
	Port    int
	Verbose bool

	MockScreen bool
	MockIMU    bool
	// MockIMUMotion selects the mock IMU's synthetic data pattern, an
	// additive feature over spec.md (see SPEC_FULL.md §3).
	MockIMUMotion imu.MockMotion

	// IMUName is the IIO device name to search for (scan_iio_devices'
	// target_name). Not part of spec.md's CLI surface verbatim, but
	// required to drive discovery against a specific sensor chip.
	IMUName string

	FramebufferRoot string
	IIORoot         string
	BacklightRoot   string
}

// DefaultConfig matches spec.md §6's defaults.
func DefaultConfig() Config {
	return Config{
		Host:            "127.0.0.1",
		Port:            12580,
		IMUName:         "bmi160",
		FramebufferRoot: "/sys/class/graphics",
		IIORoot:         "/sys/bus/iio/devices",
		BacklightRoot:   "/sys/class/backlight",
	}
}
