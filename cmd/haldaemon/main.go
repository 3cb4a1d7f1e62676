// haldaemon exposes local framebuffer, IMU and backlight peripherals as
// uniformly addressable endpoints over an HTTP control plane and per-device
// ZeroMQ data planes.
//
// References:
//   /sys/class/graphics/fb*        framebuffer discovery
//   /sys/bus/iio/devices/iio:dev*  IMU channel discovery
//   /sys/class/backlight/*         backlight discovery
package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/periphd/halboard/internal/imu"
	"github.com/periphd/halboard/internal/lifecycle"
)

func mainImpl() error {
	cfg := lifecycle.DefaultConfig()

	host := flag.String("host", cfg.Host, "HTTP control-plane bind address")
	port := flag.Int("port", cfg.Port, "HTTP control-plane port")
	verbose := flag.Bool("verbose", false, "log every HTTP request")
	mockScreen := flag.Bool("mock-screen", false, "inject a mock screen device")
	mockIMU := flag.Bool("mock-imu", false, "inject a mock IMU device")
	mockIMUMotion := flag.String("mock-imu-motion", "still", "mock IMU pattern: still|rotate")
	imuName := flag.String("imu-name", cfg.IMUName, "IIO device name to discover")
	flag.Parse()

	if len(flag.Args()) != 0 {
		return fmt.Errorf("unexpected argument: %s", flag.Args())
	}

	cfg.Host = *host
	cfg.Port = *port
	cfg.Verbose = *verbose
	cfg.MockScreen = *mockScreen
	cfg.MockIMU = *mockIMU
	cfg.IMUName = *imuName
	switch *mockIMUMotion {
	case "still":
		cfg.MockIMUMotion = imu.MockStill
	case "rotate":
		cfg.MockIMUMotion = imu.MockRotate
	default:
		return fmt.Errorf("invalid --mock-imu-motion: %s", *mockIMUMotion)
	}

	return lifecycle.Run(cfg)
}

func main() {
	if err := mainImpl(); err != nil {
		fmt.Fprintf(os.Stderr, "haldaemon: %s.\n", err)
		os.Exit(1)
	}
}
