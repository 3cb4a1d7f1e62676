package lifecycle

import (
	"context"
	"fmt"
	"log"
	"net/http"

	"github.com/periphd/halboard/internal/imu"
	"github.com/periphd/halboard/internal/registry"
)

// imuInfo is the JSON shape returned by GET /imuN/info.
type imuInfo struct {
	DeviceType  string  `json:"device_type"`
	Status      string  `json:"status"`
	SampleRate  float64 `json:"sample_rate"`
	ImuDataPort int     `json:"imu_data_port"`
	Description string  `json:"description"`
}

func (d *Daemon) discoverIMUs(ctx context.Context, cfg Config) {
	var drivers []imu.Driver

	if cfg.MockIMU {
		drivers = append(drivers, imu.NewMock(cfg.MockIMUMotion, 50))
	}

	if dir, err := imu.FindIIODevice(cfg.IIORoot, cfg.IMUName); err != nil {
		log.Printf("[imu] %v", err)
	} else {
		paths := imu.ProbeChannels(dir)
		drivers = append(drivers, imu.NewIIODriver(cfg.IMUName, paths))
	}

	for i, drv := range drivers {
		id := fmt.Sprintf("imu%d", i)
		pub, err := imu.NewPublisher(ctx, id, cfg.Host, drv, nil)
		if err != nil {
			log.Printf("[%s] bind: %v", id, err)
			continue
		}
		d.publishers = append(d.publishers, pub)
		d.reg.AddDevice(id)

		description := fmt.Sprintf("%s orientation sensor (%s)", id, drv.Name())
		d.registerRoute(registry.Route{Path: "/" + id + "/info", Method: http.MethodGet, Description: "imu device info"}, func(_ *http.Request) registry.Response {
			return registry.JSON(imuInfo{
				DeviceType:  drv.DeviceType(),
				Status:      pub.State().String(),
				SampleRate:  drv.SampleRateHz(),
				ImuDataPort: pub.Port(),
				Description: description,
			})
		})
		d.registerRoute(registry.Route{Path: "/" + id + "/schema", Method: http.MethodGet, Description: "imu protobuf schema"}, func(_ *http.Request) registry.Response {
			return registry.Text(imu.Schema)
		})
		d.registerRoute(registry.Route{Path: "/" + id + "/start", Method: http.MethodGet, Description: "start imu sampling"}, func(_ *http.Request) registry.Response {
			if err := pub.Start(); err != nil {
				return registry.Error(http.StatusInternalServerError, err.Error())
			}
			return registry.Text("ok")
		})
		d.registerRoute(registry.Route{Path: "/" + id + "/stop", Method: http.MethodGet, Description: "stop imu sampling"}, func(_ *http.Request) registry.Response {
			if err := pub.Stop(); err != nil {
				return registry.Error(http.StatusInternalServerError, err.Error())
			}
			return registry.Text("ok")
		})
	}

	if len(d.publishers) == 0 {
		log.Printf("[imu] no iio devices found, continuing without imus")
	}
}
