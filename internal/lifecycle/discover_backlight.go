package lifecycle

import (
	"fmt"
	"log"
	"net/http"
	"strconv"

	"github.com/periphd/halboard/internal/backlight"
	"github.com/periphd/halboard/internal/registry"
)

func (d *Daemon) discoverBacklights(cfg Config) {
	var drivers []backlight.Driver
	var names []string

	for _, c := range backlight.Scan(cfg.BacklightRoot) {
		drivers = append(drivers, backlight.NewSysfs(c))
		names = append(names, c.Name)
	}

	for i, drv := range drivers {
		id := fmt.Sprintf("backlight%d", i)
		d.backlights = append(d.backlights, backlightEntry{id: id, driver: drv})
		d.reg.AddDevice(id)

		description := fmt.Sprintf("%s panel backlight (%s)", id, names[i])
		d.registerRoute(registry.Route{Path: "/" + id + "/info", Method: http.MethodGet, Description: "backlight device info"}, func(_ *http.Request) registry.Response {
			cur, err := drv.GetBrightness()
			if err != nil {
				return registry.Error(http.StatusInternalServerError, err.Error())
			}
			return registry.JSON(backlight.Info{
				DeviceType:        "backlight",
				Description:       description,
				CurrentBrightness: cur,
				MaxBrightness:     drv.MaxBrightness(),
			})
		})
		d.registerRoute(registry.Route{Path: "/" + id + "/get", Method: http.MethodGet, Description: "get normalized brightness"}, func(_ *http.Request) registry.Response {
			cur, err := drv.GetBrightness()
			if err != nil {
				return registry.Error(http.StatusInternalServerError, err.Error())
			}
			return registry.JSON(struct {
				Brightness float32 `json:"brightness"`
			}{Brightness: cur})
		})
		d.registerRoute(registry.Route{Path: "/" + id + "/set", Method: http.MethodGet, Description: "set normalized brightness"}, func(r *http.Request) registry.Response {
			raw := r.URL.Query().Get("brightness")
			if raw == "" {
				return registry.Error(http.StatusBadRequest, "missing brightness parameter")
			}
			b, err := strconv.ParseFloat(raw, 32)
			if err != nil {
				return registry.Error(http.StatusBadRequest, "invalid brightness parameter")
			}
			if err := drv.SetBrightness(float32(b)); err != nil {
				return registry.Error(http.StatusInternalServerError, err.Error())
			}
			return registry.Text("ok")
		})
	}

	if len(d.backlights) == 0 {
		log.Printf("[backlight] no backlights found, continuing without backlights")
	}
}
