package lifecycle

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"path/filepath"

	"github.com/periphd/halboard/internal/registry"
	"github.com/periphd/halboard/internal/screen"
)

func (d *Daemon) discoverScreens(ctx context.Context, cfg Config) {
	var drivers []screen.Driver
	var names []string

	if cfg.MockScreen {
		drivers = append(drivers, screen.NewMock("mock-screen", 320, 240, 16))
		names = append(names, "mock")
	}

	for _, c := range screen.ScanFramebuffers(cfg.FramebufferRoot) {
		devNode := filepath.Join("/dev", filepath.Base(c.SysfsDir))
		fb, err := screen.NewFramebuffer(c.Name, c.Width, c.Height, c.BPP, devNode)
		if err != nil {
			log.Printf("[screen] open %s: %v", devNode, err)
			continue
		}
		drivers = append(drivers, fb)
		names = append(names, c.Name)
	}

	for i, drv := range drivers {
		id := fmt.Sprintf("screen%d", i)
		sock, err := screen.NewSocket(ctx, id, cfg.Host, drv)
		if err != nil {
			log.Printf("[%s] bind: %v", id, err)
			continue
		}
		d.screens = append(d.screens, sock)
		d.reg.AddDevice(id)

		description := fmt.Sprintf("%s framebuffer display (%s)", id, names[i])
		d.registerRoute(registry.Route{Path: "/" + id + "/info", Method: http.MethodGet, Description: "screen device info"}, func(_ *http.Request) registry.Response {
			return registry.JSON(sock.Info(description))
		})

		d.wg.Add(1)
		go func(s *screen.Socket, id string) {
			defer d.wg.Done()
			s.Listen(ctx)
			log.Printf("[%s] listener stopped", id)
		}(sock, id)
	}

	if len(d.screens) == 0 {
		log.Printf("[screen] no framebuffers found, continuing without screens")
	}
}
