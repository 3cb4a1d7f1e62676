package lifecycle

import (
	"context"
	"fmt"
	"log"
	"os"
	"os/signal"
	"strconv"
	"sync"
	"syscall"

	"github.com/maruel/interrupt"

	"github.com/periphd/halboard/internal/apiserver"
	"github.com/periphd/halboard/internal/backlight"
	"github.com/periphd/halboard/internal/imu"
	"github.com/periphd/halboard/internal/registry"
	"github.com/periphd/halboard/internal/screen"
)

// Daemon holds every constructed device adapter plus the registry and HTTP
// server, and drives the startup/shutdown sequence from spec.md §4.7.
type Daemon struct {
	cfg Config
	reg *registry.Registry

	screens    []*screen.Socket
	publishers []*imu.Publisher
	backlights []backlightEntry

	server *apiserver.Server

	wg     sync.WaitGroup
	cancel context.CancelFunc
}

type backlightEntry struct {
	id     string
	driver backlight.Driver
}

// Run executes the full startup sequence, blocks until SIGINT/SIGTERM, then
// shuts everything down cooperatively. It returns a non-zero-worthy error
// only for startup-time failures (spec.md §7's one fatal error class); a
// clean shutdown returns nil.
func Run(cfg Config) error {
	d := &Daemon{cfg: cfg, reg: registry.New()}

	ctx, cancel := context.WithCancel(context.Background())
	d.cancel = cancel

	d.discoverScreens(ctx, cfg)
	d.discoverIMUs(ctx, cfg)
	d.discoverBacklights(cfg)

	addr := cfg.Host + ":" + strconv.Itoa(cfg.Port)
	d.server = apiserver.New(addr, d.reg, cfg.Verbose)

	d.wg.Add(1)
	serveErrCh := make(chan error, 1)
	go func() {
		defer d.wg.Done()
		if err := d.server.ListenAndServe(); err != nil {
			serveErrCh <- err
		}
	}()

	installSignalHandlers(cancel)

	select {
	case <-ctx.Done():
	case err := <-serveErrCh:
		cancel()
		d.shutdown()
		return fmt.Errorf("lifecycle: http server: %w", err)
	}

	d.shutdown()
	return nil
}

// installSignalHandlers wires SIGINT (through the shared interrupt
// package, the teacher's own dependency) and SIGTERM (via the standard
// library, since interrupt only watches os.Interrupt) into one cancel
// call -- both signals are functionally equivalent per spec.md §6.
func installSignalHandlers(cancel context.CancelFunc) {
	interrupt.HandleCtrlC()
	sigterm := make(chan os.Signal, 1)
	signal.Notify(sigterm, syscall.SIGTERM)
	go func() {
		select {
		case <-interrupt.Channel:
		case <-sigterm:
		}
		cancel()
	}()
}

// shutdown fires the latch (already done by the caller via cancel),
// stops the HTTP server, stops every running IMU publisher and closes
// every socket, then joins all background tasks. Workers observe the
// latch within one sampling or accept cycle, so this never hangs.
func (d *Daemon) shutdown() {
	if err := d.server.Close(); err != nil {
		log.Printf("[lifecycle] http close: %v", err)
	}

	for _, p := range d.publishers {
		if p.State() == imu.Running {
			if err := p.Stop(); err != nil {
				log.Printf("[lifecycle] imu stop: %v", err)
			}
		}
		if err := p.Close(); err != nil {
			log.Printf("[lifecycle] imu close: %v", err)
		}
	}
	for _, s := range d.screens {
		if err := s.Close(); err != nil {
			log.Printf("[lifecycle] screen close: %v", err)
		}
	}

	d.wg.Wait()
}

func (d *Daemon) registerRoute(route registry.Route, h registry.Handler) {
	if err := d.reg.AddAPI(route, h); err != nil {
		log.Printf("[lifecycle] %v", err)
	}
}
