package imu

import (
	"context"
	"fmt"
	"log"
	"sync"
	"time"

	"github.com/go-zeromq/zmq4"

	"github.com/periphd/halboard/internal/zmqutil"
)

// State is the publisher's lifecycle state, per spec.md §3.
type State int

const (
	Idle State = iota
	Running
)

func (s State) String() string {
	if s == Running {
		return "running"
	}
	return "idle"
}

// OnSampleHook lets a caller mutate a sample in place before fusion --
// calibration, axis-swap, whatever a specific board needs.
type OnSampleHook func(*Sample)

// Publisher owns one IMU driver and its PUB socket. Its state machine is
// start()/stop() as described in spec.md §4.3: idempotent in both
// directions, stop() joins the sampler task before returning.
type Publisher struct {
	id     string
	driver Driver
	sock   zmq4.Socket
	port   int
	onSample OnSampleHook

	mu      sync.Mutex
	state   State
	cancel  context.CancelFunc
	done    chan struct{}
	lastTS  uint64
}

// NewPublisher binds a PUB socket to host:0 and returns the publisher,
// born Idle. No samples are emitted until Start.
func NewPublisher(ctx context.Context, id, host string, driver Driver, onSample OnSampleHook) (*Publisher, error) {
	sock := zmq4.NewPub(ctx)
	if err := sock.Listen(zmqutil.BindAddr(host)); err != nil {
		return nil, fmt.Errorf("imu %s: listen: %w", id, err)
	}
	port, err := zmqutil.PortOf(sock.Addr().String())
	if err != nil {
		sock.Close()
		return nil, err
	}
	return &Publisher{id: id, driver: driver, sock: sock, port: port, onSample: onSample, state: Idle}, nil
}

// Port returns the bound PUB socket's TCP port.
func (p *Publisher) Port() int { return p.port }

// State returns the current lifecycle state.
func (p *Publisher) State() State {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.state
}

// Driver returns the underlying IMU driver, for HTTP info handlers.
func (p *Publisher) Driver() Driver { return p.driver }

// Start transitions Idle -> Running: inits the driver and spawns the
// sampler task. Calling Start while already Running is a no-op (warn
// only), matching the idempotence invariant in spec.md §8.
func (p *Publisher) Start() error {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.state == Running {
		log.Printf("[%s] start: already running", p.id)
		return nil
	}
	if err := p.driver.Init(); err != nil {
		return fmt.Errorf("imu %s: init: %w", p.id, err)
	}
	ctx, cancel := context.WithCancel(context.Background())
	p.cancel = cancel
	p.done = make(chan struct{})
	p.state = Running
	go p.sampleLoop(ctx, p.done)
	return nil
}

// Stop transitions Running -> Idle: signals shutdown, joins the sampler
// task, then deinits the driver. Calling Stop while already Idle is a
// no-op.
func (p *Publisher) Stop() error {
	p.mu.Lock()
	if p.state == Idle {
		p.mu.Unlock()
		log.Printf("[%s] stop: already idle", p.id)
		return nil
	}
	cancel := p.cancel
	done := p.done
	p.state = Idle
	p.mu.Unlock()

	cancel()
	<-done
	return p.driver.Deinit()
}

// Close releases the PUB socket. Callers must Stop before Close if the
// publisher is running.
func (p *Publisher) Close() error {
	return p.sock.Close()
}

// sampleLoop runs at driver.SampleRateHz() until ctx is cancelled, fusing
// each raw sample into an orientation and publishing the resulting frame.
// The ticker fires at fixed intervals without catch-up: an overrun tick is
// simply skipped, not doubled up.
func (p *Publisher) sampleLoop(ctx context.Context, done chan struct{}) {
	defer close(done)

	rate := p.driver.SampleRateHz()
	if rate <= 0 {
		rate = defaultRateHz
	}
	period := time.Duration(float64(time.Second) / rate)
	ticker := time.NewTicker(period)
	defer ticker.Stop()

	filter := NewMadgwick(0.1)
	var lastTick time.Time

	for {
		select {
		case <-ctx.Done():
			return
		case now := <-ticker.C:
			dt := period.Seconds()
			if !lastTick.IsZero() {
				dt = now.Sub(lastTick).Seconds()
			}
			lastTick = now
			p.tick(filter, float32(dt))
		}
	}
}

func (p *Publisher) tick(filter *Madgwick, dt float32) {
	sample, err := p.driver.Read()
	if err != nil {
		log.Printf("[%s] read: %v", p.id, err)
		return
	}
	if p.onSample != nil {
		p.onSample(&sample)
	}

	// Body frame convention: axes are passed reversed (z, y, x). This is a
	// deliberate, load-bearing quirk -- preserve it, don't "fix" it.
	filter.Update(
		sample.Gyro[2], sample.Gyro[1], sample.Gyro[0],
		sample.Accel[2], sample.Accel[1], sample.Accel[0],
		dt,
	)

	frame := Frame{
		TimestampMicros: uint64(time.Now().UnixMicro()),
		Sample:          sample,
		Quaternion:      filter.Quaternion(),
		Euler:           filter.Euler(),
	}
	p.mu.Lock()
	if frame.TimestampMicros <= p.lastTS {
		frame.TimestampMicros = p.lastTS + 1
	}
	p.lastTS = frame.TimestampMicros
	p.mu.Unlock()

	body := EncodeFrame(frame)
	if err := p.sock.Send(zmq4.NewMsg(body)); err != nil {
		log.Printf("[%s] publish: %v", p.id, err)
	}
}
