package screen

import (
	"context"
	"encoding/json"
	"fmt"
	"log"

	"github.com/go-zeromq/zmq4"

	"github.com/periphd/halboard/internal/zmqutil"
)

// reply is the status JSON sent after every push_frame_buffer request.
type reply struct {
	Status int    `json:"status"`
	Msg    string `json:"msg"`
}

// Socket is the REP adapter in front of a screen Driver: one recv, one
// send, repeat. It owns the driver exclusively.
type Socket struct {
	id     string
	driver Driver
	sock   zmq4.Socket
	port   int
}

// NewSocket binds a REP socket to host:0, parses the OS-assigned port and
// returns the adapter. The driver is born unlistened-to; call Listen to
// start serving requests.
func NewSocket(ctx context.Context, id, host string, driver Driver) (*Socket, error) {
	sock := zmq4.NewRep(ctx)
	if err := sock.Listen(zmqutil.BindAddr(host)); err != nil {
		return nil, fmt.Errorf("screen %s: listen: %w", id, err)
	}
	port, err := zmqutil.PortOf(sock.Addr().String())
	if err != nil {
		sock.Close()
		return nil, err
	}
	return &Socket{id: id, driver: driver, sock: sock, port: port}, nil
}

// Port returns the bound data-plane TCP port, for device info responses.
func (s *Socket) Port() int { return s.port }

// Driver returns the underlying device driver, for HTTP info handlers.
func (s *Socket) Driver() Driver { return s.driver }

// Listen runs the request-reply loop until ctx is cancelled. Each
// iteration is strictly one recv followed by one send; a malformed or
// rejected frame never terminates the loop, and a reply is always sent to
// preserve the REP socket's protocol invariant.
func (s *Socket) Listen(ctx context.Context) {
	done := ctx.Done()
	for {
		select {
		case <-done:
			return
		default:
		}
		msg, err := s.sock.Recv()
		if err != nil {
			select {
			case <-done:
				return
			default:
			}
			log.Printf("[%s] recv: %v", s.id, err)
			continue
		}
		rep := s.pushFrameBuffer(msg.Bytes())
		body, err := json.Marshal(rep)
		if err != nil {
			log.Printf("[%s] encode reply: %v", s.id, err)
			body = []byte(`{"status":1,"msg":"internal encode error"}`)
		}
		if err := s.sock.Send(zmq4.NewMsg(body)); err != nil {
			log.Printf("[%s] send: %v", s.id, err)
		}
	}
}

// pushFrameBuffer implements the push_frame_buffer contract: a length
// mismatch never touches the device; otherwise the frame is written and the
// write error, if any, is surfaced as status:1.
func (s *Socket) pushFrameBuffer(frame []byte) reply {
	if err := s.driver.Push(frame); err != nil {
		return reply{Status: 1, Msg: err.Error()}
	}
	return reply{Status: 0, Msg: "ok"}
}

// Close releases the REP socket.
func (s *Socket) Close() error {
	return s.sock.Close()
}

// Info builds the device-info payload for GET /<id>/info.
func (s *Socket) Info(description string) Info {
	return Info{
		ScreenSize:      [2]int{s.driver.Width(), s.driver.Height()},
		BitsPerPixel:    s.driver.BitsPerPixel(),
		FrameBufferPort: s.port,
		DeviceType:      s.driver.DeviceType(),
		Description:     description,
	}
}
