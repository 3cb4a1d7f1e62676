package player

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"

	"github.com/go-zeromq/zmq4"
)

// reply mirrors the status JSON the daemon's screen socket sends back
// after every push_frame_buffer request.
type reply struct {
	Status int    `json:"status"`
	Msg    string `json:"msg"`
}

// Screen is a connected REQ client pushing frames to one screen's socket.
type Screen struct {
	Info ScreenInfo
	sock zmq4.Socket
}

// DiscoverScreen fetches GET <apiBase>/<screenID>/info and dials a REQ
// socket to the returned frame_buffer_port on the same host as apiBase.
func DiscoverScreen(ctx context.Context, apiBase, screenID string) (*Screen, error) {
	info, err := fetchScreenInfo(apiBase, screenID)
	if err != nil {
		return nil, err
	}

	host, err := hostOf(apiBase)
	if err != nil {
		return nil, err
	}

	sock := zmq4.NewReq(ctx)
	addr := fmt.Sprintf("tcp://%s:%d", host, info.FrameBufferPort)
	if err := sock.Dial(addr); err != nil {
		return nil, fmt.Errorf("player: dial %s: %w", addr, err)
	}
	return &Screen{Info: info, sock: sock}, nil
}

func fetchScreenInfo(apiBase, screenID string) (ScreenInfo, error) {
	url := apiBase + "/" + screenID + "/info"
	resp, err := http.Get(url)
	if err != nil {
		return ScreenInfo{}, fmt.Errorf("player: fetch %s: %w", url, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return ScreenInfo{}, fmt.Errorf("player: fetch %s: status %s", url, resp.Status)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return ScreenInfo{}, fmt.Errorf("player: read %s: %w", url, err)
	}

	var info ScreenInfo
	if err := json.Unmarshal(body, &info); err != nil {
		return ScreenInfo{}, fmt.Errorf("player: decode %s: %w", url, err)
	}
	return info, nil
}

func hostOf(apiBase string) (string, error) {
	u, err := url.Parse(apiBase)
	if err != nil {
		return "", fmt.Errorf("player: malformed API base %q: %w", apiBase, err)
	}
	if u.Hostname() == "" {
		return "", fmt.Errorf("player: malformed API base %q", apiBase)
	}
	return u.Hostname(), nil
}

// Push sends one frame and waits for the status reply. frame must be
// exactly Info.FrameSize() bytes.
func (s *Screen) Push(frame []byte) error {
	if len(frame) != s.Info.FrameSize() {
		return fmt.Errorf("player: frame size %d, want %d", len(frame), s.Info.FrameSize())
	}
	if err := s.sock.Send(zmq4.NewMsg(frame)); err != nil {
		return fmt.Errorf("player: send: %w", err)
	}
	msg, err := s.sock.Recv()
	if err != nil {
		return fmt.Errorf("player: recv: %w", err)
	}
	var rep reply
	if err := json.Unmarshal(msg.Bytes(), &rep); err != nil {
		return fmt.Errorf("player: decode reply: %w", err)
	}
	if rep.Status != 0 {
		return fmt.Errorf("player: push rejected: %s", rep.Msg)
	}
	return nil
}

// Close releases the REQ socket.
func (s *Screen) Close() error {
	return s.sock.Close()
}
