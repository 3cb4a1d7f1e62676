// Package zmqutil holds the small amount of glue shared by every ZMQ
// socket adapter in this daemon: binding to an OS-assigned port and
// recovering that port number afterwards.
package zmqutil

import (
	"fmt"
	"strconv"
	"strings"
)

// BindAddr is the endpoint every socket in this daemon binds to: let the
// kernel pick a free TCP port.
func BindAddr(host string) string {
	return fmt.Sprintf("tcp://%s:0", host)
}

// PortOf recovers the bound port from a bound address string such as
// "127.0.0.1:54321" or "tcp://127.0.0.1:54321". A plain split on the last
// colon is all that's needed here -- no regex required.
func PortOf(addr string) (int, error) {
	i := strings.LastIndexByte(addr, ':')
	if i < 0 || i == len(addr)-1 {
		return 0, fmt.Errorf("zmqutil: no port in address %q", addr)
	}
	port, err := strconv.Atoi(addr[i+1:])
	if err != nil {
		return 0, fmt.Errorf("zmqutil: bad port in address %q: %w", addr, err)
	}
	return port, nil
}
