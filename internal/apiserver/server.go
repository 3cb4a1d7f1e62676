// Package apiserver implements the HTTP control-plane server: a single
// accept loop (via net/http.Server, which already speaks HTTP/1.1 with
// upgrade support) dispatching every request to the API registry.
package apiserver

import (
	"bufio"
	"context"
	"errors"
	"log"
	"net"
	"net/http"

	"github.com/periphd/halboard/internal/registry"
)

// Server wraps an http.Server whose only handler asks the registry for a
// Response and writes it back. Shutdown races accept against the shutdown
// latch; in-flight connections are not drained, matching spec.md §4.6.
type Server struct {
	httpSrv *http.Server
}

// New builds a Server bound to addr (host:port), dispatching through reg.
func New(addr string, reg *registry.Registry, verbose bool) *Server {
	mux := dispatcher{reg: reg}
	var handler http.Handler = mux
	if verbose {
		handler = loggingHandler{handler: mux}
	}
	return &Server{httpSrv: &http.Server{Addr: addr, Handler: handler}}
}

// ListenAndServe blocks serving requests until Shutdown is called or a
// fatal bind error occurs. A bind failure is the only fatal error path in
// this daemon per spec.md §7.
func (s *Server) ListenAndServe() error {
	err := s.httpSrv.ListenAndServe()
	if errors.Is(err, http.ErrServerClosed) {
		return nil
	}
	return err
}

// Shutdown stops accepting new connections and waits, until ctx is done,
// for in-flight requests to finish (net/http's graceful shutdown). The
// daemon's own shutdown path uses Close instead, which does not wait.
func (s *Server) Shutdown(ctx context.Context) error {
	return s.httpSrv.Shutdown(ctx)
}

// Close closes the listener and all active connections immediately,
// without draining. Used on the shutdown-latch path where spec.md §4.6
// calls for an immediate stop rather than a graceful drain.
func (s *Server) Close() error {
	return s.httpSrv.Close()
}

// dispatcher turns an http.Request into a registry.Invoke call and writes
// the resulting Response back.
type dispatcher struct {
	reg *registry.Registry
}

func (d dispatcher) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	resp := d.reg.Invoke(r.URL.Path, r.Method, r)
	if resp.ContentType != "" {
		w.Header().Set("Content-Type", resp.ContentType)
	}
	w.WriteHeader(resp.Status)
	_, _ = w.Write(resp.Body)
}

// loggingHandler logs one line per request when --verbose is set, in the
// teacher's style: remote addr, status, body length, method, URI.
type loggingHandler struct {
	handler http.Handler
}

type loggingResponseWriter struct {
	http.ResponseWriter
	length int
	status int
}

func (l *loggingResponseWriter) Write(data []byte) (int, error) {
	n, err := l.ResponseWriter.Write(data)
	l.length += n
	return n, err
}

func (l *loggingResponseWriter) WriteHeader(status int) {
	l.ResponseWriter.WriteHeader(status)
	l.status = status
}

// Hijack is needed to preserve HTTP/1.1 upgrade support through the
// logging wrapper.
func (l *loggingResponseWriter) Hijack() (net.Conn, *bufio.ReadWriter, error) {
	h, ok := l.ResponseWriter.(http.Hijacker)
	if !ok {
		return nil, nil, errors.New("apiserver: ResponseWriter does not support Hijack")
	}
	return h.Hijack()
}

func (l loggingHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	lrw := &loggingResponseWriter{ResponseWriter: w, status: http.StatusOK}
	l.handler.ServeHTTP(lrw, r)
	log.Printf("[http] %s - %3d %6db %4s %s", r.RemoteAddr, lrw.status, lrw.length, r.Method, r.RequestURI)
}
