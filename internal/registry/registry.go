// Package registry implements the process-global, append-mostly API
// registry: path+method routing, keyed by (path, method) only, with
// insertion order preserved for the /apis listing.
package registry

import (
	"encoding/json"
	"log"
	"net/http"
	"sync"
)

// Response is what a registered Handler returns; the server translates it
// directly into an HTTP response.
type Response struct {
	Status      int
	ContentType string
	Body        []byte
}

// Text builds a 200 text/plain response.
func Text(s string) Response {
	return Response{Status: http.StatusOK, ContentType: "text/plain; charset=utf-8", Body: []byte(s)}
}

// JSON builds a 200 application/json response, marshaling v.
func JSON(v interface{}) Response {
	b, err := json.Marshal(v)
	if err != nil {
		return Response{Status: http.StatusInternalServerError, ContentType: "text/plain; charset=utf-8", Body: []byte(err.Error())}
	}
	return Response{Status: http.StatusOK, ContentType: "application/json", Body: b}
}

// Error builds an error response with the given status and a text body.
func Error(status int, msg string) Response {
	return Response{Status: status, ContentType: "text/plain; charset=utf-8", Body: []byte(msg)}
}

// Handler maps a request to a Response. Registered handlers close over a
// shared handle to their device adapter; the registry owns the closures
// for the process lifetime.
type Handler func(r *http.Request) Response

type routeKey struct {
	Path   string
	Method string
}

// Route is the (path, method, description) tuple exposed by /apis.
// Description is metadata only -- lookup keys on (path, method).
type Route struct {
	Path        string `json:"path"`
	Method      string `json:"method"`
	Description string `json:"description"`
}

// Registry is the process-global routing table. Reads are lock-free over a
// read-write lock (many readers, few writers); writes only happen during
// startup, per spec.md §5.
type Registry struct {
	mu       sync.RWMutex
	order    []routeKey
	handlers map[routeKey]Handler
	descs    map[routeKey]string
	devices  []string
	deviceSet map[string]bool
}

// New constructs the registry with its two built-in routes, GET /apis and
// GET /devices, already seeded. Must be called once at process start and
// never torn down.
func New() *Registry {
	reg := &Registry{
		handlers:  make(map[routeKey]Handler),
		descs:     make(map[routeKey]string),
		deviceSet: make(map[string]bool),
	}
	reg.mustAddAPI(Route{Path: "/apis", Method: http.MethodGet, Description: "list all registered routes"}, reg.handleAPIs)
	reg.mustAddAPI(Route{Path: "/devices", Method: http.MethodGet, Description: "list all device ids"}, reg.handleDevices)
	return reg
}

// AddDevice appends id to the device list. A duplicate id is logged and
// ignored -- the device list is append-only and ids are unique.
func (r *Registry) AddDevice(id string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.deviceSet[id] {
		log.Printf("[registry] device %q already registered, ignoring", id)
		return
	}
	r.deviceSet[id] = true
	r.devices = append(r.devices, id)
}

// AddAPI inserts the route if its (path, method) key is absent; otherwise
// it returns an error and the existing handler is left untouched.
func (r *Registry) AddAPI(route Route, h Handler) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.addAPILocked(route, h)
}

func (r *Registry) addAPILocked(route Route, h Handler) error {
	key := routeKey{Path: route.Path, Method: route.Method}
	if _, ok := r.handlers[key]; ok {
		return &DuplicateRouteError{Path: route.Path, Method: route.Method}
	}
	r.handlers[key] = h
	r.descs[key] = route.Description
	r.order = append(r.order, key)
	return nil
}

// mustAddAPI is used only for the two built-in routes at construction,
// where a collision would be a programming error.
func (r *Registry) mustAddAPI(route Route, h Handler) {
	if err := r.addAPILocked(route, h); err != nil {
		panic(err)
	}
}

// DuplicateRouteError is returned by AddAPI when (path, method) is already
// registered.
type DuplicateRouteError struct {
	Path, Method string
}

func (e *DuplicateRouteError) Error() string {
	return "registry: route already registered: " + e.Method + " " + e.Path
}

// Invoke looks up (path, method) by exact match and runs its handler. An
// absent route yields 404 with body "Not Found".
func (r *Registry) Invoke(path, method string, req *http.Request) Response {
	r.mu.RLock()
	h, ok := r.handlers[routeKey{Path: path, Method: method}]
	r.mu.RUnlock()
	if !ok {
		return Response{Status: http.StatusNotFound, ContentType: "text/plain; charset=utf-8", Body: []byte("Not Found")}
	}
	return h(req)
}

func (r *Registry) handleAPIs(_ *http.Request) Response {
	r.mu.RLock()
	routes := make([]Route, 0, len(r.order))
	for _, key := range r.order {
		routes = append(routes, Route{Path: key.Path, Method: key.Method, Description: r.descs[key]})
	}
	r.mu.RUnlock()
	return JSON(routes)
}

func (r *Registry) handleDevices(_ *http.Request) Response {
	r.mu.RLock()
	devices := append([]string(nil), r.devices...)
	r.mu.RUnlock()
	return JSON(devices)
}
