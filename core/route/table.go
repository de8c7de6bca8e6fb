package route

import (
	"net/http"
	"strings"

	"github.com/dmitrymomot/sitekit/core/response"
	"github.com/dmitrymomot/sitekit/pkg/async"
)

// Table matches requests against a fixed list of Initializers.
// Safe for concurrent use; it is read-only after NewTable.
type Table struct {
	routes []Initializer
	mux    *http.ServeMux
}

// routeIndex marks which Initializer a mux pattern belongs to.
type routeIndex int

func (routeIndex) ServeHTTP(http.ResponseWriter, *http.Request) {}

// NewTable builds a Table from routes.
// Panics at startup on malformed or conflicting patterns.
func NewTable(routes []Initializer) *Table {
	t := &Table{
		routes: append([]Initializer(nil), routes...),
		mux:    http.NewServeMux(),
	}

	for i, init := range t.routes {
		if init.Init == nil {
			panic("route.NewTable: nil Init for pattern " + init.Pattern)
		}
		t.mux.Handle(muxPattern(init.Pattern), routeIndex(i))
	}

	return t
}

// Routes returns the registered Initializers in registration order.
func (t *Table) Routes() []Initializer {
	return append([]Initializer(nil), t.routes...)
}

// Dispatch finds the route for r, constructs it and handles the request.
// The returned future yields a nil response when no route matches. Static
// routes only answer GET and HEAD.
func (t *Table) Dispatch(r *http.Request) *async.Future[*response.Response] {
	h, _ := t.mux.Handler(r)
	idx, ok := h.(routeIndex)
	if !ok {
		return async.Completed[*response.Response](nil, nil)
	}

	init := t.routes[idx]
	rt := init.Init()

	if _, static := rt.(*Static); static && r.Method != http.MethodGet && r.Method != http.MethodHead {
		return async.Completed[*response.Response](nil, nil)
	}

	setPathValues(r, init.Pattern)
	return rt.Handle(r)
}

// muxPattern turns a trailing-slash pattern into an exact match.
func muxPattern(pattern string) string {
	if strings.HasSuffix(pattern, "/") {
		return pattern + "{$}"
	}
	return pattern
}

// setPathValues exposes {name} segments through r.PathValue.
func setPathValues(r *http.Request, pattern string) {
	patternSegs := strings.Split(strings.Trim(pattern, "/"), "/")
	pathSegs := strings.Split(strings.Trim(r.URL.Path, "/"), "/")

	for i, seg := range patternSegs {
		if !strings.HasPrefix(seg, "{") || !strings.HasSuffix(seg, "}") || i >= len(pathSegs) {
			continue
		}
		name := strings.TrimSuffix(seg[1:len(seg)-1], "...")
		if name == "$" {
			continue
		}
		if strings.HasSuffix(seg, "...}") {
			r.SetPathValue(name, strings.Join(pathSegs[i:], "/"))
			return
		}
		r.SetPathValue(name, pathSegs[i])
	}
}
