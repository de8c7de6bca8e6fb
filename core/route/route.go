package route

import (
	"net/http"

	"github.com/dmitrymomot/sitekit/core/response"
	"github.com/dmitrymomot/sitekit/pkg/async"
)

// Route is a page definition. The concrete types are *Static and *Dynamic.
type Route interface {
	// Handle produces the response for r.
	Handle(r *http.Request) *async.Future[*response.Response]

	isRoute()
}

// StaticRenderer renders the page at path.
type StaticRenderer func(path string) string

// DynamicHandler answers a request asynchronously.
type DynamicHandler func(r *http.Request) *async.Future[*response.Response]

// Static is a page rendered from its path alone.
type Static struct {
	// Paths optionally enumerates the concrete paths this route answers for.
	Paths  func() []string
	Render StaticRenderer
}

// Dynamic is a page computed from the full request.
type Dynamic struct {
	Handler DynamicHandler
}

// Initializer binds a URL pattern to a route factory.
// Init must be cheap and free of side effects; it runs on every call.
type Initializer struct {
	Pattern string
	Init    func() Route
}

// NewStatic returns a Static route without path enumeration.
func NewStatic(render StaticRenderer) *Static {
	return &Static{Render: render}
}

// NewStaticWithPaths returns a Static route that enumerates its paths.
func NewStaticWithPaths(paths func() []string, render StaticRenderer) *Static {
	return &Static{Paths: paths, Render: render}
}

// NewDynamic returns a Dynamic route.
func NewDynamic(handler DynamicHandler) *Dynamic {
	return &Dynamic{Handler: handler}
}

// Handle renders r.URL.Path and returns an already completed future with a
// 200 response.
func (s *Static) Handle(r *http.Request) *async.Future[*response.Response] {
	return async.Completed(response.OK(s.Render(r.URL.Path)), nil)
}

// ExportPaths returns the paths to export: the enumerated ones, or pattern
// itself when the route does not enumerate.
func (s *Static) ExportPaths(pattern string) []string {
	if s.Paths == nil {
		return []string{pattern}
	}
	return s.Paths()
}

func (*Static) isRoute() {}

// Handle delegates to the handler.
func (d *Dynamic) Handle(r *http.Request) *async.Future[*response.Response] {
	return d.Handler(r)
}

func (*Dynamic) isRoute() {}
