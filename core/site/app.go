package site

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/dmitrymomot/sitekit/core/assets"
	"github.com/dmitrymomot/sitekit/core/logger"
	"github.com/dmitrymomot/sitekit/core/response"
	"github.com/dmitrymomot/sitekit/core/route"
	"github.com/dmitrymomot/sitekit/pkg/async"
)

// PageFunc dispatches a request to a page. The future yields a nil response
// when no page matches. route.Table.Dispatch satisfies it.
type PageFunc func(r *http.Request) *async.Future[*response.Response]

// App serves pages and assets and exports them to disk.
// Safe for concurrent use; all fields are read-only after New.
type App struct {
	assets assets.Directory
	pages  PageFunc
	routes []route.Initializer
	logger *slog.Logger
}

// Option configures an App.
type Option func(*App)

// WithLogger sets the logger for request and export logging.
func WithLogger(l *slog.Logger) Option {
	return func(a *App) {
		if l != nil {
			a.logger = l
		}
	}
}

// New creates an App. pages may be nil for an asset-only site; routes are
// consulted only by Export.
func New(dir assets.Directory, pages PageFunc, routes []route.Initializer, opts ...Option) *App {
	a := &App{
		assets: dir,
		pages:  pages,
		routes: append([]route.Initializer(nil), routes...),
		logger: logger.Discard(),
	}
	for _, opt := range opts {
		opt(a)
	}
	return a
}

// Assets returns the asset directory.
func (a *App) Assets() assets.Directory {
	return a.assets
}

// Handle serves a page or, failing that, an asset.
// Returns nil, nil when neither matches.
func (a *App) Handle(r *http.Request) (*response.Response, error) {
	resp, err := a.ServePage(r)
	if err != nil || resp != nil {
		return resp, err
	}
	return a.ServeAsset(r), nil
}

// ServePage awaits the page dispatcher.
func (a *App) ServePage(r *http.Request) (*response.Response, error) {
	if a.pages == nil {
		return nil, nil
	}
	future := a.pages(r)
	if future == nil {
		return nil, nil
	}
	return future.Await()
}

// ServeAsset answers GET requests from the asset directory.
// Returns nil for other methods and for paths that are not in the directory.
func (a *App) ServeAsset(r *http.Request) *response.Response {
	if r.Method != http.MethodGet || a.assets == nil {
		return nil
	}

	name := trimLeadingSlash(r.URL.Path)
	file, ok := a.assets.Read(name)
	if !ok {
		return nil
	}

	resp := response.New(http.StatusOK)
	if ct, ok := assets.ContentType(name); ok {
		resp.Header.Set("Content-Type", ct)
	}

	if etag, ok := file.ETag(); ok {
		resp.Header.Set("ETag", etag)
		if r.Header.Get("If-None-Match") == etag {
			resp.Status = http.StatusNotModified
			return resp
		}
	}

	resp.Body = file.Data
	return resp
}

// ServeHTTP implements http.Handler. Unmatched requests get 404 and
// dispatcher errors 500.
func (a *App) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	start := time.Now()

	resp, err := a.Handle(r)
	switch {
	case err != nil:
		a.logger.ErrorContext(r.Context(), "page handler failed",
			logger.Method(r.Method),
			logger.Path(r.URL.Path),
			logger.Error(err),
		)
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	case resp == nil:
		resp = response.New(http.StatusNotFound)
		resp.Body = []byte(http.StatusText(http.StatusNotFound))
	}

	if err := resp.Write(w); err != nil {
		a.logger.DebugContext(r.Context(), "write response",
			logger.Path(r.URL.Path),
			logger.Error(err),
		)
	}

	a.logger.DebugContext(r.Context(), "request served",
		logger.Method(r.Method),
		logger.Path(r.URL.Path),
		logger.StatusCode(resp.Status),
		logger.Hash(resp.Header.Get("ETag")),
		logger.BytesOut(int64(len(resp.Body))),
		logger.Latency(time.Since(start)),
	)
}

func trimLeadingSlash(p string) string {
	if len(p) > 0 && p[0] == '/' {
		return p[1:]
	}
	return p
}
