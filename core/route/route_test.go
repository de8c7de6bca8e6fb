package route_test

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/sitekit/core/response"
	"github.com/dmitrymomot/sitekit/core/route"
	"github.com/dmitrymomot/sitekit/pkg/async"
)

func TestStatic_Handle(t *testing.T) {
	t.Parallel()

	rt := route.NewStatic(func(path string) string { return "page:" + path })

	future := rt.Handle(httptest.NewRequest(http.MethodGet, "/about?x=1", nil))
	assert.True(t, future.IsComplete(), "static routes complete synchronously")

	resp, err := future.Await()
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, resp.Status)
	assert.Equal(t, "page:/about", string(resp.Body))
}

func TestStatic_ExportPaths(t *testing.T) {
	t.Parallel()

	render := func(string) string { return "" }

	assert.Equal(t, []string{"/about"}, route.NewStatic(render).ExportPaths("/about"))

	enumerated := route.NewStaticWithPaths(func() []string {
		return []string{"/blog/a", "/blog/b"}
	}, render)
	assert.Equal(t, []string{"/blog/a", "/blog/b"}, enumerated.ExportPaths("/blog/{slug}"))
}

func TestDynamic_Handle(t *testing.T) {
	t.Parallel()

	boom := errors.New("boom")
	rt := route.NewDynamic(func(r *http.Request) *async.Future[*response.Response] {
		r.Header.Set("X-Seen", "yes")
		if r.URL.Query().Get("fail") != "" {
			return async.Completed[*response.Response](nil, boom)
		}
		return async.Async(r.Context(), r.Method, func(_ context.Context, method string) (*response.Response, error) {
			return response.OK("method:" + method), nil
		})
	})

	req := httptest.NewRequest(http.MethodPost, "/api", nil)
	resp, err := rt.Handle(req).Await()
	require.NoError(t, err)
	assert.Equal(t, "method:POST", string(resp.Body))
	assert.Equal(t, "yes", req.Header.Get("X-Seen"), "handler may mutate the request")

	_, err = rt.Handle(httptest.NewRequest(http.MethodGet, "/api?fail=1", nil)).Await()
	assert.ErrorIs(t, err, boom)
}

func TestRouteVariants(t *testing.T) {
	t.Parallel()

	var routes []route.Route = []route.Route{
		route.NewStatic(func(string) string { return "" }),
		route.NewDynamic(func(*http.Request) *async.Future[*response.Response] { return nil }),
	}

	kinds := make([]string, 0, len(routes))
	for _, rt := range routes {
		switch rt.(type) {
		case *route.Static:
			kinds = append(kinds, "static")
		case *route.Dynamic:
			kinds = append(kinds, "dynamic")
		}
	}
	assert.Equal(t, []string{"static", "dynamic"}, kinds)
}
