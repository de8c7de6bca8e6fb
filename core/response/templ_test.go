package response_test

import (
	"context"
	"errors"
	"io"
	"net/http"
	"testing"

	"github.com/a-h/templ"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/sitekit/core/response"
)

type ctxKey struct{}

func TestTempl(t *testing.T) {
	t.Parallel()

	component := templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		name, _ := ctx.Value(ctxKey{}).(string)
		_, err := io.WriteString(w, "<h1>"+name+"</h1>")
		return err
	})

	ctx := context.WithValue(context.Background(), ctxKey{}, "sitekit")
	resp, err := response.Templ(ctx, component)
	require.NoError(t, err)

	assert.Equal(t, http.StatusOK, resp.Status)
	assert.Equal(t, "text/html; charset=utf-8", resp.Header.Get("Content-Type"))
	assert.Equal(t, "<h1>sitekit</h1>", string(resp.Body))
}

func TestTempl_Errors(t *testing.T) {
	t.Parallel()

	_, err := response.Templ(context.Background(), nil)
	assert.ErrorIs(t, err, response.ErrNilComponent)

	boom := errors.New("boom")
	failing := templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		return boom
	})
	_, err = response.Templ(context.Background(), failing)
	assert.ErrorIs(t, err, boom)
}
