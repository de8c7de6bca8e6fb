package response

import (
	"bytes"
	"context"
	"errors"
	"fmt"

	"github.com/a-h/templ"
)

// ErrNilComponent is returned when Templ is called without a component.
var ErrNilComponent = errors.New("templ component is nil")

// Templ renders component into a 200 text/html response.
// The component receives ctx, so request-scoped values stay reachable.
func Templ(ctx context.Context, component templ.Component) (*Response, error) {
	if component == nil {
		return nil, ErrNilComponent
	}

	var buf bytes.Buffer
	if err := component.Render(ctx, &buf); err != nil {
		return nil, fmt.Errorf("templ component render error: %w", err)
	}

	resp := HTML("")
	resp.Body = buf.Bytes()
	return resp, nil
}
