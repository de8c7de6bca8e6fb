package response

import (
	"net/http"
	"slices"
)

// Response is a fully buffered HTTP response.
type Response struct {
	Status int
	Header http.Header
	Body   []byte
}

// New creates an empty response with the given status.
// A zero status means 200 OK.
func New(status int) *Response {
	if status == 0 {
		status = http.StatusOK
	}
	return &Response{Status: status, Header: make(http.Header)}
}

// OK creates a 200 response whose body is content. No Content-Type is set.
func OK(content string) *Response {
	resp := New(http.StatusOK)
	resp.Body = []byte(content)
	return resp
}

// HTML creates a 200 text/html response.
func HTML(content string) *Response {
	resp := OK(content)
	resp.Header.Set("Content-Type", "text/html; charset=utf-8")
	return resp
}

// Bytes creates a 200 response with an optional content type.
func Bytes(content []byte, contentType string) *Response {
	resp := New(http.StatusOK)
	if contentType != "" {
		resp.Header.Set("Content-Type", contentType)
	}
	resp.Body = content
	return resp
}

// NotModified creates an empty 304 response.
func NotModified() *Response {
	return New(http.StatusNotModified)
}

// Write copies the headers, status and body to w.
func (r *Response) Write(w http.ResponseWriter) error {
	dst := w.Header()
	for key, values := range r.Header {
		dst[key] = slices.Clone(values)
	}

	status := r.Status
	if status == 0 {
		status = http.StatusOK
	}
	w.WriteHeader(status)

	if len(r.Body) > 0 {
		_, err := w.Write(r.Body)
		return err
	}
	return nil
}
