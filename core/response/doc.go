// Package response defines the buffered HTTP response value produced by page
// routes and the asset server.
//
// Unlike a streaming http.Handler, a Response is a plain value: status,
// headers and the full body. That lets the same route definitions serve live
// requests, be inspected in tests, and be written to disk by the exporter.
//
//	resp := response.OK("<h1>Hello</h1>")
//	if err := resp.Write(w); err != nil {
//		// client went away
//	}
//
// Dynamic pages built with templ components can render straight into a
// Response:
//
//	resp, err := response.Templ(r.Context(), pages.Profile(user))
package response
