// Package site ties an asset Directory, a page dispatcher and a route table
// into an application that can serve requests or export itself to disk.
//
// # Serving
//
// App.Handle tries the page dispatcher first and falls back to the asset
// directory. A nil response means neither matched and the caller should
// answer 404. App also implements http.Handler and does exactly that:
//
//	routes := pages.Routes()
//	table := route.NewTable(routes)
//	app := site.New(web.Assets, table.Dispatch, routes, site.WithLogger(log))
//
//	srv := server.New(":8080", server.WithLogger(log))
//	_ = srv.Start(ctx, app)
//
// Assets are only served for GET. When the file carries a fingerprint it is
// sent as the ETag, and a request whose If-None-Match is byte-for-byte equal
// gets 304 with an empty body. There is no weak-validator or wildcard
// handling. Content-Type comes from a fixed table (css, js, svg, wasm) and is
// omitted for anything else.
//
// # Exporting
//
// App.Export writes a server-independent copy of the site:
//
//	report, err := app.Export("build", "dist")
//
// distDir is deleted and recreated, every regular file under
// build/output is copied, and every Static route is rendered once per
// enumerated path ("/" → index.html, "/blog/" → blog/index.html,
// "/about" → about.html). Dynamic routes are skipped. The first failure
// aborts the export; the next run starts from scratch.
package site
