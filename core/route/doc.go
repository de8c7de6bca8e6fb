// Package route defines page routes and a route table that dispatches
// requests to them.
//
// A Route is either Static or Dynamic:
//
//   - Static renders a page from its path alone. It may enumerate the
//     concrete paths it answers for, which is what the static exporter uses
//     to write one HTML file per path.
//   - Dynamic handles the request asynchronously and may read or mutate it.
//     Dynamic routes have no finite output set and are skipped by export.
//
// Routes are registered through Initializers, a URL pattern plus a factory.
// The factory is invoked for every dispatch and every export iteration, so a
// route instance is never shared between concurrent calls:
//
//	routes := []route.Initializer{
//		{Pattern: "/", Init: func() route.Route {
//			return route.NewStatic(func(path string) string { return "<h1>Home</h1>" })
//		}},
//		{Pattern: "/blog/{slug}", Init: func() route.Route {
//			return route.NewStaticWithPaths(blog.Paths, blog.Render)
//		}},
//		{Pattern: "/api/search", Init: func() route.Route {
//			return route.NewDynamic(search)
//		}},
//	}
//
//	table := route.NewTable(routes)
//	app := site.New(web.Assets, table.Dispatch, routes)
//
// Patterns use net/http ServeMux syntax: {name} matches one segment and
// {name...} the remainder. A pattern ending in "/" matches only that exact
// path, not the whole subtree.
package route
