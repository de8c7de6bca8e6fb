// Package cli runs the serve, export and publish subcommands for a site
// binary. A site's main function hands its App and os.Args to Run:
//
//	func main() {
//		ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
//		defer stop()
//
//		app := site.New(assets.Assets, table.Dispatch, routes)
//		if err := cli.Run(ctx, app, os.Args[1:]); err != nil {
//			fmt.Fprintln(os.Stderr, err)
//			os.Exit(1)
//		}
//	}
//
// Flag defaults come from the environment (SITEKIT_OUTPUT_DIR,
// SITEKIT_DIST_DIR, SITEKIT_LOG_LEVEL, SITEKIT_LOG_FORMAT, SERVER_*, S3_*)
// loaded through core/config. Flags override the environment.
package cli
