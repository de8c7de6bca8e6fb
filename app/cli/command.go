package cli

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strings"
	"text/tabwriter"

	"github.com/spf13/pflag"
)

// Command is one subcommand.
type Command struct {
	// Name is the word typed after the binary name.
	Name string
	// Summary is the one-line description shown in help.
	Summary string
	// Flags returns the command's flag set. Nil means no flags.
	Flags func() *pflag.FlagSet
	// Run executes the command with the positional args left after flags.
	Run func(ctx context.Context, args []string) error
}

func (c *Command) execute(ctx context.Context, w io.Writer, args []string) error {
	var rest []string
	if c.Flags != nil {
		fs := c.Flags()
		fs.SetOutput(io.Discard)
		if err := fs.Parse(args); err != nil {
			if errors.Is(err, pflag.ErrHelp) {
				fmt.Fprintf(w, "Usage of %s:\n%s", c.Name, fs.FlagUsages())
				return nil
			}
			return fmt.Errorf("%s: %w", c.Name, err)
		}
		rest = fs.Args()
	} else {
		rest = args
	}
	return c.Run(ctx, rest)
}

func dispatch(ctx context.Context, name string, w io.Writer, commands []*Command, args []string) error {
	if len(args) == 0 || isHelp(args[0]) {
		printHelp(w, name, commands)
		if len(args) == 0 {
			return ErrNoCommand
		}
		return nil
	}

	for _, c := range commands {
		if c.Name == args[0] {
			return c.execute(ctx, w, args[1:])
		}
	}
	return fmt.Errorf("%w: %q (run '%s help' for usage)", ErrUnknownCommand, args[0], name)
}

func isHelp(arg string) bool {
	return arg == "help" || arg == "-h" || arg == "--help"
}

func printHelp(w io.Writer, name string, commands []*Command) {
	fmt.Fprintf(w, "Usage: %s <command> [flags]\n\nCommands:\n", name)
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	for _, c := range commands {
		fmt.Fprintf(tw, "  %s\t%s\n", c.Name, c.Summary)
	}
	_ = tw.Flush()
	fmt.Fprintf(w, "\nRun '%s <command> --help' for command flags.\n", strings.TrimSpace(name))
}
