package main

import (
	"context"
	"errors"
	"fmt"
	"os"

	flag "github.com/spf13/pflag"
)

// Version is set at build time via ldflags.
var Version = "dev"

func main() {
	os.Exit(runMain(os.Args, DefaultEnv()))
}

// runMain runs the CLI and returns the process exit code: 0 on success,
// 1 on any error.
func runMain(args []string, env *Environment) int {
	if err := run(context.Background(), args, env); err != nil {
		fmt.Fprintln(env.Stderr, err)
		return 1
	}
	return 0
}

func run(ctx context.Context, args []string, env *Environment) error {
	flags, err := parseFlags(args, env)
	if err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return nil
		}
		return err
	}

	if flags.version {
		fmt.Fprintf(env.Stdout, "simplex2docx %s\n", Version)
		return nil
	}

	return runConvert(ctx, flags, env)
}
