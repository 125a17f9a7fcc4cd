// Package cli holds the flags and start-up steps shared by the bitsy
// command-line programs.
package cli

import (
	"fmt"
	"os"

	"github.com/dekarrin/bitsy"
	"github.com/dekarrin/bitsy/internal/config"
	"github.com/dekarrin/bitsy/internal/version"
	"github.com/spf13/pflag"
)

const (

	// ExitSuccess indicates a successful program execution.
	ExitSuccess = iota

	// ExitDataError indicates an unsuccessful program execution due to a
	// problem with the game data being worked on.
	ExitDataError

	// ExitInitError indicates an unsuccessful program execution due to an issue
	// with the arguments, the config, or the environment.
	ExitInitError
)

var (
	flagVersion  = pflag.BoolP("version", "v", false, "Give the current version of the bitsy tools and then exit.")
	flagConfig   = pflag.StringP("config", "c", "", "Read settings from the given TOML file instead of "+config.DefaultFile+".")
	flagStrict   = pflag.BoolP("strict", "s", false, "Treat any problem found in a game as a failure.")
	flagLogLevel = pflag.String("log-level", "", "Log messages at or above the given level (trace, debug, info, warn, error).")
)

// Start parses the command line and sets up the tools for the program named
// prog. It checks that there are at least minArgs positional args, and at most
// maxArgs if maxArgs is not negative.
//
// If the program should stop now, done is true and code is the exit code to
// stop with; in that case any message for the user has already been printed.
func Start(prog string, minArgs, maxArgs int) (tools *bitsy.Tools, args []string, done bool, code int) {
	pflag.Parse()

	if *flagVersion {
		fmt.Printf("%s (bitsy tools v%s)\n", prog, version.Current)
		return nil, nil, true, ExitSuccess
	}

	args = pflag.Args()
	if len(args) < minArgs {
		fmt.Fprintf(os.Stderr, "Not enough arguments\nDo -h for help.\n")
		return nil, nil, true, ExitInitError
	}
	if maxArgs >= 0 && len(args) > maxArgs {
		fmt.Fprintf(os.Stderr, "Too many arguments\nDo -h for help.\n")
		return nil, nil, true, ExitInitError
	}

	cfg, err := config.Load(*flagConfig)
	if err != nil {
		fmt.Fprintf(os.Stderr, "ERROR: %s\n", err.Error())
		return nil, nil, true, ExitInitError
	}
	if pflag.Lookup("strict").Changed {
		cfg.Output.Strict = *flagStrict
	}
	if pflag.Lookup("log-level").Changed {
		cfg.Log.Level = *flagLogLevel
	}

	tools, err = bitsy.New(cfg, os.Stdout, os.Stderr)
	if err != nil {
		fmt.Fprintf(os.Stderr, "ERROR: %s\n", err.Error())
		return nil, nil, true, ExitInitError
	}

	return tools, args, false, ExitSuccess
}

// Usage sets the help text shown for -h to the given usage line followed by
// the flag listing.
func Usage(usage string) {
	pflag.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage:\n  %s\n\nFlags:\n", usage)
		pflag.PrintDefaults()
	}
}
