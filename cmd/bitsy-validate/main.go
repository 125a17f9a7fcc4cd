/*
Bitsy-validate checks a Bitsy game for problems.

It prints a summary of the game and a table of its rooms, followed by a list of
every problem found while reading it, or "OK!" if there were none.

Usage:

	bitsy-validate [flags] INPUT

The flags are:

	-v/--version
		Give the current version of the bitsy tools and then exit.

	-c/--config FILE
		Read settings from the given TOML file. Defaults to "bitsy.toml" in the
		current working directory, if it exists.

	-s/--strict
		Exit with a failure code if any problems are found.

	--log-level LEVEL
		Log messages at or above the given level.
*/
package main

import (
	"fmt"
	"os"

	"github.com/dekarrin/bitsy/internal/cli"
)

var returnCode = cli.ExitSuccess

func main() {
	defer func() {
		if panicErr := recover(); panicErr != nil {
			panic(fmt.Sprintf("unrecoverable panic occured: %v", panicErr))
		} else {
			os.Exit(returnCode)
		}
	}()

	cli.Usage("bitsy-validate [flags] INPUT")
	tools, args, done, code := cli.Start("bitsy-validate", 1, 1)
	if done {
		returnCode = code
		return
	}

	ok, err := tools.Validate(args[0])
	if err != nil {
		fmt.Fprintf(os.Stderr, "ERROR: %s\n", err.Error())
		returnCode = cli.ExitDataError
		return
	}

	if !ok && tools.Strict() {
		returnCode = cli.ExitDataError
	}
}
