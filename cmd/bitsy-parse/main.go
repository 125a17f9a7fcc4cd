/*
Bitsy-parse reads a Bitsy game data file and writes it back out.

The output is the game as the bitsy tools understand it, which makes this useful
both for checking that a game can be read and for putting a game file into a
consistent form. Problems found in the input are logged as warnings; any parts
of the game that could not be read are left out of the output.

Usage:

	bitsy-parse [flags] INPUT OUTPUT

The flags are:

	-v/--version
		Give the current version of the bitsy tools and then exit.

	-c/--config FILE
		Read settings from the given TOML file. Defaults to "bitsy.toml" in the
		current working directory, if it exists.

	-s/--strict
		Treat any problem found in the input as a failure and do not write the
		output.

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

	cli.Usage("bitsy-parse [flags] INPUT OUTPUT")
	tools, args, done, code := cli.Start("bitsy-parse", 2, 2)
	if done {
		returnCode = code
		return
	}

	if err := tools.Parse(args[0], args[1]); err != nil {
		tools.Logger().Error(err.Error())
		returnCode = cli.ExitDataError
		return
	}
}
