/*
Bitsy-dedupe removes duplicate tiles from a Bitsy game.

Two tiles are duplicates if they have the same animation frames, wall setting
and colour; names are not compared. The first of a set of duplicates is kept and
rooms that used the others are changed to use it. A tile that is entirely blank
with no wall setting and no colour is replaced by the background tile.

Usage:

	bitsy-dedupe [flags] INPUT OUTPUT

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
		Log messages at or above the given level. Each removed tile is logged
		at debug level.
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

	cli.Usage("bitsy-dedupe [flags] INPUT OUTPUT")
	tools, args, done, code := cli.Start("bitsy-dedupe", 2, 2)
	if done {
		returnCode = code
		return
	}

	if err := tools.Dedupe(args[0], args[1]); err != nil {
		tools.Logger().Error(err.Error())
		returnCode = cli.ExitDataError
		return
	}
}
