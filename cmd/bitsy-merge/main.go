/*
Bitsy-merge combines Bitsy games into one.

Everything in each additional game is added to the main game. Anything in an
additional game whose ID is already used in the main game is given a new ID, and
every reference to it is updated to match. The avatar of an additional game
becomes an ordinary sprite. Variables are not renamed; a variable that the main
game already has is kept as it is in the main game.

Additional games are merged in the order they are given.

Usage:

	bitsy-merge [flags] MAIN ADDITIONAL... OUTPUT

The flags are:

	-v/--version
		Give the current version of the bitsy tools and then exit.

	-c/--config FILE
		Read settings from the given TOML file. Defaults to "bitsy.toml" in the
		current working directory, if it exists.

	-s/--strict
		Treat any problem found in any of the input games as a failure.

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

	cli.Usage("bitsy-merge [flags] MAIN ADDITIONAL... OUTPUT")
	tools, args, done, code := cli.Start("bitsy-merge", 3, -1)
	if done {
		returnCode = code
		return
	}

	mainGame := args[0]
	additional := args[1 : len(args)-1]
	output := args[len(args)-1]

	if err := tools.Merge(mainGame, additional, output); err != nil {
		tools.Logger().Error(err.Error())
		returnCode = cli.ExitDataError
		return
	}
}
