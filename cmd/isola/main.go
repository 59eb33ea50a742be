package main

import (
	"context"
	"flag"
	"os"

	"github.com/google/subcommands"

	"github.com/nbdavies/isola/cmd/internal/history"
	"github.com/nbdavies/isola/cmd/internal/play"
)

func main() {
	subcommands.Register(subcommands.HelpCommand(), "")
	subcommands.Register(subcommands.FlagsCommand(), "")
	subcommands.Register(subcommands.CommandsCommand(), "")
	subcommands.Register(&play.Command{}, "")
	subcommands.Register(&history.Command{}, "")

	flag.Parse()
	ctx := context.Background()
	os.Exit(int(subcommands.Execute(ctx)))
}
