package play

import (
	"bufio"
	"context"
	"flag"
	"log"
	"os"
	"time"

	"github.com/google/subcommands"

	"github.com/nbdavies/isola/cli"
	"github.com/nbdavies/isola/logs"
)

type Command struct {
	db      string
	unicode bool
}

func (*Command) Name() string     { return "play" }
func (*Command) Synopsis() string { return "Play Isola from the command line" }
func (*Command) Usage() string {
	return `play

Play a game of Isola between two humans at the console.
`
}

func (c *Command) SetFlags(flags *flag.FlagSet) {
	flags.StringVar(&c.db, "db", "", "record the finished game to a sqlite database")
	flags.BoolVar(&c.unicode, "unicode", false, "render board with utf8 glyphs")
}

func (c *Command) Execute(ctx context.Context, flag *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	st := &cli.CLI{
		Out:    os.Stdout,
		In:     bufio.NewReader(os.Stdin),
		Glyphs: glyphs(c.unicode),
	}
	g, winner := st.Play()

	if c.db != "" {
		repo, err := logs.Open(c.db)
		if err != nil {
			log.Printf("open %s: %v", c.db, err)
			return subcommands.ExitFailure
		}
		defer repo.Close()
		err = repo.InsertGame(&logs.Game{
			Timestamp: time.Now(),
			Winner:    winner.String(),
			Loser:     winner.Flip().String(),
			Turns:     g.TurnNumber(),
			Burned:    g.BurnedCells(),
		})
		if err != nil {
			log.Printf("record game: %v", err)
			return subcommands.ExitFailure
		}
	}

	return subcommands.ExitSuccess
}

func glyphs(unicode bool) *cli.Glyphs {
	if unicode {
		return &cli.UnicodeGlyphs
	}
	return &cli.DefaultGlyphs
}
