package history

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"text/tabwriter"

	"github.com/google/subcommands"

	"github.com/nbdavies/isola/logs"
)

type Command struct {
	db    string
	limit int
}

func (*Command) Name() string     { return "history" }
func (*Command) Synopsis() string { return "List recorded game results" }
func (*Command) Usage() string {
	return `history -db GAMES.db

Print recorded game results, newest first.
`
}

func (c *Command) SetFlags(flags *flag.FlagSet) {
	flags.StringVar(&c.db, "db", "", "sqlite database of recorded games")
	flags.IntVar(&c.limit, "limit", 20, "maximum number of games to list")
}

func (c *Command) Execute(ctx context.Context, flag *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if c.db == "" {
		log.Println("Must supply a game database with -db")
		return subcommands.ExitUsageError
	}

	repo, err := logs.Open(c.db)
	if err != nil {
		log.Fatal("open: ", err)
	}
	defer repo.Close()

	games, err := repo.RecentGames(c.limit)
	if err != nil {
		log.Fatal("query: ", err)
	}

	w := tabwriter.NewWriter(os.Stdout, 4, 8, 1, '\t', 0)
	fmt.Fprintln(w, "time\twinner\tloser\tturns\tburned")
	for _, g := range games {
		fmt.Fprintf(w, "%s\t%s\t%s\t%d\t%d\n",
			g.Timestamp.Format("2006-01-02 15:04:05"),
			g.Winner, g.Loser, g.Turns, g.Burned)
	}
	w.Flush()

	return subcommands.ExitSuccess
}
