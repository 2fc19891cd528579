package main

import (
	"flag"
	"os"

	"github.com/Daniel-Blankson/todo/internal/cli"
)

func main() {
	// Root flags (apply to every subcommand)
	groupPending := flag.Bool("group", false, "group print output by pending/done")
	seedPath := flag.String("seed", "", "JSON file to pre-populate the session")
	themeName := flag.String("theme", "", "theme: classic, neon or mono")
	noColor := flag.Bool("no-color", false, "disable colored output")
	flag.Parse()

	// Hand the remaining args to the CLI runner.
	os.Exit(cli.Run(flag.Args(), cli.Options{
		Group:   *groupPending,
		Seed:    *seedPath,
		Theme:   *themeName,
		NoColor: *noColor,
	}))
}
