package cli

import (
	"fmt"
	"os"

	"github.com/Daniel-Blankson/todo/internal/config"
	"github.com/Daniel-Blankson/todo/internal/model"
	"github.com/Daniel-Blankson/todo/internal/store"
	"github.com/Daniel-Blankson/todo/internal/tui"
	"github.com/Daniel-Blankson/todo/internal/ui"
)

// Options tune behavior from root flags. Zero values mean "defer to
// the config file".
type Options struct {
	Group   bool   // print grouped by pending/done
	Seed    string // JSON seed file path
	Theme   string // classic | neon | mono
	NoColor bool
}

// Run dispatches subcommands and returns an exit code (0 ok, 1 error, 2 usage).
func Run(args []string, opt Options) int {
	cfg, err := config.Load()
	if err != nil {
		ui.Fail("config: " + err.Error())
		return 1
	}
	// flags win over the config file
	if opt.Theme != "" {
		cfg.Theme = opt.Theme
	}
	if opt.Seed != "" {
		cfg.Seed = opt.Seed
	}
	ui.SetTheme(cfg.Theme)
	if opt.NoColor {
		ui.SetColorForcing(false, true)
	}

	cmd := ""
	if len(args) > 0 {
		cmd = args[0]
	}
	switch cmd {
	case "", "ls":
		return doInteractive(cfg)
	case "print":
		return doPrint(cfg, opt)
	case "help", "-h", "--help":
		PrintHelp()
		return 0
	}

	ui.Fail("unknown subcommand: " + cmd)
	fmt.Fprintln(os.Stderr)
	PrintHelp()
	return 2
}

func PrintHelp() {
	fmt.Printf(`todo - an in-memory todo list

Usage:
  todo [flags] [subcommand]

Subcommands:
  ls                 Open the interactive list (default)
  print              Render the seeded list once and exit
  help               Show this help

Flags:
  -seed <path>       JSON file to pre-populate the session
  -theme <name>      classic, neon or mono
  -group             Group print output by pending/done
  -no-color          Disable colored output

The list lives in memory only; everything is discarded on exit.
`)
}

// -------------- subcommand impls ----------------

func newStore(cfg config.Config) (*store.Store, error) {
	if cfg.Seed == "" {
		return store.New(), nil
	}
	seed, err := store.LoadSeed(cfg.Seed)
	if err != nil {
		return nil, err
	}
	return store.NewFromSeed(seed), nil
}

func doInteractive(cfg config.Config) int {
	st, err := newStore(cfg)
	if err != nil {
		ui.Fail("seed: " + err.Error())
		return 1
	}
	if err := tui.Run(st, cfg.CharLimit); err != nil {
		ui.Fail("tui: " + err.Error())
		return 1
	}
	return 0
}

func doPrint(cfg config.Config, opt Options) int {
	st, err := newStore(cfg)
	if err != nil {
		ui.Fail("seed: " + err.Error())
		return 1
	}
	ui.Panel(renderLines(st, opt.Group))
	return 0
}

// -------------- rendering helpers --------------

func renderLines(st *store.Store, group bool) []string {
	items := st.Items()
	sum := st.Summary()
	pending := sum.Total - sum.Completed

	header := fmt.Sprintf("%s  %s %d  %s %d  %s %d",
		ui.C(ui.Current().Title, "Todos"),
		ui.C(ui.Current().Success, "✔"), sum.Completed,
		ui.C(ui.Current().Pending, "•"), pending,
		ui.C(ui.Current().Accent, "Total"), sum.Total,
	)

	lines := []string{header, ui.C(ui.Current().Muted, ui.ProgressBar(sum.Completed, sum.Total, 28)), ""}
	if group {
		lines = append(lines, groupLines(items)...)
	} else {
		lines = append(lines, flatLines(items)...)
	}
	return lines
}

func flatLines(items []model.Item) []string {
	if len(items) == 0 {
		return []string{ui.C(ui.Current().Muted, "no items")}
	}
	out := make([]string, 0, len(items))
	for i, it := range items {
		idx := fmt.Sprintf("%2d.", i+1)
		box := ui.Current().BoxUnchecked
		color := ui.Current().Muted
		if it.Done {
			box, color = ui.Current().BoxChecked, ui.Current().Success
		}
		title := it.Title
		if len(title) > 80 {
			title = title[:77] + "..."
		}
		out = append(out, fmt.Sprintf("%s %s %s",
			ui.C("\033[2m", idx), ui.C(color, box), title))
	}
	return out
}

func groupLines(items []model.Item) []string {
	var pend, done []model.Item
	for _, it := range items {
		if it.Done {
			done = append(done, it)
		} else {
			pend = append(pend, it)
		}
	}
	var lines []string
	lines = append(lines, ui.C(ui.Current().Accent, "Pending"))
	if len(pend) == 0 {
		lines = append(lines, ui.C(ui.Current().Muted, "(none)"))
	} else {
		lines = append(lines, flatLines(pend)...)
	}
	lines = append(lines, "")
	lines = append(lines, ui.C(ui.Current().Accent, "Done"))
	if len(done) == 0 {
		lines = append(lines, ui.C(ui.Current().Muted, "(none)"))
	} else {
		lines = append(lines, flatLines(done)...)
	}
	return lines
}
