// Command gridpath generates a random obstacle grid, searches a path from the
// top-left to the bottom-right corner and shows the result.
//
// Settings come from GRIDPATH_* environment variables (optionally via a
// .env file) and can be overridden with flags:
//
//	gridpath -rows 15 -cols 30 -density 0.35 -seed 7 -mode canonical
//	gridpath -tui
//
// Exit codes: 0 path found, 1 bad configuration, 2 no path.
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"log"
	"math/rand"
	"os"
	"time"

	"github.com/gdamore/tcell/v2"

	"github.com/katalvlaran/gridpath/astar"
	"github.com/katalvlaran/gridpath/config"
	"github.com/katalvlaran/gridpath/gridgraph"
	"github.com/katalvlaran/gridpath/render"
)

func main() {
	log.SetPrefix("[gridpath] ")
	log.SetFlags(log.LstdFlags)

	cfg, err := config.Load()
	if err != nil {
		log.Printf("[FATAL] %v", err)
		os.Exit(1)
	}
	cfg = parseFlags(cfg, os.Args[1:])
	if err := cfg.Validate(); err != nil {
		log.Printf("[FATAL] %v", err)
		os.Exit(1)
	}

	os.Exit(run(cfg))
}

// parseFlags overrides cfg with command-line flags. Unset flags keep the
// configured value.
func parseFlags(cfg config.Config, args []string) config.Config {
	fs := flag.NewFlagSet("gridpath", flag.ExitOnError)
	fs.IntVar(&cfg.Rows, "rows", cfg.Rows, "grid rows")
	fs.IntVar(&cfg.Columns, "cols", cfg.Columns, "grid columns")
	fs.Float64Var(&cfg.Density, "density", cfg.Density, "obstacle probability in [0,1]")
	fs.Int64Var(&cfg.Seed, "seed", cfg.Seed, "random seed (0 = time based)")
	fs.StringVar(&cfg.Mode, "mode", cfg.Mode, "search mode: reference or canonical")
	fs.BoolVar(&cfg.TUI, "tui", cfg.TUI, "draw with a terminal UI")
	_ = fs.Parse(args)
	return cfg
}

func run(cfg config.Config) int {
	seed := cfg.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	mask, err := gridgraph.RandomMask(cfg.Rows, cfg.Columns, cfg.Density, rand.New(rand.NewSource(seed)))
	if err != nil {
		log.Printf("[FATAL] %v", err)
		return 1
	}
	start := gridgraph.Coordinate{X: 0, Y: 0}
	goal := gridgraph.Coordinate{X: cfg.Columns - 1, Y: cfg.Rows - 1}
	mask[start.Y][start.X], mask[goal.Y][goal.X] = false, false

	grid, err := gridgraph.NewGrid(cfg.Rows, cfg.Columns, mask)
	if err != nil {
		log.Printf("[FATAL] %v", err)
		return 1
	}

	var opts []astar.Option
	if cfg.Mode == config.ModeCanonical {
		opts = append(opts, astar.Canonical())
	}
	log.Printf("[INFO] searching %d×%d grid, density %g, seed %d, mode %s",
		cfg.Rows, cfg.Columns, cfg.Density, seed, cfg.Mode)

	out := <-astar.SearchAsync(context.Background(), grid, start, goal, opts...)
	frame := render.Frame{Grid: grid, Path: out.Result.Path, Start: start, Goal: goal}
	summary := summarize(grid, start, goal, out)

	if cfg.TUI {
		if err := show(frame, summary); err != nil {
			log.Printf("[ERROR] terminal UI: %v", err)
			fmt.Print(render.ASCII(frame))
			fmt.Println(summary)
		}
	} else {
		fmt.Print(render.ASCII(frame))
		fmt.Println(summary)
	}

	switch {
	case out.Err == nil:
		return 0
	case errors.Is(out.Err, astar.ErrNoPathFound):
		return 2
	default:
		log.Printf("[ERROR] %v", out.Err)
		return 1
	}
}

// summarize reports the search outcome next to the BFS shortest distance.
func summarize(grid *gridgraph.Grid, start, goal gridgraph.Coordinate, out astar.Outcome) string {
	if out.Err != nil {
		return fmt.Sprintf("%s after %d expansions: %v", out.Result.Status, out.Result.Expanded, out.Err)
	}
	shortest, err := grid.Distance(start, goal)
	if err != nil {
		return fmt.Sprintf("%s: cost %d, %d expansions (shortest unknown: %v)",
			out.Result.Status, out.Result.Cost, out.Result.Expanded, err)
	}
	return fmt.Sprintf("%s: cost %d, shortest %d, %d expansions",
		out.Result.Status, out.Result.Cost, shortest, out.Result.Expanded)
}

// show draws the frame in the terminal and waits for a key press.
func show(frame render.Frame, summary string) error {
	screen, err := tcell.NewScreen()
	if err != nil {
		return err
	}
	if err := screen.Init(); err != nil {
		return err
	}
	defer screen.Fini()

	render.Draw(screen, frame)
	render.DrawStatus(screen, frame, summary+"  (press any key)")
	for {
		switch screen.PollEvent().(type) {
		case *tcell.EventKey:
			return nil
		case *tcell.EventResize:
			screen.Sync()
			render.Draw(screen, frame)
			render.DrawStatus(screen, frame, summary+"  (press any key)")
		}
	}
}
