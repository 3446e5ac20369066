// ABOUTME: CLI entry point for themeswitch
// ABOUTME: Loads config, wires catalog, store and theme manager, dispatches to a command

package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	// termfix must be imported before any package that imports bubbletea.
	// It presets a dark background in its init(), preventing BubbleTea from
	// sending OSC 10/11 terminal queries at startup.
	_ "github.com/mauromedda/themeswitch/internal/termfix"

	"golang.org/x/term"

	"github.com/mauromedda/themeswitch/internal/config"
	"github.com/mauromedda/themeswitch/internal/log"
)

var (
	version = "dev"
	commit  = "unknown"
	date    = "unknown"
)

func main() {
	args, err := parseFlags(os.Args[1:], os.Stderr)
	if errors.Is(err, flag.ErrHelp) {
		os.Exit(0)
	}
	if err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(2)
	}

	if args.version {
		fmt.Printf("themeswitch %s (%s) built %s\n", version, commit, date)
		os.Exit(0)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := run(ctx, args, os.Stdout, isTerminal(os.Stdout)); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		stop()
		os.Exit(1)
	}
}

func isTerminal(f *os.File) bool {
	return term.IsTerminal(int(f.Fd()))
}

func terminalWidth(f *os.File) int {
	w, _, err := term.GetSize(int(f.Fd()))
	if err != nil || w <= 0 {
		return 80
	}
	return w
}

// run loads settings, builds the app and executes the requested command.
// tty selects the interactive picker when no command is given.
func run(ctx context.Context, args cliArgs, stdout io.Writer, tty bool) error {
	cwd, err := os.Getwd()
	if err != nil {
		return fmt.Errorf("getting working directory: %w", err)
	}

	cfg, err := config.Load(cwd)
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}
	applyFlags(cfg, args)
	if err := cfg.Validate(); err != nil {
		return err
	}

	lvl, err := log.ParseLevel(cfg.LogLevel)
	if err != nil {
		log.Warn("%v; using info", err)
	}
	if args.verbose {
		lvl = log.LevelDebug
	}
	log.SetLevel(lvl)

	a, err := newApp(ctx, cfg)
	if err != nil {
		return err
	}
	defer a.Close()

	command := args.command
	if command == "" {
		command = "current"
		if tty {
			command = "pick"
		}
	}

	switch command {
	case "pick":
		return a.pick(ctx, args.watch)
	case "list":
		width := 0
		if f, ok := stdout.(*os.File); ok && tty {
			width = terminalWidth(f)
		}
		return a.list(ctx, stdout, width, tty)
	case "current":
		return a.current(ctx, stdout)
	case "next":
		return a.step(ctx, stdout, a.mgr.Next)
	case "prev":
		return a.step(ctx, stdout, a.mgr.Previous)
	case "set":
		return a.set(ctx, stdout, args.rest[0])
	case "serve":
		return a.serve(ctx, args.watch)
	}
	return fmt.Errorf("unknown command %q", command)
}

// applyFlags layers explicit flags over loaded settings.
func applyFlags(cfg *config.Settings, args cliArgs) {
	if args.catalog != "" {
		cfg.Catalog = args.catalog
	}
	if args.defaultTheme != "" {
		cfg.DefaultTheme = args.defaultTheme
	}
	if args.storageKey != "" {
		cfg.StorageKey = args.storageKey
	}
	if args.listen != "" {
		cfg.Listen = args.listen
	}
	if args.logLevel != "" {
		cfg.LogLevel = args.logLevel
	}
	if args.store != "" {
		config.SetStore(cfg, args.store)
	}
	if args.ephemeral {
		cfg.Store.Backend = config.BackendMemory
	}
}
