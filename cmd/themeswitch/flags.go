// ABOUTME: CLI flag parsing using stdlib flag package
// ABOUTME: Flags override config file and environment settings; the first argument names the command

package main

import (
	"flag"
	"fmt"
	"io"
)

type cliArgs struct {
	catalog      string
	store        string
	defaultTheme string
	storageKey   string
	listen       string
	logLevel     string
	ephemeral    bool
	watch        bool
	verbose      bool
	version      bool

	command string
	rest    []string
}

const usage = `usage: themeswitch [flags] [command]

commands:
  pick       interactive picker (default on a terminal)
  list       print the catalog
  current    print the active theme (default otherwise)
  next       activate the next theme
  prev       activate the previous theme
  set ID     activate theme ID
  serve      publish the catalog over HTTP

flags:
`

func parseFlags(argv []string, stderr io.Writer) (cliArgs, error) {
	var args cliArgs

	fs := flag.NewFlagSet("themeswitch", flag.ContinueOnError)
	fs.SetOutput(stderr)
	fs.StringVar(&args.catalog, "catalog", "", "Catalog source: file, directory, http(s) URL, or \"builtin\"")
	fs.StringVar(&args.store, "store", "", "Store: memory, file, nats, a nats:// URL, or a state file path")
	fs.StringVar(&args.defaultTheme, "default", "", "Theme used when nothing is stored")
	fs.StringVar(&args.storageKey, "key", "", "Key the active theme is stored under")
	fs.StringVar(&args.listen, "listen", "", "Address for the serve command")
	fs.StringVar(&args.logLevel, "log-level", "", "Log level: debug, info, warn, error")
	fs.BoolVar(&args.ephemeral, "ephemeral", false, "Keep the selection in memory only")
	fs.BoolVar(&args.watch, "watch", false, "Reload the catalog when its files change")
	fs.BoolVar(&args.verbose, "verbose", false, "Shorthand for --log-level=debug")
	fs.BoolVar(&args.version, "version", false, "Show version and exit")
	fs.Usage = func() {
		fmt.Fprint(fs.Output(), usage)
		fs.PrintDefaults()
	}

	if err := fs.Parse(argv); err != nil {
		return args, err
	}

	if rest := fs.Args(); len(rest) > 0 {
		args.command = rest[0]
		args.rest = rest[1:]
	}
	if err := args.validate(); err != nil {
		fs.Usage()
		return args, err
	}
	return args, nil
}

func (a cliArgs) validate() error {
	switch a.command {
	case "", "pick", "list", "current", "next", "prev", "serve":
		if len(a.rest) > 0 {
			return fmt.Errorf("%s: unexpected arguments %v", a.command, a.rest)
		}
	case "set":
		if len(a.rest) != 1 {
			return fmt.Errorf("set: want exactly one theme id")
		}
	default:
		return fmt.Errorf("unknown command %q", a.command)
	}
	return nil
}
