/*
Package main is the searchkit entry point.

searchkit is the search core of a Telegram file-library bot and Mini App: a
tag parser that turns raw search input into structured filters (dates, size
bounds, sender, chat, file type), and a prefix-trie autocomplete index built
from the words in stored file names and captions.

By default it runs as a msgpack IPC server over stdin/stdout, the transport
the Mini App dev harness speaks. With -c it runs as an interactive CLI for
testing and debugging.

# Usage

Serve with a word-list dictionary:

	searchkit -dict words.txt

Mine the dictionary straight from the bot's metadata database:

	searchkit -db filebox.db

Interactive mode with debug logging:

	searchkit -c -d -dict words.txt

# Configuration

Settings live in a TOML file, auto-created under ~/.config/searchkit:

	[suggest]
	default_limit = 8
	max_limit = 64
	min_prefix = 1
	max_prefix = 60

	[dict]
	path = ""
	db_path = ""

Flags override config values for the current run.
*/
package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"

	"github.com/filebox/searchkit/internal/cli"
	"github.com/filebox/searchkit/internal/logger"
	"github.com/filebox/searchkit/pkg/config"
	"github.com/filebox/searchkit/pkg/dict"
	"github.com/filebox/searchkit/pkg/server"
)

const (
	Version = "0.3.0"
	AppName = "searchkit"
)

// sigHandler exits normally on interrupt.
func sigHandler() {
	c := make(chan os.Signal, 1)
	signal.Notify(c, os.Interrupt, syscall.SIGTERM)

	go func() {
		<-c
		fmt.Fprintf(os.Stderr, "\nExiting...\n")
		os.Exit(0)
	}()
}

// main wires flags, config, dictionary sources and the chosen mode together;
// the actual logic lives in the packages.
func main() {
	sigHandler()
	defaults := config.DefaultConfig()

	showVersion := flag.Bool("version", false, "Show current version")
	configPath := flag.String("config", "", "Path to config.toml")
	debugMode := flag.Bool("d", false, "Toggle debug mode")
	cliMode := flag.Bool("c", false, "Run interactive CLI instead of the IPC server")
	dictPath := flag.String("dict", "", "Path to a plain-text word list")
	dbPath := flag.String("db", "", "Path to the bot's SQLite metadata database")
	category := flag.String("cat", "", "MIME category filter for -db (image, video, ...)")
	limit := flag.Int("limit", defaults.CLI.DefaultLimit, "Number of suggestions to return in CLI mode")
	flag.Parse()

	if *showVersion {
		printVersion()
		os.Exit(0)
	}

	logger.SetDebug(*debugMode)

	cfg, activePath := config.LoadWithPriority(*configPath)
	if activePath != "" {
		log.Debugf("using config at: %s", activePath)
	}
	if *dictPath == "" {
		*dictPath = cfg.Dict.Path
	}
	if *dbPath == "" {
		*dbPath = cfg.Dict.DBPath
	}

	holder := dict.NewHolder()
	reload, err := setupDictionary(holder, *dictPath, *dbPath, *category)
	if err != nil {
		log.Fatalf("dictionary setup: %v", err)
	}
	log.Debugf("dictionary ready: %d words", holder.Trie().Size())

	if *cliMode {
		handler := cli.NewInputHandler(holder, *limit)
		if err := handler.Start(); err != nil {
			log.Fatalf("CLI stopped: %v", err)
		}
		return
	}

	srv := server.New(holder, cfg, reload)
	if err := srv.Start(); err != nil {
		log.Fatalf("server stopped: %v", err)
	}
}

// setupDictionary builds the initial trie and returns the reload function for
// runtime dict commands. The SQLite store wins when both sources are given;
// with neither, the index starts empty and reload requests fail cleanly.
func setupDictionary(holder *dict.Holder, dictPath, dbPath, category string) (server.ReloadFunc, error) {
	switch {
	case dbPath != "":
		store, err := dict.Open(dbPath)
		if err != nil {
			return nil, err
		}
		words, err := store.Words(context.Background(), category)
		if err != nil {
			return nil, err
		}
		holder.Rebuild(words)
		return func(ctx context.Context, cat string) ([]string, error) {
			if cat == "" {
				cat = category
			}
			return store.Words(ctx, cat)
		}, nil
	case dictPath != "":
		words, err := dict.ReadWordList(dictPath)
		if err != nil {
			return nil, err
		}
		holder.Rebuild(words)
		return func(ctx context.Context, _ string) ([]string, error) {
			return dict.ReadWordList(dictPath)
		}, nil
	default:
		log.Warn("no dictionary source given, starting with an empty index")
		return nil, nil
	}
}

func printVersion() {
	l := log.NewWithOptions(os.Stderr, log.Options{
		ReportCaller:    false,
		ReportTimestamp: false,
	})

	styles := log.DefaultStyles()
	styles.Values["version"] = lipgloss.NewStyle().Bold(true).
		Foreground(lipgloss.AdaptiveColor{Light: "#575279", Dark: "#e0def4"})
	l.SetStyles(styles)

	l.Print("")
	l.Print("[ searchkit ] tag parsing and instant completions for your file library")
	l.Print("", "version", Version)
	l.Print("use -h to see available options")
}
