/*
Package main implements the wordtrie completion CLI and IPC server.

Wordtrie provides prefix-based word completion backed by a
character-indexed trie with per-word occurrence counts. Completions are
ranked by frequency with alphabetical tie-breaks, at most ten per query.

# Usage

Start the interactive prompt with a dictionary file:

	wordtrie -dict /usr/share/dict/words

The prompt accepts three commands: (p)redict completions for a prefix,
(a)dd a word, and (q)uit. Run with -s to speak msgpack IPC over
stdin/stdout instead:

	wordtrie -dict words.txt -s

Dictionary files are plain text: tokens are whitespace separated and each
token has its trailing ASCII punctuation stripped before insertion, so
"end." indexes as "end" while "don't" stays intact.

# Configuration

Runtime settings live in a TOML file, created with defaults when missing:

	[server]
	min_prefix = 1
	max_prefix = 60

	[dict]
	path = ""
	strip_punct = true

	[cli]
	default_limit = 10

Use -config to point at a custom file; flags override the file.
*/
package main

import (
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/castellan/wordtrie/internal/cli"
	"github.com/castellan/wordtrie/pkg/config"
	"github.com/castellan/wordtrie/pkg/dictionary"
	"github.com/castellan/wordtrie/pkg/server"
	"github.com/castellan/wordtrie/pkg/suggest"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"
)

const (
	Version = "0.3.0"
	AppName = "wordtrie"
	gh      = "https://github.com/castellan/wordtrie"
)

// sigHandler is a simple handler for OS signals to exit normally.
func sigHandler() {
	c := make(chan os.Signal, 1)
	signal.Notify(c, os.Interrupt, syscall.SIGTERM)

	go func() {
		<-c
		fmt.Fprintf(os.Stderr, "\nExiting...\n")
		os.Exit(0)
	}()
}

// main wires config, dictionary loading and the chosen front end together.
// The actual logic lives in the other packages.
func main() {
	sigHandler()
	defaults := config.DefaultConfig()

	showVersion := flag.Bool("version", false, "Show current version")
	dictPath := flag.String("dict", "", "Dictionary file to preload (optional)")
	configPath := flag.String("config", "", "Path to a custom config.toml")
	debugMode := flag.Bool("d", false, "Toggle debug mode")
	serverMode := flag.Bool("s", false, "Run the msgpack IPC server instead of the interactive prompt")
	limit := flag.Int("limit", defaults.CLI.DefaultLimit, "Number of completions to display")
	minPrefix := flag.Int("prmin", defaults.CLI.DefaultMinLen, "Minimum prefix length for completions")
	maxPrefix := flag.Int("prmax", defaults.CLI.DefaultMaxLen, "Maximum prefix length for completions")
	noStrip := flag.Bool("no-strip", false, "Keep trailing punctuation on dictionary tokens (DBG only)")

	flag.Parse()

	if *showVersion {
		printVersion()
		os.Exit(0)
	}

	if *debugMode {
		log.SetLevel(log.DebugLevel)
		log.SetReportTimestamp(true)
	} else {
		log.SetLevel(log.WarnLevel)
	}

	appConfig, activePath, err := config.LoadConfigWithPriority(*configPath)
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}
	log.Debugf("Using config file: (%s)", config.GetActiveConfigPath(activePath))

	completer := suggest.NewCompleter()

	path := *dictPath
	if path == "" {
		path = appConfig.Dict.Path
	}
	if path != "" {
		stripPunct := appConfig.Dict.StripPunct && !*noStrip
		loader := dictionary.NewLoader(path, stripPunct)
		count, err := loader.Load(completer)
		if err != nil {
			log.Fatalf("Failed to load dictionary: %v", err)
		}
		log.Debugf("Preloaded %d words (%d distinct)", count, completer.WordCount())
		log.Debugf("Engine stats: %v", completer.Stats())
	} else {
		log.Warn("No dictionary file specified, starting with an empty trie...")
	}

	if *serverMode {
		srv := server.NewServer(completer, appConfig)
		if err := srv.Start(); err != nil {
			log.Fatalf("Server error: %v", err)
		}
		return
	}

	log.SetReportTimestamp(false)
	log.Debug("Input info:",
		"minPrefix", *minPrefix,
		"maxPrefix", *maxPrefix,
		"limit", *limit)

	inputHandler := cli.NewInputHandler(completer, *minPrefix, *maxPrefix, *limit)
	if err := inputHandler.Start(); err != nil {
		log.Fatalf("CLI error: %v", err)
	}
}

// printVersion displays a styled version banner.
func printVersion() {
	logger := log.NewWithOptions(os.Stderr, log.Options{
		ReportCaller:    false,
		ReportTimestamp: false,
		Prefix:          "",
	})

	styles := log.DefaultStyles()
	styles.Values["version"] = lipgloss.NewStyle().Bold(true).
		Foreground(lipgloss.AdaptiveColor{Light: "#575279", Dark: "#e0def4"})
	styles.Values["gh"] = lipgloss.NewStyle().Italic(true).
		Foreground(lipgloss.AdaptiveColor{Light: "#575279", Dark: "#e0def4"})
	logger.SetStyles(styles)

	logger.Print("")
	logger.Print("[ wordtrie ] frequency-ranked prefix completion")
	logger.Print("", "version", Version)
	logger.Print("use -h or --help to see available options")
	logger.Print("Github Repo", "gh", gh)
}
