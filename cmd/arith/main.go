// Command arith is the CLI entry point for the arithmetic tokenizer.
//
// Usage:
//
//	arith tokens <file> [--format=text|json|msgpack|dump]   Print tokens
//	arith repl                                              Start interactive REPL
package main

import (
	"arith-lex/internal/config"
	"arith-lex/internal/lexer"
	"fmt"
	"io"
	"os"

	"github.com/sirupsen/logrus"
	"gopkg.in/alecthomas/kingpin.v2"
)

var log = logrus.New()

// options collected from the command line
type options struct {
	ConfigFile string
	Debug      bool
	Format     string
	File       string
}

func newApp(opts *options) (*kingpin.Application, *kingpin.CmdClause, *kingpin.CmdClause) {
	app := kingpin.New("arith", "Tokenizer for arithmetic expressions.")
	app.Flag("config", "Configuration in YML format.").Short('c').StringVar(&opts.ConfigFile)
	app.Flag("debug", "Run in debug mode (more log messages).").Short('d').BoolVar(&opts.Debug)

	tokens := app.Command("tokens", "Tokenize a file and print the tokens.")
	tokens.Flag("format", "Output format: text, json, msgpack, dump.").Short('f').EnumVar(&opts.Format, config.Formats...)
	tokens.Arg("file", "Source file.").Required().StringVar(&opts.File)

	repl := app.Command("repl", "Start interactive REPL.")
	return app, tokens, repl
}

func main() {
	opts := &options{}
	app, tokensCmd, replCmd := newApp(opts)
	command := kingpin.MustParse(app.Parse(os.Args[1:]))

	cfg, err := config.Load(opts.ConfigFile)
	if err != nil {
		log.WithError(err).Fatal("failed to prepare configuration")
	}
	setupLogging(cfg, opts.Debug)
	if opts.Format != "" {
		cfg.Format = opts.Format
	}

	switch command {
	case tokensCmd.FullCommand():
		os.Exit(cmdTokens(cfg, opts.File, os.Stdout, os.Stderr))
	case replCmd.FullCommand():
		if err := cmdRepl(cfg); err != nil {
			log.WithError(err).Fatal("REPL failed")
		}
	}
}

func setupLogging(cfg config.Config, debug bool) {
	log.Out = os.Stderr
	if level, err := cfg.Level(); err == nil {
		log.Level = level
	}
	if debug {
		log.Level = logrus.DebugLevel
	}
}

// ---- tokens command ----

// cmdTokens tokenizes filename and returns the process exit code.
func cmdTokens(cfg config.Config, filename string, stdout, stderr io.Writer) int {
	source, err := os.ReadFile(filename)
	if err != nil {
		fmt.Fprintf(stderr, "error: cannot read file %s: %v\n", filename, err)
		return 1
	}

	tokens, lexErr := lexer.Run(filename, string(source))
	log.WithFields(logrus.Fields{
		"file":   filename,
		"tokens": len(tokens),
		"failed": lexErr != nil,
	}).Debug("tokenized")

	if err := writeTokens(stdout, cfg.Format, tokens, lexErr); err != nil {
		log.WithError(err).Error("failed to write tokens")
		return 1
	}

	if lexErr != nil {
		fmt.Fprintln(stderr, lexErr.String())
		return 1
	}
	return 0
}
