package main

import (
	"arith-lex/internal/config"
	"arith-lex/internal/lexer"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/chzyer/readline"
)

// ---- ANSI colors ----

const (
	colorReset = "\033[0m"
	colorRed   = "\033[31m"
	colorGreen = "\033[32m"
	colorCyan  = "\033[36m"
	colorGray  = "\033[90m"
	colorBold  = "\033[1m"
)

// replSource is the source name reported for REPL input.
const replSource = "<stdin>"

// ---- repl command ----

func cmdRepl(cfg config.Config) error {
	historyFile := cfg.History
	if historyFile == "" {
		if home, err := os.UserHomeDir(); err == nil {
			historyFile = filepath.Join(home, ".arith_history")
		}
	}

	rl, err := readline.NewEx(&readline.Config{
		Prompt:            colorGreen + cfg.Prompt + colorReset,
		HistoryFile:       historyFile,
		InterruptPrompt:   "^C",
		EOFPrompt:         "exit",
		HistorySearchFold: true,
	})
	if err != nil {
		return fmt.Errorf("readline init failed: %w", err)
	}
	defer rl.Close()

	fmt.Fprintf(rl.Stdout(), "%s%sarith REPL%s %s(type 'exit' or Ctrl+D to quit)%s\n\n",
		colorBold, colorCyan, colorReset, colorGray, colorReset)

	for {
		line, err := rl.Readline()
		if err != nil {
			if err == readline.ErrInterrupt {
				fmt.Fprintf(rl.Stdout(), "%s(use 'exit' or Ctrl+D to quit)%s\n", colorGray, colorReset)
				continue
			}
			if err == io.EOF {
				fmt.Fprintln(rl.Stdout())
			}
			return nil
		}

		if strings.TrimSpace(line) == "exit" {
			return nil
		}

		evalLine(rl.Stdout(), rl.Stderr(), line)
	}
}

// evalLine tokenizes one line of REPL input and prints the tokens or the error.
func evalLine(stdout, stderr io.Writer, line string) {
	tokens, lexErr := lexer.Run(replSource, line)
	if lexErr != nil {
		log.WithField("offset", lexErr.Start.Offset).Debug("illegal input")
		fmt.Fprintf(stderr, "%s%s%s\n", colorRed, lexErr.String(), colorReset)
		return
	}
	fmt.Fprintln(stdout, formatTokens(tokens))
}
