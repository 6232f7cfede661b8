package main

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/mattn/go-isatty"

	"github.com/johnboiles/jsonnet/internal/replio"
	"github.com/johnboiles/jsonnet/lex"
)

func runRepl(args []string, encoding string) int {
	if len(args) != 0 {
		fmt.Fprintf(os.Stderr, "repl takes no arguments.\n")
		return ExitUsageError
	}

	var reader replio.LineReader
	if isatty.IsTerminal(os.Stdin.Fd()) {
		ir, err := replio.NewInteractiveReader("jsonnetlex> ")
		if err != nil {
			fmt.Fprintf(os.Stderr, "Could not start readline: %s\n", err)
			return ExitUsageError
		}
		reader = ir
	} else {
		reader = replio.NewDirectReader(os.Stdin)
	}
	defer reader.Close()

	for {
		line, err := reader.ReadLine()
		if err == io.EOF {
			return ExitSuccess
		}
		if err != nil {
			fmt.Fprintf(os.Stderr, "%s\n", err)
			return ExitUsageError
		}

		if strings.TrimSpace(line) == "" {
			continue
		}

		tokens, err := lex.Lex("<repl>", []byte(line))
		if err != nil {
			fmt.Println(err)
			continue
		}
		for _, t := range tokens {
			if t.Kind == lex.EndOfFile {
				continue
			}
			if t.Data != "" {
				fmt.Printf("%-12s %q\n", t.Kind, t.Data)
			} else {
				fmt.Printf("%-12s\n", t.Kind)
			}
		}
	}
}
