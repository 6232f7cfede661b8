package main

import (
	"fmt"
	"os"

	"github.com/johnboiles/jsonnet/internal/srcload"
	"github.com/johnboiles/jsonnet/lex"
)

func runCheck(args []string, encoding string) int {
	if len(args) < 1 {
		fmt.Fprintf(os.Stderr, "check requires at least one FILE argument.\n")
		return ExitUsageError
	}

	anyFailed := false
	for _, file := range args {
		src, err := srcload.Read(file, encoding)
		if err != nil {
			fmt.Printf("FAIL %s: could not read: %s\n", file, err)
			anyFailed = true
			continue
		}

		if _, err := lex.Lex(file, src); err != nil {
			anyFailed = true
			se, ok := err.(*lex.StaticError)
			if ok {
				fmt.Printf("FAIL %s\n%s\n", file, se.FullMessage())
			} else {
				fmt.Printf("FAIL %s: %s\n", file, err)
			}
			continue
		}

		fmt.Printf("PASS %s\n", file)
	}

	if anyFailed {
		return ExitLexError
	}
	return ExitSuccess
}
