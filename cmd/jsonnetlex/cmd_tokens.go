package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/dekarrin/rezi"
	"github.com/dekarrin/rosed"

	"github.com/johnboiles/jsonnet/internal/srcload"
	"github.com/johnboiles/jsonnet/lex"
)

func runTokens(args []string, encoding, format string, tableWidth int) int {
	if len(args) != 1 {
		fmt.Fprintf(os.Stderr, "tokens requires exactly one FILE argument.\n")
		return ExitUsageError
	}
	file := args[0]

	src, err := srcload.Read(file, encoding)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Could not read %q: %s\n", file, err)
		return ExitUsageError
	}

	tokens, err := lex.Lex(file, src)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return ExitLexError
	}

	switch format {
	case "table":
		fmt.Println(renderTokenTable(tokens, tableWidth))
	case "json":
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		if err := enc.Encode(jsonTokens(tokens)); err != nil {
			fmt.Fprintf(os.Stderr, "Could not encode tokens as JSON: %s\n", err)
			return ExitUsageError
		}
	case "rezi":
		os.Stdout.Write(rezi.EncSliceBinary(jsonTokens(tokens)))
	default:
		fmt.Fprintf(os.Stderr, "Unknown --format %q; must be table, json, or rezi.\n", format)
		return ExitUsageError
	}

	return ExitSuccess
}

// tokenJSON is the data-bearing shape of lex.Token serialized for the
// "json" and "rezi" output formats; lex.Token itself carries no JSON tags
// since its own package has no business knowing about this CLI's wire
// format.
type tokenJSON struct {
	Kind     string `json:"kind"`
	Data     string `json:"data,omitempty"`
	Filename string `json:"filename"`
	Begin    [2]int `json:"begin"`
	End      [2]int `json:"end"`
}

// MarshalBinary implements encoding.BinaryMarshaler by reusing tokenJSON's
// existing JSON encoding, so each token in the "rezi" output carries the
// same JSON object the "json" format writes, inside rezi's own framing.
func (t tokenJSON) MarshalBinary() ([]byte, error) {
	return json.Marshal(t)
}

func jsonTokens(tokens []lex.Token) []tokenJSON {
	out := make([]tokenJSON, len(tokens))
	for i, t := range tokens {
		out[i] = tokenJSON{
			Kind:     t.Kind.String(),
			Data:     t.Data,
			Filename: t.Range.Filename,
			Begin:    [2]int{t.Range.Begin.Line, t.Range.Begin.Column},
			End:      [2]int{t.Range.End.Line, t.Range.End.Column},
		}
	}
	return out
}

func renderTokenTable(tokens []lex.Token, width int) string {
	data := [][]string{{"KIND", "DATA", "BEGIN", "END"}}
	for _, t := range tokens {
		data = append(data, []string{
			t.Kind.String(),
			t.Data,
			t.Range.Begin.String(),
			t.Range.End.String(),
		})
	}

	tableOpts := rosed.Options{
		TableHeaders:             true,
		NoTrailingLineSeparators: true,
	}

	return rosed.Edit("").InsertTableOpts(0, data, width, tableOpts).String()
}
