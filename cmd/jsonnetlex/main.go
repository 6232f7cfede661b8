/*
Jsonnetlex lexes Jsonnet-superset source files and prints their token
streams.

Usage:

	jsonnetlex tokens FILE [flags]
	jsonnetlex repl [flags]
	jsonnetlex check FILE... [flags]

The flags are:

	-v, --version
		Give the current version of jsonnetlex and then exit.

	-c, --config PATH
		Load settings from the given TOML file. Defaults to
		"jsonnetlex.toml" in the current directory; a missing file is not
		an error.

	-e, --encoding NAME
		Source file encoding, as an IANA/WHATWG label such as "utf-8" or
		"windows-1252". Defaults to "utf-8", or to the "encoding" key of
		the loaded config.

	-f, --format FORMAT
		For "tokens": one of "table" (default), "json", or "rezi". "rezi"
		writes github.com/dekarrin/rezi-encoded bytes to stdout, meant to
		be consumed by a downstream parser/pretty-printer, not by a human.

"tokens" lexes a single file and prints its tokens. "repl" lexes one line
of input at a time. "check" lexes one or more files and reports pass/fail
for each, exiting non-zero if any file failed to lex.
*/
package main

import (
	"fmt"
	"os"

	"github.com/spf13/pflag"

	"github.com/johnboiles/jsonnet/internal/config"
	"github.com/johnboiles/jsonnet/internal/version"
)

const (
	ExitSuccess = iota
	ExitLexError
	ExitUsageError
)

var (
	flagVersion  = pflag.BoolP("version", "v", false, "Give the current version of jsonnetlex and then exit.")
	flagConfig   = pflag.StringP("config", "c", config.DefaultPath, "Load settings from the given TOML file.")
	flagEncoding = pflag.StringP("encoding", "e", "", "Source file encoding.")
	flagFormat   = pflag.StringP("format", "f", "table", "Output format for \"tokens\": table, json, or rezi.")
)

func main() {
	pflag.Parse()

	if *flagVersion {
		fmt.Printf("%s\n", version.Current)
		os.Exit(ExitSuccess)
	}

	args := pflag.Args()
	if len(args) < 1 {
		fmt.Fprintf(os.Stderr, "No subcommand given.\nDo -h for help.\n")
		os.Exit(ExitUsageError)
	}

	cfg, err := config.Load(*flagConfig)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Could not load config %q: %s\n", *flagConfig, err)
		os.Exit(ExitUsageError)
	}

	encoding := cfg.Encoding
	if pflag.Lookup("encoding").Changed {
		encoding = *flagEncoding
	}

	var code int
	switch args[0] {
	case "tokens":
		code = runTokens(args[1:], encoding, *flagFormat, cfg.TableWidth)
	case "repl":
		code = runRepl(args[1:], encoding)
	case "check":
		code = runCheck(args[1:], encoding)
	default:
		fmt.Fprintf(os.Stderr, "Unknown subcommand %q.\nDo -h for help.\n", args[0])
		code = ExitUsageError
	}

	os.Exit(code)
}
