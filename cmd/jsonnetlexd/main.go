/*
Jsonnetlexd starts an HTTP server exposing package lex over the network.

Usage:

	jsonnetlexd [flags]
	jsonnetlexd [flags] -l [[ADDRESS]:PORT]

Once started, jsonnetlexd listens for HTTP requests and responds to them
using a small REST protocol: POST /v1/login and /v1/tokens to obtain a
bearer token for the single configured operator account, POST /v1/lex to
lex a submitted source file, and GET /v1/history/{id} to fetch a record of
a prior call. By default it listens on localhost:8080.

If a JWT token secret is not given, one is generated at startup. As a
consequence all tokens become invalid as soon as the server shuts down;
this is fine for testing but a real secret must be configured for
production use.

The flags are:

	-v, --version
		Give the current version of jsonnetlexd and then exit.

	-c, --config PATH
		Load settings from the given TOML file. Defaults to
		"jsonnetlex.toml".

	-l, --listen LISTEN_ADDRESS
		Listen on the given address. Overrides the config file's
		server.listen, and also the JSONNETLEXD_LISTEN_ADDRESS
		environment variable.

	-s, --secret TOKEN_SECRET
		Use the provided secret for signing JWT tokens. Overrides the
		config file's server.secret and the JSONNETLEXD_TOKEN_SECRET
		environment variable.
*/
package main

import (
	"crypto/rand"
	"fmt"
	"log"
	"net/http"
	"os"
	"time"

	"github.com/spf13/pflag"

	"github.com/johnboiles/jsonnet/internal/config"
	"github.com/johnboiles/jsonnet/internal/history"
	"github.com/johnboiles/jsonnet/internal/lexservice"
	"github.com/johnboiles/jsonnet/internal/version"
)

const (
	EnvListen = "JSONNETLEXD_LISTEN_ADDRESS"
	EnvSecret = "JSONNETLEXD_TOKEN_SECRET"
)

var (
	flagVersion = pflag.BoolP("version", "v", false, "Give the current version of jsonnetlexd and then exit.")
	flagConfig  = pflag.StringP("config", "c", config.DefaultPath, "Load settings from the given TOML file.")
	flagListen  = pflag.StringP("listen", "l", "", "Listen on the given address.")
	flagSecret  = pflag.StringP("secret", "s", "", "Use the given secret for signing JWT tokens.")
)

func main() {
	pflag.Parse()

	if *flagVersion {
		fmt.Printf("%s\n", version.Current)
		return
	}

	cfg, err := config.Load(*flagConfig)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Could not load config %q: %s\n", *flagConfig, err)
		os.Exit(1)
	}

	listen := cfg.Server.Listen
	if envListen := os.Getenv(EnvListen); envListen != "" {
		listen = envListen
	}
	if pflag.Lookup("listen").Changed {
		listen = *flagListen
	}

	secretStr := cfg.Server.Secret
	if envSecret := os.Getenv(EnvSecret); envSecret != "" {
		secretStr = envSecret
	}
	if pflag.Lookup("secret").Changed {
		secretStr = *flagSecret
	}

	var secret []byte
	if secretStr != "" {
		secret = []byte(secretStr)
	} else {
		secret = make([]byte, 64)
		if _, err := rand.Read(secret); err != nil {
			fmt.Fprintf(os.Stderr, "Could not generate token secret: %s\n", err)
			os.Exit(1)
		}
		log.Printf("WARN  Using generated token secret; all tokens issued will become invalid at shutdown")
	}

	passwordHash := cfg.Server.OperatorPasswordHash
	if passwordHash == "" {
		fmt.Fprintf(os.Stderr, "server.operator_password_hash is not set in %q; cannot start without an operator credential.\n", *flagConfig)
		os.Exit(1)
	}

	var hist *history.Store
	if cfg.Server.HistoryDB != "" {
		hist, err = history.Open(cfg.Server.HistoryDB)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Could not open history database %q: %s\n", cfg.Server.HistoryDB, err)
			os.Exit(1)
		}
		defer hist.Close()
	}

	svc := lexservice.New(secret, passwordHash, hist)
	router := lexservice.Router(svc, time.Second)

	log.Printf("INFO  Starting jsonnetlexd %s on %s...", version.Current, listen)
	if err := http.ListenAndServe(listen, router); err != nil {
		log.Fatalf("FATAL server exited: %s", err)
	}
}
