//go:build js && wasm

// Command wasm is the browser client. It renders into #app and follows
// window.location.hash for the life of the page.
package main

import (
	"fmt"
	"os"

	"go.uber.org/zap"

	"github.com/soulcreations/site/client"
	"github.com/soulcreations/site/content"
	"github.com/soulcreations/site/logging"
	"github.com/soulcreations/site/route"
)

func main() {
	log, err := logging.New("info", logging.FormatConsole)
	if err != nil {
		fmt.Fprintf(os.Stderr, "logger: %v\n", err)
		os.Exit(1)
	}
	defer log.Sync() //nolint:errcheck

	mount, err := client.NewDOMMount("app")
	if err != nil {
		log.Fatal("mount", zap.Error(err))
	}

	app := client.New(
		content.Default(),
		route.NewResolver(client.NewHashPort()),
		mount,
		client.WithLogger(log),
		client.WithPreferred(content.MatchLocale(client.NavigatorLanguages()...)),
	)
	client.Bind(app, mount)
	app.Start()

	log.Info("client started", zap.String("route", app.Current().Path()))
	select {}
}
