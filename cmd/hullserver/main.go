// Command hullserver serves the convex hull API over HTTP.
//
// Configuration comes from flags or the environment:
//
//	hullserver --port 5001 --debug     # or PORT=5001 DEBUG=true hullserver
package main

import (
	"fmt"
	"net/http"
	"os"

	"github.com/npillmayer/schuko/tracing"
	"github.com/npillmayer/schuko/tracing/gologadapter"
	kingpin "gopkg.in/alecthomas/kingpin.v2"

	"github.com/npillmayer/hull/api"
)

var (
	port  = kingpin.Flag("port", "HTTP listen port").Short('p').Envar("PORT").Default("5001").Int()
	debug = kingpin.Flag("debug", "Enable debug-level tracing").Envar("DEBUG").Bool()
)

func main() {
	kingpin.Parse()
	initTracing(*debug)

	addr := fmt.Sprintf(":%d", *port)
	tracing.Select("hull.api").Infof("starting convex hull API on %s", addr)
	if err := http.ListenAndServe(addr, api.NewHandler()); err != nil {
		tracing.Select("hull.api").Errorf("server stopped: %v", err)
		os.Exit(1)
	}
}

// initTracing routes all trace output through the Go standard logger.
func initTracing(debug bool) {
	tracing.RegisterTraceAdapter("go", gologadapter.GetAdapter(), true)
	level := tracing.LevelInfo
	if debug {
		level = tracing.LevelDebug
	}
	for _, key := range []string{"hull", "hull.api"} {
		tracing.Select(key).SetTraceLevel(level)
	}
}
