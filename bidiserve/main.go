/*
Command bidiserve exposes the two operations of package bidishape over HTTP.

	POST /v1/reorderReshapeBidiText
	POST /v1/reshapeArabicText
	GET  /v1/operations
	GET  /metrics
	GET  /healthz

Requests carry either a UTF-8 string or a list of UTF-16 code units:

	{ "text": "..." }
	{ "units": [1576, 1576] }

Requests are rate limited per client address. Limiters of idle clients
expire after -limiter-ttl.
*/
package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/gin-gonic/gin"
	"github.com/npillmayer/schuko/schukonf/testconfig"
	"github.com/npillmayer/schuko/tracing"
	"github.com/npillmayer/schuko/tracing/gologadapter"
	"github.com/npillmayer/schuko/tracing/trace2go"
)

// tracer traces with key 'bidishape'
func tracer() tracing.Trace {
	return tracing.Select("bidishape")
}

func main() {
	tracing.RegisterTraceAdapter("go", gologadapter.GetAdapter(), false)
	conf := testconfig.Conf{
		"tracing.adapter":        "go",
		"trace.bidishape":        "Info",
		"trace.bidishape.ubidi":  "Error",
		"trace.bidishape.ushape": "Error",
	}
	if err := trace2go.ConfigureRoot(conf, "trace", trace2go.ReplaceTracers(true)); err != nil {
		fmt.Printf("error configuring tracing")
		os.Exit(1)
	}
	tracing.SetTraceSelector(trace2go.Selector())

	cfg := DefaultConfig()
	flag.StringVar(&cfg.Addr, "addr", cfg.Addr, "listen address")
	flag.Float64Var(&cfg.Rate, "rate", cfg.Rate, "requests per second allowed per client")
	flag.IntVar(&cfg.Burst, "burst", cfg.Burst, "request burst allowed per client")
	flag.IntVar(&cfg.MaxUnits, "max-units", cfg.MaxUnits, "maximum number of code units per request")
	flag.DurationVar(&cfg.LimiterTTL, "limiter-ttl", cfg.LimiterTTL, "idle time after which a client's rate limiter is dropped")
	flag.IntVar(&cfg.MaxClients, "max-clients", cfg.MaxClients, "maximum number of client rate limiters kept")
	flag.StringVar(&cfg.TraceLevel, "trace", cfg.TraceLevel, "Trace level [Debug|Info|Error]")
	flag.Parse()
	if err := cfg.Validate(); err != nil {
		tracer().Errorf(err.Error())
		os.Exit(2)
	}
	cfg.setTraceLevel(tracer())
	gin.SetMode(gin.ReleaseMode)

	srv := NewServer(cfg)
	tracer().Infof("listening on %s", cfg.Addr)
	if err := srv.Run(); err != nil {
		tracer().Errorf(err.Error())
		os.Exit(3)
	}
}
