package main

import (
	"context"
	"io"
	"time"
)

// Dependencies holds configuration and IO for command execution.
type Dependencies struct {
	Ctx    context.Context
	Stdout io.Writer
	Stderr io.Writer
}

// CLI defines the command-line interface structure for Kong.
type CLI struct {
	Serve ServeCmd `cmd:"" default:"1" help:"Start the scrape API server"`
}

// ServeCmd is the "serve" subcommand.
type ServeCmd struct {
	Addr          string        `default:":5000" env:"PAGESIFT_ADDR" help:"Listen address"`
	FetchTimeout  time.Duration `default:"10s" env:"PAGESIFT_FETCH_TIMEOUT" help:"HTTP fetch timeout"`
	RenderTimeout time.Duration `default:"15s" env:"PAGESIFT_RENDER_TIMEOUT" help:"Browser render ceiling"`
	MaxSessions   int64         `default:"4" env:"PAGESIFT_MAX_SESSIONS" help:"Concurrent browser session limit"`
	HostRPS       float64       `default:"2" env:"PAGESIFT_HOST_RPS" help:"Per-host fetch rate limit"`
	NoBrowser     bool          `env:"PAGESIFT_NO_BROWSER" help:"Disable the headless browser path"`
	LogLevel      string        `default:"info" enum:"debug,info,warn,error" env:"PAGESIFT_LOG_LEVEL" help:"Log level"`
}
