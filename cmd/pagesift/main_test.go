package main

import (
	"log/slog"
	"testing"
	"time"

	"github.com/alecthomas/kong"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func parse(t *testing.T, args ...string) *CLI {
	t.Helper()
	cli := &CLI{}
	parser, err := kong.New(cli, kong.Exit(func(int) {}))
	require.NoError(t, err)
	_, err = parser.Parse(args)
	require.NoError(t, err)
	return cli
}

func TestCLI_Defaults(t *testing.T) {
	cli := parse(t, "serve")

	assert.Equal(t, ":5000", cli.Serve.Addr)
	assert.Equal(t, 10*time.Second, cli.Serve.FetchTimeout)
	assert.Equal(t, 15*time.Second, cli.Serve.RenderTimeout)
	assert.Equal(t, int64(4), cli.Serve.MaxSessions)
	assert.Equal(t, 2.0, cli.Serve.HostRPS)
	assert.False(t, cli.Serve.NoBrowser)
	assert.Equal(t, "info", cli.Serve.LogLevel)
}

func TestCLI_Flags(t *testing.T) {
	cli := parse(t, "serve",
		"--addr", ":8080",
		"--fetch-timeout", "3s",
		"--no-browser",
		"--log-level", "debug",
	)

	assert.Equal(t, ":8080", cli.Serve.Addr)
	assert.Equal(t, 3*time.Second, cli.Serve.FetchTimeout)
	assert.True(t, cli.Serve.NoBrowser)
	assert.Equal(t, "debug", cli.Serve.LogLevel)
}

func TestCLI_RejectsUnknownLogLevel(t *testing.T) {
	cli := &CLI{}
	parser, err := kong.New(cli, kong.Exit(func(int) {}))
	require.NoError(t, err)

	_, err = parser.Parse([]string{"serve", "--log-level", "loud"})
	assert.Error(t, err)
}

func TestParseLogLevel(t *testing.T) {
	assert.Equal(t, slog.LevelDebug, parseLogLevel("debug"))
	assert.Equal(t, slog.LevelInfo, parseLogLevel("info"))
	assert.Equal(t, slog.LevelWarn, parseLogLevel("warn"))
	assert.Equal(t, slog.LevelError, parseLogLevel("error"))
	assert.Equal(t, slog.LevelInfo, parseLogLevel("unknown"))
}
