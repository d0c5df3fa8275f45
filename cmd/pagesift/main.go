package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/alecthomas/kong"
	siftgin "github.com/pagesift/pagesift/gin"
	"github.com/pagesift/pagesift/goquery"
	sifthttp "github.com/pagesift/pagesift/http"
	"github.com/pagesift/pagesift/rod"
	"github.com/pagesift/pagesift/scrape"
	siftslog "github.com/pagesift/pagesift/slog"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	m := NewMain()
	if err := m.Run(ctx, os.Args[1:], os.Stdout, os.Stderr); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// Main represents the program.
type Main struct{}

// NewMain returns a new instance of Main with defaults.
func NewMain() *Main {
	return &Main{}
}

// Run executes the CLI with the given arguments.
func (m *Main) Run(ctx context.Context, args []string, stdout, stderr io.Writer) error {
	deps := &Dependencies{
		Ctx:    ctx,
		Stdout: stdout,
		Stderr: stderr,
	}

	cli := &CLI{}
	parser, err := kong.New(cli,
		kong.Name("pagesift"),
		kong.Description("Scrape web pages into categorized content items."),
		kong.Writers(stdout, stderr),
		kong.Exit(func(int) {}), // Don't exit on help
		kong.Bind(deps),
	)
	if err != nil {
		return fmt.Errorf("failed to create parser: %w", err)
	}

	kongCtx, err := parser.Parse(args)
	if err != nil {
		return err
	}

	return kongCtx.Run(deps)
}

// Run starts the API server and blocks until the context is canceled.
func (cmd *ServeCmd) Run(deps *Dependencies) error {
	logger := slog.New(slog.NewTextHandler(deps.Stderr, &slog.HandlerOptions{
		Level: parseLogLevel(cmd.LogLevel),
	}))

	limiter := sifthttp.NewHostLimiter(cmd.HostRPS)
	static := siftslog.NewLoggingFetcher(
		sifthttp.NewFetcher(
			sifthttp.WithTimeout(cmd.FetchTimeout),
			sifthttp.WithLimiter(limiter),
		),
		logger,
	)
	defer static.Close()

	opts := []scrape.Option{
		scrape.WithJobExtractor(goquery.NewJobBoardExtractor()),
		scrape.WithSearchExtractor(goquery.NewSearchResultExtractor()),
		scrape.WithSummaryExtractor(goquery.NewSummaryExtractor()),
		scrape.WithLogger(logger),
	}

	if !cmd.NoBrowser {
		renderer, err := rod.NewFetcher(
			rod.WithRenderTimeout(cmd.RenderTimeout),
			rod.WithMaxSessions(cmd.MaxSessions),
		)
		if err != nil {
			// Dynamic routes fall back to the static path rather than
			// making the whole server unusable.
			logger.Warn("browser unavailable, dynamic sites will use plain HTTP", "err", err)
		} else {
			dynamic := siftslog.NewLoggingFetcher(renderer, logger)
			defer dynamic.Close()
			opts = append(opts, scrape.WithDynamicFetcher(dynamic))
		}
	}

	service := siftslog.NewLoggingService(
		scrape.NewService(static, goquery.NewExtractor(), opts...),
		logger,
	)

	srv := &http.Server{
		Addr:    cmd.Addr,
		Handler: siftgin.NewServer(siftgin.NewHandler(service), logger),
	}

	errCh := make(chan error, 1)
	go func() {
		logger.Info("listening", "addr", cmd.Addr)
		errCh <- srv.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	case <-deps.Ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	return srv.Shutdown(shutdownCtx)
}

// parseLogLevel maps the CLI enum onto slog levels.
func parseLogLevel(level string) slog.Level {
	switch level {
	case "debug":
		return slog.LevelDebug
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}
