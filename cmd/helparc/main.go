package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/alecthomas/kong"
	"github.com/lmittmann/tint"

	"github.com/fwojciec/helparc"
	"github.com/fwojciec/helparc/fs"
	"github.com/fwojciec/helparc/goquery"
	archttp "github.com/fwojciec/helparc/http"
	"github.com/fwojciec/helparc/htmltomarkdown"
	"github.com/fwojciec/helparc/readability"
	"github.com/fwojciec/helparc/scrape"
	arcslog "github.com/fwojciec/helparc/slog"
	"github.com/fwojciec/helparc/sqlite"
	"github.com/fwojciec/helparc/trafilatura"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	m := NewMain()

	if err := m.Run(ctx, os.Args[1:], os.Stdout, os.Stderr); err != nil {
		// A user interrupt is not an error: log and exit clean.
		if errors.Is(err, context.Canceled) {
			fmt.Fprintln(os.Stderr, "interrupted, partial results discarded")
			return
		}
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// Main represents the program.
type Main struct {
	// SQLite database, open only when a database path is configured.
	DB *sqlite.DB
}

// NewMain returns a new instance of Main with defaults.
func NewMain() *Main {
	return &Main{}
}

// Close gracefully stops the program.
func (m *Main) Close() error {
	if m.DB != nil {
		return m.DB.Close()
	}
	return nil
}

// Run executes the CLI with the given arguments.
func (m *Main) Run(ctx context.Context, args []string, stdout, stderr io.Writer) error {
	cli := &CLI{}
	parser, err := kong.New(cli,
		kong.Name("helparc"),
		kong.Description("Archive a numbered help-center page range as a single markdown document"),
		kong.Writers(stdout, stderr),
		kong.Exit(func(int) {}),
	)
	if err != nil {
		return fmt.Errorf("failed to create parser: %w", err)
	}

	// Handle help flags
	if len(args) == 1 && (args[0] == "--help" || args[0] == "-h" || args[0] == "help") {
		_, _ = parser.Parse([]string{"--help"})
		return nil
	}

	if _, err := parser.Parse(args); err != nil {
		return err
	}

	logger := newLogger(stderr, cli.Verbose, cli.LogJSON)

	cfg := helparc.DefaultConfig()
	cfg.URLTemplate = cli.URLTemplate
	cfg.Timeout = cli.Timeout
	cfg.Delay = cli.Delay
	cfg.MaxRetries = cli.Retries
	if err := cfg.Validate(); err != nil {
		return err
	}

	fetcher := archttp.NewFetcher(
		archttp.WithTimeout(cfg.Timeout),
		archttp.WithHeaders(cfg.Headers),
		archttp.WithMaxRetries(cfg.MaxRetries),
		archttp.WithLogger(logger),
	)
	defer fetcher.Close()

	var extractor helparc.Extractor
	switch cli.Extractor {
	case "readability":
		extractor = readability.NewExtractor()
	default:
		extractor = trafilatura.NewExtractor()
	}

	scraper := &scrape.Scraper{
		Fetcher:   arcslog.NewLoggingFetcher(fetcher, logger),
		Titles:    goquery.NewTitleExtractor(),
		Extractor: arcslog.NewLoggingExtractor(extractor, logger),
		Converter: htmltomarkdown.NewConverter(),
		Archive:   fs.NewWriter(cli.Output, cli.Stats),
		Config:    cfg,
		Logger:    logger,
	}

	if cli.DB != "" {
		m.DB = sqlite.NewDB(cli.DB)
		if err := m.DB.Open(); err != nil {
			return fmt.Errorf("failed to open database at %q: %w", cli.DB, err)
		}
		defer m.Close()

		scraper.Runs = sqlite.NewRunService(m.DB)
		scraper.Results = sqlite.NewResultService(m.DB)
	}

	progress := func(ev scrape.ProgressEvent) {
		status := "ok"
		if !ev.Success {
			status = ev.Reason
		}
		fmt.Fprintf(stdout, "[%d/%d] %s: %s\n", ev.Completed, ev.Total, ev.URL, status)
	}

	_, summary, err := scraper.Run(ctx, cli.Start, cli.End, progress)
	if err != nil {
		return err
	}

	fmt.Fprintf(stdout, "\nArchive written to %s\n", cli.Output)
	fmt.Fprintf(stdout, "Checked %d pages: %d scraped, %d failed, %d not found (%.1f%% success)\n",
		summary.TotalPagesChecked, summary.SuccessfulScrapes, summary.FailedScrapes,
		summary.NotFound, summary.SuccessRate*100)

	return nil
}

// newLogger builds the CLI logger. Console output uses tint; --log-json
// switches to machine-readable JSON lines.
func newLogger(w io.Writer, verbose, jsonLines bool) *slog.Logger {
	level := slog.LevelWarn
	if verbose {
		level = slog.LevelDebug
	}
	if jsonLines {
		return slog.New(slog.NewJSONHandler(w, &slog.HandlerOptions{Level: level}))
	}
	return slog.New(tint.NewHandler(w, &tint.Options{Level: level}))
}
