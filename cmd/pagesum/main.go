package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"path/filepath"
	"strings"

	"github.com/alecthomas/kong"
	"github.com/fwojciec/pagesum"
	"github.com/fwojciec/pagesum/env"
	"github.com/fwojciec/pagesum/gemini"
	"github.com/fwojciec/pagesum/goquery"
	pagesumhttp "github.com/fwojciec/pagesum/http"
	"github.com/fwojciec/pagesum/readability"
	"github.com/fwojciec/pagesum/rod"
	pagesumslog "github.com/fwojciec/pagesum/slog"
	"github.com/fwojciec/pagesum/sqlite"
	"github.com/fwojciec/pagesum/summarize"
	"github.com/fwojciec/pagesum/trafilatura"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	m := NewMain()

	if err := m.Run(ctx, os.Args[1:], os.Stdout, os.Stderr); err != nil {
		var rendered *renderedError
		if !errors.As(err, &rendered) {
			fmt.Fprintln(os.Stderr, err)
		}
		stop()
		os.Exit(1)
	}
}

// Main represents the program.
type Main struct {
	// Database path. Set before calling Run(); --db and PAGESUM_DB win.
	DBPath string

	// Input read by the interactive command.
	Stdin io.Reader

	// Environment used for provider credentials. Nil reads the process
	// environment.
	Env map[string]string

	// Provider registry. Nil uses the public provider APIs.
	Registry pagesum.ProviderRegistry

	// SQLite database used by SQLite service implementations.
	DB *sqlite.DB
}

// NewMain returns a new instance of Main with defaults.
func NewMain() *Main {
	return &Main{
		DBPath: defaultDBPath(),
		Stdin:  os.Stdin,
	}
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
	deps := &Dependencies{
		Ctx:    ctx,
		Stdout: stdout,
		Stderr: stderr,
		Stdin:  m.Stdin,
	}

	cli := &CLI{}
	parser, err := kong.New(cli,
		kong.Name("pagesum"),
		kong.Description("Summarize the readable text of a web page with a language model."),
		kong.Writers(stdout, stderr),
		kong.Exit(func(int) {}), // Don't exit on help
		kong.Bind(deps),
	)
	if err != nil {
		return fmt.Errorf("failed to create parser: %w", err)
	}

	if len(args) == 0 {
		_, _ = parser.Parse([]string{"--help"})
		return fmt.Errorf("no command specified. Run 'pagesum --help' to see available commands")
	}

	if cmd := args[0]; cmd == "help" || cmd == "--help" || cmd == "-h" {
		_, _ = parser.Parse([]string{"--help"})
		return nil
	}

	kongCtx, err := parser.Parse(args)
	if err != nil {
		return err
	}
	cmd := strings.Fields(kongCtx.Command())[0]

	deps.Logger = newLogger(stderr, cli.Verbose)
	deps.Config = summarize.Config{
		Provider: pagesum.ProviderID(strings.ToLower(strings.TrimSpace(cli.Provider))),
		Style:    pagesum.ParseSummaryStyle(cli.Style),
		Language: cli.Language,
	}
	deps.Renderer = newRenderer(cli.Format, stdout, stderr)

	deps.Providers = m.Registry
	if deps.Providers == nil {
		deps.Providers = pagesumhttp.NewDefaultRegistry()
	}

	// Credentials are needed by everything except page-only commands.
	if cmd != "extract" && cmd != "preview" {
		if cli.DB != "" {
			m.DBPath = cli.DB
		}
		if err := os.MkdirAll(filepath.Dir(m.DBPath), 0o700); err != nil {
			return fmt.Errorf("failed to create database directory: %w", err)
		}
		m.DB = sqlite.NewDB(m.DBPath)
		if err := m.DB.Open(); err != nil {
			fmt.Fprintf(stderr, "Hint: Set PAGESUM_DB to use a different database path\n")
			return fmt.Errorf("failed to open database at %q: %w", m.DBPath, err)
		}
		defer m.Close()

		envStore, err := m.envCredentials()
		if err != nil {
			return err
		}

		deps.Keys = sqlite.NewCredentialService(m.DB)
		deps.Credentials = pagesumslog.NewLoggingCredentialStore(
			pagesum.CredentialStores{envStore, deps.Keys},
			deps.Logger,
		)
	}

	if cmd == "summarize" || cmd == "interactive" || cmd == "extract" || cmd == "preview" {
		extractor := pagesumslog.NewLoggingTextExtractor(newExtractor(cli.Extractor), deps.Logger)

		var tabs pagesum.TabSource
		if cli.Browser {
			var opts []rod.Option
			if cli.ChromeBin != "" {
				opts = append(opts, rod.WithBin(cli.ChromeBin))
			}
			browser, err := rod.NewBrowser(extractor, opts...)
			if err != nil {
				fmt.Fprintln(stderr, "Hint: Chrome or Chromium must be installed")
				return fmt.Errorf("failed to start browser: %w", err)
			}
			defer browser.Close()
			tabs = browser
		} else {
			fetcher := pagesumslog.NewLoggingFetcher(pagesumhttp.NewFetcher(), deps.Logger)
			defer fetcher.Close()
			tabs = pagesumhttp.NewTabSource(fetcher, extractor)
		}

		deps.Orchestrator = &summarize.Orchestrator{
			Providers:   deps.Providers,
			Credentials: deps.Credentials,
			Tabs:        pagesumslog.NewLoggingTabSource(tabs, deps.Logger),
			Summarizer: pagesumslog.NewLoggingSummarizer(
				pagesumhttp.NewSummarizer(deps.Providers),
				deps.Logger,
			),
			Progress: func(stage summarize.Stage) {
				deps.Logger.Debug("stage", "stage", stage.String())
			},
		}
	}

	if cmd == "preview" {
		tokens, err := gemini.NewTokenCounter(gemini.DefaultTokenizerModel)
		if err != nil {
			deps.Logger.Warn("token counter unavailable", "err", err)
		} else {
			deps.Tokens = tokens
		}
	}

	return kongCtx.Run(deps)
}

func (m *Main) envCredentials() (*env.CredentialStore, error) {
	if m.Env != nil {
		return env.NewCredentialStoreFromMap(m.Env)
	}
	return env.NewCredentialStore()
}

func newLogger(stderr io.Writer, verbose bool) *slog.Logger {
	if !verbose {
		return slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	return slog.New(slog.NewTextHandler(stderr, &slog.HandlerOptions{Level: slog.LevelDebug}))
}

func newExtractor(name string) pagesum.TextExtractor {
	switch name {
	case "readability":
		return readability.NewExtractor()
	case "trafilatura":
		return trafilatura.NewExtractor()
	default:
		return goquery.NewTextExtractor()
	}
}

func defaultDBPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return "pagesum.db"
	}
	return filepath.Join(home, ".pagesum", "pagesum.db")
}
