package main

import (
	"context"
	"io"
	"log/slog"

	"github.com/fwojciec/pagesum"
	"github.com/fwojciec/pagesum/summarize"
)

// Dependencies holds all services and configuration for command execution.
type Dependencies struct {
	Ctx    context.Context
	Stdout io.Writer
	Stderr io.Writer
	Stdin  io.Reader
	Logger *slog.Logger

	Config       summarize.Config
	Renderer     pagesum.Renderer
	Orchestrator *summarize.Orchestrator
	Providers    pagesum.ProviderRegistry
	Credentials  pagesum.CredentialStore
	Keys         pagesum.CredentialService
	Tokens       pagesum.TokenCounter
}

// CLI defines the command-line interface structure for Kong.
type CLI struct {
	Provider  string `short:"p" default:"gemini" env:"PAGESUM_PROVIDER" help:"Provider to summarize with (gemini, gpt-4, claude, llama)"`
	Style     string `short:"s" default:"brief" env:"PAGESUM_STYLE" enum:"brief,detailed,bullets,default" help:"Summary style (brief, detailed, bullets, default)"`
	Language  string `short:"l" default:"English" env:"PAGESUM_LANGUAGE" help:"Language of the summary"`
	DB        string `name:"db" env:"PAGESUM_DB" help:"Credential database path (default ~/.pagesum/pagesum.db)"`
	Browser   bool   `short:"b" help:"Render pages in headless Chrome"`
	ChromeBin string `name:"chrome-bin" env:"PAGESUM_CHROME_BIN" help:"Chrome executable used with --browser (default: found or downloaded by rod)"`
	Extractor string `default:"heuristic" enum:"heuristic,readability,trafilatura" help:"Text extractor (heuristic, readability, trafilatura)"`
	Format    string `default:"text" enum:"text,html" help:"Output format (text, html)"`
	Verbose   bool   `short:"v" help:"Log each step to stderr"`

	Summarize   SummarizeCmd   `cmd:"" help:"Summarize a page"`
	Interactive InteractiveCmd `cmd:"" help:"Summarize each URL read from stdin; a new URL cancels the one in flight"`
	Extract     ExtractCmd     `cmd:"" help:"Print the text that would be summarized"`
	Preview     PreviewCmd     `cmd:"" help:"Print the prompt that would be sent and its size"`
	Providers   ProvidersCmd   `cmd:"" help:"List available providers"`
	Keys        KeysCmd        `cmd:"" help:"Manage provider API keys"`
}

// SummarizeCmd is the "summarize" subcommand.
type SummarizeCmd struct {
	URL string `arg:"" help:"Page URL"`
}

// InteractiveCmd is the "interactive" subcommand.
type InteractiveCmd struct{}

// ExtractCmd is the "extract" subcommand.
type ExtractCmd struct {
	URL string `arg:"" help:"Page URL"`
}

// PreviewCmd is the "preview" subcommand.
type PreviewCmd struct {
	URL string `arg:"" help:"Page URL"`
}

// ProvidersCmd is the "providers" subcommand.
type ProvidersCmd struct{}

// KeysCmd groups the key management subcommands.
type KeysCmd struct {
	Set    KeysSetCmd    `cmd:"" help:"Store the API key for a provider"`
	Delete KeysDeleteCmd `cmd:"" help:"Remove the stored API key for a provider"`
	List   KeysListCmd   `cmd:"" help:"List stored API keys"`
}

// KeysSetCmd is the "keys set" subcommand.
type KeysSetCmd struct {
	Provider string `arg:"" help:"Provider ID"`
	Key      string `arg:"" help:"API key"`
}

// KeysDeleteCmd is the "keys delete" subcommand.
type KeysDeleteCmd struct {
	Provider string `arg:"" help:"Provider ID"`
}

// KeysListCmd is the "keys list" subcommand.
type KeysListCmd struct{}
