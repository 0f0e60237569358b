// Package summarize runs the summarize action: it resolves a credential,
// opens the target page, extracts its text through the content-side
// message protocol and asks a provider for a summary.
package summarize

import (
	"context"
	"errors"
	"strings"

	"github.com/fwojciec/pagesum"
)

// Config is the user's choice for one action.
type Config struct {
	Provider pagesum.ProviderID
	Style    pagesum.SummaryStyle
	Language string
}

// DefaultLanguage is used when Config.Language is blank.
const DefaultLanguage = "English"

// Stage is a step of the summarize action.
type Stage int

const (
	StageIdle Stage = iota
	StageCredentialResolved
	StageTabResolved
	StageScriptInjected
	StageTextExtracted
	StageRequestSent
	StageSucceeded
	StageFailed
)

var stageNames = [...]string{
	StageIdle:               "idle",
	StageCredentialResolved: "credential resolved",
	StageTabResolved:        "tab resolved",
	StageScriptInjected:     "script injected",
	StageTextExtracted:      "text extracted",
	StageRequestSent:        "request sent",
	StageSucceeded:          "succeeded",
	StageFailed:             "failed",
}

func (s Stage) String() string {
	if s < 0 || int(s) >= len(stageNames) {
		return "unknown"
	}
	return stageNames[s]
}

// ProgressFunc is called each time the action advances a stage.
type ProgressFunc func(stage Stage)

// Orchestrator coordinates one summarize action end to end.
//
// When Providers is set, an unknown provider fails before the page is
// opened.
type Orchestrator struct {
	Providers   pagesum.ProviderRegistry
	Credentials pagesum.CredentialStore
	Tabs        pagesum.TabSource
	Summarizer  pagesum.Summarizer
	Progress    ProgressFunc
}

// Run performs the action against target. Every failure is returned inside
// the Result; Run never returns an error of its own.
func (o *Orchestrator) Run(ctx context.Context, target string, cfg Config) pagesum.Result {
	summary, err := o.run(ctx, target, cfg)
	if err != nil {
		o.report(StageFailed)
		return pagesum.Result{Err: err}
	}
	o.report(StageSucceeded)
	return pagesum.Result{Summary: summary}
}

// Extract runs the action up to text extraction and returns the page text.
func (o *Orchestrator) Extract(ctx context.Context, target string) (string, error) {
	tab, err := o.openTab(ctx, target)
	if err != nil {
		return "", err
	}
	defer tab.Close()

	return o.extract(ctx, tab)
}

func (o *Orchestrator) run(ctx context.Context, target string, cfg Config) (string, error) {
	o.report(StageIdle)

	if cfg.Provider == "" {
		return "", pagesum.Errorf(pagesum.EINVALID, "provider required")
	}

	credential, err := o.credential(ctx, cfg.Provider)
	if err != nil {
		return "", err
	}
	o.report(StageCredentialResolved)

	if o.Providers != nil {
		if _, ok := o.Providers.Lookup(cfg.Provider); !ok {
			return "", pagesum.Errorf(pagesum.EINVALID, "unknown provider %q", cfg.Provider)
		}
	}

	tab, err := o.openTab(ctx, target)
	if err != nil {
		return "", err
	}
	defer tab.Close()

	text, err := o.extract(ctx, tab)
	if err != nil {
		return "", err
	}

	language := strings.TrimSpace(cfg.Language)
	if language == "" {
		language = DefaultLanguage
	}

	o.report(StageRequestSent)
	return o.Summarizer.Summarize(ctx, &pagesum.SummaryRequest{
		Provider:   cfg.Provider,
		Text:       text,
		Style:      cfg.Style,
		Language:   language,
		Credential: credential,
	})
}

// credential resolves the provider credential. A missing credential is a
// configuration error that names the provider and how to set it.
func (o *Orchestrator) credential(ctx context.Context, provider pagesum.ProviderID) (string, error) {
	secret, err := o.Credentials.Credential(ctx, provider)
	if pagesum.ErrorCode(err) == pagesum.ENOTFOUND || (err == nil && secret == "") {
		return "", MissingCredentialError(provider)
	} else if err != nil {
		return "", err
	}
	return secret, nil
}

func (o *Orchestrator) openTab(ctx context.Context, target string) (pagesum.Tab, error) {
	tab, err := o.Tabs.ActiveTab(ctx, target)
	if err != nil {
		if isCancel(err) || pagesum.ErrorCode(err) == pagesum.ENOTARGET {
			return nil, err
		}
		return nil, pagesum.Errorf(pagesum.ENOTARGET, "No active tab found.")
	}
	if tab == nil {
		return nil, pagesum.Errorf(pagesum.ENOTARGET, "No active tab found.")
	}
	o.report(StageTabResolved)
	return tab, nil
}

func (o *Orchestrator) extract(ctx context.Context, tab pagesum.Tab) (string, error) {
	if err := tab.Inject(ctx); err != nil {
		if isCancel(err) {
			return "", err
		}
		return "", pagesum.Errorf(pagesum.EINJECTION, "This page doesn't allow content scripts. Try a different site.")
	}
	o.report(StageScriptInjected)

	resp, err := tab.Send(ctx, pagesum.Message{Type: pagesum.MessageGetArticleText})
	if isCancel(err) {
		return "", err
	}
	text, textErr := resp.TextOrError()
	if err != nil || textErr != nil {
		return "", pagesum.Errorf(pagesum.EEXTRACTION, "Could not extract article text.")
	}
	o.report(StageTextExtracted)
	return text, nil
}

func (o *Orchestrator) report(stage Stage) {
	if o.Progress != nil {
		o.Progress(stage)
	}
}

// MissingCredentialError is the error for a provider with no stored
// credential.
func MissingCredentialError(provider pagesum.ProviderID) error {
	return pagesum.Errorf(pagesum.ECONFIG,
		"API key for %s not found. Set it with 'pagesum keys set %s <key>' or %s.",
		provider.Label(), provider, credentialEnvVar(provider))
}

// credentialEnvVar names the environment variable read for provider.
func credentialEnvVar(provider pagesum.ProviderID) string {
	switch provider {
	case pagesum.ProviderGemini:
		return "GEMINI_API_KEY"
	case pagesum.ProviderGPT4:
		return "OPENAI_API_KEY"
	case pagesum.ProviderClaude:
		return "ANTHROPIC_API_KEY"
	case pagesum.ProviderLlama:
		return "LLAMA_API_KEY"
	default:
		return "PAGESUM_API_KEYS"
	}
}

func isCancel(err error) bool {
	return errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded)
}
