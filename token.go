package pagesum

import "context"

// TokenCounter estimates how many tokens a prompt costs.
type TokenCounter interface {
	CountTokens(ctx context.Context, text string) (int, error)
}
