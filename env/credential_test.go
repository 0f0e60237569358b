package env_test

import (
	"context"
	"testing"

	"github.com/fwojciec/pagesum"
	"github.com/fwojciec/pagesum/env"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCredentialStore_Credential(t *testing.T) {
	t.Parallel()

	t.Run("reads dedicated variables", func(t *testing.T) {
		t.Parallel()

		store, err := env.NewCredentialStoreFromMap(map[string]string{
			"GEMINI_API_KEY":    "g",
			"OPENAI_API_KEY":    "o",
			"ANTHROPIC_API_KEY": "a",
			"LLAMA_API_KEY":     "l",
		})
		require.NoError(t, err)

		ctx := context.Background()
		for id, want := range map[pagesum.ProviderID]string{
			pagesum.ProviderGemini: "g",
			pagesum.ProviderGPT4:   "o",
			pagesum.ProviderClaude: "a",
			pagesum.ProviderLlama:  "l",
		} {
			got, err := store.Credential(ctx, id)
			require.NoError(t, err, id)
			assert.Equal(t, want, got, id)
		}
		assert.Equal(t, pagesum.KnownProviders, store.Providers())
	})

	t.Run("reads provider:key pairs", func(t *testing.T) {
		t.Parallel()

		store, err := env.NewCredentialStoreFromMap(map[string]string{
			"PAGESUM_API_KEYS": "claude:c1,gpt-4:o1",
		})
		require.NoError(t, err)

		got, err := store.Credential(context.Background(), pagesum.ProviderClaude)
		require.NoError(t, err)
		assert.Equal(t, "c1", got)

		got, err = store.Credential(context.Background(), pagesum.ProviderGPT4)
		require.NoError(t, err)
		assert.Equal(t, "o1", got)
	})

	t.Run("dedicated variable wins over pairs", func(t *testing.T) {
		t.Parallel()

		store, err := env.NewCredentialStoreFromMap(map[string]string{
			"PAGESUM_API_KEYS": "gemini:from-pairs",
			"GEMINI_API_KEY":   "from-var",
		})
		require.NoError(t, err)

		got, err := store.Credential(context.Background(), pagesum.ProviderGemini)
		require.NoError(t, err)
		assert.Equal(t, "from-var", got)
	})

	t.Run("returns ENOTFOUND for missing or blank credential", func(t *testing.T) {
		t.Parallel()

		store, err := env.NewCredentialStoreFromMap(map[string]string{
			"GEMINI_API_KEY": "   ",
		})
		require.NoError(t, err)

		_, err = store.Credential(context.Background(), pagesum.ProviderGemini)
		assert.Equal(t, pagesum.ENOTFOUND, pagesum.ErrorCode(err))

		_, err = store.Credential(context.Background(), pagesum.ProviderLlama)
		assert.Equal(t, pagesum.ENOTFOUND, pagesum.ErrorCode(err))
		assert.Empty(t, store.Providers())
	})

	t.Run("rejects malformed pairs", func(t *testing.T) {
		t.Parallel()

		_, err := env.NewCredentialStoreFromMap(map[string]string{
			"PAGESUM_API_KEYS": "no-separator",
		})
		require.Error(t, err)
		assert.Equal(t, pagesum.EINVALID, pagesum.ErrorCode(err))
	})
}
