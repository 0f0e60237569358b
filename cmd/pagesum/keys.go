package main

import (
	"fmt"
	"strings"
	"time"

	"github.com/fwojciec/pagesum"
)

// Run executes the keys set command.
func (c *KeysSetCmd) Run(deps *Dependencies) error {
	id := pagesum.ProviderID(strings.ToLower(strings.TrimSpace(c.Provider)))
	if _, ok := deps.Providers.Lookup(id); !ok {
		fmt.Fprintf(deps.Stderr, "Warning: %q is not a known provider\n", c.Provider)
	}

	cred := &pagesum.Credential{Provider: id, Secret: strings.TrimSpace(c.Key)}
	if err := deps.Keys.SetCredential(deps.Ctx, cred); err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", pagesum.ErrorMessage(err))
		return err
	}

	fmt.Fprintf(deps.Stdout, "Saved API key for %s.\n", id.Label())
	return nil
}

// Run executes the keys delete command.
func (c *KeysDeleteCmd) Run(deps *Dependencies) error {
	id := pagesum.ProviderID(strings.ToLower(strings.TrimSpace(c.Provider)))
	if err := deps.Keys.DeleteCredential(deps.Ctx, id); err != nil {
		if pagesum.ErrorCode(err) == pagesum.ENOTFOUND {
			fmt.Fprintf(deps.Stderr, "No API key stored for %s.\n", id.Label())
		} else {
			fmt.Fprintf(deps.Stderr, "error: %s\n", pagesum.ErrorMessage(err))
		}
		return err
	}

	fmt.Fprintf(deps.Stdout, "Deleted API key for %s.\n", id.Label())
	return nil
}

// Run executes the keys list command.
func (c *KeysListCmd) Run(deps *Dependencies) error {
	creds, err := deps.Keys.FindCredentials(deps.Ctx)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", pagesum.ErrorMessage(err))
		return err
	}

	if len(creds) == 0 {
		fmt.Fprintln(deps.Stdout, "No API keys stored. Use 'pagesum keys set <provider> <key>' to add one.")
		return nil
	}

	for _, cred := range creds {
		fmt.Fprintf(deps.Stdout, "%-8s %s  %s\n", cred.Provider, maskSecret(cred.Secret), cred.UpdatedAt.Format(time.DateTime))
	}
	return nil
}

// maskSecret hides all but the last four characters of long secrets.
func maskSecret(secret string) string {
	r := []rune(secret)
	if len(r) <= 8 {
		return "****"
	}
	return "****" + string(r[len(r)-4:])
}
