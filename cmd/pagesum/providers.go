package main

import (
	"fmt"

	"github.com/fwojciec/pagesum"
)

// Run executes the providers command.
func (c *ProvidersCmd) Run(deps *Dependencies) error {
	for _, id := range deps.Providers.List() {
		marker := " "
		if id == deps.Config.Provider {
			marker = "*"
		}

		status := "no key"
		secret, err := deps.Credentials.Credential(deps.Ctx, id)
		switch {
		case err == nil && secret != "":
			status = "key set"
		case err != nil && pagesum.ErrorCode(err) != pagesum.ENOTFOUND:
			fmt.Fprintf(deps.Stderr, "error: %s\n", pagesum.ErrorMessage(err))
			return err
		}

		fmt.Fprintf(deps.Stdout, "%s %-8s %s\n", marker, id, status)
	}
	return nil
}
