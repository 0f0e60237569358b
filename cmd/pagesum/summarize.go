package main

import (
	"bufio"
	"strings"

	"github.com/fwojciec/pagesum/summarize"
)

// Run executes the summarize command.
func (c *SummarizeCmd) Run(deps *Dependencies) error {
	result := deps.Orchestrator.Run(deps.Ctx, c.URL, deps.Config)
	if err := deps.Renderer.Render(result); err != nil {
		return err
	}
	if !result.OK() {
		return &renderedError{err: result.Err}
	}
	return nil
}

// Run executes the interactive command. Each line of input is a URL to
// summarize; blank lines are ignored.
func (c *InteractiveCmd) Run(deps *Dependencies) error {
	runner := summarize.NewRunner(deps.Orchestrator, deps.Renderer, summarize.WithLogger(deps.Logger))
	defer runner.Wait()

	lines := make(chan string)
	scanErr := make(chan error, 1)
	go func() {
		defer close(lines)
		scanner := bufio.NewScanner(deps.Stdin)
		for scanner.Scan() {
			select {
			case lines <- scanner.Text():
			case <-deps.Ctx.Done():
				return
			}
		}
		scanErr <- scanner.Err()
	}()

	for {
		select {
		case <-deps.Ctx.Done():
			runner.Cancel()
			return nil
		case line, ok := <-lines:
			if !ok {
				select {
				case err := <-scanErr:
					return err
				default:
					return nil
				}
			}
			if target := strings.TrimSpace(line); target != "" {
				runner.Trigger(deps.Ctx, target, deps.Config)
			}
		}
	}
}
