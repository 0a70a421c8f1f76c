package main

import (
	"fmt"

	"github.com/fwojciec/clarify"
)

// Run executes the ask command.
func (c *AskCmd) Run(deps *Dependencies) error {
	reply, err := deps.Assistant.Ask(deps.Ctx, c.Question)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", clarify.ErrorMessage(err))
		return err
	}

	fmt.Fprintln(deps.Stdout, reply.Text)
	if reply.Notice != "" {
		fmt.Fprintf(deps.Stdout, "\n%s\n", reply.Notice)
	}
	return nil
}
