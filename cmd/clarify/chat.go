package main

import (
	"bufio"
	"fmt"
	"strings"

	"github.com/fwojciec/clarify"
)

// Run executes the chat command. Each line of input is one question about
// the same page; a failed question is reported and the session continues.
func (c *ChatCmd) Run(deps *Dependencies) error {
	scanner := bufio.NewScanner(deps.Stdin)
	fmt.Fprint(deps.Stdout, "> ")
	for scanner.Scan() {
		question := strings.TrimSpace(scanner.Text())
		switch question {
		case "":
		case "exit", "quit":
			return nil
		default:
			reply, err := deps.Assistant.Ask(deps.Ctx, question)
			if err != nil {
				fmt.Fprintf(deps.Stderr, "error: %s\n", clarify.ErrorMessage(err))
			} else {
				fmt.Fprintln(deps.Stdout, reply.Text)
				if reply.Notice != "" {
					fmt.Fprintf(deps.Stdout, "\n%s\n", reply.Notice)
				}
			}
		}
		if err := deps.Ctx.Err(); err != nil {
			return err
		}
		fmt.Fprint(deps.Stdout, "> ")
	}
	if err := scanner.Err(); err != nil {
		return fmt.Errorf("reading questions: %w", err)
	}
	fmt.Fprintln(deps.Stdout)
	return nil
}
