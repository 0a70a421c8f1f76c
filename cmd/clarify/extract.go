package main

import (
	"fmt"
	"strings"

	"github.com/fwojciec/clarify"
	"github.com/fwojciec/clarify/goldmark"
)

// Run executes the extract command.
func (c *ExtractCmd) Run(deps *Dependencies) error {
	p, err := deps.Pages.ReadPage(deps.Ctx)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", clarify.ErrorMessage(err))
		return err
	}
	if p.Truncated {
		fmt.Fprintf(deps.Stderr, "warning: content truncated to %d characters\n", c.MaxChars)
	}

	if deps.Writer != nil {
		path, err := deps.Writer.WritePage(deps.Ctx, p)
		if err != nil {
			fmt.Fprintf(deps.Stderr, "error: %s\n", clarify.ErrorMessage(err))
			return err
		}
		fmt.Fprintf(deps.Stdout, "Saved %s\n", path)
		return nil
	}

	if c.Outline {
		headings := goldmark.Outline(p.Content)
		if len(headings) == 0 {
			fmt.Fprintln(deps.Stdout, "No headings found.")
			return nil
		}
		for _, h := range headings {
			fmt.Fprintf(deps.Stdout, "%s%s\n", strings.Repeat("  ", h.Level-1), h.Title)
		}
		return nil
	}

	if p.Title != "" {
		fmt.Fprintf(deps.Stdout, "# %s\n\n", p.Title)
	}
	fmt.Fprintln(deps.Stdout, p.Content)
	return nil
}
