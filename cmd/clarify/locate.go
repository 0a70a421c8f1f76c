package main

import (
	"fmt"

	"github.com/fwojciec/clarify"
)

// Run executes the locate command.
func (c *LocateCmd) Run(deps *Dependencies) error {
	m, err := deps.Locator.Locate(deps.Ctx, c.Query)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", clarify.ErrorMessage(err))
		return err
	}

	vp, err := deps.Page.Viewport(deps.Ctx)
	if err != nil {
		return fmt.Errorf("reading viewport: %w", err)
	}

	fmt.Fprintf(deps.Stdout, "Found %q in <%s> (%s match on %q)\n", m.Span, m.Node.Tag, m.Strategy, m.Term)
	fmt.Fprintf(deps.Stdout, "Scrolled to y=%.0f\n", vp.ScrollY)

	if c.HTML {
		html, err := deps.Page.HTML(deps.Ctx)
		if err != nil {
			return fmt.Errorf("rendering page: %w", err)
		}
		fmt.Fprintln(deps.Stdout, html)
	}
	return nil
}
