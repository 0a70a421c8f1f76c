package mock

import "github.com/fwojciec/clarify"

var _ clarify.Converter = (*Converter)(nil)

// Converter is a mock implementation of clarify.Converter.
type Converter struct {
	ConvertFn func(html string) (string, error)
}

func (c *Converter) Convert(html string) (string, error) {
	return c.ConvertFn(html)
}
