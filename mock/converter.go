package mock

import "github.com/fwojciec/helparc"

var _ helparc.Converter = (*Converter)(nil)

// Converter is a mock implementation of helparc.Converter.
type Converter struct {
	ConvertFn func(html string) (string, error)
}

func (c *Converter) Convert(html string) (string, error) {
	return c.ConvertFn(html)
}
