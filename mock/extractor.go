package mock

import "github.com/fwojciec/helparc"

var _ helparc.Extractor = (*Extractor)(nil)

// Extractor is a mock implementation of helparc.Extractor.
type Extractor struct {
	ExtractFn func(html string) (*helparc.ExtractResult, error)
	NameFn    func() string
}

func (e *Extractor) Extract(html string) (*helparc.ExtractResult, error) {
	return e.ExtractFn(html)
}

func (e *Extractor) Name() string {
	if e.NameFn == nil {
		return "mock"
	}
	return e.NameFn()
}

var _ helparc.TitleExtractor = (*TitleExtractor)(nil)

// TitleExtractor is a mock implementation of helparc.TitleExtractor.
type TitleExtractor struct {
	ExtractTitleFn func(html string) string
}

func (e *TitleExtractor) ExtractTitle(html string) string {
	return e.ExtractTitleFn(html)
}
