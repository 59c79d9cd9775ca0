package slog_test

import (
	"bytes"
	"errors"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fwojciec/helparc"
	"github.com/fwojciec/helparc/mock"
	arcslog "github.com/fwojciec/helparc/slog"
)

func TestLoggingExtractor_Extract(t *testing.T) {
	t.Parallel()

	t.Run("logs extraction with title and duration", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		logger := slog.New(slog.NewTextHandler(&buf, nil))
		inner := &mock.Extractor{
			ExtractFn: func(html string) (*helparc.ExtractResult, error) {
				return &helparc.ExtractResult{Title: "Getting Started", ContentHTML: "<p>body</p>"}, nil
			},
			NameFn: func() string { return "trafilatura" },
		}

		extractor := arcslog.NewLoggingExtractor(inner, logger)
		result, err := extractor.Extract("<html></html>")

		require.NoError(t, err)
		assert.Equal(t, "Getting Started", result.Title)
		output := buf.String()
		assert.Contains(t, output, "extract")
		assert.Contains(t, output, "extractor=trafilatura")
		assert.Contains(t, output, "title=\"Getting Started\"")
		assert.Contains(t, output, "duration=")
	})

	t.Run("logs error on failure", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		logger := slog.New(slog.NewTextHandler(&buf, nil))
		inner := &mock.Extractor{
			ExtractFn: func(html string) (*helparc.ExtractResult, error) {
				return nil, errors.New("no content")
			},
		}

		extractor := arcslog.NewLoggingExtractor(inner, logger)
		_, err := extractor.Extract("<html></html>")

		require.Error(t, err)
		assert.Contains(t, buf.String(), "err=\"no content\"")
	})

	t.Run("name delegates to inner extractor", func(t *testing.T) {
		t.Parallel()

		inner := &mock.Extractor{NameFn: func() string { return "readability" }}
		extractor := arcslog.NewLoggingExtractor(inner, slog.New(slog.DiscardHandler))
		assert.Equal(t, "readability", extractor.Name())
	})
}
