package helparc_test

import (
	"testing"

	"github.com/fwojciec/helparc"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConfig_Validate(t *testing.T) {
	t.Parallel()

	t.Run("defaults are valid", func(t *testing.T) {
		t.Parallel()

		require.NoError(t, helparc.DefaultConfig().Validate())
	})

	t.Run("requires URL template", func(t *testing.T) {
		t.Parallel()

		cfg := helparc.DefaultConfig()
		cfg.URLTemplate = ""

		err := cfg.Validate()
		require.Error(t, err)
		assert.Equal(t, helparc.EINVALID, helparc.ErrorCode(err))
	})

	t.Run("requires exactly one id slot", func(t *testing.T) {
		t.Parallel()

		cfg := helparc.DefaultConfig()
		cfg.URLTemplate = "https://example.com/pages"

		err := cfg.Validate()
		require.Error(t, err)
		assert.Equal(t, helparc.EINVALID, helparc.ErrorCode(err))

		cfg.URLTemplate = "https://example.com/%d/%d"
		require.Error(t, cfg.Validate())
	})

	t.Run("rejects non-positive retry budget", func(t *testing.T) {
		t.Parallel()

		cfg := helparc.DefaultConfig()
		cfg.MaxRetries = 0

		require.Error(t, cfg.Validate())
	})
}

func TestConfig_PageURL(t *testing.T) {
	t.Parallel()

	cfg := helparc.DefaultConfig()
	cfg.URLTemplate = "https://example.com/help/%d"

	assert.Equal(t, "https://example.com/help/42", cfg.PageURL(42))
}
