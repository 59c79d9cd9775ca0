package helparc_test

import (
	"errors"
	"testing"

	"github.com/fwojciec/helparc"
	"github.com/stretchr/testify/assert"
)

func TestErrorf(t *testing.T) {
	t.Parallel()

	err := helparc.Errorf(helparc.ENOTFOUND, "page %d not found", 5290)

	assert.Equal(t, helparc.ENOTFOUND, helparc.ErrorCode(err))
	assert.Equal(t, "page 5290 not found", helparc.ErrorMessage(err))
}

func TestErrorCode_NilError(t *testing.T) {
	t.Parallel()

	assert.Empty(t, helparc.ErrorCode(nil))
}

func TestErrorCode_NonApplicationError(t *testing.T) {
	t.Parallel()

	assert.Equal(t, helparc.EINTERNAL, helparc.ErrorCode(errors.New("boom")))
}

func TestErrorMessage_NilError(t *testing.T) {
	t.Parallel()

	assert.Empty(t, helparc.ErrorMessage(nil))
}
