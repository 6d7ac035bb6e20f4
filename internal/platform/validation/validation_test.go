package validation_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	apperrors "bloom/internal/platform/errors"
	"bloom/internal/platform/validation"
)

type scoreInput struct {
	Score int    `validate:"gte=1,lte=5"`
	Mode  string `validate:"omitempty,oneof=short long"`
}

func TestStructWrapsInvalidInput(t *testing.T) {
	t.Parallel()
	require.NoError(t, validation.Struct(scoreInput{Score: 3}))

	err := validation.Struct(scoreInput{Score: 9, Mode: "huge"})
	require.ErrorIs(t, err, apperrors.ErrInvalidInput)
	assert.Contains(t, err.Error(), "score must satisfy lte=5")
	assert.Contains(t, err.Error(), "mode must satisfy oneof=short long")
}
