package dcql

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseAgeOver_Valid(t *testing.T) {
	nn, err := parseAgeOver("age_over_18")
	require.NoError(t, err)
	assert.Equal(t, 18, nn)

	nn, err = parseAgeOver("age_over_100")
	require.NoError(t, err)
	assert.Equal(t, 100, nn)
}

func TestParseAgeOver_RejectsSingleDigit(t *testing.T) {
	_, err := parseAgeOver("age_over_9")
	require.Error(t, err)
	evalErr, ok := err.(*EvalError)
	require.True(t, ok)
	assert.Equal(t, CodeInvalidAgeOverFormat, evalErr.Code)
}

func TestParseAgeOver_RejectsNonDigitSuffix(t *testing.T) {
	_, err := parseAgeOver("age_over_abc")
	require.Error(t, err)
}

func TestParseAgeOver_RejectsSignedSuffix(t *testing.T) {
	_, err := parseAgeOver("age_over_-18")
	require.Error(t, err)
}

func TestParseAgeOver_RejectsMissingPrefix(t *testing.T) {
	_, err := parseAgeOver("given_name")
	require.Error(t, err)
}

func TestIsAgeOverIdentifier(t *testing.T) {
	assert.True(t, isAgeOverIdentifier("age_over_18"))
	assert.False(t, isAgeOverIdentifier("given_name"))
	// The bare prefix has no digit suffix but still starts with
	// "age_over_", so dispatch must send it into parseAgeOver rather
	// than treat it as an ordinary element identifier.
	assert.True(t, isAgeOverIdentifier("age_over_"))
}

func TestParseAgeOver_RejectsBarePrefix(t *testing.T) {
	_, err := parseAgeOver("age_over_")
	require.Error(t, err)
	evalErr, ok := err.(*EvalError)
	require.True(t, ok)
	assert.Equal(t, CodeInvalidAgeOverFormat, evalErr.Code)
}
