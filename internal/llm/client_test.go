package llm

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewGeminiClient_MissingAPIKey(t *testing.T) {
	_, err := NewGeminiClient(context.Background(), DefaultConfig(), "")
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "API key is required")
}

func TestConfigGetModel_FallbackChain(t *testing.T) {
	cfg := &Config{Models: map[ModelTier]string{
		TierLite:     "lite-model",
		TierStandard: "standard-model",
	}}

	assert.Equal(t, "lite-model", cfg.GetModel(TierLite))
	assert.Equal(t, "standard-model", cfg.GetModel(TierStandard))
	// Unconfigured tier falls back to standard
	assert.Equal(t, "standard-model", cfg.GetModel(TierAdvanced))

	liteOnly := &Config{Models: map[ModelTier]string{TierLite: "lite-model"}}
	assert.Equal(t, "lite-model", liteOnly.GetModel(TierAdvanced))

	empty := &Config{}
	assert.Equal(t, "", empty.GetModel(TierStandard))
}

func TestClassify_RateLimit(t *testing.T) {
	err := classify("generate", errors.New("googleapi: Error 429: quota exceeded"))

	var typed *Error
	require.ErrorAs(t, err, &typed)
	assert.Equal(t, KindRateLimit, typed.Kind)
	assert.Equal(t, "generate", typed.Op)
}

func TestClassify_DefaultsToUnavailable(t *testing.T) {
	err := classify("generate", errors.New("connection refused"))

	var typed *Error
	require.ErrorAs(t, err, &typed)
	assert.Equal(t, KindUnavailable, typed.Kind)
}

func TestClassify_PreservesTypedErrors(t *testing.T) {
	original := &Error{Op: "generate", Kind: KindTimeout}
	err := classify("generate", original)

	var typed *Error
	require.ErrorAs(t, err, &typed)
	assert.Equal(t, KindTimeout, typed.Kind)
}

func TestClassify_NilPassthrough(t *testing.T) {
	assert.NoError(t, classify("generate", nil))
}

func TestError_Unwrap(t *testing.T) {
	cause := errors.New("underlying")
	err := &Error{Op: "generate", Kind: KindUnavailable, Cause: cause}

	assert.ErrorIs(t, err, cause)
	assert.Contains(t, err.Error(), "unavailable")
}
