package utils

import (
	"testing"
	"time"

	"pagecraft/config"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setTestSecrets(t *testing.T) {
	t.Helper()
	prev := config.AppConfig
	config.AppConfig.JWTSecret = "test-jwt-secret"
	config.AppConfig.PreviewSecret = "test-preview-secret"
	t.Cleanup(func() { config.AppConfig = prev })
}

func TestEditorTokenRoundTrip(t *testing.T) {
	setTestSecrets(t)

	token, err := GenerateEditorToken("editor-42", time.Minute)
	require.NoError(t, err)

	subject, err := ExtractIDFromToken(token)
	require.NoError(t, err)
	assert.Equal(t, "editor-42", subject)
}

func TestExpiredEditorTokenRejected(t *testing.T) {
	setTestSecrets(t)

	token, err := GenerateEditorToken("editor-42", -time.Minute)
	require.NoError(t, err)

	_, err = ExtractIDFromToken(token)
	assert.Error(t, err)
}

func TestTamperedTokenRejected(t *testing.T) {
	setTestSecrets(t)

	token, err := GenerateEditorToken("editor-42", time.Minute)
	require.NoError(t, err)

	_, err = ExtractIDFromToken(token + "x")
	assert.Error(t, err)
}

func TestPreviewTokenScopedToTarget(t *testing.T) {
	setTestSecrets(t)

	token, err := GeneratePreviewToken("page-1", time.Minute)
	require.NoError(t, err)

	assert.True(t, ValidatePreviewToken(token, "page-1"))
	assert.False(t, ValidatePreviewToken(token, "page-2"))
	assert.False(t, ValidatePreviewToken("garbage", "page-1"))
}

func TestPreviewTokenIsNotAnEditorToken(t *testing.T) {
	setTestSecrets(t)

	token, err := GeneratePreviewToken("page-1", time.Minute)
	require.NoError(t, err)

	// Signed with a different secret, so the editor path rejects it.
	_, err = ExtractIDFromToken(token)
	assert.Error(t, err)
}
