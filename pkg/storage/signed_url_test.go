package storage

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSignedURLRoundTrip(t *testing.T) {
	signer := NewSignedURLSigner("secret", time.Hour)

	token, expiresAt, err := signer.Generate("job-1", "transcript/job-1.csv")
	require.NoError(t, err)
	assert.True(t, expiresAt.After(time.Now()))

	jobID, relPath, parsedExpiry, err := signer.Parse(token, false)
	require.NoError(t, err)
	assert.Equal(t, "job-1", jobID)
	assert.Equal(t, "transcript/job-1.csv", relPath)
	assert.Equal(t, expiresAt.Unix(), parsedExpiry.Unix())
}

func TestSignedURLRejectsTampering(t *testing.T) {
	signer := NewSignedURLSigner("secret", time.Hour)
	token, _, err := signer.Generate("job-1", "transcript/job-1.csv")
	require.NoError(t, err)

	parts := strings.Split(token, ".")
	require.Len(t, parts, 4)
	parts[0] = "job-2"
	_, _, _, err = signer.Parse(strings.Join(parts, "."), false)
	assert.Error(t, err)

	_, _, _, err = signer.Parse("not-a-token", false)
	assert.Error(t, err)
}

func TestSignedURLRejectsForeignSecret(t *testing.T) {
	token, _, err := NewSignedURLSigner("secret-a", time.Hour).Generate("job-1", "x.csv")
	require.NoError(t, err)

	_, _, _, err = NewSignedURLSigner("secret-b", time.Hour).Parse(token, false)
	assert.Error(t, err)
}

func TestSignedURLExpiry(t *testing.T) {
	signer := NewSignedURLSigner("secret", time.Nanosecond)
	token, _, err := signer.Generate("job-1", "x.csv")
	require.NoError(t, err)

	time.Sleep(10 * time.Millisecond)

	_, _, _, err = signer.Parse(token, false)
	assert.Error(t, err)

	// Cleanup paths still resolve expired tokens.
	jobID, relPath, _, err := signer.Parse(token, true)
	require.NoError(t, err)
	assert.Equal(t, "job-1", jobID)
	assert.Equal(t, "x.csv", relPath)
}

func TestSignedURLRequiresInputs(t *testing.T) {
	signer := NewSignedURLSigner("secret", time.Hour)

	_, _, err := signer.Generate("", "x.csv")
	assert.Error(t, err)

	_, _, err = signer.Generate("job-1", "")
	assert.Error(t, err)

	_, _, err = NewSignedURLSigner("", time.Hour).Generate("job-1", "x.csv")
	assert.Error(t, err)
}
