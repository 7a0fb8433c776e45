package client

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTermPasswordReader_FromEnvironment(t *testing.T) {
	t.Setenv(EnvPassword, "OldPass123!")
	t.Setenv(EnvNewPassword, "NewPass456!")

	var prompt bytes.Buffer
	r := TermPasswordReader{Prompt: &prompt}

	pw, err := r.ReadPassword("password")
	require.NoError(t, err)
	assert.Equal(t, "OldPass123!", pw)

	pw, err = r.ReadPassword("new password")
	require.NoError(t, err)
	assert.Equal(t, "NewPass456!", pw)

	assert.Empty(t, prompt.String(), "no prompt when the environment provides the secret")
}
