// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package crypto

import (
	"encoding/base64"
	"encoding/json"
	"errors"
	"fmt"
	"math"
	"strings"
	"testing"
	"testing/iotest"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type testRecord struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Value int    `json:"value"`
}

func newTestCipher(t *testing.T, opts ...Option) *VaultCipher {
	t.Helper()
	c, err := NewVaultCipher(SystemProvider(), opts...)
	require.NoError(t, err)
	return c
}

// flipChar replaces the character at i with a different character of the
// envelope alphabet.
func flipChar(s string, i int) string {
	b := []byte(s)
	if b[i] == 'A' {
		b[i] = 'B'
	} else {
		b[i] = 'A'
	}
	return string(b)
}

func TestVaultCipher_RoundTrip_ConcreteScenario(t *testing.T) {
	c := newTestCipher(t)
	in := testRecord{ID: "123", Name: "Test", Value: 42}

	enc, err := c.Encrypt(in, "SecurePassword123!")
	require.NoError(t, err)
	require.NotEmpty(t, enc)
	assert.NotContains(t, enc, "Test")

	got, err := DecryptAs[testRecord](c, enc, "SecurePassword123!")
	require.NoError(t, err)
	assert.Equal(t, in, got)

	_, err = DecryptAs[testRecord](c, enc, "wrong-password")
	assert.ErrorIs(t, err, ErrDecryptionFailed)
}

func TestVaultCipher_RoundTrip_ComplexStructure(t *testing.T) {
	c := newTestCipher(t)

	in := map[string]any{
		"user":      map[string]any{"name": "John", "age": 30},
		"items":     []any{1, 2, 3, 4, 5},
		"nested":    map[string]any{"deep": map[string]any{"value": "test"}},
		"timestamp": time.Date(2026, 10, 19, 8, 30, 0, 0, time.UTC).Format(time.RFC3339),
		"flag":      false,
		"nothing":   nil,
	}

	enc, err := c.Encrypt(in, "TestPass123!")
	require.NoError(t, err)

	var out map[string]any
	require.NoError(t, c.Decrypt(enc, "TestPass123!", &out))

	// Compare canonical JSON: numbers come back as json.Number.
	wantJSON, err := json.Marshal(in)
	require.NoError(t, err)
	gotJSON, err := json.Marshal(out)
	require.NoError(t, err)
	assert.JSONEq(t, string(wantJSON), string(gotJSON))
	assert.Equal(t, json.Number("30"), out["user"].(map[string]any)["age"])
}

func TestVaultCipher_RoundTrip_LargeIntegerKeepsPrecision(t *testing.T) {
	c := newTestCipher(t)

	enc, err := c.Encrypt(map[string]any{"id": int64(9007199254740993)}, "TestPass123!")
	require.NoError(t, err)

	var out map[string]any
	require.NoError(t, c.Decrypt(enc, "TestPass123!", &out))
	assert.Equal(t, json.Number("9007199254740993"), out["id"])
}

func TestVaultCipher_RoundTrip_AllVersions(t *testing.T) {
	for _, v := range []Version{VersionAESGCM, VersionXChaCha} {
		t.Run(fmt.Sprintf("v%d", v), func(t *testing.T) {
			c := newTestCipher(t, WithVersion(v))
			require.Equal(t, v, c.Version())

			enc, err := c.Encrypt([]string{"Learn React", "Build AI app"}, "OldPass123!")
			require.NoError(t, err)

			env, err := DecodeEnvelope(enc)
			require.NoError(t, err)
			assert.Equal(t, v, env.Version)

			got, err := DecryptAs[[]string](c, enc, "OldPass123!")
			require.NoError(t, err)
			assert.Equal(t, []string{"Learn React", "Build AI app"}, got)
		})
	}
}

func TestVaultCipher_OldVersionStillDecryptable(t *testing.T) {
	old := newTestCipher(t, WithVersion(VersionAESGCM))
	current := newTestCipher(t)

	enc, err := old.Encrypt(testRecord{ID: "1"}, "TestPass123!")
	require.NoError(t, err)

	got, err := DecryptAs[testRecord](current, enc, "TestPass123!")
	require.NoError(t, err)
	assert.Equal(t, "1", got.ID)
}

func TestVaultCipher_SemanticSecurity(t *testing.T) {
	c := newTestCipher(t)
	in := testRecord{ID: "123", Name: "Test", Value: 42}

	a, err := c.Encrypt(in, "TestPass123!")
	require.NoError(t, err)
	b, err := c.Encrypt(in, "TestPass123!")
	require.NoError(t, err)
	assert.NotEqual(t, a, b)

	ea, err := DecodeEnvelope(a)
	require.NoError(t, err)
	eb, err := DecodeEnvelope(b)
	require.NoError(t, err)
	assert.NotEqual(t, ea.Salt, eb.Salt)
	assert.NotEqual(t, ea.Nonce, eb.Nonce)
}

func TestVaultCipher_TamperDetection(t *testing.T) {
	// version 1 and a two byte payload keep the exhaustive loop short
	c := newTestCipher(t, WithVersion(VersionAESGCM))
	enc, err := c.Encrypt(42, "TestPass123!")
	require.NoError(t, err)

	// First character lying wholly after the version, salt and nonce.
	header := (8*(1+saltLen+12) + 5) / 6
	require.Greater(t, len(enc), header)

	for i := header; i < len(enc); i++ {
		tampered := flipChar(enc, i)

		out := -1
		err := c.Decrypt(tampered, "TestPass123!", &out)
		require.Error(t, err, "index %d", i)
		assert.Equal(t, -1, out, "index %d", i)
	}
}

func TestVaultCipher_TamperedVersionByteFails(t *testing.T) {
	c := newTestCipher(t, WithVersion(VersionAESGCM))
	enc, err := c.Encrypt(strings.Repeat("p", 100), "TestPass123!")
	require.NoError(t, err)

	raw, err := base64.RawURLEncoding.DecodeString(enc)
	require.NoError(t, err)
	raw[0] = byte(VersionXChaCha)
	relabelled := base64.RawURLEncoding.EncodeToString(raw)

	var out string
	err = c.Decrypt(relabelled, "TestPass123!", &out)
	assert.ErrorIs(t, err, ErrDecryptionFailed)
	assert.Empty(t, out)
}

func TestVaultCipher_WrongPasswordLeavesTargetUntouched(t *testing.T) {
	c := newTestCipher(t)
	enc, err := c.Encrypt(map[string]string{"secret": "data"}, "correct-password")
	require.NoError(t, err)

	out := map[string]string{"keep": "me"}
	err = c.Decrypt(enc, "wrong-password", &out)
	require.ErrorIs(t, err, ErrDecryptionFailed)
	assert.Equal(t, map[string]string{"keep": "me"}, out)
}

func TestVaultCipher_MalformedInput(t *testing.T) {
	c := newTestCipher(t)

	var out any
	err := c.Decrypt("corrupted-base64-data!", "TestPass123!", &out)
	assert.ErrorIs(t, err, ErrMalformedEnvelope)
	assert.ErrorIs(t, err, ErrInvalidEncoding)
	assert.False(t, errors.Is(err, ErrDecryptionFailed))
}

func TestVaultCipher_EmptyPassword(t *testing.T) {
	c := newTestCipher(t)

	_, err := c.Encrypt("x", "")
	assert.ErrorIs(t, err, ErrEmptyPassword)

	var out any
	assert.ErrorIs(t, c.Decrypt("AQ", "", &out), ErrEmptyPassword)
}

func TestVaultCipher_UnsupportedPayload(t *testing.T) {
	c := newTestCipher(t)

	_, err := c.Encrypt(map[string]float64{"v": math.NaN()}, "TestPass123!")
	assert.ErrorIs(t, err, ErrUnsupportedPayload)

	_, err = c.Encrypt(make(chan int), "TestPass123!")
	assert.ErrorIs(t, err, ErrUnsupportedPayload)
}

func TestNewVaultCipher_BrokenEntropy(t *testing.T) {
	_, err := NewVaultCipher(ReaderProvider{R: iotest.ErrReader(errors.New("no entropy"))})
	assert.ErrorIs(t, err, ErrEnvironmentFailure)

	_, err = NewVaultCipher(nil)
	assert.ErrorIs(t, err, ErrEnvironmentFailure)
}

func TestNewVaultCipher_UnknownVersion(t *testing.T) {
	_, err := NewVaultCipher(SystemProvider(), WithVersion(Version(9)))
	assert.ErrorIs(t, err, ErrUnknownVersion)
}

func TestVaultCipher_EnvelopeIsURLSafe(t *testing.T) {
	c := newTestCipher(t)
	enc, err := c.Encrypt(strings.Repeat("z", 300), "TestPass123!")
	require.NoError(t, err)
	assert.NotContains(t, enc, "+")
	assert.NotContains(t, enc, "/")
	assert.NotContains(t, enc, "=")
}
