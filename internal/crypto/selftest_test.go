package crypto

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// brokenCipher returns envelopes that never round-trip.
type brokenCipher struct {
	encryptErr error
	sameOutput bool
	calls      int
}

func (b *brokenCipher) Encrypt(_ any, _ string) (string, error) {
	if b.encryptErr != nil {
		return "", b.encryptErr
	}
	b.calls++
	if b.sameOutput {
		return "fixed", nil
	}
	return string(rune('a' + b.calls)), nil
}

func (b *brokenCipher) Decrypt(_, _ string, _ any) error {
	return nil
}

func TestRunSelfTest_HealthyEnvironment(t *testing.T) {
	c := newTestCipher(t)
	rnd := NewSecureRandom(SystemProvider())

	for i := 0; i < 3; i++ {
		require.NoError(t, RunSelfTest(c, rnd))
	}
}

func TestRunSelfTest_LegacyVersion(t *testing.T) {
	c := newTestCipher(t, WithVersion(VersionAESGCM))
	assert.NoError(t, RunSelfTest(c, NewSecureRandom(SystemProvider())))
}

func TestRunSelfTest_Failures(t *testing.T) {
	rnd := NewSecureRandom(SystemProvider())

	tests := []struct {
		name   string
		cipher Cipher
	}{
		{name: "encrypt error", cipher: &brokenCipher{encryptErr: errors.New("provider gone")}},
		{name: "deterministic output", cipher: &brokenCipher{sameOutput: true}},
		{name: "decrypt returns zero value", cipher: &brokenCipher{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := RunSelfTest(tt.cipher, rnd)
			assert.ErrorIs(t, err, ErrSelfTestFailed)
		})
	}
}

func TestRunSelfTest_NoEntropy(t *testing.T) {
	rnd := NewSecureRandom(ReaderProvider{R: errReader{}})

	err := RunSelfTest(newTestCipher(t), rnd)
	assert.ErrorIs(t, err, ErrSelfTestFailed)
	assert.ErrorIs(t, err, ErrEnvironmentFailure)
}

type errReader struct{}

func (errReader) Read([]byte) (int, error) { return 0, errors.New("entropy unavailable") }
