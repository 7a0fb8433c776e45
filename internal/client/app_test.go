package client

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/jonboulle/clockwork"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/MKhiriev/go-life-vault/internal/config"
	"github.com/MKhiriev/go-life-vault/internal/crypto"
	"github.com/MKhiriev/go-life-vault/internal/logger"
	"github.com/MKhiriev/go-life-vault/internal/mock"
	"github.com/MKhiriev/go-life-vault/internal/service"
	"github.com/MKhiriev/go-life-vault/internal/store"
	"github.com/MKhiriev/go-life-vault/internal/workers"
	"github.com/MKhiriev/go-life-vault/models"
)

// ── fakes ─────────────────────────────────────────────────────────────────────

type staticPasswords map[string]string

func (p staticPasswords) ReadPassword(name string) (string, error) {
	v, ok := p[name]
	if !ok {
		return "", ErrNoPassword
	}
	return v, nil
}

type memClipboard struct{ text string }

func (c *memClipboard) WriteAll(text string) error {
	c.text = text
	return nil
}

// ── helpers ───────────────────────────────────────────────────────────────────

type mockEnv struct {
	vault  *mock.MockVaultService
	tokens *mock.MockTokenService
	out    *bytes.Buffer
	clip   *memClipboard
	app    *App
}

func newMockEnv(t *testing.T, stdin string, pw staticPasswords) *mockEnv {
	t.Helper()
	ctrl := gomock.NewController(t)
	e := &mockEnv{
		vault:  mock.NewMockVaultService(ctrl),
		tokens: mock.NewMockTokenService(ctrl),
		out:    &bytes.Buffer{},
		clip:   &memClipboard{},
	}
	e.app = NewApp(
		&service.Services{VaultService: e.vault, TokenService: e.tokens},
		logger.Nop(),
		WithIO(strings.NewReader(stdin), e.out),
		WithPasswordReader(pw),
		WithClipboard(e.clip),
	)
	return e
}

// newRealApp wires the CLI to real services on a memory backend.
func newRealApp(t *testing.T, stdin string, pw staticPasswords) (*App, *bytes.Buffer) {
	t.Helper()
	ctx := context.Background()

	rnd := crypto.NewSecureRandom(crypto.SystemProvider())
	c, err := crypto.NewVaultCipher(crypto.SystemProvider(), crypto.WithVersion(crypto.VersionAESGCM))
	require.NoError(t, err)
	pool, gate := workers.NewDerivationPool(1), workers.NewGate()
	storages, err := store.NewStorages(ctx, config.Storage{Backend: store.BackendMemory}, c, pool, gate, logger.Nop())
	require.NoError(t, err)
	t.Cleanup(func() { _ = storages.Close() })

	out := &bytes.Buffer{}
	app := NewApp(service.NewServices(c, rnd, storages, pool, gate, config.Crypto{}, logger.Nop()), logger.Nop(),
		WithIO(strings.NewReader(stdin), out), WithPasswordReader(pw))
	return app, out
}

// ── dispatch ──────────────────────────────────────────────────────────────────

func TestRun_Usage(t *testing.T) {
	e := newMockEnv(t, "", nil)

	assert.ErrorIs(t, e.app.Run(context.Background(), nil), ErrUsage)
	assert.ErrorIs(t, e.app.Run(context.Background(), []string{"explode"}), ErrUnknownCommand)
	assert.ErrorIs(t, e.app.Run(context.Background(), []string{"tokens"}), ErrUsage)
	assert.ErrorIs(t, e.app.Run(context.Background(), []string{"tokens", "get", "google"}), ErrUsage)
	assert.ErrorIs(t, e.app.Run(context.Background(), []string{"tokens", "wipe"}), ErrUnknownCommand)
}

func TestRun_GateRunsSelfTestOnce(t *testing.T) {
	e := newMockEnv(t, "", nil)
	gomock.InOrder(
		e.vault.EXPECT().Ready().Return(false),
		e.vault.EXPECT().TestEncryption(gomock.Any()).Return(models.SelfTestResult{Success: true}),
		e.vault.EXPECT().GenerateSecurePassword(gomock.Any(), 16).Return("Abcdefgh1!Abcdef", nil),
	)

	require.NoError(t, e.app.Run(context.Background(), []string{"genpass"}))
	assert.Equal(t, "Abcdefgh1!Abcdef\n", e.out.String())
}

func TestRun_GateFailureBlocksCrypto(t *testing.T) {
	e := newMockEnv(t, "{}", staticPasswords{"password": "pw"})
	e.vault.EXPECT().Ready().Return(false)
	e.vault.EXPECT().TestEncryption(gomock.Any()).Return(models.SelfTestResult{Error: "entropy source unavailable"})

	err := e.app.Run(context.Background(), []string{"encrypt"})
	assert.ErrorIs(t, err, service.ErrCryptoUnavailable)
	assert.Empty(t, e.out.String())
}

// ── selftest ──────────────────────────────────────────────────────────────────

func TestSelfTest(t *testing.T) {
	e := newMockEnv(t, "", nil)
	gomock.InOrder(
		e.vault.EXPECT().TestEncryption(gomock.Any()).Return(models.SelfTestResult{Success: true}),
		e.vault.EXPECT().TestEncryption(gomock.Any()).Return(models.SelfTestResult{Error: "boom"}),
	)

	require.NoError(t, e.app.Run(context.Background(), []string{"selftest"}))
	assert.JSONEq(t, `{"success":true}`, e.out.String())

	e.out.Reset()
	assert.ErrorIs(t, e.app.Run(context.Background(), []string{"selftest"}), service.ErrCryptoUnavailable)
	assert.JSONEq(t, `{"success":false,"error":"boom"}`, e.out.String())
}

// ── genpass ───────────────────────────────────────────────────────────────────

func TestGenpass(t *testing.T) {
	t.Run("length flag", func(t *testing.T) {
		e := newMockEnv(t, "", nil)
		e.vault.EXPECT().Ready().Return(true)
		e.vault.EXPECT().GenerateSecurePassword(gomock.Any(), 32).Return(strings.Repeat("a", 32), nil)

		require.NoError(t, e.app.Run(context.Background(), []string{"genpass", "-length", "32"}))
		assert.Equal(t, strings.Repeat("a", 32)+"\n", e.out.String())
	})

	t.Run("copy to clipboard", func(t *testing.T) {
		e := newMockEnv(t, "", nil)
		e.vault.EXPECT().Ready().Return(true)
		e.vault.EXPECT().GenerateSecurePassword(gomock.Any(), 16).Return("Secret1!Secret1!", nil)

		require.NoError(t, e.app.Run(context.Background(), []string{"genpass", "-copy"}))
		assert.Empty(t, e.out.String())
		assert.Equal(t, "Secret1!Secret1!", e.clip.text)
	})

	t.Run("bad flag", func(t *testing.T) {
		e := newMockEnv(t, "", nil)
		e.vault.EXPECT().Ready().Return(true)

		assert.ErrorIs(t, e.app.Run(context.Background(), []string{"genpass", "-length", "x"}), ErrUsage)
	})

	t.Run("below minimum", func(t *testing.T) {
		e := newMockEnv(t, "", nil)
		e.vault.EXPECT().Ready().Return(true)
		e.vault.EXPECT().GenerateSecurePassword(gomock.Any(), 4).Return("", crypto.ErrPasswordTooShort)

		assert.ErrorIs(t, e.app.Run(context.Background(), []string{"genpass", "-length", "4"}), crypto.ErrPasswordTooShort)
	})
}

// ── validate ──────────────────────────────────────────────────────────────────

func TestValidate(t *testing.T) {
	policy := crypto.DefaultPasswordPolicy()

	t.Run("valid", func(t *testing.T) {
		e := newMockEnv(t, "", staticPasswords{"password": "StrongPass123!"})
		e.vault.EXPECT().ValidatePassword("StrongPass123!").Return(policy.Validate("StrongPass123!"))

		require.NoError(t, e.app.Run(context.Background(), []string{"validate"}))
		assert.Equal(t, "ok\n", e.out.String())
	})

	t.Run("violations listed", func(t *testing.T) {
		e := newMockEnv(t, "", staticPasswords{"password": "NoNumbers!"})
		e.vault.EXPECT().ValidatePassword("NoNumbers!").Return(policy.Validate("NoNumbers!"))

		assert.ErrorIs(t, e.app.Run(context.Background(), []string{"validate"}), ErrPasswordRejected)
		assert.Equal(t, "- Password must contain a number\n", e.out.String())
	})

	t.Run("no password", func(t *testing.T) {
		e := newMockEnv(t, "", staticPasswords{})
		assert.ErrorIs(t, e.app.Run(context.Background(), []string{"validate"}), ErrNoPassword)
	})
}

// ── encrypt / decrypt / rekey ─────────────────────────────────────────────────

func TestEncrypt_RejectsNonJSON(t *testing.T) {
	e := newMockEnv(t, "not json", staticPasswords{"password": "pw"})
	e.vault.EXPECT().Ready().Return(true)

	assert.ErrorIs(t, e.app.Run(context.Background(), []string{"encrypt"}), ErrUsage)
}

func TestEncryptDecrypt_ConcreteScenario(t *testing.T) {
	ctx := context.Background()

	enc, encOut := newRealApp(t, `{"id":"123","name":"Test","value":42}`, staticPasswords{"password": "SecurePassword123!"})
	require.NoError(t, enc.Run(ctx, []string{"encrypt"}))
	envelope := strings.TrimSpace(encOut.String())
	require.NotEmpty(t, envelope)

	dec, decOut := newRealApp(t, envelope+"\n", staticPasswords{"password": "SecurePassword123!"})
	require.NoError(t, dec.Run(ctx, []string{"decrypt"}))
	assert.JSONEq(t, `{"id":"123","name":"Test","value":42}`, decOut.String())

	wrong, wrongOut := newRealApp(t, envelope, staticPasswords{"password": "wrong-password"})
	err := wrong.Run(ctx, []string{"decrypt"})
	require.ErrorIs(t, err, ErrDecryptFailed)
	assert.Contains(t, err.Error(), "incorrect password or corrupted data")
	assert.Empty(t, wrongOut.String())
}

func TestRekey(t *testing.T) {
	ctx := context.Background()

	enc, encOut := newRealApp(t, `["Learn React","Build AI app"]`, staticPasswords{"password": "OldPass123!"})
	require.NoError(t, enc.Run(ctx, []string{"encrypt"}))

	rk, rkOut := newRealApp(t, encOut.String(), staticPasswords{"password": "OldPass123!", "new password": "NewPass456!"})
	require.NoError(t, rk.Run(ctx, []string{"rekey"}))

	dec, decOut := newRealApp(t, rkOut.String(), staticPasswords{"password": "NewPass456!"})
	require.NoError(t, dec.Run(ctx, []string{"decrypt"}))
	assert.JSONEq(t, `["Learn React","Build AI app"]`, decOut.String())

	bad, _ := newRealApp(t, encOut.String(), staticPasswords{"password": "nope", "new password": "NewPass456!"})
	assert.ErrorIs(t, bad.Run(ctx, []string{"rekey"}), ErrDecryptFailed)
}

// ── tokens ────────────────────────────────────────────────────────────────────

func TestTokensList_OmitsSecretsAndReportsExpiry(t *testing.T) {
	storedAt := time.Date(2026, 10, 19, 8, 0, 0, 0, time.UTC)
	clock := clockwork.NewFakeClockAt(storedAt.Add(2 * time.Hour))

	e := newMockEnv(t, "", nil)
	WithClock(clock)(e.app)
	e.tokens.EXPECT().ListTokens(gomock.Any(), "google").Return([]models.CredentialRecord{
		{AccountID: "gmail", Provider: "google", AccessToken: "ya29.SECRET", RefreshToken: "1//SECRET", ExpiresIn: 3600, StoredAt: storedAt},
		{AccountID: "drive", Provider: "google", AccessToken: "ya29.OTHER", StoredAt: storedAt},
	}, nil)

	require.NoError(t, e.app.Run(context.Background(), []string{"tokens", "list", "-provider", "google"}))
	assert.NotContains(t, e.out.String(), "SECRET")

	var got []tokenSummary
	require.NoError(t, json.Unmarshal(e.out.Bytes(), &got))
	require.Len(t, got, 2)
	assert.True(t, got[0].Expired)
	require.NotNil(t, got[0].ExpiresAt)
	assert.Equal(t, storedAt.Add(time.Hour), got[0].ExpiresAt.UTC())
	assert.False(t, got[1].Expired)
	assert.Nil(t, got[1].ExpiresAt)
}

func TestTokensGetAndDelete(t *testing.T) {
	e := newMockEnv(t, "", nil)
	gomock.InOrder(
		e.tokens.EXPECT().GetTokens(gomock.Any(), "gmail", "google").Return(&models.CredentialRecord{AccountID: "gmail", Provider: "google", AccessToken: "ya29"}, nil),
		e.tokens.EXPECT().GetTokens(gomock.Any(), "ghost", "google").Return(nil, nil),
		e.tokens.EXPECT().DeleteTokens(gomock.Any(), "gmail", "google").Return(nil),
		e.tokens.EXPECT().DeleteTokens(gomock.Any(), "gmail", "google").Return(errors.New("disk gone")),
	)

	require.NoError(t, e.app.Run(context.Background(), []string{"tokens", "get", "google", "gmail"}))
	assert.Contains(t, e.out.String(), `"accessToken": "ya29"`)

	assert.Error(t, e.app.Run(context.Background(), []string{"tokens", "get", "google", "ghost"}))

	assert.NoError(t, e.app.Run(context.Background(), []string{"tokens", "delete", "google", "gmail"}))
	assert.Error(t, e.app.Run(context.Background(), []string{"tokens", "delete", "google", "gmail"}))
}

func TestTokens_RunsSelfTestWhenStoreIsGated(t *testing.T) {
	e := newMockEnv(t, "", nil)
	gomock.InOrder(
		e.tokens.EXPECT().ListTokens(gomock.Any(), "").Return(nil, service.ErrCryptoUnavailable),
		e.vault.EXPECT().Ready().Return(false),
		e.vault.EXPECT().TestEncryption(gomock.Any()).Return(models.SelfTestResult{Success: true}),
		e.tokens.EXPECT().ListTokens(gomock.Any(), "").Return(nil, nil),
	)

	require.NoError(t, e.app.Run(context.Background(), []string{"tokens", "list"}))
	assert.JSONEq(t, `[]`, e.out.String())
}

func TestTokens_FailedSelfTestKeepsStoreClosed(t *testing.T) {
	e := newMockEnv(t, "", nil)
	gomock.InOrder(
		e.tokens.EXPECT().GetTokens(gomock.Any(), "gmail", "google").Return(nil, service.ErrCryptoUnavailable),
		e.vault.EXPECT().Ready().Return(false),
		e.vault.EXPECT().TestEncryption(gomock.Any()).Return(models.SelfTestResult{Error: "entropy source unavailable"}),
	)

	err := e.app.Run(context.Background(), []string{"tokens", "get", "google", "gmail"})
	assert.ErrorIs(t, err, service.ErrCryptoUnavailable)
	assert.Empty(t, e.out.String())
}
