package client

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/jonboulle/clockwork"

	"github.com/MKhiriev/go-life-vault/internal/crypto"
	"github.com/MKhiriev/go-life-vault/internal/logger"
	"github.com/MKhiriev/go-life-vault/internal/service"
)

const usage = `usage: vaultctl [flags] <command> [args]

commands:
  selftest                          run the encryption self-test
  genpass [-length N] [-copy]       generate a password satisfying the policy
  validate                          check a password against the policy
  encrypt                           JSON on stdin -> envelope on stdout
  decrypt                           envelope on stdin -> JSON on stdout
  rekey                             envelope on stdin -> envelope under a new password
  tokens list [-provider P]         list stored credentials (secrets omitted)
  tokens get <provider> <account>   print one stored credential
  tokens delete <provider> <account>`

type App struct {
	vault  service.VaultService
	tokens service.TokenService

	in        io.Reader
	out       io.Writer
	passwords PasswordReader
	clipboard Clipboard
	clock     clockwork.Clock

	logger *logger.Logger
}

type Option func(*App)

// WithIO replaces stdin and stdout.
func WithIO(in io.Reader, out io.Writer) Option {
	return func(a *App) {
		a.in = in
		a.out = out
	}
}

func WithPasswordReader(p PasswordReader) Option {
	return func(a *App) { a.passwords = p }
}

func WithClipboard(c Clipboard) Option {
	return func(a *App) { a.clipboard = c }
}

func WithClock(c clockwork.Clock) Option {
	return func(a *App) { a.clock = c }
}

func NewApp(services *service.Services, log *logger.Logger, opts ...Option) *App {
	a := &App{
		vault:     services.VaultService,
		tokens:    services.TokenService,
		in:        os.Stdin,
		out:       os.Stdout,
		passwords: TermPasswordReader{Prompt: os.Stderr},
		clipboard: SystemClipboard{},
		clock:     clockwork.NewRealClock(),
		logger:    log,
	}
	for _, opt := range opts {
		opt(a)
	}
	return a
}

func (a *App) Run(ctx context.Context, args []string) error {
	if len(args) == 0 {
		return fmt.Errorf("%w\n%s", ErrUsage, usage)
	}

	cmd, rest := args[0], args[1:]
	switch cmd {
	case "selftest":
		return a.selfTest(ctx)
	case "validate":
		return a.validate()
	case "tokens":
		return a.runTokens(ctx, rest)
	case "genpass", "encrypt", "decrypt", "rekey":
	default:
		return fmt.Errorf("%w %q\n%s", ErrUnknownCommand, cmd, usage)
	}

	if err := a.openGate(ctx); err != nil {
		return err
	}

	switch cmd {
	case "genpass":
		return a.genpass(ctx, rest)
	case "encrypt":
		return a.encrypt(ctx)
	case "decrypt":
		return a.decrypt(ctx)
	default:
		return a.rekey(ctx)
	}
}

// openGate runs the self-test once per process before any key derivation.
func (a *App) openGate(ctx context.Context) error {
	if a.vault.Ready() {
		return nil
	}
	res := a.vault.TestEncryption(ctx)
	if !res.Success {
		return fmt.Errorf("%w: %s", service.ErrCryptoUnavailable, res.Error)
	}
	return nil
}

// withGate runs fn and, when the store turned it away for want of a passed
// self-test, runs the self-test and tries once more. Plaintext stores never
// pay for the self-test.
func (a *App) withGate(ctx context.Context, fn func() error) error {
	err := fn()
	if !errors.Is(err, service.ErrCryptoUnavailable) {
		return err
	}
	if err = a.openGate(ctx); err != nil {
		return err
	}
	return fn()
}

func (a *App) selfTest(ctx context.Context) error {
	res := a.vault.TestEncryption(ctx)
	if err := a.writeJSON(res); err != nil {
		return err
	}
	if !res.Success {
		return fmt.Errorf("%w: %s", service.ErrCryptoUnavailable, res.Error)
	}
	return nil
}

func (a *App) genpass(ctx context.Context, args []string) error {
	fs := flag.NewFlagSet("genpass", flag.ContinueOnError)
	fs.SetOutput(io.Discard)
	length := fs.Int("length", service.DefaultGeneratedLength, "password length")
	toClipboard := fs.Bool("copy", false, "copy to the clipboard instead of printing")
	if err := fs.Parse(args); err != nil {
		return fmt.Errorf("%w: genpass: %w", ErrUsage, err)
	}

	password, err := a.vault.GenerateSecurePassword(ctx, *length)
	if err != nil {
		return err
	}

	if *toClipboard {
		if err = a.clipboard.WriteAll(password); err != nil {
			return fmt.Errorf("copy to clipboard: %w", err)
		}
		a.logger.Info().Int("length", len(password)).Msg("password copied to clipboard")
		return nil
	}

	_, err = fmt.Fprintln(a.out, password)
	return err
}

func (a *App) validate() error {
	password, err := a.passwords.ReadPassword("password")
	if err != nil {
		return err
	}

	res := a.vault.ValidatePassword(password)
	if res.Valid {
		_, err = fmt.Fprintln(a.out, "ok")
		return err
	}

	for _, v := range res.Violations {
		fmt.Fprintf(a.out, "- %s\n", v.Describe())
	}
	return ErrPasswordRejected
}

func (a *App) encrypt(ctx context.Context) error {
	data, err := a.readInput()
	if err != nil {
		return err
	}
	if !json.Valid(data) {
		return fmt.Errorf("%w: stdin is not a JSON document", ErrUsage)
	}

	password, err := a.passwords.ReadPassword("password")
	if err != nil {
		return err
	}

	res, err := a.vault.EncryptData(ctx, json.RawMessage(data), password)
	if err != nil {
		return err
	}

	_, err = fmt.Fprintln(a.out, res.Encrypted)
	return err
}

func (a *App) decrypt(ctx context.Context) error {
	envelope, err := a.readInput()
	if err != nil {
		return err
	}

	password, err := a.passwords.ReadPassword("password")
	if err != nil {
		return err
	}

	res := service.DecryptData[json.RawMessage](ctx, a.vault, string(envelope), password)
	if !res.OK() {
		return fmt.Errorf("%w: %s", ErrDecryptFailed, res.Error)
	}

	_, err = fmt.Fprintf(a.out, "%s\n", *res.Data)
	return err
}

func (a *App) rekey(ctx context.Context) error {
	envelope, err := a.readInput()
	if err != nil {
		return err
	}

	oldPassword, err := a.passwords.ReadPassword("password")
	if err != nil {
		return err
	}
	newPassword, err := a.passwords.ReadPassword("new password")
	if err != nil {
		return err
	}

	res, err := a.vault.ChangePassword(ctx, string(envelope), oldPassword, newPassword)
	if errors.Is(err, crypto.ErrDecryptionFailed) || errors.Is(err, crypto.ErrMalformedEnvelope) {
		return fmt.Errorf("%w: %s", ErrDecryptFailed, service.DecryptFailureMessage)
	}
	if err != nil {
		return err
	}

	_, err = fmt.Fprintln(a.out, res.Encrypted)
	return err
}

// tokenSummary is the listing view of a credential. Token values are left
// out so that listings are safe to paste.
type tokenSummary struct {
	AccountID string     `json:"accountId"`
	Provider  string     `json:"provider"`
	TokenType string     `json:"tokenType,omitempty"`
	Scope     string     `json:"scope,omitempty"`
	StoredAt  time.Time  `json:"storedAt"`
	ExpiresAt *time.Time `json:"expiresAt,omitempty"`
	Expired   bool       `json:"expired"`
}

func (a *App) runTokens(ctx context.Context, args []string) error {
	if len(args) == 0 {
		return fmt.Errorf("%w: tokens needs a subcommand\n%s", ErrUsage, usage)
	}

	switch args[0] {
	case "list":
		fs := flag.NewFlagSet("tokens list", flag.ContinueOnError)
		fs.SetOutput(io.Discard)
		provider := fs.String("provider", "", "only list this provider")
		if err := fs.Parse(args[1:]); err != nil {
			return fmt.Errorf("%w: tokens list: %w", ErrUsage, err)
		}
		return a.withGate(ctx, func() error { return a.listTokens(ctx, *provider) })
	case "get", "delete":
		if len(args) != 3 {
			return fmt.Errorf("%w: tokens %s <provider> <account>", ErrUsage, args[0])
		}
		if args[0] == "get" {
			return a.withGate(ctx, func() error { return a.getTokens(ctx, args[1], args[2]) })
		}
		return a.tokens.DeleteTokens(ctx, args[2], args[1])
	default:
		return fmt.Errorf("%w %q\n%s", ErrUnknownCommand, "tokens "+args[0], usage)
	}
}

func (a *App) listTokens(ctx context.Context, provider string) error {
	records, err := a.tokens.ListTokens(ctx, provider)
	if err != nil {
		return err
	}

	now := a.clock.Now()
	out := make([]tokenSummary, 0, len(records))
	for _, r := range records {
		s := tokenSummary{
			AccountID: r.AccountID,
			Provider:  r.Provider,
			TokenType: r.TokenType,
			Scope:     r.Scope,
			StoredAt:  r.StoredAt,
			Expired:   r.Expired(now),
		}
		if exp := r.ExpiresAt(); !exp.IsZero() {
			s.ExpiresAt = &exp
		}
		out = append(out, s)
	}
	return a.writeJSON(out)
}

func (a *App) getTokens(ctx context.Context, provider, accountID string) error {
	rec, err := a.tokens.GetTokens(ctx, accountID, provider)
	if err != nil {
		return err
	}
	if rec == nil {
		return fmt.Errorf("no tokens stored for %s/%s", provider, accountID)
	}
	return a.writeJSON(rec)
}

func (a *App) readInput() ([]byte, error) {
	data, err := io.ReadAll(a.in)
	if err != nil {
		return nil, fmt.Errorf("read stdin: %w", err)
	}
	return bytes.TrimSpace(data), nil
}

func (a *App) writeJSON(v any) error {
	enc := json.NewEncoder(a.out)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

var _ Client = (*App)(nil)
