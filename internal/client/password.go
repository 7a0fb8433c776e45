package client

import (
	"fmt"
	"io"
	"os"
	"strings"

	"golang.org/x/term"
)

// Environment variables consulted before prompting.
const (
	EnvPassword    = "VAULT_PASSWORD"
	EnvNewPassword = "VAULT_NEW_PASSWORD"
)

// TermPasswordReader reads secrets from the environment, falling back to a
// no-echo prompt on the controlling terminal.
type TermPasswordReader struct {
	Prompt io.Writer
}

func (r TermPasswordReader) ReadPassword(name string) (string, error) {
	env := EnvPassword
	if name == "new password" {
		env = EnvNewPassword
	}
	if v, ok := os.LookupEnv(env); ok {
		return v, nil
	}

	// stdin may carry the payload, so prompt on the terminal itself
	tty, err := os.Open("/dev/tty")
	if err != nil {
		return "", ErrNoPassword
	}
	defer tty.Close()

	fd := int(tty.Fd())
	if !term.IsTerminal(fd) {
		return "", ErrNoPassword
	}

	fmt.Fprintf(r.Prompt, "Enter %s: ", name)
	b, err := term.ReadPassword(fd)
	fmt.Fprintln(r.Prompt)
	if err != nil {
		return "", fmt.Errorf("read %s: %w", name, err)
	}
	return strings.TrimRight(string(b), "\r\n"), nil
}
