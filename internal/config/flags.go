package config

import (
	"errors"
	"flag"
	"io"
	"net"
	"strconv"
	"time"
)

// NetAddress holds structured network address data for host and port.
// It implements the flag.Value interface.
type NetAddress struct {
	Host string
	Port int
}

// ParseFlags parses the configuration flags found at the start of args and
// returns the remaining positional arguments.
//
// Flags:
//
//	-a server address in format [host]:[port]
//	-request-timeout request timeout (e.g., "30s", "1m")
//	-backend storage backend: memory, sqlite, postgres or bolt
//	-d database DSN
//	-bolt-path bolt database file
//	-encrypt-at-rest seal stored tokens into vault envelopes
//	-envelope-version envelope version for new encryptions
//	-max-derivations concurrent key derivation limit
//	-enforce-policy reject weak passwords on encryption
//	-log-level log level
//	-c/-config json file path with configs
func ParseFlags(args []string) (*StructuredConfig, []string, error) {
	var (
		serverAddress   NetAddress
		requestTimeout  time.Duration
		backend         string
		databaseDSN     string
		boltPath        string
		encryptAtRest   bool
		envelopeVersion int
		maxDerivations  int
		enforcePolicy   bool
		logLevel        string
		jsonConfigPath  string
	)

	fs := flag.NewFlagSet("vault", flag.ContinueOnError)
	fs.SetOutput(io.Discard)

	fs.Var(&serverAddress, "a", "Net address host:port")
	fs.DurationVar(&requestTimeout, "request-timeout", 0, "Request timeout (e.g., 30s, 1m)")
	fs.StringVar(&backend, "backend", "", "Storage backend: memory, sqlite, postgres or bolt")
	fs.StringVar(&databaseDSN, "d", "", "Database DSN")
	fs.StringVar(&boltPath, "bolt-path", "", "Bolt database file")
	fs.BoolVar(&encryptAtRest, "encrypt-at-rest", false, "Encrypt stored tokens")
	fs.IntVar(&envelopeVersion, "envelope-version", 0, "Envelope version for new encryptions")
	fs.IntVar(&maxDerivations, "max-derivations", 0, "Concurrent key derivation limit")
	fs.BoolVar(&enforcePolicy, "enforce-policy", false, "Reject weak passwords on encryption")
	fs.StringVar(&logLevel, "log-level", "", "Log level")
	fs.StringVar(&jsonConfigPath, "c", "", "JSON config file path")
	fs.StringVar(&jsonConfigPath, "config", "", "JSON config file path (alias)")

	if err := fs.Parse(args); err != nil {
		return nil, nil, err
	}

	return &StructuredConfig{
		App: App{
			LogLevel: logLevel,
		},
		Crypto: Crypto{
			EnvelopeVersion:          envelopeVersion,
			MaxConcurrentDerivations: maxDerivations,
			EnforcePasswordPolicy:    enforcePolicy,
		},
		Storage: Storage{
			Backend:       backend,
			DB:            DB{DSN: databaseDSN},
			Bolt:          Bolt{Path: boltPath},
			EncryptAtRest: encryptAtRest,
		},
		Server: Server{
			HTTPAddress:    serverAddress.String(),
			RequestTimeout: requestTimeout,
		},
		JSONFilePath: jsonConfigPath,
	}, fs.Args(), nil
}

// String returns a canonical host:port string for a NetAddress.
// It returns an empty string when neither Host nor Port are set.
func (a *NetAddress) String() string {
	if a.Host == "" && a.Port == 0 {
		return ""
	}

	return net.JoinHostPort(a.Host, strconv.Itoa(a.Port))
}

// Set parses the input string of form host:port and populates the NetAddress.
// It validates the port range, checks IP correctness unless host is "localhost",
// and returns an error if the format or values are invalid.
func (a *NetAddress) Set(s string) error {
	host, portStr, err := net.SplitHostPort(s)
	if err != nil {
		return errors.New("need address in a form `host:port`")
	}

	port, err := strconv.Atoi(portStr)
	if err != nil {
		return err
	}

	if port < 1 || port > 65535 {
		return errors.New("port number is an integer between 1 and 65535")
	}

	if host != "localhost" {
		ip := net.ParseIP(host)
		if ip == nil {
			return errors.New("incorrect IP-address provided")
		}
	}

	a.Host = host
	a.Port = port
	return nil
}
