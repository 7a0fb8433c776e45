// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package crypto

import (
	"errors"
	"fmt"
	"reflect"
	"time"
)

type selfTestItem struct {
	ID     string  `json:"id"`
	Amount float64 `json:"amount"`
}

// selfTestPayload exercises nested objects, arrays, numbers, booleans,
// nulls and date-like strings.
type selfTestPayload struct {
	Marker    string            `json:"marker"`
	Count     int64             `json:"count"`
	Enabled   bool              `json:"enabled"`
	Missing   *string           `json:"missing"`
	CreatedAt string            `json:"createdAt"`
	Tags      []string          `json:"tags"`
	Items     []selfTestItem    `json:"items"`
	Nested    map[string]string `json:"nested"`
}

// RunSelfTest proves that c works before it is trusted. It round-trips a
// synthetic payload under a generated password, checks that two encryptions
// of the same input differ, and checks that a different password fails
// closed. It needs no stored vault and no network.
//
// Any failure wraps [ErrSelfTestFailed]; a broken entropy source also wraps
// [ErrEnvironmentFailure].
func RunSelfTest(c Cipher, rnd *SecureRandom) error {
	password, err := rnd.Password(24)
	if err != nil {
		return fmt.Errorf("%w: generate password: %w", ErrSelfTestFailed, err)
	}
	marker, err := rnd.Bytes(8)
	if err != nil {
		return fmt.Errorf("%w: generate marker: %w", ErrSelfTestFailed, err)
	}

	want := selfTestPayload{
		Marker:    fmt.Sprintf("%x", marker),
		Count:     42,
		Enabled:   true,
		CreatedAt: time.Now().UTC().Format(time.RFC3339Nano),
		Tags:      []string{"alpha", "beta"},
		Items:     []selfTestItem{{ID: "1", Amount: 100.5}, {ID: "2", Amount: 50}},
		Nested:    map[string]string{"deep": "value"},
	}

	first, err := c.Encrypt(want, password)
	if err != nil {
		return fmt.Errorf("%w: encrypt: %w", ErrSelfTestFailed, err)
	}
	second, err := c.Encrypt(want, password)
	if err != nil {
		return fmt.Errorf("%w: encrypt: %w", ErrSelfTestFailed, err)
	}
	if first == second {
		return fmt.Errorf("%w: identical envelopes for identical input", ErrSelfTestFailed)
	}

	var got selfTestPayload
	if err = c.Decrypt(first, password, &got); err != nil {
		return fmt.Errorf("%w: decrypt: %w", ErrSelfTestFailed, err)
	}
	if !reflect.DeepEqual(want, got) {
		return fmt.Errorf("%w: round-tripped payload differs", ErrSelfTestFailed)
	}

	var wrong selfTestPayload
	err = c.Decrypt(first, password+"x", &wrong)
	if !errors.Is(err, ErrDecryptionFailed) {
		return fmt.Errorf("%w: wrong password did not fail closed: %v", ErrSelfTestFailed, err)
	}

	return nil
}
