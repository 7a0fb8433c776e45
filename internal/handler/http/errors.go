// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import "errors"

// Sentinel errors produced while reading requests. Callers can match against
// them with [errors.Is].
var (
	// ErrInvalidJSON is returned when the request body is not the JSON
	// document the route expects.
	ErrInvalidJSON = errors.New("invalid JSON was passed")

	// ErrBodyTooLarge is returned when the request body exceeds
	// [MaxRequestBodySize].
	ErrBodyTooLarge = errors.New("request body too large")

	// ErrMissingData is returned by the encrypt route when the body has no
	// "data" field.
	ErrMissingData = errors.New("no data to encrypt")

	// ErrInvalidLength is returned by the generator route when the "length"
	// query parameter is not an integer.
	ErrInvalidLength = errors.New("length must be an integer")
)
