package crypto

import (
	"fmt"
	"unicode"
	"unicode/utf8"
)

// MinPasswordLength is the minimum number of characters accepted by
// [DefaultPasswordPolicy].
const MinPasswordLength = 8

// ReasonCode identifies one unmet password rule.
type ReasonCode string

const (
	ReasonTooShort         ReasonCode = "too_short"
	ReasonMissingUppercase ReasonCode = "missing_uppercase"
	ReasonMissingLowercase ReasonCode = "missing_lowercase"
	ReasonMissingDigit     ReasonCode = "missing_digit"
	ReasonMissingSymbol    ReasonCode = "missing_symbol"
)

// Describe returns a message suitable for showing next to a password field.
func (r ReasonCode) Describe() string {
	switch r {
	case ReasonTooShort:
		return fmt.Sprintf("Password must be at least %d characters", MinPasswordLength)
	case ReasonMissingUppercase:
		return "Password must contain an uppercase letter"
	case ReasonMissingLowercase:
		return "Password must contain a lowercase letter"
	case ReasonMissingDigit:
		return "Password must contain a number"
	case ReasonMissingSymbol:
		return "Password must contain a special character"
	default:
		return string(r)
	}
}

// PolicyResult is the outcome of [PasswordPolicy.Validate]. Violations are
// reported in rule order and the slice is never nil.
type PolicyResult struct {
	Valid      bool         `json:"valid"`
	Violations []ReasonCode `json:"violations"`
}

// PasswordPolicy is a pure classifier of password acceptability.
type PasswordPolicy struct {
	MinLength int
}

// DefaultPasswordPolicy returns the vault password policy.
func DefaultPasswordPolicy() PasswordPolicy {
	return PasswordPolicy{MinLength: MinPasswordLength}
}

// Validate checks password against every rule. Length is counted in
// characters, not bytes.
func (p PasswordPolicy) Validate(password string) PolicyResult {
	var hasUpper, hasLower, hasDigit, hasSymbol bool
	for _, r := range password {
		switch {
		case unicode.IsUpper(r):
			hasUpper = true
		case unicode.IsLower(r):
			hasLower = true
		case unicode.IsDigit(r):
			hasDigit = true
		case !unicode.IsLetter(r):
			hasSymbol = true
		}
	}

	violations := make([]ReasonCode, 0, 5)
	if utf8.RuneCountInString(password) < p.MinLength {
		violations = append(violations, ReasonTooShort)
	}
	if !hasUpper {
		violations = append(violations, ReasonMissingUppercase)
	}
	if !hasLower {
		violations = append(violations, ReasonMissingLowercase)
	}
	if !hasDigit {
		violations = append(violations, ReasonMissingDigit)
	}
	if !hasSymbol {
		violations = append(violations, ReasonMissingSymbol)
	}

	return PolicyResult{Valid: len(violations) == 0, Violations: violations}
}
