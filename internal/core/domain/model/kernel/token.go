package kernel

import (
	"crypto/rand"
	"encoding/hex"

	"fulfillment/internal/pkg/errs"
)

// tokenByteLength is the entropy of a generated token in bytes.
// 16 bytes of randomness yields a 32-character hex string.
const tokenByteLength = 16

// ErrTokenIsNotConstructed indicates that a Token was not properly initialized
// through NewToken or TokenFromString. This error is returned when validating
// a zero-value Token.
var ErrTokenIsNotConstructed = errs.NewValueIsRequiredError(
	"token must be created via NewToken or TokenFromString")

// Token is an opaque public-facing identifier used to address an order or a
// packing group without exposing internal ids. Tokens are generated once and
// stay stable for the lifetime of the entity they identify.
//
// The zero value of Token is invalid; use NewToken to generate a fresh token
// or TokenFromString to restore one from persistence.
type Token struct {
	value string
}

// NewToken generates a new opaque random token. The token is unpredictable
// (crypto/rand) and suitable for use in public URLs.
//
// Example:
//
//	checkoutToken := kernel.NewToken()
//	fmt.Println(checkoutToken.String()) // e.g. "f4a1c09be2d4470a91c53b8f2e6d7a01"
func NewToken() Token {
	buf := make([]byte, tokenByteLength)
	// crypto/rand.Read is documented to never return an error on supported platforms.
	_, _ = rand.Read(buf)
	return Token{value: hex.EncodeToString(buf)}
}

// TokenFromString restores a Token from its persisted string form.
// Returns an error if the string is empty.
func TokenFromString(s string) (Token, error) {
	if s == "" {
		return Token{}, ErrTokenIsNotConstructed
	}
	return Token{value: s}, nil
}

// String returns the token's opaque string representation.
func (t Token) String() string {
	return t.value
}

// IsEqual compares two tokens for equality.
func (t Token) IsEqual(other Token) bool {
	return t.value == other.value
}

// Validate checks that the token was created through a constructor.
// Returns ErrTokenIsNotConstructed for a zero-value Token.
func (t Token) Validate() error {
	if t.value == "" {
		return ErrTokenIsNotConstructed
	}
	return nil
}
