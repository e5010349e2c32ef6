package crowdintypes

import (
	"context"
	"fmt"
	"log/slog"
)

const redacted = "[REDACTED]"

// Token is a Crowdin personal access token.
// Its formatted and logged forms are always redacted; use Value to read it.
type Token string

// Value returns the raw token.
func (t Token) Value() string {
	return string(t)
}

// IsZero reports whether the token is empty.
func (t Token) IsZero() bool {
	return t == ""
}

// String implements fmt.Stringer.
func (t Token) String() string {
	return redacted
}

// GoString implements fmt.GoStringer so %#v does not leak the token.
func (t Token) GoString() string {
	return redacted
}

// Format implements fmt.Formatter for every verb.
func (t Token) Format(f fmt.State, _ rune) {
	_, _ = f.Write([]byte(redacted))
}

// LogValue implements slog.LogValuer.
func (t Token) LogValue() slog.Value {
	return slog.StringValue(redacted)
}

// TokenProvider resolves the access token used to authenticate API calls.
// Implementations must be safe for concurrent use.
type TokenProvider interface {
	Token(ctx context.Context) (Token, error)
}
