// Package credentials resolves the Crowdin personal access token.
//
// Providers implement crowdintypes.TokenProvider. Static and Env cover local
// and CI use; Chain tries several providers in order; the awssecrets
// subpackage reads the token from AWS Secrets Manager.
package credentials

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"strings"

	"github.com/input-output-hk/catalyst-forge-libs/crowdin/crowdintypes"
	"github.com/input-output-hk/catalyst-forge-libs/crowdin/errors"
)

// EnvToken is the environment variable read by Env.
const EnvToken = "CROWDIN_PERSONAL_TOKEN"

// Static always returns the same token.
type Static crowdintypes.Token

// Token implements crowdintypes.TokenProvider.
func (s Static) Token(context.Context) (crowdintypes.Token, error) {
	if s == "" {
		return "", errors.NewError("static credentials", errors.ErrMissingToken)
	}
	return crowdintypes.Token(s), nil
}

// String redacts the token.
func (s Static) String() string {
	return crowdintypes.Token(s).String()
}

// Format redacts the token for every verb.
func (s Static) Format(f fmt.State, verb rune) {
	crowdintypes.Token(s).Format(f, verb)
}

// LogValue implements slog.LogValuer.
func (s Static) LogValue() slog.Value {
	return crowdintypes.Token(s).LogValue()
}

// Env reads the token from an environment variable on every call.
type Env struct {
	// Variable defaults to EnvToken
	Variable string
}

// Token implements crowdintypes.TokenProvider.
func (e Env) Token(context.Context) (crowdintypes.Token, error) {
	name := e.Variable
	if name == "" {
		name = EnvToken
	}
	value := strings.TrimSpace(os.Getenv(name))
	if value == "" {
		return "", errors.NewError("env credentials", errors.ErrMissingToken).WithName(name)
	}
	return crowdintypes.Token(value), nil
}

// Chain tries each provider in order and returns the first token found.
// Only ErrMissingToken moves on to the next provider; other errors stop the chain.
type Chain []crowdintypes.TokenProvider

// Token implements crowdintypes.TokenProvider.
func (c Chain) Token(ctx context.Context) (crowdintypes.Token, error) {
	for _, p := range c {
		if p == nil {
			continue
		}
		token, err := p.Token(ctx)
		if err == nil && !token.IsZero() {
			return token, nil
		}
		if err != nil && !errors.Is(err, errors.ErrMissingToken) {
			return "", err
		}
	}
	return "", errors.NewError("credential chain", errors.ErrMissingToken)
}

// Default returns the provider used when no credentials are configured: the CROWDIN_PERSONAL_TOKEN variable.
func Default() crowdintypes.TokenProvider {
	return Env{}
}
