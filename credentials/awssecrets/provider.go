// Package awssecrets provides a Crowdin token provider backed by AWS Secrets Manager.
//
// The secret may hold the raw token, or a JSON object from which one key is
// read (see WithJSONKey). Secret values are never logged.
package awssecrets

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/secretsmanager"
	"github.com/aws/smithy-go"

	"github.com/input-output-hk/catalyst-forge-libs/crowdin/crowdintypes"
	crowdinerrors "github.com/input-output-hk/catalyst-forge-libs/crowdin/errors"
)

// AWS error code constants
const (
	ResourceNotFoundException = "ResourceNotFoundException"
	AccessDeniedException     = "AccessDeniedException"
)

var (
	// ErrSecretNotFound is returned when the configured secret does not exist.
	ErrSecretNotFound = errors.New("secret not found")

	// ErrAccessDenied is returned when the AWS credentials cannot read the secret.
	ErrAccessDenied = errors.New("access denied to secret")
)

// ManagerAPI is the subset of the Secrets Manager client used by Provider.
type ManagerAPI interface {
	GetSecretValue(
		ctx context.Context,
		params *secretsmanager.GetSecretValueInput,
		optFns ...func(*secretsmanager.Options),
	) (*secretsmanager.GetSecretValueOutput, error)
}

// Provider resolves the Crowdin token from AWS Secrets Manager.
// It implements crowdintypes.TokenProvider and is safe for concurrent use.
type Provider struct {
	api        ManagerAPI
	secretName string
	jsonKey    string
	cache      *tokenCache
	logger     *slog.Logger
}

// Option configures a Provider.
type Option func(*Provider)

// WithJSONKey reads the token from the given key of a JSON secret.
func WithJSONKey(key string) Option {
	return func(p *Provider) {
		p.jsonKey = key
	}
}

// WithCacheTTL caches the resolved token for ttl. Zero disables caching.
func WithCacheTTL(ttl time.Duration) Option {
	return func(p *Provider) {
		if ttl > 0 {
			p.cache = newTokenCache(ttl)
		} else {
			p.cache = nil
		}
	}
}

// WithLogger configures the provider with a logger. Only the secret name is ever logged.
func WithLogger(logger *slog.Logger) Option {
	return func(p *Provider) {
		p.logger = logger
	}
}

// New creates a Provider using the default AWS credential chain.
func New(ctx context.Context, secretName string, opts ...Option) (*Provider, error) {
	cfg, err := config.LoadDefaultConfig(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load AWS config: %w", err)
	}
	return NewWithConfig(&cfg, secretName, opts...)
}

// NewWithConfig creates a Provider from an explicit AWS configuration.
func NewWithConfig(cfg *aws.Config, secretName string, opts ...Option) (*Provider, error) {
	if cfg == nil {
		return nil, fmt.Errorf("config cannot be nil")
	}
	return NewWithAPI(secretsmanager.NewFromConfig(*cfg), secretName, opts...)
}

// NewWithAPI creates a Provider over a custom Secrets Manager implementation.
// This is primarily used for testing with mocked clients.
func NewWithAPI(api ManagerAPI, secretName string, opts ...Option) (*Provider, error) {
	if api == nil {
		return nil, fmt.Errorf("secrets manager API cannot be nil")
	}
	if secretName == "" {
		return nil, fmt.Errorf("secret name cannot be empty")
	}

	p := &Provider{
		api:        api,
		secretName: secretName,
	}
	for _, opt := range opts {
		opt(p)
	}
	return p, nil
}

// Token implements crowdintypes.TokenProvider.
func (p *Provider) Token(ctx context.Context) (crowdintypes.Token, error) {
	if p.cache != nil {
		if token, ok := p.cache.get(); ok {
			return token, nil
		}
	}

	if p.logger != nil {
		p.logger.DebugContext(ctx, "retrieving crowdin token", "secret_name", p.secretName)
	}

	output, err := p.api.GetSecretValue(ctx, &secretsmanager.GetSecretValueInput{
		SecretId: aws.String(p.secretName),
	})
	if err != nil {
		var apiErr smithy.APIError
		if errors.As(err, &apiErr) {
			switch apiErr.ErrorCode() {
			case ResourceNotFoundException:
				return "", fmt.Errorf("GetSecretValue %s: %w", p.secretName, ErrSecretNotFound)
			case AccessDeniedException:
				return "", fmt.Errorf("GetSecretValue %s: %w", p.secretName, ErrAccessDenied)
			}
		}
		if p.logger != nil {
			p.logger.ErrorContext(ctx, "failed to retrieve crowdin token",
				"secret_name", p.secretName,
				"error", err)
		}
		return "", fmt.Errorf("GetSecretValue %s: %w", p.secretName, err)
	}

	raw := aws.ToString(output.SecretString)
	if raw == "" && len(output.SecretBinary) > 0 {
		raw = string(output.SecretBinary)
	}

	token, err := p.extract(raw)
	if err != nil {
		return "", err
	}

	if p.cache != nil {
		p.cache.set(token)
	}
	return token, nil
}

// Invalidate drops any cached token so the next call reads the secret again.
func (p *Provider) Invalidate() {
	if p.cache != nil {
		p.cache.clear()
	}
}

func (p *Provider) extract(raw string) (crowdintypes.Token, error) {
	if p.jsonKey != "" {
		var fields map[string]any
		if err := json.Unmarshal([]byte(raw), &fields); err != nil {
			return "", fmt.Errorf("secret %s is not a JSON object: %w", p.secretName, err)
		}
		value, _ := fields[p.jsonKey].(string)
		raw = value
	}

	raw = strings.TrimSpace(raw)
	if raw == "" {
		return "", crowdinerrors.NewError("aws secrets credentials", crowdinerrors.ErrMissingToken).WithName(p.secretName)
	}
	return crowdintypes.Token(raw), nil
}

var _ crowdintypes.TokenProvider = (*Provider)(nil)
