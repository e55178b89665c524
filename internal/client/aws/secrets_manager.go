package aws

import (
	"context"
	"encoding/json"
	"fmt"
	"os"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/secretsmanager"
	"github.com/cyphera/cyphera-circles/internal/logger"
	"go.uber.org/zap"
)

// secretsAPI is the part of the Secrets Manager client used here.
type secretsAPI interface {
	GetSecretValue(ctx context.Context, params *secretsmanager.GetSecretValueInput, optFns ...func(*secretsmanager.Options)) (*secretsmanager.GetSecretValueOutput, error)
}

// SecretsManagerClient resolves service secrets from AWS Secrets Manager with env var fallback.
type SecretsManagerClient struct {
	svc secretsAPI
}

// NewSecretsManagerClient creates a client from the default AWS configuration chain
// (environment variables, shared config, IAM role).
func NewSecretsManagerClient(ctx context.Context) (*SecretsManagerClient, error) {
	cfg, err := loadConfig(ctx)
	if err != nil {
		return nil, err
	}
	return &SecretsManagerClient{svc: secretsmanager.NewFromConfig(cfg)}, nil
}

func (c *SecretsManagerClient) fetch(ctx context.Context, secretArn string) (string, error) {
	result, err := c.svc.GetSecretValue(ctx, &secretsmanager.GetSecretValueInput{
		SecretId: aws.String(secretArn),
	})
	if err != nil {
		return "", err
	}
	if result.SecretString == nil || *result.SecretString == "" {
		return "", fmt.Errorf("secret %s has no string value", secretArn)
	}
	return *result.SecretString, nil
}

// GetSecretString reads the secret whose ARN is in secretArnEnvVar. When the ARN is unset or the
// fetch fails it falls back to the plain value of fallbackEnvVar. A secret stored as JSON with a
// single key yields that key's value.
func (c *SecretsManagerClient) GetSecretString(ctx context.Context, secretArnEnvVar string, fallbackEnvVar string) (string, error) {
	if secretArn := os.Getenv(secretArnEnvVar); secretArn != "" && c != nil {
		value, err := c.fetch(ctx, secretArn)
		if err == nil {
			var secretJSON map[string]string
			if json.Unmarshal([]byte(value), &secretJSON) == nil && len(secretJSON) == 1 {
				for key, v := range secretJSON {
					logger.Debug("Secret fetched from Secrets Manager (single-key JSON)",
						zap.String("arnEnvVar", secretArnEnvVar),
						zap.String("jsonKey", key),
					)
					return v, nil
				}
			}
			logger.Debug("Secret fetched from Secrets Manager", zap.String("arnEnvVar", secretArnEnvVar))
			return value, nil
		}
		logger.Warn("Failed to retrieve secret from Secrets Manager, falling back to env var",
			zap.String("arnEnvVar", secretArnEnvVar),
			zap.String("fallbackEnvVar", fallbackEnvVar),
			zap.Error(err),
		)
	}

	if value := os.Getenv(fallbackEnvVar); value != "" {
		return value, nil
	}

	return "", fmt.Errorf("secret not found using ARN env var '%s' or direct env var '%s'", secretArnEnvVar, fallbackEnvVar)
}

// GetSecretJSON reads a JSON secret whose ARN is in secretArnEnvVar into target.
func (c *SecretsManagerClient) GetSecretJSON(ctx context.Context, secretArnEnvVar string, target interface{}) error {
	secretArn := os.Getenv(secretArnEnvVar)
	if secretArn == "" {
		return fmt.Errorf("secret ARN env var '%s' not set", secretArnEnvVar)
	}

	value, err := c.fetch(ctx, secretArn)
	if err != nil {
		return fmt.Errorf("failed to fetch secret from %s: %w", secretArnEnvVar, err)
	}

	if err := json.Unmarshal([]byte(value), target); err != nil {
		return fmt.Errorf("failed to parse JSON secret from %s: %w", secretArnEnvVar, err)
	}
	return nil
}
