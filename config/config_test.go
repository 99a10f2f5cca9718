package config

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadCredentials(t *testing.T) {
	t.Setenv(EnvAccessKeyID, "AKIAEXAMPLE")
	t.Setenv(EnvSecretAccessKey, "secret-example")
	t.Setenv(EnvRegionName, "us-east-1")

	creds := LoadCredentials()
	assert.Equal(t, "AKIAEXAMPLE", creds.AccessKeyID)
	assert.Equal(t, "secret-example", creds.SecretAccessKey)
	assert.Equal(t, "us-east-1", creds.Region)
}

func TestCredentialsEnvRendersEmptyValues(t *testing.T) {
	env := Credentials{}.Env()

	assert.Equal(t, []string{
		"AWS_ACCESS_KEY_ID=",
		"AWS_SECRET_ACCESS_KEY=",
		"AWS_REGION_NAME=",
	}, env)
}

func TestCredentialsValidate(t *testing.T) {
	full := Credentials{AccessKeyID: "k", SecretAccessKey: "s", Region: "r"}
	assert.NoError(t, full.Validate())

	tests := []struct {
		name    string
		creds   Credentials
		wantVar string
	}{
		{name: "missing key id", creds: Credentials{SecretAccessKey: "s", Region: "r"}, wantVar: EnvAccessKeyID},
		{name: "missing secret", creds: Credentials{AccessKeyID: "k", Region: "r"}, wantVar: EnvSecretAccessKey},
		{name: "missing region", creds: Credentials{AccessKeyID: "k", SecretAccessKey: "s"}, wantVar: EnvRegionName},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.creds.Validate()
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantVar)
		})
	}
}

func TestLoadAWSConfig(t *testing.T) {
	creds := Credentials{AccessKeyID: "k", SecretAccessKey: "s", Region: "eu-west-1"}

	cfg, err := LoadAWSConfig(context.Background(), creds, nil)
	require.NoError(t, err)
	assert.Equal(t, "eu-west-1", cfg.Region)

	retrieved, err := cfg.Credentials.Retrieve(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "k", retrieved.AccessKeyID)
	assert.Equal(t, "s", retrieved.SecretAccessKey)
}

func TestLoadAWSConfigRequiresCredentials(t *testing.T) {
	_, err := LoadAWSConfig(context.Background(), Credentials{Region: "r"}, nil)
	require.Error(t, err)
	assert.Contains(t, err.Error(), EnvAccessKeyID)
}
