package config

import (
	"context"
	"fmt"
	"net/http"
	"os"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
)

// Environment variable names consumed by the external benchmark tool's SDK.
const (
	EnvAccessKeyID     = "AWS_ACCESS_KEY_ID"
	EnvSecretAccessKey = "AWS_SECRET_ACCESS_KEY"
	EnvRegionName      = "AWS_REGION_NAME"
)

// Credentials holds the cloud credential triple passed through to the
// external benchmark process. Values may be empty; the launch path never
// validates them.
type Credentials struct {
	AccessKeyID     string
	SecretAccessKey string
	Region          string
}

// LoadCredentials reads the credential triple from the launcher's own
// environment.
func LoadCredentials() Credentials {
	return Credentials{
		AccessKeyID:     os.Getenv(EnvAccessKeyID),
		SecretAccessKey: os.Getenv(EnvSecretAccessKey),
		Region:          os.Getenv(EnvRegionName),
	}
}

// Env renders the triple as KEY=value entries for a child process
// environment.
func (c Credentials) Env() []string {
	return []string{
		EnvAccessKeyID + "=" + c.AccessKeyID,
		EnvSecretAccessKey + "=" + c.SecretAccessKey,
		EnvRegionName + "=" + c.Region,
	}
}

// Validate checks that all three values are present. The probe requires
// them; the launch operation does not.
func (c Credentials) Validate() error {
	if c.AccessKeyID == "" {
		return fmt.Errorf("%s must be set", EnvAccessKeyID)
	}
	if c.SecretAccessKey == "" {
		return fmt.Errorf("%s must be set", EnvSecretAccessKey)
	}
	if c.Region == "" {
		return fmt.Errorf("%s must be set", EnvRegionName)
	}
	return nil
}

// LoadAWSConfig builds an SDK configuration from the credential triple.
// The region comes from AWS_REGION_NAME rather than the SDK's usual
// AWS_REGION, matching what the external benchmark tool expects.
func LoadAWSConfig(ctx context.Context, creds Credentials, httpClient *http.Client) (aws.Config, error) {
	if err := creds.Validate(); err != nil {
		return aws.Config{}, err
	}
	opts := []func(*awsconfig.LoadOptions) error{
		awsconfig.WithRegion(creds.Region),
		awsconfig.WithCredentialsProvider(
			credentials.NewStaticCredentialsProvider(creds.AccessKeyID, creds.SecretAccessKey, ""),
		),
	}
	if httpClient != nil {
		opts = append(opts, awsconfig.WithHTTPClient(httpClient))
	}
	cfg, err := awsconfig.LoadDefaultConfig(ctx, opts...)
	if err != nil {
		return aws.Config{}, fmt.Errorf("failed to load AWS config: %v", err)
	}
	return cfg, nil
}
