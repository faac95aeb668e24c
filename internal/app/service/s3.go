package service

import (
	"fmt"

	"s3-buckets/internal/config"

	"github.com/aws/aws-sdk-go/aws"
	"github.com/aws/aws-sdk-go/aws/credentials"
	"github.com/aws/aws-sdk-go/aws/session"
	"github.com/aws/aws-sdk-go/service/s3"
	"github.com/gurkankaymak/hocon"
)

// InitS3 builds the S3 client from the s3.* config keys. Credentials come from
// the SDK default chain (env, shared config, instance role) unless both access
// and secret are given, in which case static credentials are used.
func InitS3(conf *hocon.Config, access string, secret string) (*s3.S3, error) {
	cfg := aws.NewConfig().
		WithRegion(config.String(conf, "s3.region", "us-east-1")).
		WithS3ForcePathStyle(config.Bool(conf, "s3.force_path_style", false)).
		WithDisableSSL(config.Bool(conf, "s3.disable_ssl", false))

	if endpoint := config.String(conf, "s3.endpoint", ""); endpoint != "" {
		cfg = cfg.WithEndpoint(endpoint)
	}
	if access != "" && secret != "" {
		cfg = cfg.WithCredentials(credentials.NewStaticCredentials(access, secret, ""))
	}

	sess, err := session.NewSessionWithOptions(session.Options{
		Config:            *cfg,
		SharedConfigState: session.SharedConfigEnable,
	})
	if err != nil {
		return nil, fmt.Errorf("create aws session: %w", err)
	}

	return s3.New(sess), nil
}
