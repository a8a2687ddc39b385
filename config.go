package main

import (
	"context"
	"fmt"

	"github.com/jinzhu/configor"
	log "github.com/sirupsen/logrus"
)

type AppConfig struct {
	Provider ProviderConfig
	Upload   UploadConfig
	Notify   NotifyConfig
	LogLevel string `default:"info" env:"LOG_LEVEL"`
}

type ProviderConfig struct {
	Name            string `default:"aws" env:"STORAGE_PROVIDER"`
	Region          string `default:"us-east-1" env:"AWS_REGION"`
	Profile         string `env:"AWS_PROFILE"`
	AccessKeyID     string `env:"AWS_ACCESS_KEY_ID"`
	SecretAccessKey string `env:"AWS_SECRET_ACCESS_KEY"`
	// Endpoint points the s3 and minio providers at an S3-compatible store.
	Endpoint string `env:"S3_ENDPOINT"`
	Insecure bool   `env:"S3_INSECURE"`
}

type UploadConfig struct {
	LocalFolder string `default:"daily_data" env:"UPLOAD_LOCAL_FOLDER"`
	Bucket      string `default:"raw-retail-jmusni" env:"UPLOAD_BUCKET"`
	Prefix      string `default:"daily_sales" env:"UPLOAD_PREFIX"`
}

type NotifyConfig struct {
	Topic   string `env:"SNS_TOPIC_ARN"`
	Region  string
	Profile string
}

func LoadConfig(files ...string) (AppConfig, error) {
	var appConfig AppConfig
	loader := configor.New(&configor.Config{ENVPrefix: "DAILYUPLOAD"})
	if err := loader.Load(&appConfig, files...); err != nil {
		return appConfig, fmt.Errorf("loading config: %w", err)
	}

	// notifications go through the storage account unless told otherwise
	if appConfig.Notify.Region == "" {
		appConfig.Notify.Region = appConfig.Provider.Region
	}
	if appConfig.Notify.Profile == "" {
		appConfig.Notify.Profile = appConfig.Provider.Profile
	}

	return appConfig, nil
}

func (c AppConfig) ConfigureLogging() error {
	level, err := log.ParseLevel(c.LogLevel)
	if err != nil {
		return fmt.Errorf("invalid log level %q: %w", c.LogLevel, err)
	}
	log.SetLevel(level)
	log.SetFormatter(&log.TextFormatter{FullTimestamp: true})

	return nil
}

func (c AppConfig) ClientFromConfig(ctx context.Context) (BucketClient, error) {
	var bucketClient BucketClient

	switch c.Provider.Name {
	case "aws":
		return NewS3BucketClient(ctx, c.Provider)
	case "minio":
		return NewMinIOBucketClient(c.Provider)
	case "gcs":
		return NewGCSBucketClient(ctx)
	default:
		return bucketClient, fmt.Errorf("Unknown cloud provider: %s", c.Provider.Name)
	}
}

func (c AppConfig) NotifierFromConfig(ctx context.Context) (Notifier, error) {
	if c.Notify.Topic == "" {
		return nil, nil
	}

	return NewSNSNotifier(ctx, c.Notify)
}

func (c AppConfig) ConfigStringArray() []string {
	configStrArr := make([]string, 0)
	configStrArr = append(configStrArr, fmt.Sprintf("  - Provider: %s", c.Provider.Name))
	configStrArr = append(configStrArr, fmt.Sprintf("  - Region: %s", c.Provider.Region))

	if c.Provider.Profile != "" {
		configStrArr = append(configStrArr, fmt.Sprintf("  - Profile: %s", c.Provider.Profile))
	}
	if c.Provider.Endpoint != "" {
		configStrArr = append(configStrArr, fmt.Sprintf("  - Endpoint: %s", c.Provider.Endpoint))
	}
	if c.Provider.AccessKeyID != "" {
		configStrArr = append(configStrArr, "  - Static credentials: yes")
	}
	if c.Notify.Topic != "" {
		configStrArr = append(configStrArr, fmt.Sprintf("  - SNSTopic: %s", c.Notify.Topic))
	}

	configStrArr = append(configStrArr, "Upload:")
	configStrArr = append(configStrArr, fmt.Sprintf("  - LocalFolder: %s", c.Upload.LocalFolder))
	configStrArr = append(configStrArr, fmt.Sprintf("  - Bucket: %s", c.Upload.Bucket))
	configStrArr = append(configStrArr, fmt.Sprintf("  - Prefix: %s", c.Upload.Prefix))

	return configStrArr
}
