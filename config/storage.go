package config

import (
	"os"
	"strings"
)

type StorageConfig struct {
	Region string
	Bucket string
}

func LoadStorageConfig() StorageConfig {
	LoadEnv()

	return StorageConfig{
		Region: os.Getenv("AWS_REGION"),
		Bucket: os.Getenv("AWS_S3_BUCKET"),
	}
}

// Enabled reports whether document storage is configured at all.
func (c StorageConfig) Enabled() bool {
	return strings.TrimSpace(c.Bucket) != ""
}
