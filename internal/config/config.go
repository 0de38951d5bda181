package config

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
)

// Config holds the deploy-time settings for the site.
type Config struct {
	// APIBaseURL is the origin of the club's REST backend.
	APIBaseURL string
	// CloudinaryCloudName identifies the Cloudinary account images go to.
	CloudinaryCloudName string
	// CloudinaryPreset is the unsigned upload preset.
	CloudinaryPreset string
	// CloudinaryUploadURL overrides the upload endpoint (mainly for tests).
	// Empty means the standard endpoint derived from the cloud name.
	CloudinaryUploadURL string
}

// Load reads configuration from the environment, honouring a .env file if
// one is present in the working directory.
func Load() (*Config, error) {
	// A missing .env file is fine; real deployments set the environment directly.
	_ = godotenv.Load()

	cfg := &Config{
		APIBaseURL:          os.Getenv("API_URL"),
		CloudinaryCloudName: os.Getenv("CLOUDINARY_CLOUD_NAME"),
		CloudinaryPreset:    os.Getenv("CLOUDINARY_PRESET"),
		CloudinaryUploadURL: os.Getenv("CLOUDINARY_UPLOAD_URL"),
	}

	if cfg.APIBaseURL == "" {
		return nil, fmt.Errorf("API_URL is not set")
	}
	if cfg.CloudinaryCloudName == "" {
		return nil, fmt.Errorf("CLOUDINARY_CLOUD_NAME is not set")
	}
	if cfg.CloudinaryPreset == "" {
		return nil, fmt.Errorf("CLOUDINARY_PRESET is not set")
	}

	return cfg, nil
}
