package config

import (
	"fmt"
	"log"
	"os"

	"github.com/joho/godotenv"
	"github.com/kerimovok/go-pkg-utils/config"
	"gopkg.in/yaml.v3"
)

// UploadValidationConfig holds the upload gate settings
type UploadValidationConfig struct {
	MaxFileSize       int64    `yaml:"max_file_size"`
	BlockedExtensions []string `yaml:"blocked_extensions"`
}

// LocalStorageConfig holds local blob storage settings
type LocalStorageConfig struct {
	UploadDir string `yaml:"upload_dir"`
}

// FileshareConfig holds the complete service configuration
type FileshareConfig struct {
	Validation UploadValidationConfig `yaml:"validation"`
	Storage    LocalStorageConfig     `yaml:"storage"`
}

// MainConfig holds the root configuration
type MainConfig struct {
	Fileshare FileshareConfig `yaml:"fileshare"`
}

var (
	Config MainConfig
)

// LoadConfig loads the configuration from the specified path
func LoadConfig() error {
	// Load .env file if it exists
	if err := godotenv.Load(); err != nil {
		if config.GetEnv("GO_ENV") != "production" {
			log.Println("Warning: Failed to load .env file")
		}
	}

	// Read config file
	data, err := os.ReadFile("config/fileshare.yaml")
	if err != nil {
		return fmt.Errorf("failed to read config file: %w", err)
	}

	// Parse YAML
	var cfg MainConfig
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return fmt.Errorf("failed to parse config file: %w", err)
	}

	// Store config globally
	Config = cfg

	log.Println("Fileshare configuration loaded successfully from config/fileshare.yaml")
	return nil
}

// GetConfig returns the current configuration
func GetConfig() MainConfig {
	return Config
}
