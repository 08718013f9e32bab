package config

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v2"
)

// Config selects the storage backend and the listen addresses. The
// backend choice is static: it is read once at startup and never
// changes while the process runs.
type Config struct {
	// Storage names the registered storage driver to use
	Storage string `yaml:"storage"`
	// HTTPAddr is the REST listen address
	HTTPAddr string `yaml:"http_addr"`
	// GRPCAddr is the gRPC listen address
	GRPCAddr string `yaml:"grpc_addr"`
	// Development switches zap to its development config
	Development bool `yaml:"development"`

	DynamoDB DynamoDBConfig `yaml:"dynamodb"`
	Bolt     BoltConfig     `yaml:"bolt"`
}

// DynamoDBConfig configures the dynamodb storage driver
type DynamoDBConfig struct {
	TableName string `yaml:"table_name"`
	Endpoint  string `yaml:"endpoint"`
	Region    string `yaml:"region"`
}

// BoltConfig configures the bolt storage driver
type BoltConfig struct {
	Path string `yaml:"path"`
}

// Default returns the configuration used when no file or environment
// overrides are present: the ephemeral in-memory backend on the
// standard ports.
func Default() Config {
	return Config{
		Storage:  "memory",
		HTTPAddr: ":8080",
		GRPCAddr: ":9090",
	}
}

// Load reads configuration from an optional YAML file, then applies
// environment variable overrides. A missing file is fine; a present
// but unreadable one is an error. A .env file in the working
// directory is honored if it exists.
func Load(path string) (Config, error) {
	godotenv.Load()

	config := Default()

	if path != "" {
		contents, err := os.ReadFile(path)

		if err != nil {
			if !os.IsNotExist(err) {
				return Config{}, fmt.Errorf("could not read config file %s: %w", path, err)
			}
		} else if err := yaml.UnmarshalStrict(contents, &config); err != nil {
			return Config{}, fmt.Errorf("could not parse config file %s: %w", path, err)
		}
	}

	applyEnv(&config)

	return config, nil
}

func applyEnv(config *Config) {
	setIfPresent(&config.Storage, "TODO_STORAGE")
	setIfPresent(&config.HTTPAddr, "TODO_HTTP_ADDR")
	setIfPresent(&config.GRPCAddr, "TODO_GRPC_ADDR")
	setIfPresent(&config.DynamoDB.TableName, "DYNAMODB_TABLE_NAME")
	setIfPresent(&config.DynamoDB.Endpoint, "DYNAMODB_ENDPOINT")
	setIfPresent(&config.DynamoDB.Region, "AWS_REGION")
	setIfPresent(&config.Bolt.Path, "TODO_BOLT_PATH")
}

func setIfPresent(target *string, name string) {
	if value := os.Getenv(name); value != "" {
		*target = value
	}
}
