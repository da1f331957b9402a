package config

import (
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

// Environment variables read by parseEnv.
const (
	EnvHTTPAddr      = "PLANTPAL_HTTP_ADDR"
	EnvGRPCAddr      = "PLANTPAL_GRPC_ADDR"
	EnvStorage       = "PLANTPAL_STORAGE"
	EnvDatabaseDSN   = "PLANTPAL_DATABASE_DSN"
	EnvBoltPath      = "PLANTPAL_BOLT_PATH"
	EnvSecretKey     = "PLANTPAL_SECRET_KEY"
	EnvTokenValidity = "PLANTPAL_TOKEN_VALIDITY"
	EnvS3Bucket      = "PLANTPAL_S3_BUCKET"
	EnvS3Endpoint    = "PLANTPAL_S3_ENDPOINT"
	EnvS3User        = "PLANTPAL_S3_USER"
	EnvS3Password    = "PLANTPAL_S3_PASSWORD"
	EnvLogFile       = "PLANTPAL_LOG_FILE"
	EnvSeedDemoData  = "PLANTPAL_SEED_DEMO_DATA"
	EnvGeminiAPIKey  = "GEMINI_API_KEY"
	EnvAPIKey        = "API_KEY"
)

// envFiles are loaded, when present, before the environment is read.
// Variables already set in the process win over file values.
var envFiles = []string{".env"}

func parseEnv(config *Config) {
	for _, f := range envFiles {
		if _, err := os.Stat(f); err == nil {
			if err := godotenv.Load(f); err != nil {
				panic(err)
			}
		}
	}

	setString(&config.EndpointAddrHTTP, os.Getenv(EnvHTTPAddr))
	setString(&config.EndpointAddrGRPC, os.Getenv(EnvGRPCAddr))
	setString(&config.Storage, os.Getenv(EnvStorage))
	setString(&config.DatabaseDSN, os.Getenv(EnvDatabaseDSN))
	setString(&config.BoltPath, os.Getenv(EnvBoltPath))
	setString(&config.SecretKey, os.Getenv(EnvSecretKey))
	setString(&config.S3Bucket, os.Getenv(EnvS3Bucket))
	setString(&config.S3BaseEndpoint, os.Getenv(EnvS3Endpoint))
	setString(&config.S3RootUser, os.Getenv(EnvS3User))
	setString(&config.S3RootPassword, os.Getenv(EnvS3Password))
	setString(&config.LogFile, os.Getenv(EnvLogFile))
	setString(&config.GeminiAPIKey, os.Getenv(EnvAPIKey))
	setString(&config.GeminiAPIKey, os.Getenv(EnvGeminiAPIKey))

	if v := os.Getenv(EnvTokenValidity); v != "" {
		d, err := time.ParseDuration(v)
		if err != nil {
			panic(err)
		}
		config.TokenValidityDuration = d
	}
	if v := os.Getenv(EnvSeedDemoData); v != "" {
		b, err := strconv.ParseBool(v)
		if err != nil {
			panic(err)
		}
		config.SeedDemoData = b
	}
}
