package config

import (
	"flag"
	"time"

	"github.com/dmitrijs2005/plantpal/internal/flagx"
)

// parseFlags populates Config fields from command-line flags.
//
// Supported flags:
//
//	-a string   HTTP bind address (e.g. ":8080")
//	-g string   gRPC bind address (e.g. ":50051")
//	-storage    repository backend: memory, bolt, postgres
//	-d string   PostgreSQL DSN
//	-bolt       bolt database file
//	-s string   JWT HMAC secret key
//	-t int      token validity, minutes
//	-bucket     S3 bucket (empty keeps uploads in memory)
//	-e string   S3 base endpoint
//	-m string   Gemini model name
//	-l string   log file
//	-seed       seed demo data for new accounts
//
// args are filtered with flagx.FilterArgs first, so flags owned by other
// components do not cause parse errors.
func parseFlags(config *Config, args []string) {
	args = flagx.FilterArgs(args, []string{"-a", "-g", "-storage", "-d", "-bolt", "-s", "-t", "-bucket", "-e", "-m", "-l", "-seed"})

	fs := flag.NewFlagSet("main", flag.ContinueOnError)

	fs.StringVar(&config.EndpointAddrHTTP, "a", config.EndpointAddrHTTP, "HTTP address and port")
	fs.StringVar(&config.EndpointAddrGRPC, "g", config.EndpointAddrGRPC, "gRPC address and port")
	fs.StringVar(&config.Storage, "storage", config.Storage, "storage backend (memory, bolt, postgres)")
	fs.StringVar(&config.DatabaseDSN, "d", config.DatabaseDSN, "database DSN")
	fs.StringVar(&config.BoltPath, "bolt", config.BoltPath, "bolt database file")
	fs.StringVar(&config.SecretKey, "s", config.SecretKey, "secret key")

	tokenValidity := fs.Int("t", int(config.TokenValidityDuration.Minutes()), "token validity (in minutes)")

	fs.StringVar(&config.S3Bucket, "bucket", config.S3Bucket, "S3 bucket")
	fs.StringVar(&config.S3BaseEndpoint, "e", config.S3BaseEndpoint, "S3 base endpoint")
	fs.StringVar(&config.GeminiModel, "m", config.GeminiModel, "Gemini model")
	fs.StringVar(&config.LogFile, "l", config.LogFile, "log file")
	fs.BoolVar(&config.SeedDemoData, "seed", config.SeedDemoData, "seed demo data for new accounts")

	if err := fs.Parse(args); err != nil {
		panic(err)
	}

	config.TokenValidityDuration = time.Duration(*tokenValidity) * time.Minute
}
