// Package main provides the forecast API HTTP server.
package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/praiaforecast/forecast-api/internal/adapter/blobstore"
	"github.com/praiaforecast/forecast-api/internal/adapter/sqlstore"
	httpHandler "github.com/praiaforecast/forecast-api/internal/http"
	"github.com/praiaforecast/forecast-api/internal/usecase"
)

const version = "0.1.0"

func main() {
	showHelp := flag.Bool("help", false, "Show usage information")
	showVersion := flag.Bool("version", false, "Show version information")
	flag.Parse()

	if *showHelp {
		printUsage()
		return
	}
	if *showVersion {
		fmt.Printf("forecast-api version %s\n", version)
		return
	}

	if err := godotenv.Load(); err != nil {
		log.Debug().Msg("no .env file found, relying on process environment")
	}

	zerolog.TimeFieldFormat = zerolog.TimeFormatUnix
	log.Logger = log.Output(os.Stderr)

	// Load configuration from environment.
	port := getEnv("PORT", "8080")
	region := getEnv("REGION", "default")
	dsn := getEnv("DATABASE_URL", "")
	bucket := getEnv("BLOB_BUCKET", "")
	awsRegion := getEnv("AWS_REGION", "")
	awsAccessKey := getEnv("AWS_ACCESS_KEY_ID", "")
	awsSecretKey := getEnv("AWS_SECRET_ACCESS_KEY", "")

	if dsn == "" {
		log.Fatal().Msg("DATABASE_URL is required")
	}
	if bucket == "" {
		log.Fatal().Msg("BLOB_BUCKET is required")
	}

	log.Info().Str("port", port).Str("region", region).Msg("starting forecast-api server")

	resolver := sqlstore.NewResolver(dsn)
	defer resolver.Close()

	blobs := blobstore.NewClient(bucket)
	blobs.Region = awsRegion
	blobs.AccessKey = awsAccessKey
	blobs.SecretKey = awsSecretKey

	assembler := usecase.NewForecastAssembler(resolver, blobs)

	router := httpHandler.SetupRouter(assembler, resolver, region)

	addr := fmt.Sprintf(":%s", port)
	log.Info().Str("addr", addr).Msg("server listening")
	log.Info().Msg("endpoints: GET /health, GET /forecast, GET /locations, GET /geolocation/nearest-spots, GET /geolocation/search")

	if err := router.Run(addr); err != nil {
		log.Fatal().Err(err).Msg("server failed")
	}
}

// getEnv retrieves an environment variable or returns a default value.
func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

// printUsage prints usage information.
func printUsage() {
	fmt.Printf("Forecast API Server v%s\n\n", version)
	fmt.Println("USAGE:")
	fmt.Println("  forecast-api [flags]")
	fmt.Println()
	fmt.Println("FLAGS:")
	fmt.Println("  -help          Show this help message")
	fmt.Println("  -version       Show version information")
	fmt.Println()
	fmt.Println("ENVIRONMENT VARIABLES:")
	fmt.Println("  PORT                    Server port (default: 8080)")
	fmt.Println("  REGION                  Logical deployment region label (default: default)")
	fmt.Println("  DATABASE_URL            PostgreSQL connection string (required)")
	fmt.Println("  BLOB_BUCKET             S3 bucket holding encoded layer files (required)")
	fmt.Println("  AWS_REGION              AWS region override for the blob client")
	fmt.Println("  AWS_ACCESS_KEY_ID       Explicit AWS access key (optional, defaults to SDK credential chain)")
	fmt.Println("  AWS_SECRET_ACCESS_KEY   Explicit AWS secret key (optional, defaults to SDK credential chain)")
	fmt.Println()
	fmt.Println("API ENDPOINTS:")
	fmt.Println("  GET /health                          Health check")
	fmt.Println("  GET /forecast                         Assemble a forecast document")
	fmt.Println("  GET /locations                        Hierarchical region/spot tree")
	fmt.Println("  GET /geolocation/nearest-spots         Spots within range of lat/long")
	fmt.Println("  GET /geolocation/search                 Locations matching a name")
	fmt.Println()
}
