package main

import (
	"io"
	"os"
	"path/filepath"

	"github.com/fintrack/backend/internal/models"
	"github.com/fintrack/backend/internal/router"
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

func main() {
	// Optional .env file for local development
	_ = godotenv.Load()

	// gin uses debug as the default mode, we use release for
	// security reasons
	ginMode, ok := os.LookupEnv("GIN_MODE")
	if !ok {
		gin.SetMode("release")
	} else {
		gin.SetMode(ginMode)
	}

	// Log format can be explicitly set.
	// If it is not set, it defaults to human readable for development
	// and JSON for release
	logFormat, ok := os.LookupEnv("LOG_FORMAT")
	output := io.Writer(os.Stdout)
	if (!ok && gin.IsDebugging()) || (ok && logFormat == "human") {
		output = zerolog.ConsoleWriter{Out: os.Stdout}
	}

	zerolog.SetGlobalLevel(zerolog.InfoLevel)
	if gin.IsDebugging() {
		zerolog.SetGlobalLevel(zerolog.DebugLevel)
	}
	log.Logger = log.Output(output).With().Timestamp().Logger()

	dbFile, ok := os.LookupEnv("DB_FILE")
	if !ok {
		// Create the data directory
		dataDir := filepath.Join(".", "data")
		err := os.MkdirAll(dataDir, os.ModePerm)
		if err != nil {
			log.Fatal().Msg(err.Error())
		}

		dbFile = filepath.Join(dataDir, "fintrack.db?_pragma=foreign_keys(1)")
	}

	// Connect to the database and migrate the schema
	err := models.Connect(dbFile)
	if err != nil {
		log.Fatal().Msg(err.Error())
	}

	// The default categories are shared by all users and exist exactly once
	err = models.SeedDefaultCategories()
	if err != nil {
		log.Fatal().Msg(err.Error())
	}

	r, err := router.Config()
	if err != nil {
		log.Fatal().Msg(err.Error())
	}

	router.AttachRoutes(r.Group("/"))

	log.Info().Msg("backend startup complete")

	if err := r.Run(); err != nil {
		log.Fatal().Msg(err.Error())
	}
}
