package config

import (
	"log"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

type Config struct {
	DBPath string

	// GuestUserID is the sentinel identity used when nobody is logged in.
	// Several tables deliberately carry no foreign key to users so that
	// guest-authored rows are accepted.
	GuestUserID string

	SeedOnStart bool
}

func LoadConfig() (*Config, error) {
	err := godotenv.Load()
	if err != nil {
		log.Println("No .env file found or error loading it, relying on environment variables")
	}

	dbPath := os.Getenv("DB_PATH")
	if dbPath == "" {
		dbPath = "data/cinelog.db"
	}

	guestUserID := os.Getenv("GUEST_USER_ID")
	if guestUserID == "" {
		guestUserID = "guest"
	}

	seedOnStart := true
	if v := os.Getenv("SEED_ON_START"); v != "" {
		parsed, err := strconv.ParseBool(v)
		if err == nil {
			seedOnStart = parsed
		}
	}

	return &Config{
		DBPath:      dbPath,
		GuestUserID: guestUserID,
		SeedOnStart: seedOnStart,
	}, nil
}
