package config

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

var (
	Addr = ":8080"

	// Content settings
	ContentPath    = "./content"
	SiteConfigPath = "./site.yml"
	StaticPath     = "./static"

	// Contact form settings
	FormEndpoint = ""
	FormTimeout  = 10 * time.Second
)

func Init() {
	if err := godotenv.Load(); err != nil {
		fmt.Println("No .env file found or error loading it.")
	}

	// Helper to get env with default
	getEnv := func(key, fallback string) string {
		if v := os.Getenv(key); v != "" {
			return v
		}
		return fallback
	}

	Addr = getEnv("ADDR", ":8080")

	ContentPath = getEnv("CONTENT_PATH", "./content")
	SiteConfigPath = getEnv("SITE_CONFIG_PATH", "./site.yml")
	StaticPath = getEnv("STATIC_PATH", "./static")

	FormEndpoint = getEnv("FORM_ENDPOINT", "")

	if ft := os.Getenv("FORM_TIMEOUT_SECONDS"); ft != "" {
		if val, err := strconv.Atoi(ft); err == nil {
			FormTimeout = time.Duration(val) * time.Second
		}
	}
}
