package config

import (
	"log"
	"os"

	"github.com/joho/godotenv"
)

// Config is everything the storefront reads from the environment.
type Config struct {
	Port           string
	BackendBaseURL string
	VendorAIURL    string
	UseVendorAI    bool
	RedisAddr      string // empty disables the cart mirror
	DisplayLocale  string
}

// Load reads .env when present, then the process environment.
func Load() Config {
	if err := godotenv.Load(); err != nil {
		log.Printf("no .env file loaded: %v. Relying on system environment variables.", err)
	}

	return Config{
		Port:           getenv("PORT", "8080"),
		BackendBaseURL: getenv("SHOP_API_URL", "http://127.0.0.1:5000"),
		VendorAIURL:    os.Getenv("VENDOR_AI_URL"),
		UseVendorAI:    os.Getenv("USE_VENDOR_AI") == "true",
		RedisAddr:      os.Getenv("REDIS_ADDR"),
		DisplayLocale:  getenv("DISPLAY_LOCALE", "en"),
	}
}

func getenv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
