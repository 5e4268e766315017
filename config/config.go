package config

import (
	"log"
	"os"

	"github.com/joho/godotenv"
)

// Load reads .env if present. The nutrition tables are compiled in; only
// the collaborator credentials (HUGGINGFACE_TOKEN, AWS_REGION) and the
// listen address come from the environment.
func Load() {
	if err := godotenv.Load(); err != nil {
		log.Println("no .env file found, relying on process environment")
	}
}

// ListenAddr returns the HTTP listen address, defaulting to :8080.
func ListenAddr() string {
	if addr := os.Getenv("LISTEN_ADDR"); addr != "" {
		return addr
	}
	return ":8080"
}
