package initializers

import (
	"log"

	"github.com/joho/godotenv"
)

// LoadEnvVariables reads a .env file if one is present. Missing files are
// fine in production where the environment is set by the runtime.
func LoadEnvVariables() {
	if err := godotenv.Load(); err != nil {
		log.Println("no .env file found, using process environment")
	}
}
