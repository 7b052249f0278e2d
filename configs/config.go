package configs

import (
	"log"
	"os"

	"github.com/joho/godotenv"
)

type Config struct {
	MongoURI      string
	MongoDB       string
	Port          string
	JWTSecret     string
	ClientURL     string
	SecureCookies bool
}

func getEnv(key, fallback string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return fallback
}

// LoadConfig reads .env (values there win over the inherited environment)
// and fills in defaults suitable for local development. JWT_SECRET has no
// default; main refuses to start without it.
func LoadConfig() Config {
	if err := godotenv.Overload(".env"); err != nil {
		log.Println("No .env file found, using system environment variables")
	}

	return Config{
		MongoURI:      getEnv("MONGO_URI", "mongodb://127.0.0.1:27017"),
		MongoDB:       getEnv("MONGO_DB", "fake_so"),
		Port:          getEnv("PORT", "8000"),
		JWTSecret:     os.Getenv("JWT_SECRET"),
		ClientURL:     getEnv("CLIENT_URL", "http://localhost:3000"),
		SecureCookies: getEnv("ENV", "") == "production",
	}
}
