// mktoken mints a session token for exercising the API with curl.
package main

import (
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/joho/godotenv"

	"qna_workspace/internal/middleware"
)

func main() {
	userID := flag.String("uid", "", "user id hex")
	username := flag.String("user", "", "username claim")
	flag.Parse()

	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using system environment variables")
	}

	secret := os.Getenv("JWT_SECRET")
	if secret == "" {
		log.Fatal("JWT_SECRET is required")
	}
	if *userID == "" {
		log.Fatal("-uid is required")
	}

	signed, err := middleware.SignToken(secret, *userID, *username)
	if err != nil {
		log.Fatal(err)
	}
	fmt.Println(signed)
}
