package main

import (
	"errors"
	"log"
	"os"

	"github.com/joho/godotenv"
	"github.com/projecto-dev/projecto/db"
	"github.com/projecto-dev/projecto/internal/accounts"
	"github.com/projecto-dev/projecto/internal/auth"
	"github.com/projecto-dev/projecto/internal/models"
	"github.com/projecto-dev/projecto/internal/router"
	"gorm.io/gorm"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, reading configuration from environment")
	}

	dsn := os.Getenv("DATABASE_URL")

	if dsn == "" {
		log.Fatal("DATABASE_URL environment variable is not set")
	}

	if err := db.ConnectDatabase(dsn); err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}

	if err := db.MigrateDatabase(); err != nil {
		log.Fatalf("Failed to migrate database: %v", err)
	}

	if err := auth.InitJWTSecret(); err != nil {
		log.Fatalf("Failed to initialize JWT: %v", err)
	}

	if err := seedSuperuser(); err != nil {
		log.Fatalf("Failed to provision admin account: %v", err)
	}

	r := router.NewRouter()

	var port string

	if port = os.Getenv("PORT"); port == "" {
		port = "8000"
		log.Println("PORT not set, defaulting to 8000")
	}

	if err := r.Run(":" + port); err != nil {
		log.Fatalf("Failed to start server: %v", err)
	}
}

// seedSuperuser provisions the administrative account from ADMIN_EMAIL and
// ADMIN_PASSWORD. A no-op when the variables are unset or the account
// already exists.
func seedSuperuser() error {
	email := os.Getenv("ADMIN_EMAIL")
	password := os.Getenv("ADMIN_PASSWORD")

	if email == "" || password == "" {
		return nil
	}

	var existing models.User

	err := db.DB.Where("email = ?", accounts.NormalizeEmail(email)).First(&existing).Error

	if err == nil {
		return nil
	}

	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return err
	}

	firstName := os.Getenv("ADMIN_FIRSTNAME")

	if firstName == "" {
		firstName = "Admin"
	}

	lastName := os.Getenv("ADMIN_LASTNAME")

	if lastName == "" {
		lastName = "User"
	}

	_, err = accounts.CreateSuperuser(db.DB, accounts.CreateUserParams{
		FirstName: firstName,
		LastName:  lastName,
		Email:     email,
		Password:  password,
	})

	if err == nil {
		log.Printf("Provisioned admin account %s", accounts.NormalizeEmail(email))
	}

	return err
}
