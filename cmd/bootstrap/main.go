// Command bootstrap creates or promotes the initial admin account so a
// fresh deployment has a way into the admin surface.
package main

import (
	"context"
	"errors"
	"log"
	"os"
	"time"

	"github.com/joho/godotenv"

	authadapters "manassa_backend/internal/feature/auth/adapters"
	"manassa_backend/internal/feature/auth/domain"
	"manassa_backend/internal/feature/auth/domain/entity"
	"manassa_backend/internal/platform/config"
	"manassa_backend/internal/platform/db"
	"manassa_backend/internal/shared/validation"
)

func main() {
	if err := godotenv.Load(".env"); err != nil {
		log.Println("[INFO] .env not found; using system environment variables")
	}

	email := os.Getenv("ADMIN_EMAIL")
	password := os.Getenv("ADMIN_PASSWORD")
	name := os.Getenv("ADMIN_NAME")
	if name == "" {
		name = "Admin"
	}

	if !validation.ValidEmail(email) {
		log.Fatal("ADMIN_EMAIL is missing or not a valid email address")
	}
	if !validation.ValidPassword(password) {
		log.Fatal("ADMIN_PASSWORD must be at least 8 characters with a letter and a digit")
	}

	cfg, err := config.Load()
	if err != nil {
		log.Fatal("failed to load config:", err)
	}

	gormDB := db.OpenDB(db.Options{
		Host:          cfg.DBHost,
		Port:          cfg.DBPort,
		User:          cfg.DBUser,
		Password:      cfg.DBPassword,
		Name:          cfg.DBName,
		RunMigrations: true,
	})

	ctx, cancel := context.WithTimeout(context.Background(), time.Minute)
	defer cancel()

	identity := authadapters.NewIdentityGorm(gormDB)

	acct, err := identity.CreateAccount(ctx, email, password, name)
	switch {
	case err == nil:
		// Newly created; promote below.
	case errors.Is(err, domain.ErrEmailInUse):
		log.Println("account already exists; promoting to admin")
	default:
		log.Fatal("failed to create account:", err)
	}

	res := gormDB.WithContext(ctx).Model(&entity.Account{}).
		Where("email = ?", email).
		Update("is_admin", true)
	if res.Error != nil {
		log.Fatal("failed to promote account:", res.Error)
	}

	if acct != nil {
		log.Println("admin account created:", acct.ID)
	} else {
		log.Println("admin account promoted")
	}
}
