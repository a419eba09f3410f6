package db

import (
	"fmt"
	"log"
	"time"

	gpostgres "gorm.io/driver/postgres"
	"gorm.io/gorm"

	authentity "manassa_backend/internal/feature/auth/domain/entity"
	chatentity "manassa_backend/internal/feature/chat/domain/entity"
	contententity "manassa_backend/internal/feature/content/domain/entity"
)

// Options carries the connection parameters for OpenDB.
type Options struct {
	Host          string
	Port          string
	User          string
	Password      string
	Name          string
	RunMigrations bool
}

// OpenDB connects to Postgres, retrying for up to a minute so the
// server survives a database that comes up after it does.
func OpenDB(opts Options) *gorm.DB {
	dsn := fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=disable TimeZone=UTC",
		opts.Host, opts.Port, opts.User, opts.Password, opts.Name)

	var (
		db  *gorm.DB
		err error
	)

	deadline := time.Now().Add(60 * time.Second)
	for {
		db, err = gorm.Open(gpostgres.Open(dsn), &gorm.Config{TranslateError: true})
		if err == nil {
			break
		}
		if time.Now().After(deadline) {
			log.Fatalf("DB connect failed after 60s: %v", err)
		}
		log.Printf("DB connect failed, retrying...: %v", err)
		time.Sleep(3 * time.Second)
	}

	if opts.RunMigrations {
		if err := db.AutoMigrate(
			&authentity.Account{},
			&chatentity.Message{},
			&chatentity.ChatSession{},
			&chatentity.Ban{},
			&contententity.Article{},
			&contententity.Project{},
		); err != nil {
			log.Fatalf("failed to migrate: %v", err)
		}
	}

	return db
}
