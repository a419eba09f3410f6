package main

import (
	"log"

	"github.com/joho/godotenv"
	redisv9 "github.com/redis/go-redis/v9"

	"manassa_backend/internal/app/di"
	"manassa_backend/internal/app/router"
	authadapters "manassa_backend/internal/feature/auth/adapters"
	authhandler "manassa_backend/internal/feature/auth/transport/handler"
	authusecase "manassa_backend/internal/feature/auth/usecase"
	chatadapters "manassa_backend/internal/feature/chat/adapters"
	chathandler "manassa_backend/internal/feature/chat/transport/handler"
	chatusecase "manassa_backend/internal/feature/chat/usecase"
	contentadapters "manassa_backend/internal/feature/content/adapters"
	contenthandler "manassa_backend/internal/feature/content/transport/handler"
	contentusecase "manassa_backend/internal/feature/content/usecase"
	"manassa_backend/internal/platform/config"
	"manassa_backend/internal/platform/db"
	jwtmw "manassa_backend/internal/platform/jwt"
	"manassa_backend/internal/platform/kv"
	platformredis "manassa_backend/internal/platform/redis"
	"manassa_backend/internal/platform/token"
	"manassa_backend/internal/shared/ratelimit"
)

func main() {
	if err := godotenv.Load(".env"); err != nil {
		log.Println("[INFO] .env not found; using system environment variables")
	}

	cfg, err := config.Load()
	if err != nil {
		log.Fatal("failed to load config:", err)
	}
	if cfg.JWTSecret == "" {
		log.Println("[WARN] JWT_SECRET is not set. Set a strong secret in production.")
	}

	// db
	gormDB := db.OpenDB(db.Options{
		Host:          cfg.DBHost,
		Port:          cfg.DBPort,
		User:          cfg.DBUser,
		Password:      cfg.DBPassword,
		Name:          cfg.DBName,
		RunMigrations: true,
	})

	// Redis (optional)
	var rdb *redisv9.Client
	if tmp, err := platformredis.NewRedisClient(cfg.RedisAddr, cfg.RedisPassword); err != nil {
		log.Println("[WARN] Redis unavailable. Running without cache or cross-instance fan-out.")
	} else {
		rdb = tmp
		defer func() {
			if err := rdb.Close(); err != nil {
				log.Println("[ERROR] Failed to close Redis client:", err)
			}
		}()
	}

	// Local session store
	store, err := kv.NewBoltStore(cfg.DataDir, authadapters.SessionBucket)
	if err != nil {
		log.Fatal("failed to open session store:", err)
	}
	defer func() {
		if err := store.Close(); err != nil {
			log.Println("[ERROR] Failed to close session store:", err)
		}
	}()

	// Repositories
	identity := authadapters.NewIdentityGorm(gormDB)
	sessions := authadapters.NewSessionBolt(store, authadapters.DefaultSessionTTL)
	messageRepo := chatadapters.NewMessageGorm(gormDB)
	sessionRepo := chatadapters.NewChatSessionGorm(gormDB)
	banRepo := di.NewBanRepository(rdb, gormDB)
	notifier := di.NewNotifier(rdb, cfg.ChatChannel)
	articleRepo := contentadapters.NewArticleGorm(gormDB)
	projectRepo := contentadapters.NewProjectGorm(gormDB)

	// Usecases
	limiter := ratelimit.New(ratelimit.DefaultMaxAttempts, ratelimit.DefaultLockout)
	tokens := jwtmw.NewGenerator(cfg.JWTSecret, token.DefaultTTL)
	authUC := authusecase.NewAuthUsecase(identity, sessions, limiter, tokens)
	chatUC := chatusecase.NewModerationUsecase(messageRepo, sessionRepo, banRepo, notifier)
	contentUC := contentusecase.NewContentUsecase(articleRepo, projectRepo, token.NewScheme(token.DefaultTTL))

	// Handlers
	authH := authhandler.NewAuthHandler(authUC)
	chatH := chathandler.NewChatHandler(chatUC)
	contentH := contenthandler.NewContentHandler(contentUC)

	r := router.NewRouter(cfg.JWTSecret, authH, chatH, contentH)

	if err := r.Run(cfg.HTTPAddr); err != nil {
		log.Fatal(err)
	}
}
