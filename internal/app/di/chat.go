// Package di provides dependency injection factories for creating
// application components.
package di

import (
	"time"

	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"

	chatadapters "manassa_backend/internal/feature/chat/adapters"
	"manassa_backend/internal/feature/chat/usecase"
)

// NewBanRepository creates a BanRepository implementation. If Redis is
// available the gorm repository is wrapped in the caching decorator;
// otherwise lookups go straight to the database.
func NewBanRepository(rdb *redis.Client, db *gorm.DB) usecase.BanRepository {
	inner := chatadapters.NewBanGorm(db)
	if rdb != nil {
		return chatadapters.NewCachingBanRepository(rdb, 30*time.Second, inner, "bans")
	}
	return inner
}

// NewNotifier creates a Notifier implementation. With Redis, change
// notifications fan out across server instances over Pub/Sub; without
// it, they stay in-process.
func NewNotifier(rdb *redis.Client, channel string) usecase.Notifier {
	if rdb != nil {
		return chatadapters.NewRedisNotifier(rdb, channel)
	}
	return chatadapters.NewMemoryNotifier()
}
