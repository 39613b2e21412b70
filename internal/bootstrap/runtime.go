// Package bootstrap wires up runtime dependencies for commands.
package bootstrap

import (
	"fmt"

	"campusboard/internal/cache"
	"campusboard/internal/config"
	"campusboard/internal/database"
	"campusboard/internal/seed"

	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"
)

// Options control runtime initialization behavior.
type Options struct {
	SeedDemoData bool
}

// InitRuntime connects to DB and Redis, seeds the course catalog and
// optionally demo data. The Redis client may be nil if unreachable; the
// application degrades to uncached reads.
func InitRuntime(cfg *config.Config, opts Options) (*gorm.DB, *redis.Client, error) {
	db, err := database.Connect(cfg)
	if err != nil {
		return nil, nil, fmt.Errorf("database connection failed: %w", err)
	}

	cache.InitRedis(cfg.RedisURL)
	r := cache.GetClient()

	if err := seed.Courses(db); err != nil {
		return nil, nil, fmt.Errorf("failed to seed course catalog: %w", err)
	}

	if opts.SeedDemoData {
		if err := seed.Demo(db, seed.DefaultDemoOptions()); err != nil {
			return nil, nil, fmt.Errorf("failed to seed demo data: %w", err)
		}
	}

	return db, r, nil
}
