package main

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/go-redis/redis/v8"

	"github.com/VittaServices/marketplace-api/internal/config"
	dbpkg "github.com/VittaServices/marketplace-api/internal/db"
	"github.com/VittaServices/marketplace-api/internal/logger"
	"github.com/VittaServices/marketplace-api/internal/routes"
)

func main() {

	cfg := config.Load()
	log := logger.New(cfg.LogLevel)

	db, err := dbpkg.NewDB(cfg)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to connect database")
	}

	var rdb *redis.Client
	if cfg.RedisAddr != "" {
		rdb = redis.NewClient(&redis.Options{
			Addr:     cfg.RedisAddr,
			Password: cfg.RedisPassword,
			DB:       cfg.RedisDB,
		})

		ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
		if err := rdb.Ping(ctx).Err(); err != nil {
			log.Warn().Err(err).Msg("redis unavailable, availability cache disabled")
			rdb = nil
		}
		cancel()
	}

	r := gin.Default()

	r.GET("/health", func(c *gin.Context) {
		sqlDB, err := db.DB()
		if err != nil || sqlDB.Ping() != nil {
			c.JSON(http.StatusServiceUnavailable, gin.H{"status": "db unavailable"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	routes.RegisterRoutes(r, db, rdb, cfg, log)

	log.Info().Str("addr", cfg.Addr()).Msg("server running")
	if err := r.Run(cfg.Addr()); err != nil {
		log.Fatal().Err(err).Msg("failed to start server")
	}
}
