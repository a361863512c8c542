package api

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"

	"goalsmith/internal/config"
)

// GET /health
func healthHandler(rdb *redis.Client) gin.HandlerFunc {
	return func(c *gin.Context) {
		resp := gin.H{"status": "ok"}
		if rdb != nil {
			ctx, cancel := context.WithTimeout(c.Request.Context(), 2*time.Second)
			defer cancel()
			if err := rdb.Ping(ctx).Err(); err != nil {
				resp["redis"] = "unavailable"
			} else {
				resp["redis"] = "ok"
			}
		}
		c.JSON(http.StatusOK, resp)
	}
}

// GET /config
func configHandler(cfg *config.Config) gin.HandlerFunc {
	return func(c *gin.Context) {
		// Only return non-sensitive config fields
		c.JSON(http.StatusOK, gin.H{
			"server": gin.H{
				"host":    cfg.Server.Host,
				"port":    cfg.Server.Port,
				"subpath": cfg.Server.Subpath,
			},
			"ai": gin.H{
				"enabled": cfg.AI.APIKey != "",
				"model":   cfg.AI.Model,
			},
		})
	}
}
