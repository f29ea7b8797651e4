package handler

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"

	"github.com/Estefan29/frontend-eventos-sub000/internal/infra"
	"github.com/Estefan29/frontend-eventos-sub000/internal/remote"
)

// Health checks Redis, the remote events API, and the mailer circuit
// breaker. It never exposes credentials or upstream URLs.
func Health(rdb *redis.Client, api *remote.Client, mailCB *infra.CircuitBreaker) gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx, cancel := context.WithTimeout(c.Request.Context(), 3*time.Second)
		defer cancel()

		redisStatus := "connected"
		if rdb.Ping(ctx).Err() != nil {
			redisStatus = "error"
		}

		apiStatus := "reachable"
		if api.Ping(ctx) != nil {
			apiStatus = "error"
		}

		status := http.StatusOK
		if redisStatus != "connected" || apiStatus != "reachable" {
			status = http.StatusServiceUnavailable
		}

		c.JSON(status, gin.H{
			"ok":      status == http.StatusOK,
			"redis":   redisStatus,
			"api":     apiStatus,
			"mail_cb": mailCB.State().String(),
		})
	}
}
