package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/redis/go-redis/v9"
)

type HealthHandler struct {
	pool *pgxpool.Pool
	rdb  *redis.Client
}

func NewHealthHandler(pool *pgxpool.Pool, rdb *redis.Client) *HealthHandler {
	return &HealthHandler{pool: pool, rdb: rdb}
}

func (h *HealthHandler) Health(c *gin.Context) {
	dbStatus := "connected"
	cacheStatus := "connected"
	healthy := true

	if err := h.pool.Ping(c.Request.Context()); err != nil {
		dbStatus = "disconnected"
		healthy = false
	}
	if err := h.rdb.Ping(c.Request.Context()).Err(); err != nil {
		cacheStatus = "disconnected"
		healthy = false
	}

	status := http.StatusOK
	state := "healthy"
	if !healthy {
		status = http.StatusServiceUnavailable
		state = "unhealthy"
	}

	c.JSON(status, gin.H{
		"status":   state,
		"database": dbStatus,
		"cache":    cacheStatus,
	})
}
