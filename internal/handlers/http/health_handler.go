package http

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/rafabene/users-api/internal/domain/ports"
	"github.com/rafabene/users-api/internal/handlers/dto"
)

// PingFunc verifica se o banco responde
type PingFunc func(ctx context.Context) error

// HealthHandler expõe a rota raiz e o health check
type HealthHandler struct {
	env    string
	ping   PingFunc
	logger ports.Logger
}

func NewHealthHandler(env string, ping PingFunc, logger ports.Logger) *HealthHandler {
	return &HealthHandler{env: env, ping: ping, logger: logger}
}

// Welcome retorna a mensagem de boas-vindas traduzida
func (h *HealthHandler) Welcome(c *gin.Context) {
	c.JSON(http.StatusOK, dto.MessageResponse{Message: dto.T(c, "welcome")})
}

// CheckHealth retorna 200 quando o banco responde e 503 caso contrário
func (h *HealthHandler) CheckHealth(c *gin.Context) {
	ctx, cancel := context.WithTimeout(c.Request.Context(), 2*time.Second)
	defer cancel()

	start := time.Now()
	if err := h.ping(ctx); err != nil {
		h.logger.Error("health check failed", "check", "database", "error", err)
		dto.WriteProblem(c, dto.UnavailableErrorResponseI18n(c))
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"status": "ok",
		"env":    h.env,
		"checks": gin.H{
			"database": gin.H{
				"status":        "healthy",
				"response_time": time.Since(start).String(),
			},
		},
	})
}
