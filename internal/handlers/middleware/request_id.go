package middleware

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

const (
	// RequestIDHeader é o header HTTP usado para correlacionar requisições
	RequestIDHeader = "X-Request-ID"

	// RequestIDContextKey é a chave do request id no contexto do Gin
	RequestIDContextKey = "request_id"
)

// RequestID reaproveita o X-Request-ID recebido ou gera um UUID novo,
// guarda no contexto e devolve no header da resposta
func RequestID() gin.HandlerFunc {
	return func(c *gin.Context) {
		requestID := c.GetHeader(RequestIDHeader)
		if requestID == "" {
			requestID = uuid.NewString()
		}

		c.Set(RequestIDContextKey, requestID)
		c.Header(RequestIDHeader, requestID)

		c.Next()
	}
}

// GetRequestID retorna o request id da requisição, ou vazio
func GetRequestID(c *gin.Context) string {
	return c.GetString(RequestIDContextKey)
}
