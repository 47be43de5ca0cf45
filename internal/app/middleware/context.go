package middleware

import (
	"github.com/gin-gonic/gin"
)

const (
	ctxToken      = "token"
	ctxPublisher  = "publisher"
	ctxCanPublish = "can_publish"
	ctxExpiresAt  = "expires_at"
)

// GetPublisher возвращает имя издателя из контекста
func GetPublisher(c *gin.Context) (string, bool) {
	publisher, exists := c.Get(ctxPublisher)
	if !exists {
		return "", false
	}
	return publisher.(string), true
}

// GetToken возвращает исходную строку токена
func GetToken(c *gin.Context) (string, bool) {
	token, exists := c.Get(ctxToken)
	if !exists {
		return "", false
	}
	return token.(string), true
}

// GetExpiresAt возвращает время истечения токена (unix)
func GetExpiresAt(c *gin.Context) int64 {
	exp, exists := c.Get(ctxExpiresAt)
	if !exists {
		return 0
	}
	return exp.(int64)
}

// CanPublish проверяет право публикации
func CanPublish(c *gin.Context) bool {
	canPublish, exists := c.Get(ctxCanPublish)
	if !exists {
		return false
	}
	return canPublish.(bool)
}
