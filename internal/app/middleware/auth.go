package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"halocat-queries/internal/app/repository"
	"halocat-queries/internal/app/utils"
)

const (
	jwtPrefix = "Bearer "
)

// AuthMiddleware проверяет JWT токен и добавляет издателя в контекст
func AuthMiddleware(repo *repository.Repository, secret string) gin.HandlerFunc {
	return func(c *gin.Context) {
		// Получаем заголовок Authorization
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Authorization header required"})
			c.Abort()
			return
		}

		// Проверяем формат Bearer токена
		if !strings.HasPrefix(authHeader, jwtPrefix) {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Bearer token required"})
			c.Abort()
			return
		}

		// Извлекаем токен
		tokenString := strings.TrimPrefix(authHeader, jwtPrefix)
		if tokenString == "" {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Token is empty"})
			c.Abort()
			return
		}

		// Проверяем токен в blacklist (если Redis доступен)
		if blacklist := repo.GetBlacklist(); blacklist != nil {
			inBlacklist, err := blacklist.IsInBlacklist(c.Request.Context(), tokenString)
			if err != nil {
				logrus.Error("Failed to check token in blacklist: ", err)
			} else if inBlacklist {
				c.JSON(http.StatusUnauthorized, gin.H{"error": "Token is invalidated"})
				c.Abort()
				return
			}
		}

		// Валидируем токен
		claims, err := utils.ValidateToken(tokenString, secret)
		if err != nil {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid token"})
			c.Abort()
			return
		}

		c.Set(ctxToken, tokenString)
		c.Set(ctxPublisher, claims.Publisher)
		c.Set(ctxCanPublish, claims.CanPublish)
		c.Set(ctxExpiresAt, claims.ExpiresAt)

		logrus.Debugf("Publisher authenticated: %s (can publish: %t)", claims.Publisher, claims.CanPublish)

		c.Next()
	}
}

// PublisherOnly проверяет, что токен дает право публикации
func PublisherOnly() gin.HandlerFunc {
	return func(c *gin.Context) {
		if _, exists := GetPublisher(c); !exists {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Authentication required"})
			c.Abort()
			return
		}

		if !CanPublish(c) {
			c.JSON(http.StatusForbidden, gin.H{"error": "Publish access required"})
			c.Abort()
			return
		}

		c.Next()
	}
}
