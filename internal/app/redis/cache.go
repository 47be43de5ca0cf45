package redis

import (
	"context"
	"fmt"
	"time"
)

const (
	// Префиксы для ключей Redis
	blacklistPrefix = "jwt:blacklist:"
	queryListPrefix = "queries:list:"
)

// GetList возвращает закэшированное тело списка запросов
func (c *Client) GetList(ctx context.Context, key string) (string, error) {
	return c.Get(ctx, queryListPrefix+key)
}

// SetList кэширует тело списка запросов
func (c *Client) SetList(ctx context.Context, key, body string, ttl time.Duration) error {
	return c.Set(ctx, queryListPrefix+key, body, ttl)
}

// AddToBlacklist добавляет JWT токен в черный список
func (c *Client) AddToBlacklist(ctx context.Context, token string, expiresIn time.Duration) error {
	key := blacklistPrefix + token
	return c.Set(ctx, key, "blacklisted", expiresIn)
}

// IsInBlacklist проверяет, находится ли токен в черном списке
func (c *Client) IsInBlacklist(ctx context.Context, token string) (bool, error) {
	key := blacklistPrefix + token
	exists, err := c.Exists(ctx, key)
	if err != nil {
		return false, fmt.Errorf("failed to check blacklist: %v", err)
	}
	return exists, nil
}
