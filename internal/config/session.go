package config

import (
	"os"
	"strconv"
	"sync"
)

type SessionConfig struct {
	Secret     string
	CookieName string
	Issuer     string
}

var (
	sessionConfig *SessionConfig
	sessionOnce   sync.Once
)

func LoadSessionConfig() *SessionConfig {
	sessionOnce.Do(func() {
		cookie := os.Getenv("SESSION_COOKIE_NAME")
		if cookie == "" {
			cookie = "careerlens_session"
		}
		issuer := os.Getenv("SESSION_ISSUER")
		if issuer == "" {
			issuer = "careerlens-auth"
		}
		sessionConfig = &SessionConfig{
			Secret:     os.Getenv("SESSION_SECRET"),
			CookieName: cookie,
			Issuer:     issuer,
		}
	})
	return sessionConfig
}

type RedisConfig struct {
	Addr     string
	Password string
	DB       int
}

var (
	redisConfig *RedisConfig
	redisOnce   sync.Once
)

func LoadRedisConfig() *RedisConfig {
	redisOnce.Do(func() {
		addr := os.Getenv("REDIS_ADDR")
		if addr == "" {
			addr = "localhost:6379"
		}
		db, _ := strconv.Atoi(os.Getenv("REDIS_DB"))
		redisConfig = &RedisConfig{
			Addr:     addr,
			Password: os.Getenv("REDIS_PASSWORD"),
			DB:       db,
		}
	})
	return redisConfig
}
