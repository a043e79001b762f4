package config

import (
	"fmt"
	"path"
	"time"

	"github.com/gamenight/server/internal/modules/env"

	"go.uber.org/zap"
)

const (
	PortEnv          = "PORT"
	RootPathEnv      = "ROOT_PATH"
	PublicBaseURLEnv = "PUBLIC_BASE_URL"
	GameAPIURLEnv    = "GAME_API_URL"

	SessionStoreEnv = "SESSION_STORE"
	DatabaseUrlEnv  = "DATABASE_URL"
	RedisUrlEnv     = "REDIS_URL"
	SessionTTLEnv   = "SESSION_TTL"

	KeepaliveURLEnv      = "KEEPALIVE_URL"
	KeepaliveIntervalEnv = "KEEPALIVE_INTERVAL"
)

// Store backends selectable via SESSION_STORE.
const (
	StorePostgres = "postgres"
	StoreRedis    = "redis"
	StoreMemory   = "memory"
)

type Config struct {
	Logger *zap.Logger

	Port          int
	PublicBaseURL string
	GameAPIURL    string

	SessionStore   string
	DatabaseURL    string
	RedisURL       string
	MigrationsPath string
	SessionTTL     time.Duration

	KeepaliveURL      string
	KeepaliveInterval time.Duration
}

func Load() (Config, error) {
	logger, err := zap.NewProduction()
	if err != nil {
		return Config{}, err
	}

	port := env.GetIntOrDefault(PortEnv, 8080)
	publicBaseURL := env.GetStringOrDefault(PublicBaseURLEnv, fmt.Sprintf("http://localhost:%d", port))

	sessionStore := env.GetStringOrDefault(SessionStoreEnv, StorePostgres)
	switch sessionStore {
	case StorePostgres, StoreRedis, StoreMemory:
	default:
		return Config{}, fmt.Errorf("unknown %s value - '%s'", SessionStoreEnv, sessionStore)
	}

	rootPath := env.GetStringOrDefault(RootPathEnv, ".")

	return Config{
		Logger:         logger,
		Port:           port,
		PublicBaseURL:  publicBaseURL,
		GameAPIURL:     env.GetStringOrDefault(GameAPIURLEnv, "https://boardgamegeek.com/jsonapi"),
		SessionStore:   sessionStore,
		DatabaseURL:    env.GetStringOrDefault(DatabaseUrlEnv, ""),
		RedisURL:       env.GetStringOrDefault(RedisUrlEnv, ""),
		MigrationsPath: path.Join(rootPath, "db", "migrations"),
		SessionTTL:     env.GetDurationOrDefault(SessionTTLEnv, 24*time.Hour),

		KeepaliveURL:      env.GetStringOrDefault(KeepaliveURLEnv, ""),
		KeepaliveInterval: env.GetDurationOrDefault(KeepaliveIntervalEnv, 5*time.Minute),
	}, nil
}
