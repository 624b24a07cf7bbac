package config

import (
	"errors"
	"fmt"
	"strconv"
	"time"

	"library-api/internal/infrastructure/database"
)

// envParser gom lỗi parse của nhiều biến DB_* để báo một lần
type envParser struct {
	errs []error
}

func (p *envParser) integer(key, def string) int {
	v, err := strconv.Atoi(getEnv(key, def))
	if err != nil {
		p.errs = append(p.errs, fmt.Errorf("invalid %s: %w", key, err))
	}
	return v
}

func (p *envParser) duration(key, def string) time.Duration {
	v, err := time.ParseDuration(getEnv(key, def))
	if err != nil {
		p.errs = append(p.errs, fmt.Errorf("invalid %s: %w", key, err))
	}
	return v
}

// LoadDatabaseConfig đọc DB_* env vars thành pool config.
// Mọi giá trị sai được trả về cùng lúc (errors.Join).
func LoadDatabaseConfig() (*database.DBConfig, error) {
	var p envParser

	cfg := &database.DBConfig{
		Host:     getEnv("DB_HOST", "localhost"),
		Port:     p.integer("DB_PORT", "5432"),
		Username: getEnv("DB_USER", "postgres"),
		Password: getEnv("DB_PASSWORD", ""),
		DBName:   getEnv("DB_NAME", "library"),
		SSLMode:  getEnv("DB_SSLMODE", "disable"),

		MaxConns:          int32(p.integer("DB_MAX_CONNECTIONS", "25")),
		MinConns:          int32(p.integer("DB_MIN_CONNECTIONS", "2")),
		MaxConnLifetime:   p.duration("DB_MAX_CONN_LIFETIME", "5m"),
		MaxConnIdleTime:   p.duration("DB_MAX_CONN_IDLE_TIME", "1m"),
		HealthCheckPeriod: p.duration("DB_HEALTH_CHECK_PERIOD", "1m"),

		MaxRetries:     p.integer("DB_MAX_RETRIES", "5"),
		RetryDelay:     p.duration("DB_RETRY_DELAY", "1s"),
		ConnectTimeout: p.duration("DB_CONNECT_TIMEOUT", "10s"),
	}

	if err := errors.Join(p.errs...); err != nil {
		return nil, err
	}

	if cfg.MaxRetries < 1 {
		cfg.MaxRetries = 1
	}
	return cfg, nil
}
