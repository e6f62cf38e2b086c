package config

import (
	"fmt"
	"time"

	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
)

// Config собирает все настройки приложения из переменных окружения.
// Разделитель секций — "__", например DATABASE__PATH.
type Config struct {
	BotToken string `envconfig:"BOT_TOKEN" required:"true"` // Токен бота
	Debug    bool   `envconfig:"DEBUG" default:"false"`     // Отключает rate limiter

	Database DatabaseConfig
	Redis    RedisConfig
}

type DatabaseConfig struct {
	Path string `envconfig:"DATABASE__PATH" required:"true"` // Путь к файлу sqlite
}

type RedisConfig struct {
	URL              string `envconfig:"REDIS__URL" required:"true"`
	RateLimit        uint16 `envconfig:"REDIS__RATE_LIMIT" default:"5"`          // Запросов на окно
	RateIntervalSecs uint64 `envconfig:"REDIS__RATE_INTERVAL_SECS" default:"10"` // Длина окна в секундах
}

// RateInterval возвращает длину окна rate limiter'а как time.Duration.
func (r RedisConfig) RateInterval() time.Duration {
	return time.Duration(r.RateIntervalSecs) * time.Second
}

// Load читает .env (если есть) и собирает конфигурацию из окружения.
func Load() (*Config, error) {
	// .env опционален: в проде переменные задаются окружением
	_ = godotenv.Load()

	cfg := &Config{}
	if err := envconfig.Process("", cfg); err != nil {
		return nil, fmt.Errorf("не удалось собрать конфигурацию: %w", err)
	}
	return cfg, nil
}
