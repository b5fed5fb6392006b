// Package config собирает настройки iikoctl из окружения.
//
// Переменные можно положить в .env рядом с бинарником: LoadDotEnv
// подхватывает его через godotenv, не перезаписывая уже заданные
// переменные. Флаги командной строки применяются поверх (cmd/iikoctl).
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"

	"github.com/shaiso/iikoctl/internal/iiko"
	"github.com/shaiso/iikoctl/internal/store"
)

// Переменные окружения.
const (
	EnvAPIURL        = "IIKO_API_URL"
	EnvAPILogin      = "IIKO_API_LOGIN"
	EnvTimeout       = "IIKO_TIMEOUT"
	EnvMenuDir       = "IIKO_MENU_DIR"
	EnvMenuTTL       = "IIKO_MENU_TTL"
	EnvMetricsFile   = "IIKO_METRICS_FILE"
	EnvDBURL         = "DB_URL"
	EnvRabbitMQURL   = "RABBITMQ_URL"
	EnvRedisAddr     = "REDIS_ADDR"
	EnvRedisPassword = "REDIS_PASSWORD"
	EnvRedisDB       = "REDIS_DB"
)

// Config — настройки клиента и необязательной инфраструктуры.
// Пустой DBURL, RabbitMQURL или RedisAddr отключает соответствующий компонент.
type Config struct {
	APIURL      string
	APILogin    string
	Timeout     time.Duration
	MenuDir     string
	MetricsFile string

	DBURL       string
	RabbitMQURL string

	RedisAddr     string
	RedisPassword string
	RedisDB       int
	MenuTTL       time.Duration
}

// Default возвращает настройки по умолчанию.
func Default() Config {
	return Config{
		APIURL:  iiko.DefaultBaseURL,
		Timeout: iiko.DefaultTimeout,
		MenuDir: ".",
		MenuTTL: store.DefaultMenuTTL,
	}
}

// LoadDotEnv загружает переменные из файлов (по умолчанию .env).
// Отсутствующий файл не считается ошибкой.
func LoadDotEnv(files ...string) error {
	if len(files) == 0 {
		files = []string{".env"}
	}
	for _, f := range files {
		if err := godotenv.Load(f); err != nil {
			if errors.Is(err, fs.ErrNotExist) {
				continue
			}
			return fmt.Errorf("load %s: %w", f, err)
		}
	}
	return nil
}

// FromEnv читает Config из окружения поверх Default.
func FromEnv() (Config, error) {
	cfg := Default()

	if v := os.Getenv(EnvAPIURL); v != "" {
		cfg.APIURL = v
	}
	cfg.APILogin = os.Getenv(EnvAPILogin)
	if v := os.Getenv(EnvMenuDir); v != "" {
		cfg.MenuDir = v
	}
	cfg.MetricsFile = os.Getenv(EnvMetricsFile)
	cfg.DBURL = os.Getenv(EnvDBURL)
	cfg.RabbitMQURL = os.Getenv(EnvRabbitMQURL)
	cfg.RedisAddr = os.Getenv(EnvRedisAddr)
	cfg.RedisPassword = os.Getenv(EnvRedisPassword)

	var err error
	if cfg.Timeout, err = duration(EnvTimeout, cfg.Timeout); err != nil {
		return cfg, err
	}
	if cfg.MenuTTL, err = duration(EnvMenuTTL, cfg.MenuTTL); err != nil {
		return cfg, err
	}
	if v := os.Getenv(EnvRedisDB); v != "" {
		db, err := strconv.Atoi(v)
		if err != nil || db < 0 {
			return cfg, fmt.Errorf("%s: invalid database number %q", EnvRedisDB, v)
		}
		cfg.RedisDB = db
	}

	return cfg, nil
}

// duration читает положительную длительность; пусто — def.
func duration(key string, def time.Duration) (time.Duration, error) {
	v := os.Getenv(key)
	if v == "" {
		return def, nil
	}
	d, err := time.ParseDuration(v)
	if err != nil || d <= 0 {
		return def, fmt.Errorf("%s: invalid duration %q", key, v)
	}
	return d, nil
}
