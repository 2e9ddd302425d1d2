package app

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/vladislavdragonenkov/crm/internal/service/seed"
)

// Config описывает настройки запуска приложения. Параметры посева —
// отдельная забота старта процесса, ядро в стационарном режиме их не видит.
type Config struct {
	// MetricsAddr — адрес HTTP-сервера метрик и health-проверок.
	MetricsAddr string
	// SeedFile — путь к YAML-файлу с параметрами посева (опционально).
	SeedFile string
	// SeedNames — имена клиентов для посева.
	SeedNames []string
	// MaxOrdersPerCustomer — верхняя граница числа заказов на клиента.
	MaxOrdersPerCustomer int
	// EventInterval — пауза между событиями подписки.
	EventInterval time.Duration
	// EventCount — число событий на одну подписку.
	EventCount int
	// RandSeed задаёт seed для источников случайности; 0 — от часов.
	RandSeed int64
}

// DefaultConfig возвращает настройки по умолчанию.
func DefaultConfig() Config {
	return Config{
		MetricsAddr:          ":9090",
		SeedNames:            seed.DefaultNames(),
		MaxOrdersPerCustomer: 100,
		EventInterval:        time.Second,
		EventCount:           10,
	}
}

// LoadConfigFromEnv строит конфигурацию из значений по умолчанию,
// переопределений из окружения (CRM_*) и, если задан, YAML-файла посева.
func LoadConfigFromEnv() (Config, error) {
	cfg := DefaultConfig()

	if v := os.Getenv("CRM_METRICS_ADDR"); v != "" {
		cfg.MetricsAddr = v
	}
	if v := os.Getenv("CRM_SEED_FILE"); v != "" {
		cfg.SeedFile = v
	}
	if v := os.Getenv("CRM_SEED_NAMES"); v != "" {
		names := make([]string, 0)
		for _, name := range strings.Split(v, ",") {
			if name = strings.TrimSpace(name); name != "" {
				names = append(names, name)
			}
		}
		cfg.SeedNames = names
	}
	if v := os.Getenv("CRM_MAX_ORDERS_PER_CUSTOMER"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil || n <= 0 {
			return Config{}, fmt.Errorf("invalid CRM_MAX_ORDERS_PER_CUSTOMER %q", v)
		}
		cfg.MaxOrdersPerCustomer = n
	}
	if v := os.Getenv("CRM_EVENT_INTERVAL"); v != "" {
		d, err := time.ParseDuration(v)
		if err != nil || d <= 0 {
			return Config{}, fmt.Errorf("invalid CRM_EVENT_INTERVAL %q", v)
		}
		cfg.EventInterval = d
	}
	if v := os.Getenv("CRM_EVENT_COUNT"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil || n <= 0 {
			return Config{}, fmt.Errorf("invalid CRM_EVENT_COUNT %q", v)
		}
		cfg.EventCount = n
	}
	if v := os.Getenv("CRM_RAND_SEED"); v != "" {
		n, err := strconv.ParseInt(v, 10, 64)
		if err != nil {
			return Config{}, fmt.Errorf("invalid CRM_RAND_SEED %q", v)
		}
		cfg.RandSeed = n
	}

	if cfg.SeedFile != "" {
		if err := cfg.applySeedFile(); err != nil {
			return Config{}, err
		}
	}
	return cfg, nil
}

// seedFileConfig — структура YAML-файла посева.
type seedFileConfig struct {
	Names                []string `yaml:"names"`
	MaxOrdersPerCustomer int      `yaml:"max_orders_per_customer"`
}

// applySeedFile накладывает параметры из YAML-файла поверх текущих.
// Файл переопределяет только то, что в нём явно задано.
func (c *Config) applySeedFile() error {
	data, err := os.ReadFile(c.SeedFile)
	if err != nil {
		return fmt.Errorf("read seed file %s: %w", c.SeedFile, err)
	}

	var fileCfg seedFileConfig
	if err := yaml.Unmarshal(data, &fileCfg); err != nil {
		return fmt.Errorf("parse seed file %s: %w", c.SeedFile, err)
	}

	if len(fileCfg.Names) > 0 {
		c.SeedNames = fileCfg.Names
	}
	if fileCfg.MaxOrdersPerCustomer > 0 {
		c.MaxOrdersPerCustomer = fileCfg.MaxOrdersPerCustomer
	}
	return nil
}
