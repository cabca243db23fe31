package config

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

type AppConfig struct {
	Port    int    `yaml:"port"`
	GinMode string `yaml:"gin_mode"`
}

type DatabaseConfig struct {
	DSN string `yaml:"dsn"`
}

type RedisConfig struct {
	Addr     string `yaml:"addr"`
	Password string `yaml:"password"`
	DB       int    `yaml:"db"`
}

type JWTConfig struct {
	Secret    string `yaml:"secret"`
	Issuer    string `yaml:"issuer"`
	AccessTTL string `yaml:"access_ttl"`
}

type SessionConfig struct {
	RefreshTTL string `yaml:"refresh_ttl"`
}

type PasswordConfig struct {
	BcryptCost int `yaml:"bcrypt_cost"`
}

type ProfileConfig struct {
	CacheTTL string `yaml:"cache_ttl"`
}

type ConfigFile struct {
	App      AppConfig      `yaml:"app"`
	Database DatabaseConfig `yaml:"database"`
	Redis    RedisConfig    `yaml:"redis"`
	JWT      JWTConfig      `yaml:"jwt"`
	Session  SessionConfig  `yaml:"session"`
	Password PasswordConfig `yaml:"password"`
	Profile  ProfileConfig  `yaml:"profile"`
}

type Config struct {
	Port            string
	GinMode         string
	DSN             string
	RedisAddr       string
	RedisPassword   string
	RedisDB         int
	JWTSecret       string
	JWTIssuer       string
	AccessTTL       time.Duration
	RefreshTTL      time.Duration
	BcryptCost      int
	ProfileCacheTTL time.Duration
}

func env(k, def string) string {
	if v := os.Getenv(k); v != "" {
		return v
	}
	return def
}

// Load reads config/config.yml when present, then applies environment
// variable overrides. Environment alone is enough to run the service.
func Load() (*Config, error) {
	_ = godotenv.Load()

	file := &ConfigFile{}
	if path := env("CONFIG_PATH", "config/config.yml"); path != "" {
		if loaded, err := loadConfigFile(path); err == nil {
			file = loaded
		}
	}

	cfg := &Config{
		Port:          env("PORT", defaultStr(intToStr(file.App.Port), "8080")),
		GinMode:       env("GIN_MODE", defaultStr(file.App.GinMode, "release")),
		DSN:           env("DATABASE_URL", file.Database.DSN),
		RedisAddr:     env("REDIS_ADDR", defaultStr(file.Redis.Addr, "localhost:6379")),
		RedisPassword: env("REDIS_PASSWORD", file.Redis.Password),
		JWTSecret:     env("JWT_SECRET", file.JWT.Secret),
		JWTIssuer:     env("JWT_ISSUER", defaultStr(file.JWT.Issuer, "beautyauthsvc")),
	}

	var err error
	if cfg.RedisDB, err = strconv.Atoi(env("REDIS_DB", defaultStr(intToStr(file.Redis.DB), "0"))); err != nil {
		return nil, fmt.Errorf("invalid redis db: %w", err)
	}
	if cfg.AccessTTL, err = time.ParseDuration(env("JWT_ACCESS_TTL", defaultStr(file.JWT.AccessTTL, "168h"))); err != nil {
		return nil, fmt.Errorf("invalid access TTL: %w", err)
	}
	if cfg.RefreshTTL, err = time.ParseDuration(env("SESSION_REFRESH_TTL", defaultStr(file.Session.RefreshTTL, "720h"))); err != nil {
		return nil, fmt.Errorf("invalid refresh TTL: %w", err)
	}
	if cfg.BcryptCost, err = strconv.Atoi(env("BCRYPT_COST", defaultStr(intToStr(file.Password.BcryptCost), "12"))); err != nil {
		return nil, fmt.Errorf("invalid bcrypt cost: %w", err)
	}
	if cfg.ProfileCacheTTL, err = time.ParseDuration(env("PROFILE_CACHE_TTL", defaultStr(file.Profile.CacheTTL, "5m"))); err != nil {
		return nil, fmt.Errorf("invalid profile cache TTL: %w", err)
	}

	if cfg.DSN == "" {
		return nil, fmt.Errorf("database DSN is required (DATABASE_URL or config file)")
	}
	if cfg.JWTSecret == "" {
		return nil, fmt.Errorf("JWT secret is required (JWT_SECRET or config file)")
	}

	return cfg, nil
}

func loadConfigFile(path string) (*ConfigFile, error) {
	bytes, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("could not read config file at %s: %w", path, err)
	}

	var config ConfigFile
	if err := yaml.Unmarshal(bytes, &config); err != nil {
		return nil, fmt.Errorf("could not parse config yaml: %w", err)
	}

	return &config, nil
}

func defaultStr(v, def string) string {
	if v != "" {
		return v
	}
	return def
}

func intToStr(v int) string {
	if v == 0 {
		return ""
	}
	return strconv.Itoa(v)
}
