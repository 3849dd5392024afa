package config

import (
	"time"

	"github.com/spf13/viper"
)

type Config struct {
	App    AppConfig
	DB     DBConfig
	Redis  RedisConfig
	Auth   AuthConfig
	Engine EngineConfig
}

type AppConfig struct {
	Port string
	Env  string
}

type DBConfig struct {
	Host     string
	Port     string
	User     string
	Password string
	Name     string
}

type RedisConfig struct {
	Host     string
	Port     string
	Password string
	DB       int
}

// AuthConfig covers the admin token used to protect catalog administration.
// AdminSecretHash is a bcrypt hash of the shared admin secret.
type AuthConfig struct {
	Secret          string
	AdminSecretHash string
	TokenExpiry     time.Duration
}

// EngineConfig holds the estimation policy toggles.
// StrictCompatibility: a procedure without compatibility rows is treated as
// performable by no one instead of everyone.
// RoundUp: final times always round up to the next 10-minute slot instead of
// rounding to the nearest one.
type EngineConfig struct {
	StrictCompatibility bool
	RoundUp             bool
	CatalogSyncInterval time.Duration
}

func LoadConfig() (*Config, error) {
	viper.SetConfigFile(".env")
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err != nil {
		return nil, err
	}

	tokenExpiry, err := time.ParseDuration(viper.GetString("AUTH_TOKEN_EXPIRY"))
	if err != nil {
		tokenExpiry = 30 * time.Minute
	}

	syncInterval, err := time.ParseDuration(viper.GetString("CATALOG_SYNC_INTERVAL"))
	if err != nil {
		syncInterval = 15 * time.Minute
	}

	config := &Config{
		App: AppConfig{
			Port: viper.GetString("APP_PORT"),
			Env:  viper.GetString("APP_ENV"),
		},
		DB: DBConfig{
			Host:     viper.GetString("DB_HOST"),
			Port:     viper.GetString("DB_PORT"),
			User:     viper.GetString("DB_USER"),
			Password: viper.GetString("DB_PASSWORD"),
			Name:     viper.GetString("DB_NAME"),
		},
		Redis: RedisConfig{
			Host:     viper.GetString("REDIS_HOST"),
			Port:     viper.GetString("REDIS_PORT"),
			Password: viper.GetString("REDIS_PASSWORD"),
			DB:       viper.GetInt("REDIS_DB"),
		},
		Auth: AuthConfig{
			Secret:          viper.GetString("AUTH_SECRET"),
			AdminSecretHash: viper.GetString("ADMIN_SECRET_HASH"),
			TokenExpiry:     tokenExpiry,
		},
		Engine: EngineConfig{
			StrictCompatibility: viper.GetBool("ENGINE_STRICT_COMPATIBILITY"),
			RoundUp:             viper.GetBool("ENGINE_ROUND_UP"),
			CatalogSyncInterval: syncInterval,
		},
	}

	return config, nil
}
