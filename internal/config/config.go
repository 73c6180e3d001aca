package config

import (
	"fmt"
	"os"
	"time"

	"github.com/fsnotify/fsnotify"
	"github.com/spf13/viper"
	"go.uber.org/zap"
)

type AppConfig struct {
	API      *APIConfig      `mapstructure:"api"`
	Gin      *GinConfig      `mapstructure:"gin"`
	Postgres *PostgresConfig `mapstructure:"postgres"`
	Raffle   *RaffleConfig   `mapstructure:"raffle"`
}

type APIConfig struct {
	Environment        string `mapstructure:"environment"`
	Port               string `mapstructure:"port"`
	BaseURL            string `mapstructure:"base_url"`
	JWTSigningKey      string `mapstructure:"jwt_signing_key"`
	AdminAddress       string `mapstructure:"admin_address"`
	AllowedCORSDomains string `mapstructure:"allowed_cors_domains"`
}

type GinConfig struct {
	Mode string `mapstructure:"mode"`
}

type PostgresConfig struct {
	Host     string `mapstructure:"host"`
	Port     string `mapstructure:"port"`
	User     string `mapstructure:"user"`
	Password string `mapstructure:"password"`
	DBName   string `mapstructure:"db_name"`
}

type RaffleConfig struct {
	MinParticipants int           `mapstructure:"min_participants"`
	CheckInterval   time.Duration `mapstructure:"check_interval"`
	StatsInterval   time.Duration `mapstructure:"stats_interval"`
	ConfirmAttempts int           `mapstructure:"confirm_attempts"`
	ConfirmBackoff  time.Duration `mapstructure:"confirm_backoff"`
	RPCURL          string        `mapstructure:"rpc_url"`
}

func Load(configPath string) (*AppConfig, error) {
	vp := viper.New()

	vp.SetConfigFile(configPath)
	if err := vp.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("vp.ReadInConfig -> %w", err)
	}

	// Environment variables take precedence over the YAML file, so a
	// deployment can be reconfigured without editing config.yml.
	bindEnvVariables(vp)

	config := &AppConfig{}
	if err := vp.Unmarshal(config); err != nil {
		return nil, fmt.Errorf("vp.Unmarshal -> %w", err)
	}

	vp.WatchConfig()
	vp.OnConfigChange(func(e fsnotify.Event) {
		zap.L().Info("config file changed", zap.String("file", e.Name))

		if err := vp.Unmarshal(config); err != nil {
			zap.L().Error("failed to reload config", zap.Error(err))
		}
	})

	return config, nil
}

func bindEnvVariables(vp *viper.Viper) {
	envs := map[string]string{
		"api.environment":          "API_ENVIRONMENT",
		"api.port":                 "PORT",
		"api.base_url":             "API_BASE_URL",
		"api.jwt_signing_key":      "API_JWT_SIGNING_KEY",
		"api.admin_address":        "API_ADMIN_ADDRESS",
		"api.allowed_cors_domains": "API_ALLOWED_CORS_DOMAINS",
		"gin.mode":                 "GIN_MODE",
		"postgres.host":            "POSTGRES_HOST",
		"postgres.port":            "POSTGRES_PORT",
		"postgres.user":            "POSTGRES_USER",
		"postgres.password":        "POSTGRES_PASSWORD",
		"postgres.db_name":         "POSTGRES_DB_NAME",
		"raffle.rpc_url":           "RAFFLE_RPC_URL",
	}

	for key, env := range envs {
		if v, ok := os.LookupEnv(env); ok {
			vp.Set(key, v)
		}
	}
}
