package config

import (
	"github.com/spf13/viper"

	applog "mercadito/internal/log"
)

type Config struct {
	Port           string
	Backend        string // file | sql
	DataDir        string
	DBDriver       string // sqlite | pgx
	DBDSN          string
	LogFile        string
	AdminTokenHash string // bcrypt hash guarding admin routes; empty disables them
}

// Load reads configuration from the environment once at startup. The
// backend choice is not hot-swappable mid-process.
func Load() Config {
	v := viper.New()
	v.SetDefault("PORT", "8080")
	v.SetDefault("STORAGE_BACKEND", "file")
	v.SetDefault("DATA_DIR", "./data")
	v.SetDefault("DB_DRIVER", "sqlite")
	v.SetDefault("DB_DSN", "mercadito.db")
	v.SetDefault("LOG_FILE", "")
	v.SetDefault("ADMIN_TOKEN_HASH", "")
	v.AutomaticEnv()

	cfg := Config{
		Port:           v.GetString("PORT"),
		Backend:        v.GetString("STORAGE_BACKEND"),
		DataDir:        v.GetString("DATA_DIR"),
		DBDriver:       v.GetString("DB_DRIVER"),
		DBDSN:          v.GetString("DB_DSN"),
		LogFile:        v.GetString("LOG_FILE"),
		AdminTokenHash: v.GetString("ADMIN_TOKEN_HASH"),
	}
	applog.Info(nil, "config.load", map[string]any{
		"port": cfg.Port, "backend": cfg.Backend, "dataDir": cfg.DataDir,
		"dbDriver": cfg.DBDriver,
	})
	return cfg
}
