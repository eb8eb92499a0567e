package config

import (
	"errors"
	"fmt"
	"log"
	"os"
	"strings"
	"time"

	"github.com/spf13/viper"
)

type Config struct {
	Env        string
	HTTPServer HTTPServer
	Database   Database
	GitHub     GitHub
	Auth       Auth
	Realtime   Realtime
}

type HTTPServer struct {
	Address        string
	Port           int
	RequestTimeout time.Duration
}

type Database struct {
	Username       string
	Password       string
	Host           string
	Port           string
	DbName         string
	SSLMode        string
	MigrationsPath string
	AutoMigrate    bool
}

type GitHub struct {
	WebhookSecret string
}

type Auth struct {
	JWTSecret string
	Issuer    string
}

type Realtime struct {
	SendBuffer     int
	WriteTimeout   time.Duration
	PongTimeout    time.Duration
	PingInterval   time.Duration
	AllowedOrigins []string
}

func (d Database) DSN() string {
	return fmt.Sprintf("postgresql://%s:%s@%s:%s/%s?sslmode=%s",
		d.Username,
		d.Password,
		d.Host,
		d.Port,
		d.DbName,
		d.SSLMode,
	)
}

func MustLoad(path string) *Config {
	cfg, err := Load(path)
	if err != nil {
		log.Printf("Error loading config: %s", err)
		os.Exit(1)
	}
	return cfg
}

func Load(path string) (*Config, error) {
	v := viper.New()
	if path != "" {
		v.SetConfigFile(path)
	} else {
		v.SetConfigName("config")
		v.SetConfigType("yaml")
		v.AddConfigPath("./config")
	}

	v.SetDefault("env", "dev")

	v.SetDefault("http_server.address", "0.0.0.0")
	v.SetDefault("http_server.port", 8080)
	v.SetDefault("http_server.request_timeout", 15*time.Second)

	v.SetDefault("database.username", "postgres")
	v.SetDefault("database.password", "admin")
	v.SetDefault("database.host", "hub-db")
	v.SetDefault("database.port", "5432")
	v.SetDefault("database.db_name", "traininghub")
	v.SetDefault("database.ssl_mode", "disable")
	v.SetDefault("database.migrations_path", "migrations")
	v.SetDefault("database.auto_migrate", true)

	v.SetDefault("auth.issuer", "training-hub")

	v.SetDefault("realtime.send_buffer", 64)
	v.SetDefault("realtime.write_timeout", 10*time.Second)
	v.SetDefault("realtime.pong_timeout", 60*time.Second)
	v.SetDefault("realtime.ping_interval", 50*time.Second)
	v.SetDefault("realtime.allowed_origins", []string{})

	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
	}

	cfg := &Config{
		Env: v.GetString("env"),
		HTTPServer: HTTPServer{
			Address:        v.GetString("http_server.address"),
			Port:           v.GetInt("http_server.port"),
			RequestTimeout: v.GetDuration("http_server.request_timeout"),
		},
		Database: Database{
			Username:       v.GetString("database.username"),
			Password:       v.GetString("database.password"),
			Host:           v.GetString("database.host"),
			Port:           v.GetString("database.port"),
			DbName:         v.GetString("database.db_name"),
			SSLMode:        v.GetString("database.ssl_mode"),
			MigrationsPath: v.GetString("database.migrations_path"),
			AutoMigrate:    v.GetBool("database.auto_migrate"),
		},
		GitHub: GitHub{
			WebhookSecret: v.GetString("github.webhook_secret"),
		},
		Auth: Auth{
			JWTSecret: v.GetString("auth.jwt_secret"),
			Issuer:    v.GetString("auth.issuer"),
		},
		Realtime: Realtime{
			SendBuffer:     v.GetInt("realtime.send_buffer"),
			WriteTimeout:   v.GetDuration("realtime.write_timeout"),
			PongTimeout:    v.GetDuration("realtime.pong_timeout"),
			PingInterval:   v.GetDuration("realtime.ping_interval"),
			AllowedOrigins: v.GetStringSlice("realtime.allowed_origins"),
		},
	}

	if cfg.GitHub.WebhookSecret == "" {
		return nil, errors.New("github.webhook_secret is required")
	}
	if cfg.Auth.JWTSecret == "" {
		return nil, errors.New("auth.jwt_secret is required")
	}
	if cfg.Realtime.PingInterval >= cfg.Realtime.PongTimeout {
		return nil, errors.New("realtime.ping_interval must be shorter than realtime.pong_timeout")
	}

	return cfg, nil
}
