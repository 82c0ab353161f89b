package config

import (
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/spf13/viper"
	"github.com/you/go-tickets-report/internal/timezone"
)

type Config struct {
	CityFrom    string
	CityTo      string
	LogLevel    string
	Color       bool
	LoadTimeout time.Duration
	HTTPTimeout time.Duration
	Addr        string
	JWTSecret   string
	JWTUser     string
	JWTPassword string
	TLSCertFile string
	TLSKeyFile  string
}

func Load() (*Config, error) {
	v := viper.New()

	v.SetDefault("city_from", timezone.Vladivostok)
	v.SetDefault("city_to", timezone.TelAviv)
	v.SetDefault("log_level", "info")
	v.SetDefault("color", false)
	v.SetDefault("load_timeout", "30s")
	v.SetDefault("http_timeout", "10s")
	v.SetDefault("addr", ":8080")
	v.SetDefault("auth_user", "demo")
	v.SetDefault("auth_pass", "demo123")

	if path := os.Getenv("TICKETS_CONFIG"); path != "" {
		v.SetConfigFile(path)
	} else {
		v.SetConfigName("config")
		v.AddConfigPath(".")
		v.AddConfigPath("./config")
		v.AddConfigPath("/etc/tickets")
	}

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, fmt.Errorf("read config: %w", err)
		}
	}

	v.AutomaticEnv()

	lt, err := time.ParseDuration(v.GetString("load_timeout"))
	if err != nil {
		return nil, fmt.Errorf("bad load_timeout: %w", err)
	}
	ht, err := time.ParseDuration(v.GetString("http_timeout"))
	if err != nil {
		return nil, fmt.Errorf("bad http_timeout: %w", err)
	}

	cfg := &Config{
		CityFrom:    v.GetString("city_from"),
		CityTo:      v.GetString("city_to"),
		LogLevel:    v.GetString("log_level"),
		Color:       v.GetBool("color"),
		LoadTimeout: lt,
		HTTPTimeout: ht,
		Addr:        v.GetString("addr"),
		JWTSecret:   v.GetString("jwt_secret"),
		JWTUser:     v.GetString("auth_user"),
		JWTPassword: v.GetString("auth_pass"),
		TLSCertFile: v.GetString("tls_cert_file"),
		TLSKeyFile:  v.GetString("tls_key_file"),
	}
	if cfg.CityFrom == "" || cfg.CityTo == "" {
		return nil, errors.New("city_from and city_to are required")
	}
	return cfg, nil
}
