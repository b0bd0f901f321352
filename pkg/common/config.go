package common

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"
)

const (
	DefaultHttpHostPort     = ":1080"
	DefaultDbPath           = "devices.db"
	DefaultMqttTopic        = "devices/status"
	DefaultBroadcastTimeout = 2 * time.Second
	DefaultLogDir           = "logs"
)

// Config is the process configuration read from the environment.
type Config struct {
	DBType           string
	DBPath           string
	HttpHostPort     string
	GrpcHostPort     string
	DefaultRate      float64
	DefaultBurst     int
	MqttBroker       string
	MqttTopic        string
	BroadcastTimeout time.Duration
}

func envOr(key, fallback string) string {
	if v, found := os.LookupEnv(key); found && strings.TrimSpace(v) != "" {
		return strings.TrimSpace(v)
	}
	return fallback
}

// LoadConfig reads the IOT_* variables. Call godotenv.Load first to pick up a .env file.
func LoadConfig() (*Config, error) {
	cfg := &Config{
		DBType:       envOr(EnvKeyIOTDBType, "file"),
		DBPath:       envOr(EnvKeyIOTDbPath, DefaultDbPath),
		HttpHostPort: envOr(EnvKeyIOTHttpHostPort, DefaultHttpHostPort),
		GrpcHostPort: envOr(EnvKeyIOTGrpcHostPort, ""),
		MqttBroker:   envOr(EnvKeyIOTMqttBroker, ""),
		MqttTopic:    envOr(EnvKeyIOTMqttTopic, DefaultMqttTopic),
	}

	switch cfg.DBType {
	case "file", "memory":
	default:
		return nil, fmt.Errorf("unknown %s: %q, should be file or memory", EnvKeyIOTDBType, cfg.DBType)
	}

	var err error
	if cfg.DefaultRate, err = strconv.ParseFloat(envOr(EnvKeyIOTDefaultRate, "0"), 64); err != nil || cfg.DefaultRate < 0 {
		return nil, fmt.Errorf("invalid %s, should be a non negative float64 value", EnvKeyIOTDefaultRate)
	}

	if cfg.DefaultBurst, err = strconv.Atoi(envOr(EnvKeyIOTDefaultBurst, "0")); err != nil || cfg.DefaultBurst < 0 {
		return nil, fmt.Errorf("invalid %s, should be a non negative int value", EnvKeyIOTDefaultBurst)
	}

	if cfg.BroadcastTimeout, err = time.ParseDuration(envOr(EnvKeyIOTBroadcastTimeout, DefaultBroadcastTimeout.String())); err != nil || cfg.BroadcastTimeout <= 0 {
		return nil, fmt.Errorf("invalid %s, should be a positive duration such as 2s", EnvKeyIOTBroadcastTimeout)
	}

	return cfg, nil
}

// RateLimitEnabled reports whether per-device limiting should be installed.
func (c *Config) RateLimitEnabled() bool {
	return c.DefaultRate > 0 && c.DefaultBurst > 0
}
