package config

import "fmt"

type ServerConfig struct {
	Host string `mapstructure:"host"`
	Port int    `mapstructure:"port"`
	Mode string `mapstructure:"mode"`
}

func (s *ServerConfig) GetAddr() string {
	return fmt.Sprintf("%s:%d", s.Host, s.Port)
}

type DatabaseConfig struct {
	Host            string `mapstructure:"host" validate:"required"`
	Port            int    `mapstructure:"port" validate:"required"`
	Username        string `mapstructure:"username" validate:"required"`
	Password        string `mapstructure:"password"`
	Database        string `mapstructure:"database" validate:"required"`
	MaxIdleConns    int    `mapstructure:"max_idle_conns"`
	MaxOpenConns    int    `mapstructure:"max_open_conns"`
	ConnMaxLifetime int    `mapstructure:"conn_max_lifetime"`
}

func (d *DatabaseConfig) GetDSN() string {
	return fmt.Sprintf("%s:%s@tcp(%s:%d)/%s?charset=utf8mb4&parseTime=True&loc=Local",
		d.Username, d.Password, d.Host, d.Port, d.Database)
}

type LoggerConfig struct {
	Level      string `mapstructure:"level"`
	Format     string `mapstructure:"format"`
	OutputPath string `mapstructure:"output_path"`
}

// JiraConfig holds tracker-side settings. BaseURL is only used to construct
// browse links for issues whose payload carries no self link.
type JiraConfig struct {
	BaseURL string `mapstructure:"base_url" validate:"required,url"`
}

type RedisConfig struct {
	Host     string `mapstructure:"host"`
	Port     int    `mapstructure:"port"`
	Password string `mapstructure:"password"`
	DB       int    `mapstructure:"db"`
}

func (r *RedisConfig) GetAddr() string {
	return fmt.Sprintf("%s:%d", r.Host, r.Port)
}

// Enabled reports whether a redis endpoint has been configured at all.
func (r *RedisConfig) Enabled() bool {
	return r.Host != ""
}

type WebhookConfig struct {
	// RateLimitPerMinute caps requests per client IP on the webhook endpoint.
	// Zero disables rate limiting.
	RateLimitPerMinute int `mapstructure:"rate_limit_per_minute"`
}
