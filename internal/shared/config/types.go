package config

import (
	"fmt"
	"time"
)

type ServerConfig struct {
	Host           string   `mapstructure:"host"`
	Port           int      `mapstructure:"port"`
	Mode           string   `mapstructure:"mode"`
	BaseURL        string   `mapstructure:"base_url"`
	AllowedOrigins []string `mapstructure:"allowed_origins"`
	Timezone       string   `mapstructure:"timezone"`
}

func (s *ServerConfig) GetAddr() string {
	return fmt.Sprintf("%s:%d", s.Host, s.Port)
}

type DatabaseConfig struct {
	Host              string `mapstructure:"host"`
	Port              int    `mapstructure:"port"`
	Username          string `mapstructure:"username"`
	Password          string `mapstructure:"password"`
	Database          string `mapstructure:"database"`
	MaxIdleConns      int    `mapstructure:"max_idle_conns"`
	MaxOpenConns      int    `mapstructure:"max_open_conns"`
	ConnMaxLifetime   int    `mapstructure:"conn_max_lifetime"`
	ConnectRetries    uint   `mapstructure:"connect_retries"`
	MigrationStrategy string `mapstructure:"migration_strategy"`
	MigrationsPath    string `mapstructure:"migrations_path"`
}

func (d *DatabaseConfig) GetDSN() string {
	return fmt.Sprintf("%s:%s@tcp(%s:%d)/%s?charset=utf8mb4&parseTime=True&loc=UTC&multiStatements=true",
		d.Username, d.Password, d.Host, d.Port, d.Database)
}

type LoggerConfig struct {
	Level      string `mapstructure:"level"`
	Format     string `mapstructure:"format"`
	OutputPath string `mapstructure:"output_path"`
}

type PasswordConfig struct {
	BcryptCost int `mapstructure:"bcrypt_cost"`
}

type JWTConfig struct {
	Secret           string `mapstructure:"secret"`
	AccessExpMinutes int    `mapstructure:"access_exp_minutes"`
}

type AuthConfig struct {
	Password PasswordConfig `mapstructure:"password"`
	JWT      JWTConfig      `mapstructure:"jwt"`
	// IdentityCacheSeconds bounds how long a resolved bearer identity is reused.
	IdentityCacheSeconds int `mapstructure:"identity_cache_seconds"`
	IdentityCacheSize    int `mapstructure:"identity_cache_size"`
}

type RedisConfig struct {
	Enabled  bool   `mapstructure:"enabled"`
	Host     string `mapstructure:"host"`
	Port     int    `mapstructure:"port"`
	Password string `mapstructure:"password"`
	DB       int    `mapstructure:"db"`
}

func (r *RedisConfig) GetAddr() string {
	return fmt.Sprintf("%s:%d", r.Host, r.Port)
}

type SchedulerConfig struct {
	Enabled bool `mapstructure:"enabled"`
	// SweepAt is the business-timezone wall clock time of the daily sweep, "HH:MM".
	SweepAt    string `mapstructure:"sweep_at"`
	RunOnStart bool   `mapstructure:"run_on_start"`
}

// Sweep conditions for selecting active paid subscriptions to expire.
const (
	SweepConditionPastDue = "past_due"
	SweepConditionLiteral = "literal"
)

type SubscriptionConfig struct {
	FreePlanPeriodMonths int `mapstructure:"free_plan_period_months"`
	// ExpiryLookaheadMonths is added to now before comparing with a paid
	// subscription's end date at gate time.
	ExpiryLookaheadMonths int    `mapstructure:"expiry_lookahead_months"`
	SweepCondition        string `mapstructure:"sweep_condition"`
	FreePlanCacheSeconds  int    `mapstructure:"free_plan_cache_seconds"`
}

func (s *SubscriptionConfig) FreePlanCacheTTL() time.Duration {
	return time.Duration(s.FreePlanCacheSeconds) * time.Second
}

type RealtimeConfig struct {
	Channel           string `mapstructure:"channel"`
	WriteWaitSeconds  int    `mapstructure:"write_wait_seconds"`
	PongWaitSeconds   int    `mapstructure:"pong_wait_seconds"`
	PingPeriodSeconds int    `mapstructure:"ping_period_seconds"`
	SendBuffer        int    `mapstructure:"send_buffer"`
}

type EmailConfig struct {
	SMTPHost     string `mapstructure:"smtp_host"`
	SMTPPort     int    `mapstructure:"smtp_port"`
	SMTPUser     string `mapstructure:"smtp_user"`
	SMTPPassword string `mapstructure:"smtp_password"`
	FromAddress  string `mapstructure:"from_address"`
	FromName     string `mapstructure:"from_name"`
}

func (e *EmailConfig) Enabled() bool {
	return e.SMTPHost != ""
}

type RateLimitConfig struct {
	Enabled           bool `mapstructure:"enabled"`
	AuthRequests      int  `mapstructure:"auth_requests"`
	AuthWindowSeconds int  `mapstructure:"auth_window_seconds"`
}

type MetricsConfig struct {
	Enabled bool   `mapstructure:"enabled"`
	Path    string `mapstructure:"path"`
}
