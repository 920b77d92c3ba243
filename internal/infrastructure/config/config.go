package config

import (
	"errors"
	"fmt"
	"strings"
	"sync"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"

	sharedConfig "github.com/darna-inc/darna/internal/shared/config"
)

type Config struct {
	Server       sharedConfig.ServerConfig       `mapstructure:"server"`
	Database     sharedConfig.DatabaseConfig     `mapstructure:"database"`
	Logger       sharedConfig.LoggerConfig       `mapstructure:"logger"`
	Auth         sharedConfig.AuthConfig         `mapstructure:"auth"`
	Redis        sharedConfig.RedisConfig        `mapstructure:"redis"`
	Scheduler    sharedConfig.SchedulerConfig    `mapstructure:"scheduler"`
	Subscription sharedConfig.SubscriptionConfig `mapstructure:"subscription"`
	Realtime     sharedConfig.RealtimeConfig     `mapstructure:"realtime"`
	Email        sharedConfig.EmailConfig        `mapstructure:"email"`
	RateLimit    sharedConfig.RateLimitConfig    `mapstructure:"ratelimit"`
	Metrics      sharedConfig.MetricsConfig      `mapstructure:"metrics"`
}

var (
	appConfig   *Config
	appConfigMu sync.RWMutex
)

// Load reads configs/config.yaml, overlays configs/config.<env>.yaml when it
// exists, then applies DARNA_* environment variables. A .env file in the
// working directory is loaded into the environment first.
func Load(env string) (*Config, error) {
	_ = godotenv.Load()

	v := viper.New()
	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath("./configs")
	v.AddConfigPath("../configs")
	v.AddConfigPath("../../configs")

	v.SetEnvPrefix("DARNA")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	setDefaults(v)

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
	}

	if env != "" && env != "default" {
		v.SetConfigName("config." + env)
		if err := v.MergeInConfig(); err != nil {
			var notFound viper.ConfigFileNotFoundError
			if !errors.As(err, &notFound) {
				return nil, fmt.Errorf("failed to merge %s config: %w", env, err)
			}
		}
	}

	var config Config
	if err := v.Unmarshal(&config); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	if err := validate(&config); err != nil {
		return nil, err
	}

	appConfigMu.Lock()
	appConfig = &config
	appConfigMu.Unlock()

	return &config, nil
}

// Get returns the loaded configuration
func Get() *Config {
	appConfigMu.RLock()
	defer appConfigMu.RUnlock()
	return appConfig
}

func validate(c *Config) error {
	switch c.Subscription.SweepCondition {
	case sharedConfig.SweepConditionPastDue, sharedConfig.SweepConditionLiteral:
	default:
		return fmt.Errorf("invalid subscription.sweep_condition %q", c.Subscription.SweepCondition)
	}
	if c.Subscription.FreePlanPeriodMonths < 1 {
		return fmt.Errorf("subscription.free_plan_period_months must be at least 1")
	}
	if c.Server.Mode == "release" && c.Auth.JWT.Secret == defaultJWTSecret {
		return fmt.Errorf("auth.jwt.secret must be set in release mode")
	}
	return nil
}

const defaultJWTSecret = "change-me-in-production"

func setDefaults(v *viper.Viper) {
	v.SetDefault("server.host", "0.0.0.0")
	v.SetDefault("server.port", 6060)
	v.SetDefault("server.mode", "debug")
	v.SetDefault("server.base_url", "http://localhost:6060")
	v.SetDefault("server.allowed_origins", []string{"*"})
	v.SetDefault("server.timezone", "Africa/Algiers")

	v.SetDefault("database.host", "localhost")
	v.SetDefault("database.port", 3306)
	v.SetDefault("database.username", "root")
	v.SetDefault("database.password", "password")
	v.SetDefault("database.database", "darna_dev")
	v.SetDefault("database.max_idle_conns", 10)
	v.SetDefault("database.max_open_conns", 100)
	v.SetDefault("database.conn_max_lifetime", 60)
	v.SetDefault("database.connect_retries", 5)
	v.SetDefault("database.migration_strategy", "goose")
	v.SetDefault("database.migrations_path", "internal/infrastructure/migration/scripts")

	v.SetDefault("logger.level", "info")
	v.SetDefault("logger.format", "console")
	v.SetDefault("logger.output_path", "stdout")

	v.SetDefault("auth.password.bcrypt_cost", 12)
	v.SetDefault("auth.jwt.secret", defaultJWTSecret)
	v.SetDefault("auth.jwt.access_exp_minutes", 60*24*7)
	v.SetDefault("auth.identity_cache_seconds", 30)
	v.SetDefault("auth.identity_cache_size", 4096)

	v.SetDefault("redis.enabled", true)
	v.SetDefault("redis.host", "localhost")
	v.SetDefault("redis.port", 6379)
	v.SetDefault("redis.password", "")
	v.SetDefault("redis.db", 0)

	v.SetDefault("scheduler.enabled", true)
	v.SetDefault("scheduler.sweep_at", "00:00")
	v.SetDefault("scheduler.run_on_start", false)

	v.SetDefault("subscription.free_plan_period_months", 1)
	v.SetDefault("subscription.expiry_lookahead_months", 1)
	v.SetDefault("subscription.sweep_condition", sharedConfig.SweepConditionPastDue)
	v.SetDefault("subscription.free_plan_cache_seconds", 300)

	v.SetDefault("realtime.channel", "darna:notifications")
	v.SetDefault("realtime.write_wait_seconds", 10)
	v.SetDefault("realtime.pong_wait_seconds", 60)
	v.SetDefault("realtime.ping_period_seconds", 30)
	v.SetDefault("realtime.send_buffer", 64)

	v.SetDefault("email.smtp_host", "")
	v.SetDefault("email.smtp_port", 587)
	v.SetDefault("email.from_address", "noreply@darna.local")
	v.SetDefault("email.from_name", "Darna")

	v.SetDefault("ratelimit.enabled", true)
	v.SetDefault("ratelimit.auth_requests", 20)
	v.SetDefault("ratelimit.auth_window_seconds", 60)

	v.SetDefault("metrics.enabled", true)
	v.SetDefault("metrics.path", "/metrics")
}
