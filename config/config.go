package config

import (
    "strings"
    "time"

    "github.com/spf13/viper"
)

// Config 服务配置
type Config struct {
    Server     ServerConfig     `mapstructure:"server"`
    Database   DatabaseConfig   `mapstructure:"database"`
    Redis      RedisConfig      `mapstructure:"redis"`
    Auth       AuthConfig       `mapstructure:"auth"`
    Invite     InviteConfig     `mapstructure:"invite"`
    Feed       FeedConfig       `mapstructure:"feed"`
    View       ViewConfig       `mapstructure:"view"`
    Engagement EngagementConfig `mapstructure:"engagement"`
    RateLimit  RateLimitConfig  `mapstructure:"ratelimit"`
    Sentry     SentryConfig     `mapstructure:"sentry"`
    Trace      TraceConfig      `mapstructure:"trace"`
    Log        LogConfig        `mapstructure:"log"`
}

type ServerConfig struct {
    Port int    `mapstructure:"port"`
    Mode string `mapstructure:"mode"` // debug / release
}

type DatabaseConfig struct {
    Driver string `mapstructure:"driver"` // postgres / sqlite
    DSN    string `mapstructure:"dsn"`
}

type RedisConfig struct {
    Enabled  bool   `mapstructure:"enabled"`
    Addr     string `mapstructure:"addr"`
    Password string `mapstructure:"password"`
    DB       int    `mapstructure:"db"`
}

type AuthConfig struct {
    JWTSecret string        `mapstructure:"jwt_secret"`
    TokenTTL  time.Duration `mapstructure:"token_ttl"`
}

// InviteConfig 邀请相关配置；TTL 即邀请过期时长
type InviteConfig struct {
    TTL time.Duration `mapstructure:"ttl"`
}

type FeedConfig struct {
    PageSize        int           `mapstructure:"page_size"`
    CandidateWindow int           `mapstructure:"candidate_window"` // hot/controversial 的候选集大小
    CacheTTL        time.Duration `mapstructure:"cache_ttl"`
}

// ViewConfig 浏览打点配置
type ViewConfig struct {
    DwellThreshold time.Duration `mapstructure:"dwell_threshold"` // 低于该停留时长不记浏览
    FlushInterval  time.Duration `mapstructure:"flush_interval"`
}

type EngagementConfig struct {
    Workers   int `mapstructure:"workers"`
    QueueSize int `mapstructure:"queue_size"`
}

type RateLimitConfig struct {
    RPS   float64 `mapstructure:"rps"`
    Burst int     `mapstructure:"burst"`
}

type SentryConfig struct {
    DSN string `mapstructure:"dsn"`
}

type TraceConfig struct {
    Enabled  bool   `mapstructure:"enabled"`
    Endpoint string `mapstructure:"endpoint"`
}

type LogConfig struct {
    Level string `mapstructure:"level"`
}

// Load 读取配置：默认值 < 配置文件 < 环境变量（FB_ 前缀）
func Load() (*Config, error) {
    v := viper.New()
    v.SetConfigName("config")
    v.SetConfigType("yaml")
    v.AddConfigPath(".")
    v.AddConfigPath("./config")

    v.SetDefault("server.port", 8080)
    v.SetDefault("server.mode", "debug")
    v.SetDefault("database.driver", "sqlite")
    v.SetDefault("database.dsn", "file:feedback.db?cache=shared")
    v.SetDefault("redis.enabled", false)
    v.SetDefault("redis.addr", "127.0.0.1:6379")
    v.SetDefault("redis.db", 0)
    v.SetDefault("auth.jwt_secret", "dev-secret-change-me")
    v.SetDefault("auth.token_ttl", 24*time.Hour)
    v.SetDefault("invite.ttl", 7*24*time.Hour)
    v.SetDefault("feed.page_size", 20)
    v.SetDefault("feed.candidate_window", 200)
    v.SetDefault("feed.cache_ttl", 30*time.Second)
    v.SetDefault("view.dwell_threshold", time.Second)
    v.SetDefault("view.flush_interval", 200*time.Millisecond)
    v.SetDefault("engagement.workers", 4)
    v.SetDefault("engagement.queue_size", 10000)
    v.SetDefault("ratelimit.rps", 50)
    v.SetDefault("ratelimit.burst", 100)
    v.SetDefault("trace.enabled", false)
    v.SetDefault("trace.endpoint", "127.0.0.1:4318")
    v.SetDefault("log.level", "info")

    v.SetEnvPrefix("FB")
    v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
    v.AutomaticEnv()

    if err := v.ReadInConfig(); err != nil {
        // 没有配置文件时用默认值即可
        if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
            return nil, err
        }
    }

    var cfg Config
    if err := v.Unmarshal(&cfg); err != nil {
        return nil, err
    }
    return &cfg, nil
}
