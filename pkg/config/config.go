// Package config 提供 TOML 配置加载与环境变量覆盖
package config

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/viper"
)

// Config 基础配置结构
type Config struct {
	// 服务名称
	ServiceName string `mapstructure:"service_name"`
	// 服务版本
	Version string `mapstructure:"version"`
	// 环境：dev, staging, prod
	Environment string `mapstructure:"environment"`
	// HTTP 服务配置
	HTTP HTTPConfig `mapstructure:"http"`
	// MongoDB 配置
	Mongo MongoConfig `mapstructure:"mongo"`
	// Redis 配置
	Redis RedisConfig `mapstructure:"redis"`
	// Kafka 配置
	Kafka KafkaConfig `mapstructure:"kafka"`
	// JWT 配置
	JWT JWTConfig `mapstructure:"jwt"`
	// SMTP 配置
	SMTP SMTPConfig `mapstructure:"smtp"`
	// 日志配置
	Logger LoggerConfig `mapstructure:"logger"`
	// 追踪配置
	Tracing TracingConfig `mapstructure:"tracing"`
	// 指标配置
	Metrics MetricsConfig `mapstructure:"metrics"`
	// 限流配置
	RateLimit RateLimitConfig `mapstructure:"ratelimit"`
}

// HTTPConfig HTTP 服务配置
type HTTPConfig struct {
	// 监听地址
	Host string `mapstructure:"host"`
	// 监听端口
	Port int `mapstructure:"port"`
	// 读超时（秒）
	ReadTimeout int `mapstructure:"read_timeout"`
	// 写超时（秒）
	WriteTimeout int `mapstructure:"write_timeout"`
}

// MongoConfig MongoDB 配置
type MongoConfig struct {
	// 连接 URI
	URI string `mapstructure:"uri"`
	// 数据库名称
	Database string `mapstructure:"database"`
	// 连接超时（秒）
	ConnTimeout int `mapstructure:"conn_timeout"`
	// 最大连接池大小
	MaxPoolSize uint64 `mapstructure:"max_pool_size"`
}

// RedisConfig Redis 配置
type RedisConfig struct {
	// 主机地址
	Host string `mapstructure:"host"`
	// 端口
	Port int `mapstructure:"port"`
	// 密码
	Password string `mapstructure:"password"`
	// 数据库编号
	DB int `mapstructure:"db"`
	// 最大连接数
	MaxPoolSize int `mapstructure:"max_pool_size"`
	// 读超时（秒）
	ReadTimeout int `mapstructure:"read_timeout"`
	// 写超时（秒）
	WriteTimeout int `mapstructure:"write_timeout"`
}

// KafkaConfig Kafka 配置
type KafkaConfig struct {
	// 是否启用事件发布
	Enabled bool `mapstructure:"enabled"`
	// Broker 地址列表
	Brokers []string `mapstructure:"brokers"`
	// 最大重试次数
	MaxRetries int `mapstructure:"max_retries"`
	// 重试退避（毫秒）
	RetryBackoff int `mapstructure:"retry_backoff"`
}

// JWTConfig JWT 配置
type JWTConfig struct {
	// 签名密钥
	Secret string `mapstructure:"secret"`
	// 有效期（小时）
	ExpireHours int `mapstructure:"expire_hours"`
	// 签发者
	Issuer string `mapstructure:"issuer"`
}

// SMTPConfig SMTP 配置
type SMTPConfig struct {
	// 是否真正发送（false 时使用 mock sender）
	Enabled bool `mapstructure:"enabled"`
	// 主机
	Host string `mapstructure:"host"`
	// 端口
	Port string `mapstructure:"port"`
	// 用户名
	Username string `mapstructure:"username"`
	// 密码
	Password string `mapstructure:"password"`
	// 发件人
	From string `mapstructure:"from"`
	// 重置密码链接的基础地址
	ResetBaseURL string `mapstructure:"reset_base_url"`
}

// LoggerConfig 日志配置
type LoggerConfig struct {
	// 日志级别
	Level string `mapstructure:"level"`
	// 输出格式
	Format string `mapstructure:"format"`
	// 输出目标
	Output string `mapstructure:"output"`
	// 文件路径
	FilePath string `mapstructure:"file_path"`
	// 最大文件大小（MB）
	MaxSize int `mapstructure:"max_size"`
	// 最大备份文件数
	MaxBackups int `mapstructure:"max_backups"`
	// 最大保留天数
	MaxAge int `mapstructure:"max_age"`
	// 是否压缩
	Compress bool `mapstructure:"compress"`
	// 是否输出调用者信息
	WithCaller bool `mapstructure:"with_caller"`
}

// TracingConfig 追踪配置
type TracingConfig struct {
	// 是否启用
	Enabled bool `mapstructure:"enabled"`
	// OTel 收集器端点
	CollectorEndpoint string `mapstructure:"collector_endpoint"`
}

// MetricsConfig 指标配置
type MetricsConfig struct {
	// 指标端口
	Port int `mapstructure:"port"`
	// 指标路径
	Path string `mapstructure:"path"`
}

// RateLimitConfig 限流配置
type RateLimitConfig struct {
	// 是否启用
	Enabled bool `mapstructure:"enabled"`
	// 每秒请求数
	QPS int `mapstructure:"qps"`
	// 突发容量
	Burst int `mapstructure:"burst"`
}

// Load 加载配置文件，环境变量以 STOREFRONT_ 前缀覆盖
func Load(path string) (*Config, error) {
	v := viper.New()
	v.SetConfigFile(path)
	v.SetConfigType("toml")

	v.SetEnvPrefix("STOREFRONT")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		if _, statErr := os.Stat(path); statErr != nil {
			return nil, fmt.Errorf("config file not found: %s", path)
		}
		return nil, fmt.Errorf("failed to read config: %w", err)
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	if err := validate(&cfg); err != nil {
		return nil, err
	}

	return &cfg, nil
}

// validate 校验必填项
func validate(cfg *Config) error {
	if cfg.ServiceName == "" {
		return fmt.Errorf("service_name is required")
	}
	if cfg.Mongo.URI == "" {
		return fmt.Errorf("mongo.uri is required")
	}
	if cfg.Mongo.Database == "" {
		return fmt.Errorf("mongo.database is required")
	}
	if cfg.JWT.Secret == "" {
		return fmt.Errorf("jwt.secret is required")
	}
	return nil
}
