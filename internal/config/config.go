package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

// Config 应用程序配置
type Config struct {
	Server     ServerConfig     `yaml:"server"`
	Logger     LoggerConfig     `yaml:"logger"`
	Document   DocumentConfig   `yaml:"document"`
	Tika       TikaConfig       `yaml:"tika"`
	Vocabulary VocabularyConfig `yaml:"vocabulary"`
	Extraction ExtractionConfig `yaml:"extraction"`
	Auth       AuthConfig       `yaml:"auth"`
	Tracing    TracingConfig    `yaml:"tracing"`
}

// ServerConfig 定义服务器配置
type ServerConfig struct {
	Address          string `yaml:"address"`             // 例如 ":5001" or "0.0.0.0:5001"
	MaxRequestBodyMB int    `yaml:"max_request_body_mb"` // 请求体大小上限(MB)
	ReadTimeout      string `yaml:"read_timeout"`        // 例如 "30s"
	WriteTimeout     string `yaml:"write_timeout"`
	ExitWaitTime     string `yaml:"exit_wait_time"` // 优雅退出等待时间
	RateLimitQPM     int    `yaml:"rate_limit_qpm"`   // 解析接口每分钟请求上限，0 表示不限流
	RateLimitBurst   int    `yaml:"rate_limit_burst"` // 令牌桶容量，0 取 qpm 的一半
}

// LoggerConfig 日志配置
type LoggerConfig struct {
	Level        string `yaml:"level"`         // debug, info, warn, error
	Format       string `yaml:"format"`        // json, pretty
	TimeFormat   string `yaml:"time_format"`   // 时间格式
	ReportCaller bool   `yaml:"report_caller"` // 是否报告调用位置
	File         string `yaml:"file"`          // 可选，同时写入的日志文件
}

// DocumentConfig 文档文本提取配置
type DocumentConfig struct {
	Backend string `yaml:"backend"` // eino(默认), ledongthuc, tika
	Timeout string `yaml:"timeout"` // 单个文档的解析超时
}

// TikaConfig Tika服务器配置结构
type TikaConfig struct {
	ServerURL string `yaml:"server_url"`      // Tika服务器URL
	Timeout   int    `yaml:"timeout_seconds"` // 超时时间(秒)
}

// VocabularyConfig 技能词表配置
type VocabularyConfig struct {
	SkillsFile string `yaml:"skills_file"` // 为空时使用内置词表
}

// ExtractionConfig 字段抽取配置
type ExtractionConfig struct {
	NameThreshold int  `yaml:"name_threshold"` // 人名实体距文档开头的字符数上限
	DisableNER    bool `yaml:"disable_ner"`    // 关闭命名实体识别，只用首行回退规则
}

// AuthConfig API鉴权配置，APIKeys 为空时不启用
type AuthConfig struct {
	APIKeys []string `yaml:"api_keys"`
}

// TracingConfig OpenTelemetry 配置
type TracingConfig struct {
	Enabled     bool    `yaml:"enabled"`
	Endpoint    string  `yaml:"endpoint"` // OTLP gRPC 地址，例如 localhost:4317
	ServiceName string  `yaml:"service_name"`
	SampleRatio float64 `yaml:"sample_ratio"`
	Insecure    bool    `yaml:"insecure"`
}

// 默认值
const (
	DefaultAddress          = ":5001"
	DefaultMaxRequestBodyMB = 20
	DefaultBackend          = "eino"
	DefaultNameThreshold    = 200
	DefaultServiceName      = "resume-parser"
)

// LoadConfig 从文件加载配置
// configPath 为空时在常见位置查找，找不到则使用默认配置
func LoadConfig(configPath string) (*Config, error) {
	// .env 是可选的，不存在时忽略
	_ = godotenv.Load()

	if configPath == "" {
		searchPaths := []string{
			"config.yaml",
			filepath.Join("config", "config.yaml"),
			filepath.Join("internal", "config", "config.yaml"),
		}
		if execPath, err := os.Executable(); err == nil {
			searchPaths = append(searchPaths, filepath.Join(filepath.Dir(execPath), "config.yaml"))
		}
		for _, path := range searchPaths {
			if _, err := os.Stat(path); err == nil {
				configPath = path
				break
			}
		}
	}

	cfg := DefaultConfig()
	if configPath != "" {
		data, err := os.ReadFile(configPath)
		if err != nil {
			return nil, fmt.Errorf("读取配置文件失败: %w", err)
		}
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("解析配置文件失败: %w", err)
		}
	}

	applyEnvOverrides(cfg)
	applyDefaults(cfg)

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// DefaultConfig 返回默认配置
func DefaultConfig() *Config {
	cfg := &Config{}
	cfg.Server.Address = DefaultAddress
	cfg.Server.MaxRequestBodyMB = DefaultMaxRequestBodyMB
	cfg.Server.ReadTimeout = "30s"
	cfg.Server.WriteTimeout = "30s"
	cfg.Server.ExitWaitTime = "5s"

	cfg.Logger.Level = "info"
	cfg.Logger.Format = "pretty"
	cfg.Logger.TimeFormat = time.RFC3339

	cfg.Document.Backend = DefaultBackend
	cfg.Document.Timeout = "30s"

	cfg.Tika.ServerURL = "http://localhost:9998"
	cfg.Tika.Timeout = 60

	cfg.Extraction.NameThreshold = DefaultNameThreshold

	cfg.Tracing.ServiceName = DefaultServiceName
	cfg.Tracing.Endpoint = "localhost:4317"
	cfg.Tracing.SampleRatio = 1.0
	cfg.Tracing.Insecure = true
	return cfg
}

// applyEnvOverrides 从环境变量覆盖配置（如果存在）
func applyEnvOverrides(cfg *Config) {
	if v := os.Getenv("RESUME_PARSER_ADDRESS"); v != "" {
		cfg.Server.Address = v
	}
	if v := os.Getenv("RESUME_PARSER_LOG_LEVEL"); v != "" {
		cfg.Logger.Level = v
	}
	if v := os.Getenv("RESUME_PARSER_API_KEYS"); v != "" {
		var keys []string
		for _, k := range strings.Split(v, ",") {
			if k = strings.TrimSpace(k); k != "" {
				keys = append(keys, k)
			}
		}
		cfg.Auth.APIKeys = keys
	}
	if v := os.Getenv("TIKA_SERVER_URL"); v != "" {
		cfg.Tika.ServerURL = v
	}
	if v := os.Getenv("OTEL_EXPORTER_OTLP_ENDPOINT"); v != "" {
		cfg.Tracing.Endpoint = v
		cfg.Tracing.Enabled = true
	}
}

// applyDefaults 填充YAML中留空的字段
func applyDefaults(cfg *Config) {
	if cfg.Server.Address == "" {
		cfg.Server.Address = DefaultAddress
	}
	if cfg.Server.MaxRequestBodyMB <= 0 {
		cfg.Server.MaxRequestBodyMB = DefaultMaxRequestBodyMB
	}
	if cfg.Document.Backend == "" {
		cfg.Document.Backend = DefaultBackend
	}
	cfg.Document.Backend = strings.ToLower(cfg.Document.Backend)
	if cfg.Extraction.NameThreshold <= 0 {
		cfg.Extraction.NameThreshold = DefaultNameThreshold
	}
	if cfg.Tracing.ServiceName == "" {
		cfg.Tracing.ServiceName = DefaultServiceName
	}
	if cfg.Tracing.SampleRatio <= 0 || cfg.Tracing.SampleRatio > 1 {
		cfg.Tracing.SampleRatio = 1.0
	}
}

// Validate 校验配置
func (c *Config) Validate() error {
	switch c.Document.Backend {
	case "eino", "ledongthuc":
	case "tika":
		if c.Tika.ServerURL == "" {
			return fmt.Errorf("document.backend 为 tika 时必须配置 tika.server_url")
		}
	default:
		return fmt.Errorf("不支持的文档解析后端: %s", c.Document.Backend)
	}
	return nil
}

// GetDuration utility to parse duration strings from config
func GetDuration(durationStr string, defaultDuration time.Duration) time.Duration {
	if durationStr == "" {
		return defaultDuration
	}
	d, err := time.ParseDuration(durationStr)
	if err != nil {
		return defaultDuration
	}
	return d
}
