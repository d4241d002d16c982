package config

import (
	"fmt"
	"time"

	"github.com/spf13/viper"
)

// Config 全局配置结构体
type Config struct {
	App     AppConfig         `mapstructure:"app"`
	Storage StorageConfig     `mapstructure:"storage"`
	MinIO   MinIOConfig       `mapstructure:"minio"`
	Redis   RedisConfig       `mapstructure:"redis"`
	JWT     JWTConfig         `mapstructure:"jwt"`
	Users   map[string]string `mapstructure:"users"`
	Log     LogConfig         `mapstructure:"log"`
}

// AppConfig 应用配置
type AppConfig struct {
	Name    string `mapstructure:"name"`
	Version string `mapstructure:"version"`
	Mode    string `mapstructure:"mode"`
	Port    int    `mapstructure:"port"`
	// BaseURL 仅用于生成视频的 data_url
	BaseURL string `mapstructure:"base_url"`
}

// StorageConfig 内容存储配置
type StorageConfig struct {
	// Backend 取值 fs 或 minio
	Backend string `mapstructure:"backend"`
	DataDir string `mapstructure:"data_dir"`
	Bucket  string `mapstructure:"bucket"`
}

// MinIOConfig MinIO 配置
type MinIOConfig struct {
	Endpoint  string `mapstructure:"endpoint"`
	AccessKey string `mapstructure:"access_key"`
	SecretKey string `mapstructure:"secret_key"`
	UseSSL    bool   `mapstructure:"use_ssl"`
}

// RedisConfig Redis 配置
type RedisConfig struct {
	Host     string `mapstructure:"host"`
	Port     int    `mapstructure:"port"`
	Password string `mapstructure:"password"`
	DB       int    `mapstructure:"db"`
	PoolSize int    `mapstructure:"pool_size"`
}

// Addr 返回 Redis 地址
func (r *RedisConfig) Addr() string {
	return fmt.Sprintf("%s:%d", r.Host, r.Port)
}

// JWTConfig JWT 配置
type JWTConfig struct {
	Secret      string `mapstructure:"secret"`
	ExpireHours int    `mapstructure:"expire_hours"`
}

// ExpireDuration 返回过期时间
func (j *JWTConfig) ExpireDuration() time.Duration {
	return time.Duration(j.ExpireHours) * time.Hour
}

// LogConfig 日志配置
type LogConfig struct {
	Level    string `mapstructure:"level"`
	Format   string `mapstructure:"format"`
	Output   string `mapstructure:"output"`
	FilePath string `mapstructure:"file_path"`
}

// 全局配置实例
var globalConfig *Config

// Load 加载配置文件
func Load(configPath string) (*Config, error) {
	v := viper.New()

	v.SetConfigFile(configPath)
	v.SetConfigType("yaml")

	// 环境变量可覆盖配置项
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	globalConfig = &cfg
	return &cfg, nil
}

// Get 获取全局配置
func Get() *Config {
	if globalConfig == nil {
		panic("config not loaded, please call Load() first")
	}
	return globalConfig
}

// GetApp 获取应用配置
func GetApp() *AppConfig {
	return &Get().App
}

// GetStorage 获取内容存储配置
func GetStorage() *StorageConfig {
	return &Get().Storage
}

// GetMinIO 获取 MinIO 配置
func GetMinIO() *MinIOConfig {
	return &Get().MinIO
}

// GetRedis 获取 Redis 配置
func GetRedis() *RedisConfig {
	return &Get().Redis
}

// GetJWT 获取 JWT 配置
func GetJWT() *JWTConfig {
	return &Get().JWT
}

// GetUsers 获取静态用户凭证表（用户名 -> bcrypt 哈希）
func GetUsers() map[string]string {
	return Get().Users
}

// GetLog 获取日志配置
func GetLog() *LogConfig {
	return &Get().Log
}
