package config

import (
	"time"

	"github.com/spf13/viper"
)

// Config 对应于 config.yaml 的顶级结构
type Config struct {
	Token       string      `mapstructure:"token"`
	DBPath      string      `mapstructure:"db_path"`
	Commands    Commands    `mapstructure:"commands"`
	Suggestions Suggestions `mapstructure:"suggestions"`
}

// Commands 对应 "commands" 部分
type Commands struct {
	AllowGuilds []string `mapstructure:"allow_guilds"`
	Auth        Auth     `mapstructure:"auth"`
}

// Auth 对应 "auth" 部分
type Auth struct {
	Developers  []string `mapstructure:"developers"`
	AdminsRoles []string `mapstructure:"admin_roles"`
}

// Suggestions 对应 "suggestions" 部分
type Suggestions struct {
	MaxLength          int `mapstructure:"max_length"`
	RateLimitWindowSec int `mapstructure:"rate_limit_window"`
	MaxPerWindow       int `mapstructure:"max_per_window"`
	ConfirmTimeoutSec  int `mapstructure:"confirm_timeout"`
}

// RateLimitWindow returns the sliding window duration for submissions.
func (s Suggestions) RateLimitWindow() time.Duration {
	return time.Duration(s.RateLimitWindowSec) * time.Second
}

// ConfirmTimeout returns how long a pending confirmation stays valid.
func (s Suggestions) ConfirmTimeout() time.Duration {
	return time.Duration(s.ConfirmTimeoutSec) * time.Second
}

var Cfg Config

func LoadConfig() (err error) {
	viper.AddConfigPath(".")
	viper.SetConfigName("config")
	viper.SetConfigType("yaml")
	viper.AutomaticEnv()

	viper.SetDefault("db_path", "./data/suggestions.db")
	viper.SetDefault("suggestions.max_length", 1000)
	viper.SetDefault("suggestions.rate_limit_window", 300)
	viper.SetDefault("suggestions.max_per_window", 3)
	viper.SetDefault("suggestions.confirm_timeout", 180)

	err = viper.ReadInConfig()
	if err != nil {
		return
	}

	err = viper.Unmarshal(&Cfg)
	return
}
