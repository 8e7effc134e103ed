package config

import (
	"fmt"
	"strings"

	"github.com/spf13/viper"
)

// ServerConfig for the HTTP listener
type ServerConfig struct {
	Port uint16 `mapstructure:"port"`
}

// ListenString returns the address for http listening
func (c ServerConfig) ListenString() string {
	return fmt.Sprintf(":%d", c.Port)
}

// LogConfig for logging
type LogConfig struct {
	Level string `mapstructure:"level"`
}

// StorageConfig selects the store backend
type StorageConfig struct {
	// Backend is "memory" or "mysql"
	Backend string `mapstructure:"backend"`
}

// Config for the whole application
type Config struct {
	Server  ServerConfig  `mapstructure:"server"`
	Log     LogConfig     `mapstructure:"log"`
	Storage StorageConfig `mapstructure:"storage"`
	MySQL   MySQLConfig   `mapstructure:"mysql"`
}

// Load reads configuration from config.yml and TRENDING_* env vars
func Load() Config {
	vip := viper.New()
	vip.SetConfigName("config")
	vip.SetConfigType("yml")
	vip.AddConfigPath(".")

	vip.SetEnvPrefix("trending")
	vip.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	vip.AutomaticEnv()

	vip.SetDefault("server.port", 8080)
	vip.SetDefault("log.level", "info")
	vip.SetDefault("storage.backend", "memory")
	vip.SetDefault("mysql.host", "localhost")
	vip.SetDefault("mysql.port", 3306)
	vip.SetDefault("mysql.max_open_conns", 20)
	vip.SetDefault("mysql.max_idle_conns", 10)

	if err := vip.ReadInConfig(); err != nil {
		if _, notFound := err.(viper.ConfigFileNotFoundError); !notFound {
			panic(err)
		}
	}

	var conf Config
	if err := vip.Unmarshal(&conf); err != nil {
		panic(err)
	}
	return conf
}
