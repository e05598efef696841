package config

import (
	"errors"
	"log/slog"

	"github.com/spf13/viper"
)

type Config struct {
	Server     Server
	Bun        BunConfig
	JWT        JWT
	Realtime   Realtime
	LoggerMode LoggerMode
}

type Server struct {
	Port        string
	Environment string
}

type BunConfig struct {
	DSN string
}

type LoggerMode struct {
	Development bool
	Prod        bool
	Level       string
}

type JWT struct {
	Secret    string
	ExpiredIn int
}

// Realtime tunes the feed broker and the collection windows built on it.
type Realtime struct {
	PageSize   int // items per history page, 20 if unset
	FeedBuffer int // per-subscription event buffer, 64 if unset
}

func (r Realtime) PageSizeOrDefault() int {
	if r.PageSize <= 0 {
		return 20
	}
	return r.PageSize
}

func (r Realtime) FeedBufferOrDefault() int {
	if r.FeedBuffer <= 0 {
		return 64
	}
	return r.FeedBuffer
}

func LoadConfig(filename string) (*viper.Viper, error) {
	v := viper.New()

	v.SetConfigName(filename)
	v.SetConfigType("yaml")
	v.AddConfigPath("config")

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); ok {
			return nil, errors.New("config file not found")
		}
		return nil, err
	}
	return v, nil
}

func ParseConfig(v *viper.Viper) (*Config, error) {
	var c Config
	err := v.Unmarshal(&c)
	if err != nil {
		slog.Error("Unable to unmarshal config", "err", err)
		return nil, err
	}
	return &c, nil
}
