package config

import (
	"os"
	"time"

	"gopkg.in/yaml.v3"
)

type Config struct {
	Server struct {
		Port string `yaml:"port"`
	} `yaml:"server"`
	Redis struct {
		Addr     string `yaml:"addr"`
		Password string `yaml:"password"`
		DB       int    `yaml:"db"`
		TTL      string `yaml:"ttl"`
	} `yaml:"redis"`
	Postgres struct {
		URL string `yaml:"url"`
	} `yaml:"postgres"`
	SQLite struct {
		Path string `yaml:"path"`
	} `yaml:"sqlite"`
	Content struct {
		TTL string `yaml:"ttl"`
	} `yaml:"content"`
	Quiz struct {
		Language        string `yaml:"language"`
		QuestionCount   int    `yaml:"questionCount"`
		TimePerQuestion int    `yaml:"timePerQuestion"`
	} `yaml:"quiz"`
	Leaderboard struct {
		Key      string `yaml:"key"`
		Capacity int    `yaml:"capacity"`
	} `yaml:"leaderboard"`
}

// Default returns the configuration used when no file is given.
func Default() Config {
	cfg := Config{}
	cfg.Server.Port = "8080"
	cfg.Quiz.Language = "javascript"
	cfg.Quiz.QuestionCount = 10
	cfg.Quiz.TimePerQuestion = 30
	cfg.Leaderboard.Key = "quiz-leaderboard"
	cfg.Leaderboard.Capacity = 100
	return cfg
}

// Load reads YAML config from path on top of Default.
func Load(path string) (Config, error) {
	cfg := Default()
	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, err
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, err
	}
	return cfg, nil
}

// TTLDuration parses a duration string or returns the fallback if empty.
func TTLDuration(raw string, fallback time.Duration) time.Duration {
	if raw == "" {
		return fallback
	}
	if d, err := time.ParseDuration(raw); err == nil {
		return d
	}
	return fallback
}
