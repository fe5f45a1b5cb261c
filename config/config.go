package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

const defaultConfigPath = "config.yaml"

type Config struct {
	Server struct {
		Port string `yaml:"port"`
	} `yaml:"server"`

	Model struct {
		Name   string `yaml:"name"`
		APIKey string `yaml:"api_key"`
	} `yaml:"model"`

	Data struct {
		HistoryFile string `yaml:"history_file"`
		PlansFile   string `yaml:"plans_file"`
	} `yaml:"data"`

	CORS struct {
		AllowOrigins []string `yaml:"allow_origins"`
	} `yaml:"cors"`
}

// Cfg 全局配置实例
var Cfg *Config

// Init 加载配置文件，环境变量 QWEN_API_KEY 优先于文件中的密钥。
// 配置文件缺失时使用默认配置，密钥缺失推迟到请求阶段报错。
func Init() error {
	path := os.Getenv("CONFIG_PATH")
	if path == "" {
		path = defaultConfigPath
	}

	cfg := defaults()

	data, err := os.ReadFile(path)
	if err != nil {
		if !os.IsNotExist(err) {
			return fmt.Errorf("failed to read config file %s: %w", path, err)
		}
	} else {
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return fmt.Errorf("failed to parse config file %s: %w", path, err)
		}
	}

	if key := os.Getenv("QWEN_API_KEY"); key != "" {
		cfg.Model.APIKey = key
	}

	Cfg = cfg
	return nil
}

func defaults() *Config {
	cfg := &Config{}
	cfg.Server.Port = "3000"
	cfg.Model.Name = "qwen-turbo"
	cfg.Data.HistoryFile = "history.json"
	cfg.Data.PlansFile = "plans.json"
	cfg.CORS.AllowOrigins = []string{
		"http://localhost:8080",
		"http://127.0.0.1:8080",
	}
	return cfg
}
