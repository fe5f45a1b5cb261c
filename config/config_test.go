package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestInit(t *testing.T) {
	t.Run("Defaults", func(t *testing.T) {
		t.Setenv("CONFIG_PATH", filepath.Join(t.TempDir(), "missing.yaml"))
		t.Setenv("QWEN_API_KEY", "")

		if err := Init(); err != nil {
			t.Fatalf("Expected no error for missing config file, got %v", err)
		}
		if Cfg.Server.Port != "3000" {
			t.Errorf("Expected default port '3000', got '%s'", Cfg.Server.Port)
		}
		if Cfg.Model.Name != "qwen-turbo" {
			t.Errorf("Expected default model 'qwen-turbo', got '%s'", Cfg.Model.Name)
		}
		if Cfg.Data.PlansFile != "plans.json" {
			t.Errorf("Expected default plans file 'plans.json', got '%s'", Cfg.Data.PlansFile)
		}
	})

	t.Run("FromFile", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "config.yaml")
		content := []byte("server:\n  port: \"9000\"\nmodel:\n  name: qwen-plus\n  api_key: file-key\ndata:\n  plans_file: data/plans.json\n")
		if err := os.WriteFile(path, content, 0644); err != nil {
			t.Fatalf("Failed to write config file: %v", err)
		}
		t.Setenv("CONFIG_PATH", path)
		t.Setenv("QWEN_API_KEY", "")

		if err := Init(); err != nil {
			t.Fatalf("Expected no error, got %v", err)
		}
		if Cfg.Server.Port != "9000" {
			t.Errorf("Expected port '9000', got '%s'", Cfg.Server.Port)
		}
		if Cfg.Model.APIKey != "file-key" {
			t.Errorf("Expected api key 'file-key', got '%s'", Cfg.Model.APIKey)
		}
		if Cfg.Data.PlansFile != "data/plans.json" {
			t.Errorf("Expected plans file 'data/plans.json', got '%s'", Cfg.Data.PlansFile)
		}
		// 文件未覆盖的字段保留默认值
		if Cfg.Data.HistoryFile != "history.json" {
			t.Errorf("Expected history file 'history.json', got '%s'", Cfg.Data.HistoryFile)
		}
	})

	t.Run("EnvOverridesFile", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "config.yaml")
		if err := os.WriteFile(path, []byte("model:\n  api_key: file-key\n"), 0644); err != nil {
			t.Fatalf("Failed to write config file: %v", err)
		}
		t.Setenv("CONFIG_PATH", path)
		t.Setenv("QWEN_API_KEY", "env-key")

		if err := Init(); err != nil {
			t.Fatalf("Expected no error, got %v", err)
		}
		if Cfg.Model.APIKey != "env-key" {
			t.Errorf("Expected api key 'env-key', got '%s'", Cfg.Model.APIKey)
		}
	})
}
