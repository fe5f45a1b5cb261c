package dao

import (
	"encoding/json"
	"log/slog"
	"os"
	"path/filepath"
)

// readJSONFile 读取整份 JSON 数组文件，文件不存在时先创建空数组。
// 读取或解析失败时降级为空集合，只记录日志不中断请求。
func readJSONFile[T any](path string) []T {
	if _, err := os.Stat(path); os.IsNotExist(err) {
		if err := writeJSONFile(path, []T{}); err != nil {
			slog.Error("failed to create data file", "path", path, "err", err)
		}
		return []T{}
	}

	data, err := os.ReadFile(path)
	if err != nil {
		slog.Error("failed to read data file", "path", path, "err", err)
		return []T{}
	}

	var items []T
	if err := json.Unmarshal(data, &items); err != nil {
		slog.Error("failed to parse data file", "path", path, "err", err)
		return []T{}
	}
	return items
}

// writeJSONFile 整文件覆盖写入。无文件锁，并发写入为 last-writer-wins，
// 单用户场景下可接受。
func writeJSONFile[T any](path string, items []T) error {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return err
		}
	}

	data, err := json.MarshalIndent(items, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}
