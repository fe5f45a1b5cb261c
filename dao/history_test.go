package dao

import (
	"path/filepath"
	"testing"

	"ai-planner-backend/model"
)

func TestHistoryStoreAppendAndAll(t *testing.T) {
	store := NewHistoryStore(filepath.Join(t.TempDir(), "history.json"))

	if got := len(store.All()); got != 0 {
		t.Fatalf("Expected empty history, got %d records", got)
	}

	err := store.Append(
		model.HistoryRecord{Role: model.RoleUser, Content: "你好"},
		model.HistoryRecord{Role: model.RoleAssistant, Content: "你好！有什么可以帮您？"},
	)
	if err != nil {
		t.Fatalf("Failed to append history: %v", err)
	}

	history := store.All()
	if len(history) != 2 {
		t.Fatalf("Expected 2 records, got %d", len(history))
	}
	if history[0].Role != model.RoleUser || history[1].Role != model.RoleAssistant {
		t.Errorf("Unexpected roles: %+v", history)
	}
}

func TestHistoryStoreContextWindow(t *testing.T) {
	store := NewHistoryStore(filepath.Join(t.TempDir(), "history.json"))

	for i := 0; i < 12; i++ {
		role := model.RoleUser
		if i%2 == 1 {
			role = model.RoleAssistant
		}
		if err := store.Append(model.HistoryRecord{Role: role, Content: string(rune('a' + i))}); err != nil {
			t.Fatalf("Failed to append record %d: %v", i, err)
		}
	}

	window := store.ContextWindow(10)
	if len(window) != 10 {
		t.Fatalf("Expected window of 10, got %d", len(window))
	}
	if window[0].Content != "c" {
		t.Errorf("Expected window to start at 3rd record, got content '%s'", window[0].Content)
	}

	// 窗口裁剪不影响落盘的完整历史
	if got := len(store.All()); got != 12 {
		t.Errorf("Expected full history of 12 records, got %d", got)
	}

	// 历史不足 n 条时返回全部
	short := store.ContextWindow(100)
	if len(short) != 12 {
		t.Errorf("Expected 12 records for oversized window, got %d", len(short))
	}
}
