package model

const (
	RoleUser      = "user"
	RoleAssistant = "assistant"
)

// HistoryRecord 对话历史中的一条消息
type HistoryRecord struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}
