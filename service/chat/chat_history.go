package chat

import (
	"context"

	"ai-planner-backend/dao"
	"ai-planner-backend/model"

	"github.com/tmc/langchaingo/llms"
	"github.com/tmc/langchaingo/schema"
)

// 发给模型的上下文窗口大小（条数）
const contextWindowSize = 10

// FileChatMessageHistory 把 JSON 文件中的对话历史适配成
// langchaingo 的消息历史。Messages 只返回最近的上下文窗口，
// 落盘文件始终保留全量历史。
type FileChatMessageHistory struct {
	store  *dao.HistoryStore
	window int
}

var _ schema.ChatMessageHistory = &FileChatMessageHistory{}

func NewFileChatMessageHistory(store *dao.HistoryStore) *FileChatMessageHistory {
	return &FileChatMessageHistory{
		store:  store,
		window: contextWindowSize,
	}
}

func (h *FileChatMessageHistory) Messages(_ context.Context) ([]llms.ChatMessage, error) {
	var msgs []llms.ChatMessage
	for _, record := range h.store.ContextWindow(h.window) {
		switch record.Role {
		case model.RoleAssistant:
			msgs = append(msgs, llms.AIChatMessage{Content: record.Content})
		case model.RoleUser:
			msgs = append(msgs, llms.HumanChatMessage{Content: record.Content})
		}
	}
	return msgs, nil
}

func (h *FileChatMessageHistory) AddMessage(_ context.Context, message llms.ChatMessage) error {
	return h.addMessage(message.GetContent(), message.GetType())
}

func (h *FileChatMessageHistory) AddAIMessage(_ context.Context, text string) error {
	return h.addMessage(text, llms.ChatMessageTypeAI)
}

func (h *FileChatMessageHistory) AddUserMessage(_ context.Context, text string) error {
	return h.addMessage(text, llms.ChatMessageTypeHuman)
}

func (h *FileChatMessageHistory) addMessage(text string, role llms.ChatMessageType) error {
	return h.store.Append(model.HistoryRecord{
		Role:    storeRole(role),
		Content: text,
	})
}

func (h *FileChatMessageHistory) Clear(_ context.Context) error {
	return h.store.Replace([]model.HistoryRecord{})
}

func (h *FileChatMessageHistory) SetMessages(_ context.Context, messages []llms.ChatMessage) error {
	records := make([]model.HistoryRecord, 0, len(messages))
	for _, msg := range messages {
		records = append(records, model.HistoryRecord{
			Role:    storeRole(msg.GetType()),
			Content: msg.GetContent(),
		})
	}
	return h.store.Replace(records)
}

// storeRole 历史文件沿用 user/assistant 两种角色
func storeRole(t llms.ChatMessageType) string {
	if t == llms.ChatMessageTypeAI {
		return model.RoleAssistant
	}
	return model.RoleUser
}
