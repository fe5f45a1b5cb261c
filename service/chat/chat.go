package chat

import (
	"context"
	_ "embed"
	"fmt"
	"log/slog"

	"ai-planner-backend/dao"
	"ai-planner-backend/model"

	"github.com/tmc/langchaingo/llms"
)

const (
	TypeChatReply = "chat_reply"
	TypePlanSaved = "plan_saved"
	TypeRecipe    = "recipe"
)

//go:embed prompts/system_prompt.txt
var systemPrompt string

// Result 一次 /chat 请求的处理结果
type Result struct {
	Type   string
	Reply  string
	Plan   *model.PlanEntry
	Recipe *model.Recipe
}

// Service 串联模型调用、回复判别与持久化：
// 组装上下文 → 调用模型 → 判别回复形态 → 落盘并生成回复
type Service struct {
	llm     *QwenClient
	plans   *dao.PlanStore
	history *FileChatMessageHistory
}

func NewService(llm *QwenClient, plans *dao.PlanStore, history *FileChatMessageHistory) *Service {
	return &Service{
		llm:     llm,
		plans:   plans,
		history: history,
	}
}

// Chat 处理一条用户消息，单次调用，失败不重试
func (s *Service) Chat(ctx context.Context, userMessage string) (*Result, error) {
	window, err := s.history.Messages(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load chat history: %w", err)
	}

	messages := make([]llms.ChatMessage, 0, len(window)+2)
	messages = append(messages, llms.SystemChatMessage{Content: systemPrompt})
	messages = append(messages, window...)
	messages = append(messages, llms.HumanChatMessage{Content: userMessage})

	raw, err := s.llm.Generate(ctx, messages)
	if err != nil {
		return nil, err
	}

	classified := ClassifyReply(raw)
	switch classified.Type {
	case ReplyPlan:
		plan, err := s.plans.Add(classified.Plan.Date, classified.Plan.Item)
		if err != nil {
			return nil, fmt.Errorf("failed to save plan: %w", err)
		}
		// 历史中记录确认摘要而非模型的原始 JSON
		s.appendExchange(ctx, userMessage, fmt.Sprintf("[已记录日程] %s (%s)", plan.Item, plan.Date))
		return &Result{
			Type:  TypePlanSaved,
			Reply: fmt.Sprintf("好的，已为您记录：%s，日期：%s", plan.Item, plan.Date),
			Plan:  &plan,
		}, nil

	case ReplyRecipe:
		// 食谱不落规划本，历史只记菜名摘要
		s.appendExchange(ctx, userMessage, fmt.Sprintf("[已提供食谱] %s", classified.Recipe.Name))
		return &Result{
			Type:   TypeRecipe,
			Reply:  "好的，这是为您推荐的食谱：",
			Recipe: classified.Recipe,
		}, nil

	default:
		s.appendExchange(ctx, userMessage, raw)
		return &Result{Type: TypeChatReply, Reply: raw}, nil
	}
}

func (s *Service) appendExchange(ctx context.Context, userMessage, assistantMessage string) {
	if err := s.history.AddUserMessage(ctx, userMessage); err != nil {
		slog.Error("failed to append user message", "err", err)
	}
	if err := s.history.AddAIMessage(ctx, assistantMessage); err != nil {
		slog.Error("failed to append assistant message", "err", err)
	}
}
