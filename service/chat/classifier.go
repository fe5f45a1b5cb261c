package chat

import (
	"encoding/json"
	"strings"

	"ai-planner-backend/model"
)

type ReplyType string

const (
	ReplyChat   ReplyType = "chat"
	ReplyPlan   ReplyType = "plan"
	ReplyRecipe ReplyType = "recipe"
)

// PlanDraft 模型提取出的待保存规划
type PlanDraft struct {
	Date string
	Item string
}

// Classified 模型回复的判别结果：plan / recipe 变体携带结构化数据，
// 其余情况回落为纯文本对话
type Classified struct {
	Type   ReplyType
	Plan   *PlanDraft
	Recipe *model.Recipe
	Text   string
}

type structuredReply struct {
	Type         string   `json:"type"`
	Date         string   `json:"date"`
	Item         string   `json:"item"`
	Name         string   `json:"name"`
	Cuisine      string   `json:"cuisine"`
	HealthTip    string   `json:"health_tip"`
	Ingredients  []string `json:"ingredients"`
	Instructions []string `json:"instructions"`
}

// ClassifyReply 尝试把模型的原始文本解析为已知的结构化形态。
// 解析失败或必填字段缺失时一律按纯文本对话处理。
func ClassifyReply(raw string) Classified {
	var reply structuredReply
	if err := json.Unmarshal([]byte(stripCodeFence(raw)), &reply); err != nil {
		return Classified{Type: ReplyChat, Text: raw}
	}

	switch reply.Type {
	case "plan":
		if reply.Date == "" || reply.Item == "" {
			break
		}
		return Classified{
			Type: ReplyPlan,
			Plan: &PlanDraft{Date: reply.Date, Item: reply.Item},
		}
	case "recipe":
		if reply.Name == "" || len(reply.Ingredients) == 0 || len(reply.Instructions) == 0 {
			break
		}
		return Classified{
			Type: ReplyRecipe,
			Recipe: &model.Recipe{
				Name:         reply.Name,
				Cuisine:      reply.Cuisine,
				HealthTip:    reply.HealthTip,
				Ingredients:  reply.Ingredients,
				Instructions: reply.Instructions,
			},
		}
	}

	return Classified{Type: ReplyChat, Text: raw}
}

// stripCodeFence 去掉模型偶尔包裹的 markdown 代码块标记
func stripCodeFence(s string) string {
	s = strings.TrimSpace(s)
	s = strings.TrimPrefix(s, "```json")
	s = strings.TrimPrefix(s, "```")
	s = strings.TrimSuffix(s, "```")
	return strings.TrimSpace(s)
}
