package response

import "ai-planner-backend/model"

type ChatResponse struct {
	Reply  string           `json:"reply"`
	Type   string           `json:"type"`
	Plan   *model.PlanEntry `json:"plan,omitempty"`
	Recipe *model.Recipe    `json:"recipe,omitempty"`
}
