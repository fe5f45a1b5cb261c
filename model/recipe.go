package model

// Recipe 模型生成的食谱，不落盘，仅随响应返回
type Recipe struct {
	Name         string   `json:"name"`
	Cuisine      string   `json:"cuisine"`
	HealthTip    string   `json:"health_tip,omitempty"`
	Ingredients  []string `json:"ingredients"`
	Instructions []string `json:"instructions"`
}
