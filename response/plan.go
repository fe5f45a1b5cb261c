package response

import "ai-planner-backend/model"

type ErrorResponse struct {
	Error string `json:"error"`
}

type AddPlanResponse struct {
	Message string          `json:"message"`
	Plan    model.PlanEntry `json:"plan"`
}

type DeletePlanResponse struct {
	Message string `json:"message"`
}
