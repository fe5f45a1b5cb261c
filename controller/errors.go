package controller

import "errors"

var (
	ErrParseRequest = errors.New("failed to parse request")

	ErrChat        = errors.New("failed to handle chat request")
	ErrAddPlan     = errors.New("failed to add plan")
	ErrDeletePlan  = errors.New("failed to delete plan")
	ErrInvalidWeek = errors.New("invalid week offset")
)

// 面向前端的错误文案，与原接口保持一致
const (
	msgMessageRequired = "Message is required"
	msgAPIKeyMissing   = "Server configuration error: API key missing."
	msgModelError      = "AI模型错误：%s - %s"
	msgUnreachable     = "网络连接问题：无法连接到AI模型服务。"
	msgChatFailed      = "Failed to get response from AI model."

	msgPlanFieldsRequired = "Date and item are required for adding a plan."
	msgPlanIDRequired     = "Plan ID is required for deleting a plan."
	msgPlanNotFound       = "Plan not found."
	msgPlanAdded          = "Plan added successfully"
	msgPlanDeleted        = "Plan deleted successfully"
)
