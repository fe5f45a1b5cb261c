package controller

import (
	"errors"
	"fmt"
	"log/slog"
	"net/http"

	"ai-planner-backend/dao"
	"ai-planner-backend/request"
	"ai-planner-backend/response"
	"ai-planner-backend/service/chat"

	"github.com/gin-gonic/gin"
)

var (
	chatService  *chat.Service
	planStore    *dao.PlanStore
	historyStore *dao.HistoryStore
)

// Init 注入各 handler 依赖的服务与存储
func Init(svc *chat.Service, plans *dao.PlanStore, history *dao.HistoryStore) {
	chatService = svc
	planStore = plans
	historyStore = history
}

func Chat(c *gin.Context) {
	var req request.ChatRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		slog.Error(ErrParseRequest.Error(), "err", err)
		c.AbortWithStatusJSON(http.StatusBadRequest, response.ErrorResponse{
			Error: msgMessageRequired,
		})
		return
	}

	result, err := chatService.Chat(c.Request.Context(), req.Message)
	if err != nil {
		slog.Error(ErrChat.Error(), "err", err)
		status, msg := chatErrorResponse(err)
		c.AbortWithStatusJSON(status, response.ErrorResponse{Error: msg})
		return
	}

	c.JSON(http.StatusOK, response.ChatResponse{
		Reply:  result.Reply,
		Type:   result.Type,
		Plan:   result.Plan,
		Recipe: result.Recipe,
	})
}

// chatErrorResponse 按错误类别映射状态码与文案：
// 配置错误 500，网络不可达 503，模型服务错误原样透传状态码，
// 其余（含响应结构异常）一律 500 通用失败
func chatErrorResponse(err error) (int, string) {
	var upstream *chat.UpstreamError
	switch {
	case errors.Is(err, chat.ErrAPIKeyMissing):
		return http.StatusInternalServerError, msgAPIKeyMissing
	case errors.As(err, &upstream):
		return upstream.StatusCode, fmt.Sprintf(msgModelError, upstream.Code, upstream.Message)
	case errors.Is(err, chat.ErrModelUnreachable):
		return http.StatusServiceUnavailable, msgUnreachable
	default:
		return http.StatusInternalServerError, msgChatFailed
	}
}
