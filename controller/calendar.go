package controller

import (
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"ai-planner-backend/response"
	"ai-planner-backend/service/calendar"

	"github.com/gin-gonic/gin"
)

// Week 返回距今 offset 周的周视图，offset 可为任意正负整数
func Week(c *gin.Context) {
	offset, err := strconv.Atoi(c.DefaultQuery("offset", "0"))
	if err != nil {
		slog.Error(ErrInvalidWeek.Error(), "err", err)
		c.AbortWithStatusJSON(http.StatusBadRequest, response.ErrorResponse{
			Error: ErrInvalidWeek.Error(),
		})
		return
	}

	now := time.Now()
	ref := now.AddDate(0, 0, offset*7)

	// 周历与规划列表共用同一份展示过滤后的数据
	plans := calendar.FilterStale(planStore.List(), now)
	c.JSON(http.StatusOK, calendar.BuildWeekView(ref, now, plans))
}
