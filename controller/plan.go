package controller

import (
	"errors"
	"log/slog"
	"net/http"

	"ai-planner-backend/dao"
	"ai-planner-backend/request"
	"ai-planner-backend/response"

	"github.com/gin-gonic/gin"
)

func GetPlans(c *gin.Context) {
	c.JSON(http.StatusOK, planStore.List())
}

func AddPlan(c *gin.Context) {
	var req request.AddPlanRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		slog.Error(ErrParseRequest.Error(), "err", err)
		c.AbortWithStatusJSON(http.StatusBadRequest, response.ErrorResponse{
			Error: msgPlanFieldsRequired,
		})
		return
	}

	plan, err := planStore.Add(req.Date, req.Item)
	if err != nil {
		slog.Error(ErrAddPlan.Error(), "err", err)
		if errors.Is(err, dao.ErrEmptyPlanField) {
			c.AbortWithStatusJSON(http.StatusBadRequest, response.ErrorResponse{
				Error: msgPlanFieldsRequired,
			})
			return
		}
		c.AbortWithStatusJSON(http.StatusInternalServerError, response.ErrorResponse{
			Error: ErrAddPlan.Error(),
		})
		return
	}

	c.JSON(http.StatusOK, response.AddPlanResponse{
		Message: msgPlanAdded,
		Plan:    plan,
	})
}

func DeletePlan(c *gin.Context) {
	var req request.DeletePlanRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		slog.Error(ErrParseRequest.Error(), "err", err)
		c.AbortWithStatusJSON(http.StatusBadRequest, response.ErrorResponse{
			Error: msgPlanIDRequired,
		})
		return
	}

	if err := planStore.Delete(req.ID); err != nil {
		if errors.Is(err, dao.ErrPlanNotFound) {
			c.AbortWithStatusJSON(http.StatusNotFound, response.ErrorResponse{
				Error: msgPlanNotFound,
			})
			return
		}
		slog.Error(ErrDeletePlan.Error(), "err", err)
		c.AbortWithStatusJSON(http.StatusInternalServerError, response.ErrorResponse{
			Error: ErrDeletePlan.Error(),
		})
		return
	}

	c.JSON(http.StatusOK, response.DeletePlanResponse{
		Message: msgPlanDeleted,
	})
}
