package router

import (
	"ai-planner-backend/controller"
	"ai-planner-backend/middleware"

	"github.com/gin-gonic/gin"
)

func Register() *gin.Engine {
	r := gin.Default()
	r.Use(middleware.CORSMiddleware())

	r.POST("/chat", controller.Chat)
	r.GET("/history", controller.History)

	r.GET("/get_plans", controller.GetPlans)
	r.POST("/add_plan", controller.AddPlan)
	r.POST("/delete_plan", controller.DeletePlan)

	r.GET("/week", controller.Week)

	return r
}
