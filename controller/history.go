package controller

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

func History(c *gin.Context) {
	c.JSON(http.StatusOK, historyStore.All())
}
