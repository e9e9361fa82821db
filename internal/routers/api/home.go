package api

import (
	"gramhaat-backend/pkg/app"
	"gramhaat-backend/pkg/debug"
	"github.com/gin-gonic/gin"
)

func Version(c *gin.Context) {
	response := app.NewResponse(c)
	response.ToResponse(gin.H{
		"BuildInfo": debug.ReadBuildInfo(),
	})
}
