package api

import (
	"gramhaat-backend/internal/service"
	"gramhaat-backend/pkg/app"
	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
)

func NextSponsor(c *gin.Context) {
	response := app.NewResponse(c)
	slot := c.Query("slot")
	if slot == "" {
		slot = "home"
	}

	sponsor, err := service.NextSponsor(slot)
	if err != nil {
		logrus.Errorf("service.NextSponsor err: %v", err)
		response.ToErrorResponse(err)
		return
	}
	response.ToResponse(sponsor)
}
