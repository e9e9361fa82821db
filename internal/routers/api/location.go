package api

import (
	"gramhaat-backend/internal/service"
	"gramhaat-backend/pkg/app"
	"gramhaat-backend/pkg/convert"
	"gramhaat-backend/pkg/errcode"
	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
)

func GetDistricts(c *gin.Context) {
	response := app.NewResponse(c)

	districts, err := service.GetDistricts()
	if err != nil {
		logrus.Errorf("service.GetDistricts err: %v", err)
		response.ToErrorResponse(err)
		return
	}
	response.ToResponse(districts)
}

func GetTalukas(c *gin.Context) {
	response := app.NewResponse(c)
	districtID := convert.StrTo(c.Query("district_id")).MustInt64()
	if districtID <= 0 {
		response.ToErrorResponse(errcode.InvalidParams)
		return
	}

	talukas, err := service.GetTalukas(districtID)
	if err != nil {
		logrus.Errorf("service.GetTalukas err: %v", err)
		response.ToErrorResponse(err)
		return
	}
	response.ToResponse(talukas)
}

func GetVillages(c *gin.Context) {
	response := app.NewResponse(c)
	talukaID := convert.StrTo(c.Query("taluka_id")).MustInt64()
	if talukaID <= 0 {
		response.ToErrorResponse(errcode.InvalidParams)
		return
	}

	villages, err := service.GetVillages(talukaID)
	if err != nil {
		logrus.Errorf("service.GetVillages err: %v", err)
		response.ToErrorResponse(err)
		return
	}
	response.ToResponse(villages)
}

func GetCategories(c *gin.Context) {
	response := app.NewResponse(c)

	var parentID *int64
	if raw := c.Query("parent_id"); raw != "" {
		id := convert.StrTo(raw).MustInt64()
		parentID = &id
	}

	categories, err := service.GetCategories(parentID)
	if err != nil {
		logrus.Errorf("service.GetCategories err: %v", err)
		response.ToErrorResponse(err)
		return
	}
	response.ToResponse(categories)
}
