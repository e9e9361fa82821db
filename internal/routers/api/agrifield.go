package api

import (
	"gramhaat-backend/internal/service"
	"gramhaat-backend/pkg/app"
	"gramhaat-backend/pkg/errcode"
	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
)

func GetAgriFieldList(c *gin.Context) {
	response := app.NewResponse(c)
	param := service.ItemFilterReq{}
	if valid, errs := app.BindAndValid(c, &param); !valid {
		logrus.Errorf("app.BindAndValid errs: %v", errs)
		response.ToErrorResponse(errcode.InvalidParams.WithDetails(errs.Errors()...))
		return
	}

	fields, res, err := service.GetAgriFieldList(&param, pageRequest(c))
	if err != nil {
		logrus.Errorf("service.GetAgriFieldList err: %v", err)
		response.ToErrorResponse(err)
		return
	}
	response.ToPagedResponse(fields, pagerFrom(res))
}

func GetAgriFieldListNearby(c *gin.Context) {
	response := app.NewResponse(c)
	param := service.ItemNearbyReq{}
	if valid, errs := app.BindAndValid(c, &param); !valid {
		logrus.Errorf("app.BindAndValid errs: %v", errs)
		response.ToErrorResponse(errcode.InvalidParams.WithDetails(errs.Errors()...))
		return
	}

	fields, res, err := service.GetAgriFieldListNearby(&param, pageRequest(c))
	if err != nil {
		logrus.Errorf("service.GetAgriFieldListNearby err: %v", err)
		response.ToErrorResponse(err)
		return
	}
	response.ToPagedResponse(fields, pagerFrom(res))
}
