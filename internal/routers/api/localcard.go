package api

import (
	"gramhaat-backend/internal/service"
	"gramhaat-backend/pkg/app"
	"gramhaat-backend/pkg/errcode"
	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
)

func GetLocalCardList(c *gin.Context) {
	response := app.NewResponse(c)
	param := service.ItemFilterReq{}
	if valid, errs := app.BindAndValid(c, &param); !valid {
		logrus.Errorf("app.BindAndValid errs: %v", errs)
		response.ToErrorResponse(errcode.InvalidParams.WithDetails(errs.Errors()...))
		return
	}

	cards, res, err := service.GetLocalCardList(&param, pageRequest(c))
	if err != nil {
		logrus.Errorf("service.GetLocalCardList err: %v", err)
		response.ToErrorResponse(err)
		return
	}
	response.ToPagedResponse(cards, pagerFrom(res))
}

func GetLocalCardListNearby(c *gin.Context) {
	response := app.NewResponse(c)
	param := service.ItemNearbyReq{}
	if valid, errs := app.BindAndValid(c, &param); !valid {
		logrus.Errorf("app.BindAndValid errs: %v", errs)
		response.ToErrorResponse(errcode.InvalidParams.WithDetails(errs.Errors()...))
		return
	}

	cards, res, err := service.GetLocalCardListNearby(&param, pageRequest(c))
	if err != nil {
		logrus.Errorf("service.GetLocalCardListNearby err: %v", err)
		response.ToErrorResponse(err)
		return
	}
	response.ToPagedResponse(cards, pagerFrom(res))
}
