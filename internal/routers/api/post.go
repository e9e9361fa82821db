package api

import (
	"gramhaat-backend/internal/service"
	"gramhaat-backend/pkg/app"
	"gramhaat-backend/pkg/convert"
	"gramhaat-backend/pkg/errcode"
	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
)

func GetPostList(c *gin.Context) {
	response := app.NewResponse(c)
	param := service.ItemFilterReq{}
	if valid, errs := app.BindAndValid(c, &param); !valid {
		logrus.Errorf("app.BindAndValid errs: %v", errs)
		response.ToErrorResponse(errcode.InvalidParams.WithDetails(errs.Errors()...))
		return
	}

	posts, res, err := service.GetPostList(&param, pageRequest(c))
	if err != nil {
		logrus.Errorf("service.GetPostList err: %v", err)
		response.ToErrorResponse(err)
		return
	}
	response.ToPagedResponse(posts, pagerFrom(res))
}

func GetPostListNearby(c *gin.Context) {
	response := app.NewResponse(c)
	param := service.ItemNearbyReq{}
	if valid, errs := app.BindAndValid(c, &param); !valid {
		logrus.Errorf("app.BindAndValid errs: %v", errs)
		response.ToErrorResponse(errcode.InvalidParams.WithDetails(errs.Errors()...))
		return
	}

	posts, res, err := service.GetPostListNearby(&param, pageRequest(c))
	if err != nil {
		logrus.Errorf("service.GetPostListNearby err: %v", err)
		response.ToErrorResponse(err)
		return
	}
	response.ToPagedResponse(posts, pagerFrom(res))
}

func GetPost(c *gin.Context) {
	response := app.NewResponse(c)
	id := convert.StrTo(c.Query("id")).MustInt64()
	if id <= 0 {
		response.ToErrorResponse(errcode.InvalidParams)
		return
	}

	post, err := service.GetPost(id)
	if err != nil {
		logrus.Errorf("service.GetPost err: %v", err)
		response.ToErrorResponse(err)
		return
	}
	response.ToResponse(post)
}

func CreatePost(c *gin.Context) {
	response := app.NewResponse(c)
	param := service.PostCreationReq{}
	if valid, errs := app.BindAndValid(c, &param); !valid {
		logrus.Errorf("app.BindAndValid errs: %v", errs)
		response.ToErrorResponse(errcode.InvalidParams.WithDetails(errs.Errors()...))
		return
	}

	post, err := service.CreatePost(param)
	if err != nil {
		logrus.Errorf("service.CreatePost err: %v", err)
		response.ToErrorResponse(err)
		return
	}
	response.ToResponse(post)
}

func DeletePost(c *gin.Context) {
	response := app.NewResponse(c)
	param := service.PostDelReq{}
	if valid, errs := app.BindAndValid(c, &param); !valid {
		logrus.Errorf("app.BindAndValid errs: %v", errs)
		response.ToErrorResponse(errcode.InvalidParams.WithDetails(errs.Errors()...))
		return
	}

	if err := service.DeletePost(&param); err != nil {
		logrus.Errorf("service.DeletePost err: %v", err)
		response.ToErrorResponse(err)
		return
	}
	response.ToResponse(nil)
}
