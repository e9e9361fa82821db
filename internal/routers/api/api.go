package api

import (
	"gramhaat-backend/internal/search"
	"gramhaat-backend/pkg/app"
	"github.com/gin-gonic/gin"
)

func pageRequest(c *gin.Context) search.PageRequest {
	return search.PageRequest{
		Page: app.GetPage(c),
		Size: app.GetPageSize(c),
	}
}

func pagerFrom(res *search.PageResult) app.Pager {
	return app.Pager{
		Page:       res.Page,
		PageSize:   res.PageSize,
		TotalRows:  res.TotalRows,
		TotalPages: res.TotalPages,
	}
}
