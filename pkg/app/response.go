package app

import (
	"net/http"

	"gramhaat-backend/pkg/errcode"
	"github.com/gin-gonic/gin"
)

type Pager struct {
	Page       int   `json:"page"`
	PageSize   int   `json:"page_size"`
	TotalRows  int64 `json:"total_rows"`
	TotalPages int64 `json:"total_pages"`
}

type ListResp struct {
	List  interface{} `json:"list"`
	Pager Pager       `json:"pager"`
}

type Response struct {
	Ctx *gin.Context
}

func NewResponse(ctx *gin.Context) *Response {
	return &Response{Ctx: ctx}
}

func (r *Response) ToResponse(data interface{}) {
	if data == nil {
		data = gin.H{}
	}
	r.Ctx.JSON(http.StatusOK, gin.H{
		"code": 0,
		"msg":  "success",
		"data": data,
	})
}

func (r *Response) ToResponseList(list interface{}, totalRows int64) {
	page, pageSize := GetPage(r.Ctx), GetPageSize(r.Ctx)
	r.ToResponse(ListResp{
		List: list,
		Pager: Pager{
			Page:       page,
			PageSize:   pageSize,
			TotalRows:  totalRows,
			TotalPages: totalPages(totalRows, pageSize),
		},
	})
}

// ToPagedResponse same as ToResponseList but with an already computed pager.
func (r *Response) ToPagedResponse(list interface{}, pager Pager) {
	r.ToResponse(ListResp{List: list, Pager: pager})
}

func (r *Response) ToErrorResponse(err *errcode.Error) {
	response := gin.H{"code": err.Code(), "msg": err.Msg()}
	details := err.Details()
	if len(details) > 0 {
		response["details"] = details
	}
	r.Ctx.JSON(err.StatusCode(), response)
}

func totalPages(totalRows int64, pageSize int) int64 {
	if totalRows <= 0 || pageSize <= 0 {
		return 0
	}
	return (totalRows + int64(pageSize) - 1) / int64(pageSize)
}
