package routers

import (
	"net/http"

	"gramhaat-backend/internal/routers/api"
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

func NewRouter() *gin.Engine {
	e := gin.New()
	e.HandleMethodNotAllowed = true
	e.Use(gin.Logger())
	e.Use(gin.Recovery())

	corsConfig := cors.DefaultConfig()
	corsConfig.AllowAllOrigins = true
	e.Use(cors.New(corsConfig))

	// v1 group api
	r := e.Group("/v1")

	r.GET("/", api.Version)

	{
		r.GET("/posts", api.GetPostList)
		r.GET("/posts/nearby", api.GetPostListNearby)
		r.GET("/post", api.GetPost)
		r.POST("/post", api.CreatePost)
		r.DELETE("/post", api.DeletePost)

		r.GET("/agrifields", api.GetAgriFieldList)
		r.GET("/agrifields/nearby", api.GetAgriFieldListNearby)

		r.GET("/localcards", api.GetLocalCardList)
		r.GET("/localcards/nearby", api.GetLocalCardListNearby)

		r.GET("/districts", api.GetDistricts)
		r.GET("/talukas", api.GetTalukas)
		r.GET("/villages", api.GetVillages)
		r.GET("/categories", api.GetCategories)

		r.GET("/sponsors/next", api.NextSponsor)
	}

	// default 404
	e.NoRoute(func(c *gin.Context) {
		c.JSON(http.StatusNotFound, gin.H{
			"code": 404,
			"msg":  "Not Found",
		})
	})

	// default 405
	e.NoMethod(func(c *gin.Context) {
		c.JSON(http.StatusMethodNotAllowed, gin.H{
			"code": 405,
			"msg":  "Method Not Allowed",
		})
	})

	return e
}
