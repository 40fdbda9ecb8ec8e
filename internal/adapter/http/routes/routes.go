package routes

import (
	"github.com/gin-gonic/gin"

	"userapp/internal/adapter/http/handler"
	"userapp/internal/adapter/http/middleware"
)

func newRouter(opts middleware.Options) *gin.Engine {
	if gin.Mode() == "" {
		gin.SetMode(gin.ReleaseMode)
	}

	router := gin.New()
	middleware.Setup(router, opts)

	return router
}

func SetupUserRouter(h *handler.UserHandler, opts middleware.Options) *gin.Engine {
	router := newRouter(opts)

	router.GET("/", h.Index)
	router.GET("/users", h.FindAll)
	router.GET("/user/:id", h.FindByID)
	router.POST("/create", h.Create)
	router.PUT("/update/:id", h.Update)
	router.PUT("/delete/:id", h.SoftDelete)
	router.DELETE("/delete/physics/:id", h.HardDelete)
	router.GET("/alive", h.Alive)

	return router
}

func SetupKVRouter(h *handler.KVHandler, opts middleware.Options) *gin.Engine {
	router := newRouter(opts)

	router.GET("/get", h.Get)
	router.GET("/set", h.Set)
	router.GET("/watcher", h.Watch)

	return router
}
