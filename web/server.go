package web

import (
	"github.com/gin-gonic/gin"

	"iris-eda/dispatch"
	"iris-eda/rock-share/base/config"
)

const formatText = "text"

// NewEngine 注册全部路由，gin mode 由调用方设置
func NewEngine(d *dispatch.Dispatcher, page config.PageConfig) *gin.Engine {
	h := &handler{dispatcher: d, page: page}

	r := gin.New()
	r.Use(requestLogger(), gin.Recovery())
	r.SetHTMLTemplate(newTemplate())

	r.GET("/", h.index)
	r.GET("/plot.png", h.plot)
	r.GET("/healthz", h.healthz)

	api := r.Group("/api")
	{
		api.GET("/modes", h.modes)
		api.GET("/dataset", h.dataset)
		api.GET("/summary", h.summary)
		api.GET("/render", h.render)
	}
	return r
}
