// api/router.go
package api

import (
	"github.com/gin-gonic/gin"
)

func NewRouter(s *Server) *gin.Engine {
	r := gin.Default()

	apiGroup := r.Group("/api")
	{
		r.GET("/api/meta", MetaHandler(s))

		// служебные маршруты — СНАЧАЛА
		r.POST("/api/admin/reload", AdminReloadHandler(s))
		r.POST("/api/admin/import", ImportHandler(s))
		apiGroup.GET("/lint", LintHandler(s))

		// справочники
		apiGroup.GET("/enums", ListHandler(s))
		apiGroup.GET("/enums/:group/:name", GetOneHandler(s))
		apiGroup.GET("/enums/:group/:name/options", OptionsHandler(s))
		apiGroup.GET("/enums/:group/:name/select", SelectHandler(s))
		apiGroup.POST("/enums/:group/:name/validate", ValidateHandler(s))
	}

	return r
}

func RunServer(addr string, s *Server) {
	_ = NewRouter(s).Run(addr)
}
