package http

import "github.com/gin-gonic/gin"

// Register attaches app routes to the given router group.
func (h *Handler) Register(rg *gin.RouterGroup) {
	rg.GET("", h.list)
	rg.POST("/create", h.create)
	rg.GET("/:id", h.get)
	rg.PUT("/:id", h.update)
	rg.DELETE("/:id", h.delete)
	rg.POST("/:id/upload-apk", h.uploadAPK)
	rg.GET("/:id/preview", h.preview)
	rg.POST("/:id/generate-apk", h.generateAPK)
	rg.GET("/:id/apk-status", h.apkStatus)
}
