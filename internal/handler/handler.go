package handler

import "github.com/gin-gonic/gin"

// Handler is implemented by every route group in the API.
type Handler interface {
	RegisterRoutes(r *gin.RouterGroup)
}
