package internal

import "github.com/gin-gonic/gin"

type GlobalHandler interface {
	RegisterRoutes(router gin.IRouter)
}
