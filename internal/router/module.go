package router

import "github.com/gin-gonic/gin"

// Module is one service's route set. Each foodcourt binary registers
// exactly the modules it serves.
type Module interface {
	Register(rg *gin.RouterGroup)
}
