package bridge

import "github.com/gin-gonic/gin"

type IHandler interface {
	Create(c *gin.Context)
	Approve(c *gin.Context)
	Complete(c *gin.Context)
	List(c *gin.Context)
}
