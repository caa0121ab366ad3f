package withdraw

import "github.com/gin-gonic/gin"

type IHandler interface {
	Create(c *gin.Context)
	Approve(c *gin.Context)
	MarkSent(c *gin.Context)
	List(c *gin.Context)
}
