package wallet

import "github.com/gin-gonic/gin"

type IHandler interface {
	Get(c *gin.Context)
	Credit(c *gin.Context)
	Debit(c *gin.Context)
	Purchase(c *gin.Context)
	CompleteMission(c *gin.Context)
}
