package http

import (
	"github.com/gin-gonic/gin"

	"github.com/drxlabs/drx-backend/internal/authz"
	"github.com/drxlabs/drx-backend/internal/model"
	"github.com/drxlabs/drx-backend/internal/view"
)

const adminSecretHeader = "X-Admin-Secret"

// adminGated rejects requests whose shared secret the gate does not accept.
// Privileged transitions (approve, sent, complete, manual credit/debit) sit
// behind this.
func adminGated(gate authz.Gate) gin.HandlerFunc {
	return func(c *gin.Context) {
		if !gate.Authorize(c.GetHeader(adminSecretHeader)) {
			err := model.ErrUnauthorized
			c.AbortWithStatusJSON(view.ErrorStatus(err),
				view.CreateResponse[any](nil, err, nil, "admin authorization required"))
			return
		}

		c.Next()
	}
}
