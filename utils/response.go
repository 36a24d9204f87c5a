package utils

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// RespondSuccess sends the {success: true, ...} write envelope with any
// extra payload fields merged in.
func RespondSuccess(c *gin.Context, extra gin.H) {
	body := gin.H{"success": true}
	for k, v := range extra {
		body[k] = v
	}
	c.JSON(http.StatusOK, body)
}

// RespondFailure sends the {success: false, error} write envelope. The
// backend reports rejections in-band; the transport status stays 200.
func RespondFailure(c *gin.Context, err error) {
	c.JSON(http.StatusOK, gin.H{"success": false, "error": err.Error()})
}
