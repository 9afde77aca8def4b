package v1

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
)

func (h *handlerImpl) HandleHealth(c *gin.Context) {
	if _, ok := h.mustPrincipal(c); !ok {
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success":     true,
		"server_name": "week list server",
		"time":        time.Now().Format("02/01/2006, 03:04 pm"),
		"status":      "active",
	})
}
