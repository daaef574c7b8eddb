package httpserver

import (
	"net/http"
	"time"

	"ravio-storefront/internal/service/drops"
	"github.com/gin-gonic/gin"
)

func nextDropHandler(svc *drops.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		now := time.Now().UTC()
		c.JSON(http.StatusOK, gin.H{
			"dropsAt":   svc.NextDropAt().UTC().Format(time.RFC3339),
			"countdown": svc.Until(now),
		})
	}
}
