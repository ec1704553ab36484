package handler

import (
	"net/http"
	"os"

	"github.com/gin-gonic/gin"
)

// Health returns a JSON health check response. The only external
// dependency is the data directory; a printer that is down must not
// mark the terminal unhealthy.
func Health(dataDir string) gin.HandlerFunc {
	return func(c *gin.Context) {
		datosStatus := "ok"
		if info, err := os.Stat(dataDir); err != nil || !info.IsDir() {
			datosStatus = "error"
		}

		status := http.StatusOK
		if datosStatus != "ok" {
			status = http.StatusServiceUnavailable
		}

		c.JSON(status, gin.H{
			"ok":    status == http.StatusOK,
			"datos": datosStatus,
		})
	}
}
