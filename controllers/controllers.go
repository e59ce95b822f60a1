package controllers

import (
	"net/http"

	"backend/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// serverError logs the cause and surfaces only a generic message to the caller.
func serverError(c *gin.Context, handler, message string, err error) {
	utils.Logger.Error(handler, zap.Error(err))
	utils.ErrorCount.WithLabelValues(handler, "server_error").Inc()
	c.JSON(http.StatusInternalServerError, gin.H{"error": message})
}
