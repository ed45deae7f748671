package api

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

const notFoundMessage = "Workout not found."

// abortWithError ends the request with a single failure message.
func abortWithError(c *gin.Context, code int, message string) {
	c.AbortWithStatusJSON(code, gin.H{"ok": false, "error": message})
}

// abortWithValidationErrors ends the request with the ordered list of rule
// violations so the UI can render targeted feedback.
func abortWithValidationErrors(c *gin.Context, errs []string) {
	c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{"ok": false, "errors": errs})
}

func abortNotFound(c *gin.Context) {
	abortWithError(c, http.StatusNotFound, notFoundMessage)
}
