package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// EnvCheckHandler reports whether the two store configuration values are
// present, and their lengths. Diagnostic only; the values themselves are
// never echoed.
type EnvCheckHandler struct {
	storeURL string
	storeKey string
}

func NewEnvCheckHandler(storeURL, storeKey string) *EnvCheckHandler {
	return &EnvCheckHandler{storeURL: storeURL, storeKey: storeKey}
}

// GET /env-check
func (eh *EnvCheckHandler) Check(c *gin.Context) {
	hasURL := eh.storeURL != ""
	hasKey := eh.storeKey != ""
	c.JSON(http.StatusOK, gin.H{
		"ok":        hasURL && hasKey,
		"hasUrl":    hasURL,
		"hasKey":    hasKey,
		"urlLength": len(eh.storeURL),
		"keyLength": len(eh.storeKey),
	})
}
