package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/dochouse/doc-house-server/internal/utils"
)

// IssueToken signs whatever JSON object the client posts (at least an email)
// into a one-hour bearer token. There is no credential check here; identity
// is established by the site's external sign-in flow before this is called.
func (h *Handler) IssueToken(c *gin.Context) {
	var payload map[string]any
	if err := c.ShouldBindJSON(&payload); err != nil {
		respondError(c, http.StatusBadRequest, "request body required")
		return
	}

	token, err := utils.GenerateToken(h.TokenSecret, payload)
	if err != nil {
		h.Log.WithError(err).Error("failed to sign token")
		respondError(c, http.StatusInternalServerError, "could not generate token")
		return
	}

	c.JSON(http.StatusOK, gin.H{"token": token})
}
