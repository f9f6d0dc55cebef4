package handlers

import "github.com/gin-gonic/gin"

// GetServices lists the public service catalog. There is no write route;
// services are seeded directly in the store.
func (h *Handler) GetServices(c *gin.Context) {
	h.listCollection(c, colServices)
}
