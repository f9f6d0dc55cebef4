package handlers

import (
	"math"
	"net/http"

	"github.com/gin-gonic/gin"
)

// CreatePaymentIntent creates a Stripe payment intent for price dollars and
// returns its client secret. A missing (or zero) price writes no response at
// all, which gin turns into an empty 200; the old API behaved the same way
// and the payment page guards against it client-side.
func (h *Handler) CreatePaymentIntent(c *gin.Context) {
	var req struct {
		Price float64 `json:"price"`
	}
	_ = c.ShouldBindJSON(&req)
	if req.Price == 0 {
		return
	}

	// Round rather than truncate: 19.99 dollars is 1999 cents, not 1998.
	amount := int64(math.Round(req.Price * 100))
	clientSecret, err := h.Payments.CreateIntent(c.Request.Context(), amount)
	if err != nil {
		h.Log.WithError(err).Error("failed to create payment intent")
		respondError(c, http.StatusInternalServerError, "failed to create payment intent")
		return
	}

	c.JSON(http.StatusOK, gin.H{"clientSecret": clientSecret})
}
