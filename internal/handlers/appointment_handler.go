package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/dochouse/doc-house-server/internal/middleware"
	"github.com/dochouse/doc-house-server/internal/models"
)

// CreateAppointment stores a booking. The payload is free-form apart from
// the owner email and status; new bookings start out pending.
func (h *Handler) CreateAppointment(c *gin.Context) {
	var appointment bson.M
	if err := c.ShouldBindJSON(&appointment); err != nil {
		respondError(c, http.StatusBadRequest, "invalid request body")
		return
	}
	if _, ok := appointment["status"]; !ok {
		appointment["status"] = models.AppointmentPending
	}

	res, err := h.DB.Collection(colAppointments).InsertOne(c.Request.Context(), appointment)
	if err != nil {
		h.Log.WithError(err).Error("failed to insert appointment")
		respondError(c, http.StatusInternalServerError, "failed to create appointment")
		return
	}

	c.JSON(http.StatusOK, gin.H{"insertedId": res.InsertedID})
}

// GetAppointments lists appointments, scoped by the requester's stored role:
// admins see everything, everyone else only their own. A non-admin asking for
// another email gets 401 (the status the frontend has always handled here).
func (h *Handler) GetAppointments(c *gin.Context) {
	ctx := c.Request.Context()
	tokenEmail := c.GetString(middleware.ContextEmailKey)

	role, err := h.RoleByEmail(ctx, tokenEmail)
	if err != nil {
		h.Log.WithError(err).Error("failed to look up requester role")
		respondError(c, http.StatusInternalServerError, "failed to retrieve appointments")
		return
	}

	filter, ok := scopeAppointments(role, tokenEmail, c.Query("email"))
	if !ok {
		respondError(c, http.StatusUnauthorized, "forbidden access")
		return
	}

	cursor, err := h.DB.Collection(colAppointments).Find(ctx, filter)
	if err != nil {
		h.Log.WithError(err).Error("failed to list appointments")
		respondError(c, http.StatusInternalServerError, "failed to retrieve appointments")
		return
	}
	defer cursor.Close(ctx)

	var appointments []bson.M
	if err := cursor.All(ctx, &appointments); err != nil {
		h.Log.WithError(err).Error("failed to decode appointments")
		respondError(c, http.StatusInternalServerError, "failed to decode appointments")
		return
	}
	if appointments == nil {
		appointments = make([]bson.M, 0)
	}

	c.JSON(http.StatusOK, appointments)
}

// scopeAppointments decides what an authenticated caller may list. Admins get
// the unfiltered collection regardless of the email query; everyone else must
// ask for exactly their own email.
func scopeAppointments(role models.Role, tokenEmail, requestedEmail string) (bson.M, bool) {
	if role.IsAdmin() {
		return bson.M{}, true
	}
	if requestedEmail != tokenEmail {
		return nil, false
	}
	return bson.M{"email": requestedEmail}, true
}

// MarkAppointmentPaid records a completed payment: status flips to paid and
// the supplied transaction id is stored. The route is deliberately open; the
// payment page calls it right after Stripe confirms, before any session
// exists. No verification against Stripe happens here.
func (h *Handler) MarkAppointmentPaid(c *gin.Context) {
	id, err := primitive.ObjectIDFromHex(c.Param("id"))
	if err != nil {
		respondError(c, http.StatusBadRequest, "invalid id")
		return
	}

	var req struct {
		TransactionID string `json:"tranjactionId"`
	}
	// An empty body still marks the appointment paid, matching the old API.
	_ = c.ShouldBindJSON(&req)

	res, err := h.DB.Collection(colAppointments).UpdateOne(
		c.Request.Context(),
		bson.M{"_id": id},
		bson.M{"$set": bson.M{
			"status":        models.AppointmentPaid,
			"tranjactionId": req.TransactionID,
		}},
	)
	if err != nil {
		h.Log.WithError(err).Error("failed to update appointment")
		respondError(c, http.StatusInternalServerError, "failed to update appointment")
		return
	}

	c.JSON(http.StatusOK, gin.H{"matchedCount": res.MatchedCount, "modifiedCount": res.ModifiedCount})
}
