package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

// Doctor documents are free-form: whatever the admin panel posts is stored
// and returned verbatim, so handlers pass bson.M through instead of binding
// a struct.

// AddDoctor inserts a doctor into the admin-managed catalog.
func (h *Handler) AddDoctor(c *gin.Context) {
	var doctor bson.M
	if err := c.ShouldBindJSON(&doctor); err != nil {
		respondError(c, http.StatusBadRequest, "invalid request body")
		return
	}

	res, err := h.DB.Collection(colDoctors).InsertOne(c.Request.Context(), doctor)
	if err != nil {
		h.Log.WithError(err).Error("failed to insert doctor")
		respondError(c, http.StatusInternalServerError, "failed to insert doctor")
		return
	}

	c.JSON(http.StatusOK, gin.H{"insertedId": res.InsertedID})
}

// GetAllDoctors lists the admin-managed catalog.
func (h *Handler) GetAllDoctors(c *gin.Context) {
	h.listCollection(c, colDoctors)
}

// DeleteDoctor removes a catalog doctor by id.
func (h *Handler) DeleteDoctor(c *gin.Context) {
	id, err := primitive.ObjectIDFromHex(c.Param("id"))
	if err != nil {
		respondError(c, http.StatusBadRequest, "invalid id")
		return
	}

	res, err := h.DB.Collection(colDoctors).DeleteOne(c.Request.Context(), bson.M{"_id": id})
	if err != nil {
		h.Log.WithError(err).Error("failed to delete doctor")
		respondError(c, http.StatusInternalServerError, "failed to delete doctor")
		return
	}

	c.JSON(http.StatusOK, gin.H{"deletedCount": res.DeletedCount})
}

// CreateSpecialDoctor inserts into the featured-doctor collection. Any
// authenticated caller may do this; the public site reads the result.
func (h *Handler) CreateSpecialDoctor(c *gin.Context) {
	var doctor bson.M
	if err := c.ShouldBindJSON(&doctor); err != nil {
		respondError(c, http.StatusBadRequest, "invalid request body")
		return
	}

	res, err := h.DB.Collection(colSpecialDoctors).InsertOne(c.Request.Context(), doctor)
	if err != nil {
		h.Log.WithError(err).Error("failed to insert special doctor")
		respondError(c, http.StatusInternalServerError, "failed to insert doctor")
		return
	}

	c.JSON(http.StatusOK, gin.H{"insertedId": res.InsertedID})
}

// GetSpecialDoctors lists the public featured doctors.
func (h *Handler) GetSpecialDoctors(c *gin.Context) {
	h.listCollection(c, colSpecialDoctors)
}

// GetSpecialDoctor returns one featured doctor, or null when the id matches
// nothing (the frontend checks for that).
func (h *Handler) GetSpecialDoctor(c *gin.Context) {
	id, err := primitive.ObjectIDFromHex(c.Param("id"))
	if err != nil {
		respondError(c, http.StatusBadRequest, "invalid id")
		return
	}

	var doctor bson.M
	err = h.DB.Collection(colSpecialDoctors).FindOne(c.Request.Context(), bson.M{"_id": id}).Decode(&doctor)
	if errors.Is(err, mongo.ErrNoDocuments) {
		c.JSON(http.StatusOK, nil)
		return
	}
	if err != nil {
		h.Log.WithError(err).Error("failed to fetch special doctor")
		respondError(c, http.StatusInternalServerError, "failed to fetch doctor")
		return
	}

	c.JSON(http.StatusOK, doctor)
}

// listCollection returns every document of a collection as-is.
func (h *Handler) listCollection(c *gin.Context, name string) {
	ctx := c.Request.Context()
	cursor, err := h.DB.Collection(name).Find(ctx, bson.M{})
	if err != nil {
		h.Log.WithError(err).WithField("collection", name).Error("failed to list collection")
		respondError(c, http.StatusInternalServerError, "failed to retrieve documents")
		return
	}
	defer cursor.Close(ctx)

	var docs []bson.M
	if err := cursor.All(ctx, &docs); err != nil {
		h.Log.WithError(err).WithField("collection", name).Error("failed to decode documents")
		respondError(c, http.StatusInternalServerError, "failed to decode documents")
		return
	}
	if docs == nil {
		docs = make([]bson.M, 0)
	}

	c.JSON(http.StatusOK, docs)
}
