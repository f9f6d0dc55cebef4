package handlers

import (
	"context"
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/dochouse/doc-house-server/internal/models"
)

// RoleByEmail resolves the stored role for an email; a missing user counts
// as a regular (unset-role) user. Also wired into the admin guard.
func (h *Handler) RoleByEmail(ctx context.Context, email string) (models.Role, error) {
	var user models.User
	err := h.DB.Collection(colUsers).FindOne(ctx, bson.M{"email": email}).Decode(&user)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return models.RoleUnset, nil
	}
	if err != nil {
		return models.RoleUnset, err
	}
	return user.Role, nil
}

// CreateUser registers a user on first sign-in. Re-posting an email that
// already exists answers an empty object and changes nothing, so the frontend
// can call this on every login. The find-then-insert is not atomic; two
// simultaneous first sign-ins can both insert (kept as-is for compatibility,
// a unique index on email would close it).
func (h *Handler) CreateUser(c *gin.Context) {
	var data bson.M
	if err := c.ShouldBindJSON(&data); err != nil {
		respondError(c, http.StatusBadRequest, "invalid request body")
		return
	}

	ctx := c.Request.Context()
	email, _ := data["email"].(string)

	users := h.DB.Collection(colUsers)
	var existing models.User
	err := users.FindOne(ctx, bson.M{"email": email}).Decode(&existing)
	if err == nil && existing.Email == email {
		c.JSON(http.StatusOK, gin.H{})
		return
	}
	if err != nil && !errors.Is(err, mongo.ErrNoDocuments) {
		h.Log.WithError(err).Error("failed to look up user")
		respondError(c, http.StatusInternalServerError, "failed to create user")
		return
	}

	res, err := users.InsertOne(ctx, data)
	if err != nil {
		h.Log.WithError(err).Error("failed to insert user")
		respondError(c, http.StatusInternalServerError, "failed to create user")
		return
	}

	h.Log.WithField("email", email).Info("user registered")
	c.JSON(http.StatusOK, gin.H{"insertedId": res.InsertedID})
}

// GetUsers lists every user document (admin only).
func (h *Handler) GetUsers(c *gin.Context) {
	h.listCollection(c, colUsers)
}

// PromoteUser sets a user's role to admin.
func (h *Handler) PromoteUser(c *gin.Context) {
	id, err := primitive.ObjectIDFromHex(c.Param("id"))
	if err != nil {
		respondError(c, http.StatusBadRequest, "invalid id")
		return
	}

	res, err := h.DB.Collection(colUsers).UpdateOne(
		c.Request.Context(),
		bson.M{"_id": id},
		bson.M{"$set": bson.M{"role": models.RoleAdmin}},
	)
	if err != nil {
		h.Log.WithError(err).Error("failed to promote user")
		respondError(c, http.StatusInternalServerError, "failed to update user")
		return
	}

	c.JSON(http.StatusOK, gin.H{"matchedCount": res.MatchedCount, "modifiedCount": res.ModifiedCount})
}

// DeleteUser removes a user by id.
func (h *Handler) DeleteUser(c *gin.Context) {
	id, err := primitive.ObjectIDFromHex(c.Param("id"))
	if err != nil {
		respondError(c, http.StatusBadRequest, "invalid id")
		return
	}

	res, err := h.DB.Collection(colUsers).DeleteOne(c.Request.Context(), bson.M{"_id": id})
	if err != nil {
		h.Log.WithError(err).Error("failed to delete user")
		respondError(c, http.StatusInternalServerError, "failed to delete user")
		return
	}

	c.JSON(http.StatusOK, gin.H{"deletedCount": res.DeletedCount})
}

// CheckAdmin tells the frontend whether an email belongs to an admin, so it
// can decide which dashboard to render. Unknown emails are simply not admins.
func (h *Handler) CheckAdmin(c *gin.Context) {
	role, err := h.RoleByEmail(c.Request.Context(), c.Param("email"))
	if err != nil {
		h.Log.WithError(err).Error("failed to check admin role")
		respondError(c, http.StatusInternalServerError, "failed to check role")
		return
	}

	c.JSON(http.StatusOK, gin.H{"admin": role.IsAdmin()})
}
