package handlers

import (
	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/dochouse/doc-house-server/internal/services"
)

// Collection names predate this service; keep them so existing data works.
const (
	colSpecialDoctors = "doctors"
	colDoctors        = "allDoctors"
	colServices       = "services"
	colAppointments   = "appointments"
	colUsers          = "users"
)

type Handler struct {
	DB          *mongo.Database
	TokenSecret []byte
	Payments    services.PaymentService
	Log         *logrus.Logger
}

func NewHandler(db *mongo.Database, tokenSecret []byte, payments services.PaymentService, log *logrus.Logger) *Handler {
	return &Handler{
		DB:          db,
		TokenSecret: tokenSecret,
		Payments:    payments,
		Log:         log,
	}
}

// respondError writes the error shape every explicit business-rule check uses.
func respondError(c *gin.Context, status int, message string) {
	c.JSON(status, gin.H{"error": true, "message": message})
}
