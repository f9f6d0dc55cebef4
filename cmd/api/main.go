package main

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/dochouse/doc-house-server/internal/config"
	"github.com/dochouse/doc-house-server/internal/handlers"
	"github.com/dochouse/doc-house-server/internal/middleware"
	"github.com/dochouse/doc-house-server/internal/services"
)

func main() {
	cfg := config.Load()

	logger := logrus.New()
	logger.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})
	if cfg.AccessTokenSecret == "" {
		logger.Warn("ACCESS_TOKEN is not set; token issuing and verification will fail")
	}

	// --- Database Connection ---
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	client, err := mongo.Connect(ctx, options.Client().ApplyURI(cfg.MongoURI))
	if err != nil {
		logger.Fatalf("Invalid MongoDB configuration: %v", err)
	}
	defer client.Disconnect(context.Background())

	// The connection is lazy; ping so startup logs tell the truth. A dead
	// store is logged but the server still comes up, same as it always has.
	if err := client.Ping(ctx, nil); err != nil {
		logger.WithError(err).Warn("MongoDB is unreachable, continuing anyway")
	} else {
		logger.Info("Successfully connected to MongoDB!")
	}
	db := client.Database(cfg.Database)

	// --- Services and Handlers ---
	payments := services.NewStripeService(cfg.StripeSecretKey)
	secret := []byte(cfg.AccessTokenSecret)
	h := handlers.NewHandler(db, secret, payments, logger)

	// --- Gin Router ---
	r := gin.Default()

	r.Use(cors.New(cors.Config{
		AllowAllOrigins: true,
		AllowMethods:    []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:    []string{"Origin", "Content-Type", "Authorization"},
	}))

	auth := middleware.RequireAuth(secret)
	admin := middleware.RequireAdmin(h.RoleByEmail)

	// --- Routes ---
	r.GET("/", func(c *gin.Context) {
		c.String(http.StatusOK, "server is running")
	})
	r.POST("/jwt", h.IssueToken)

	// doctor catalog (admin panel)
	r.POST("/add-doctors", auth, admin, h.AddDoctor)
	r.GET("/all-doctors", auth, admin, h.GetAllDoctors)
	r.DELETE("/delete-doctors/:id", auth, admin, h.DeleteDoctor)

	// featured doctors (public site)
	r.POST("/doctors", auth, h.CreateSpecialDoctor)
	r.GET("/doctors", h.GetSpecialDoctors)
	r.GET("/doctors/:id", h.GetSpecialDoctor)

	r.GET("/services", h.GetServices)

	r.POST("/appointments", auth, h.CreateAppointment)
	r.GET("/appointments", auth, h.GetAppointments)
	r.PATCH("/appointments/:id", h.MarkAppointmentPaid)

	r.POST("/users", h.CreateUser)
	r.GET("/users", auth, admin, h.GetUsers)
	r.PATCH("/users/:id", h.PromoteUser)
	r.DELETE("/users/:id", h.DeleteUser)
	r.GET("/users/admin/:email", h.CheckAdmin)

	r.POST("/stripe-key", auth, h.CreatePaymentIntent)

	logger.Infof("Starting server on port %s", cfg.Port)
	if err := r.Run(":" + cfg.Port); err != nil {
		logger.Fatalf("Server stopped: %v", err)
	}
}
