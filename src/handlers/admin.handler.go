package handlers

import (
	"context"
	"crypto/subtle"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"ealert.io/config"
	"ealert.io/src/models"
	"ealert.io/src/utils"
)

type AdminHandler struct {
	users  *mongo.Collection
	alerts *mongo.Collection
	cfg    *config.Config
}

func NewAdminHandler(cfg *config.Config) *AdminHandler {
	return &AdminHandler{
		users:  config.GetCollection("users"),
		alerts: config.GetCollection("alerts"),
		cfg:    cfg,
	}
}

type adminLoginRequest struct {
	Name     string `json:"name"`
	Password string `json:"password"`
}

// Login checks the operator credential and issues the bearer token that the
// admin listing endpoints require.
func (h *AdminHandler) Login(c *gin.Context) {
	var req adminLoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid admin credentials."})
		return
	}

	match := subtle.ConstantTimeCompare([]byte(req.Password), []byte(h.cfg.AdminPassword)) == 1
	if req.Name == "" || !match {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid admin credentials."})
		return
	}

	token, err := utils.GenerateAdminToken(req.Name, h.cfg.JWTSecret, h.cfg.JWTTTL)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error."})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"token":   token,
	})
}

// ListUsers returns every registered user. The credential hash is projected
// out at the store so it never crosses the wire.
func (h *AdminHandler) ListUsers(c *gin.Context) {
	if h.users == nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error."})
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	opts := options.Find().SetProjection(bson.M{"code_hash": 0})

	cursor, err := h.users.Find(ctx, bson.M{}, opts)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error."})
		return
	}
	defer cursor.Close(ctx)

	users := []models.User{}
	if err = cursor.All(ctx, &users); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error."})
		return
	}

	c.JSON(http.StatusOK, gin.H{"users": users})
}

// ListAlerts returns every alert, most recent first.
func (h *AdminHandler) ListAlerts(c *gin.Context) {
	if h.alerts == nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error."})
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	opts := options.Find().SetSort(bson.D{{Key: "timestamp", Value: -1}})

	cursor, err := h.alerts.Find(ctx, bson.M{}, opts)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error."})
		return
	}
	defer cursor.Close(ctx)

	alerts := []models.Alert{}
	if err = cursor.All(ctx, &alerts); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error."})
		return
	}

	c.JSON(http.StatusOK, gin.H{"alerts": alerts})
}
