package handlers

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/mongo"

	"ealert.io/config"
	"ealert.io/src/models"
)

type AlertHandler struct {
	alerts *mongo.Collection
}

func NewAlertHandler() *AlertHandler {
	return &AlertHandler{
		alerts: config.GetCollection("alerts"),
	}
}

type alertRequest struct {
	Name    string `json:"name"`
	Address string `json:"address"`
	Contact string `json:"contact"`
}

// Create records an incident. The name is not checked against the users
// collection; alerts are free-text incident reports.
func (h *AlertHandler) Create(c *gin.Context) {
	var req alertRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Missing user details."})
		return
	}

	if req.Name == "" || req.Address == "" || req.Contact == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Missing user details."})
		return
	}

	if h.alerts == nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error."})
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	alert := models.Alert{
		Name:      req.Name,
		Address:   req.Address,
		Contact:   req.Contact,
		Timestamp: time.Now(),
	}

	if _, err := h.alerts.InsertOne(ctx, alert); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error."})
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true})
}
