package handlers

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"ealert.io/config"
	"ealert.io/src/models"
)

type AuthHandler struct {
	users *mongo.Collection
}

func NewAuthHandler() *AuthHandler {
	return &AuthHandler{
		users: config.GetCollection("users"),
	}
}

type registerRequest struct {
	Name    string `json:"name"`
	Age     string `json:"age"`
	Gender  string `json:"gender"`
	Address string `json:"address"`
	Contact string `json:"contact"`
	Code    string `json:"code"`
}

type loginRequest struct {
	Name string `json:"name"`
	Code string `json:"code"`
}

// Register creates a new user. Name uniqueness is pre-checked for a clean
// error message, but the unique index on users.name is what actually
// guarantees it: a concurrent insert that loses the race surfaces as a
// duplicate-key error and is reported as the same conflict.
func (h *AuthHandler) Register(c *gin.Context) {
	var req registerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "All fields are required."})
		return
	}

	if req.Name == "" || req.Age == "" || req.Gender == "" ||
		req.Address == "" || req.Contact == "" || req.Code == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "All fields are required."})
		return
	}

	if !models.ValidCode(req.Code) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Password must be a 5-digit code."})
		return
	}

	if h.users == nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error."})
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	err := h.users.FindOne(ctx, bson.M{"name": req.Name}).Err()
	if err == nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "User with this name already exists."})
		return
	}
	if err != mongo.ErrNoDocuments {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error."})
		return
	}

	now := time.Now()
	user := models.User{
		Name:      req.Name,
		Age:       req.Age,
		Gender:    req.Gender,
		Address:   req.Address,
		Contact:   req.Contact,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := user.SetCode(req.Code); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error."})
		return
	}

	result, err := h.users.InsertOne(ctx, user)
	if err != nil {
		if mongo.IsDuplicateKeyError(err) {
			c.JSON(http.StatusBadRequest, gin.H{"error": "User with this name already exists."})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error."})
		return
	}

	user.ID = result.InsertedID.(primitive.ObjectID)

	c.JSON(http.StatusCreated, gin.H{
		"success": true,
		"user":    user,
	})
}

// Login authenticates a user by name and access code. Every failure mode is
// reported as the same 401 so callers cannot probe which names exist.
func (h *AuthHandler) Login(c *gin.Context) {
	var req loginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid credentials."})
		return
	}

	if req.Name == "" || req.Code == "" {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid credentials."})
		return
	}

	if h.users == nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error."})
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	var user models.User
	err := h.users.FindOne(ctx, bson.M{"name": req.Name}).Decode(&user)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			// Burn a compare so a lookup miss takes as long as a wrong code.
			models.CompareDummyCode(req.Code)
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid credentials."})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error."})
		return
	}

	if !user.CheckCode(req.Code) {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid credentials."})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"user":    user,
	})
}
