package handlers

import (
	"errors"
	"net/http"
	"time"

	"apparel-backend/auth"
	"apparel-backend/models"
	"apparel-backend/store"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type AuthHandler struct {
	users  store.UserStore
	secret []byte
}

func NewAuthHandler(users store.UserStore, secret []byte) *AuthHandler {
	return &AuthHandler{users: users, secret: secret}
}

func (h *AuthHandler) Register(c *gin.Context) {
	var input models.RegisterInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input: " + err.Error()})
		return
	}

	_, err := h.users.FindByEmail(c.Request.Context(), input.Email)
	if err == nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Email already registered"})
		return
	}
	if !errors.Is(err, store.ErrNotFound) {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to check email: " + err.Error()})
		return
	}

	hashed, err := auth.HashPassword(input.Password)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to hash password"})
		return
	}

	user := models.User{
		ID:        uuid.NewString(),
		Email:     input.Email,
		Password:  hashed,
		Name:      input.Name,
		Phone:     input.Phone,
		Address:   input.Address,
		Role:      "user",
		CreatedAt: time.Now().UTC(),
	}
	if err := h.users.Insert(c.Request.Context(), &user); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create user: " + err.Error()})
		return
	}

	token, err := auth.NewToken(h.secret, user.ID, user.Email, user.Role)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to issue token"})
		return
	}

	c.JSON(http.StatusOK, models.TokenResponse{Token: token, User: models.NewUserView(&user)})
}

func (h *AuthHandler) Login(c *gin.Context) {
	var input models.LoginInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input: " + err.Error()})
		return
	}

	// Unknown email and wrong password answer identically so the
	// response does not leak which check failed.
	user, err := h.users.FindByEmail(c.Request.Context(), input.Email)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid credentials"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to look up user: " + err.Error()})
		return
	}
	if !auth.CheckPassword(input.Password, user.Password) {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid credentials"})
		return
	}

	token, err := auth.NewToken(h.secret, user.ID, user.Email, user.Role)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to issue token"})
		return
	}

	c.JSON(http.StatusOK, models.TokenResponse{Token: token, User: models.NewUserView(user)})
}

func (h *AuthHandler) GetProfile(c *gin.Context) {
	user := currentUser(c)
	c.JSON(http.StatusOK, models.NewUserView(user))
}

func (h *AuthHandler) UpdateProfile(c *gin.Context) {
	user := currentUser(c)

	var input models.ProfileInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input: " + err.Error()})
		return
	}

	err := h.users.UpdateProfile(c.Request.Context(), user.ID, input.Name, input.Phone, input.Address)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "User not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update profile: " + err.Error()})
		return
	}

	updated, err := h.users.FindByID(c.Request.Context(), user.ID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load profile: " + err.Error()})
		return
	}
	c.JSON(http.StatusOK, models.NewUserView(updated))
}
