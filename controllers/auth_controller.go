package controllers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/lly61/TaskFlow/middleware"
	"github.com/lly61/TaskFlow/models"
	"github.com/lly61/TaskFlow/utils"
)

// AuthController handles registration, login, logout and session lookup.
type AuthController struct {
	DB      *gorm.DB
	Logger  *zap.SugaredLogger
	Issuer  *utils.TokenIssuer
	Limiter *utils.LoginLimiter
}

// Register creates a new account. Duplicate emails are rejected before the
// row is written; the unique index backs this up against races.
func (ac *AuthController) Register(c *gin.Context) {
	var req models.RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if req.Email == "" || req.Password == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "email and password are required"})
		return
	}

	var existing models.User
	if err := ac.DB.Where("email = ?", req.Email).First(&existing).Error; err == nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "email already registered"})
		return
	}

	hash, err := utils.HashPassword(req.Password)
	if err != nil {
		ac.Logger.Errorw("password hashing failed", "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "registration failed"})
		return
	}

	user := models.User{
		ID:       utils.GenerateID(),
		Email:    req.Email,
		Password: hash,
		Name:     req.Name,
	}
	if user.Name == "" {
		user.Name = user.GetDisplayName()
	}

	if err := ac.DB.Create(&user).Error; err != nil {
		ac.Logger.Errorw("user creation failed", "error", err, "email", req.Email)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "registration failed"})
		return
	}

	ac.Logger.Infow("user registered", "userID", user.ID)

	c.JSON(http.StatusOK, gin.H{"id": user.ID})
}

// Login verifies credentials and issues the session cookie.
func (ac *AuthController) Login(c *gin.Context) {
	var req models.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	ctx := c.Request.Context()
	ip := c.ClientIP()

	if ac.Limiter.Blocked(ctx, req.Email, ip) {
		c.JSON(http.StatusTooManyRequests, gin.H{"error": "too many failed attempts, try again later"})
		return
	}

	var user models.User
	err := ac.DB.Where("email = ?", req.Email).First(&user).Error
	if err != nil || !utils.CheckPassword(user.Password, req.Password) {
		ac.Limiter.RecordFailure(ctx, req.Email, ip)
		c.JSON(http.StatusUnauthorized, gin.H{"error": "invalid email or password"})
		return
	}

	ac.Limiter.Reset(ctx, req.Email, ip)

	token, err := ac.Issuer.GenerateToken(user.ID, user.Email, user.Name)
	if err != nil {
		ac.Logger.Errorw("token generation failed", "error", err, "userID", user.ID)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "login failed"})
		return
	}

	now := time.Now()
	if err := ac.DB.Model(&user).Update("last_login", &now).Error; err != nil {
		ac.Logger.Warnw("last login update failed", "error", err, "userID", user.ID)
	}

	c.SetSameSite(http.SameSiteNoneMode)
	c.SetCookie(middleware.SessionCookie, token, int(utils.SessionDuration.Seconds()), "/", "", true, true)

	c.JSON(http.StatusOK, models.UserResponse{
		ID:    user.ID,
		Email: user.Email,
		Name:  user.Name,
	})
}

// Logout clears the session cookie. Always succeeds.
func (ac *AuthController) Logout(c *gin.Context) {
	c.SetSameSite(http.SameSiteNoneMode)
	c.SetCookie(middleware.SessionCookie, "", -1, "/", "", true, true)
	c.JSON(http.StatusOK, gin.H{"success": true})
}

// Me returns the identity claims of the current session.
func (ac *AuthController) Me(c *gin.Context) {
	c.JSON(http.StatusOK, models.UserResponse{
		ID:    c.GetString(middleware.ContextUserID),
		Email: c.GetString(middleware.ContextEmail),
		Name:  c.GetString(middleware.ContextName),
	})
}
