package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/zamtransit/vendor-portal-backend/internal/config"
	"github.com/zamtransit/vendor-portal-backend/internal/models"
	"github.com/zamtransit/vendor-portal-backend/internal/services"
	"github.com/zamtransit/vendor-portal-backend/internal/store"
	"github.com/zamtransit/vendor-portal-backend/internal/utils"
	"github.com/zamtransit/vendor-portal-backend/pkg/token"
)

// AuthHandler handles vendor registration and login
type AuthHandler struct {
	vendors    store.VendorStore
	sessions   *services.SessionService
	tokens     *token.Service
	cfg        config.SessionConfig
	bcryptCost int
	logger     *logrus.Logger
}

// NewAuthHandler creates a new AuthHandler
func NewAuthHandler(vendors store.VendorStore, sessions *services.SessionService, tokens *token.Service, cfg config.SessionConfig, bcryptCost int, logger *logrus.Logger) *AuthHandler {
	return &AuthHandler{
		vendors:    vendors,
		sessions:   sessions,
		tokens:     tokens,
		cfg:        cfg,
		bcryptCost: bcryptCost,
		logger:     logger,
	}
}

// Register creates a new vendor account and opens a session for it
// POST /api/register
func (h *AuthHandler) Register(c *gin.Context) {
	var req models.RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body"})
		return
	}
	if err := req.Validate(); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	hash, err := utils.HashPassword(req.Password, h.bcryptCost)
	if err != nil {
		h.logger.WithError(err).Error("Failed to hash password")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}

	vendor := &models.Vendor{
		Username:     req.Username,
		PasswordHash: hash,
		Name:         req.Name,
		Email:        req.Email,
		Phone:        req.Phone,
		Company:      req.Company,
	}
	if err := h.vendors.CreateVendor(vendor); err != nil {
		if errors.Is(err, store.ErrDuplicate) {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Username or email already registered"})
			return
		}
		h.logger.WithError(err).Error("Failed to create vendor")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}

	h.logger.WithFields(logrus.Fields{
		"vendor_id": vendor.ID,
		"username":  vendor.Username,
	}).Info("Vendor registered")

	// The fresh account is logged in right away
	session, err := h.sessions.StartSession(vendor, utils.GetRealIP(c), utils.GetUserAgent(c))
	if err != nil {
		h.logger.WithError(err).Error("Failed to open session after registration")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}

	bearer, err := h.tokens.Generate(vendor.ID, vendor.Username)
	if err != nil {
		h.logger.WithError(err).Error("Failed to sign bearer token")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}

	c.SetCookie(h.cfg.CookieName, session.Token, int(h.cfg.TTL.Seconds()), "/", "", h.cfg.CookieSecure, true)
	c.JSON(http.StatusCreated, gin.H{
		"vendor":       vendor,
		"access_token": bearer,
	})
}

// Login verifies credentials and opens a session. The token travels in
// an HttpOnly cookie; the body carries the vendor and a bearer token for
// non-browser clients.
// POST /api/login
func (h *AuthHandler) Login(c *gin.Context) {
	var req models.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body"})
		return
	}

	vendor, session, err := h.sessions.Login(req.Username, req.Password, utils.GetRealIP(c), utils.GetUserAgent(c))
	if err != nil {
		if errors.Is(err, services.ErrInvalidCredentials) {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid username or password"})
			return
		}
		h.logger.WithError(err).Error("Login failed")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}

	bearer, err := h.tokens.Generate(vendor.ID, vendor.Username)
	if err != nil {
		h.logger.WithError(err).Error("Failed to sign bearer token")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}

	c.SetCookie(h.cfg.CookieName, session.Token, int(h.cfg.TTL.Seconds()), "/", "", h.cfg.CookieSecure, true)
	c.JSON(http.StatusOK, gin.H{
		"vendor":       vendor,
		"access_token": bearer,
	})
}

// Logout closes the current session and clears the cookie
// POST /api/logout
func (h *AuthHandler) Logout(c *gin.Context) {
	if cookie, err := c.Cookie(h.cfg.CookieName); err == nil && cookie != "" {
		if err := h.sessions.Logout(cookie); err != nil {
			h.logger.WithError(err).Warn("Failed to delete session on logout")
		}
	}

	c.SetCookie(h.cfg.CookieName, "", -1, "/", "", h.cfg.CookieSecure, true)
	c.JSON(http.StatusOK, gin.H{"message": "Logged out"})
}

// CurrentVendor returns the authenticated vendor
// GET /api/vendor
func (h *AuthHandler) CurrentVendor(c *gin.Context) {
	vc, ok := requireVendor(c)
	if !ok {
		return
	}

	vendor, err := h.vendors.GetVendorByID(vc.VendorID)
	if err != nil {
		storeError(c, err, "Vendor")
		return
	}

	c.JSON(http.StatusOK, vendor)
}
