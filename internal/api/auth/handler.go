package auth

import (
	"net/http"
	"time"

	"wedding-site/config"
	"wedding-site/internal/app/http/middleware"
	"wedding-site/internal/domain/admin"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"github.com/rs/zerolog"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

const sessionLifetime = 24 * time.Hour

type Handler struct {
	db       *gorm.DB
	cfg      *config.Config
	log      zerolog.Logger
	throttle *loginThrottle
}

func NewHandler(db *gorm.DB, cfg *config.Config, log zerolog.Logger) *Handler {
	return &Handler{
		db:       db,
		cfg:      cfg,
		log:      log.With().Str("component", "auth").Logger(),
		throttle: newLoginThrottle(),
	}
}

// POST /api/auth/login
func (h *Handler) Login(c *gin.Context) {
	ip := c.ClientIP()
	if !h.throttle.allow(ip) {
		h.log.Warn().Str("ip", ip).Msg("login throttled")
		c.JSON(http.StatusTooManyRequests, gin.H{"error": "Too many login attempts. Please try again in 15 minutes."})
		return
	}

	var input struct {
		Password string `json:"password" binding:"required"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Password is required"})
		return
	}

	var cred admin.Credential
	if err := h.db.First(&cred).Error; err != nil {
		h.log.Error().Err(err).Msg("loading admin credential")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Admin not configured"})
		return
	}

	if err := bcrypt.CompareHashAndPassword([]byte(cred.PasswordHash), []byte(input.Password)); err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid password"})
		return
	}

	token, err := h.mintToken()
	if err != nil {
		h.log.Error().Err(err).Msg("signing session token")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create session"})
		return
	}

	h.setSessionCookie(c, token, int(sessionLifetime.Seconds()))
	c.JSON(http.StatusOK, gin.H{"success": true, "message": "Login successful"})
}

// POST /api/auth/logout
func (h *Handler) Logout(c *gin.Context) {
	// No server-side revocation list exists; clearing the cookie is all a
	// logout does, and exfiltrated tokens stay valid until expiry.
	h.setSessionCookie(c, "", -1)
	c.JSON(http.StatusOK, gin.H{"success": true})
}

// GET /api/auth/session
func (h *Handler) Session(c *gin.Context) {
	// Reached only through the session guard.
	c.JSON(http.StatusOK, gin.H{"authenticated": true})
}

// POST /api/auth/change-password
func (h *Handler) ChangePassword(c *gin.Context) {
	var input struct {
		CurrentPassword string `json:"current_password" binding:"required"`
		NewPassword     string `json:"new_password" binding:"required,min=8"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Current password and a new password of at least 8 characters are required"})
		return
	}

	var cred admin.Credential
	if err := h.db.First(&cred).Error; err != nil {
		h.log.Error().Err(err).Msg("loading admin credential")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Admin not configured"})
		return
	}

	if err := bcrypt.CompareHashAndPassword([]byte(cred.PasswordHash), []byte(input.CurrentPassword)); err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Current password is incorrect"})
		return
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(input.NewPassword), bcrypt.DefaultCost)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to hash password"})
		return
	}

	if err := h.db.Model(&cred).Update("password_hash", string(hash)).Error; err != nil {
		h.log.Error().Err(err).Msg("updating admin credential")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update password"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true})
}

func (h *Handler) mintToken() (string, error) {
	now := time.Now()
	claims := jwt.MapClaims{
		"authenticated": true,
		"iat":           now.Unix(),
		"exp":           now.Add(sessionLifetime).Unix(),
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(h.cfg.JWTSecret))
}

func (h *Handler) setSessionCookie(c *gin.Context, value string, maxAge int) {
	c.SetSameSite(http.SameSiteStrictMode)
	c.SetCookie(middleware.SessionCookieName, value, maxAge, "/", "", h.cfg.IsProduction(), true)
}
