package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"jobportal/internal/auth"
)

type AuthHandler struct {
	Tokens     *auth.TokenService
	Production bool
}

func NewAuthHandler(tokens *auth.TokenService, production bool) *AuthHandler {
	return &AuthHandler{Tokens: tokens, Production: production}
}

// IssueToken is the POST /jwt endpoint. Whatever identity object the
// front end sends gets signed as-is and delivered as an HTTP-only
// cookie.
func (h *AuthHandler) IssueToken(c *gin.Context) {
	var identity map[string]interface{}
	if err := c.ShouldBindJSON(&identity); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid JSON format: " + err.Error()})
		return
	}

	token, err := h.Tokens.Issue(identity)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	h.setTokenCookie(c, token, int(auth.TokenTTL.Seconds()))
	c.JSON(http.StatusOK, gin.H{"status": true})
}

// Logout is the POST /logOut endpoint; it clears the token cookie with
// the same attributes it was set with.
func (h *AuthHandler) Logout(c *gin.Context) {
	h.setTokenCookie(c, "", -1)
	c.JSON(http.StatusOK, gin.H{"success": true, "message": "data cleared"})
}

func (h *AuthHandler) setTokenCookie(c *gin.Context, value string, maxAge int) {
	c.SetSameSite(auth.CookieSameSite(h.Production))
	c.SetCookie(auth.CookieName, value, maxAge, "/", "", h.Production, true)
}
