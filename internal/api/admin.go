package api

import (
	"net/http"

	"accstore-be/internal/auth"

	"github.com/gin-gonic/gin"
)

type loginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// adminLogin checks the single operator account and hands out a session
// token both as a cookie and in the body, so the admin UI and curl both
// work.
func (h *Handler) adminLogin(c *gin.Context) {
	var req loginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	if err := auth.VerifyAdmin(req.Username, req.Password, h.cfg.AdminUsername, h.cfg.AdminPasswordHash); err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "invalid username or password"})
		return
	}

	token, err := auth.GenerateJWT(req.Username, h.cfg.JWTSecret)
	if err != nil {
		respondError(c, err)
		return
	}

	c.SetCookie("access_token", token, 24*60*60, "/", "", false, true)
	c.JSON(http.StatusOK, gin.H{"token": token})
}
