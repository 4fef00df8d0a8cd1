package api

import (
	"net/http"
	"strconv"

	"accstore-be/internal/user"

	"github.com/gin-gonic/gin"
)

type registerUserRequest struct {
	TelegramID int64   `json:"telegramId"`
	Username   *string `json:"username"`
	FirstName  *string `json:"firstName"`
	LastName   *string `json:"lastName"`
	Language   string  `json:"language"`
}

func (h *Handler) registerUser(c *gin.Context) {
	var req registerUserRequest
	if err := c.ShouldBindJSON(&req); err != nil || req.TelegramID == 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	u, err := h.users.Register(c.Request.Context(), user.UpsertParams{
		TelegramID: req.TelegramID,
		Username:   req.Username,
		FirstName:  req.FirstName,
		LastName:   req.LastName,
		Language:   req.Language,
	})
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, u)
}

func (h *Handler) setUserLanguage(c *gin.Context) {
	telegramID, err := strconv.ParseInt(c.Param("telegramId"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid telegram id"})
		return
	}

	var req struct {
		Language string `json:"language"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	if err := h.users.SetLanguage(c.Request.Context(), telegramID, req.Language); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"telegramId": telegramID, "language": req.Language})
}
