package api

import (
	"net/http"

	"accstore-be/internal/cart"
	"accstore-be/internal/checkout"
	"accstore-be/internal/middleware"

	"github.com/gin-gonic/gin"
)

type cartResponse struct {
	Items []cart.Line `json:"items"`
	Total float64     `json:"total"`
}

func (h *Handler) cartSession(c *gin.Context) (string, bool) {
	session := middleware.SessionFrom(c)
	if session == "" {
		respondError(c, checkout.ErrIdentityRequired)
		return "", false
	}
	return session, true
}

func (h *Handler) respondCart(c *gin.Context, session string) {
	c.JSON(http.StatusOK, cartResponse{
		Items: h.carts.Lines(session),
		Total: h.carts.Total(session),
	})
}

func (h *Handler) getCart(c *gin.Context) {
	session, ok := h.cartSession(c)
	if !ok {
		return
	}
	h.respondCart(c, session)
}

func (h *Handler) addCartItem(c *gin.Context) {
	session, ok := h.cartSession(c)
	if !ok {
		return
	}

	var line cart.Line
	if err := c.ShouldBindJSON(&line); err != nil || line.ID == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid cart item"})
		return
	}

	h.carts.AddOrIncrement(session, line)
	h.respondCart(c, session)
}

func (h *Handler) decrementCartItem(c *gin.Context) {
	session, ok := h.cartSession(c)
	if !ok {
		return
	}

	h.carts.Decrement(session, c.Param("id"))
	h.respondCart(c, session)
}

func (h *Handler) removeCartItem(c *gin.Context) {
	session, ok := h.cartSession(c)
	if !ok {
		return
	}

	h.carts.Remove(session, c.Param("id"))
	h.respondCart(c, session)
}

func (h *Handler) clearCart(c *gin.Context) {
	session, ok := h.cartSession(c)
	if !ok {
		return
	}

	h.carts.Clear(session)
	h.respondCart(c, session)
}
