package api

import (
	"net/http"
	"strconv"

	"accstore-be/internal/checkout"
	"accstore-be/internal/middleware"
	"accstore-be/internal/order"

	"github.com/gin-gonic/gin"
)

type submitOrderRequest struct {
	UserID           string `json:"userId"`
	CustomerName     string `json:"customerName"`
	TelegramUsername string `json:"telegramUsername"`
	PaymentMethod    string `json:"paymentMethod"`
	Agreed           bool   `json:"agreed"`
}

type submitOrderResponse struct {
	OrderIDs        []uint  `json:"orderIds"`
	OrderGroupID    string  `json:"orderGroupId"`
	Total           float64 `json:"total"`
	RedirectAfterMs int64   `json:"redirectAfterMs"`
}

func (h *Handler) submitOrder(c *gin.Context) {
	var req submitOrderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	session := req.UserID
	if session == "" {
		session = middleware.SessionFrom(c)
	}

	res, err := h.checkout.Submit(c.Request.Context(), checkout.SubmitInput{
		SessionID:        session,
		CustomerName:     req.CustomerName,
		TelegramUsername: req.TelegramUsername,
		PaymentMethod:    req.PaymentMethod,
		Agreed:           req.Agreed,
	})
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, submitOrderResponse{
		OrderIDs:        res.OrderIDs,
		OrderGroupID:    res.GroupID.String(),
		Total:           res.Total,
		RedirectAfterMs: res.RedirectAfter.Milliseconds(),
	})
}

func (h *Handler) listOrders(c *gin.Context) {
	orders, err := h.orders.ListWithUsers(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, orders)
}

type updateOrderStatusRequest struct {
	ID     uint   `json:"id"`
	Status string `json:"status"`
}

func (h *Handler) updateOrderStatus(c *gin.Context) {
	var req updateOrderStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil || req.ID == 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	if err := h.orders.UpdateStatus(c.Request.Context(), req.ID, order.Status(req.Status)); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"id": req.ID, "status": req.Status})
}

func (h *Handler) listUserOrders(c *gin.Context) {
	telegramID, err := strconv.ParseInt(c.Param("telegramId"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid telegram id"})
		return
	}

	orders, err := h.orders.ListByTelegramID(c.Request.Context(), telegramID)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, orders)
}
