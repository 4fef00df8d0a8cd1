package api

import (
	"time"

	"accstore-be/internal/logger"
	"accstore-be/internal/middleware"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

// NewRouter wires the full HTTP surface. Admin-only routes sit behind the
// JWT guard; storefront routes resolve their identity from the request.
func NewRouter(h *Handler) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(logger.RequestIDMiddleware(), logger.LoggingMiddleware())
	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept", "Authorization", "X-Telegram-ID", "X-Device-ID"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))
	r.Use(middleware.Identity(), middleware.RateLimit())

	r.GET("/health", h.health)

	api := r.Group("/api")
	admin := middleware.AdminOnly(h.cfg.JWTSecret)

	api.GET("/status", h.status)

	// catalog
	api.GET("/categories", h.listCategories)
	api.POST("/categories", admin, h.createCategory)
	api.PUT("/categories/:id", admin, h.updateCategory)
	api.DELETE("/categories/:id", admin, h.deleteCategory)

	api.GET("/subcategories", h.listSubcategories)
	api.POST("/subcategories", admin, h.createSubcategory)
	api.PUT("/subcategories/:id", admin, h.updateSubcategory)
	api.DELETE("/subcategories/:id", admin, h.deleteSubcategory)

	api.GET("/items", h.listItems)
	api.GET("/items/:id", h.getItem)
	api.POST("/items", admin, h.createItem)
	api.PUT("/items/:id", admin, h.updateItem)
	api.DELETE("/items/:id", admin, h.deleteItem)

	api.GET("/pages", h.listPages)
	api.GET("/pages/:id", h.getPage)
	api.POST("/pages", admin, h.createPage)
	api.PUT("/pages/:id", admin, h.updatePage)
	api.DELETE("/pages/:id", admin, h.deletePage)

	// images
	api.POST("/upload-image", admin, h.uploadImage)
	api.DELETE("/delete-image", admin, h.deleteImage)
	api.GET("/images/:file", h.serveImage)

	// cart
	api.GET("/cart", h.getCart)
	api.POST("/cart/items", h.addCartItem)
	api.POST("/cart/items/:id/decrement", h.decrementCartItem)
	api.DELETE("/cart/items/:id", h.removeCartItem)
	api.DELETE("/cart", h.clearCart)

	// orders
	api.POST("/orders", h.submitOrder)
	api.GET("/orders", admin, h.listOrders)
	api.PUT("/orders", admin, h.updateOrderStatus)

	// users (bot contract)
	api.POST("/users", h.registerUser)
	api.PUT("/users/:telegramId/language", h.setUserLanguage)
	api.GET("/users/:telegramId/orders", h.listUserOrders)

	// admin
	api.POST("/admin/login", h.adminLogin)
	api.GET("/admin/orders/ws", admin, h.hub.Serve)

	return r
}
