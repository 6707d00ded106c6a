package server

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/jmoiron/sqlx"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/mardika/inventory-service/internal/auth"
	authhandler "github.com/mardika/inventory-service/internal/auth/handler"
	invoicehandler "github.com/mardika/inventory-service/internal/invoice/handler"
	invoiceitemhandler "github.com/mardika/inventory-service/internal/invoiceitem/handler"
	itemhandler "github.com/mardika/inventory-service/internal/item/handler"
	"github.com/mardika/inventory-service/internal/middleware"
	personhandler "github.com/mardika/inventory-service/internal/person/handler"
	"github.com/mardika/inventory-service/pkg/logger"
)

type RouterConfig struct {
	Logger       logger.ZapLogger
	DB           *sqlx.DB
	TokenManager *auth.Manager

	Auth         *authhandler.AuthHandler
	Items        *itemhandler.ItemHandler
	Persons      *personhandler.PersonHandler
	Invoices     *invoicehandler.InvoiceHandler
	InvoiceItems *invoiceitemhandler.InvoiceItemHandler
}

// NewRouter assembles the HTTP surface. Healthcheck, metrics and the token
// exchange are public; every entity route sits behind the bearer gate.
func NewRouter(cfg *RouterConfig) *gin.Engine {
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(middleware.RequestLogger(cfg.Logger))
	router.Use(middleware.Metrics())

	router.GET("/healthcheck", func(c *gin.Context) {
		if err := cfg.DB.PingContext(c.Request.Context()); err != nil {
			c.JSON(http.StatusServiceUnavailable, gin.H{"status": "unavailable"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})
	router.GET("/metrics", gin.WrapH(promhttp.Handler()))
	router.POST("/authorize", cfg.Auth.Authorize)

	protected := router.Group("/", middleware.RequireAuth(cfg.TokenManager))

	items := protected.Group("/items")
	{
		items.GET("", cfg.Items.List)
		items.GET("/:id", cfg.Items.Get)
		items.GET("/alt/:altId", cfg.Items.GetByAltID)
		items.POST("", cfg.Items.Create)
		items.PUT("/:id", cfg.Items.Update)
		items.DELETE("/:id", cfg.Items.Delete)
	}

	persons := protected.Group("/persons")
	{
		persons.GET("", cfg.Persons.List)
		persons.GET("/:id", cfg.Persons.Get)
		persons.GET("/alt/:altId", cfg.Persons.GetByAltID)
		persons.GET("/email/:email", cfg.Persons.GetByEmail)
		persons.POST("", cfg.Persons.Create)
		persons.PUT("/:id", cfg.Persons.Update)
		persons.DELETE("/:id", cfg.Persons.Delete)
	}

	invoices := protected.Group("/invoices")
	{
		invoices.GET("", cfg.Invoices.List)
		invoices.GET("/:id", cfg.Invoices.Get)
		invoices.GET("/alt/:altId", cfg.Invoices.GetByAltID)
		invoices.GET("/user/:userId", cfg.Invoices.ListByUserID)
		invoices.POST("", cfg.Invoices.Create)
		invoices.PUT("/:id", cfg.Invoices.Update)
		invoices.DELETE("/:id", cfg.Invoices.Delete)
	}

	links := protected.Group("/invoices-items")
	{
		links.GET("", cfg.InvoiceItems.List)
		links.GET("/invoice/:invoiceId", cfg.InvoiceItems.ListByInvoiceID)
		links.GET("/item/:itemId", cfg.InvoiceItems.ListByItemID)
		links.GET("/:invoiceId/:itemId", cfg.InvoiceItems.Get)
		links.POST("", cfg.InvoiceItems.Create)
		links.DELETE("/:invoiceId/:itemId", cfg.InvoiceItems.Delete)
		links.DELETE("/invoice/:invoiceId", cfg.InvoiceItems.DeleteByInvoiceID)
		links.DELETE("/item/:itemId", cfg.InvoiceItems.DeleteByItemID)
	}

	return router
}
