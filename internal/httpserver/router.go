package httpserver

import (
	"log"
	"time"

	"ravio-storefront/internal/cart"
	"ravio-storefront/internal/repository/newsletter"
	orderrepo "ravio-storefront/internal/repository/order"
	"ravio-storefront/internal/service/catalog"
	"ravio-storefront/internal/service/checkout"
	"ravio-storefront/internal/service/drops"
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5/pgxpool"
)

// Deps carries the collaborators the handlers need.
type Deps struct {
	Carts       *cart.Manager
	CatalogSvc  *catalog.Service
	CheckoutSvc *checkout.Service
	DropsSvc    *drops.Service
	Orders      orderrepo.Repository
	Newsletter  newsletter.Repository
	Snapshots   pinger
	AdminToken  string
	CORSOrigins []string
}

// buildRouter wires routes for the storefront API.
func buildRouter(logger *log.Logger, db *pgxpool.Pool, deps Deps) *gin.Engine {
	gin.SetMode(gin.ReleaseMode)
	router := gin.New()
	router.Use(gin.LoggerWithWriter(logger.Writer()), gin.Recovery())
	router.Use(cors.New(cors.Config{
		AllowOrigins:     deps.CORSOrigins,
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE"},
		AllowHeaders:     []string{"Origin", "Content-Type", "X-Session-ID", "X-Admin-Token"},
		ExposeHeaders:    []string{"X-Session-ID"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	router.GET("/healthz", healthHandler)
	router.GET("/readyz", readyHandler(db, deps.Snapshots))

	api := router.Group("/api")
	{
		api.GET("/products", listProductsHandler(deps.CatalogSvc))
		api.GET("/products/:id", getProductHandler(deps.CatalogSvc))

		api.GET("/drops/next", nextDropHandler(deps.DropsSvc))
		api.POST("/newsletter", subscribeHandler(deps.Newsletter))

		withCart := api.Group("", sessionMiddleware())
		{
			withCart.GET("/cart", getCartHandler(deps.Carts))
			withCart.POST("/cart/items", addCartItemHandler(deps.Carts, deps.CatalogSvc))
			withCart.PATCH("/cart/items", updateCartItemHandler(deps.Carts))
			withCart.DELETE("/cart/items", removeCartItemHandler(deps.Carts))
			withCart.DELETE("/cart", clearCartHandler(deps.Carts))
			withCart.POST("/checkout", checkoutHandler(deps.Carts, deps.CheckoutSvc))
		}

		admin := api.Group("/admin", adminMiddleware(deps.AdminToken))
		{
			admin.POST("/products", saveProductHandler(deps.CatalogSvc))
			admin.PUT("/products/:id", saveProductHandler(deps.CatalogSvc))
			admin.DELETE("/products/:id", deleteProductHandler(deps.CatalogSvc))
			admin.GET("/orders", listOrdersHandler(deps.Orders))
			admin.PATCH("/orders/:id/status", updateOrderStatusHandler(deps.Orders))
		}
	}

	return router
}
