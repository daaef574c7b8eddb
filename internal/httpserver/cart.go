package httpserver

import (
	"errors"
	"net/http"

	"ravio-storefront/internal/cart"
	"ravio-storefront/internal/domain"
	"ravio-storefront/internal/service/catalog"
	"github.com/gin-gonic/gin"
)

func getCartHandler(carts *cart.Manager) gin.HandlerFunc {
	return func(c *gin.Context) {
		eng := carts.Cart(c.Request.Context(), sessionID(c))
		c.JSON(http.StatusOK, toCartResponse(eng))
	}
}

type addCartItemRequest struct {
	ProductID string `json:"productId" binding:"required"`
	Size      string `json:"size" binding:"required"`
}

// addCartItemHandler resolves the product in the catalog and adds one unit of
// the chosen size to the session's cart. The cart captures the price at add
// time; later catalog price changes do not touch existing slots.
func addCartItemHandler(carts *cart.Manager, catalogSvc *catalog.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req addCartItemRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}

		product, err := catalogSvc.Get(c.Request.Context(), req.ProductID)
		if err != nil {
			if errors.Is(err, domain.ErrNotFound) {
				c.JSON(http.StatusNotFound, gin.H{"error": "product not found"})
				return
			}
			c.JSON(http.StatusInternalServerError, gin.H{"error": "internal error"})
			return
		}
		if !product.HasSize(req.Size) {
			c.JSON(http.StatusBadRequest, gin.H{"error": "size not offered"})
			return
		}

		eng := carts.Cart(c.Request.Context(), sessionID(c))
		if err := eng.AddItem(c.Request.Context(), cart.Candidate{
			ProductID:      product.ID,
			Name:           product.Name,
			UnitPriceCents: product.PriceCents,
			Size:           req.Size,
			Image:          product.Image,
		}); err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "internal error"})
			return
		}
		c.JSON(http.StatusOK, toCartResponse(eng))
	}
}

type updateCartItemRequest struct {
	ProductID string `json:"productId" binding:"required"`
	Size      string `json:"size" binding:"required"`
	Quantity  int    `json:"quantity"`
}

func updateCartItemHandler(carts *cart.Manager) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req updateCartItemRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}

		eng := carts.Cart(c.Request.Context(), sessionID(c))
		if err := eng.UpdateQuantity(c.Request.Context(), req.ProductID, req.Size, req.Quantity); err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "internal error"})
			return
		}
		c.JSON(http.StatusOK, toCartResponse(eng))
	}
}

type removeCartItemRequest struct {
	ProductID string `json:"productId" binding:"required"`
	Size      string `json:"size" binding:"required"`
}

func removeCartItemHandler(carts *cart.Manager) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req removeCartItemRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}

		eng := carts.Cart(c.Request.Context(), sessionID(c))
		if err := eng.RemoveItem(c.Request.Context(), req.ProductID, req.Size); err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "internal error"})
			return
		}
		c.JSON(http.StatusOK, toCartResponse(eng))
	}
}

func clearCartHandler(carts *cart.Manager) gin.HandlerFunc {
	return func(c *gin.Context) {
		eng := carts.Cart(c.Request.Context(), sessionID(c))
		if err := eng.Clear(c.Request.Context()); err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "internal error"})
			return
		}
		c.JSON(http.StatusOK, toCartResponse(eng))
	}
}
