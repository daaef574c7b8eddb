package httpserver

import (
	"errors"
	"net/http"

	"ravio-storefront/internal/cart"
	"ravio-storefront/internal/domain"
	"ravio-storefront/internal/service/checkout"
	"github.com/gin-gonic/gin"
)

func checkoutHandler(carts *cart.Manager, svc *checkout.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		var in checkout.Input
		if err := c.ShouldBindJSON(&in); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}

		sid := sessionID(c)
		eng := carts.Cart(c.Request.Context(), sid)
		order, err := svc.PlaceOrder(c.Request.Context(), eng, in)
		if err != nil {
			var vErr *checkout.ValidationError
			switch {
			case errors.Is(err, domain.ErrEmptyCart):
				c.JSON(http.StatusConflict, gin.H{"error": "cart is empty"})
			case errors.As(err, &vErr):
				c.JSON(http.StatusBadRequest, gin.H{"error": vErr.Error()})
			default:
				c.JSON(http.StatusBadGateway, gin.H{"error": "order could not be placed, please retry"})
			}
			return
		}

		carts.Evict(sid)
		c.JSON(http.StatusCreated, toOrderResponse(*order))
	}
}
