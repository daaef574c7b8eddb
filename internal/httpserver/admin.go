package httpserver

import (
	"errors"
	"net/http"

	"ravio-storefront/internal/domain"
	orderrepo "ravio-storefront/internal/repository/order"
	"ravio-storefront/internal/service/catalog"
	"github.com/gin-gonic/gin"
)

type saveProductRequest struct {
	Key         string   `json:"key" binding:"required"`
	Name        string   `json:"name" binding:"required"`
	Description string   `json:"description"`
	PriceCents  int64    `json:"priceCents"`
	Currency    string   `json:"currency"`
	Category    string   `json:"category" binding:"required"`
	Sizes       []string `json:"sizes"`
	Image       string   `json:"image"`
}

func saveProductHandler(svc *catalog.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req saveProductRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}

		product, err := svc.Save(c.Request.Context(), domain.Product{
			ID:          c.Param("id"),
			Key:         req.Key,
			Name:        req.Name,
			Description: req.Description,
			PriceCents:  req.PriceCents,
			Currency:    req.Currency,
			Category:    req.Category,
			Sizes:       req.Sizes,
			Image:       req.Image,
		})
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusOK, toProductResponse(*product))
	}
}

func deleteProductHandler(svc *catalog.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		if err := svc.Delete(c.Request.Context(), c.Param("id")); err != nil {
			if errors.Is(err, domain.ErrNotFound) {
				c.JSON(http.StatusNotFound, gin.H{"error": "product not found"})
				return
			}
			c.JSON(http.StatusInternalServerError, gin.H{"error": "internal error"})
			return
		}
		c.Status(http.StatusNoContent)
	}
}

func listOrdersHandler(repo orderrepo.Repository) gin.HandlerFunc {
	return func(c *gin.Context) {
		orders, err := repo.ListRecent(c.Request.Context(), 50)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "internal error"})
			return
		}
		out := make([]orderResponse, 0, len(orders))
		for _, o := range orders {
			out = append(out, toOrderResponse(o))
		}
		c.JSON(http.StatusOK, gin.H{"orders": out, "total": len(out)})
	}
}

type updateOrderStatusRequest struct {
	Status string `json:"status" binding:"required"`
}

func updateOrderStatusHandler(repo orderrepo.Repository) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req updateOrderStatusRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		if !domain.ValidOrderStatus(req.Status) {
			c.JSON(http.StatusBadRequest, gin.H{"error": "unknown status"})
			return
		}

		if err := repo.UpdateStatus(c.Request.Context(), c.Param("id"), req.Status); err != nil {
			if errors.Is(err, domain.ErrNotFound) {
				c.JSON(http.StatusNotFound, gin.H{"error": "order not found"})
				return
			}
			c.JSON(http.StatusInternalServerError, gin.H{"error": "internal error"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"status": req.Status})
	}
}
