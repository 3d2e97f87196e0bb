package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"shop-backend/models"
	"shop-backend/store"
)

const defaultOrderLimit = 50

// ListOrders returns the orders of one user; user_email is required.
func ListOrders(s store.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		userEmail := c.Query("user_email")
		if userEmail == "" {
			c.JSON(http.StatusBadRequest, gin.H{"error": "user_email is required"})
			return
		}
		limit, ok := limitParam(c, defaultOrderLimit)
		if !ok {
			return
		}
		if s == nil {
			unavailable(c)
			return
		}

		filter := store.NewFilter().
			Eq("user_email", userEmail).
			Build()

		docs, err := s.GetDocuments(c.Request.Context(), models.CollectionOrder, filter, limit)
		if err != nil {
			storeError(c, err)
			return
		}
		c.JSON(http.StatusOK, gin.H{"items": normalizeIDs(docs)})
	}
}

// CreateOrder validates the full order shape including nested items. It does
// not check the total against item subtotals, the referenced product ids, or
// stock.
func CreateOrder(s store.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		var order models.Order
		if err := c.ShouldBindJSON(&order); err != nil {
			bindError(c, err)
			return
		}
		order.ApplyDefaults()
		if s == nil {
			unavailable(c)
			return
		}

		id, err := s.CreateDocument(c.Request.Context(), models.CollectionOrder, order)
		if err != nil {
			storeError(c, err)
			return
		}
		c.JSON(http.StatusOK, gin.H{"id": id})
	}
}
