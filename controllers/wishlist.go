package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"shop-backend/models"
	"shop-backend/store"
)

const defaultWishlistLimit = 100

// GetWishlist returns the wishlist entries of one user; user_email is
// required.
func GetWishlist(s store.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		userEmail := c.Query("user_email")
		if userEmail == "" {
			c.JSON(http.StatusBadRequest, gin.H{"error": "user_email is required"})
			return
		}
		limit, ok := limitParam(c, defaultWishlistLimit)
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

		docs, err := s.GetDocuments(c.Request.Context(), models.CollectionWishlist, filter, limit)
		if err != nil {
			storeError(c, err)
			return
		}
		c.JSON(http.StatusOK, gin.H{"items": normalizeIDs(docs)})
	}
}

// AddToWishlist stores the entry as-is: duplicates are allowed and the
// referenced product is not looked up.
func AddToWishlist(s store.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		var item models.WishlistItem
		if err := c.ShouldBindJSON(&item); err != nil {
			bindError(c, err)
			return
		}
		if s == nil {
			unavailable(c)
			return
		}

		id, err := s.CreateDocument(c.Request.Context(), models.CollectionWishlist, item)
		if err != nil {
			storeError(c, err)
			return
		}
		c.JSON(http.StatusOK, gin.H{"id": id})
	}
}
