package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"shop-backend/models"
	"shop-backend/store"
)

const defaultProductLimit = 50

// ListProducts returns products matching the optional q / category / brand /
// price-range filters. All filters are conjunctive; q is a case-insensitive
// substring match on the title.
func ListProducts(s store.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		limit, ok := limitParam(c, defaultProductLimit)
		if !ok {
			return
		}
		minPrice, ok := floatParam(c, "min_price")
		if !ok {
			return
		}
		maxPrice, ok := floatParam(c, "max_price")
		if !ok {
			return
		}
		if s == nil {
			unavailable(c)
			return
		}

		filter := store.NewFilter().
			Contains("title", c.Query("q")).
			Eq("category", c.Query("category")).
			Eq("brand", c.Query("brand")).
			Range("price", minPrice, maxPrice).
			Build()

		docs, err := s.GetDocuments(c.Request.Context(), models.CollectionProduct, filter, limit)
		if err != nil {
			storeError(c, err)
			return
		}
		c.JSON(http.StatusOK, gin.H{"items": normalizeIDs(docs)})
	}
}

func CreateProduct(s store.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		var product models.Product
		if err := c.ShouldBindJSON(&product); err != nil {
			bindError(c, err)
			return
		}
		product.ApplyDefaults()
		if s == nil {
			unavailable(c)
			return
		}

		id, err := s.CreateDocument(c.Request.Context(), models.CollectionProduct, product)
		if err != nil {
			storeError(c, err)
			return
		}
		c.JSON(http.StatusOK, gin.H{"id": id})
	}
}
