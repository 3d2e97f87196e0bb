package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson"

	"shop-backend/models"
	"shop-backend/store"
)

const defaultCategoryLimit = 100

func ListCategories(s store.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		limit, ok := limitParam(c, defaultCategoryLimit)
		if !ok {
			return
		}
		if s == nil {
			unavailable(c)
			return
		}

		docs, err := s.GetDocuments(c.Request.Context(), models.CollectionCategory, bson.M{}, limit)
		if err != nil {
			storeError(c, err)
			return
		}
		c.JSON(http.StatusOK, gin.H{"items": normalizeIDs(docs)})
	}
}

// CreateCategory does not enforce slug uniqueness; duplicates land as
// separate documents.
func CreateCategory(s store.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		var category models.Category
		if err := c.ShouldBindJSON(&category); err != nil {
			bindError(c, err)
			return
		}
		if s == nil {
			unavailable(c)
			return
		}

		id, err := s.CreateDocument(c.Request.Context(), models.CollectionCategory, category)
		if err != nil {
			storeError(c, err)
			return
		}
		c.JSON(http.StatusOK, gin.H{"id": id})
	}
}
