package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"shop-backend/models"
	"shop-backend/store"
)

const defaultUserLimit = 100

// ListUsers returns users, optionally narrowed to an exact email match.
func ListUsers(s store.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		limit, ok := limitParam(c, defaultUserLimit)
		if !ok {
			return
		}
		if s == nil {
			unavailable(c)
			return
		}

		filter := store.NewFilter().
			Eq("email", c.Query("email")).
			Build()

		docs, err := s.GetDocuments(c.Request.Context(), models.CollectionUser, filter, limit)
		if err != nil {
			storeError(c, err)
			return
		}
		c.JSON(http.StatusOK, gin.H{"items": normalizeIDs(docs)})
	}
}

func CreateUser(s store.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		var user models.User
		if err := c.ShouldBindJSON(&user); err != nil {
			bindError(c, err)
			return
		}
		user.ApplyDefaults()
		if s == nil {
			unavailable(c)
			return
		}

		id, err := s.CreateDocument(c.Request.Context(), models.CollectionUser, user)
		if err != nil {
			storeError(c, err)
			return
		}
		c.JSON(http.StatusOK, gin.H{"id": id})
	}
}
