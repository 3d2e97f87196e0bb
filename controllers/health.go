package controllers

import (
	"net/http"
	"os"

	"github.com/gin-gonic/gin"

	"shop-backend/models"
	"shop-backend/store"
)

func Root() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"message": "Shop API running"})
	}
}

// SchemaInfo lists the collections this backend understands. It does not
// introspect the store.
func SchemaInfo() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"collections": models.CollectionNames()})
	}
}

const diagErrorLimit = 50

// TestDatabase reports backend and store health. It never fails: every store
// error is swallowed into the database status string, truncated to 50 chars.
func TestDatabase(s store.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		resp := gin.H{
			"backend":           "✅ Running",
			"database":          "❌ Not Available",
			"connection_status": "Not Connected",
			"collections":       []string{},
		}

		if s != nil {
			resp["connection_status"] = "Connected"
			names, err := s.ListCollectionNames(c.Request.Context())
			if err != nil {
				resp["database"] = "⚠️  Connected but Error: " + truncate(err.Error(), diagErrorLimit)
			} else {
				if len(names) > 10 {
					names = names[:10]
				}
				if names == nil {
					names = []string{}
				}
				resp["collections"] = names
				resp["database"] = "✅ Connected & Working"
			}
		}

		// Presence flags only, the values are never echoed.
		resp["database_url"] = presenceFlag("DATABASE_URL")
		resp["database_name"] = presenceFlag("DATABASE_NAME")

		c.JSON(http.StatusOK, resp)
	}
}

func presenceFlag(key string) string {
	if os.Getenv(key) != "" {
		return "✅ Set"
	}
	return "❌ Not Set"
}
