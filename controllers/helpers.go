package controllers

import (
	"errors"
	"fmt"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// bindError reports a 400 with per-field detail when the payload failed
// validation, or the raw decode error otherwise.
func bindError(c *gin.Context, err error) {
	var verrs validator.ValidationErrors
	if errors.As(err, &verrs) {
		fields := make([]gin.H, 0, len(verrs))
		for _, fe := range verrs {
			fields = append(fields, gin.H{"field": fe.Field(), "rule": fe.Tag()})
		}
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input", "detail": fields})
		return
	}
	c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input", "detail": err.Error()})
}

func unavailable(c *gin.Context) {
	c.JSON(http.StatusServiceUnavailable, gin.H{"error": "database unavailable"})
}

func storeError(c *gin.Context, err error) {
	c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
}

// limitParam parses the limit query parameter, falling back to def when
// absent. Reports a 400 itself and returns false on a malformed value.
func limitParam(c *gin.Context, def int64) (int64, bool) {
	raw := c.Query("limit")
	if raw == "" {
		return def, true
	}
	limit, err := strconv.ParseInt(raw, 10, 64)
	if err != nil || limit < 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid limit"})
		return 0, false
	}
	return limit, true
}

// floatParam parses an optional float query parameter; nil means absent.
func floatParam(c *gin.Context, name string) (*float64, bool) {
	raw := c.Query(name)
	if raw == "" {
		return nil, true
	}
	v, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid " + name})
		return nil, false
	}
	return &v, true
}

// normalizeIDs replaces the store-native _id of every document with a
// client-facing string id. This is the only shaping applied to stored
// documents on the way out.
func normalizeIDs(docs []bson.M) []bson.M {
	if docs == nil {
		docs = []bson.M{}
	}
	for _, d := range docs {
		raw, ok := d["_id"]
		if !ok {
			continue
		}
		if oid, isOID := raw.(primitive.ObjectID); isOID {
			d["id"] = oid.Hex()
		} else {
			d["id"] = fmt.Sprintf("%v", raw)
		}
		delete(d, "_id")
	}
	return docs
}

func truncate(s string, n int) string {
	r := []rune(s)
	if len(r) <= n {
		return s
	}
	return string(r[:n])
}
