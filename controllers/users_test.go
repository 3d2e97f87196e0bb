package controllers

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"shop-backend/models"
)

func TestCreateUser_Defaults(t *testing.T) {
	f := newFakeStore()
	body := `{"name": "Ada", "email": "ada@example.com"}`

	w := serve("POST", "/api/users", CreateUser(f), "/api/users", body)
	require.Equal(t, http.StatusOK, w.Code)

	stored, ok := f.inserted["user"][0].(models.User)
	require.True(t, ok)
	require.NotNil(t, stored.IsActive)
	assert.True(t, *stored.IsActive, "is_active should default to true")
	assert.Nil(t, stored.Age)
}

func TestCreateUser_AgeBounds(t *testing.T) {
	f := newFakeStore()

	w := serve("POST", "/api/users", CreateUser(f), "/api/users",
		`{"name": "Ada", "email": "ada@example.com", "age": 121}`)
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Empty(t, f.inserted)

	w = serve("POST", "/api/users", CreateUser(f), "/api/users",
		`{"name": "Ada", "email": "ada@example.com", "age": 120}`)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Len(t, f.inserted["user"], 1)
}

func TestCreateUser_MissingEmail(t *testing.T) {
	f := newFakeStore()
	w := serve("POST", "/api/users", CreateUser(f), "/api/users", `{"name": "Ada"}`)
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Empty(t, f.inserted)
}

func TestListUsers_OptionalEmailFilter(t *testing.T) {
	f := newFakeStore()

	w := serve("GET", "/api/users", ListUsers(f), "/api/users", "")
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "user", f.lastColl)
	assert.Equal(t, int64(100), f.lastLimit)
	assert.Empty(t, f.lastFilter)

	w = serve("GET", "/api/users", ListUsers(f), "/api/users?email=ada%40example.com", "")
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "ada@example.com", f.lastFilter["email"])
}
