package handlers_test

import (
	"net/http"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCreateCategoryDuplicateNameConflict(t *testing.T) {
	env := newTestEnv(t)

	w := env.do(t, http.MethodPost, "/categories", gin.H{"name": "Work", "color": "#FF0000"})
	require.Equal(t, http.StatusOK, w.Code)

	w = env.do(t, http.MethodPost, "/categories", gin.H{"name": "Work"})
	assert.Equal(t, http.StatusConflict, w.Code)
	assert.Equal(t, "Category with this name already exists", decode(t, w)["error"])
}

func TestCreateCategoryNameComparisonIsCaseSensitive(t *testing.T) {
	env := newTestEnv(t)

	// sqlite's BINARY collation treats "Work" and "work" as distinct names
	w := env.do(t, http.MethodPost, "/categories", gin.H{"name": "Work"})
	require.Equal(t, http.StatusOK, w.Code)

	w = env.do(t, http.MethodPost, "/categories", gin.H{"name": "work"})
	assert.Equal(t, http.StatusOK, w.Code)

	w = env.do(t, http.MethodGet, "/categories", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Len(t, decodeList(t, w), 2)
}

func TestGetCategoryNotFound(t *testing.T) {
	env := newTestEnv(t)
	w := env.do(t, http.MethodGet, "/categories/999", nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestUpdateCategoryPartialPatch(t *testing.T) {
	env := newTestEnv(t)
	id := env.createCategory(t, "Work")

	// Only color supplied: name stays
	w := env.do(t, http.MethodPut, idPath("/categories", id), gin.H{"color": "#00FF00"})
	require.Equal(t, http.StatusOK, w.Code)

	w = env.do(t, http.MethodGet, idPath("/categories", id), nil)
	require.Equal(t, http.StatusOK, w.Code)
	got := decode(t, w)
	assert.Equal(t, "Work", got["name"])
	assert.Equal(t, "#00FF00", got["color"])

	// A present empty string clears the field, unlike the nil case
	w = env.do(t, http.MethodPut, idPath("/categories", id), gin.H{"color": ""})
	require.Equal(t, http.StatusOK, w.Code)

	w = env.do(t, http.MethodGet, idPath("/categories", id), nil)
	got = decode(t, w)
	assert.Equal(t, "", got["color"])
	assert.Equal(t, "Work", got["name"])
}

func TestUpdateCategoryRenameConflict(t *testing.T) {
	env := newTestEnv(t)
	env.createCategory(t, "Work")
	id := env.createCategory(t, "Personal")

	w := env.do(t, http.MethodPut, idPath("/categories", id), gin.H{"name": "Work"})
	assert.Equal(t, http.StatusConflict, w.Code)

	// Renaming to its own current name is allowed
	w = env.do(t, http.MethodPut, idPath("/categories", id), gin.H{"name": "Personal"})
	assert.Equal(t, http.StatusOK, w.Code)
}

func TestDeleteCategory(t *testing.T) {
	env := newTestEnv(t)
	id := env.createCategory(t, "Work")

	w := env.do(t, http.MethodDelete, idPath("/categories", id), nil)
	require.Equal(t, http.StatusOK, w.Code)

	w = env.do(t, http.MethodGet, idPath("/categories", id), nil)
	assert.Equal(t, http.StatusNotFound, w.Code)

	w = env.do(t, http.MethodDelete, idPath("/categories", id), nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
}
