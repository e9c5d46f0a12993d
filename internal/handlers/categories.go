package handlers

import (
	"errors"
	"net/http"

	"booksmart/internal/models"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// CreateCategory creates a category with a unique name
func (h *Handler) CreateCategory(c *gin.Context) {
	var req models.CreateCategoryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.handleError(c, http.StatusBadRequest, "Invalid input: "+err.Error(), err)
		return
	}

	var existing models.Category
	if err := h.db.Where("name = ?", req.Name).First(&existing).Error; err == nil {
		h.handleError(c, http.StatusConflict, "Category with this name already exists", gorm.ErrDuplicatedKey)
		return
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		h.handleError(c, http.StatusInternalServerError, "Failed to create category", err)
		return
	}

	category := models.Category{Name: req.Name, Color: req.Color}
	if err := h.db.Create(&category).Error; err != nil {
		h.handleError(c, http.StatusInternalServerError, "Failed to create category", err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message":     "Category created successfully",
		"category_id": category.ID,
	})
}

// GetCategories lists all categories
func (h *Handler) GetCategories(c *gin.Context) {
	var categories []models.Category
	if err := h.db.Find(&categories).Error; err != nil {
		h.handleError(c, http.StatusInternalServerError, "Failed to list categories", err)
		return
	}

	out := make([]gin.H, 0, len(categories))
	for _, cat := range categories {
		out = append(out, gin.H{"id": cat.ID, "name": cat.Name})
	}
	c.JSON(http.StatusOK, out)
}

// GetCategory retrieves one category by id
func (h *Handler) GetCategory(c *gin.Context) {
	var category models.Category
	if err := h.db.First(&category, "id = ?", c.Param("id")).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			h.handleError(c, http.StatusNotFound, "Category not found", err)
			return
		}
		h.handleError(c, http.StatusInternalServerError, "Failed to retrieve category", err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"id": category.ID, "name": category.Name, "color": category.Color})
}

// UpdateCategory applies a partial patch. Nil request fields are left
// untouched; a renamed category re-checks name uniqueness.
func (h *Handler) UpdateCategory(c *gin.Context) {
	var req models.UpdateCategoryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.handleError(c, http.StatusBadRequest, "Invalid input: "+err.Error(), err)
		return
	}

	var category models.Category
	if err := h.db.First(&category, "id = ?", c.Param("id")).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			h.handleError(c, http.StatusNotFound, "Category not found", err)
			return
		}
		h.handleError(c, http.StatusInternalServerError, "Failed to retrieve category", err)
		return
	}

	if req.Name != nil {
		var existing models.Category
		err := h.db.Where("name = ? AND id <> ?", *req.Name, category.ID).First(&existing).Error
		if err == nil {
			h.handleError(c, http.StatusConflict, "Category with this name already exists", gorm.ErrDuplicatedKey)
			return
		} else if !errors.Is(err, gorm.ErrRecordNotFound) {
			h.handleError(c, http.StatusInternalServerError, "Failed to update category", err)
			return
		}
		category.Name = *req.Name
	}
	if req.Color != nil {
		category.Color = *req.Color
	}

	if err := h.db.Model(&category).Select("Name", "Color").Updates(&category).Error; err != nil {
		h.handleError(c, http.StatusInternalServerError, "Failed to update category", err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Category updated successfully"})
}

// DeleteCategory removes a category and its association rows
func (h *Handler) DeleteCategory(c *gin.Context) {
	var category models.Category
	if err := h.db.First(&category, "id = ?", c.Param("id")).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			h.handleError(c, http.StatusNotFound, "Category not found", err)
			return
		}
		h.handleError(c, http.StatusInternalServerError, "Failed to retrieve category", err)
		return
	}

	if err := h.db.Select(clause.Associations).Delete(&category).Error; err != nil {
		h.handleError(c, http.StatusInternalServerError, "Failed to delete category", err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Category deleted successfully"})
}
