package handlers

import (
	"errors"
	"net/http"

	"booksmart/internal/models"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

func taskResponse(task models.Task) gin.H {
	return gin.H{
		"id":           task.ID,
		"title":        task.Title,
		"description":  task.Description,
		"due_date":     task.DueDate.Format(models.DateFormat),
		"color":        task.Color,
		"participants": participantSummaries(task.Participants),
		"categories":   categorySummaries(task.Categories),
	}
}

// CreateTask creates a task. Every referenced participant and category id
// must resolve, otherwise nothing is created.
func (h *Handler) CreateTask(c *gin.Context) {
	var req models.CreateTaskRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.handleError(c, http.StatusBadRequest, "Invalid input: "+err.Error(), err)
		return
	}

	dueDate, err := parseDate(req.DueDate, "due_date")
	if err != nil {
		h.handleError(c, http.StatusBadRequest, err.Error(), err)
		return
	}

	task := models.Task{
		Title:       req.Title,
		Description: req.Description,
		DueDate:     dueDate,
		Color:       req.Color,
	}

	err = h.db.Transaction(func(tx *gorm.DB) error {
		participants, err := loadParticipants(tx, req.ParticipantIDs)
		if err != nil {
			return err
		}
		categories, err := loadCategories(tx, req.CategoryIDs)
		if err != nil {
			return err
		}
		task.Participants = participants
		task.Categories = categories
		return tx.Create(&task).Error
	})
	if err != nil {
		var missing missingRefsError
		if errors.As(err, &missing) {
			h.handleError(c, http.StatusNotFound, "One or more "+missing.kind+" not found", err)
			return
		}
		h.handleError(c, http.StatusInternalServerError, "Failed to create task", err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Task created successfully", "task_id": task.ID})
}

// orderTaskAssociations rewrites preloaded association slices into join-row
// insertion order.
func (h *Handler) orderTaskAssociations(tasks []models.Task) error {
	ids := make([]uint, 0, len(tasks))
	for _, task := range tasks {
		ids = append(ids, task.ID)
	}
	participantOrder, err := joinOrder(h.db, "task_participant", "task_id", "participant_id", ids)
	if err != nil {
		return err
	}
	categoryOrder, err := joinOrder(h.db, "category_task", "task_id", "category_id", ids)
	if err != nil {
		return err
	}
	for i := range tasks {
		tasks[i].Participants = orderParticipants(tasks[i].Participants, participantOrder[tasks[i].ID])
		tasks[i].Categories = orderCategories(tasks[i].Categories, categoryOrder[tasks[i].ID])
	}
	return nil
}

// GetTasks lists all tasks with their association summaries
func (h *Handler) GetTasks(c *gin.Context) {
	var tasks []models.Task
	if err := h.db.Preload("Participants").Preload("Categories").Find(&tasks).Error; err != nil {
		h.handleError(c, http.StatusInternalServerError, "Failed to list tasks", err)
		return
	}
	if err := h.orderTaskAssociations(tasks); err != nil {
		h.handleError(c, http.StatusInternalServerError, "Failed to list tasks", err)
		return
	}

	out := make([]gin.H, 0, len(tasks))
	for _, task := range tasks {
		out = append(out, taskResponse(task))
	}
	c.JSON(http.StatusOK, out)
}

// GetTask retrieves one task by id
func (h *Handler) GetTask(c *gin.Context) {
	var task models.Task
	if err := h.db.Preload("Participants").Preload("Categories").
		First(&task, "id = ?", c.Param("id")).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			h.handleError(c, http.StatusNotFound, "Task not found", err)
			return
		}
		h.handleError(c, http.StatusInternalServerError, "Failed to retrieve task", err)
		return
	}

	tasks := []models.Task{task}
	if err := h.orderTaskAssociations(tasks); err != nil {
		h.handleError(c, http.StatusInternalServerError, "Failed to retrieve task", err)
		return
	}
	c.JSON(http.StatusOK, taskResponse(tasks[0]))
}

// UpdateTask applies a partial patch. Nil fields are untouched; a present
// participant or category list replaces the full association set.
func (h *Handler) UpdateTask(c *gin.Context) {
	var req models.UpdateTaskRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.handleError(c, http.StatusBadRequest, "Invalid input: "+err.Error(), err)
		return
	}

	var task models.Task
	if err := h.db.First(&task, "id = ?", c.Param("id")).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			h.handleError(c, http.StatusNotFound, "Task not found", err)
			return
		}
		h.handleError(c, http.StatusInternalServerError, "Failed to retrieve task", err)
		return
	}

	if req.Title != nil {
		task.Title = *req.Title
	}
	if req.Description != nil {
		task.Description = *req.Description
	}
	if req.DueDate != nil {
		dueDate, err := parseDate(*req.DueDate, "due_date")
		if err != nil {
			h.handleError(c, http.StatusBadRequest, err.Error(), err)
			return
		}
		task.DueDate = dueDate
	}
	if req.Color != nil {
		task.Color = *req.Color
	}

	err := h.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Model(&task).Select("Title", "Description", "DueDate", "Color").
			Updates(&task).Error; err != nil {
			return err
		}
		// Clear before appending so the join rows are rewritten in the
		// supplied order; Replace would keep surviving rows in place.
		if req.ParticipantIDs != nil {
			participants, err := loadParticipants(tx, *req.ParticipantIDs)
			if err != nil {
				return err
			}
			if err := tx.Model(&task).Association("Participants").Clear(); err != nil {
				return err
			}
			if len(participants) > 0 {
				// A fresh Association is required after Clear; reusing the
				// cleared one panics inside gorm's saveAssociation.
				if err := tx.Model(&task).Association("Participants").Append(participants); err != nil {
					return err
				}
			}
		}
		if req.CategoryIDs != nil {
			categories, err := loadCategories(tx, *req.CategoryIDs)
			if err != nil {
				return err
			}
			if err := tx.Model(&task).Association("Categories").Clear(); err != nil {
				return err
			}
			if len(categories) > 0 {
				if err := tx.Model(&task).Association("Categories").Append(categories); err != nil {
					return err
				}
			}
		}
		return nil
	})
	if err != nil {
		var missing missingRefsError
		if errors.As(err, &missing) {
			h.handleError(c, http.StatusNotFound, "One or more "+missing.kind+" not found", err)
			return
		}
		h.handleError(c, http.StatusInternalServerError, "Failed to update task", err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Task updated successfully"})
}

// DeleteTask removes a task and its association rows. Reminders that
// reference the task are left in place.
func (h *Handler) DeleteTask(c *gin.Context) {
	var task models.Task
	if err := h.db.First(&task, "id = ?", c.Param("id")).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			h.handleError(c, http.StatusNotFound, "Task not found", err)
			return
		}
		h.handleError(c, http.StatusInternalServerError, "Failed to retrieve task", err)
		return
	}

	if err := h.db.Select("Participants", "Categories").Delete(&task).Error; err != nil {
		h.handleError(c, http.StatusInternalServerError, "Failed to delete task", err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Task deleted successfully"})
}
