package controllers

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/lly61/TaskFlow/middleware"
	"github.com/lly61/TaskFlow/models"
	"github.com/lly61/TaskFlow/utils"
)

// TaskController handles owner-scoped task CRUD. Every query filters by the
// authenticated user's id; a foreign task id matches zero rows.
type TaskController struct {
	DB     *gorm.DB
	Logger *zap.SugaredLogger
}

// ListTasks returns all of the caller's tasks, newest first, with subtasks.
func (tc *TaskController) ListTasks(c *gin.Context) {
	uid := c.GetString(middleware.ContextUserID)

	tasks := make([]models.Task, 0)
	err := tc.DB.Preload("Subtasks").
		Where("user_id = ?", uid).
		Order("created_at DESC").
		Find(&tasks).Error
	if err != nil {
		tc.Logger.Errorw("task list failed", "error", err, "userID", uid)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to load tasks"})
		return
	}

	for i := range tasks {
		if tasks[i].Subtasks == nil {
			tasks[i].Subtasks = []models.Subtask{}
		}
	}

	c.JSON(http.StatusOK, tasks)
}

// CreateTask persists a new task for the caller. Title is required; the
// other fields fall back to their defaults.
func (tc *TaskController) CreateTask(c *gin.Context) {
	uid := c.GetString(middleware.ContextUserID)

	var req models.CreateTaskRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if strings.TrimSpace(req.Title) == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "title is required"})
		return
	}

	if !models.ValidPriority(req.Priority) {
		req.Priority = models.PriorityMedium
	}
	if req.Category == "" {
		req.Category = models.DefaultCategory
	}

	task := models.Task{
		ID:          utils.GenerateID(),
		Title:       req.Title,
		Description: req.Description,
		Priority:    req.Priority,
		Category:    req.Category,
		DueDate:     req.DueDate,
		Completed:   0,
		UserID:      uid,
		Subtasks:    []models.Subtask{},
	}

	if err := tc.DB.Create(&task).Error; err != nil {
		tc.Logger.Errorw("task creation failed", "error", err, "userID", uid)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to create task"})
		return
	}

	c.JSON(http.StatusOK, task)
}

// UpdateTask replaces all mutable fields of a task. The statement is owner
// filtered, so an id belonging to another user matches zero rows and the
// request still reports success.
func (tc *TaskController) UpdateTask(c *gin.Context) {
	uid := c.GetString(middleware.ContextUserID)
	id := c.Param("id")

	var req models.UpdateTaskRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	completed := 0
	if req.Completed {
		completed = 1
	}

	err := tc.DB.Model(&models.Task{}).
		Where("id = ? AND user_id = ?", id, uid).
		Updates(map[string]interface{}{
			"title":       req.Title,
			"description": req.Description,
			"priority":    req.Priority,
			"category":    req.Category,
			"due_date":    req.DueDate,
			"completed":   completed,
		}).Error
	if err != nil {
		tc.Logger.Errorw("task update failed", "error", err, "userID", uid, "taskID", id)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to update task"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true})
}

// DeleteTask removes a task; the storage engine cascades the delete to its
// subtasks. No-op when the task is not owned by the caller.
func (tc *TaskController) DeleteTask(c *gin.Context) {
	uid := c.GetString(middleware.ContextUserID)
	id := c.Param("id")

	err := tc.DB.Where("id = ? AND user_id = ?", id, uid).Delete(&models.Task{}).Error
	if err != nil {
		tc.Logger.Errorw("task delete failed", "error", err, "userID", uid, "taskID", id)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to delete task"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true})
}
