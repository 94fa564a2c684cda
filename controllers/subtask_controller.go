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

// SubtaskController handles subtask creation and completion toggling.
// Ownership is verified through the parent task on both operations.
type SubtaskController struct {
	DB     *gorm.DB
	Logger *zap.SugaredLogger
}

// CreateSubtask appends a subtask to one of the caller's tasks.
func (sc *SubtaskController) CreateSubtask(c *gin.Context) {
	uid := c.GetString(middleware.ContextUserID)
	taskID := c.Param("id")

	var req models.CreateSubtaskRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if strings.TrimSpace(req.Title) == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "title is required"})
		return
	}

	var task models.Task
	if err := sc.DB.Where("id = ? AND user_id = ?", taskID, uid).First(&task).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "task not found"})
		return
	}

	subtask := models.Subtask{
		ID:        utils.GenerateID(),
		Title:     req.Title,
		Completed: 0,
		TaskID:    task.ID,
	}

	if err := sc.DB.Create(&subtask).Error; err != nil {
		sc.Logger.Errorw("subtask creation failed", "error", err, "userID", uid, "taskID", taskID)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to create subtask"})
		return
	}

	c.JSON(http.StatusOK, subtask)
}

// UpdateSubtask sets the completion flag. The update joins through the
// parent task's owner, so a foreign subtask id matches zero rows and the
// request still reports success, same as the task endpoints.
func (sc *SubtaskController) UpdateSubtask(c *gin.Context) {
	uid := c.GetString(middleware.ContextUserID)
	id := c.Param("id")

	var req models.UpdateSubtaskRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	completed := 0
	if req.Completed {
		completed = 1
	}

	ownedTasks := sc.DB.Model(&models.Task{}).Select("id").Where("user_id = ?", uid)

	err := sc.DB.Model(&models.Subtask{}).
		Where("id = ? AND task_id IN (?)", id, ownedTasks).
		Update("completed", completed).Error
	if err != nil {
		sc.Logger.Errorw("subtask update failed", "error", err, "userID", uid, "subtaskID", id)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to update subtask"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true})
}
