package controllers

import (
	"net/http"
	"sort"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/lly61/TaskFlow/middleware"
	"github.com/lly61/TaskFlow/models"
)

// StatsController computes aggregate completion statistics for the caller.
type StatsController struct {
	DB     *gorm.DB
	Logger *zap.SugaredLogger
}

// GetStats returns total and completed task counts, the number of pending
// high-priority tasks, and a per-day count of tasks created in the trailing
// seven days, ascending by date.
func (sc *StatsController) GetStats(c *gin.Context) {
	uid := c.GetString(middleware.ContextUserID)

	owned := sc.DB.Model(&models.Task{}).Where("user_id = ?", uid)

	var total, completed, highPending int64
	if err := owned.Session(&gorm.Session{}).Count(&total).Error; err != nil {
		sc.Logger.Errorw("stats query failed", "error", err, "userID", uid)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to compute stats"})
		return
	}
	if err := owned.Session(&gorm.Session{}).Where("completed = ?", 1).Count(&completed).Error; err != nil {
		sc.Logger.Errorw("stats query failed", "error", err, "userID", uid)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to compute stats"})
		return
	}
	if err := owned.Session(&gorm.Session{}).
		Where("completed = ? AND priority = ?", 0, models.PriorityHigh).
		Count(&highPending).Error; err != nil {
		sc.Logger.Errorw("stats query failed", "error", err, "userID", uid)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to compute stats"})
		return
	}

	weekly, err := sc.weeklyCounts(uid)
	if err != nil {
		sc.Logger.Errorw("stats query failed", "error", err, "userID", uid)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to compute stats"})
		return
	}

	c.JSON(http.StatusOK, models.StatsResponse{
		Total:               total,
		Completed:           completed,
		HighPriorityPending: highPending,
		Weekly:              weekly,
	})
}

// weeklyCounts buckets creation timestamps by calendar day. The bucketing
// runs here rather than in SQL so MySQL and SQLite behave identically.
func (sc *StatsController) weeklyCounts(uid string) ([]models.DayCount, error) {
	since := time.Now().AddDate(0, 0, -7)

	var createdAt []time.Time
	err := sc.DB.Model(&models.Task{}).
		Where("user_id = ? AND created_at >= ?", uid, since).
		Pluck("created_at", &createdAt).Error
	if err != nil {
		return nil, err
	}

	buckets := make(map[string]int)
	for _, t := range createdAt {
		buckets[t.Format("2006-01-02")]++
	}

	dates := make([]string, 0, len(buckets))
	for d := range buckets {
		dates = append(dates, d)
	}
	sort.Strings(dates)

	weekly := make([]models.DayCount, 0, len(dates))
	for _, d := range dates {
		weekly = append(weekly, models.DayCount{Date: d, Count: buckets[d]})
	}
	return weekly, nil
}
