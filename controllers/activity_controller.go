package controllers

import (
	"net/http"

	"backend/services"
	"backend/utils"

	"github.com/gin-gonic/gin"
)

type ActivityController struct {
	logs     *services.DailyLogService
	progress *services.ProgressService
}

func NewActivityController(logs *services.DailyLogService, progress *services.ProgressService) *ActivityController {
	return &ActivityController{logs: logs, progress: progress}
}

type LogActivityInput struct {
	Username        string   `json:"username" binding:"required"`
	LogDate         string   `json:"logDate"`
	Steps           *int     `json:"steps" binding:"required,min=0"`
	Workout         string   `json:"workout" binding:"required,workouttype"`
	WorkoutDuration *int     `json:"workoutDuration" binding:"required,min=0"`
	Sleep           *float64 `json:"sleep" binding:"required,min=0,max=24"`
}

func (ctl *ActivityController) LogActivity(c *gin.Context) {
	var input LogActivityInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "All fields are required."})
		return
	}

	day, err := utils.ParseDay(input.LogDate)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid date format."})
		return
	}

	log, created, err := ctl.logs.Log(input.Username, day, services.ActivityInput{
		Steps:           *input.Steps,
		Workout:         input.Workout,
		WorkoutDuration: *input.WorkoutDuration,
		SleepHours:      *input.Sleep,
	})
	if err != nil {
		serverError(c, "log_activity", "Server error while logging activity.", err)
		return
	}

	if created {
		c.JSON(http.StatusCreated, gin.H{
			"success": true,
			"message": "Activity log created successfully.",
			"log":     log,
		})
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"message": "Activity log updated successfully.",
		"log":     log,
	})
}

func (ctl *ActivityController) GetDailyLog(c *gin.Context) {
	username := c.Query("username")
	day, err := utils.ParseDay(c.Query("date"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid date format."})
		return
	}

	log, err := ctl.logs.ByDay(username, day)
	if err != nil {
		if err == services.ErrNotFound {
			c.JSON(http.StatusOK, gin.H{"success": false, "message": "No log for this date."})
			return
		}
		serverError(c, "get_daily_log", "Server error while fetching the log.", err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "log": log})
}

type DeleteDailyLogInput struct {
	Username string `json:"username" binding:"required"`
	Date     string `json:"date" binding:"required"`
}

func (ctl *ActivityController) DeleteDailyLog(c *gin.Context) {
	var input DeleteDailyLogInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Username and date are required."})
		return
	}

	day, err := utils.ParseDay(input.Date)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid date format."})
		return
	}

	if err := ctl.logs.Delete(input.Username, day); err != nil {
		if err == services.ErrNotFound {
			c.JSON(http.StatusNotFound, gin.H{"error": "Log not found."})
			return
		}
		serverError(c, "delete_daily_log", "Server error while deleting daily log.", err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "message": "Daily log deleted successfully."})
}

func (ctl *ActivityController) GetStepProgress(c *gin.Context) {
	username := c.Query("username")
	if username == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Username is required."})
		return
	}

	progress, err := ctl.progress.StepProgress(username)
	if err != nil {
		if err == services.ErrNoData {
			c.JSON(http.StatusNotFound, gin.H{"error": "No step data found for the user."})
			return
		}
		serverError(c, "get_step_progress", "Server error while fetching step progress.", err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success":      true,
		"initialSteps": progress.InitialSteps,
		"latestSteps":  progress.LatestSteps,
		"progress":     progress.Progress,
	})
}
