package controllers

import (
	"net/http"

	"backend/services"
	"backend/utils"

	"github.com/gin-gonic/gin"
)

type WorkoutController struct {
	workouts *services.WorkoutService
	progress *services.ProgressService
}

func NewWorkoutController(workouts *services.WorkoutService, progress *services.ProgressService) *WorkoutController {
	return &WorkoutController{workouts: workouts, progress: progress}
}

type LogWorkoutInput struct {
	Username  string `json:"username" binding:"required"`
	Name      string `json:"name" binding:"required"`
	Exercises string `json:"exercises" binding:"required"`
	Duration  *int   `json:"duration" binding:"required,min=0"`
	Intensity string `json:"intensity" binding:"required,intensity"`
}

func (ctl *WorkoutController) LogWorkout(c *gin.Context) {
	var input LogWorkoutInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "All fields are required: username, name, exercises, duration, intensity.",
		})
		return
	}

	workout, err := ctl.workouts.Create(input.Username, services.WorkoutInput{
		Name:      input.Name,
		Exercises: input.Exercises,
		Duration:  *input.Duration,
		Intensity: input.Intensity,
	})
	if err != nil {
		switch err {
		case services.ErrWorkoutLimit:
			c.JSON(http.StatusBadRequest, gin.H{"error": "A user can have a maximum of 10 workout plans."})
		case services.ErrDuplicateWorkoutName:
			c.JSON(http.StatusBadRequest, gin.H{"error": "Workout name must be unique for each user."})
		default:
			serverError(c, "log_workout", "Server error while logging workout.", err)
		}
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"success": true,
		"message": "Workout logged successfully.",
		"workout": workout,
	})
}

func (ctl *WorkoutController) GetWorkouts(c *gin.Context) {
	workouts, err := ctl.workouts.List(c.Param("username"))
	if err != nil {
		serverError(c, "get_workouts", "Server error fetching workouts", err)
		return
	}
	c.JSON(http.StatusOK, workouts)
}

func (ctl *WorkoutController) CheckWorkouts(c *gin.Context) {
	count, err := ctl.workouts.Count(c.Param("username"))
	if err != nil {
		serverError(c, "check_workouts", "Error retrieving workout count.", err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"count": count})
}

type UpdateWorkoutInput struct {
	ID        uint   `json:"id" binding:"required"`
	Name      string `json:"name" binding:"required"`
	Exercises string `json:"exercises" binding:"required"`
	Duration  *int   `json:"duration" binding:"required,min=0"`
	Intensity string `json:"intensity" binding:"required,intensity"`
}

func (ctl *WorkoutController) UpdateWorkout(c *gin.Context) {
	var input UpdateWorkoutInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "All fields are required: id, name, exercises, duration, intensity.",
		})
		return
	}

	workout, err := ctl.workouts.Update(input.ID, services.WorkoutInput{
		Name:      input.Name,
		Exercises: input.Exercises,
		Duration:  *input.Duration,
		Intensity: input.Intensity,
	})
	if err != nil {
		switch err {
		case services.ErrNotFound:
			c.JSON(http.StatusNotFound, gin.H{"error": "Workout not found."})
		case services.ErrDuplicateWorkoutName:
			c.JSON(http.StatusBadRequest, gin.H{
				"error": "A workout with this name already exists. Please choose a different name.",
			})
		default:
			serverError(c, "update_workout", "Error updating workout", err)
		}
		return
	}
	c.JSON(http.StatusOK, workout)
}

type DeleteWorkoutInput struct {
	ID uint `json:"id" binding:"required"`
}

func (ctl *WorkoutController) DeleteWorkout(c *gin.Context) {
	var input DeleteWorkoutInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Workout id is required."})
		return
	}

	if err := ctl.workouts.Delete(input.ID); err != nil {
		if err == services.ErrNotFound {
			c.JSON(http.StatusNotFound, gin.H{"error": "Workout not found."})
			return
		}
		serverError(c, "delete_workout", "Server error while deleting the workout.", err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"message": "Workout and associated statuses deleted successfully.",
	})
}

type StatusItem struct {
	ID     uint   `json:"id" binding:"required"`
	Status string `json:"status" binding:"required,workoutstatus"`
	Date   string `json:"date"`
}

type UpdateStatusesInput struct {
	Username        string       `json:"username" binding:"required"`
	UpdatedWorkouts []StatusItem `json:"updatedWorkouts" binding:"required,min=1,dive"`
}

func (ctl *WorkoutController) UpdateWorkoutStatus(c *gin.Context) {
	var input UpdateStatusesInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid data. Username and updated workouts are required.",
		})
		return
	}

	items := make([]services.StatusUpdate, 0, len(input.UpdatedWorkouts))
	for _, item := range input.UpdatedWorkouts {
		day, err := utils.ParseDay(item.Date)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid date format."})
			return
		}
		items = append(items, services.StatusUpdate{
			WorkoutID: item.ID,
			Status:    item.Status,
			Day:       day,
		})
	}

	if err := ctl.workouts.UpdateStatuses(input.Username, items); err != nil {
		serverError(c, "update_workout_status", "Error saving workout statuses", err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"message": "Workout statuses updated successfully.",
	})
}

func (ctl *WorkoutController) GetWorkoutStatuses(c *gin.Context) {
	username := c.Query("username")
	date := c.Query("date")
	if username == "" || date == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Username and date are required."})
		return
	}

	day, err := utils.ParseDay(date)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid date format. Please use YYYY-MM-DD."})
		return
	}

	statuses, err := ctl.workouts.StatusesByDay(username, day)
	if err != nil {
		serverError(c, "get_workout_statuses", "Error fetching workout statuses", err)
		return
	}
	c.JSON(http.StatusOK, statuses)
}

func (ctl *WorkoutController) GetWorkoutProgress(c *gin.Context) {
	username := c.Query("username")
	if username == "" {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": "Username is required"})
		return
	}

	progress, err := ctl.progress.WorkoutProgress(username)
	if err != nil {
		serverError(c, "get_workout_progress", "Error fetching average workouts per week", err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success":                true,
		"averageWorkoutsPerWeek": progress.AverageWorkoutsPerWeek,
		"totalCompletedWorkouts": progress.TotalCompleted,
		"weeklyData":             progress.WeeklyData,
	})
}

func (ctl *WorkoutController) GetWorkoutCompletions(c *gin.Context) {
	username := c.Query("username")
	period := c.Query("period")
	if username == "" || period == "" {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": "Username and period are required"})
		return
	}

	completions, err := ctl.progress.WorkoutCompletions(username, services.Window(period))
	if err != nil {
		switch err {
		case services.ErrBadWindow:
			c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": "Invalid period"})
		case services.ErrNoData:
			c.JSON(http.StatusNotFound, gin.H{
				"success": false,
				"error":   "No workout data found for the specified period",
			})
		default:
			serverError(c, "get_workout_completions", "Error fetching workout completion data", err)
		}
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"labels":  completions.Labels,
		"data":    completions.Data,
	})
}
