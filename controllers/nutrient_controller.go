package controllers

import (
	"net/http"

	"backend/services"
	"backend/utils"

	"github.com/gin-gonic/gin"
)

type NutrientController struct {
	nutrients *services.NutrientService
	progress  *services.ProgressService
}

func NewNutrientController(nutrients *services.NutrientService, progress *services.ProgressService) *NutrientController {
	return &NutrientController{nutrients: nutrients, progress: progress}
}

type LogNutrientsInput struct {
	Username      string   `json:"username" binding:"required"`
	LogDate       string   `json:"logDate"`
	Calories      *float64 `json:"calories" binding:"required,min=0"`
	Protein       *float64 `json:"protein" binding:"required,min=0"`
	Fats          *float64 `json:"fats" binding:"required,min=0"`
	Carbohydrates *float64 `json:"carbohydrates" binding:"required,min=0"`
	Water         *float64 `json:"water" binding:"required,min=0"`
}

func (ctl *NutrientController) LogNutrients(c *gin.Context) {
	var input LogNutrientsInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "All nutrient fields are required."})
		return
	}

	day, err := utils.ParseDay(input.LogDate)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid date format."})
		return
	}

	log, created, err := ctl.nutrients.Log(input.Username, day, services.NutrientInput{
		Calories:      *input.Calories,
		Protein:       *input.Protein,
		Fats:          *input.Fats,
		Carbohydrates: *input.Carbohydrates,
		Water:         *input.Water,
	})
	if err != nil {
		serverError(c, "log_nutrients", "Server error while logging nutrients.", err)
		return
	}

	if created {
		c.JSON(http.StatusCreated, gin.H{
			"success": true,
			"message": "Nutrient log created successfully.",
			"log":     log,
		})
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"message": "Nutrient log updated successfully.",
		"log":     log,
	})
}

func (ctl *NutrientController) GetNutrientLog(c *gin.Context) {
	username := c.Query("username")
	if username == "" {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "Username is required."})
		return
	}
	day, err := utils.ParseDay(c.Query("date"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid date format."})
		return
	}

	log, err := ctl.nutrients.ByDay(username, day)
	if err != nil {
		if err == services.ErrNotFound {
			c.JSON(http.StatusOK, gin.H{"success": false, "message": "No log found for this date."})
			return
		}
		serverError(c, "get_nutrient_log", "Server error while fetching nutrient log.", err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "log": log})
}

type SetGoalsInput struct {
	Username          string   `json:"username" binding:"required"`
	CaloriesGoal      *float64 `json:"caloriesGoal" binding:"omitempty,min=0"`
	ProteinGoal       *float64 `json:"proteinGoal" binding:"omitempty,min=0"`
	FatsGoal          *float64 `json:"fatsGoal" binding:"omitempty,min=0"`
	CarbohydratesGoal *float64 `json:"carbohydratesGoal" binding:"omitempty,min=0"`
	WaterGoal         *float64 `json:"waterGoal" binding:"omitempty,min=0"`
	WeightGoal        *float64 `json:"weightGoal" binding:"omitempty,min=0"`
}

func (ctl *NutrientController) SetNutrientGoals(c *gin.Context) {
	var input SetGoalsInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Username is required."})
		return
	}

	goals, created, err := ctl.nutrients.SetGoals(input.Username, services.GoalsInput{
		CaloriesGoal:      input.CaloriesGoal,
		ProteinGoal:       input.ProteinGoal,
		FatsGoal:          input.FatsGoal,
		CarbohydratesGoal: input.CarbohydratesGoal,
		WaterGoal:         input.WaterGoal,
		WeightGoal:        input.WeightGoal,
	})
	if err != nil {
		serverError(c, "set_nutrient_goals", "Server error while setting nutrient goals.", err)
		return
	}

	if created {
		c.JSON(http.StatusCreated, gin.H{
			"success": true,
			"message": "Nutrient goals set successfully.",
			"goals":   goals,
		})
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"message": "Nutrient goals updated successfully.",
		"goals":   goals,
	})
}

func (ctl *NutrientController) GetNutrientGoals(c *gin.Context) {
	username := c.Query("username")
	if username == "" {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "Username is required."})
		return
	}

	goals, err := ctl.nutrients.Goals(username)
	if err != nil {
		if err == services.ErrNotFound {
			c.JSON(http.StatusNotFound, gin.H{"success": false, "message": "No nutrient goals found for this user."})
			return
		}
		serverError(c, "get_nutrient_goals", "Server error while fetching nutrient goals.", err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "goals": goals})
}

func (ctl *NutrientController) GetCalorieGoal(c *gin.Context) {
	username := c.Query("username")
	if username == "" {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": "Username is required"})
		return
	}

	goals, err := ctl.nutrients.Goals(username)
	if err != nil {
		if err == services.ErrNotFound {
			c.JSON(http.StatusNotFound, gin.H{
				"success": false,
				"error":   "Nutrient goals not found for this user",
			})
			return
		}
		serverError(c, "get_calorie_goal", "Error fetching calorie goal", err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "calorieGoal": goals.CaloriesGoal})
}

func (ctl *NutrientController) calorieSeries(c *gin.Context, window services.Window) {
	username := c.Query("username")
	if username == "" {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": "Username is required"})
		return
	}

	points, err := ctl.progress.CalorieSeries(username, window)
	if err != nil {
		serverError(c, "get_calories", "Error fetching calories", err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "logs": points})
}

func (ctl *NutrientController) GetWeeklyCalories(c *gin.Context) {
	ctl.calorieSeries(c, services.Weekly)
}

func (ctl *NutrientController) GetMonthlyCalories(c *gin.Context) {
	ctl.calorieSeries(c, services.Monthly)
}

func (ctl *NutrientController) nutrientAverages(c *gin.Context, window services.Window) {
	username := c.Query("username")
	if username == "" {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": "Username is required"})
		return
	}

	averages, err := ctl.progress.NutrientAverages(username, window)
	if err != nil {
		if err == services.ErrNoData {
			c.JSON(http.StatusOK, gin.H{
				"success": false,
				"message": "No nutrient data found for this user.",
			})
			return
		}
		serverError(c, "get_nutrient_averages", "Error fetching nutrients", err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "averages": averages})
}

func (ctl *NutrientController) GetWeeklyNutrients(c *gin.Context) {
	ctl.nutrientAverages(c, services.Weekly)
}

func (ctl *NutrientController) GetMonthlyNutrients(c *gin.Context) {
	ctl.nutrientAverages(c, services.Monthly)
}

func (ctl *NutrientController) GetCaloriesIntake(c *gin.Context) {
	username := c.Query("username")

	intake, err := ctl.progress.CaloriesIntake(username)
	if err != nil {
		switch err {
		case services.ErrNoData:
			c.JSON(http.StatusOK, gin.H{
				"success": false,
				"message": "No calorie intake data found for this user.",
			})
		case services.ErrNoGoals:
			c.JSON(http.StatusOK, gin.H{
				"success": false,
				"message": "No nutrient goals found for this user.",
			})
		default:
			serverError(c, "get_calories_intake", "Error fetching calorie intake", err)
		}
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success":         true,
		"calorieGoal":     intake.CalorieGoal,
		"initialCalories": intake.InitialCalories,
		"latestCalories":  intake.LatestCalories,
		"progress":        intake.Progress,
	})
}
