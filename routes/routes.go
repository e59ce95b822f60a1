package routes

import (
	"net/http"
	"sync"
	"time"

	"backend/controllers"
	"backend/middlewares"
	"backend/models"
	"backend/services"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"gorm.io/gorm"
)

var registerValidatorsOnce sync.Once

// registerValidators wires the domain enums into binding-time validation.
func registerValidators() {
	registerValidatorsOnce.Do(func() {
		v, ok := binding.Validator.Engine().(*validator.Validate)
		if !ok {
			return
		}
		v.RegisterValidation("workouttype", func(fl validator.FieldLevel) bool {
			return models.ValidWorkoutType(fl.Field().String())
		})
		v.RegisterValidation("intensity", func(fl validator.FieldLevel) bool {
			return models.ValidIntensity(fl.Field().String())
		})
		v.RegisterValidation("workoutstatus", func(fl validator.FieldLevel) bool {
			return models.ValidWorkoutStatus(fl.Field().String())
		})
	})
}

// SetupRouter builds the full route table against the injected store handle.
func SetupRouter(db *gorm.DB) *gin.Engine {
	registerValidators()

	r := gin.New()
	r.Use(middlewares.Recovery())
	r.Use(middlewares.RequestLogger())
	r.Use(cors.New(cors.Config{
		AllowOrigins:  []string{"*"},
		AllowMethods:  []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:  []string{"Origin", "Content-Type"},
		ExposeHeaders: []string{"Content-Length"},
		MaxAge:        12 * time.Hour,
	}))

	users := services.NewUserService(db)
	dailyLogs := services.NewDailyLogService(db)
	nutrients := services.NewNutrientService(db)
	weights := services.NewWeightService(db)
	workouts := services.NewWorkoutService(db)
	progress := services.NewProgressService(db)

	auth := controllers.NewAuthController(users)
	user := controllers.NewUserController(users)
	activity := controllers.NewActivityController(dailyLogs, progress)
	nutrient := controllers.NewNutrientController(nutrients, progress)
	weight := controllers.NewWeightController(weights)
	workout := controllers.NewWorkoutController(workouts, progress)

	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok", "timestamp": time.Now()})
	})
	r.GET("/metrics", gin.WrapH(promhttp.Handler()))

	// Users
	r.POST("/register", auth.Register)
	r.GET("/check-username", auth.CheckUsername)
	r.POST("/signin", auth.SignIn)
	r.GET("/get-user-profile", user.GetProfile)
	r.POST("/update-user-profile", user.UpdateProfile)
	r.GET("/verify-old-password", user.VerifyOldPassword)
	r.DELETE("/delete-user-account", user.DeleteAccount)
	r.GET("/get-user-bmi", user.GetBMI)

	// Daily activity logs
	r.POST("/log-activity", activity.LogActivity)
	r.GET("/get-daily-log", activity.GetDailyLog)
	r.DELETE("/delete-daily-log", activity.DeleteDailyLog)
	r.GET("/get-step-progress", activity.GetStepProgress)

	// Nutrients
	r.POST("/log-nutrients", nutrient.LogNutrients)
	r.GET("/get-nutrient-log", nutrient.GetNutrientLog)
	r.POST("/set-nutrient-goals", nutrient.SetNutrientGoals)
	r.GET("/get-nutrient-goals", nutrient.GetNutrientGoals)
	r.GET("/get-calorie-goal", nutrient.GetCalorieGoal)
	r.GET("/get-weekly-calories", nutrient.GetWeeklyCalories)
	r.GET("/get-monthly-calories", nutrient.GetMonthlyCalories)
	r.GET("/get-weekly-nutrients", nutrient.GetWeeklyNutrients)
	r.GET("/get-monthly-nutrients", nutrient.GetMonthlyNutrients)
	r.GET("/get-calories-intake", nutrient.GetCaloriesIntake)

	// Weight
	r.POST("/log-weight", weight.LogWeight)
	r.GET("/get-weight-log", weight.GetWeightLog)
	r.GET("/get-latest-weight", weight.GetLatestWeight)
	r.GET("/get-weekly-weight", weight.GetWeeklyWeight)
	r.GET("/get-monthly-weight", weight.GetMonthlyWeight)

	// Workouts
	r.POST("/log-workout", workout.LogWorkout)
	r.GET("/get-workouts/:username", workout.GetWorkouts)
	r.GET("/check-workouts/:username", workout.CheckWorkouts)
	r.PUT("/update-workout", workout.UpdateWorkout)
	r.DELETE("/delete-workout", workout.DeleteWorkout)
	r.PUT("/update-workout-status", workout.UpdateWorkoutStatus)
	r.GET("/get-workout-statuses", workout.GetWorkoutStatuses)
	r.GET("/get-workout-progress", workout.GetWorkoutProgress)
	r.GET("/get-workout-completions", workout.GetWorkoutCompletions)

	return r
}
