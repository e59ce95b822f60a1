package controllers

import (
	"net/http"
	"time"

	"backend/services"
	"backend/utils"

	"github.com/gin-gonic/gin"
)

type WeightController struct {
	weights *services.WeightService
}

func NewWeightController(weights *services.WeightService) *WeightController {
	return &WeightController{weights: weights}
}

type LogWeightInput struct {
	Username string   `json:"username" binding:"required"`
	LogDate  string   `json:"logDate"`
	Weight   *float64 `json:"weight" binding:"required,min=30,max=300"`
}

func (ctl *WeightController) LogWeight(c *gin.Context) {
	var input LogWeightInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Username and weight are required."})
		return
	}

	day, err := utils.ParseDay(input.LogDate)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid date format."})
		return
	}

	log, created, err := ctl.weights.Log(input.Username, day, *input.Weight)
	if err != nil {
		serverError(c, "log_weight", "Server error while logging weight.", err)
		return
	}

	if created {
		c.JSON(http.StatusCreated, gin.H{
			"success": true,
			"message": "Weight log created successfully.",
			"log":     log,
		})
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"message": "Weight log updated successfully.",
		"log":     log,
	})
}

func (ctl *WeightController) GetWeightLog(c *gin.Context) {
	username := c.Query("username")
	date := c.Query("date")
	if username == "" || date == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Username and date are required."})
		return
	}

	day, err := utils.ParseDay(date)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid date format."})
		return
	}

	log, err := ctl.weights.ByDay(username, day)
	if err != nil {
		if err == services.ErrNotFound {
			c.JSON(http.StatusNotFound, gin.H{"success": false, "message": "No weight log found for this date."})
			return
		}
		serverError(c, "get_weight_log", "Server error while fetching weight log.", err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "log": log})
}

func (ctl *WeightController) GetLatestWeight(c *gin.Context) {
	username := c.Query("username")
	log, err := ctl.weights.Latest(username)
	if err != nil {
		if err == services.ErrNotFound {
			c.JSON(http.StatusNotFound, gin.H{"error": "No weight data found"})
			return
		}
		serverError(c, "get_latest_weight", "Server error", err)
		return
	}
	c.JSON(http.StatusOK, log)
}

func (ctl *WeightController) weightSeries(c *gin.Context, window services.Window) {
	username := c.Query("username")
	since, err := window.Since(time.Now())
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": "Invalid period"})
		return
	}

	logs, err := ctl.weights.Series(username, since)
	if err != nil {
		serverError(c, "get_weight_series", "Server error while fetching weight logs.", err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "logs": logs})
}

func (ctl *WeightController) GetWeeklyWeight(c *gin.Context) {
	ctl.weightSeries(c, services.Weekly)
}

func (ctl *WeightController) GetMonthlyWeight(c *gin.Context) {
	ctl.weightSeries(c, services.Monthly)
}
