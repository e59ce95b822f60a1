package controllers

import (
	"net/http"
	"time"

	"backend/services"
	"backend/utils"

	"github.com/gin-gonic/gin"
)

type UserController struct {
	users *services.UserService
}

func NewUserController(users *services.UserService) *UserController {
	return &UserController{users: users}
}

func (ctl *UserController) GetProfile(c *gin.Context) {
	username := c.Query("username")
	user, err := ctl.users.Profile(username)
	if err != nil {
		if err == services.ErrNotFound {
			c.JSON(http.StatusNotFound, gin.H{"error": "User not found."})
			return
		}
		serverError(c, "get_user_profile", "Server error.", err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"username": user.Username,
		"dob":      user.DOB,
		"height":   user.Height,
		"weight":   user.Weight,
		"gender":   user.Gender,
		"goal":     user.Goal,
	})
}

type UpdateProfileInput struct {
	Username    string  `json:"username" binding:"required"`
	NewDOB      string  `json:"newDob"`
	Height      float64 `json:"height" binding:"omitempty,gt=0"`
	Weight      float64 `json:"weight" binding:"omitempty,gt=0"`
	Gender      string  `json:"gender"`
	Goal        string  `json:"goal"`
	NewPassword string  `json:"newPassword"`
}

func (ctl *UserController) UpdateProfile(c *gin.Context) {
	var input UpdateProfileInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Username is required."})
		return
	}

	update := services.ProfileUpdate{
		Height:      input.Height,
		Weight:      input.Weight,
		Gender:      input.Gender,
		Goal:        input.Goal,
		NewPassword: input.NewPassword,
	}
	if input.NewDOB != "" {
		dob, err := time.Parse("2006-01-02", input.NewDOB)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid date format."})
			return
		}
		update.NewDOB = dob
	}

	if _, err := ctl.users.UpdateProfile(input.Username, update); err != nil {
		if err == services.ErrNotFound {
			c.JSON(http.StatusNotFound, gin.H{"error": "User not found"})
			return
		}
		serverError(c, "update_user_profile", "An error occurred while updating the profile.", err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true})
}

func (ctl *UserController) VerifyOldPassword(c *gin.Context) {
	username := c.Query("username")
	password := c.Query("password")

	err := ctl.users.VerifyPassword(username, password)
	switch err {
	case nil:
		c.JSON(http.StatusOK, gin.H{"success": true})
	case services.ErrNotFound:
		c.JSON(http.StatusNotFound, gin.H{"error": "User not found"})
	case services.ErrWrongPassword:
		c.JSON(http.StatusBadRequest, gin.H{"error": "Old password is incorrect"})
	default:
		serverError(c, "verify_old_password", "Server error", err)
	}
}

func (ctl *UserController) DeleteAccount(c *gin.Context) {
	username := c.Query("username")
	if username == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Username is required."})
		return
	}

	if err := ctl.users.DeleteAccount(username); err != nil {
		if err == services.ErrNotFound {
			c.JSON(http.StatusNotFound, gin.H{"error": "User not found."})
			return
		}
		serverError(c, "delete_user_account", "Server error while deleting the account and daily logs.", err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"message": "User account and daily logs deleted successfully.",
	})
}

func (ctl *UserController) GetBMI(c *gin.Context) {
	username := c.Query("username")
	user, err := ctl.users.Profile(username)
	if err != nil {
		if err == services.ErrNotFound {
			c.JSON(http.StatusNotFound, gin.H{"error": "User not found."})
			return
		}
		serverError(c, "get_user_bmi", "Server error.", err)
		return
	}

	bmi, err := utils.CalculateBMI(user.Height, user.Weight)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success":  true,
		"bmi":      bmi,
		"category": utils.BMICategory(bmi),
	})
}
