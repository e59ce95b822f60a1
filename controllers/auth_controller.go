package controllers

import (
	"net/http"
	"time"

	"backend/services"

	"github.com/gin-gonic/gin"
)

type AuthController struct {
	users *services.UserService
}

func NewAuthController(users *services.UserService) *AuthController {
	return &AuthController{users: users}
}

type RegisterInput struct {
	Username string  `json:"username" binding:"required"`
	Password string  `json:"password" binding:"required"`
	DOB      string  `json:"dob" binding:"required"`
	Height   float64 `json:"height" binding:"required,gt=0"`
	Weight   float64 `json:"weight" binding:"required,gt=0"`
	Gender   string  `json:"gender" binding:"required"`
	Goal     string  `json:"goal" binding:"required"`
}

func (ctl *AuthController) Register(c *gin.Context) {
	var input RegisterInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "All fields are required."})
		return
	}

	dob, err := time.Parse("2006-01-02", input.DOB)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid date format."})
		return
	}

	_, err = ctl.users.Register(services.RegisterInput{
		Username: input.Username,
		Password: input.Password,
		DOB:      dob,
		Height:   input.Height,
		Weight:   input.Weight,
		Gender:   input.Gender,
		Goal:     input.Goal,
	})
	if err != nil {
		if err == services.ErrUsernameTaken {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Username is already taken."})
			return
		}
		serverError(c, "register", "Server error.", err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{"success": true, "message": "User registered successfully!"})
}

func (ctl *AuthController) CheckUsername(c *gin.Context) {
	username := c.Query("username")
	taken, err := ctl.users.IsUsernameTaken(username)
	if err != nil {
		serverError(c, "check_username", "Server error.", err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"isTaken": taken})
}

type SignInInput struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required"`
}

// SignIn returns the same error body for an unknown username and a wrong
// password; callers must not be able to tell the two apart.
func (ctl *AuthController) SignIn(c *gin.Context) {
	var input SignInInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid username or password."})
		return
	}

	if err := ctl.users.Authenticate(input.Username, input.Password); err != nil {
		if err == services.ErrInvalidCredentials {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid username or password."})
			return
		}
		serverError(c, "signin", "Server error.", err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true})
}
