package controllers

import (
	goerrors "errors"

	"stayverse/dto"
	"stayverse/models"
	"stayverse/response"
	"stayverse/services"
	"stayverse/validator"

	"github.com/gin-gonic/gin"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

// AuthController handles registration, login and profile reads.
type AuthController struct {
	db *gorm.DB
}

func NewAuthController(db *gorm.DB) *AuthController {
	return &AuthController{db: db}
}

func toUserResponse(user models.User) dto.UserResponse {
	return dto.UserResponse{
		ID:          user.ID,
		Name:        user.Name,
		Email:       user.Email,
		PhoneNumber: user.PhoneNumber,
		Role:        user.Role,
	}
}

// Register creates a guest account.
func (a *AuthController) Register(c *gin.Context) {
	var request dto.RegisterRequest
	if err := c.ShouldBindJSON(&request); err != nil {
		response.BadRequest(c, "Invalid payload")
		return
	}

	user := models.User{
		Name:        request.Name,
		Email:       request.Email,
		Password:    request.Password,
		PhoneNumber: request.PhoneNumber,
	}
	if err := validator.ValidateUser(&user); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	var existing models.User
	if err := a.db.Where("email = ?", user.Email).First(&existing).Error; err == nil {
		response.Conflict(c)
		return
	} else if !goerrors.Is(err, gorm.ErrRecordNotFound) {
		response.ServerError(c)
		return
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(user.Password), bcrypt.DefaultCost)
	if err != nil {
		response.ServerError(c)
		return
	}
	user.Password = string(hashed)

	if err := a.db.Create(&user).Error; err != nil {
		response.ServerError(c)
		return
	}

	token, err := services.GenerateToken(user.ID, user.Role)
	if err != nil {
		response.ServerError(c)
		return
	}

	response.Success(c, dto.AuthResponse{Token: token, User: toUserResponse(user)})
}

// Login exchanges credentials for a token.
func (a *AuthController) Login(c *gin.Context) {
	var request dto.LoginRequest
	if err := c.ShouldBindJSON(&request); err != nil {
		response.BadRequest(c, "Invalid payload")
		return
	}

	var user models.User
	if err := a.db.Where("email = ?", request.Email).First(&user).Error; err != nil {
		response.Unauthorized(c)
		return
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(request.Password)); err != nil {
		response.Unauthorized(c)
		return
	}

	token, err := services.GenerateToken(user.ID, user.Role)
	if err != nil {
		response.ServerError(c)
		return
	}

	response.Success(c, dto.AuthResponse{Token: token, User: toUserResponse(user)})
}

// Logout is a no-op server side; tokens simply expire.
func (a *AuthController) Logout(c *gin.Context) {
	response.Success(c, gin.H{"loggedOut": true})
}

// GetProfile serves the authenticated user's account.
func (a *AuthController) GetProfile(c *gin.Context) {
	userID := currentUserID(c)
	if userID == nil {
		response.Unauthorized(c)
		return
	}

	var user models.User
	if err := a.db.First(&user, *userID).Error; err != nil {
		response.NotFound(c)
		return
	}

	response.Success(c, toUserResponse(user))
}
