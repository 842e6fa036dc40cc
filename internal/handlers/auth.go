package handlers

import (
	"errors"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/projecto-dev/projecto/db"
	"github.com/projecto-dev/projecto/internal/accounts"
	"github.com/projecto-dev/projecto/internal/auth"
	"github.com/projecto-dev/projecto/internal/models"
	"github.com/projecto-dev/projecto/internal/types"
	"github.com/projecto-dev/projecto/internal/utils"
	"gorm.io/gorm"
)

type RegisterRequest struct {
	FirstName string `json:"firstname" binding:"required,max=50"`
	LastName  string `json:"lastname" binding:"required,max=50"`
	Email     string `json:"email" binding:"required,email"`
	Password  string `json:"password" binding:"required"`
	Frontend  bool   `json:"frontend"`
	Backend   bool   `json:"backend"`
}

type LogoutRequest struct {
	RefreshToken string `json:"refresh_token"`
}

// RegisterUser creates a new account. The response carries the public
// profile projection and never the password.
func RegisterUser(ctx *gin.Context) {
	var body RegisterRequest

	if err := ctx.BindJSON(&body); err != nil {
		ctx.JSON(http.StatusBadRequest, fieldErrors(err))
		return
	}

	email := accounts.NormalizeEmail(body.Email)

	var existing models.User

	err := db.DB.Where("email = ?", email).First(&existing).Error

	if err == nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"email": "user with this email already exists"})
		return
	}

	if !errors.Is(err, gorm.ErrRecordNotFound) {
		log.Printf("Database error when checking existing user: %v", err)
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}

	user, err := accounts.CreateUser(db.DB, accounts.CreateUserParams{
		FirstName: body.FirstName,
		LastName:  body.LastName,
		Email:     body.Email,
		Password:  body.Password,
		Frontend:  body.Frontend,
		Backend:   body.Backend,
	})

	if err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			ctx.JSON(http.StatusBadRequest, gin.H{"email": "user with this email already exists"})
			return
		}
		log.Printf("Failed to create user: %v", err)
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}

	ctx.JSON(http.StatusCreated, types.UserResponse{
		FirstName: user.FirstName,
		LastName:  user.LastName,
		Email:     user.Email,
		Frontend:  user.Frontend,
		Backend:   user.Backend,
	})
}

// Home returns the authenticated caller's profile, read from the identity
// the middleware already resolved.
func Home(ctx *gin.Context) {
	currentUser, err := utils.GetCurrentUser(ctx)

	if err != nil {
		ctx.JSON(http.StatusUnauthorized, gin.H{"error": "User not authenticated"})
		return
	}

	ctx.JSON(http.StatusOK, types.UserResponse{
		FirstName: currentUser.FirstName,
		LastName:  currentUser.LastName,
		Email:     currentUser.Email,
		Frontend:  currentUser.Frontend,
		Backend:   currentUser.Backend,
	})
}

// RetrieveUser is identity-bound like Home: it serializes the resolved
// caller, never the request payload.
func RetrieveUser(ctx *gin.Context) {
	Home(ctx)
}

// LogoutUser blacklists the supplied refresh token so it can no longer be
// used. Access tokens expire on their own.
func LogoutUser(ctx *gin.Context) {
	var body LogoutRequest

	if err := ctx.BindJSON(&body); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request"})
		return
	}

	if body.RefreshToken == "" {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Refresh token is required"})
		return
	}

	if err := auth.BlacklistRefreshToken(body.RefreshToken); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	ctx.JSON(http.StatusResetContent, gin.H{"success": "Logged out"})
}
