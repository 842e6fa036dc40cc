package handlers

import (
	"errors"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/projecto-dev/projecto/db"
	"github.com/projecto-dev/projecto/internal/accounts"
	"github.com/projecto-dev/projecto/internal/models"
	"github.com/projecto-dev/projecto/internal/types"
	"gorm.io/gorm"
)

type CreateProjectLeadRequest struct {
	Email       string `json:"email" binding:"required,email"`
	ProjectName string `json:"projectname" binding:"required,max=100"`
	Description string `json:"description" binding:"required,max=250"`
	Frontend    bool   `json:"frontend"`
	Backend     bool   `json:"backend"`
}

func projectResponse(project models.ProjectLead) types.ProjectResponse {
	return types.ProjectResponse{
		ID:          project.ID,
		OwnerEmail:  project.Owner.Email,
		FirstName:   project.Owner.FirstName,
		LastName:    project.Owner.LastName,
		ProjectName: project.ProjectName,
		Description: project.Description,
		Frontend:    project.Frontend,
		Backend:     project.Backend,
	}
}

// CreateProjectLead creates a project owned by the account the email
// resolves to. The (owner, projectname) pair must be unique.
func CreateProjectLead(ctx *gin.Context) {
	var body CreateProjectLeadRequest

	if err := ctx.BindJSON(&body); err != nil {
		ctx.JSON(http.StatusBadRequest, fieldErrors(err))
		return
	}

	var owner models.User

	err := db.DB.Where("email = ?", accounts.NormalizeEmail(body.Email)).First(&owner).Error

	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			ctx.JSON(http.StatusBadRequest, gin.H{"email": "user with this email does not exist"})
			return
		}
		log.Printf("Database error when fetching owner: %v", err)
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}

	var existing models.ProjectLead

	err = db.DB.Where("owner_id = ? AND project_name = ?", owner.ID, body.ProjectName).First(&existing).Error

	if err == nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"projectname": "project with this name already exists for this user"})
		return
	}

	if !errors.Is(err, gorm.ErrRecordNotFound) {
		log.Printf("Database error when checking existing project: %v", err)
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}

	project := models.ProjectLead{
		OwnerID:     owner.ID,
		ProjectName: body.ProjectName,
		Description: body.Description,
		Frontend:    body.Frontend,
		Backend:     body.Backend,
	}

	if err := db.DB.Create(&project).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			ctx.JSON(http.StatusBadRequest, gin.H{"projectname": "project with this name already exists for this user"})
			return
		}
		log.Printf("Failed to create project: %v", err)
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}

	project.Owner = owner

	ctx.JSON(http.StatusCreated, projectResponse(project))
}

// ListProjectLeads returns the projects owned by the account the email
// query parameter resolves to.
func ListProjectLeads(ctx *gin.Context) {
	query := db.DB.Preload("Owner")

	if email := ctx.Query("email"); email != "" {
		var owner models.User

		if err := db.DB.Where("email = ?", accounts.NormalizeEmail(email)).First(&owner).Error; err != nil {
			ctx.JSON(http.StatusOK, []types.ProjectResponse{})
			return
		}

		query = query.Where("owner_id = ?", owner.ID)
	}

	var projects []models.ProjectLead

	if err := query.Find(&projects).Error; err != nil {
		log.Printf("Failed to list projects: %v", err)
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}

	response := make([]types.ProjectResponse, 0, len(projects))

	for _, project := range projects {
		response = append(response, projectResponse(project))
	}

	ctx.JSON(http.StatusOK, response)
}

// ListProjects is the browse listing. Filters compose conjunctively:
// email excludes that owner's projects (ignored when it resolves to
// nothing), frontend/backend restrict to flagged projects when the literal
// string "true".
func ListProjects(ctx *gin.Context) {
	query := db.DB.Preload("Owner")

	if email := ctx.Query("email"); email != "" {
		var owner models.User

		if err := db.DB.Where("email = ?", accounts.NormalizeEmail(email)).First(&owner).Error; err == nil {
			query = query.Where("owner_id <> ?", owner.ID)
		}
	}

	if ctx.Query("frontend") == "true" {
		query = query.Where("frontend = ?", true)
	}

	if ctx.Query("backend") == "true" {
		query = query.Where("backend = ?", true)
	}

	var projects []models.ProjectLead

	if err := query.Find(&projects).Error; err != nil {
		log.Printf("Failed to list projects: %v", err)
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}

	response := make([]types.ProjectResponse, 0, len(projects))

	for _, project := range projects {
		response = append(response, projectResponse(project))
	}

	ctx.JSON(http.StatusOK, response)
}
