package handlers

import (
	"errors"
	"log"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/projecto-dev/projecto/db"
	"github.com/projecto-dev/projecto/internal/accounts"
	"github.com/projecto-dev/projecto/internal/models"
	"github.com/projecto-dev/projecto/internal/types"
	"gorm.io/gorm"
)

type CreateProjectRequestRequest struct {
	OwnerEmail  string `json:"owner_email" binding:"required,email"`
	ProjectName string `json:"projectname" binding:"required,max=100"`
	MemberEmail string `json:"member_email" binding:"required,email"`
	Message     string `json:"message" binding:"max=250"`
}

// MembershipRequest is the body the accept and reject endpoints share: the
// lead identifies the project, email names the requesting member.
type MembershipRequest struct {
	Owner       string `json:"owner" binding:"required,email"`
	Email       string `json:"email" binding:"required,email"`
	ProjectName string `json:"projectname" binding:"required,max=100"`
	Message     string `json:"message" binding:"max=250"`
}

func findUserByEmail(email string) (models.User, error) {
	var user models.User

	err := db.DB.Where("email = ?", accounts.NormalizeEmail(email)).First(&user).Error

	return user, err
}

func findProjectLead(ownerID uint, projectName string) (models.ProjectLead, error) {
	var project models.ProjectLead

	err := db.DB.Where("owner_id = ? AND project_name = ?", ownerID, projectName).First(&project).Error

	return project, err
}

func requestResponse(id uint, member models.User, message string) types.RequestResponse {
	return types.RequestResponse{
		ID:        id,
		Email:     member.Email,
		FirstName: member.FirstName,
		LastName:  member.LastName,
		Message:   message,
	}
}

// resolveMembership resolves the (owner, projectname, member) triple shared
// by the request, accept and reject endpoints. A false return means a
// response has already been written.
func resolveMembership(ctx *gin.Context, ownerEmail, projectName, memberEmail string) (models.ProjectLead, models.User, bool) {
	owner, err := findUserByEmail(ownerEmail)

	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			ctx.JSON(http.StatusBadRequest, gin.H{"owner_email": "user with this email does not exist"})
			return models.ProjectLead{}, models.User{}, false
		}
		log.Printf("Database error when fetching owner: %v", err)
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return models.ProjectLead{}, models.User{}, false
	}

	project, err := findProjectLead(owner.ID, projectName)

	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			ctx.JSON(http.StatusBadRequest, gin.H{"projectname": "project with this name does not exist"})
			return models.ProjectLead{}, models.User{}, false
		}
		log.Printf("Database error when fetching project: %v", err)
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return models.ProjectLead{}, models.User{}, false
	}

	member, err := findUserByEmail(memberEmail)

	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			ctx.JSON(http.StatusBadRequest, gin.H{"member_email": "user with this email does not exist"})
			return models.ProjectLead{}, models.User{}, false
		}
		log.Printf("Database error when fetching member: %v", err)
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return models.ProjectLead{}, models.User{}, false
	}

	return project, member, true
}

// CreateProjectRequest records a join request by a member against a project
// lead. The (project, member) pair must be unique.
func CreateProjectRequest(ctx *gin.Context) {
	var body CreateProjectRequestRequest

	if err := ctx.BindJSON(&body); err != nil {
		ctx.JSON(http.StatusBadRequest, fieldErrors(err))
		return
	}

	project, member, ok := resolveMembership(ctx, body.OwnerEmail, body.ProjectName, body.MemberEmail)

	if !ok {
		return
	}

	var existing models.ProjectRequest

	err := db.DB.Where("project_id = ? AND member_id = ?", project.ID, member.ID).First(&existing).Error

	if err == nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Request for this project already exists"})
		return
	}

	if !errors.Is(err, gorm.ErrRecordNotFound) {
		log.Printf("Database error when checking existing request: %v", err)
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}

	request := models.ProjectRequest{
		ProjectID: project.ID,
		MemberID:  member.ID,
		Message:   body.Message,
	}

	if err := db.DB.Create(&request).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			ctx.JSON(http.StatusBadRequest, gin.H{"error": "Request for this project already exists"})
			return
		}
		log.Printf("Failed to create request: %v", err)
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}

	ctx.JSON(http.StatusCreated, requestResponse(request.ID, member, request.Message))
}

// DeleteProjectRequest removes a join request by id. The client calls this
// after the lead accepts or rejects the request.
func DeleteProjectRequest(ctx *gin.Context) {
	requestID, err := strconv.ParseUint(ctx.Param("request_id"), 10, 64)

	if err != nil {
		ctx.JSON(http.StatusNotFound, gin.H{"error": "Request not found"})
		return
	}

	var request models.ProjectRequest

	if err := db.DB.Where("id = ?", requestID).First(&request).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			ctx.JSON(http.StatusNotFound, gin.H{"error": "Request not found"})
		} else {
			log.Printf("Failed to fetch request: %v", err)
			ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		}
		return
	}

	// Hard delete: a soft-deleted row would still occupy the unique
	// (project, member) slot and block a later re-request.
	if err := db.DB.Unscoped().Delete(&request).Error; err != nil {
		log.Printf("Failed to delete request: %v", err)
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}

	ctx.Status(http.StatusNoContent)
}

// ListProjectRequests returns the pending join requests for one of the
// owner's projects. Unresolvable owner or project yields an empty listing.
func ListProjectRequests(ctx *gin.Context) {
	owner, err := findUserByEmail(ctx.Query("email"))

	if err != nil {
		ctx.JSON(http.StatusOK, []types.RequestResponse{})
		return
	}

	project, err := findProjectLead(owner.ID, ctx.Query("projectname"))

	if err != nil {
		ctx.JSON(http.StatusOK, []types.RequestResponse{})
		return
	}

	var requests []models.ProjectRequest

	if err := db.DB.Preload("Member").Where("project_id = ?", project.ID).Find(&requests).Error; err != nil {
		log.Printf("Failed to list requests: %v", err)
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}

	response := make([]types.RequestResponse, 0, len(requests))

	for _, request := range requests {
		response = append(response, requestResponse(request.ID, request.Member, request.Message))
	}

	ctx.JSON(http.StatusOK, response)
}

// AcceptProjectMember turns a join request into a membership row. The
// request row itself is deleted by the client in a separate call.
func AcceptProjectMember(ctx *gin.Context) {
	var body MembershipRequest

	if err := ctx.BindJSON(&body); err != nil {
		ctx.JSON(http.StatusBadRequest, fieldErrors(err))
		return
	}

	project, member, ok := resolveMembership(ctx, body.Owner, body.ProjectName, body.Email)

	if !ok {
		return
	}

	var existing models.ProjectMember

	err := db.DB.Where("project_id = ? AND member_id = ?", project.ID, member.ID).First(&existing).Error

	if err == nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "User is already a member of this project"})
		return
	}

	if !errors.Is(err, gorm.ErrRecordNotFound) {
		log.Printf("Database error when checking existing member: %v", err)
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}

	membership := models.ProjectMember{
		ProjectID: project.ID,
		MemberID:  member.ID,
		Message:   body.Message,
	}

	if err := db.DB.Create(&membership).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			ctx.JSON(http.StatusBadRequest, gin.H{"error": "User is already a member of this project"})
			return
		}
		log.Printf("Failed to create member: %v", err)
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}

	ctx.JSON(http.StatusCreated, requestResponse(membership.ID, member, membership.Message))
}

// ListProjectMembers returns the accepted members of one of the owner's
// projects.
func ListProjectMembers(ctx *gin.Context) {
	owner, err := findUserByEmail(ctx.Query("email"))

	if err != nil {
		ctx.JSON(http.StatusOK, []types.RequestResponse{})
		return
	}

	project, err := findProjectLead(owner.ID, ctx.Query("projectname"))

	if err != nil {
		ctx.JSON(http.StatusOK, []types.RequestResponse{})
		return
	}

	var members []models.ProjectMember

	if err := db.DB.Preload("Member").Where("project_id = ?", project.ID).Find(&members).Error; err != nil {
		log.Printf("Failed to list members: %v", err)
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}

	response := make([]types.RequestResponse, 0, len(members))

	for _, member := range members {
		response = append(response, requestResponse(member.ID, member.Member, member.Message))
	}

	ctx.JSON(http.StatusOK, response)
}

// RejectProjectRequest records that the lead turned a request down. The
// pending request row is left for the client's separate delete call.
func RejectProjectRequest(ctx *gin.Context) {
	var body MembershipRequest

	if err := ctx.BindJSON(&body); err != nil {
		ctx.JSON(http.StatusBadRequest, fieldErrors(err))
		return
	}

	project, member, ok := resolveMembership(ctx, body.Owner, body.ProjectName, body.Email)

	if !ok {
		return
	}

	rejection := models.ProjectRejection{
		ProjectID: project.ID,
		MemberID:  member.ID,
		Message:   body.Message,
	}

	if err := db.DB.Create(&rejection).Error; err != nil {
		log.Printf("Failed to create rejection: %v", err)
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}

	ctx.JSON(http.StatusCreated, gin.H{"success": "Request rejected"})
}

func memberProjectResponse(project models.ProjectLead, message string) types.MemberProjectResponse {
	return types.MemberProjectResponse{
		ProjectName:    project.ProjectName,
		Description:    project.Description,
		OwnerEmail:     project.Owner.Email,
		OwnerFirstName: project.Owner.FirstName,
		OwnerLastName:  project.Owner.LastName,
		Frontend:       project.Frontend,
		Backend:        project.Backend,
		Message:        message,
	}
}

// ListJoinedProjects returns the projects the account is an accepted
// member of.
func ListJoinedProjects(ctx *gin.Context) {
	member, err := findUserByEmail(ctx.Query("email"))

	if err != nil {
		ctx.JSON(http.StatusOK, []types.MemberProjectResponse{})
		return
	}

	var memberships []models.ProjectMember

	if err := db.DB.Preload("Project.Owner").Where("member_id = ?", member.ID).Find(&memberships).Error; err != nil {
		log.Printf("Failed to list joined projects: %v", err)
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}

	response := make([]types.MemberProjectResponse, 0, len(memberships))

	for _, membership := range memberships {
		response = append(response, memberProjectResponse(membership.Project, membership.Message))
	}

	ctx.JSON(http.StatusOK, response)
}

// ListPendingProjects returns the projects the account has requested to
// join and is still waiting on, each with the member's request message.
func ListPendingProjects(ctx *gin.Context) {
	member, err := findUserByEmail(ctx.Query("email"))

	if err != nil {
		ctx.JSON(http.StatusOK, []types.MemberProjectResponse{})
		return
	}

	var requests []models.ProjectRequest

	if err := db.DB.Preload("Project.Owner").Where("member_id = ?", member.ID).Find(&requests).Error; err != nil {
		log.Printf("Failed to list pending projects: %v", err)
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}

	response := make([]types.MemberProjectResponse, 0, len(requests))

	for _, request := range requests {
		response = append(response, memberProjectResponse(request.Project, request.Message))
	}

	ctx.JSON(http.StatusOK, response)
}
