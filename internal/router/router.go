package router

import (
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/projecto-dev/projecto/internal/handlers"
	"github.com/projecto-dev/projecto/internal/middleware"
	"github.com/projecto-dev/projecto/internal/types"
)

func NewRouter() *gin.Engine {
	r := gin.Default()

	r.Use(cors.New(cors.Config{
		AllowOrigins:     types.AllowedOrigins,
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "HEAD", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Length", "Content-Type", "Authorization", "Accept", "X-Requested-With"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	api := r.Group("/api")
	{
		api.GET("/health", handlers.HealthCheck)

		api.POST("/token/", handlers.ObtainTokenPair)
		api.POST("/token/refresh/", handlers.RefreshAccessToken)
		api.POST("/token/verify/", handlers.VerifyToken)

		api.POST("/accounts/", handlers.RegisterUser)

		accounts := api.Group("/accounts", middleware.AuthMiddleware())
		{
			accounts.GET("/home/", handlers.Home)
			accounts.GET("/retrieve/", handlers.RetrieveUser)
			accounts.POST("/logout/", handlers.LogoutUser)
		}

		api.POST("/projectleads/", handlers.CreateProjectLead)
		api.GET("/projectleads/", handlers.ListProjectLeads)
		api.GET("/projects/", handlers.ListProjects)

		api.POST("/projectrequests/", handlers.CreateProjectRequest)
		api.DELETE("/projectrequests/:request_id/", handlers.DeleteProjectRequest)
		api.GET("/projectrequestsdisplay/", handlers.ListProjectRequests)

		api.POST("/projectmembers/", handlers.AcceptProjectMember)
		api.GET("/projectmembersdisplay/", handlers.ListProjectMembers)
		api.POST("/projectreject/", handlers.RejectProjectRequest)

		api.GET("/joinedprojects/", handlers.ListJoinedProjects)
		api.GET("/pendingprojects/", handlers.ListPendingProjects)
	}

	return r
}
