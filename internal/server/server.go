package server

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"wellquest/internal/progress"
	"wellquest/internal/storage/sqlite"
)

// Default user until real authentication against the hosted identity
// provider is wired in; clients may override it per request.
const (
	userHeader  = "X-User-ID"
	defaultUser = "user1"
)

// Server provides the HTTP surface for the wellness backend.
type Server struct {
	engine    *gin.Engine
	progress  *progress.Engine
	social    *sqlite.Store
	logger    *slog.Logger
	staticDir string
}

// New constructs the HTTP server with routes and middleware configured.
func New(engine *progress.Engine, social *sqlite.Store, logger *slog.Logger, staticDir string) *Server {
	if logger == nil {
		logger = slog.Default()
	}

	gin.SetMode(gin.ReleaseMode)
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(gin.LoggerWithWriter(gin.DefaultWriter, "/api"))

	srv := &Server{
		engine:    router,
		progress:  engine,
		social:    social,
		logger:    logger,
		staticDir: staticDir,
	}

	srv.registerRoutes()
	return srv
}

// Engine exposes the underlying Gin engine.
func (s *Server) Engine() *gin.Engine {
	return s.engine
}

// registerRoutes wires all API and static handlers together.
func (s *Server) registerRoutes() {
	api := s.engine.Group("/api")
	{
		api.GET("/healthz", s.handleHealth)

		tasks := api.Group("/tasks")
		{
			tasks.GET("", s.handleListTasks)
			tasks.POST("", s.handleCreateTask)
			tasks.POST(":id/toggle", s.handleToggleTask)
			tasks.DELETE(":id", s.handleDeleteTask)
		}

		missions := api.Group("/missions")
		{
			missions.GET("", s.handleListMissions)
			missions.POST(":id/toggle", s.handleToggleMission)
		}
		api.GET("/task-categories", s.handleTaskCategories)
		api.GET("/mission-categories", s.handleMissionCategories)

		api.GET("/profile", s.handleProfile)
		api.GET("/stats", s.handleStats)
		api.GET("/leaderboard", s.handleLeaderboard)

		achievements := api.Group("/achievements")
		{
			achievements.GET("", s.handleListAchievements)
			achievements.POST("", s.handleCreateAchievement)
			achievements.POST(":id/like", s.handleLikeAchievement)
		}

		communities := api.Group("/communities")
		{
			communities.GET("", s.handleListCommunities)
			communities.POST("", s.handleCreateCommunity)
			communities.POST(":id/join", s.handleJoinCommunity)
			communities.POST(":id/leave", s.handleLeaveCommunity)
		}

		api.GET("/courses", s.handleCourseOverview)
		api.POST("/subscription", s.handleActivateSubscription)
		api.DELETE("/subscription", s.handleCancelSubscription)

		help := api.Group("/help")
		{
			help.GET("/contacts", s.handleHelpContacts)
			help.GET("/emergency", s.handleEmergencyContacts)
		}
	}

	s.mountStatic()
}

// handleHealth provides a basic readiness endpoint.
func (s *Server) handleHealth(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

// currentUser resolves the acting user for a request.
func currentUser(c *gin.Context) string {
	if user := c.GetHeader(userHeader); user != "" {
		return user
	}
	return defaultUser
}

// respondError logs the error and returns a JSON payload.
func (s *Server) respondError(c *gin.Context, status int, err error) {
	if err != nil {
		s.logger.Error("request failed", slog.String("path", c.FullPath()), slog.String("error", err.Error()))
	}
	c.JSON(status, gin.H{"error": err.Error()})
}

// respondSuccess wraps a payload in a JSON envelope for consistency.
func respondSuccess(c *gin.Context, status int, payload any) {
	if payload == nil {
		c.Status(status)
		return
	}
	c.JSON(status, payload)
}
