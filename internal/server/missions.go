package server

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"wellquest/internal/catalog"
)

// handleListMissions returns all missions, or one category's missions
// when the category query parameter is set.
func (s *Server) handleListMissions(c *gin.Context) {
	if category := c.Query("category"); category != "" {
		respondSuccess(c, http.StatusOK, gin.H{"missions": s.progress.MissionsByCategory(category)})
		return
	}
	respondSuccess(c, http.StatusOK, gin.H{"missions": s.progress.Missions()})
}

// handleMissionCategories returns the static catalog grouping.
func (s *Server) handleMissionCategories(c *gin.Context) {
	respondSuccess(c, http.StatusOK, gin.H{"categories": catalog.Categories()})
}

// handleToggleMission flips a mission's completion state. The profile is
// recomputed before the response is written, so the returned profile
// already reflects the toggle.
func (s *Server) handleToggleMission(c *gin.Context) {
	s.progress.ToggleMission(c.Param("id"))
	respondSuccess(c, http.StatusOK, gin.H{
		"missions": s.progress.Missions(),
		"profile":  s.progress.Profile(),
	})
}

// handleProfile returns the derived user profile.
func (s *Server) handleProfile(c *gin.Context) {
	respondSuccess(c, http.StatusOK, gin.H{"profile": s.progress.Profile()})
}

// handleStats returns the combined task and mission statistics.
func (s *Server) handleStats(c *gin.Context) {
	respondSuccess(c, http.StatusOK, gin.H{"stats": s.progress.Stats()})
}

// handleLeaderboard returns the ranked profiles.
func (s *Server) handleLeaderboard(c *gin.Context) {
	respondSuccess(c, http.StatusOK, gin.H{"leaderboard": s.progress.Leaderboard()})
}
