package server

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"wellquest/internal/community"
)

// handleListAchievements returns the shared achievement feed.
func (s *Server) handleListAchievements(c *gin.Context) {
	feed, err := s.social.ListAchievements(c.Request.Context())
	if err != nil {
		s.respondError(c, http.StatusInternalServerError, err)
		return
	}
	respondSuccess(c, http.StatusOK, gin.H{"achievements": feed})
}

// handleCreateAchievement publishes a milestone for the acting user.
func (s *Server) handleCreateAchievement(c *gin.Context) {
	var req community.NewAchievement
	if err := c.ShouldBindJSON(&req); err != nil {
		s.respondError(c, http.StatusBadRequest, err)
		return
	}

	achievement, err := s.social.CreateAchievement(c.Request.Context(), currentUser(c), req)
	if err != nil {
		s.respondError(c, http.StatusBadRequest, err)
		return
	}
	respondSuccess(c, http.StatusCreated, gin.H{"achievement": achievement})
}

// handleLikeAchievement bumps the like counter on a feed entry.
func (s *Server) handleLikeAchievement(c *gin.Context) {
	if err := s.social.LikeAchievement(c.Request.Context(), c.Param("id")); err != nil {
		s.respondError(c, http.StatusBadRequest, err)
		return
	}
	respondSuccess(c, http.StatusOK, gin.H{"status": "liked"})
}

// handleListCommunities returns all groups with the caller's membership.
func (s *Server) handleListCommunities(c *gin.Context) {
	groups, err := s.social.ListCommunities(c.Request.Context(), currentUser(c))
	if err != nil {
		s.respondError(c, http.StatusInternalServerError, err)
		return
	}
	respondSuccess(c, http.StatusOK, gin.H{"communities": groups})
}

// handleCreateCommunity creates a group owned by the acting user.
func (s *Server) handleCreateCommunity(c *gin.Context) {
	var req community.CommunityInput
	if err := c.ShouldBindJSON(&req); err != nil {
		s.respondError(c, http.StatusBadRequest, err)
		return
	}

	group, err := s.social.CreateCommunity(c.Request.Context(), currentUser(c), req)
	if err != nil {
		s.respondError(c, http.StatusBadRequest, err)
		return
	}
	respondSuccess(c, http.StatusCreated, gin.H{"community": group})
}

// handleJoinCommunity enrolls the acting user in a group.
func (s *Server) handleJoinCommunity(c *gin.Context) {
	if err := s.social.JoinCommunity(c.Request.Context(), currentUser(c), c.Param("id")); err != nil {
		s.respondError(c, http.StatusBadRequest, err)
		return
	}
	respondSuccess(c, http.StatusOK, gin.H{"status": "joined"})
}

// handleLeaveCommunity removes the acting user from a group.
func (s *Server) handleLeaveCommunity(c *gin.Context) {
	if err := s.social.LeaveCommunity(c.Request.Context(), currentUser(c), c.Param("id")); err != nil {
		s.respondError(c, http.StatusBadRequest, err)
		return
	}
	respondSuccess(c, http.StatusOK, gin.H{"status": "left"})
}
