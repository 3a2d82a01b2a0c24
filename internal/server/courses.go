package server

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
)

type subscriptionRequest struct {
	PlanID string `json:"planId"`
}

// handleCourseOverview returns courses, plans, and the caller's
// subscription in one response.
func (s *Server) handleCourseOverview(c *gin.Context) {
	overview, err := s.social.CourseOverview(c.Request.Context(), currentUser(c))
	if err != nil {
		s.respondError(c, http.StatusInternalServerError, err)
		return
	}
	respondSuccess(c, http.StatusOK, overview)
}

// handleActivateSubscription starts a subscription on the given plan.
func (s *Server) handleActivateSubscription(c *gin.Context) {
	var req subscriptionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		s.respondError(c, http.StatusBadRequest, err)
		return
	}
	if req.PlanID == "" {
		s.respondError(c, http.StatusBadRequest, fmt.Errorf("planId is required"))
		return
	}

	sub, err := s.social.ActivateSubscription(c.Request.Context(), currentUser(c), req.PlanID)
	if err != nil {
		s.respondError(c, http.StatusBadRequest, err)
		return
	}
	respondSuccess(c, http.StatusOK, gin.H{"subscription": sub})
}

// handleCancelSubscription cancels the caller's subscription.
func (s *Server) handleCancelSubscription(c *gin.Context) {
	if err := s.social.CancelSubscription(c.Request.Context(), currentUser(c)); err != nil {
		s.respondError(c, http.StatusInternalServerError, err)
		return
	}
	respondSuccess(c, http.StatusOK, gin.H{"status": "cancelled"})
}
