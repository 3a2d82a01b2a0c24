package server

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// handleHelpContacts returns the professional help directory.
func (s *Server) handleHelpContacts(c *gin.Context) {
	contacts, err := s.social.ListHelpContacts(c.Request.Context())
	if err != nil {
		s.respondError(c, http.StatusInternalServerError, err)
		return
	}
	respondSuccess(c, http.StatusOK, gin.H{"contacts": contacts})
}

// handleEmergencyContacts returns the crisis lines.
func (s *Server) handleEmergencyContacts(c *gin.Context) {
	contacts, err := s.social.ListEmergencyContacts(c.Request.Context())
	if err != nil {
		s.respondError(c, http.StatusInternalServerError, err)
		return
	}
	respondSuccess(c, http.StatusOK, gin.H{"emergency": contacts})
}
