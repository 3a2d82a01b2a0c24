package server

import (
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"

	"wellquest/internal/catalog"
	"wellquest/internal/models"
	"wellquest/internal/progress"
)

type taskRequest struct {
	Title       *string    `json:"title"`
	Description *string    `json:"description"`
	Category    *string    `json:"category"`
	Priority    *string    `json:"priority"`
	DueDate     *time.Time `json:"dueDate"`
}

// handleListTasks returns the task collection, most recent first.
func (s *Server) handleListTasks(c *gin.Context) {
	respondSuccess(c, http.StatusOK, gin.H{"tasks": s.progress.Tasks()})
}

// handleCreateTask adds a task. The title is validated here, at the
// boundary; the engine trusts its input.
func (s *Server) handleCreateTask(c *gin.Context) {
	var req taskRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		s.respondError(c, http.StatusBadRequest, err)
		return
	}
	if req.Title == nil || strings.TrimSpace(*req.Title) == "" {
		s.respondError(c, http.StatusBadRequest, fmt.Errorf("title is required"))
		return
	}

	priority := models.PriorityMedium
	if req.Priority != nil {
		p := models.Priority(*req.Priority)
		if _, ok := models.ValidPriorities[p]; !ok {
			s.respondError(c, http.StatusBadRequest, fmt.Errorf("invalid priority %q", *req.Priority))
			return
		}
		priority = p
	}

	task := s.progress.AddTask(progress.TaskInput{
		Title:       strings.TrimSpace(*req.Title),
		Description: strings.TrimSpace(getString(req.Description)),
		Category:    getString(req.Category),
		Priority:    priority,
		DueDate:     req.DueDate,
	})
	respondSuccess(c, http.StatusCreated, gin.H{"task": task})
}

// handleTaskCategories returns the labels offered when creating a task.
func (s *Server) handleTaskCategories(c *gin.Context) {
	respondSuccess(c, http.StatusOK, gin.H{"categories": catalog.TaskCategories})
}

// handleToggleTask flips a task's completion state.
func (s *Server) handleToggleTask(c *gin.Context) {
	s.progress.ToggleTask(c.Param("id"))
	respondSuccess(c, http.StatusOK, gin.H{"tasks": s.progress.Tasks()})
}

// handleDeleteTask removes a task completely.
func (s *Server) handleDeleteTask(c *gin.Context) {
	s.progress.DeleteTask(c.Param("id"))
	respondSuccess(c, http.StatusOK, gin.H{"status": "deleted"})
}

func getString(v *string) string {
	if v == nil {
		return ""
	}
	return *v
}
