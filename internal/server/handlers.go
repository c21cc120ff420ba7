package server

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/trackmaster/trackmaster/internal/models"
)

type createTaskRequest struct {
	SprintID    int              `json:"sprint_id" binding:"required"`
	Title       string           `json:"title" binding:"required,max=50"`
	Description string           `json:"description" binding:"required,max=200"`
	AssignedTo  models.Assignees `json:"assigned_to" binding:"required,min=1,dive,gt=0"`
	Status      string           `json:"status" binding:"omitempty,eq=todo"`
}

type updateTaskRequest struct {
	Title       string           `json:"title" binding:"required,max=50"`
	Description string           `json:"description" binding:"required,max=200"`
	AssignedTo  models.Assignees `json:"assigned_to" binding:"required,min=1,dive,gt=0"`
	Status      string           `json:"status" binding:"required,oneof=todo in_progress done"`
}

type reviewRequest struct {
	Reviewed *bool `json:"reviewed" binding:"required"`
}

// handleListSprints returns a group's sprints.
func (s *Server) handleListSprints(c *gin.Context) {
	groupID, ok := queryID(c, "group_id")
	if !ok {
		return
	}
	sprints, err := s.repo.Sprints.ListByGroup(c.Request.Context(), groupID)
	if err != nil {
		s.respondError(c, http.StatusInternalServerError, err)
		return
	}
	respondSuccess(c, http.StatusOK, sprints)
}

// handleGroupDetails returns the group with representative and members.
func (s *Server) handleGroupDetails(c *gin.Context) {
	groupID, ok := queryID(c, "group_id")
	if !ok {
		return
	}
	group, err := s.repo.Groups.Details(c.Request.Context(), groupID)
	if err != nil {
		s.respondError(c, http.StatusInternalServerError, err)
		return
	}
	respondSuccess(c, http.StatusOK, group)
}

// handleListTasks returns every task of a sprint.
func (s *Server) handleListTasks(c *gin.Context) {
	sprintID, ok := queryID(c, "sprint_id")
	if !ok {
		return
	}
	tasks, err := s.repo.Tasks.ListBySprint(c.Request.Context(), sprintID)
	if err != nil {
		s.respondError(c, http.StatusInternalServerError, err)
		return
	}
	respondSuccess(c, http.StatusOK, tasks)
}

// handleCreateTask inserts a new task into the todo column of a sprint.
func (s *Server) handleCreateTask(c *gin.Context) {
	var req createTaskRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		s.respondError(c, http.StatusBadRequest, err)
		return
	}

	ctx := c.Request.Context()
	exists, err := s.repo.Sprints.Exists(ctx, req.SprintID)
	if err != nil {
		s.respondError(c, http.StatusInternalServerError, err)
		return
	}
	if !exists {
		c.JSON(http.StatusNotFound, gin.H{"error": fmt.Sprintf("sprint %d not found", req.SprintID)})
		return
	}

	task, err := s.repo.Tasks.Create(ctx, req.SprintID, req.Title, req.Description, req.AssignedTo)
	if err != nil {
		s.respondError(c, http.StatusInternalServerError, err)
		return
	}
	respondSuccess(c, http.StatusCreated, task)
}

// handleUpdateTask replaces a task's fields and status.
func (s *Server) handleUpdateTask(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}

	var req updateTaskRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		s.respondError(c, http.StatusBadRequest, err)
		return
	}

	task, err := s.repo.Tasks.Update(c.Request.Context(), id, req.Title, req.Description, req.AssignedTo, models.Status(req.Status))
	if err != nil {
		s.respondError(c, http.StatusInternalServerError, err)
		return
	}
	respondSuccess(c, http.StatusOK, task)
}

// handleDeleteTask removes a task completely.
func (s *Server) handleDeleteTask(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}
	if err := s.repo.Tasks.Delete(c.Request.Context(), id); err != nil {
		s.respondError(c, http.StatusInternalServerError, err)
		return
	}
	respondSuccess(c, http.StatusOK, gin.H{"status": "deleted"})
}

// handleReviewTask is the teacher's review action.
func (s *Server) handleReviewTask(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}
	var req reviewRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		s.respondError(c, http.StatusBadRequest, err)
		return
	}
	task, err := s.repo.Tasks.SetReviewed(c.Request.Context(), id, *req.Reviewed)
	if err != nil {
		s.respondError(c, http.StatusInternalServerError, err)
		return
	}
	respondSuccess(c, http.StatusOK, task)
}
