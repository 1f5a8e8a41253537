package handlers

import (
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/hiveproductions/hive/backend/internal/services"
	"github.com/hiveproductions/hive/backend/pkg/response"
	"gorm.io/gorm"
)

type ProjectHandler struct {
	projectService *services.ProjectService
}

func NewProjectHandler(db *gorm.DB) *ProjectHandler {
	return &ProjectHandler{
		projectService: services.NewProjectService(db),
	}
}

// List returns all projects
// GET /projects
func (h *ProjectHandler) List(c *gin.Context) {
	projects, err := h.projectService.List()
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, projects)
}

// GetByID returns a project by ID
// GET /projects/:id
func (h *ProjectHandler) GetByID(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		response.BadRequest(c, "invalid project id")
		return
	}

	project, err := h.projectService.GetByID(uint(id))
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, project)
}

// Create creates a new project
// POST /projects
func (h *ProjectHandler) Create(c *gin.Context) {
	var req services.CreateProjectRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	project, err := h.projectService.Create(&req)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Created(c, project)
}

// Update updates a project
// PUT /projects/:id
func (h *ProjectHandler) Update(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		response.BadRequest(c, "invalid project id")
		return
	}

	var req services.UpdateProjectRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	project, err := h.projectService.Update(uint(id), &req)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, project)
}

// Delete deletes a project
// DELETE /projects/:id
func (h *ProjectHandler) Delete(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		response.BadRequest(c, "invalid project id")
		return
	}

	if err := h.projectService.Delete(uint(id)); err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, gin.H{"message": "project deleted successfully"})
}

// ListEvents returns a project's events
// GET /projects/:id/events
func (h *ProjectHandler) ListEvents(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		response.BadRequest(c, "invalid project id")
		return
	}

	events, err := h.projectService.ListEvents(uint(id))
	if err != nil {
		response.Error(c, err)
		return
	}

	shaped := make([]*services.EventResponse, 0, len(events))
	for i := range events {
		shaped = append(shaped, services.ShapeEvent(&events[i]))
	}
	response.Success(c, shaped)
}

// ListKeyPersonnel returns a project's key personnel with project-scoped roles
// GET /projects/:id/key-personnel
func (h *ProjectHandler) ListKeyPersonnel(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		response.BadRequest(c, "invalid project id")
		return
	}

	entries, err := h.projectService.ListKeyPersonnel(uint(id))
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, entries)
}

type replaceKeyPersonnelRequest struct {
	KeyPersonnel []services.KeyPersonnelEntry `json:"key_personnel"`
}

// ReplaceKeyPersonnel replaces the whole key personnel set for a project
// PUT /projects/:id/key-personnel
func (h *ProjectHandler) ReplaceKeyPersonnel(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		response.BadRequest(c, "invalid project id")
		return
	}

	var req replaceKeyPersonnelRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	if err := h.projectService.ReplaceKeyPersonnel(uint(id), req.KeyPersonnel); err != nil {
		response.Error(c, err)
		return
	}

	entries, err := h.projectService.ListKeyPersonnel(uint(id))
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, entries)
}
