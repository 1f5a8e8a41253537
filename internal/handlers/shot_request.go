package handlers

import (
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/hiveproductions/hive/backend/internal/services"
	"github.com/hiveproductions/hive/backend/pkg/response"
	"gorm.io/gorm"
)

type ShotRequestHandler struct {
	shotRequestService *services.ShotRequestService
}

func NewShotRequestHandler(db *gorm.DB) *ShotRequestHandler {
	return &ShotRequestHandler{
		shotRequestService: services.NewShotRequestService(db),
	}
}

// List returns all shot requests
// GET /shot-requests
func (h *ShotRequestHandler) List(c *gin.Context) {
	requests, err := h.shotRequestService.List()
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, requests)
}

// GetByID returns a shot request by ID
// GET /shot-requests/:id
func (h *ShotRequestHandler) GetByID(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		response.BadRequest(c, "invalid shot request id")
		return
	}

	request, err := h.shotRequestService.GetByID(uint(id))
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, request)
}

// Create creates a new shot request
// POST /shot-requests
func (h *ShotRequestHandler) Create(c *gin.Context) {
	var req services.CreateShotRequestRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	request, err := h.shotRequestService.Create(&req)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Created(c, request)
}

// Update updates a shot request
// PUT /shot-requests/:id
func (h *ShotRequestHandler) Update(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		response.BadRequest(c, "invalid shot request id")
		return
	}

	var req services.UpdateShotRequestRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	request, err := h.shotRequestService.Update(uint(id), &req)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, request)
}

// Delete deletes a shot request
// DELETE /shot-requests/:id
func (h *ShotRequestHandler) Delete(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		response.BadRequest(c, "invalid shot request id")
		return
	}

	if err := h.shotRequestService.Delete(uint(id)); err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, gin.H{"message": "shot request deleted successfully"})
}
