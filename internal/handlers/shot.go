package handlers

import (
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/hiveproductions/hive/backend/internal/services"
	"github.com/hiveproductions/hive/backend/pkg/response"
	"gorm.io/gorm"
)

type ShotHandler struct {
	shotService *services.ShotService
}

func NewShotHandler(db *gorm.DB) *ShotHandler {
	return &ShotHandler{
		shotService: services.NewShotService(db),
	}
}

// List returns all shots
// GET /shots
func (h *ShotHandler) List(c *gin.Context) {
	shots, err := h.shotService.List()
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, shots)
}

// GetByID returns a shot by ID
// GET /shots/:id
func (h *ShotHandler) GetByID(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		response.BadRequest(c, "invalid shot id")
		return
	}

	shot, err := h.shotService.GetByID(uint(id))
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, shot)
}

// Create creates a new shot after the photographer role gate passes
// POST /shots
func (h *ShotHandler) Create(c *gin.Context) {
	var req services.CreateShotRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	shot, err := h.shotService.Create(&req)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Created(c, shot)
}

// Update updates a shot
// PUT /shots/:id
func (h *ShotHandler) Update(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		response.BadRequest(c, "invalid shot id")
		return
	}

	var req services.UpdateShotRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	shot, err := h.shotService.Update(uint(id), &req)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, shot)
}

// Delete deletes a shot
// DELETE /shots/:id
func (h *ShotHandler) Delete(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		response.BadRequest(c, "invalid shot id")
		return
	}

	if err := h.shotService.Delete(uint(id)); err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, gin.H{"message": "shot deleted successfully"})
}
