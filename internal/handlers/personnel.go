package handlers

import (
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/hiveproductions/hive/backend/internal/services"
	"github.com/hiveproductions/hive/backend/pkg/response"
	"gorm.io/gorm"
)

type PersonnelHandler struct {
	personnelService *services.PersonnelService
}

func NewPersonnelHandler(db *gorm.DB) *PersonnelHandler {
	return &PersonnelHandler{
		personnelService: services.NewPersonnelService(db),
	}
}

// List returns all personnel, optionally filtered by role substring
// GET /personnel?role=...
func (h *PersonnelHandler) List(c *gin.Context) {
	personnel, err := h.personnelService.List(c.Query("role"))
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, personnel)
}

// ListPhotographers returns personnel holding a photographer role
// GET /photographers
func (h *PersonnelHandler) ListPhotographers(c *gin.Context) {
	photographers, err := h.personnelService.ListPhotographers()
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, photographers)
}

// GetByID returns a personnel record by ID
// GET /personnel/:id
func (h *PersonnelHandler) GetByID(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		response.BadRequest(c, "invalid personnel id")
		return
	}

	person, err := h.personnelService.GetByID(uint(id))
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, person)
}

// Create creates a new personnel record
// POST /personnel
func (h *PersonnelHandler) Create(c *gin.Context) {
	var req services.CreatePersonnelRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	person, err := h.personnelService.Create(&req)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Created(c, person)
}

// Update updates a personnel record
// PUT /personnel/:id
func (h *PersonnelHandler) Update(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		response.BadRequest(c, "invalid personnel id")
		return
	}

	var req services.UpdatePersonnelRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	person, err := h.personnelService.Update(uint(id), &req)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, person)
}

// Delete deletes a personnel record
// DELETE /personnel/:id
func (h *PersonnelHandler) Delete(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		response.BadRequest(c, "invalid personnel id")
		return
	}

	if err := h.personnelService.Delete(uint(id)); err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, gin.H{"message": "personnel deleted successfully"})
}
