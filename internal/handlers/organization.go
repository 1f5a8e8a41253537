package handlers

import (
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/hiveproductions/hive/backend/internal/services"
	"github.com/hiveproductions/hive/backend/pkg/response"
	"gorm.io/gorm"
)

type OrganizationHandler struct {
	orgService *services.OrganizationService
}

func NewOrganizationHandler(db *gorm.DB) *OrganizationHandler {
	return &OrganizationHandler{
		orgService: services.NewOrganizationService(db),
	}
}

// List returns all organizations
// GET /organizations
func (h *OrganizationHandler) List(c *gin.Context) {
	orgs, err := h.orgService.List()
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, orgs)
}

// GetByID returns an organization by ID
// GET /organizations/:id
func (h *OrganizationHandler) GetByID(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		response.BadRequest(c, "invalid organization id")
		return
	}

	org, err := h.orgService.GetByID(uint(id))
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, org)
}

// Create creates a new organization
// POST /organizations
func (h *OrganizationHandler) Create(c *gin.Context) {
	var req services.CreateOrganizationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	org, err := h.orgService.Create(&req)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Created(c, org)
}

// Update updates an organization
// PUT /organizations/:id
func (h *OrganizationHandler) Update(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		response.BadRequest(c, "invalid organization id")
		return
	}

	var req services.UpdateOrganizationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	org, err := h.orgService.Update(uint(id), &req)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, org)
}

// Delete deletes an organization, refused while it still owns projects
// DELETE /organizations/:id
func (h *OrganizationHandler) Delete(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		response.BadRequest(c, "invalid organization id")
		return
	}

	if err := h.orgService.Delete(uint(id)); err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, gin.H{"message": "organization deleted successfully"})
}
