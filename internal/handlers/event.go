package handlers

import (
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/hiveproductions/hive/backend/internal/services"
	"github.com/hiveproductions/hive/backend/pkg/response"
	"gorm.io/gorm"
)

type EventHandler struct {
	eventService *services.EventService
}

func NewEventHandler(db *gorm.DB) *EventHandler {
	return &EventHandler{
		eventService: services.NewEventService(db),
	}
}

// List returns all events, wrapped under an "events" key (legacy shaping)
// GET /events
func (h *EventHandler) List(c *gin.Context) {
	events, err := h.eventService.List()
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, gin.H{"events": events})
}

// GetByID returns an event by ID
// GET /events/:id
func (h *EventHandler) GetByID(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		response.BadRequest(c, "invalid event id")
		return
	}

	event, err := h.eventService.GetByID(uint(id))
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, event)
}

// Create creates a new event
// POST /events
func (h *EventHandler) Create(c *gin.Context) {
	var req services.CreateEventRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	event, err := h.eventService.Create(&req)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Created(c, event)
}

// Update updates an event
// PUT /events/:id
func (h *EventHandler) Update(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		response.BadRequest(c, "invalid event id")
		return
	}

	var req services.UpdateEventRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	event, err := h.eventService.Update(uint(id), &req)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, event)
}

// Delete deletes an event, cascading to its shots, shot requests and
// assignment rows
// DELETE /events/:id
func (h *EventHandler) Delete(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		response.BadRequest(c, "invalid event id")
		return
	}

	if err := h.eventService.Delete(uint(id)); err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, gin.H{"message": "event deleted successfully"})
}

// ListPersonnel returns the crew assigned to an event
// GET /events/:id/personnel
func (h *EventHandler) ListPersonnel(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		response.BadRequest(c, "invalid event id")
		return
	}

	personnel, err := h.eventService.ListPersonnel(uint(id))
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, personnel)
}

// AssignPersonnel assigns a crew member to an event
// POST /events/:id/personnel/:pid
func (h *EventHandler) AssignPersonnel(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		response.BadRequest(c, "invalid event id")
		return
	}
	pid, err := strconv.ParseUint(c.Param("pid"), 10, 32)
	if err != nil {
		response.BadRequest(c, "invalid personnel id")
		return
	}

	if err := h.eventService.AssignPersonnel(uint(id), uint(pid)); err != nil {
		response.Error(c, err)
		return
	}
	response.Created(c, gin.H{"message": "personnel assigned to event"})
}

// UnassignPersonnel removes a crew member from an event
// DELETE /events/:id/personnel/:pid
func (h *EventHandler) UnassignPersonnel(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		response.BadRequest(c, "invalid event id")
		return
	}
	pid, err := strconv.ParseUint(c.Param("pid"), 10, 32)
	if err != nil {
		response.BadRequest(c, "invalid personnel id")
		return
	}

	if err := h.eventService.UnassignPersonnel(uint(id), uint(pid)); err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, gin.H{"message": "personnel unassigned from event"})
}

// ListUsers returns the users assigned to an event
// GET /events/:id/users
func (h *EventHandler) ListUsers(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		response.BadRequest(c, "invalid event id")
		return
	}

	users, err := h.eventService.ListUsers(uint(id))
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, users)
}

// AssignUser assigns a user to an event
// POST /events/:id/users/:uid
func (h *EventHandler) AssignUser(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		response.BadRequest(c, "invalid event id")
		return
	}
	uid, err := strconv.ParseUint(c.Param("uid"), 10, 32)
	if err != nil {
		response.BadRequest(c, "invalid user id")
		return
	}

	if err := h.eventService.AssignUser(uint(id), uint(uid)); err != nil {
		response.Error(c, err)
		return
	}
	response.Created(c, gin.H{"message": "user assigned to event"})
}

// ListShots returns all shots captured at an event
// GET /events/:id/shots
func (h *EventHandler) ListShots(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		response.BadRequest(c, "invalid event id")
		return
	}

	shots, err := h.eventService.ListShots(uint(id))
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, shots)
}
