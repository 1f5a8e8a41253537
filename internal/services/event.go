package services

import (
	"errors"

	"github.com/hiveproductions/hive/backend/internal/models"
	"github.com/hiveproductions/hive/backend/pkg/response"
	"gorm.io/gorm"
)

// Defaults rendered when an event omits the corresponding optional field.
const (
	DefaultEventStatus     = "Upcoming"
	DefaultEventDiscipline = "Photography"
)

type EventService struct {
	db *gorm.DB
}

func NewEventService(db *gorm.DB) *EventService {
	return &EventService{db: db}
}

type CreateEventRequest struct {
	Name              string `json:"name" binding:"required"`
	Date              string `json:"date" binding:"required"`
	StartTime         string `json:"start_time"`
	EndTime           string `json:"end_time"`
	Location          string `json:"location"`
	Status            string `json:"status"`
	Description       string `json:"description"`
	ProjectID         *uint  `json:"project_id"`
	OrganizationID    *uint  `json:"organization_id"`
	Discipline        string `json:"discipline"`
	IsQuickTurnaround bool   `json:"is_quick_turnaround"`
	IsCovered         bool   `json:"is_covered"`
	Deadline          string `json:"deadline"`
	ProcessPoint      string `json:"process_point"`
}

type UpdateEventRequest struct {
	Name              *string `json:"name"`
	Date              *string `json:"date"`
	StartTime         *string `json:"start_time"`
	EndTime           *string `json:"end_time"`
	Location          *string `json:"location"`
	Status            *string `json:"status"`
	Description       *string `json:"description"`
	ProjectID         *uint   `json:"project_id"`
	OrganizationID    *uint   `json:"organization_id"`
	Discipline        *string `json:"discipline"`
	IsQuickTurnaround *bool   `json:"is_quick_turnaround"`
	IsCovered         *bool   `json:"is_covered"`
	Deadline          *string `json:"deadline"`
	ProcessPoint      *string `json:"process_point"`
}

// EventResponse is the shaped projection of an event. Optional fields the
// event was stored without render with their documented defaults.
type EventResponse struct {
	ID                uint   `json:"id"`
	Name              string `json:"name"`
	Date              string `json:"date"`
	StartTime         string `json:"start_time"`
	EndTime           string `json:"end_time"`
	Location          string `json:"location"`
	Status            string `json:"status"`
	Description       string `json:"description"`
	ProjectID         *uint  `json:"project_id"`
	OrganizationID    uint   `json:"organization_id"`
	Discipline        string `json:"discipline"`
	IsQuickTurnaround bool   `json:"is_quick_turnaround"`
	IsCovered         bool   `json:"is_covered"`
	Deadline          string `json:"deadline"`
	ProcessPoint      string `json:"process_point"`
}

// ShapeEvent projects an event into its response form. It is a pure function
// of the entity: no state is read or written.
func ShapeEvent(e *models.Event) *EventResponse {
	status := e.Status
	if status == "" {
		status = DefaultEventStatus
	}
	discipline := e.Discipline
	if discipline == "" {
		discipline = DefaultEventDiscipline
	}

	return &EventResponse{
		ID:                e.ID,
		Name:              e.Name,
		Date:              e.Date,
		StartTime:         e.StartTime,
		EndTime:           e.EndTime,
		Location:          e.Location,
		Status:            status,
		Description:       e.Description,
		ProjectID:         e.ProjectID,
		OrganizationID:    e.OrganizationID,
		Discipline:        discipline,
		IsQuickTurnaround: e.IsQuickTurnaround,
		IsCovered:         e.IsCovered,
		Deadline:          e.Deadline,
		ProcessPoint:      e.ProcessPoint,
	}
}

// List returns all events, shaped.
func (s *EventService) List() ([]*EventResponse, error) {
	var events []models.Event
	if err := s.db.Order("id ASC").Find(&events).Error; err != nil {
		return nil, err
	}

	resp := make([]*EventResponse, 0, len(events))
	for i := range events {
		resp = append(resp, ShapeEvent(&events[i]))
	}
	return resp, nil
}

// GetByID returns one event, shaped.
func (s *EventService) GetByID(id uint) (*EventResponse, error) {
	event, err := s.find(s.db, id)
	if err != nil {
		return nil, err
	}
	return ShapeEvent(event), nil
}

func (s *EventService) find(tx *gorm.DB, id uint) (*models.Event, error) {
	var event models.Event
	if err := tx.First(&event, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, response.NewNotFound("event not found")
		}
		return nil, err
	}
	return &event, nil
}

// Create creates an event. If the payload omits the organization, it resolves
// to the first existing organization; when no organization exists at all the
// create fails rather than provisioning one.
func (s *EventService) Create(req *CreateEventRequest) (*EventResponse, error) {
	event := models.Event{
		Name:              req.Name,
		Date:              req.Date,
		StartTime:         req.StartTime,
		EndTime:           req.EndTime,
		Location:          req.Location,
		Status:            req.Status,
		Description:       req.Description,
		ProjectID:         req.ProjectID,
		Discipline:        req.Discipline,
		IsQuickTurnaround: req.IsQuickTurnaround,
		IsCovered:         req.IsCovered,
		Deadline:          req.Deadline,
		ProcessPoint:      req.ProcessPoint,
	}

	err := s.db.Transaction(func(tx *gorm.DB) error {
		if req.OrganizationID != nil {
			var org models.Organization
			if err := tx.First(&org, *req.OrganizationID).Error; err != nil {
				if errors.Is(err, gorm.ErrRecordNotFound) {
					return response.NewNotFound("organization not found")
				}
				return err
			}
			event.OrganizationID = org.ID
		} else {
			var org models.Organization
			if err := tx.Order("id ASC").First(&org).Error; err != nil {
				if errors.Is(err, gorm.ErrRecordNotFound) {
					return response.NewValidation("no organization exists to attach the event to")
				}
				return err
			}
			event.OrganizationID = org.ID
		}

		if req.ProjectID != nil {
			var project models.Project
			if err := tx.First(&project, *req.ProjectID).Error; err != nil {
				if errors.Is(err, gorm.ErrRecordNotFound) {
					return response.NewNotFound("project not found")
				}
				return err
			}
		}

		return tx.Create(&event).Error
	})
	if err != nil {
		return nil, err
	}

	return ShapeEvent(&event), nil
}

// Update applies only the fields present in the patch, re-validating any
// changed organization or project reference.
func (s *EventService) Update(id uint, req *UpdateEventRequest) (*EventResponse, error) {
	var event *models.Event

	err := s.db.Transaction(func(tx *gorm.DB) error {
		var err error
		event, err = s.find(tx, id)
		if err != nil {
			return err
		}

		updates := make(map[string]interface{})
		if req.Name != nil {
			updates["name"] = *req.Name
		}
		if req.Date != nil {
			updates["date"] = *req.Date
		}
		if req.StartTime != nil {
			updates["start_time"] = *req.StartTime
		}
		if req.EndTime != nil {
			updates["end_time"] = *req.EndTime
		}
		if req.Location != nil {
			updates["location"] = *req.Location
		}
		if req.Status != nil {
			updates["status"] = *req.Status
		}
		if req.Description != nil {
			updates["description"] = *req.Description
		}
		if req.ProjectID != nil {
			var project models.Project
			if err := tx.First(&project, *req.ProjectID).Error; err != nil {
				if errors.Is(err, gorm.ErrRecordNotFound) {
					return response.NewNotFound("project not found")
				}
				return err
			}
			updates["project_id"] = *req.ProjectID
		}
		if req.OrganizationID != nil {
			var org models.Organization
			if err := tx.First(&org, *req.OrganizationID).Error; err != nil {
				if errors.Is(err, gorm.ErrRecordNotFound) {
					return response.NewNotFound("organization not found")
				}
				return err
			}
			updates["organization_id"] = *req.OrganizationID
		}
		if req.Discipline != nil {
			updates["discipline"] = *req.Discipline
		}
		if req.IsQuickTurnaround != nil {
			updates["is_quick_turnaround"] = *req.IsQuickTurnaround
		}
		if req.IsCovered != nil {
			updates["is_covered"] = *req.IsCovered
		}
		if req.Deadline != nil {
			updates["deadline"] = *req.Deadline
		}
		if req.ProcessPoint != nil {
			updates["process_point"] = *req.ProcessPoint
		}

		if len(updates) == 0 {
			return nil
		}
		return tx.Model(event).Updates(updates).Error
	})
	if err != nil {
		return nil, err
	}

	return ShapeEvent(event), nil
}

// Delete removes an event and cascades: all its shots and shot requests are
// deleted and its personnel and user assignment rows removed, atomically.
func (s *EventService) Delete(id uint) error {
	return s.db.Transaction(func(tx *gorm.DB) error {
		event, err := s.find(tx, id)
		if err != nil {
			return err
		}

		if err := tx.Where("event_id = ?", id).Delete(&models.Shot{}).Error; err != nil {
			return err
		}
		if err := tx.Where("event_id = ?", id).Delete(&models.ShotRequest{}).Error; err != nil {
			return err
		}
		if err := tx.Model(event).Association("Personnel").Clear(); err != nil {
			return err
		}
		if err := tx.Model(event).Association("Users").Clear(); err != nil {
			return err
		}
		return tx.Delete(event).Error
	})
}

// ListPersonnel returns the crew assigned to an event.
func (s *EventService) ListPersonnel(id uint) ([]models.Personnel, error) {
	event, err := s.find(s.db, id)
	if err != nil {
		return nil, err
	}

	var personnel []models.Personnel
	if err := s.db.Model(event).Association("Personnel").Find(&personnel); err != nil {
		return nil, err
	}
	return personnel, nil
}

// AssignPersonnel adds a crew member to an event. Assigning an already
// assigned member is a no-op.
func (s *EventService) AssignPersonnel(id, personnelID uint) error {
	return s.db.Transaction(func(tx *gorm.DB) error {
		event, err := s.find(tx, id)
		if err != nil {
			return err
		}

		var person models.Personnel
		if err := tx.First(&person, personnelID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return response.NewNotFound("personnel not found")
			}
			return err
		}

		return tx.Model(event).Association("Personnel").Append(&person)
	})
}

// UnassignPersonnel removes a crew member from an event.
func (s *EventService) UnassignPersonnel(id, personnelID uint) error {
	return s.db.Transaction(func(tx *gorm.DB) error {
		event, err := s.find(tx, id)
		if err != nil {
			return err
		}

		var person models.Personnel
		if err := tx.First(&person, personnelID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return response.NewNotFound("personnel not found")
			}
			return err
		}

		return tx.Model(event).Association("Personnel").Delete(&person)
	})
}

// ListUsers returns the users assigned to an event.
func (s *EventService) ListUsers(id uint) ([]models.User, error) {
	event, err := s.find(s.db, id)
	if err != nil {
		return nil, err
	}

	var users []models.User
	if err := s.db.Model(event).Association("Users").Find(&users); err != nil {
		return nil, err
	}
	return users, nil
}

// AssignUser adds a user to an event.
func (s *EventService) AssignUser(id, userID uint) error {
	return s.db.Transaction(func(tx *gorm.DB) error {
		event, err := s.find(tx, id)
		if err != nil {
			return err
		}

		var user models.User
		if err := tx.First(&user, userID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return response.NewNotFound("user not found")
			}
			return err
		}

		return tx.Model(event).Association("Users").Append(&user)
	})
}

// ListShots returns all shots captured at an event.
func (s *EventService) ListShots(id uint) ([]models.Shot, error) {
	if _, err := s.find(s.db, id); err != nil {
		return nil, err
	}

	var shots []models.Shot
	if err := s.db.Where("event_id = ?", id).
		Preload("Photographer").
		Order("id ASC").
		Find(&shots).Error; err != nil {
		return nil, err
	}
	return shots, nil
}
