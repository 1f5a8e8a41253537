package services

import (
	"errors"

	"github.com/hiveproductions/hive/backend/internal/models"
	"github.com/hiveproductions/hive/backend/pkg/response"
	"gorm.io/gorm"
)

// DefaultProjectStatus is applied when a project is created without one.
const DefaultProjectStatus = "In Planning"

type ProjectService struct {
	db *gorm.DB
}

func NewProjectService(db *gorm.DB) *ProjectService {
	return &ProjectService{db: db}
}

type CreateProjectRequest struct {
	Name           string `json:"name" binding:"required"`
	Client         string `json:"client"`
	OrganizationID uint   `json:"organization_id" binding:"required"`
	Status         string `json:"status"`
	Description    string `json:"description"`
	StartDate      string `json:"start_date"`
	EndDate        string `json:"end_date"`
	Location       string `json:"location"`
}

type UpdateProjectRequest struct {
	Name           *string `json:"name"`
	Client         *string `json:"client"`
	OrganizationID *uint   `json:"organization_id"`
	Status         *string `json:"status"`
	Description    *string `json:"description"`
	StartDate      *string `json:"start_date"`
	EndDate        *string `json:"end_date"`
	Location       *string `json:"location"`
}

// KeyPersonnelEntry is one member of a project's key personnel set, carrying
// the project-scoped role.
type KeyPersonnelEntry struct {
	PersonnelID uint   `json:"personnel_id" binding:"required"`
	Role        string `json:"role" binding:"required"`
}

// KeyPersonnelResponse is the shaped listing of a key personnel assignment.
type KeyPersonnelResponse struct {
	PersonnelID uint   `json:"personnel_id"`
	Name        string `json:"name"`
	Email       string `json:"email"`
	Phone       string `json:"phone"`
	Role        string `json:"role"`
}

// List returns all projects.
func (s *ProjectService) List() ([]models.Project, error) {
	var projects []models.Project
	if err := s.db.Order("id ASC").Find(&projects).Error; err != nil {
		return nil, err
	}
	return projects, nil
}

// GetByID returns one project.
func (s *ProjectService) GetByID(id uint) (*models.Project, error) {
	var project models.Project
	if err := s.db.First(&project, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, response.NewNotFound("project not found")
		}
		return nil, err
	}
	return &project, nil
}

// Create creates a project in an existing organization.
func (s *ProjectService) Create(req *CreateProjectRequest) (*models.Project, error) {
	status := req.Status
	if status == "" {
		status = DefaultProjectStatus
	}

	project := models.Project{
		Name:           req.Name,
		Client:         req.Client,
		OrganizationID: req.OrganizationID,
		Status:         status,
		Description:    req.Description,
		StartDate:      req.StartDate,
		EndDate:        req.EndDate,
		Location:       req.Location,
	}

	err := s.db.Transaction(func(tx *gorm.DB) error {
		var org models.Organization
		if err := tx.First(&org, req.OrganizationID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return response.NewNotFound("organization not found")
			}
			return err
		}
		return tx.Create(&project).Error
	})
	if err != nil {
		return nil, err
	}

	return &project, nil
}

// Update applies only the fields present in the patch, re-validating a
// changed organization reference.
func (s *ProjectService) Update(id uint, req *UpdateProjectRequest) (*models.Project, error) {
	var project models.Project

	err := s.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.First(&project, id).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return response.NewNotFound("project not found")
			}
			return err
		}

		updates := make(map[string]interface{})
		if req.Name != nil {
			updates["name"] = *req.Name
		}
		if req.Client != nil {
			updates["client"] = *req.Client
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
		if req.Status != nil {
			updates["status"] = *req.Status
		}
		if req.Description != nil {
			updates["description"] = *req.Description
		}
		if req.StartDate != nil {
			updates["start_date"] = *req.StartDate
		}
		if req.EndDate != nil {
			updates["end_date"] = *req.EndDate
		}
		if req.Location != nil {
			updates["location"] = *req.Location
		}

		if len(updates) == 0 {
			return nil
		}
		return tx.Model(&project).Updates(updates).Error
	})
	if err != nil {
		return nil, err
	}

	return &project, nil
}

// Delete removes a project. Events that referenced it are detached (their
// project reference cleared), and its key personnel rows are removed; neither
// events nor personnel themselves are deleted.
func (s *ProjectService) Delete(id uint) error {
	return s.db.Transaction(func(tx *gorm.DB) error {
		var project models.Project
		if err := tx.First(&project, id).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return response.NewNotFound("project not found")
			}
			return err
		}

		if err := tx.Model(&models.Event{}).
			Where("project_id = ?", id).
			Update("project_id", nil).Error; err != nil {
			return err
		}
		if err := tx.Where("project_id = ?", id).
			Delete(&models.ProjectKeyPersonnel{}).Error; err != nil {
			return err
		}
		return tx.Delete(&project).Error
	})
}

// ListEvents returns all events belonging to a project.
func (s *ProjectService) ListEvents(id uint) ([]models.Event, error) {
	if _, err := s.GetByID(id); err != nil {
		return nil, err
	}

	var events []models.Event
	if err := s.db.Where("project_id = ?", id).Order("id ASC").Find(&events).Error; err != nil {
		return nil, err
	}
	return events, nil
}

// ListKeyPersonnel returns the project's key personnel with their
// project-scoped roles.
func (s *ProjectService) ListKeyPersonnel(id uint) ([]KeyPersonnelResponse, error) {
	if _, err := s.GetByID(id); err != nil {
		return nil, err
	}

	var rows []models.ProjectKeyPersonnel
	if err := s.db.Where("project_id = ?", id).
		Preload("Personnel").
		Order("personnel_id ASC").
		Find(&rows).Error; err != nil {
		return nil, err
	}

	resp := make([]KeyPersonnelResponse, 0, len(rows))
	for _, row := range rows {
		entry := KeyPersonnelResponse{
			PersonnelID: row.PersonnelID,
			Role:        row.Role,
		}
		if row.Personnel != nil {
			entry.Name = row.Personnel.Name
			entry.Email = row.Personnel.Email
			entry.Phone = row.Personnel.Phone
		}
		resp = append(resp, entry)
	}
	return resp, nil
}

// ReplaceKeyPersonnel replaces the whole key personnel set for a project:
// existing rows are removed and the new set inserted, never a partial diff.
// Stale project-scoped roles cannot survive an update this way.
func (s *ProjectService) ReplaceKeyPersonnel(id uint, entries []KeyPersonnelEntry) error {
	return s.db.Transaction(func(tx *gorm.DB) error {
		var project models.Project
		if err := tx.First(&project, id).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return response.NewNotFound("project not found")
			}
			return err
		}

		seen := make(map[uint]bool, len(entries))
		for _, entry := range entries {
			if seen[entry.PersonnelID] {
				return response.NewValidation("duplicate personnel in key personnel set")
			}
			seen[entry.PersonnelID] = true

			var person models.Personnel
			if err := tx.First(&person, entry.PersonnelID).Error; err != nil {
				if errors.Is(err, gorm.ErrRecordNotFound) {
					return response.NewNotFound("personnel not found")
				}
				return err
			}
		}

		if err := tx.Where("project_id = ?", id).
			Delete(&models.ProjectKeyPersonnel{}).Error; err != nil {
			return err
		}

		for _, entry := range entries {
			row := models.ProjectKeyPersonnel{
				ProjectID:   id,
				PersonnelID: entry.PersonnelID,
				Role:        entry.Role,
			}
			if err := tx.Create(&row).Error; err != nil {
				return err
			}
		}
		return nil
	})
}
