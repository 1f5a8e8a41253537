package services

import (
	"errors"

	"github.com/hiveproductions/hive/backend/internal/models"
	"github.com/hiveproductions/hive/backend/pkg/response"
	"gorm.io/gorm"
)

type ShotRequestService struct {
	db *gorm.DB
}

func NewShotRequestService(db *gorm.DB) *ShotRequestService {
	return &ShotRequestService{db: db}
}

type CreateShotRequestRequest struct {
	Description string `json:"description" binding:"required"`
	StartTime   string `json:"start_time"`
	EndTime     string `json:"end_time"`
	Stakeholder string `json:"stakeholder"`
	QuickTurn   bool   `json:"quick_turn"`
	Deadline    string `json:"deadline"`
	KeySponsor  string `json:"key_sponsor"`
	Status      string `json:"status"`
	EventID     *uint  `json:"event_id"`
}

type UpdateShotRequestRequest struct {
	Description *string `json:"description"`
	StartTime   *string `json:"start_time"`
	EndTime     *string `json:"end_time"`
	Stakeholder *string `json:"stakeholder"`
	QuickTurn   *bool   `json:"quick_turn"`
	Deadline    *string `json:"deadline"`
	KeySponsor  *string `json:"key_sponsor"`
	Status      *string `json:"status"`
	EventID     *uint   `json:"event_id"`
}

// List returns all shot requests.
func (s *ShotRequestService) List() ([]models.ShotRequest, error) {
	var requests []models.ShotRequest
	if err := s.db.Order("id ASC").Find(&requests).Error; err != nil {
		return nil, err
	}
	return requests, nil
}

// GetByID returns one shot request.
func (s *ShotRequestService) GetByID(id uint) (*models.ShotRequest, error) {
	var request models.ShotRequest
	if err := s.db.First(&request, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, response.NewNotFound("shot request not found")
		}
		return nil, err
	}
	return &request, nil
}

// Create creates a shot request. An event reference, if supplied, must exist.
func (s *ShotRequestService) Create(req *CreateShotRequestRequest) (*models.ShotRequest, error) {
	request := models.ShotRequest{
		Description: req.Description,
		StartTime:   req.StartTime,
		EndTime:     req.EndTime,
		Stakeholder: req.Stakeholder,
		QuickTurn:   req.QuickTurn,
		Deadline:    req.Deadline,
		KeySponsor:  req.KeySponsor,
		Status:      req.Status,
		EventID:     req.EventID,
	}

	err := s.db.Transaction(func(tx *gorm.DB) error {
		if req.EventID != nil {
			var event models.Event
			if err := tx.First(&event, *req.EventID).Error; err != nil {
				if errors.Is(err, gorm.ErrRecordNotFound) {
					return response.NewNotFound("event not found")
				}
				return err
			}
		}
		return tx.Create(&request).Error
	})
	if err != nil {
		return nil, err
	}

	return &request, nil
}

// Update applies only the fields present in the patch, re-validating a
// changed event reference.
func (s *ShotRequestService) Update(id uint, req *UpdateShotRequestRequest) (*models.ShotRequest, error) {
	var request models.ShotRequest

	err := s.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.First(&request, id).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return response.NewNotFound("shot request not found")
			}
			return err
		}

		updates := make(map[string]interface{})
		if req.Description != nil {
			updates["description"] = *req.Description
		}
		if req.StartTime != nil {
			updates["start_time"] = *req.StartTime
		}
		if req.EndTime != nil {
			updates["end_time"] = *req.EndTime
		}
		if req.Stakeholder != nil {
			updates["stakeholder"] = *req.Stakeholder
		}
		if req.QuickTurn != nil {
			updates["quick_turn"] = *req.QuickTurn
		}
		if req.Deadline != nil {
			updates["deadline"] = *req.Deadline
		}
		if req.KeySponsor != nil {
			updates["key_sponsor"] = *req.KeySponsor
		}
		if req.Status != nil {
			updates["status"] = *req.Status
		}
		if req.EventID != nil {
			var event models.Event
			if err := tx.First(&event, *req.EventID).Error; err != nil {
				if errors.Is(err, gorm.ErrRecordNotFound) {
					return response.NewNotFound("event not found")
				}
				return err
			}
			updates["event_id"] = *req.EventID
		}

		if len(updates) == 0 {
			return nil
		}
		return tx.Model(&request).Updates(updates).Error
	})
	if err != nil {
		return nil, err
	}

	return &request, nil
}

// Delete removes a shot request.
func (s *ShotRequestService) Delete(id uint) error {
	return s.db.Transaction(func(tx *gorm.DB) error {
		result := tx.Delete(&models.ShotRequest{}, id)
		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected == 0 {
			return response.NewNotFound("shot request not found")
		}
		return nil
	})
}
