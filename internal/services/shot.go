package services

import (
	"errors"

	"github.com/hiveproductions/hive/backend/internal/models"
	"github.com/hiveproductions/hive/backend/pkg/response"
	"gorm.io/gorm"
)

type ShotService struct {
	db *gorm.DB
}

func NewShotService(db *gorm.DB) *ShotService {
	return &ShotService{db: db}
}

type CreateShotRequest struct {
	Image          string `json:"image" binding:"required"`
	DateCreated    string `json:"date_created" binding:"required"`
	Camera         string `json:"camera" binding:"required"`
	Filename       string `json:"filename" binding:"required"`
	EventID        uint   `json:"event_id" binding:"required"`
	PhotographerID uint   `json:"photographer_id" binding:"required"`
}

type UpdateShotRequest struct {
	Image          *string `json:"image"`
	DateCreated    *string `json:"date_created"`
	Camera         *string `json:"camera"`
	Filename       *string `json:"filename"`
	EventID        *uint   `json:"event_id"`
	PhotographerID *uint   `json:"photographer_id"`
}

// List returns all shots with their photographers preloaded.
func (s *ShotService) List() ([]models.Shot, error) {
	var shots []models.Shot
	if err := s.db.Preload("Photographer").Order("id ASC").Find(&shots).Error; err != nil {
		return nil, err
	}
	return shots, nil
}

// GetByID returns one shot.
func (s *ShotService) GetByID(id uint) (*models.Shot, error) {
	var shot models.Shot
	if err := s.db.Preload("Photographer").First(&shot, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, response.NewNotFound("shot not found")
		}
		return nil, err
	}
	return &shot, nil
}

// checkPhotographer resolves a personnel id and enforces the photographer
// role predicate. A missing member and a member without the role fail
// differently: the first is a dangling reference, the second a rule breach.
func checkPhotographer(tx *gorm.DB, personnelID uint) error {
	var person models.Personnel
	if err := tx.First(&person, personnelID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return response.NewNotFound("photographer not found")
		}
		return err
	}
	if !person.IsPhotographer() {
		return response.NewValidation("personnel does not hold a photographer role")
	}
	return nil
}

// Create creates a shot. The event must exist and the photographer must be
// an existing crew member holding a photographer role; both are verified
// before anything is persisted.
func (s *ShotService) Create(req *CreateShotRequest) (*models.Shot, error) {
	shot := models.Shot{
		Image:          req.Image,
		DateCreated:    req.DateCreated,
		Camera:         req.Camera,
		Filename:       req.Filename,
		EventID:        req.EventID,
		PhotographerID: req.PhotographerID,
	}

	err := s.db.Transaction(func(tx *gorm.DB) error {
		var event models.Event
		if err := tx.First(&event, req.EventID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return response.NewNotFound("event not found")
			}
			return err
		}

		if err := checkPhotographer(tx, req.PhotographerID); err != nil {
			return err
		}

		return tx.Create(&shot).Error
	})
	if err != nil {
		return nil, err
	}

	return s.GetByID(shot.ID)
}

// Update applies only the fields present in the patch. A changed event or
// photographer reference is re-validated, including the role predicate.
func (s *ShotService) Update(id uint, req *UpdateShotRequest) (*models.Shot, error) {
	err := s.db.Transaction(func(tx *gorm.DB) error {
		var shot models.Shot
		if err := tx.First(&shot, id).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return response.NewNotFound("shot not found")
			}
			return err
		}

		updates := make(map[string]interface{})
		if req.Image != nil {
			updates["image"] = *req.Image
		}
		if req.DateCreated != nil {
			updates["date_created"] = *req.DateCreated
		}
		if req.Camera != nil {
			updates["camera"] = *req.Camera
		}
		if req.Filename != nil {
			updates["filename"] = *req.Filename
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
		if req.PhotographerID != nil {
			if err := checkPhotographer(tx, *req.PhotographerID); err != nil {
				return err
			}
			updates["photographer_id"] = *req.PhotographerID
		}

		if len(updates) == 0 {
			return nil
		}
		return tx.Model(&shot).Updates(updates).Error
	})
	if err != nil {
		return nil, err
	}

	return s.GetByID(id)
}

// Delete removes a shot.
func (s *ShotService) Delete(id uint) error {
	return s.db.Transaction(func(tx *gorm.DB) error {
		result := tx.Delete(&models.Shot{}, id)
		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected == 0 {
			return response.NewNotFound("shot not found")
		}
		return nil
	})
}
