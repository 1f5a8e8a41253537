package services

import (
	"errors"
	"strings"

	"github.com/hiveproductions/hive/backend/internal/models"
	"github.com/hiveproductions/hive/backend/pkg/response"
	"gorm.io/gorm"
)

type PersonnelService struct {
	db *gorm.DB
}

func NewPersonnelService(db *gorm.DB) *PersonnelService {
	return &PersonnelService{db: db}
}

type CreatePersonnelRequest struct {
	Name  string `json:"name" binding:"required"`
	Role  string `json:"role" binding:"required"`
	Phone string `json:"phone" binding:"required"`
	Email string `json:"email" binding:"required"`
}

type UpdatePersonnelRequest struct {
	Name  *string `json:"name"`
	Role  *string `json:"role"`
	Phone *string `json:"phone"`
	Email *string `json:"email"`
}

// likeEscaper neutralizes LIKE wildcards in caller-supplied filter text.
// "!" is the escape character so the pattern stays portable across sqlite,
// mysql and postgres.
var likeEscaper = strings.NewReplacer("!", "!!", "%", "!%", "_", "!_")

// List returns all crew members, optionally filtered by a case-insensitive
// role substring. The filter is matched literally: wildcard characters in it
// have no special meaning.
func (s *PersonnelService) List(role string) ([]models.Personnel, error) {
	query := s.db.Model(&models.Personnel{})
	if role != "" {
		pattern := "%" + likeEscaper.Replace(strings.ToLower(role)) + "%"
		query = query.Where("LOWER(role) LIKE ? ESCAPE '!'", pattern)
	}

	var personnel []models.Personnel
	if err := query.Order("id ASC").Find(&personnel).Error; err != nil {
		return nil, err
	}
	return personnel, nil
}

// ListPhotographers returns the subset of crew satisfying the photographer
// role predicate.
func (s *PersonnelService) ListPhotographers() ([]models.Personnel, error) {
	return s.List("photographer")
}

// GetByID returns one crew member.
func (s *PersonnelService) GetByID(id uint) (*models.Personnel, error) {
	var person models.Personnel
	if err := s.db.First(&person, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, response.NewNotFound("personnel not found")
		}
		return nil, err
	}
	return &person, nil
}

// Create creates a crew member.
func (s *PersonnelService) Create(req *CreatePersonnelRequest) (*models.Personnel, error) {
	person := models.Personnel{
		Name:  req.Name,
		Role:  req.Role,
		Phone: req.Phone,
		Email: req.Email,
	}

	if err := s.db.Transaction(func(tx *gorm.DB) error {
		return tx.Create(&person).Error
	}); err != nil {
		return nil, err
	}

	return &person, nil
}

// Update applies only the fields present in the patch. Changing the role does
// not touch existing shots: the photographer predicate is enforced when a
// shot is written, not retroactively.
func (s *PersonnelService) Update(id uint, req *UpdatePersonnelRequest) (*models.Personnel, error) {
	var person models.Personnel

	err := s.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.First(&person, id).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return response.NewNotFound("personnel not found")
			}
			return err
		}

		updates := make(map[string]interface{})
		if req.Name != nil {
			updates["name"] = *req.Name
		}
		if req.Role != nil {
			updates["role"] = *req.Role
		}
		if req.Phone != nil {
			updates["phone"] = *req.Phone
		}
		if req.Email != nil {
			updates["email"] = *req.Email
		}

		if len(updates) == 0 {
			return nil
		}
		return tx.Model(&person).Updates(updates).Error
	})
	if err != nil {
		return nil, err
	}

	return &person, nil
}

// Delete removes a crew member along with their event assignment and key
// personnel membership rows. Shots they took are left in place.
func (s *PersonnelService) Delete(id uint) error {
	return s.db.Transaction(func(tx *gorm.DB) error {
		var person models.Personnel
		if err := tx.First(&person, id).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return response.NewNotFound("personnel not found")
			}
			return err
		}

		if err := tx.Model(&person).Association("Events").Clear(); err != nil {
			return err
		}
		if err := tx.Where("personnel_id = ?", id).
			Delete(&models.ProjectKeyPersonnel{}).Error; err != nil {
			return err
		}
		return tx.Delete(&person).Error
	})
}
