package services

import (
	"errors"

	"github.com/hiveproductions/hive/backend/internal/models"
	"github.com/hiveproductions/hive/backend/pkg/response"
	"gorm.io/gorm"
)

type OrganizationService struct {
	db *gorm.DB
}

func NewOrganizationService(db *gorm.DB) *OrganizationService {
	return &OrganizationService{db: db}
}

type CreateOrganizationRequest struct {
	Name        string `json:"name" binding:"required"`
	Description string `json:"description"`
	SignupCode  string `json:"signup_code" binding:"required"`
}

type UpdateOrganizationRequest struct {
	Name        *string `json:"name"`
	Description *string `json:"description"`
	SignupCode  *string `json:"signup_code"`
}

// List returns all organizations.
func (s *OrganizationService) List() ([]models.Organization, error) {
	var orgs []models.Organization
	if err := s.db.Order("id ASC").Find(&orgs).Error; err != nil {
		return nil, err
	}
	return orgs, nil
}

// GetByID returns one organization.
func (s *OrganizationService) GetByID(id uint) (*models.Organization, error) {
	var org models.Organization
	if err := s.db.First(&org, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, response.NewNotFound("organization not found")
		}
		return nil, err
	}
	return &org, nil
}

// Create creates an organization. The signup code must be globally unique;
// the pre-check and insert run in one transaction, and a duplicate-key error
// from the store's unique index is reported as the same validation failure.
func (s *OrganizationService) Create(req *CreateOrganizationRequest) (*models.Organization, error) {
	org := models.Organization{
		Name:        req.Name,
		Description: req.Description,
		SignupCode:  req.SignupCode,
	}

	err := s.db.Transaction(func(tx *gorm.DB) error {
		var count int64
		if err := tx.Model(&models.Organization{}).
			Where("signup_code = ?", req.SignupCode).
			Count(&count).Error; err != nil {
			return err
		}
		if count > 0 {
			return response.NewValidation("signup code already in use")
		}
		return tx.Create(&org).Error
	})
	if err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, response.NewValidation("signup code already in use")
		}
		return nil, err
	}

	return &org, nil
}

// Update applies only the fields present in the patch.
func (s *OrganizationService) Update(id uint, req *UpdateOrganizationRequest) (*models.Organization, error) {
	var org models.Organization

	err := s.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.First(&org, id).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return response.NewNotFound("organization not found")
			}
			return err
		}

		updates := make(map[string]interface{})
		if req.Name != nil {
			updates["name"] = *req.Name
		}
		if req.Description != nil {
			updates["description"] = *req.Description
		}
		if req.SignupCode != nil && *req.SignupCode != org.SignupCode {
			var count int64
			if err := tx.Model(&models.Organization{}).
				Where("signup_code = ? AND id <> ?", *req.SignupCode, id).
				Count(&count).Error; err != nil {
				return err
			}
			if count > 0 {
				return response.NewValidation("signup code already in use")
			}
			updates["signup_code"] = *req.SignupCode
		}

		if len(updates) == 0 {
			return nil
		}
		return tx.Model(&org).Updates(updates).Error
	})
	if err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, response.NewValidation("signup code already in use")
		}
		return nil, err
	}

	return &org, nil
}

// Delete removes an organization. The delete is refused while the
// organization still owns any project; nothing else cascades.
func (s *OrganizationService) Delete(id uint) error {
	return s.db.Transaction(func(tx *gorm.DB) error {
		var org models.Organization
		if err := tx.First(&org, id).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return response.NewNotFound("organization not found")
			}
			return err
		}

		var projectCount int64
		if err := tx.Model(&models.Project{}).
			Where("organization_id = ?", id).
			Count(&projectCount).Error; err != nil {
			return err
		}
		if projectCount > 0 {
			return response.NewConflict("organization still owns projects and cannot be deleted")
		}

		return tx.Delete(&org).Error
	})
}
