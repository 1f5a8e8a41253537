package services

import (
	"errors"

	"github.com/hiveproductions/hive/backend/internal/models"
	"github.com/hiveproductions/hive/backend/internal/utils"
	"github.com/hiveproductions/hive/backend/pkg/response"
	"gorm.io/gorm"
)

type UserService struct {
	db *gorm.DB
}

func NewUserService(db *gorm.DB) *UserService {
	return &UserService{db: db}
}

type CreateUserRequest struct {
	Name           string `json:"name"`
	Email          string `json:"email" binding:"required,email"`
	Password       string `json:"password" binding:"required,min=6"`
	OrganizationID uint   `json:"organization_id" binding:"required"`
}

type UpdateUserRequest struct {
	Name           *string `json:"name"`
	Email          *string `json:"email"`
	Password       *string `json:"password"`
	OrganizationID *uint   `json:"organization_id"`
}

// List returns all users.
func (s *UserService) List() ([]models.User, error) {
	var users []models.User
	if err := s.db.Order("id ASC").Find(&users).Error; err != nil {
		return nil, err
	}
	return users, nil
}

// GetByID returns one user.
func (s *UserService) GetByID(id uint) (*models.User, error) {
	var user models.User
	if err := s.db.First(&user, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, response.NewNotFound("user not found")
		}
		return nil, err
	}
	return &user, nil
}

// Create creates a user in an existing organization. Email is globally
// unique; only the bcrypt digest of the password is stored.
func (s *UserService) Create(req *CreateUserRequest) (*models.User, error) {
	digest, err := utils.HashPassword(req.Password)
	if err != nil {
		return nil, err
	}

	user := models.User{
		Name:           req.Name,
		Email:          req.Email,
		PasswordHash:   digest,
		OrganizationID: req.OrganizationID,
	}

	err = s.db.Transaction(func(tx *gorm.DB) error {
		var org models.Organization
		if err := tx.First(&org, req.OrganizationID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return response.NewNotFound("organization not found")
			}
			return err
		}

		var count int64
		if err := tx.Model(&models.User{}).
			Where("email = ?", req.Email).
			Count(&count).Error; err != nil {
			return err
		}
		if count > 0 {
			return response.NewValidation("email already registered")
		}

		return tx.Create(&user).Error
	})
	if err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, response.NewValidation("email already registered")
		}
		return nil, err
	}

	return &user, nil
}

// Update applies only the fields present in the patch, re-validating a
// changed email or organization reference.
func (s *UserService) Update(id uint, req *UpdateUserRequest) (*models.User, error) {
	var user models.User

	err := s.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.First(&user, id).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return response.NewNotFound("user not found")
			}
			return err
		}

		updates := make(map[string]interface{})
		if req.Name != nil {
			updates["name"] = *req.Name
		}
		if req.Email != nil && *req.Email != user.Email {
			var count int64
			if err := tx.Model(&models.User{}).
				Where("email = ? AND id <> ?", *req.Email, id).
				Count(&count).Error; err != nil {
				return err
			}
			if count > 0 {
				return response.NewValidation("email already registered")
			}
			updates["email"] = *req.Email
		}
		if req.Password != nil {
			digest, err := utils.HashPassword(*req.Password)
			if err != nil {
				return err
			}
			updates["password_hash"] = digest
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

		if len(updates) == 0 {
			return nil
		}
		return tx.Model(&user).Updates(updates).Error
	})
	if err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, response.NewValidation("email already registered")
		}
		return nil, err
	}

	return &user, nil
}

// Delete removes a user and its event assignment rows.
func (s *UserService) Delete(id uint) error {
	return s.db.Transaction(func(tx *gorm.DB) error {
		var user models.User
		if err := tx.First(&user, id).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return response.NewNotFound("user not found")
			}
			return err
		}

		if err := tx.Model(&user).Association("Events").Clear(); err != nil {
			return err
		}
		return tx.Delete(&user).Error
	})
}
