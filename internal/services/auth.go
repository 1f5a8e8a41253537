package services

import (
	"errors"
	"time"

	"github.com/hiveproductions/hive/backend/internal/config"
	"github.com/hiveproductions/hive/backend/internal/models"
	"github.com/hiveproductions/hive/backend/internal/utils"
	"github.com/hiveproductions/hive/backend/pkg/response"
	"gorm.io/gorm"
)

type AuthService struct {
	db        *gorm.DB
	jwtConfig *config.JWTConfig
}

func NewAuthService(db *gorm.DB, jwtCfg *config.JWTConfig) *AuthService {
	return &AuthService{db: db, jwtConfig: jwtCfg}
}

type LoginRequest struct {
	Email    string `json:"email" binding:"required"`
	Password string `json:"password" binding:"required"`
}

type SignupRequest struct {
	Name       string `json:"name"`
	Email      string `json:"email" binding:"required,email"`
	Password   string `json:"password" binding:"required,min=6"`
	SignupCode string `json:"signup_code" binding:"required"`
}

type VerifyCodeRequest struct {
	SignupCode string `json:"signup_code" binding:"required"`
}

type AuthResult struct {
	Token    string       `json:"token"`
	ExpireAt time.Time    `json:"expire_at"`
	User     *models.User `json:"user"`
}

// Login authenticates a user by email and password. Unknown email and wrong
// password fail identically so the response never reveals whether an email
// is registered.
func (s *AuthService) Login(req *LoginRequest) (*AuthResult, error) {
	var user models.User
	if err := s.db.Where("email = ?", req.Email).First(&user).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, response.NewUnauthorized("invalid email or password")
		}
		return nil, err
	}

	if !utils.CheckPassword(req.Password, user.PasswordHash) {
		return nil, response.NewUnauthorized("invalid email or password")
	}

	return s.issueToken(&user)
}

// VerifySignupCode resolves a signup code to its organization. It has no
// side effects.
func (s *AuthService) VerifySignupCode(code string) (*models.Organization, error) {
	var org models.Organization
	if err := s.db.Where("signup_code = ?", code).First(&org).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, response.NewValidation("invalid signup code")
		}
		return nil, err
	}
	return &org, nil
}

// Signup registers a new user into the organization the signup code belongs
// to. Only the bcrypt digest of the password is stored.
func (s *AuthService) Signup(req *SignupRequest) (*AuthResult, error) {
	digest, err := utils.HashPassword(req.Password)
	if err != nil {
		return nil, err
	}

	var user models.User

	err = s.db.Transaction(func(tx *gorm.DB) error {
		var org models.Organization
		if err := tx.Where("signup_code = ?", req.SignupCode).First(&org).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return response.NewValidation("invalid signup code")
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

		user = models.User{
			Name:           req.Name,
			Email:          req.Email,
			PasswordHash:   digest,
			OrganizationID: org.ID,
		}
		return tx.Create(&user).Error
	})
	if err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, response.NewValidation("email already registered")
		}
		return nil, err
	}

	return s.issueToken(&user)
}

// GetUserByID retrieves a user by ID.
func (s *AuthService) GetUserByID(id uint) (*models.User, error) {
	var user models.User
	if err := s.db.First(&user, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, response.NewNotFound("user not found")
		}
		return nil, err
	}
	return &user, nil
}

func (s *AuthService) issueToken(user *models.User) (*AuthResult, error) {
	token, err := utils.GenerateToken(user.ID, user.Email, user.OrganizationID, s.jwtConfig.ExpireHour)
	if err != nil {
		return nil, err
	}

	return &AuthResult{
		Token:    token,
		ExpireAt: time.Now().Add(time.Duration(s.jwtConfig.ExpireHour) * time.Hour),
		User:     user,
	}, nil
}

// SeedDefaults creates the configured first organization and admin user on a
// fresh install. Existing data is never touched.
func (s *AuthService) SeedDefaults(seed *config.SeedConfig) error {
	if !seed.Enabled {
		return nil
	}

	var orgCount int64
	if err := s.db.Model(&models.Organization{}).Count(&orgCount).Error; err != nil {
		return err
	}
	if orgCount > 0 {
		return nil
	}

	return s.db.Transaction(func(tx *gorm.DB) error {
		org := models.Organization{
			Name:        seed.OrganizationName,
			Description: seed.OrganizationIntro,
			SignupCode:  seed.SignupCode,
		}
		if err := tx.Create(&org).Error; err != nil {
			return err
		}

		digest, err := utils.HashPassword(seed.AdminPassword)
		if err != nil {
			return err
		}

		admin := models.User{
			Name:           seed.AdminName,
			Email:          seed.AdminEmail,
			PasswordHash:   digest,
			OrganizationID: org.ID,
		}
		return tx.Create(&admin).Error
	})
}
