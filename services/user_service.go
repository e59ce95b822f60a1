package services

import (
	"errors"
	"time"

	"backend/models"
	"backend/utils"

	"gorm.io/gorm"
)

type UserService struct {
	db *gorm.DB
}

func NewUserService(db *gorm.DB) *UserService {
	return &UserService{db: db}
}

type RegisterInput struct {
	Username string
	Password string
	DOB      time.Time
	Height   float64
	Weight   float64
	Gender   string
	Goal     string
}

func (s *UserService) Register(in RegisterInput) (*models.User, error) {
	var existing models.User
	err := s.db.Where("username = ?", in.Username).First(&existing).Error
	if err == nil {
		return nil, ErrUsernameTaken
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	hashed, err := utils.HashPassword(in.Password)
	if err != nil {
		return nil, err
	}

	user := models.User{
		Username: in.Username,
		Password: hashed,
		DOB:      in.DOB,
		Height:   in.Height,
		Weight:   in.Weight,
		Gender:   in.Gender,
		Goal:     in.Goal,
	}
	if err := s.db.Create(&user).Error; err != nil {
		// Unique index backstops the pre-check under concurrent registration.
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, ErrUsernameTaken
		}
		return nil, err
	}
	return &user, nil
}

func (s *UserService) IsUsernameTaken(username string) (bool, error) {
	var count int64
	err := s.db.Model(&models.User{}).Where("username = ?", username).Count(&count).Error
	return count > 0, err
}

// Authenticate returns ErrInvalidCredentials for both an unknown username and a
// wrong password so callers cannot probe which usernames exist.
func (s *UserService) Authenticate(username, password string) error {
	var user models.User
	if err := s.db.Where("username = ?", username).First(&user).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrInvalidCredentials
		}
		return err
	}
	if !utils.CheckPasswordHash(password, user.Password) {
		return ErrInvalidCredentials
	}
	return nil
}

func (s *UserService) Profile(username string) (*models.User, error) {
	var user models.User
	if err := s.db.Where("username = ?", username).First(&user).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &user, nil
}

type ProfileUpdate struct {
	NewDOB      time.Time
	Height      float64
	Weight      float64
	Gender      string
	Goal        string
	NewPassword string
}

// UpdateProfile applies only the fields that were supplied; zero values keep
// the stored data, matching the form's "leave blank to keep" behavior.
func (s *UserService) UpdateProfile(username string, in ProfileUpdate) (*models.User, error) {
	var user models.User
	if err := s.db.Where("username = ?", username).First(&user).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}

	if !in.NewDOB.IsZero() {
		user.DOB = in.NewDOB
	}
	if in.Height > 0 {
		user.Height = in.Height
	}
	if in.Weight > 0 {
		user.Weight = in.Weight
	}
	if in.Gender != "" {
		user.Gender = in.Gender
	}
	if in.Goal != "" {
		user.Goal = in.Goal
	}
	if in.NewPassword != "" {
		hashed, err := utils.HashPassword(in.NewPassword)
		if err != nil {
			return nil, err
		}
		user.Password = hashed
	}

	if err := s.db.Save(&user).Error; err != nil {
		return nil, err
	}
	return &user, nil
}

func (s *UserService) VerifyPassword(username, password string) error {
	var user models.User
	if err := s.db.Where("username = ?", username).First(&user).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrNotFound
		}
		return err
	}
	if !utils.CheckPasswordHash(password, user.Password) {
		return ErrWrongPassword
	}
	return nil
}

// DeleteAccount removes the user and every daily log for the username in one
// transaction, so a crash cannot leave orphaned logs behind.
func (s *UserService) DeleteAccount(username string) error {
	return s.db.Transaction(func(tx *gorm.DB) error {
		res := tx.Where("username = ?", username).Delete(&models.User{})
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return ErrNotFound
		}
		return tx.Where("username = ?", username).Delete(&models.DailyLog{}).Error
	})
}
