package repositories

import (
	"errors"
	"fmt"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"skillbridge/backend/internal/models"
)

type UserRepository interface {
	Create(user *models.User) error
	FindByEmail(email string) (*models.User, error)
	FindByID(id uuid.UUID) (*models.User, error)
	UpdateStats(id uuid.UUID, totalScans, avgATSScore int) error
}

type userRepository struct {
	db *gorm.DB
}

func NewUserRepository(db *gorm.DB) UserRepository {
	return &userRepository{db: db}
}

// Create implements UserRepository.
func (r *userRepository) Create(user *models.User) error {
	if err := r.db.Create(user).Error; err != nil {
		return fmt.Errorf("%w: failed to create user: %v", models.ErrStorage, err)
	}
	return nil
}

// FindByEmail implements UserRepository.
func (r *userRepository) FindByEmail(email string) (*models.User, error) {
	var user models.User
	if err := r.db.Where("email = ?", email).First(&user).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("%w: user", models.ErrNotFound)
		}
		return nil, fmt.Errorf("%w: failed to find user: %v", models.ErrStorage, err)
	}
	return &user, nil
}

// FindByID implements UserRepository.
func (r *userRepository) FindByID(id uuid.UUID) (*models.User, error) {
	var user models.User
	if err := r.db.Where("id = ?", id).First(&user).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("%w: user", models.ErrNotFound)
		}
		return nil, fmt.Errorf("%w: failed to find user: %v", models.ErrStorage, err)
	}
	return &user, nil
}

// UpdateStats implements UserRepository.
func (r *userRepository) UpdateStats(id uuid.UUID, totalScans, avgATSScore int) error {
	result := r.db.Model(&models.User{}).
		Where("id = ?", id).
		Updates(map[string]interface{}{
			"total_scans":   totalScans,
			"avg_ats_score": avgATSScore,
		})

	if result.Error != nil {
		return fmt.Errorf("%w: failed to update user stats: %v", models.ErrStorage, result.Error)
	}

	if result.RowsAffected == 0 {
		return fmt.Errorf("%w: user", models.ErrNotFound)
	}

	return nil
}
