package repositories

import (
	"errors"
	"fmt"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"skillbridge/backend/internal/models"
)

type ScanRepository interface {
	Create(scan *models.Scan) error
	FindByIDAndUser(id, userID uuid.UUID) (*models.Scan, error)
	FindRecentByUser(userID uuid.UUID, limit int) ([]models.ScanSummary, error)
	FindAllByUser(userID uuid.UUID) ([]models.Scan, error)
}

type scanRepository struct {
	db *gorm.DB
}

func NewScanRepository(db *gorm.DB) ScanRepository {
	return &scanRepository{db: db}
}

// Create implements ScanRepository. Scans are append-only; no update
// path exists.
func (r *scanRepository) Create(scan *models.Scan) error {
	if err := r.db.Create(scan).Error; err != nil {
		return fmt.Errorf("%w: failed to create scan: %v", models.ErrStorage, err)
	}
	return nil
}

// FindByIDAndUser implements ScanRepository. A scan owned by a different
// user is indistinguishable from a missing one.
func (r *scanRepository) FindByIDAndUser(id, userID uuid.UUID) (*models.Scan, error) {
	var scan models.Scan
	err := r.db.Where("id = ? AND user_id = ?", id, userID).First(&scan).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("%w: scan", models.ErrNotFound)
		}
		return nil, fmt.Errorf("%w: failed to find scan: %v", models.ErrStorage, err)
	}
	return &scan, nil
}

// FindRecentByUser implements ScanRepository. Newest first, insertion
// order breaking timestamp ties; the heavy result column is never read.
func (r *scanRepository) FindRecentByUser(userID uuid.UUID, limit int) ([]models.ScanSummary, error) {
	var summaries []models.ScanSummary
	err := r.db.Model(&models.Scan{}).
		Select("id", "job_role", "ats_score", "jd_match_percent", "scanned_at").
		Where("user_id = ?", userID).
		Order("scanned_at DESC, seq DESC").
		Limit(limit).
		Find(&summaries).Error

	if err != nil {
		return nil, fmt.Errorf("%w: failed to list scans: %v", models.ErrStorage, err)
	}

	return summaries, nil
}

// FindAllByUser implements ScanRepository.
func (r *scanRepository) FindAllByUser(userID uuid.UUID) ([]models.Scan, error) {
	var scans []models.Scan
	err := r.db.
		Where("user_id = ?", userID).
		Order("scanned_at DESC").
		Find(&scans).Error

	if err != nil {
		return nil, fmt.Errorf("%w: failed to list scans: %v", models.ErrStorage, err)
	}

	return scans, nil
}
