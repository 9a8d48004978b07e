package models

import (
	"time"

	"github.com/google/uuid"
)

// Scan is one completed analysis request. Rows are append-only; there is
// no update path once a scan is saved.
type Scan struct {
	ID uuid.UUID `gorm:"type:uuid;primary_key;default:gen_random_uuid()" json:"id"`
	// Seq orders scans by insertion, breaking scanned_at ties in listings.
	Seq            int64          `gorm:"autoIncrement;uniqueIndex" json:"-"`
	UserID         uuid.UUID      `gorm:"type:uuid;not null;index" json:"user_id"`
	JobRole        string         `gorm:"type:text;not null" json:"job_role"`
	ATSScore       int            `gorm:"not null" json:"ats_score"`
	JDMatchPercent int            `gorm:"not null;default:0" json:"jd_match"`
	ScannedAt      time.Time      `gorm:"type:timestamp;not null;index" json:"scanned_at"`
	Result         AnalysisResult `gorm:"type:jsonb" json:"result"`

	User User `gorm:"foreignKey:UserID" json:"-"`
}

func (Scan) TableName() string {
	return "scans"
}

// ScanSummary is the listing view of a scan. It deliberately omits the
// heavy Result document.
type ScanSummary struct {
	ID             uuid.UUID `json:"id"`
	JobRole        string    `json:"job_role"`
	ATSScore       int       `json:"ats_score"`
	JDMatchPercent int       `json:"jd_match"`
	ScannedAt      time.Time `json:"scanned_at"`
}
