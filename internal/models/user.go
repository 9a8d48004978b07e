package models

import (
	"time"

	"github.com/google/uuid"
)

type User struct {
	ID          uuid.UUID `gorm:"type:uuid;primary_key;default:gen_random_uuid()" json:"id"`
	Name        string    `gorm:"type:text;not null" json:"name"`
	Email       string    `gorm:"type:text;not null;uniqueIndex" json:"email"`
	Password    string    `gorm:"type:text;not null" json:"-"`
	CreatedAt   time.Time `gorm:"type:timestamp;default:now()" json:"created_at"`
	TotalScans  int       `gorm:"not null;default:0" json:"total_scans"`
	AvgATSScore int       `gorm:"not null;default:0" json:"avg_ats_score"`
}

func (u *User) TableName() string {
	return "users"
}
