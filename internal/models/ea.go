package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

// EA is a catalog product (an "Expert Advisor" trading robot). Rows are
// immutable after insert; the only write path is the destructive reseed.
type EA struct {
	ID          uuid.UUID      `gorm:"type:uuid;default:gen_random_uuid();primaryKey" json:"id"`
	Name        string         `gorm:"size:255;not null" json:"name"`
	Description string         `gorm:"type:text" json:"description"`
	Price       float64        `gorm:"not null" json:"price"`
	Features    datatypes.JSON `gorm:"type:jsonb;default:'[]'" json:"features"`
	Rating      float64        `json:"rating"`
	Reviews     int            `json:"reviews"`
	Image       string         `gorm:"size:64" json:"image"`
	DownloadURL string         `gorm:"size:255" json:"downloadUrl"`
	IsActive    bool           `gorm:"default:true" json:"isActive"`
	CreatedAt   time.Time      `json:"-"`
}

func (EA) TableName() string { return "eas" }
