package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

type Metadata struct {
	Id            uuid.UUID                          `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	UserEmail     string                             `gorm:"type:varchar(255);not null;uniqueIndex"`
	BusinessName  string                             `gorm:"type:varchar(255);not null"`
	WebsiteUrl    string                             `gorm:"type:text;not null"`
	ExternalLinks datatypes.JSONType[map[string]string] `gorm:"type:jsonb"`
	CreatedAt     time.Time                          `gorm:"autoCreateTime"`
	UpdatedAt     time.Time                          `gorm:"autoUpdateTime"`
}

func (Metadata) TableName() string {
	return "metadata"
}
