package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

type Section struct {
	Id            uuid.UUID                      `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	UserEmail     string                         `gorm:"type:varchar(255);not null;index"`
	Name          string                         `gorm:"type:varchar(255);not null"`
	Description   string                         `gorm:"type:text;not null"`
	Tone          string                         `gorm:"type:varchar(50);not null"`
	AllowedTopics datatypes.JSONSlice[string]    `gorm:"type:jsonb"`
	BlockedTopics datatypes.JSONSlice[string]    `gorm:"type:jsonb"`
	SourceIds     datatypes.JSONSlice[string]    `gorm:"type:jsonb"`
	Status        string                         `gorm:"type:varchar(50);not null;default:'active'"`
	CreatedAt     time.Time                      `gorm:"autoCreateTime"`
	UpdatedAt     time.Time                      `gorm:"autoUpdateTime"`
}

func (Section) TableName() string {
	return "sections"
}
