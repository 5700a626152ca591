package model

import (
	"time"

	"github.com/google/uuid"
)

type KnowledgeSource struct {
	Id        uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	UserEmail string    `gorm:"type:varchar(255);not null;index"`
	Type      string    `gorm:"type:varchar(50);not null"`
	Name      string    `gorm:"type:varchar(255);not null"`
	SourceUrl *string   `gorm:"type:text"`
	Content   string    `gorm:"type:text;not null"`
	Status    string    `gorm:"type:varchar(50);not null;default:'active'"`
	CreatedAt time.Time `gorm:"autoCreateTime"`
	UpdatedAt time.Time `gorm:"autoUpdateTime"`
}

func (KnowledgeSource) TableName() string {
	return "knowledge_sources"
}
