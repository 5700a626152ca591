package entity

import (
	"time"

	"github.com/google/uuid"
)

type SectionTone string
type SectionStatus string

const (
	SectionToneStrict     SectionTone = "strict"
	SectionToneNeutral    SectionTone = "neutral"
	SectionToneFriendly   SectionTone = "friendly"
	SectionToneEmpathetic SectionTone = "empathetic"

	SectionStatusActive   SectionStatus = "active"
	SectionStatusDraft    SectionStatus = "draft"
	SectionStatusDisabled SectionStatus = "disabled"
)

// Section groups knowledge sources under tone and topic rules for the
// chatbot. SourceIds is denormalized, not enforced referentially.
type Section struct {
	Id            uuid.UUID
	UserEmail     string
	Name          string
	Description   string
	Tone          SectionTone
	AllowedTopics []string
	BlockedTopics []string
	SourceIds     []string
	Status        SectionStatus
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

func (t SectionTone) Valid() bool {
	switch t {
	case SectionToneStrict, SectionToneNeutral, SectionToneFriendly, SectionToneEmpathetic:
		return true
	}
	return false
}

func (s SectionStatus) Valid() bool {
	switch s {
	case SectionStatusActive, SectionStatusDraft, SectionStatusDisabled:
		return true
	}
	return false
}
