package entity

import (
	"time"

	"github.com/google/uuid"
)

// Metadata is the business profile, one per user. The database row is the
// authority; cookie and in-process cache are read-through copies.
type Metadata struct {
	Id            uuid.UUID
	UserEmail     string
	BusinessName  string
	WebsiteUrl    string
	ExternalLinks map[string]string
	CreatedAt     time.Time
	UpdatedAt     time.Time
}
