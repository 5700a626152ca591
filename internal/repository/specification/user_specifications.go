package specification

import "gorm.io/gorm"

// ByEmail filters users by email
type ByEmail struct {
	Email string
}

func (s ByEmail) Apply(db *gorm.DB) *gorm.DB {
	return db.Where("email = ?", s.Email)
}

// OwnedBy scopes tenant-owned rows to their owner. Every query that touches
// KnowledgeSource, Section or Metadata rows on behalf of a user must carry it.
type OwnedBy struct {
	Email string
}

func (s OwnedBy) Apply(db *gorm.DB) *gorm.DB {
	return db.Where("user_email = ?", s.Email)
}
