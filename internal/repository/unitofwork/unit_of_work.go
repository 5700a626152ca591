package unitofwork

import (
	"context"

	"github.com/DevDad-Main/ServIQ/internal/repository/contract"
)

type UnitOfWork interface {
	Begin(ctx context.Context) error
	Commit() error
	Rollback() error

	UserRepository() contract.UserRepository
	KnowledgeSourceRepository() contract.KnowledgeSourceRepository
	SectionRepository() contract.SectionRepository
	MetadataRepository() contract.MetadataRepository
	SystemLogRepository() contract.SystemLogRepository
}
