package contract

import (
	"context"

	"github.com/DevDad-Main/ServIQ/internal/entity"
	"github.com/DevDad-Main/ServIQ/internal/repository/specification"

	"github.com/google/uuid"
)

type KnowledgeSourceRepository interface {
	Create(ctx context.Context, source *entity.KnowledgeSource) error
	Update(ctx context.Context, source *entity.KnowledgeSource) error
	Delete(ctx context.Context, id uuid.UUID, ownerEmail string) error
	FindOne(ctx context.Context, specs ...specification.Specification) (*entity.KnowledgeSource, error)
	FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.KnowledgeSource, error)
	Count(ctx context.Context, specs ...specification.Specification) (int64, error)
}
