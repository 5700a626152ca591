package contract

import (
	"context"

	"github.com/DevDad-Main/ServIQ/internal/entity"
	"github.com/DevDad-Main/ServIQ/internal/repository/specification"
)

type MetadataRepository interface {
	Create(ctx context.Context, metadata *entity.Metadata) error
	Update(ctx context.Context, metadata *entity.Metadata) error
	FindOne(ctx context.Context, specs ...specification.Specification) (*entity.Metadata, error)
}
