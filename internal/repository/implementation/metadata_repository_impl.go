package implementation

import (
	"context"
	"errors"

	"github.com/DevDad-Main/ServIQ/internal/entity"
	"github.com/DevDad-Main/ServIQ/internal/mapper"
	"github.com/DevDad-Main/ServIQ/internal/model"
	"github.com/DevDad-Main/ServIQ/internal/repository/contract"
	"github.com/DevDad-Main/ServIQ/internal/repository/specification"

	"gorm.io/gorm"
)

type MetadataRepositoryImpl struct {
	db     *gorm.DB
	mapper *mapper.MetadataMapper
}

func NewMetadataRepository(db *gorm.DB) contract.MetadataRepository {
	return &MetadataRepositoryImpl{
		db:     db,
		mapper: mapper.NewMetadataMapper(),
	}
}

func (r *MetadataRepositoryImpl) applySpecifications(db *gorm.DB, specs ...specification.Specification) *gorm.DB {
	for _, spec := range specs {
		db = spec.Apply(db)
	}
	return db
}

func (r *MetadataRepositoryImpl) Create(ctx context.Context, metadata *entity.Metadata) error {
	m := r.mapper.ToModel(metadata)
	if err := r.db.WithContext(ctx).Create(m).Error; err != nil {
		return err
	}
	*metadata = *r.mapper.ToEntity(m)
	return nil
}

func (r *MetadataRepositoryImpl) Update(ctx context.Context, metadata *entity.Metadata) error {
	m := r.mapper.ToModel(metadata)
	if err := r.db.WithContext(ctx).Save(m).Error; err != nil {
		return err
	}
	*metadata = *r.mapper.ToEntity(m)
	return nil
}

func (r *MetadataRepositoryImpl) FindOne(ctx context.Context, specs ...specification.Specification) (*entity.Metadata, error) {
	var m model.Metadata
	query := r.applySpecifications(r.db.WithContext(ctx), specs...)
	if err := query.First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return r.mapper.ToEntity(&m), nil
}
