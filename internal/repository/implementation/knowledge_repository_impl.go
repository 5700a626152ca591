package implementation

import (
	"context"
	"errors"

	"github.com/DevDad-Main/ServIQ/internal/entity"
	"github.com/DevDad-Main/ServIQ/internal/mapper"
	"github.com/DevDad-Main/ServIQ/internal/model"
	"github.com/DevDad-Main/ServIQ/internal/repository/contract"
	"github.com/DevDad-Main/ServIQ/internal/repository/specification"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type KnowledgeSourceRepositoryImpl struct {
	db     *gorm.DB
	mapper *mapper.KnowledgeMapper
}

func NewKnowledgeSourceRepository(db *gorm.DB) contract.KnowledgeSourceRepository {
	return &KnowledgeSourceRepositoryImpl{
		db:     db,
		mapper: mapper.NewKnowledgeMapper(),
	}
}

func (r *KnowledgeSourceRepositoryImpl) applySpecifications(db *gorm.DB, specs ...specification.Specification) *gorm.DB {
	for _, spec := range specs {
		db = spec.Apply(db)
	}
	return db
}

func (r *KnowledgeSourceRepositoryImpl) Create(ctx context.Context, source *entity.KnowledgeSource) error {
	m := r.mapper.ToModel(source)
	if err := r.db.WithContext(ctx).Create(m).Error; err != nil {
		return err
	}
	*source = *r.mapper.ToEntity(m)
	return nil
}

func (r *KnowledgeSourceRepositoryImpl) Update(ctx context.Context, source *entity.KnowledgeSource) error {
	m := r.mapper.ToModel(source)
	if err := r.db.WithContext(ctx).Save(m).Error; err != nil {
		return err
	}
	*source = *r.mapper.ToEntity(m)
	return nil
}

// Delete carries the owner key in the statement itself so a cross-tenant
// delete is impossible regardless of what the caller checked first.
func (r *KnowledgeSourceRepositoryImpl) Delete(ctx context.Context, id uuid.UUID, ownerEmail string) error {
	return r.db.WithContext(ctx).
		Where("id = ? AND user_email = ?", id, ownerEmail).
		Delete(&model.KnowledgeSource{}).Error
}

func (r *KnowledgeSourceRepositoryImpl) FindOne(ctx context.Context, specs ...specification.Specification) (*entity.KnowledgeSource, error) {
	var m model.KnowledgeSource
	query := r.applySpecifications(r.db.WithContext(ctx), specs...)
	if err := query.First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return r.mapper.ToEntity(&m), nil
}

func (r *KnowledgeSourceRepositoryImpl) FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.KnowledgeSource, error) {
	var models []*model.KnowledgeSource
	query := r.applySpecifications(r.db.WithContext(ctx), specs...)
	if err := query.Find(&models).Error; err != nil {
		return nil, err
	}
	return r.mapper.ToEntities(models), nil
}

func (r *KnowledgeSourceRepositoryImpl) Count(ctx context.Context, specs ...specification.Specification) (int64, error) {
	var count int64
	query := r.applySpecifications(r.db.WithContext(ctx).Model(&model.KnowledgeSource{}), specs...)
	if err := query.Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}
