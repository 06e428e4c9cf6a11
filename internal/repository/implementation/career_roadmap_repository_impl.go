package implementation

import (
	"context"
	"errors"

	"career-roadmap-be/internal/entity"
	"career-roadmap-be/internal/mapper"
	"career-roadmap-be/internal/model"
	"career-roadmap-be/internal/repository/contract"
	"career-roadmap-be/internal/repository/specification"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type CareerRoadmapRepositoryImpl struct {
	db     *gorm.DB
	mapper *mapper.CareerRoadmapMapper
}

func NewCareerRoadmapRepository(db *gorm.DB) contract.CareerRoadmapRepository {
	return &CareerRoadmapRepositoryImpl{
		db:     db,
		mapper: mapper.NewCareerRoadmapMapper(),
	}
}

func (r *CareerRoadmapRepositoryImpl) applySpecifications(db *gorm.DB, specs ...specification.Specification) *gorm.DB {
	for _, spec := range specs {
		db = spec.Apply(db)
	}
	return db
}

func (r *CareerRoadmapRepositoryImpl) Create(ctx context.Context, roadmap *entity.CareerRoadmap) error {
	m := r.mapper.ToModel(roadmap)
	if err := r.db.WithContext(ctx).Create(m).Error; err != nil {
		return err
	}
	*roadmap = *r.mapper.ToEntity(m)
	return nil
}

func (r *CareerRoadmapRepositoryImpl) Update(ctx context.Context, roadmap *entity.CareerRoadmap) error {
	m := r.mapper.ToModel(roadmap)
	if err := r.db.WithContext(ctx).Save(m).Error; err != nil {
		return err
	}
	*roadmap = *r.mapper.ToEntity(m)
	return nil
}

func (r *CareerRoadmapRepositoryImpl) Delete(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Delete(&model.CareerRoadmap{}, id).Error
}

func (r *CareerRoadmapRepositoryImpl) DeactivateAllByProfileId(ctx context.Context, profileId uuid.UUID) error {
	return r.db.WithContext(ctx).
		Model(&model.CareerRoadmap{}).
		Where("profile_id = ?", profileId).
		Update("is_active", false).Error
}

func (r *CareerRoadmapRepositoryImpl) FindOne(ctx context.Context, specs ...specification.Specification) (*entity.CareerRoadmap, error) {
	var m model.CareerRoadmap
	query := r.applySpecifications(r.db.WithContext(ctx), specs...)
	if err := query.First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return r.mapper.ToEntity(&m), nil
}

func (r *CareerRoadmapRepositoryImpl) FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.CareerRoadmap, error) {
	var models []*model.CareerRoadmap
	query := r.applySpecifications(r.db.WithContext(ctx), specs...)
	if err := query.Find(&models).Error; err != nil {
		return nil, err
	}
	return r.mapper.ToEntities(models), nil
}
