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

type CareerProfileRepositoryImpl struct {
	db     *gorm.DB
	mapper *mapper.CareerProfileMapper
}

func NewCareerProfileRepository(db *gorm.DB) contract.CareerProfileRepository {
	return &CareerProfileRepositoryImpl{
		db:     db,
		mapper: mapper.NewCareerProfileMapper(),
	}
}

func (r *CareerProfileRepositoryImpl) applySpecifications(db *gorm.DB, specs ...specification.Specification) *gorm.DB {
	for _, spec := range specs {
		db = spec.Apply(db)
	}
	return db
}

func (r *CareerProfileRepositoryImpl) Create(ctx context.Context, profile *entity.CareerProfile) error {
	m := r.mapper.ToModel(profile)
	if err := r.db.WithContext(ctx).Create(m).Error; err != nil {
		return err
	}
	*profile = *r.mapper.ToEntity(m)
	return nil
}

func (r *CareerProfileRepositoryImpl) Update(ctx context.Context, profile *entity.CareerProfile) error {
	m := r.mapper.ToModel(profile)
	if err := r.db.WithContext(ctx).Save(m).Error; err != nil {
		return err
	}
	*profile = *r.mapper.ToEntity(m)
	return nil
}

func (r *CareerProfileRepositoryImpl) Delete(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Delete(&model.CareerProfile{}, id).Error
}

func (r *CareerProfileRepositoryImpl) FindOne(ctx context.Context, specs ...specification.Specification) (*entity.CareerProfile, error) {
	var m model.CareerProfile
	query := r.applySpecifications(r.db.WithContext(ctx), specs...)
	if err := query.First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return r.mapper.ToEntity(&m), nil
}

func (r *CareerProfileRepositoryImpl) FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.CareerProfile, error) {
	var models []*model.CareerProfile
	query := r.applySpecifications(r.db.WithContext(ctx), specs...)
	if err := query.Find(&models).Error; err != nil {
		return nil, err
	}
	return r.mapper.ToEntities(models), nil
}

func (r *CareerProfileRepositoryImpl) Count(ctx context.Context, specs ...specification.Specification) (int64, error) {
	var count int64
	query := r.applySpecifications(r.db.WithContext(ctx).Model(&model.CareerProfile{}), specs...)
	if err := query.Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}
