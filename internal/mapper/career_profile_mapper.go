package mapper

import (
	"time"

	"career-roadmap-be/internal/entity"
	"career-roadmap-be/internal/model"

	"gorm.io/gorm"
)

type CareerProfileMapper struct{}

func NewCareerProfileMapper() *CareerProfileMapper {
	return &CareerProfileMapper{}
}

func (m *CareerProfileMapper) ToEntity(p *model.CareerProfile) *entity.CareerProfile {
	if p == nil {
		return nil
	}

	var deletedAt *time.Time
	if p.DeletedAt.Valid {
		t := p.DeletedAt.Time
		deletedAt = &t
	}

	var updatedAt *time.Time
	if !p.UpdatedAt.IsZero() {
		t := p.UpdatedAt
		updatedAt = &t
	}

	return &entity.CareerProfile{
		Id:                  p.Id,
		UserId:              p.UserId,
		RecommendedCareers:  p.RecommendedCareers,
		TargetCompany:       p.TargetCompany,
		Major:               p.Major,
		EducationLevel:      p.EducationLevel,
		WorkExperienceYears: p.WorkExperienceYears,
		WorkExperience:      p.WorkExperience,
		AgeGroup:            p.AgeGroup,
		CreatedAt:           p.CreatedAt,
		UpdatedAt:           updatedAt,
		DeletedAt:           deletedAt,
		IsDeleted:           p.DeletedAt.Valid,
	}
}

func (m *CareerProfileMapper) ToModel(p *entity.CareerProfile) *model.CareerProfile {
	if p == nil {
		return nil
	}

	var deletedAt gorm.DeletedAt
	if p.DeletedAt != nil {
		deletedAt = gorm.DeletedAt{Time: *p.DeletedAt, Valid: true}
	} else if p.IsDeleted {
		deletedAt = gorm.DeletedAt{Time: time.Now(), Valid: true}
	}

	var updatedAt time.Time
	if p.UpdatedAt != nil {
		updatedAt = *p.UpdatedAt
	}

	return &model.CareerProfile{
		Id:                  p.Id,
		UserId:              p.UserId,
		RecommendedCareers:  p.RecommendedCareers,
		TargetCompany:       p.TargetCompany,
		Major:               p.Major,
		EducationLevel:      p.EducationLevel,
		WorkExperienceYears: p.WorkExperienceYears,
		WorkExperience:      p.WorkExperience,
		AgeGroup:            p.AgeGroup,
		CreatedAt:           p.CreatedAt,
		UpdatedAt:           updatedAt,
		DeletedAt:           deletedAt,
	}
}

func (m *CareerProfileMapper) ToEntities(profiles []*model.CareerProfile) []*entity.CareerProfile {
	entities := make([]*entity.CareerProfile, len(profiles))
	for i, p := range profiles {
		entities[i] = m.ToEntity(p)
	}
	return entities
}
