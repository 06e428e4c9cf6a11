package mapper

import (
	"time"

	"career-roadmap-be/internal/entity"
	"career-roadmap-be/internal/model"

	"gorm.io/datatypes"
	"gorm.io/gorm"
)

type CareerRoadmapMapper struct{}

func NewCareerRoadmapMapper() *CareerRoadmapMapper {
	return &CareerRoadmapMapper{}
}

func (m *CareerRoadmapMapper) ToEntity(r *model.CareerRoadmap) *entity.CareerRoadmap {
	if r == nil {
		return nil
	}

	var deletedAt *time.Time
	if r.DeletedAt.Valid {
		t := r.DeletedAt.Time
		deletedAt = &t
	}

	var updatedAt *time.Time
	if !r.UpdatedAt.IsZero() {
		t := r.UpdatedAt
		updatedAt = &t
	}

	return &entity.CareerRoadmap{
		Id:             r.Id,
		ProfileId:      r.ProfileId,
		UserId:         r.UserId,
		TargetJob:      r.TargetJob,
		TargetCompany:  r.TargetCompany,
		TimelineMonths: r.TimelineMonths,
		IsActive:       r.IsActive,
		Info:           []byte(r.Info),
		DynamicSkills:  []byte(r.DynamicSkills),
		DynamicCerts:   []byte(r.DynamicCerts),
		CreatedAt:      r.CreatedAt,
		UpdatedAt:      updatedAt,
		DeletedAt:      deletedAt,
		IsDeleted:      r.DeletedAt.Valid,
	}
}

func (m *CareerRoadmapMapper) ToModel(r *entity.CareerRoadmap) *model.CareerRoadmap {
	if r == nil {
		return nil
	}

	var deletedAt gorm.DeletedAt
	if r.DeletedAt != nil {
		deletedAt = gorm.DeletedAt{Time: *r.DeletedAt, Valid: true}
	} else if r.IsDeleted {
		deletedAt = gorm.DeletedAt{Time: time.Now(), Valid: true}
	}

	var updatedAt time.Time
	if r.UpdatedAt != nil {
		updatedAt = *r.UpdatedAt
	}

	return &model.CareerRoadmap{
		Id:             r.Id,
		ProfileId:      r.ProfileId,
		UserId:         r.UserId,
		TargetJob:      r.TargetJob,
		TargetCompany:  r.TargetCompany,
		TimelineMonths: r.TimelineMonths,
		IsActive:       r.IsActive,
		Info:           datatypes.JSON(r.Info),
		DynamicSkills:  datatypes.JSON(r.DynamicSkills),
		DynamicCerts:   datatypes.JSON(r.DynamicCerts),
		CreatedAt:      r.CreatedAt,
		UpdatedAt:      updatedAt,
		DeletedAt:      deletedAt,
	}
}

func (m *CareerRoadmapMapper) ToEntities(roadmaps []*model.CareerRoadmap) []*entity.CareerRoadmap {
	entities := make([]*entity.CareerRoadmap, len(roadmaps))
	for i, r := range roadmaps {
		entities[i] = m.ToEntity(r)
	}
	return entities
}
