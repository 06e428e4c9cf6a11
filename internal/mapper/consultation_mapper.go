package mapper

import (
	"time"

	"career-roadmap-be/internal/entity"
	"career-roadmap-be/internal/model"
)

type ConsultationMapper struct{}

func NewConsultationMapper() *ConsultationMapper {
	return &ConsultationMapper{}
}

func (m *ConsultationMapper) ToEntity(c *model.Consultation) *entity.Consultation {
	if c == nil {
		return nil
	}

	var updatedAt *time.Time
	if !c.UpdatedAt.IsZero() {
		t := c.UpdatedAt
		updatedAt = &t
	}

	return &entity.Consultation{
		Id:        c.Id,
		ProfileId: c.ProfileId,
		UserId:    c.UserId,
		Content:   c.Content,
		CreatedAt: c.CreatedAt,
		UpdatedAt: updatedAt,
	}
}

func (m *ConsultationMapper) ToModel(c *entity.Consultation) *model.Consultation {
	if c == nil {
		return nil
	}

	var updatedAt time.Time
	if c.UpdatedAt != nil {
		updatedAt = *c.UpdatedAt
	}

	return &model.Consultation{
		Id:        c.Id,
		ProfileId: c.ProfileId,
		UserId:    c.UserId,
		Content:   c.Content,
		CreatedAt: c.CreatedAt,
		UpdatedAt: updatedAt,
	}
}

func (m *ConsultationMapper) ToEntities(consultations []*model.Consultation) []*entity.Consultation {
	entities := make([]*entity.Consultation, len(consultations))
	for i, c := range consultations {
		entities[i] = m.ToEntity(c)
	}
	return entities
}

func (m *ConsultationMapper) AnalysisToEntity(a *model.ConsultationAnalysis) *entity.ConsultationAnalysis {
	if a == nil {
		return nil
	}
	return &entity.ConsultationAnalysis{
		Id:               a.Id,
		ConsultationId:   a.ConsultationId,
		Strengths:        a.Strengths,
		InterestKeywords: a.InterestKeywords,
		CareerValues:     a.CareerValues,
		CreatedAt:        a.CreatedAt,
	}
}

func (m *ConsultationMapper) AnalysisToModel(a *entity.ConsultationAnalysis) *model.ConsultationAnalysis {
	if a == nil {
		return nil
	}
	return &model.ConsultationAnalysis{
		Id:               a.Id,
		ConsultationId:   a.ConsultationId,
		Strengths:        a.Strengths,
		InterestKeywords: a.InterestKeywords,
		CareerValues:     a.CareerValues,
		CreatedAt:        a.CreatedAt,
	}
}

func (m *ConsultationMapper) AnalysesToEntities(rows []*model.ConsultationAnalysis) []*entity.ConsultationAnalysis {
	entities := make([]*entity.ConsultationAnalysis, len(rows))
	for i, a := range rows {
		entities[i] = m.AnalysisToEntity(a)
	}
	return entities
}
