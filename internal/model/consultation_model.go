package model

import (
	"time"

	"github.com/google/uuid"
)

type Consultation struct {
	Id        uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	ProfileId uuid.UUID `gorm:"type:uuid;not null;index"`
	UserId    uuid.UUID `gorm:"type:uuid;not null;index"`
	Content   string    `gorm:"type:text"`
	CreatedAt time.Time `gorm:"autoCreateTime"`
	UpdatedAt time.Time `gorm:"autoUpdateTime"`
}

func (Consultation) TableName() string {
	return "consultations"
}

type ConsultationAnalysis struct {
	Id               uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	ConsultationId   uuid.UUID `gorm:"type:uuid;not null;index"`
	Strengths        string    `gorm:"type:text"`
	InterestKeywords string    `gorm:"type:text"`
	CareerValues     string    `gorm:"type:text"`
	CreatedAt        time.Time `gorm:"autoCreateTime"`
}

func (ConsultationAnalysis) TableName() string {
	return "consultation_analyses"
}
