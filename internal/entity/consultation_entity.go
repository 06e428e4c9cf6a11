package entity

import (
	"time"

	"github.com/google/uuid"
)

type Consultation struct {
	Id        uuid.UUID
	ProfileId uuid.UUID
	UserId    uuid.UUID
	Content   string
	CreatedAt time.Time
	UpdatedAt *time.Time
}

type ConsultationAnalysis struct {
	Id               uuid.UUID
	ConsultationId   uuid.UUID
	Strengths        string
	InterestKeywords string
	CareerValues     string
	CreatedAt        time.Time
}
