package entity

import (
	"time"

	"github.com/google/uuid"
)

type CareerProfile struct {
	Id                  uuid.UUID
	UserId              uuid.UUID
	RecommendedCareers  string
	TargetCompany       string
	Major               string
	EducationLevel      string
	WorkExperienceYears int
	WorkExperience      string
	AgeGroup            string
	CreatedAt           time.Time
	UpdatedAt           *time.Time
	DeletedAt           *time.Time
	IsDeleted           bool
}
