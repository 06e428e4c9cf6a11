package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type CareerProfile struct {
	Id                  uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	UserId              uuid.UUID `gorm:"type:uuid;not null;index"`
	RecommendedCareers  string    `gorm:"type:varchar(255)"`
	TargetCompany       string    `gorm:"type:varchar(255)"`
	Major               string    `gorm:"type:varchar(255)"`
	EducationLevel      string    `gorm:"type:varchar(100)"`
	WorkExperienceYears int       `gorm:"not null;default:0"`
	WorkExperience      string    `gorm:"type:text"`
	AgeGroup            string    `gorm:"type:varchar(50)"`
	CreatedAt           time.Time `gorm:"autoCreateTime"`
	UpdatedAt           time.Time `gorm:"autoUpdateTime"`
	DeletedAt           gorm.DeletedAt `gorm:"index"`
}

func (CareerProfile) TableName() string {
	return "career_profiles"
}
