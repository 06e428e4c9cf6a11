package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

type CareerRoadmap struct {
	Id             uuid.UUID      `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	ProfileId      uuid.UUID      `gorm:"type:uuid;not null;index"`
	UserId         uuid.UUID      `gorm:"type:uuid;not null;index"`
	TargetJob      string         `gorm:"type:varchar(255)"`
	TargetCompany  string         `gorm:"type:varchar(255)"`
	TimelineMonths int            `gorm:"not null;default:6"`
	IsActive       bool           `gorm:"not null;default:false;index"`
	Info           datatypes.JSON `gorm:"type:jsonb"`
	DynamicSkills  datatypes.JSON `gorm:"type:jsonb"`
	DynamicCerts   datatypes.JSON `gorm:"type:jsonb"`
	CreatedAt      time.Time      `gorm:"autoCreateTime"`
	UpdatedAt      time.Time      `gorm:"autoUpdateTime"`
	DeletedAt      gorm.DeletedAt `gorm:"index"`
}

func (CareerRoadmap) TableName() string {
	return "career_roadmaps"
}
