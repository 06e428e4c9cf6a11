package entity

import (
	"time"

	"github.com/google/uuid"
)

// CareerRoadmap stores one generated plan. Milestones, competencies and
// certification recommendations are kept as serialized JSON blobs since the
// engine owns their shape.
type CareerRoadmap struct {
	Id             uuid.UUID
	ProfileId      uuid.UUID
	UserId         uuid.UUID
	TargetJob      string
	TargetCompany  string
	TimelineMonths int
	IsActive       bool
	Info           []byte
	DynamicSkills  []byte
	DynamicCerts   []byte
	CreatedAt      time.Time
	UpdatedAt      *time.Time
	DeletedAt      *time.Time
	IsDeleted      bool
}
