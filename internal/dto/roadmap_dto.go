package dto

import (
	"encoding/json"
	"time"

	"career-roadmap-be/pkg/roadmap"

	"github.com/google/uuid"
)

type GenerateRoadmapRequest struct {
	ProfileId uuid.UUID `json:"profile_id" validate:"required"`
}

type RoadmapResponse struct {
	Id             uuid.UUID                `json:"id"`
	ProfileId      uuid.UUID                `json:"profile_id"`
	Info           []roadmap.Milestone      `json:"info"`
	DynamicSkills  []roadmap.Competency     `json:"dynamicSkills"`
	DynamicCerts   []roadmap.Certification  `json:"dynamicCerts"`
	TargetJob      string                   `json:"targetJob"`
	TargetCompany  string                   `json:"targetCompany"`
	TimelineMonths int                      `json:"timeline_months"`
	CreatedAt      time.Time                `json:"created_at"`
}

// RunRoadmapRequest carries pre-fetched client rows for the standalone run
// endpoint. Each slice holds generic JSON objects as selected upstream.
type RunRoadmapRequest struct {
	Profile    []map[string]any     `json:"profile"`
	Counseling []map[string]any     `json:"counseling"`
	Analysis   []roadmap.AnalysisRow `json:"analysis"`
	Roadmap    []map[string]any     `json:"roadmap"`
}

type RunRoadmapResponse struct {
	Info          []roadmap.Milestone     `json:"info"`
	DynamicSkills []roadmap.Competency    `json:"dynamicSkills"`
	DynamicCerts  []roadmap.Certification `json:"dynamicCerts"`
	TargetJob     string                  `json:"targetJob"`
	TargetCompany string                  `json:"targetCompany"`
}

type CertificationsRequest struct {
	TargetJob       string           `json:"target_job" validate:"required"`
	Major           string           `json:"major"`
	EducationLevel  string           `json:"education_level"`
	ExperienceYears int                   `json:"experience_years"`
	Analysis        []roadmap.AnalysisRow `json:"analysis"`
}

type CertificationsResponse struct {
	Certifications []roadmap.Certification `json:"certifications"`
}

type NotificationResponse struct {
	Id        uuid.UUID `json:"id"`
	Type      string    `json:"type"`
	Title     string    `json:"title"`
	Body      string    `json:"body"`
	IsRead    bool      `json:"is_read"`
	CreatedAt time.Time `json:"created_at"`
}

// RoadmapGeneratedEvent is published after a roadmap is persisted.
type RoadmapGeneratedEvent struct {
	RoadmapId uuid.UUID `json:"roadmap_id"`
	ProfileId uuid.UUID `json:"profile_id"`
	UserId    uuid.UUID `json:"user_id"`
	TargetJob string    `json:"target_job"`
}

func (e *RoadmapGeneratedEvent) Marshal() ([]byte, error) {
	return json.Marshal(e)
}
