package roadmap

import (
	"career-roadmap-be/pkg/qnet"
	"career-roadmap-be/pkg/websearch"
)

// RagContext carries the counselee data assembled from storage. Rows are kept
// schemaless so the engine can be fed from the DB or from a raw API payload.
type RagContext struct {
	Counseling []map[string]any `json:"counseling"`
	Analysis   []AnalysisRow    `json:"analysis"`
	Profile    []map[string]any `json:"profile"`
	Roadmap    []map[string]any `json:"roadmap"`
}

// AnalysisRow is one consultation analysis record (strengths, interests,
// values) used for keyword extraction and competency scoring.
type AnalysisRow struct {
	Strengths        string `json:"strengths"`
	InterestKeywords string `json:"interest_keywords"`
	CareerValues     string `json:"career_values"`
}

// ClientData is the profile snapshot the engine works from, derived from the
// first profile row.
type ClientData struct {
	RecommendedCareers  string
	TargetCompany       string
	Major               string
	EducationLevel      string
	WorkExperienceYears int
	WorkExperience      string
}

// PlanStep is one phase of the model-generated plan. Field names follow the
// JSON contract the model is instructed to emit.
type PlanStep struct {
	Title          string               `json:"단계"`
	Activities     []string             `json:"추천활동"`
	JobFamilies    []string             `json:"직업군"`
	Competencies   []string             `json:"역량"`
	Qualifications []qnet.Qualification `json:"자격정보,omitempty"`
	ExamSchedules  []qnet.ExamSchedule  `json:"시험일정,omitempty"`
	Industries     []string             `json:"산업분야/대표기업,omitempty"`
}

// GenerationResult is the parsed model output plus the web intel attached
// after generation.
type GenerationResult struct {
	Summary   string     `json:"summary"`
	Citations []string   `json:"citations_used"`
	Plan      []PlanStep `json:"plan"`

	CompanyInfos        []websearch.CompanyResult `json:"-"`
	JobRequirementsText string                    `json:"-"`
}

// Resource is a study material card attached to a milestone.
type Resource struct {
	Title   string `json:"title"`
	URL     string `json:"url"`
	Type    string `json:"type"` // "video", "article", "quiz"
	Content string `json:"content,omitempty"`
}

// Milestone is one roadmap step in the output contract.
type Milestone struct {
	ID          string     `json:"id"`
	Title       string     `json:"title"`
	Description string     `json:"description"`
	Status      string     `json:"status"` // "in-progress" or "locked"
	Date        string     `json:"date"`
	QuizScore   int        `json:"quizScore"`
	Resources   []Resource `json:"resources"`
	ActionItems []string   `json:"actionItems"`
}

// Competency is one of the four scored skill axes.
type Competency struct {
	Title string `json:"title"`
	Desc  string `json:"desc"`
	Level int    `json:"level"`
}

// CertDetails holds exam metadata for a recommended certification.
type CertDetails struct {
	Written      string `json:"written,omitempty"`
	Practical    string `json:"practical,omitempty"`
	Difficulty   string `json:"difficulty,omitempty"`
	ExamSchedule string `json:"examSchedule,omitempty"`
	Description  string `json:"description,omitempty"`
}

// Certification is one recommended qualification or education program.
type Certification struct {
	Type    string       `json:"type"`
	Name    string       `json:"name"`
	Status  string       `json:"status"`
	Color   string       `json:"color"`
	Details *CertDetails `json:"details,omitempty"`
}

// Plan is the output contract shared by the model path and the rule-based
// path.
type Plan struct {
	Info          []Milestone     `json:"info"`
	DynamicSkills []Competency    `json:"dynamicSkills"`
	DynamicCerts  []Certification `json:"dynamicCerts"`
	TargetJob     string          `json:"targetJob"`
	TargetCompany string          `json:"targetCompany"`
}

const (
	StatusInProgress = "in-progress"
	StatusLocked     = "locked"

	placeholderJob = "희망 직무"
)

// sentinel values treated as "not set" in profile fields
func isUnsetValue(s string) bool {
	return s == "" || s == "없음" || s == "미정"
}

// ResolveTargetJob maps an unset job to the placeholder label.
func ResolveTargetJob(raw string) string {
	if isUnsetValue(raw) {
		return placeholderJob
	}
	return raw
}

// ResolveTargetCompany maps an unset company to empty.
func ResolveTargetCompany(raw string) string {
	if isUnsetValue(raw) {
		return ""
	}
	return raw
}
