package service

import (
	"context"
	"encoding/json"
	"time"

	"career-roadmap-be/internal/dto"
	"career-roadmap-be/internal/entity"
	"career-roadmap-be/internal/pkg/logger"
	"career-roadmap-be/internal/repository/specification"
	"career-roadmap-be/internal/repository/unitofwork"
	"career-roadmap-be/pkg/roadmap"

	"github.com/google/uuid"
)

const contextConsultationLimit = 5

type IRoadmapService interface {
	Generate(ctx context.Context, userId uuid.UUID, req *dto.GenerateRoadmapRequest) (*dto.RoadmapResponse, error)
	GetActive(ctx context.Context, userId uuid.UUID, profileId *uuid.UUID) (*dto.RoadmapResponse, error)
	Run(ctx context.Context, req *dto.RunRoadmapRequest) (*dto.RunRoadmapResponse, error)
	Certifications(ctx context.Context, req *dto.CertificationsRequest) (*dto.CertificationsResponse, error)
}

type roadmapService struct {
	uowFactory       unitofwork.RepositoryFactory
	engine           *roadmap.Engine
	publisherService IPublisherService
	logger           logger.ILogger
}

func NewRoadmapService(
	uowFactory unitofwork.RepositoryFactory,
	engine *roadmap.Engine,
	publisherService IPublisherService,
	log logger.ILogger,
) IRoadmapService {
	return &roadmapService{
		uowFactory:       uowFactory,
		engine:           engine,
		publisherService: publisherService,
		logger:           log,
	}
}

// Generate assembles the counseling context for one profile, runs the engine
// and replaces the profile's active roadmap with the result. Returns nil when
// the profile does not exist or is not owned by the caller.
func (s *roadmapService) Generate(ctx context.Context, userId uuid.UUID, req *dto.GenerateRoadmapRequest) (*dto.RoadmapResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	profile, err := uow.CareerProfileRepository().FindOne(ctx,
		specification.ByID{ID: req.ProfileId},
		specification.UserOwnedBy{UserID: userId},
	)
	if err != nil {
		return nil, err
	}
	if profile == nil {
		return nil, nil
	}

	ragCtx := s.assembleContext(ctx, uow, profile)
	plan := s.engine.Run(ctx, ragCtx)

	infoJson, err := json.Marshal(plan.Info)
	if err != nil {
		return nil, err
	}
	skillsJson, err := json.Marshal(plan.DynamicSkills)
	if err != nil {
		return nil, err
	}
	certsJson, err := json.Marshal(plan.DynamicCerts)
	if err != nil {
		return nil, err
	}

	row := entity.CareerRoadmap{
		Id:             uuid.New(),
		ProfileId:      profile.Id,
		UserId:         userId,
		TargetJob:      plan.TargetJob,
		TargetCompany:  plan.TargetCompany,
		TimelineMonths: 6,
		IsActive:       true,
		Info:           infoJson,
		DynamicSkills:  skillsJson,
		DynamicCerts:   certsJson,
		CreatedAt:      time.Now(),
	}

	if err := uow.Begin(ctx); err != nil {
		return nil, err
	}
	defer uow.Rollback()

	if err := uow.CareerRoadmapRepository().DeactivateAllByProfileId(ctx, profile.Id); err != nil {
		return nil, err
	}
	if err := uow.CareerRoadmapRepository().Create(ctx, &row); err != nil {
		return nil, err
	}
	if err := uow.Commit(); err != nil {
		return nil, err
	}

	event := dto.RoadmapGeneratedEvent{
		RoadmapId: row.Id,
		ProfileId: profile.Id,
		UserId:    userId,
		TargetJob: plan.TargetJob,
	}
	eventJson, err := event.Marshal()
	if err == nil {
		err = s.publisherService.Publish(ctx, eventJson)
	}
	if err != nil {
		// Roadmap is already persisted, a lost notification is acceptable.
		s.logger.Warn("RoadmapService", "Failed to publish roadmap event", map[string]interface{}{
			"roadmap_id": row.Id.String(),
			"error":      err.Error(),
		})
	}

	return s.toResponse(&row, plan.Info, plan.DynamicSkills, plan.DynamicCerts), nil
}

// assembleContext builds the engine input from stored rows. Consultation and
// analysis lookups degrade to empty lists on failure, only the profile row is
// mandatory.
func (s *roadmapService) assembleContext(ctx context.Context, uow unitofwork.UnitOfWork, profile *entity.CareerProfile) roadmap.RagContext {
	ragCtx := roadmap.RagContext{
		Profile: []map[string]any{{
			"recommended_careers":   profile.RecommendedCareers,
			"target_company":        profile.TargetCompany,
			"major":                 profile.Major,
			"education_level":       profile.EducationLevel,
			"work_experience_years": profile.WorkExperienceYears,
			"work_experience":       profile.WorkExperience,
			"age_group":             profile.AgeGroup,
		}},
		Counseling: make([]map[string]any, 0),
		Analysis:   make([]roadmap.AnalysisRow, 0),
		Roadmap:    make([]map[string]any, 0),
	}

	consultations, err := uow.ConsultationRepository().FindAll(ctx,
		specification.ByProfileID{ProfileID: profile.Id},
		specification.OrderBy{Field: "created_at", Desc: true},
		specification.Pagination{Limit: contextConsultationLimit},
	)
	if err != nil {
		s.logger.Warn("RoadmapService", "Failed to load consultations, continuing without", map[string]interface{}{
			"profile_id": profile.Id.String(),
			"error":      err.Error(),
		})
		consultations = nil
	}

	consultationIds := make([]uuid.UUID, 0, len(consultations))
	for _, c := range consultations {
		ragCtx.Counseling = append(ragCtx.Counseling, map[string]any{
			"content":    c.Content,
			"created_at": c.CreatedAt.Format(time.RFC3339),
		})
		consultationIds = append(consultationIds, c.Id)
	}

	if len(consultationIds) > 0 {
		analyses, err := uow.ConsultationAnalysisRepository().FindAll(ctx,
			specification.ByConsultationIDs{ConsultationIDs: consultationIds},
		)
		if err != nil {
			s.logger.Warn("RoadmapService", "Failed to load consultation analyses, continuing without", map[string]interface{}{
				"profile_id": profile.Id.String(),
				"error":      err.Error(),
			})
			analyses = nil
		}
		for _, a := range analyses {
			ragCtx.Analysis = append(ragCtx.Analysis, roadmap.AnalysisRow{
				Strengths:        a.Strengths,
				InterestKeywords: a.InterestKeywords,
				CareerValues:     a.CareerValues,
			})
		}
	}

	previous, err := uow.CareerRoadmapRepository().FindAll(ctx,
		specification.ByProfileID{ProfileID: profile.Id},
		specification.OrderBy{Field: "created_at", Desc: true},
	)
	if err != nil {
		s.logger.Warn("RoadmapService", "Failed to load previous roadmaps, continuing without", map[string]interface{}{
			"profile_id": profile.Id.String(),
			"error":      err.Error(),
		})
		previous = nil
	}
	for _, r := range previous {
		ragCtx.Roadmap = append(ragCtx.Roadmap, map[string]any{
			"target_job":     r.TargetJob,
			"target_company": r.TargetCompany,
			"created_at":     r.CreatedAt.Format(time.RFC3339),
		})
	}

	return ragCtx
}

// GetActive returns the caller's current roadmap, nil when none exists.
func (s *roadmapService) GetActive(ctx context.Context, userId uuid.UUID, profileId *uuid.UUID) (*dto.RoadmapResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	specs := []specification.Specification{
		specification.UserOwnedBy{UserID: userId},
		specification.ActiveOnly{},
		specification.OrderBy{Field: "created_at", Desc: true},
	}
	if profileId != nil {
		specs = append(specs, specification.ByProfileID{ProfileID: *profileId})
	}
	row, err := uow.CareerRoadmapRepository().FindOne(ctx, specs...)
	if err != nil {
		return nil, err
	}
	if row == nil {
		return nil, nil
	}

	var info []roadmap.Milestone
	var skills []roadmap.Competency
	var certs []roadmap.Certification
	if err := json.Unmarshal(row.Info, &info); err != nil {
		return nil, err
	}
	if err := json.Unmarshal(row.DynamicSkills, &skills); err != nil {
		return nil, err
	}
	if err := json.Unmarshal(row.DynamicCerts, &certs); err != nil {
		return nil, err
	}

	return s.toResponse(row, info, skills, certs), nil
}

// Run executes the engine on caller-supplied rows without touching storage.
func (s *roadmapService) Run(ctx context.Context, req *dto.RunRoadmapRequest) (*dto.RunRoadmapResponse, error) {
	ragCtx := roadmap.RagContext{
		Profile:    req.Profile,
		Counseling: req.Counseling,
		Analysis:   req.Analysis,
		Roadmap:    req.Roadmap,
	}

	plan := s.engine.Run(ctx, ragCtx)

	return &dto.RunRoadmapResponse{
		Info:          plan.Info,
		DynamicSkills: plan.DynamicSkills,
		DynamicCerts:  plan.DynamicCerts,
		TargetJob:     plan.TargetJob,
		TargetCompany: plan.TargetCompany,
	}, nil
}

// Certifications runs only the certification sub-pipeline.
func (s *roadmapService) Certifications(ctx context.Context, req *dto.CertificationsRequest) (*dto.CertificationsResponse, error) {
	certs := s.engine.CertificationsForRoadmap(ctx, roadmap.CertRequest{
		TargetJob:       req.TargetJob,
		Major:           req.Major,
		EducationLevel:  req.EducationLevel,
		ExperienceYears: req.ExperienceYears,
		Analysis:        req.Analysis,
	})
	return &dto.CertificationsResponse{Certifications: certs}, nil
}

func (s *roadmapService) toResponse(row *entity.CareerRoadmap, info []roadmap.Milestone, skills []roadmap.Competency, certs []roadmap.Certification) *dto.RoadmapResponse {
	return &dto.RoadmapResponse{
		Id:             row.Id,
		ProfileId:      row.ProfileId,
		Info:           info,
		DynamicSkills:  skills,
		DynamicCerts:   certs,
		TargetJob:      row.TargetJob,
		TargetCompany:  row.TargetCompany,
		TimelineMonths: row.TimelineMonths,
		CreatedAt:      row.CreatedAt,
	}
}
