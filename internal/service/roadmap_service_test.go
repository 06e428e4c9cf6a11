package service

import (
	"context"
	"encoding/json"
	"errors"
	"sync"
	"testing"
	"time"

	"career-roadmap-be/internal/dto"
	"career-roadmap-be/internal/entity"
	"career-roadmap-be/internal/pkg/logger"
	"career-roadmap-be/internal/repository/contract"
	"career-roadmap-be/internal/repository/specification"
	"career-roadmap-be/internal/repository/unitofwork"
	"career-roadmap-be/pkg/roadmap"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

// ---- in-memory fakes -------------------------------------------------------

type fakeLogger struct {
	warns []string
}

var _ logger.ILogger = (*fakeLogger)(nil)

func (l *fakeLogger) Debug(module, message string, details map[string]interface{}) {}
func (l *fakeLogger) Info(module, message string, details map[string]interface{})  {}
func (l *fakeLogger) Warn(module, message string, details map[string]interface{}) {
	l.warns = append(l.warns, message)
}
func (l *fakeLogger) Error(module, message string, details map[string]interface{}) {}
func (l *fakeLogger) Sync() error                                                  { return nil }

type fakeProfileRepo struct {
	profile    *entity.CareerProfile
	findOneErr error
}

func (r *fakeProfileRepo) Create(ctx context.Context, profile *entity.CareerProfile) error {
	return nil
}
func (r *fakeProfileRepo) Update(ctx context.Context, profile *entity.CareerProfile) error {
	return nil
}
func (r *fakeProfileRepo) Delete(ctx context.Context, id uuid.UUID) error { return nil }
func (r *fakeProfileRepo) FindOne(ctx context.Context, specs ...specification.Specification) (*entity.CareerProfile, error) {
	return r.profile, r.findOneErr
}
func (r *fakeProfileRepo) FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.CareerProfile, error) {
	return nil, nil
}
func (r *fakeProfileRepo) Count(ctx context.Context, specs ...specification.Specification) (int64, error) {
	return 0, nil
}

type fakeRoadmapRepo struct {
	uow *fakeUnitOfWork

	created     []*entity.CareerRoadmap
	deactivated []uuid.UUID
	createErr   error

	findOneRow   *entity.CareerRoadmap
	findOneSpecs []specification.Specification
	findAllRows  []*entity.CareerRoadmap
	findAllErr   error
}

func (r *fakeRoadmapRepo) Create(ctx context.Context, row *entity.CareerRoadmap) error {
	if r.createErr != nil {
		return r.createErr
	}
	r.uow.record("create")
	r.created = append(r.created, row)
	return nil
}
func (r *fakeRoadmapRepo) Update(ctx context.Context, row *entity.CareerRoadmap) error { return nil }
func (r *fakeRoadmapRepo) Delete(ctx context.Context, id uuid.UUID) error              { return nil }
func (r *fakeRoadmapRepo) DeactivateAllByProfileId(ctx context.Context, profileId uuid.UUID) error {
	r.uow.record("deactivate")
	r.deactivated = append(r.deactivated, profileId)
	return nil
}
func (r *fakeRoadmapRepo) FindOne(ctx context.Context, specs ...specification.Specification) (*entity.CareerRoadmap, error) {
	r.findOneSpecs = specs
	return r.findOneRow, nil
}
func (r *fakeRoadmapRepo) FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.CareerRoadmap, error) {
	return r.findAllRows, r.findAllErr
}

type fakeConsultationRepo struct {
	rows []*entity.Consultation
	err  error
}

func (r *fakeConsultationRepo) Create(ctx context.Context, consultation *entity.Consultation) error {
	return nil
}
func (r *fakeConsultationRepo) FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.Consultation, error) {
	return r.rows, r.err
}
func (r *fakeConsultationRepo) Count(ctx context.Context, specs ...specification.Specification) (int64, error) {
	return int64(len(r.rows)), nil
}

type fakeAnalysisRepo struct {
	rows []*entity.ConsultationAnalysis
	err  error
}

func (r *fakeAnalysisRepo) Create(ctx context.Context, analysis *entity.ConsultationAnalysis) error {
	return nil
}
func (r *fakeAnalysisRepo) FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.ConsultationAnalysis, error) {
	return r.rows, r.err
}

// fakeNotificationRepo is locked because the event consumer creates rows from
// its own goroutine.
type fakeNotificationRepo struct {
	mu      sync.Mutex
	rows    []*entity.Notification
	findErr error
	marked  []uuid.UUID
	created []*entity.Notification
}

func (r *fakeNotificationRepo) Create(ctx context.Context, notification *entity.Notification) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.created = append(r.created, notification)
	return nil
}

func (r *fakeNotificationRepo) createdRows() []*entity.Notification {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]*entity.Notification, len(r.created))
	copy(out, r.created)
	return out
}
func (r *fakeNotificationRepo) MarkRead(ctx context.Context, id uuid.UUID) error {
	r.marked = append(r.marked, id)
	return nil
}
func (r *fakeNotificationRepo) FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.Notification, error) {
	return r.rows, r.findErr
}

// fakeUnitOfWork doubles as its own factory and records the transaction call
// order so tests can assert deactivate-then-create-then-commit.
type fakeUnitOfWork struct {
	profiles      *fakeProfileRepo
	roadmaps      *fakeRoadmapRepo
	consultations *fakeConsultationRepo
	analyses      *fakeAnalysisRepo
	notifications *fakeNotificationRepo

	calls     []string
	commits   int
	rollbacks int
}

func newFakeUow() *fakeUnitOfWork {
	uow := &fakeUnitOfWork{
		profiles:      &fakeProfileRepo{},
		consultations: &fakeConsultationRepo{},
		analyses:      &fakeAnalysisRepo{},
		notifications: &fakeNotificationRepo{},
	}
	uow.roadmaps = &fakeRoadmapRepo{uow: uow}
	return uow
}

func (u *fakeUnitOfWork) record(call string) { u.calls = append(u.calls, call) }

func (u *fakeUnitOfWork) NewUnitOfWork(ctx context.Context) unitofwork.UnitOfWork { return u }

func (u *fakeUnitOfWork) Begin(ctx context.Context) error {
	u.record("begin")
	return nil
}
func (u *fakeUnitOfWork) Commit() error {
	u.record("commit")
	u.commits++
	return nil
}
func (u *fakeUnitOfWork) Rollback() error {
	u.rollbacks++
	return nil
}

func (u *fakeUnitOfWork) CareerProfileRepository() contract.CareerProfileRepository {
	return u.profiles
}
func (u *fakeUnitOfWork) ConsultationRepository() contract.ConsultationRepository {
	return u.consultations
}
func (u *fakeUnitOfWork) ConsultationAnalysisRepository() contract.ConsultationAnalysisRepository {
	return u.analyses
}
func (u *fakeUnitOfWork) CareerRoadmapRepository() contract.CareerRoadmapRepository {
	return u.roadmaps
}
func (u *fakeUnitOfWork) NotificationRepository() contract.NotificationRepository {
	return u.notifications
}

type fakePublisher struct {
	payloads [][]byte
	err      error
}

func (p *fakePublisher) Publish(ctx context.Context, payload []byte) error {
	if p.err != nil {
		return p.err
	}
	p.payloads = append(p.payloads, payload)
	return nil
}

// serviceEngine builds an engine with no model provider and no external
// adapters, so every run takes the deterministic rule-based path.
func serviceEngine() *roadmap.Engine {
	return roadmap.NewEngine(nil, "", roadmap.Adapters{}, roadmap.Config{}, nil,
		roadmap.WithProgramPicker(func(n int) int { return 0 }),
		roadmap.WithClock(func() time.Time { return time.Date(2026, 3, 5, 10, 0, 0, 0, time.UTC) }),
	)
}

func testProfile(userId uuid.UUID) *entity.CareerProfile {
	return &entity.CareerProfile{
		Id:                  uuid.New(),
		UserId:              userId,
		RecommendedCareers:  "백엔드 개발자",
		Major:               "컴퓨터공학",
		EducationLevel:      "대학교 재학",
		WorkExperienceYears: 0,
		AgeGroup:            "20대",
	}
}

// ---- tests -----------------------------------------------------------------

func TestGenerateProfileNotFound(t *testing.T) {
	uow := newFakeUow()
	log := &fakeLogger{}
	svc := NewRoadmapService(uow, serviceEngine(), &fakePublisher{}, log)

	resp, err := svc.Generate(context.Background(), uuid.New(), &dto.GenerateRoadmapRequest{ProfileId: uuid.New()})

	assert.NoError(t, err)
	assert.Nil(t, resp)
	assert.Empty(t, uow.calls, "no transaction should start for a missing profile")
}

func TestGeneratePersistsAndPublishes(t *testing.T) {
	userId := uuid.New()
	uow := newFakeUow()
	uow.profiles.profile = testProfile(userId)
	uow.consultations.rows = []*entity.Consultation{
		{Id: uuid.New(), Content: "포트폴리오 준비 상담", CreatedAt: time.Now()},
	}
	uow.analyses.rows = []*entity.ConsultationAnalysis{
		{Strengths: "꼼꼼함", InterestKeywords: "백엔드, API", CareerValues: "성장"},
	}
	pub := &fakePublisher{}
	log := &fakeLogger{}
	svc := NewRoadmapService(uow, serviceEngine(), pub, log)

	resp, err := svc.Generate(context.Background(), userId, &dto.GenerateRoadmapRequest{ProfileId: uow.profiles.profile.Id})

	assert.NoError(t, err)
	if resp == nil {
		t.Fatal("Generate returned nil response for existing profile")
	}

	assert.Equal(t, []string{"begin", "deactivate", "create", "commit"}, uow.calls)
	assert.Equal(t, 1, uow.commits)

	if len(uow.roadmaps.created) != 1 {
		t.Fatalf("created %d roadmap rows, want 1", len(uow.roadmaps.created))
	}
	row := uow.roadmaps.created[0]
	assert.Equal(t, uow.profiles.profile.Id, row.ProfileId)
	assert.Equal(t, userId, row.UserId)
	assert.True(t, row.IsActive)
	assert.Equal(t, 6, row.TimelineMonths)
	assert.Equal(t, "백엔드 개발자", row.TargetJob)
	assert.Equal(t, []uuid.UUID{uow.profiles.profile.Id}, uow.roadmaps.deactivated)

	var stored []roadmap.Milestone
	assert.NoError(t, json.Unmarshal(row.Info, &stored))
	assert.Len(t, stored, 3)

	assert.Equal(t, row.Id, resp.Id)
	assert.Equal(t, "백엔드 개발자", resp.TargetJob)
	assert.Len(t, resp.Info, 3)
	assert.Len(t, resp.DynamicSkills, 4)

	if len(pub.payloads) != 1 {
		t.Fatalf("published %d events, want 1", len(pub.payloads))
	}
	var event dto.RoadmapGeneratedEvent
	assert.NoError(t, json.Unmarshal(pub.payloads[0], &event))
	assert.Equal(t, row.Id, event.RoadmapId)
	assert.Equal(t, userId, event.UserId)
	assert.Equal(t, "백엔드 개발자", event.TargetJob)

	assert.Empty(t, log.warns)
}

func TestGeneratePublishFailureIsNotFatal(t *testing.T) {
	userId := uuid.New()
	uow := newFakeUow()
	uow.profiles.profile = testProfile(userId)
	log := &fakeLogger{}
	svc := NewRoadmapService(uow, serviceEngine(), &fakePublisher{err: errors.New("broker down")}, log)

	resp, err := svc.Generate(context.Background(), userId, &dto.GenerateRoadmapRequest{ProfileId: uow.profiles.profile.Id})

	assert.NoError(t, err)
	assert.NotNil(t, resp)
	assert.Equal(t, 1, uow.commits, "roadmap must stay persisted when the event is lost")
	assert.Len(t, log.warns, 1)
}

func TestGenerateDegradesOnContextErrors(t *testing.T) {
	userId := uuid.New()
	uow := newFakeUow()
	uow.profiles.profile = testProfile(userId)
	uow.consultations.err = errors.New("consultations unavailable")
	uow.roadmaps.findAllErr = errors.New("history unavailable")
	log := &fakeLogger{}
	svc := NewRoadmapService(uow, serviceEngine(), &fakePublisher{}, log)

	resp, err := svc.Generate(context.Background(), userId, &dto.GenerateRoadmapRequest{ProfileId: uow.profiles.profile.Id})

	assert.NoError(t, err)
	assert.NotNil(t, resp)
	assert.Len(t, resp.Info, 3)
	assert.Len(t, log.warns, 2)
}

func TestGenerateCreateFailureRollsBack(t *testing.T) {
	userId := uuid.New()
	uow := newFakeUow()
	uow.profiles.profile = testProfile(userId)
	uow.roadmaps.createErr = errors.New("insert failed")
	pub := &fakePublisher{}
	svc := NewRoadmapService(uow, serviceEngine(), pub, &fakeLogger{})

	resp, err := svc.Generate(context.Background(), userId, &dto.GenerateRoadmapRequest{ProfileId: uow.profiles.profile.Id})

	assert.Error(t, err)
	assert.Nil(t, resp)
	assert.Equal(t, 0, uow.commits)
	assert.Equal(t, 1, uow.rollbacks)
	assert.Empty(t, pub.payloads)
}

func storedRoadmapRow(t *testing.T, userId uuid.UUID) *entity.CareerRoadmap {
	t.Helper()
	info, err := json.Marshal([]roadmap.Milestone{{ID: "step-1", Title: "1단계"}})
	assert.NoError(t, err)
	skills, err := json.Marshal([]roadmap.Competency{{Title: "문제 해결", Level: 60}})
	assert.NoError(t, err)
	certs, err := json.Marshal([]roadmap.Certification{{Name: "정보처리기사"}})
	assert.NoError(t, err)
	return &entity.CareerRoadmap{
		Id:             uuid.New(),
		ProfileId:      uuid.New(),
		UserId:         userId,
		TargetJob:      "백엔드 개발자",
		TargetCompany:  "네이버",
		TimelineMonths: 6,
		IsActive:       true,
		Info:           info,
		DynamicSkills:  skills,
		DynamicCerts:   certs,
		CreatedAt:      time.Now(),
	}
}

func TestGetActive(t *testing.T) {
	userId := uuid.New()
	uow := newFakeUow()
	uow.roadmaps.findOneRow = storedRoadmapRow(t, userId)
	svc := NewRoadmapService(uow, serviceEngine(), &fakePublisher{}, &fakeLogger{})

	resp, err := svc.GetActive(context.Background(), userId, nil)

	assert.NoError(t, err)
	if resp == nil {
		t.Fatal("GetActive returned nil for an existing row")
	}
	assert.Equal(t, uow.roadmaps.findOneRow.Id, resp.Id)
	assert.Equal(t, "백엔드 개발자", resp.TargetJob)
	assert.Equal(t, "네이버", resp.TargetCompany)
	assert.Equal(t, 6, resp.TimelineMonths)
	assert.Len(t, resp.Info, 1)
	assert.Equal(t, "step-1", resp.Info[0].ID)
	assert.Len(t, resp.DynamicSkills, 1)
	assert.Len(t, resp.DynamicCerts, 1)
	assert.Len(t, uow.roadmaps.findOneSpecs, 3)
}

func TestGetActiveFiltersByProfile(t *testing.T) {
	userId := uuid.New()
	profileId := uuid.New()
	uow := newFakeUow()
	uow.roadmaps.findOneRow = storedRoadmapRow(t, userId)
	svc := NewRoadmapService(uow, serviceEngine(), &fakePublisher{}, &fakeLogger{})

	_, err := svc.GetActive(context.Background(), userId, &profileId)

	assert.NoError(t, err)
	assert.Len(t, uow.roadmaps.findOneSpecs, 4)
	byProfile, ok := uow.roadmaps.findOneSpecs[3].(specification.ByProfileID)
	assert.True(t, ok, "last spec should narrow by profile id")
	assert.Equal(t, profileId, byProfile.ProfileID)
}

func TestGetActiveNoRoadmap(t *testing.T) {
	uow := newFakeUow()
	svc := NewRoadmapService(uow, serviceEngine(), &fakePublisher{}, &fakeLogger{})

	resp, err := svc.GetActive(context.Background(), uuid.New(), nil)

	assert.NoError(t, err)
	assert.Nil(t, resp)
}

func TestGetActiveCorruptBlob(t *testing.T) {
	userId := uuid.New()
	uow := newFakeUow()
	row := storedRoadmapRow(t, userId)
	row.Info = []byte("{not json")
	uow.roadmaps.findOneRow = row
	svc := NewRoadmapService(uow, serviceEngine(), &fakePublisher{}, &fakeLogger{})

	resp, err := svc.GetActive(context.Background(), userId, nil)

	assert.Error(t, err)
	assert.Nil(t, resp)
}

func TestRunUsesSuppliedRows(t *testing.T) {
	uow := newFakeUow()
	svc := NewRoadmapService(uow, serviceEngine(), &fakePublisher{}, &fakeLogger{})

	resp, err := svc.Run(context.Background(), &dto.RunRoadmapRequest{
		Profile: []map[string]any{{
			"recommended_careers": "데이터 분석가",
			"target_company":      "카카오",
			"education_level":     "대학교 졸업",
		}},
	})

	assert.NoError(t, err)
	if resp == nil {
		t.Fatal("Run returned nil response")
	}
	assert.Equal(t, "데이터 분석가", resp.TargetJob)
	assert.Equal(t, "카카오", resp.TargetCompany)
	assert.Len(t, resp.Info, 3)
	assert.Len(t, resp.DynamicSkills, 4)
	assert.Empty(t, uow.calls, "standalone runs must not touch storage")
}

func TestCertificationsEndpoint(t *testing.T) {
	svc := NewRoadmapService(newFakeUow(), serviceEngine(), &fakePublisher{}, &fakeLogger{})

	resp, err := svc.Certifications(context.Background(), &dto.CertificationsRequest{
		TargetJob:      "백엔드 개발자",
		Major:          "컴퓨터공학",
		EducationLevel: "대학교 재학",
	})

	assert.NoError(t, err)
	if resp == nil {
		t.Fatal("Certifications returned nil response")
	}
	// No registry and no model provider leaves nothing to recommend.
	assert.Empty(t, resp.Certifications)
}
