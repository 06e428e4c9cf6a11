package roadmap

import (
	"context"
	"log"
	"math/rand"
	"regexp"
	"strings"
	"time"

	"golang.org/x/sync/errgroup"

	"career-roadmap-be/pkg/llm"
	"career-roadmap-be/pkg/qnet"
	"career-roadmap-be/pkg/websearch"
)

// Adapters are the optional external collaborators of the engine. Any field
// may be nil; a nil adapter degrades to an empty result.
type Adapters struct {
	SearchCompanies     func(ctx context.Context, names []string) ([]websearch.CompanyResult, error)
	SearchJob           func(ctx context.Context, title string) (*websearch.JobResult, error)
	FetchQualifications func(ctx context.Context) ([]qnet.Qualification, error)
	FetchExamSchedules  func(ctx context.Context) ([]qnet.ExamSchedule, error)
	// FetchQualSchedule resolves the exam rounds of a single qualification
	// by name, used when the yearly calendar has no row for it.
	FetchQualSchedule func(ctx context.Context, name string) ([]qnet.ExamSchedule, error)
}

// Config carries the engine timeouts. Zero fields fall back to defaults.
type Config struct {
	// SearchTimeout bounds the paired company+job search on the model path.
	SearchTimeout time.Duration
	// RuleSearchTimeout bounds the company search on the rule-based path.
	RuleSearchTimeout time.Duration
	// RegistryTimeout bounds the qualification and exam schedule fetch.
	RegistryTimeout time.Duration
	// GenerateTimeout is the deadline on the plan generation model call.
	// Exceeding it triggers the rule-based fallback.
	GenerateTimeout time.Duration
}

func (c Config) withDefaults() Config {
	if c.SearchTimeout == 0 {
		c.SearchTimeout = 10 * time.Second
	}
	if c.RuleSearchTimeout == 0 {
		c.RuleSearchTimeout = 8 * time.Second
	}
	if c.RegistryTimeout == 0 {
		c.RegistryTimeout = 5 * time.Second
	}
	if c.GenerateTimeout == 0 {
		c.GenerateTimeout = 120 * time.Second
	}
	return c
}

// Engine generates career roadmaps. The model path is used when a provider is
// configured and returns a usable plan; otherwise the deterministic rule-based
// path produces the same output shape.
type Engine struct {
	provider llm.LLMProvider
	model    string
	adapters Adapters
	cfg      Config
	logger   *log.Logger

	pick func(n int) int
	now  func() time.Time
}

// EngineOption customizes an Engine.
type EngineOption func(*Engine)

// WithProgramPicker overrides the education program selector.
func WithProgramPicker(pick func(n int) int) EngineOption {
	return func(e *Engine) { e.pick = pick }
}

// WithClock overrides the engine clock.
func WithClock(now func() time.Time) EngineOption {
	return func(e *Engine) { e.now = now }
}

// NewEngine builds an engine. A nil provider disables the model path entirely.
func NewEngine(provider llm.LLMProvider, model string, adapters Adapters, cfg Config, logger *log.Logger, opts ...EngineOption) *Engine {
	if logger == nil {
		logger = log.Default()
	}
	e := &Engine{
		provider: provider,
		model:    model,
		adapters: adapters,
		cfg:      cfg.withDefaults(),
		logger:   logger,
		pick:     rand.Intn,
		now:      time.Now,
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

var companySeparatorRe = regexp.MustCompile(`[,，、]`)

func splitCompanyNames(raw string) []string {
	var names []string
	for _, part := range companySeparatorRe.Split(raw, -1) {
		if p := strings.TrimSpace(part); p != "" {
			names = append(names, p)
		}
	}
	return names
}

// ClientDataFromContext derives the counselee snapshot from the first profile
// row of the assembled context.
func ClientDataFromContext(ragCtx RagContext) ClientData {
	var row map[string]any
	if len(ragCtx.Profile) > 0 {
		row = ragCtx.Profile[0]
	}
	str := func(keys ...string) string {
		for _, k := range keys {
			if v, ok := row[k]; ok && v != nil {
				if s := strings.TrimSpace(stringify(v)); s != "" {
					return s
				}
			}
		}
		return ""
	}
	years := 0
	switch v := row["work_experience_years"].(type) {
	case float64:
		years = int(v)
	case int:
		years = v
	}
	return ClientData{
		RecommendedCareers:  str("recommended_careers", "target_job"),
		TargetCompany:       str("target_company"),
		Major:               str("major"),
		EducationLevel:      str("education_level"),
		WorkExperienceYears: years,
		WorkExperience:      str("work_experience"),
	}
}

func stringify(v any) string {
	if s, ok := v.(string); ok {
		return s
	}
	return ""
}

// Run is the single entry point: model path first when a provider is
// configured, rule-based fallback otherwise. It always returns a plan.
func (e *Engine) Run(ctx context.Context, ragCtx RagContext) *Plan {
	client := ClientDataFromContext(ragCtx)

	if e.provider != nil {
		if plan := e.runModelPath(ctx, client, ragCtx); plan != nil {
			return plan
		}
		e.logger.Printf("[ROADMAP] model path unavailable, falling back to rule-based plan")
	}
	return e.buildRuleBased(ctx, client, ragCtx)
}

type searchPair struct {
	companies []websearch.CompanyResult
	job       *websearch.JobResult
}

func (e *Engine) runModelPath(ctx context.Context, client ClientData, ragCtx RagContext) *Plan {
	companyNames := splitCompanyNames(client.TargetCompany)
	jobTitle := client.RecommendedCareers

	search := raceNeutral(ctx, e.cfg.SearchTimeout, searchPair{}, func(ctx context.Context) (searchPair, error) {
		var pair searchPair
		g, gctx := errgroup.WithContext(ctx)
		g.Go(func() error {
			if len(companyNames) == 0 || e.adapters.SearchCompanies == nil {
				return nil
			}
			companies, err := e.adapters.SearchCompanies(gctx, companyNames)
			if err != nil {
				e.logger.Printf("[ROADMAP] company search failed: %v", err)
				return nil
			}
			pair.companies = companies
			return nil
		})
		g.Go(func() error {
			if jobTitle == "" || e.adapters.SearchJob == nil {
				return nil
			}
			job, err := e.adapters.SearchJob(gctx, jobTitle)
			if err != nil {
				e.logger.Printf("[ROADMAP] job search failed: %v", err)
				return nil
			}
			pair.job = job
			return nil
		})
		err := g.Wait()
		return pair, err
	})

	result := e.generateWithModel(ctx, client.RecommendedCareers, client.TargetCompany, search.companies, search.job, ragCtx)
	if result == nil || len(result.Plan) == 0 {
		return nil
	}

	quals, schedules := e.fetchRegistry(ctx, client)

	first := &result.Plan[0]
	first.Qualifications = headQuals(quals, 3)
	first.ExamSchedules = headSchedules(schedules, 3)
	if len(first.Industries) == 0 {
		first.Industries = []string{"삼성전자", "현대자동차", "네이버"}
	}

	targetJob := ResolveTargetJob(client.RecommendedCareers)
	targetCompany := ResolveTargetCompany(client.TargetCompany)
	extractedKw := ExtractKeywordsFromAnalysis(ragCtx.Analysis)

	return &Plan{
		Info:          e.PlanToMilestones(result.Plan, result.Summary, targetCompany, result.CompanyInfos),
		DynamicSkills: ComputeCompetencies(client, ragCtx.Analysis, targetJob, targetCompany, result.JobRequirementsText),
		DynamicCerts:  e.BuildCertifications(targetJob, client.Major, quals, schedules, extractedKw),
		TargetJob:     targetJob,
		TargetCompany: targetCompany,
	}
}

type registryPair struct {
	quals     []qnet.Qualification
	schedules []qnet.ExamSchedule
}

// fetchRegistry races the qualification and exam schedule fetch against the
// registry timeout and pre-filters qualifications to the tiers the counselee
// may pursue.
func (e *Engine) fetchRegistry(ctx context.Context, client ClientData) ([]qnet.Qualification, []qnet.ExamSchedule) {
	pair := raceNeutral(ctx, e.cfg.RegistryTimeout, registryPair{}, func(ctx context.Context) (registryPair, error) {
		var p registryPair
		g, gctx := errgroup.WithContext(ctx)
		g.Go(func() error {
			if e.adapters.FetchQualifications == nil {
				return nil
			}
			quals, err := e.adapters.FetchQualifications(gctx)
			if err != nil {
				e.logger.Printf("[ROADMAP] qualification fetch failed: %v", err)
				return nil
			}
			p.quals = quals
			return nil
		})
		g.Go(func() error {
			if e.adapters.FetchExamSchedules == nil {
				return nil
			}
			schedules, err := e.adapters.FetchExamSchedules(gctx)
			if err != nil {
				e.logger.Printf("[ROADMAP] exam schedule fetch failed: %v", err)
				return nil
			}
			p.schedules = schedules
			return nil
		})
		err := g.Wait()
		return p, err
	})
	quals := FilterEligibleQualifications(pair.quals, client.EducationLevel, client.WorkExperienceYears)
	return quals, pair.schedules
}

func headQuals(quals []qnet.Qualification, n int) []qnet.Qualification {
	if len(quals) > n {
		return quals[:n]
	}
	return quals
}

func headSchedules(schedules []qnet.ExamSchedule, n int) []qnet.ExamSchedule {
	if len(schedules) > n {
		return schedules[:n]
	}
	return schedules
}
