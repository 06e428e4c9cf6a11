package roadmap

import (
	"context"
	"errors"
	"reflect"
	"testing"
	"time"

	"career-roadmap-be/pkg/llm"
	"career-roadmap-be/pkg/qnet"
)

func TestSplitCompanyNames(t *testing.T) {
	tests := []struct {
		name string
		raw  string
		want []string
	}{
		{"ascii comma", "삼성전자, 네이버", []string{"삼성전자", "네이버"}},
		{"fullwidth comma", "삼성전자，네이버", []string{"삼성전자", "네이버"}},
		{"ideographic comma", "삼성전자、네이버", []string{"삼성전자", "네이버"}},
		{"single name", "네이버", []string{"네이버"}},
		{"empty", "", nil},
		{"separators only", ", ,", nil},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := splitCompanyNames(tt.raw)
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("splitCompanyNames(%q) = %v, want %v", tt.raw, got, tt.want)
			}
		})
	}
}

func TestClientDataFromContext(t *testing.T) {
	tests := []struct {
		name   string
		ragCtx RagContext
		want   ClientData
	}{
		{
			"full profile row",
			RagContext{Profile: []map[string]any{{
				"recommended_careers":   "백엔드 개발자",
				"target_company":        "네이버",
				"major":                 "컴퓨터공학",
				"education_level":       "대학교 재학",
				"work_experience_years": float64(3),
				"work_experience":       "스타트업 인턴 6개월",
			}}},
			ClientData{
				RecommendedCareers:  "백엔드 개발자",
				TargetCompany:       "네이버",
				Major:               "컴퓨터공학",
				EducationLevel:      "대학교 재학",
				WorkExperienceYears: 3,
				WorkExperience:      "스타트업 인턴 6개월",
			},
		},
		{
			"target_job fallback when recommended_careers is blank",
			RagContext{Profile: []map[string]any{{
				"recommended_careers": "  ",
				"target_job":          "데이터 분석가",
			}}},
			ClientData{RecommendedCareers: "데이터 분석가"},
		},
		{
			"integer experience years",
			RagContext{Profile: []map[string]any{{"work_experience_years": 2}}},
			ClientData{WorkExperienceYears: 2},
		},
		{"no profile rows", RagContext{}, ClientData{}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ClientDataFromContext(tt.ragCtx)
			if got != tt.want {
				t.Errorf("ClientDataFromContext() = %+v, want %+v", got, tt.want)
			}
		})
	}
}

// With no provider and no adapters the engine must still return a complete
// roadmap from the rule-based path.
func TestRunFullDegradation(t *testing.T) {
	e := testEngine(t)
	ragCtx := RagContext{Profile: []map[string]any{{
		"recommended_careers":   "백엔드 개발자",
		"target_company":        "네이버",
		"major":                 "컴퓨터공학",
		"education_level":       "대학교 재학",
		"work_experience_years": float64(0),
	}}}

	plan := e.Run(context.Background(), ragCtx)

	if plan == nil {
		t.Fatal("Run returned nil")
	}
	if plan.TargetJob != "백엔드 개발자" || plan.TargetCompany != "네이버" {
		t.Errorf("targets = %q / %q", plan.TargetJob, plan.TargetCompany)
	}
	if len(plan.Info) != 3 {
		t.Fatalf("got %d milestones, want 3", len(plan.Info))
	}
	if plan.Info[0].Status != StatusInProgress || plan.Info[0].Date == "" {
		t.Errorf("first milestone should start in progress with a date, got %+v", plan.Info[0])
	}
	for i := 1; i < 3; i++ {
		if plan.Info[i].Status != StatusLocked || plan.Info[i].Date != "" {
			t.Errorf("milestone %d should be locked without a date, got %+v", i, plan.Info[i])
		}
	}
	wantTitle := "1단계: 백엔드 개발자 기초 역량 확보 및 자격증 준비"
	if plan.Info[0].Title != wantTitle {
		t.Errorf("Info[0].Title = %q, want %q", plan.Info[0].Title, wantTitle)
	}
	wantFinal := "3단계: 프로그래머스·백준 코딩테스트 주 3회 + 원티드 면접 후기로 STAR 기법 연습"
	if plan.Info[2].Title != wantFinal {
		t.Errorf("Info[2].Title = %q, want the developer interview phase", plan.Info[2].Title)
	}
	if len(plan.DynamicSkills) != 4 {
		t.Errorf("got %d competencies, want 4", len(plan.DynamicSkills))
	}
	if len(plan.DynamicCerts) == 0 {
		t.Errorf("expected fallback certifications")
	}
	last := plan.DynamicCerts[len(plan.DynamicCerts)-1]
	if last.Type != "교육" {
		t.Errorf("last certification should be an education program, got %+v", last)
	}
}

func TestRunDeterministic(t *testing.T) {
	e := testEngine(t)
	ragCtx := RagContext{
		Profile:  []map[string]any{{"recommended_careers": "데이터 분석가", "education_level": "대학교 졸업"}},
		Analysis: []AnalysisRow{{Strengths: "분석력", InterestKeywords: "데이터, 통계"}},
	}
	first := e.Run(context.Background(), ragCtx)
	second := e.Run(context.Background(), ragCtx)
	if !reflect.DeepEqual(first, second) {
		t.Errorf("same inputs produced different plans")
	}
}

func TestRunUnsetProfileValues(t *testing.T) {
	e := testEngine(t)
	ragCtx := RagContext{Profile: []map[string]any{{
		"recommended_careers": "미정",
		"target_company":      "없음",
	}}}

	plan := e.Run(context.Background(), ragCtx)

	if plan.TargetJob != "희망 직무" {
		t.Errorf("TargetJob = %q, want 희망 직무", plan.TargetJob)
	}
	if plan.TargetCompany != "" {
		t.Errorf("TargetCompany = %q, want empty", plan.TargetCompany)
	}
	foundGuide := false
	for _, r := range plan.Info[0].Resources {
		if r.Title == "목표 구체화 가이드" {
			foundGuide = true
		}
	}
	if !foundGuide {
		t.Errorf("first step should carry the goal concretization guide when no company is set")
	}
}

func TestResolveTargets(t *testing.T) {
	tests := []struct {
		raw         string
		wantJob     string
		wantCompany string
	}{
		{"네이버", "네이버", "네이버"},
		{"없음", "희망 직무", ""},
		{"미정", "희망 직무", ""},
		{"", "희망 직무", ""},
	}
	for _, tt := range tests {
		if got := ResolveTargetJob(tt.raw); got != tt.wantJob {
			t.Errorf("ResolveTargetJob(%q) = %q, want %q", tt.raw, got, tt.wantJob)
		}
		if got := ResolveTargetCompany(tt.raw); got != tt.wantCompany {
			t.Errorf("ResolveTargetCompany(%q) = %q, want %q", tt.raw, got, tt.wantCompany)
		}
	}
}

func TestConfigWithDefaults(t *testing.T) {
	cfg := Config{}.withDefaults()
	if cfg.SearchTimeout != 10*time.Second {
		t.Errorf("SearchTimeout = %v, want 10s", cfg.SearchTimeout)
	}
	if cfg.RuleSearchTimeout != 8*time.Second {
		t.Errorf("RuleSearchTimeout = %v, want 8s", cfg.RuleSearchTimeout)
	}
	if cfg.RegistryTimeout != 5*time.Second {
		t.Errorf("RegistryTimeout = %v, want 5s", cfg.RegistryTimeout)
	}
	if cfg.GenerateTimeout != 120*time.Second {
		t.Errorf("GenerateTimeout = %v, want 120s", cfg.GenerateTimeout)
	}

	custom := Config{SearchTimeout: time.Second}.withDefaults()
	if custom.SearchTimeout != time.Second {
		t.Errorf("explicit timeout was overridden: %v", custom.SearchTimeout)
	}
}

func modelEngine(provider llm.LLMProvider, adapters Adapters) *Engine {
	return NewEngine(provider, "test-model", adapters, Config{}, nil,
		WithProgramPicker(func(int) int { return 0 }),
		WithClock(func() time.Time { return time.Date(2026, 3, 5, 10, 0, 0, 0, time.UTC) }),
	)
}

func hasResourceTitle(m Milestone, title string) bool {
	for _, r := range m.Resources {
		if r.Title == title {
			return true
		}
	}
	return false
}

func TestRunModelPath(t *testing.T) {
	reply := `{
		"summary": "백엔드 개발자로 성장하기 위한 6개월 플랜",
		"citations_used": ["네이버 채용 공고"],
		"plan": [
			{"단계": "1단계: CS 기초와 자격증 준비", "추천활동": ["정보처리기사 필기 학습"], "직업군": ["백엔드", "플랫폼"], "역량": ["CS 기초"]},
			{"단계": "2단계: 포트폴리오 프로젝트", "추천활동": ["사이드 프로젝트로 REST API 서버 구현"], "역량": ["실전 서버 설계"]}
		]
	}`
	stub := &stubProvider{reply: reply}
	adapters := Adapters{
		FetchQualifications: func(context.Context) ([]qnet.Qualification, error) {
			return registryQuals, nil
		},
		FetchExamSchedules: func(context.Context) ([]qnet.ExamSchedule, error) {
			return []qnet.ExamSchedule{{
				Description:  "기사",
				DocRegStart:  "2026-01-20",
				DocRegEnd:    "2026-01-23",
				DocExamStart: "2026-03-01",
			}}, nil
		},
	}
	e := modelEngine(stub, adapters)

	plan := e.Run(context.Background(), RagContext{Profile: []map[string]any{{
		"recommended_careers":   "백엔드 개발자",
		"major":                 "컴퓨터공학",
		"education_level":       "대학교 졸업",
		"work_experience_years": float64(5),
	}}})

	if plan == nil {
		t.Fatal("Run returned nil")
	}
	if stub.calls != 1 {
		t.Errorf("provider called %d times, want 1", stub.calls)
	}
	if plan.TargetJob != "백엔드 개발자" || plan.TargetCompany != "" {
		t.Errorf("targets = %q / %q", plan.TargetJob, plan.TargetCompany)
	}
	if len(plan.Info) != 2 {
		t.Fatalf("got %d milestones, want one per plan step", len(plan.Info))
	}

	first := plan.Info[0]
	if first.Status != StatusInProgress || first.Date != "2026. 3. 5." {
		t.Errorf("first milestone status/date = %q/%q", first.Status, first.Date)
	}
	if first.Description != "백엔드 개발자로 성장하기 위한 6개월 플랜" {
		t.Errorf("first description = %q, want the model summary", first.Description)
	}
	// The registry qualification injected into the first phase surfaces as a
	// resource card.
	if !hasResourceTitle(first, "정보처리기사") {
		t.Errorf("first milestone resources missing the registry qualification: %+v", first.Resources)
	}
	// The model sent no industries, so the default set is attached.
	if !hasResourceTitle(first, "산업분야·대표기업: 삼성전자, 현대자동차, 네이버") {
		t.Errorf("first milestone resources missing default industries: %+v", first.Resources)
	}
	if !hasResourceTitle(first, "직업군: 백엔드, 플랫폼") {
		t.Errorf("first milestone resources missing job families: %+v", first.Resources)
	}

	second := plan.Info[1]
	if second.Status != StatusLocked || second.Date != "" {
		t.Errorf("second milestone status/date = %q/%q", second.Status, second.Date)
	}
	if second.Description != "사이드 프로젝트로 REST API 서버 구현" {
		t.Errorf("second description = %q, want the project action item", second.Description)
	}

	if len(plan.DynamicSkills) != 4 {
		t.Errorf("got %d competencies, want 4", len(plan.DynamicSkills))
	}
	if len(plan.DynamicCerts) == 0 || plan.DynamicCerts[0].Name != "정보처리기사" {
		t.Errorf("registry certification should lead the list, got %+v", plan.DynamicCerts)
	}
	last := plan.DynamicCerts[len(plan.DynamicCerts)-1]
	if last.Type != "교육" {
		t.Errorf("last certification should be an education program, got %+v", last)
	}
}

func TestRunModelFailureMatchesRuleBased(t *testing.T) {
	ragCtx := RagContext{Profile: []map[string]any{{
		"recommended_careers":   "백엔드 개발자",
		"target_company":        "네이버",
		"major":                 "컴퓨터공학",
		"education_level":       "대학교 재학",
		"work_experience_years": float64(0),
	}}}

	tests := []struct {
		name string
		stub *stubProvider
	}{
		{"provider error", &stubProvider{err: errors.New("model unavailable")}},
		{"unparseable output", &stubProvider{reply: "죄송하지만 JSON을 만들 수 없습니다."}},
		{"empty result", &stubProvider{reply: `{"summary":"","plan":[]}`}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			withModel := modelEngine(tt.stub, Adapters{}).Run(context.Background(), ragCtx)
			ruleOnly := modelEngine(nil, Adapters{}).Run(context.Background(), ragCtx)
			if tt.stub.calls != 1 {
				t.Errorf("provider called %d times, want 1", tt.stub.calls)
			}
			if !reflect.DeepEqual(withModel, ruleOnly) {
				t.Errorf("fallback plan differs from the rule-based plan:\n got %+v\nwant %+v", withModel, ruleOnly)
			}
		})
	}
}
