package roadmap

import (
	"strings"
	"testing"
	"time"

	"career-roadmap-be/pkg/qnet"
	"career-roadmap-be/pkg/websearch"
)

func testEngine(t *testing.T) *Engine {
	t.Helper()
	return NewEngine(nil, "", Adapters{}, Config{}, nil,
		WithProgramPicker(func(int) int { return 0 }),
		WithClock(func() time.Time { return time.Date(2026, 3, 5, 10, 0, 0, 0, time.UTC) }),
	)
}

func TestStripMetaPhrases(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{"search based prefix", "검색 기반 포트폴리오 제작", "포트폴리오 제작"},
		{"search result parenthetical", "(검색 결과) 자격증 취득", "자격증 취득"},
		{"company analysis narration", "채용 공고·인재상 분석 기반 역량 정리", "역량 정리"},
		{"leading interpunct", "· 자격증 취득", "자격증 취득"},
		{"all meta keeps original", "검색 기반", "검색 기반"},
		{"plain text untouched", "포트폴리오 1개 완성", "포트폴리오 1개 완성"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := StripMetaPhrases(tt.in); got != tt.want {
				t.Errorf("StripMetaPhrases(%q) = %q, want %q", tt.in, got, tt.want)
			}
		})
	}
}

func TestConcreteTitle(t *testing.T) {
	concrete := "목표 기업 기술 스택을 활용한 포트폴리오 프로젝트 1개 기획 및 구현"

	tests := []struct {
		name string
		step PlanStep
		want string
	}{
		{
			"concrete title passes through",
			PlanStep{Title: "1단계: 정보처리기사 취득 및 기초 프로젝트"},
			"1단계: 정보처리기사 취득 및 기초 프로젝트",
		},
		{
			"vague title replaced by concrete activity",
			PlanStep{Title: "2단계: 목표 기업 맞춤형 준비", Activities: []string{"짧은 항목", concrete}},
			concrete,
		},
		{
			"vague title without concrete candidates kept",
			PlanStep{Title: "2단계: 역량 강화", Activities: []string{"짧은 항목"}},
			"2단계: 역량 강화",
		},
		{
			"empty title falls back to step number",
			PlanStep{},
			"Step4",
		},
	}
	for i, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := concreteTitle(tt.step, i); got != tt.want {
				t.Errorf("concreteTitle() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestPlanToMilestones(t *testing.T) {
	e := testEngine(t)
	plan := []PlanStep{
		{Title: "1단계: 기초 역량", Activities: []string{"검색 기반 자격증 필기 준비"}, Qualifications: []qnet.Qualification{{Name: "정보처리기사"}}},
		{Title: "2단계: 역량 강화", Activities: []string{"포트폴리오 프로젝트 완성"}},
		{Title: "3단계: 취업 준비", Activities: []string{"면접 연습"}, JobFamilies: []string{"백엔드", "플랫폼", "인프라"}},
	}

	info := e.PlanToMilestones(plan, "상담 기반 6개월 요약", "", nil)

	if len(info) != 3 {
		t.Fatalf("got %d milestones, want 3", len(info))
	}
	if info[0].Status != StatusInProgress {
		t.Errorf("info[0].Status = %q, want %q", info[0].Status, StatusInProgress)
	}
	if info[0].Date != "2026. 3. 5." {
		t.Errorf("info[0].Date = %q, want 2026. 3. 5.", info[0].Date)
	}
	for i := 1; i < 3; i++ {
		if info[i].Status != StatusLocked {
			t.Errorf("info[%d].Status = %q, want %q", i, info[i].Status, StatusLocked)
		}
		if info[i].Date != "" {
			t.Errorf("info[%d].Date = %q, want empty", i, info[i].Date)
		}
	}
	for i, m := range info {
		if m.ID != []string{"step-1", "step-2", "step-3"}[i] {
			t.Errorf("info[%d].ID = %q", i, m.ID)
		}
		if len(m.Resources) == 0 {
			t.Errorf("info[%d] has no resources", i)
		}
	}
	if info[0].Description != "상담 기반 6개월 요약" {
		t.Errorf("info[0].Description = %q, want the summary", info[0].Description)
	}
	if got := info[0].ActionItems[0]; got != "자격증 필기 준비" {
		t.Errorf("meta phrases should be stripped from action items, got %q", got)
	}

	// No target company: the goal concretization guide rides the first two steps.
	for i := 0; i < 2; i++ {
		found := false
		for _, r := range info[i].Resources {
			if r.Title == "목표 구체화 가이드" {
				found = true
			}
		}
		if !found {
			t.Errorf("info[%d] is missing the goal concretization guide", i)
		}
	}

	foundQual := false
	for _, r := range info[0].Resources {
		if r.Title == "정보처리기사" {
			foundQual = true
		}
	}
	if !foundQual {
		t.Errorf("info[0] should surface the first qualification as a resource")
	}

	foundFamilies := false
	for _, r := range info[2].Resources {
		if r.Title == "직업군: 백엔드, 플랫폼" {
			foundFamilies = true
		}
	}
	if !foundFamilies {
		t.Errorf("info[2] should list at most two job families, got %+v", info[2].Resources)
	}
}

func TestPlanToMilestonesCompanyResources(t *testing.T) {
	e := testEngine(t)
	plan := []PlanStep{
		{Title: "1단계", Activities: []string{"준비"}},
		{Title: "2단계", Activities: []string{"실행"}},
		{Title: "3단계", Activities: []string{"지원"}},
	}
	companies := []websearch.CompanyResult{{CompanyName: "네이버", TalentProfile: "도전하는 인재", TechStack: "Go, Kubernetes"}}

	info := e.PlanToMilestones(plan, "", "네이버", companies)

	for _, r := range info[0].Resources {
		if strings.HasPrefix(r.Title, "네이버") {
			t.Errorf("company intel should not attach to the first step, got %q", r.Title)
		}
	}
	for _, i := range []int{1, 2} {
		found := false
		for _, r := range info[i].Resources {
			if r.Title == "네이버 인재상" {
				found = true
			}
		}
		if !found {
			t.Errorf("info[%d] is missing the company talent profile resource", i)
		}
	}
}

func TestPlanToMilestonesEmptyPlan(t *testing.T) {
	e := testEngine(t)
	info := e.PlanToMilestones(nil, "", "", nil)
	if len(info) != 1 {
		t.Fatalf("got %d milestones, want 1", len(info))
	}
	m := info[0]
	if m.ID != "step-1" || m.Title != "1단계: 목표 설정" {
		t.Errorf("unexpected synthetic milestone: %+v", m)
	}
	if m.Status != StatusInProgress || m.Date == "" {
		t.Errorf("synthetic milestone should start in progress with a date, got %+v", m)
	}
	if len(m.Resources) == 0 || len(m.ActionItems) != 2 {
		t.Errorf("synthetic milestone should carry a guide resource and two action items, got %+v", m)
	}
}

func TestFindExamDate(t *testing.T) {
	schedules := []qnet.ExamSchedule{
		{Description: "정보처리", DocRegStart: "2026-01-20", DocRegEnd: "2026-01-23", DocExamStart: "2026-03-01"},
	}
	tests := []struct {
		name     string
		certName string
		want     string
	}{
		{"registry match with registration window", "정보처리기사", "시험일정: 2026-03-01 (접수: 2026-01-20~2026-01-23)"},
		{"no match falls back to yearly default", "토목기사", "시험일정: 연 2회 (4월, 10월)"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := findExamDate(schedules, tt.certName, "연 2회 (4월, 10월)"); got != tt.want {
				t.Errorf("findExamDate(%q) = %q, want %q", tt.certName, got, tt.want)
			}
		})
	}
}

func TestBuildCertifications(t *testing.T) {
	e := testEngine(t)

	t.Run("empty registry for a dev job", func(t *testing.T) {
		certs := e.BuildCertifications("백엔드 개발자", "", nil, nil, nil)

		if len(certs) == 0 {
			t.Fatal("got no certifications")
		}
		if certs[0].Name != "정보처리기사" {
			t.Errorf("certs[0].Name = %q, want 정보처리기사 prepended for dev jobs", certs[0].Name)
		}
		last := certs[len(certs)-1]
		if last.Type != "교육" || last.Status != "수료 권장" {
			t.Errorf("last entry should be an education program, got %+v", last)
		}
		if last.Name != "패스트캠퍼스 백엔드 개발 부트캠프" {
			t.Errorf("program = %q, want the picker-selected dev program", last.Name)
		}
	})

	t.Run("registry matches come first", func(t *testing.T) {
		quals := []qnet.Qualification{{Name: "정보처리기사", Series: "기사"}}
		certs := e.BuildCertifications("백엔드 개발자", "컴퓨터공학", quals, nil, nil)

		if certs[0].Name != "정보처리기사" {
			t.Errorf("certs[0].Name = %q, want the registry row", certs[0].Name)
		}
		if certs[0].Details == nil || certs[0].Details.ExamSchedule != "시험일정: Q-Net 공식 사이트 확인" {
			t.Errorf("certs[0] should carry the registry default schedule, got %+v", certs[0].Details)
		}
	})

	t.Run("data job uses the data fallback table", func(t *testing.T) {
		certs := e.BuildCertifications("데이터 분석가", "", nil, nil, nil)
		found := false
		for _, c := range certs {
			if c.Name == "빅데이터분석기사" {
				found = true
			}
		}
		if !found {
			t.Errorf("data fallback table should include 빅데이터분석기사, got %+v", certs)
		}
	})
}
