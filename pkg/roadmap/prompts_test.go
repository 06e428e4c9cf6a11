package roadmap

import (
	"strings"
	"testing"

	"career-roadmap-be/pkg/qnet"
	"career-roadmap-be/pkg/websearch"
)

func TestBuildUserContext(t *testing.T) {
	t.Run("with company goal", func(t *testing.T) {
		got := BuildUserContext("백엔드 개발자", "네이버", "요구사항 텍스트", "기업 텍스트", RagContext{
			Profile: []map[string]any{{"major": "컴퓨터공학"}},
		})
		for _, want := range []string{
			"목표 직무(희망 직무): 백엔드 개발자",
			"목표 기업(희망 기업): 네이버",
			"요구사항 텍스트",
			"기업 텍스트",
			`"major":"컴퓨터공학"`,
		} {
			if !strings.Contains(got, want) {
				t.Errorf("context is missing %q", want)
			}
		}
	})

	t.Run("no company switches the goal directive", func(t *testing.T) {
		got := BuildUserContext("백엔드 개발자", "없음", "", "", RagContext{})
		if !strings.Contains(got, "**목표 기업 없음**") {
			t.Errorf("context should carry the no-company directive")
		}
		if !strings.Contains(got, "(목표 직무 웹 검색 결과 없음 - RAG는 DB 데이터만 사용)") {
			t.Errorf("empty web sections should be marked explicitly")
		}
	})

	t.Run("nil rows serialize as empty arrays", func(t *testing.T) {
		got := BuildUserContext("", "", "", "", RagContext{})
		if !strings.Contains(got, "상담내역: []") {
			t.Errorf("nil counseling rows should render as []")
		}
	})
}

func TestBuildCompanyInfoText(t *testing.T) {
	if got := BuildCompanyInfoText(nil); got != "" {
		t.Errorf("BuildCompanyInfoText(nil) = %q, want empty", got)
	}
	got := BuildCompanyInfoText([]websearch.CompanyResult{
		{CompanyName: "네이버", TalentProfile: "도전", RecruitmentInfo: "공채", TechStack: "Go"},
	})
	for _, want := range []string{"[네이버]", "인재상: 도전", "채용: 공채", "기술스택: Go"} {
		if !strings.Contains(got, want) {
			t.Errorf("company text is missing %q", want)
		}
	}
}

func TestBuildJobInfoText(t *testing.T) {
	if got := BuildJobInfoText(nil); got != "" {
		t.Errorf("BuildJobInfoText(nil) = %q, want empty", got)
	}
	got := BuildJobInfoText(&websearch.JobResult{Requirements: "경력 3년", Skills: "Go", Trends: ""})
	if got != "경력 3년\nGo" {
		t.Errorf("BuildJobInfoText() = %q", got)
	}
}

func TestBuildCertRecommendationContext(t *testing.T) {
	quals := []qnet.Qualification{
		{Name: "한식조리기능사", Series: "기능사"},
		{Name: "정보처리기사", Series: "기사", Field: "정보기술"},
	}

	t.Run("it counselees see it rows first", func(t *testing.T) {
		got := BuildCertRecommendationContext("백엔드 개발자", "컴퓨터공학", nil, quals, nil, "대학교 졸업", 0)
		first := strings.Index(got, "1. 정보처리기사")
		if first < 0 {
			t.Errorf("정보처리기사 should be sorted to the top of the registry list")
		}
		if !strings.Contains(got, `학력 "대학교 졸업"`) {
			t.Errorf("eligibility note should quote the education level")
		}
	})

	t.Run("non-it counselees keep registry order", func(t *testing.T) {
		got := BuildCertRecommendationContext("요리사", "조리학", nil, quals, nil, "", 0)
		if !strings.Contains(got, "1. 한식조리기능사") {
			t.Errorf("registry order should be preserved for non-IT jobs")
		}
		if strings.Contains(got, "자격조건") {
			t.Errorf("empty education level should omit the eligibility note")
		}
	})

	t.Run("empty registry is stated", func(t *testing.T) {
		got := BuildCertRecommendationContext("개발자", "", nil, nil, nil, "", 0)
		if !strings.Contains(got, "(Q-Net API 자격증 목록 없음)") {
			t.Errorf("empty registry placeholder missing")
		}
	})

	t.Run("job info section included when present", func(t *testing.T) {
		got := BuildCertRecommendationContext("개발자", "", nil, quals, &websearch.JobResult{JobTitle: "백엔드", Skills: "Go"}, "", 0)
		if !strings.Contains(got, "직무명: 백엔드") || !strings.Contains(got, "필수 스킬·기술: Go") {
			t.Errorf("job info section missing or incomplete")
		}
	})
}
