package roadmap

import (
	"fmt"
	"regexp"
	"strings"

	"career-roadmap-be/pkg/qnet"
	"career-roadmap-be/pkg/websearch"
)

// GoalConcretizationContent is attached as a resource when the counselee has
// no target company, guiding them through goal refinement.
const GoalConcretizationContent = `【목표 구체화를 위한 상세 안내】

1. SMART 목표 설정
• Specific(구체적): "개발자"가 아니라 "백엔드/프론트엔드/데이터 엔지니어" 등 구체 직무
• Measurable(측정 가능): "역량 쌓기"가 아니라 "정보처리기사 취득", "포트폴리오 2개 완성"
• Achievable(달성 가능): 현재 학력·경력에서 1~2년 내 도달 가능한 수준
• Relevant(관련성): 전공·경험·관심사와 연결된 직무·산업
• Time-bound(기한): "3개월 내 자격증 취득", "6개월 내 인턴 지원" 등

2. 직무·산업 구체화
• 희망 직무를 1~2개로 좁히기: 채용 사이트(원티드, 잡코리아)에서 실제 공고 키워드로 검색해 비슷한 직무명 확인
• 관심 산업 정하기: IT·금융·제조·공공·스타트업 등, 직무와 맞는 산업 1~2개
• 목표 연봉·근무 형태(정규직/인턴/프리랜서) 범위 정하기

3. 역량 갭 분석
• 해당 직무 채용 공고 5~10개에서 공통 요구 역량·자격·경험 정리
• 현재 보유 역량과 비교해 부족한 항목(기술, 자격증, 프로젝트 경험 등) 리스트업
• 부족 역량 중 3개월·6개월·1년 단위로 보완할 항목 우선순위 정하기

4. 다음 단계
• 위 내용을 바탕으로 1단계(기초 역량)→2단계(역량 강화·포트폴리오)→3단계(취업·안착) 순서로 실행 계획 수립
• 상담 시 "구체적 직무명", "선호 산업", "갭 분석 결과"를 공유하면 더 맞춤형 로드맵을 만들 수 있습니다.`

var (
	metaCompanyAnalysisRe = regexp.MustCompile(`\s*채용\s*공고\s*·?\s*인재상\s*(검색\s*)?분석\s*기반\s*`)
	metaSearchBasedRe     = regexp.MustCompile(`\s*검색\s*기반\s*`)
	metaSearchResultRe    = regexp.MustCompile(`\s*\(검색\s*결과\)\s*`)
	metaWebSearchTrailRe  = regexp.MustCompile(`\s*[-–]\s*웹\s*검색.*?\.`)
	spacesRe              = regexp.MustCompile(`\s+`)

	vagueMarkerRe     = regexp.MustCompile(`맞춤형 역량 강화|최종 합격 및 안착|역량 강화`)
	concreteKeywordRe = regexp.MustCompile(`프로젝트|인턴|자격증|프로그래머스|백준|원티드|STAR|면접`)

	midActionRe   = regexp.MustCompile(`(?i)프로젝트|인턴|경험|자격증|포트폴리오|오픈소스|협업`)
	finalValueRe  = regexp.MustCompile(`(?i)프로그래머스|백준|원티드|면접|STAR|사이트`)
	finalActionRe = regexp.MustCompile(`(?i)면접|이력서|자기소개서|STAR|프로그래머스|백준|원티드|로켓펀치|온보딩`)
)

// StripMetaPhrases removes context narration like "검색 기반" from titles and
// actions, keeping only what the counselee actually does.
func StripMetaPhrases(s string) string {
	t := metaCompanyAnalysisRe.ReplaceAllString(s, " ")
	t = metaSearchBasedRe.ReplaceAllString(t, " ")
	t = metaSearchResultRe.ReplaceAllString(t, " ")
	t = metaWebSearchTrailRe.ReplaceAllString(t, " ")
	t = strings.TrimSpace(spacesRe.ReplaceAllString(t, " "))
	if strings.HasPrefix(t, "·") {
		t = strings.TrimSpace(t[len("·"):])
	}
	if t == "" {
		return s
	}
	return t
}

// concreteTitle replaces vague step titles with a concrete action or
// competency line when available.
func concreteTitle(step PlanStep, index int) string {
	raw := strings.TrimSpace(step.Title)
	if raw == "" {
		raw = fmt.Sprintf("Step%d", index+1)
	}
	raw = StripMetaPhrases(raw)

	vague := strings.Contains(raw, "목표 기업") ||
		(vagueMarkerRe.MatchString(raw) && len([]rune(raw)) < 50)
	if !vague {
		return raw
	}

	pickConcrete := func(items []string) string {
		for _, it := range items {
			if len([]rune(it)) > 25 && concreteKeywordRe.MatchString(it) {
				return it
			}
		}
		return ""
	}
	concrete := pickConcrete(step.Activities)
	if concrete == "" {
		concrete = pickConcrete(step.Competencies)
	}
	if concrete != "" {
		if runes := []rune(concrete); len(runes) > 60 {
			concrete = string(runes[:57]) + "…"
		}
		return StripMetaPhrases(concrete)
	}
	return raw
}

type certTemplate struct {
	name        string
	status      string
	color       string
	written     string
	practical   string
	difficulty  string
	defaultDate string
	description string
}

const (
	writtenEngineer = "필기: 100점 만점에 60점 이상 (과목당 40점 이상)"
	practicalPass   = "실기: 100점 만점에 60점 이상"
	writtenSixty    = "필기: 60점 이상 (100점 만점)"
)

var categoryCertTemplates = map[Category][]certTemplate{
	CategoryData: {
		{"ADsP (데이터분석 준전문가)", "취득 권장", "text-orange-600 bg-orange-50", writtenSixty, "실기: 없음", "난이도: 중하", "연 4회 (3월, 6월, 9월, 12월)", "데이터 분석 기초 지식과 데이터 분석 프로세스에 대한 이해를 인증하는 자격증입니다."},
		{"SQLD (SQL 개발자)", "취득 권장", "text-green-600 bg-green-50", writtenSixty, "실기: 없음", "난이도: 중하", "연 4회 (3월, 6월, 9월, 12월)", "데이터베이스와 데이터 모델링에 대한 지식을 바탕으로 SQL을 작성하고 활용할 수 있는 능력을 인증합니다."},
		{"빅데이터분석기사", "준비 중", "text-purple-600 bg-purple-50", "필기: 100점 만점에 60점 이상", practicalPass, "난이도: 상", "연 1회 (10월)", "빅데이터 분석 및 활용 능력을 종합적으로 평가하는 국가기술자격증입니다."},
	},
	CategoryCivil: {
		{"토목기사", "취득 권장", "text-blue-600 bg-blue-50", writtenEngineer, practicalPass, "난이도: 중상", "연 2회 (4월, 10월)", "토목공학에 관한 전문지식과 기술을 바탕으로 토목공사 설계, 시공, 감리 등의 업무를 수행할 수 있는 능력을 인증하는 국가기술자격증입니다."},
		{"건설기사", "취득 권장", "text-green-600 bg-green-50", writtenEngineer, practicalPass, "난이도: 중상", "연 2회 (4월, 10월)", "건설공학에 관한 전문지식과 기술을 바탕으로 건설공사 설계, 시공, 감리 등의 업무를 수행할 수 있는 능력을 인증하는 국가기술자격증입니다."},
		{"측량기사", "준비 중", "text-orange-600 bg-orange-50", writtenEngineer, practicalPass, "난이도: 중", "연 2회 (4월, 10월)", "측량에 관한 전문지식과 기술을 바탕으로 지형측량, 지적측량, 공공측량 등의 업무를 수행할 수 있는 능력을 인증하는 국가기술자격증입니다."},
		{"건설안전기사", "준비 중", "text-red-600 bg-red-50", writtenEngineer, practicalPass, "난이도: 중상", "연 2회 (4월, 10월)", "건설현장의 안전관리에 관한 전문지식과 기술을 바탕으로 안전관리 업무를 수행할 수 있는 능력을 인증하는 국가기술자격증입니다."},
	},
	CategorySafety: {
		{"산업안전기사", "취득 권장", "text-blue-600 bg-blue-50", writtenEngineer, practicalPass, "난이도: 중상", "연 2회 (4월, 10월)", "산업안전에 관한 전문지식과 기술을 바탕으로 산업현장의 안전관리 업무를 수행할 수 있는 능력을 인증하는 국가기술자격증입니다."},
		{"건설안전기사", "취득 권장", "text-green-600 bg-green-50", writtenEngineer, practicalPass, "난이도: 중상", "연 2회 (4월, 10월)", "건설현장의 안전관리에 관한 전문지식과 기술을 바탕으로 안전관리 업무를 수행할 수 있는 능력을 인증하는 국가기술자격증입니다."},
		{"소방설비기사", "준비 중", "text-red-600 bg-red-50", writtenEngineer, practicalPass, "난이도: 중상", "연 2회 (4월, 10월)", "소방설비에 관한 전문지식과 기술을 바탕으로 소방설비 설치, 유지관리 등의 업무를 수행할 수 있는 능력을 인증하는 국가기술자격증입니다."},
		{"위험물기능사", "준비 중", "text-orange-600 bg-orange-50", "필기: 100점 만점에 60점 이상", practicalPass, "난이도: 중", "연 2회 (4월, 10월)", "위험물의 취급 및 저장에 관한 전문지식과 기술을 인증하는 국가기술자격증입니다."},
	},
	CategoryMech: {
		{"기계기사", "취득 권장", "text-blue-600 bg-blue-50", writtenEngineer, practicalPass, "난이도: 중상", "연 2회 (4월, 10월)", "기계공학에 관한 전문지식과 기술을 바탕으로 기계설계, 제조, 유지관리 등의 업무를 수행할 수 있는 능력을 인증하는 국가기술자격증입니다."},
		{"자동차정비기사", "취득 권장", "text-green-600 bg-green-50", writtenEngineer, practicalPass, "난이도: 중", "연 2회 (4월, 10월)", "자동차 정비에 관한 전문지식과 기술을 바탕으로 자동차 점검, 수리, 정비 등의 업무를 수행할 수 있는 능력을 인증하는 국가기술자격증입니다."},
		{"용접기사", "준비 중", "text-orange-600 bg-orange-50", writtenEngineer, practicalPass, "난이도: 중", "연 2회 (4월, 10월)", "용접에 관한 전문지식과 기술을 바탕으로 용접 작업을 수행할 수 있는 능력을 인증하는 국가기술자격증입니다."},
		{"건설기계기사", "준비 중", "text-purple-600 bg-purple-50", writtenEngineer, practicalPass, "난이도: 중상", "연 2회 (4월, 10월)", "건설기계에 관한 전문지식과 기술을 바탕으로 건설기계의 설계, 제조, 유지관리 등의 업무를 수행할 수 있는 능력을 인증하는 국가기술자격증입니다."},
	},
	CategoryElec: {
		{"전기기사", "취득 권장", "text-blue-600 bg-blue-50", writtenEngineer, practicalPass, "난이도: 중상", "연 2회 (4월, 10월)", "전기에 관한 전문지식과 기술을 바탕으로 전기설비 설계, 시공, 유지관리 등의 업무를 수행할 수 있는 능력을 인증하는 국가기술자격증입니다."},
		{"전자기사", "취득 권장", "text-green-600 bg-green-50", writtenEngineer, practicalPass, "난이도: 중상", "연 2회 (4월, 10월)", "전자공학에 관한 전문지식과 기술을 바탕으로 전자설비 설계, 제조, 유지관리 등의 업무를 수행할 수 있는 능력을 인증하는 국가기술자격증입니다."},
		{"전기공사기사", "준비 중", "text-orange-600 bg-orange-50", writtenEngineer, practicalPass, "난이도: 중", "연 2회 (4월, 10월)", "전기공사에 관한 전문지식과 기술을 바탕으로 전기공사 설계, 시공, 감리 등의 업무를 수행할 수 있는 능력을 인증하는 국가기술자격증입니다."},
		{"산업계측기사", "준비 중", "text-purple-600 bg-purple-50", writtenEngineer, practicalPass, "난이도: 중", "연 2회 (4월, 10월)", "산업계측에 관한 전문지식과 기술을 바탕으로 계측기기 설계, 설치, 유지관리 등의 업무를 수행할 수 있는 능력을 인증하는 국가기술자격증입니다."},
	},
	CategoryGeneral: {
		{"정보처리기사", "취득 권장", "text-blue-600 bg-blue-50", writtenEngineer, practicalPass, "난이도: 중상", "연 3회 (3월, 7월, 10월)", "정보처리 관련 산업기사 자격을 취득한 자 또는 관련학과 졸업자 등이 응시할 수 있는 국가기술자격증입니다."},
		{"ADsP (데이터분석 준전문가)", "준비 중", "text-orange-600 bg-orange-50", writtenSixty, "실기: 없음", "난이도: 중하", "연 4회 (3월, 6월, 9월, 12월)", "데이터 분석 기초 지식과 데이터 분석 프로세스에 대한 이해를 인증하는 자격증입니다."},
		{"SQLD (SQL 개발자)", "취득 권장", "text-green-600 bg-green-50", writtenSixty, "실기: 없음", "난이도: 중하", "연 4회 (3월, 6월, 9월, 12월)", "데이터베이스와 데이터 모델링에 대한 지식을 바탕으로 SQL을 작성하고 활용할 수 있는 능력을 인증합니다."},
		{"컴퓨터활용능력 1급", "준비 중", "text-purple-600 bg-purple-50", "필기: 70점 이상 (100점 만점)", "실기: 70점 이상 (100점 만점)", "난이도: 중", "연 4회 (3월, 6월, 9월, 12월)", "컴퓨터 활용 능력을 평가하는 자격증으로, 엑셀, 액세스 등의 활용 능력을 인증합니다."},
	},
}

var educationPrograms = map[Category][]string{
	CategoryDev:     {"패스트캠퍼스 백엔드 개발 부트캠프", "네이버 커넥트재단 부스트캠프", "삼성 SW 아카데미", "코드스쿼드 마스터즈 코스", "우아한테크코스"},
	CategoryData:    {"패스트캠퍼스 데이터 사이언스 부트캠프", "네이버 커넥트재단 부스트캠프 AI", "삼성 SDS 멀티캠퍼스 데이터 분석 과정", "코드스테이츠 AI 부트캠프", "플래티넘 데이터 아카데미"},
	CategoryCivil:   {"한국건설기술인협회 토목기사 실무과정", "한국건설기술교육원 건설기사 양성과정", "한국토지주택공사 토목기술자 교육과정", "건설교육원 토목설계 실무과정", "한국건설산업교육원 토목시공 전문과정"},
	CategorySafety:  {"한국산업안전보건공단 산업안전기사 양성과정", "건설안전교육원 건설안전기사 실무과정", "한국안전교육원 산업안전 전문가 과정", "안전보건교육원 안전관리자 양성과정", "한국건설안전협회 건설안전 전문교육"},
	CategoryMech:    {"한국기계산업진흥회 기계기사 실무과정", "한국자동차산업협회 자동차정비 전문교육", "기계교육원 기계설계 실무과정", "한국산업인력공단 기계기사 양성과정", "기계기술교육원 기계제조 전문과정"},
	CategoryElec:    {"한국전기공사협회 전기기사 실무과정", "한국전자산업진흥회 전자기사 양성과정", "전기교육원 전기설비 실무과정", "한국산업인력공단 전기기사 전문교육", "전자기술교육원 전자설계 실무과정"},
	CategoryGeneral: {"패스트캠퍼스 IT 부트캠프", "네이버 커넥트재단 부스트캠프", "삼성 SW 아카데미", "코드스테이츠 부트캠프", "멀티캠퍼스 IT 과정"},
}

// findExamDate resolves a registry exam date for a certification name,
// falling back to the yearly default when the schedule has no match.
func findExamDate(schedules []qnet.ExamSchedule, name, defaultSchedule string) string {
	for _, exam := range schedules {
		desc := strings.TrimSpace(exam.Description)
		if desc == "" || !strings.Contains(name, desc) {
			continue
		}
		date := strings.TrimSpace(exam.DocExamStart)
		if date == "" {
			date = strings.TrimSpace(exam.PracExamStart)
		}
		if date != "" {
			return fmt.Sprintf("시험일정: %s (접수: %s~%s)", date, exam.DocRegStart, exam.DocRegEnd)
		}
	}
	return "시험일정: " + defaultSchedule
}

// buildFallbackCerts renders the category fallback table plus one education
// program into Certification values. The program index comes from the
// injected picker.
func (e *Engine) buildFallbackCerts(targetJob string, schedules []qnet.ExamSchedule) []Certification {
	category := Classify(targetJob)
	templates, ok := categoryCertTemplates[category]
	if !ok {
		templates = categoryCertTemplates[CategoryGeneral]
	}

	certs := make([]Certification, 0, len(templates)+1)
	for _, t := range templates {
		certs = append(certs, Certification{
			Type:   "자격증",
			Name:   t.name,
			Status: t.status,
			Color:  t.color,
			Details: &CertDetails{
				Written:      t.written,
				Practical:    t.practical,
				Difficulty:   t.difficulty,
				ExamSchedule: findExamDate(schedules, certScheduleLookupName(t.name), t.defaultDate),
				Description:  t.description,
			},
		})
	}

	programCategory := category
	if IsDevJob(targetJob) {
		programCategory = CategoryDev
	}
	programs, ok := educationPrograms[programCategory]
	if !ok {
		programs = educationPrograms[CategoryGeneral]
	}
	certs = append(certs, Certification{
		Type:   "교육",
		Name:   programs[e.pick(len(programs))],
		Status: "수료 권장",
		Color:  "text-indigo-600 bg-indigo-50",
	})
	return certs
}

// certScheduleLookupName maps display names to the registry naming used for
// schedule matching.
func certScheduleLookupName(name string) string {
	switch {
	case strings.HasPrefix(name, "ADsP"):
		return "데이터분석준전문가"
	case strings.HasPrefix(name, "SQLD"):
		return "SQL개발자"
	case strings.HasPrefix(name, "컴퓨터활용능력"):
		return "컴퓨터활용능력"
	default:
		return name
	}
}

var infoProcessingCert = certTemplate{
	"정보처리기사", "취득 권장", "text-blue-600 bg-blue-50",
	writtenEngineer, practicalPass, "난이도: 중상", "연 3회 (3월, 7월, 10월)",
	"정보처리 관련 산업기사 자격을 취득한 자 또는 관련학과 졸업자 등이 응시할 수 있는 국가기술자격증입니다.",
}

// BuildCertifications composes the certification list: registry matches
// first, then the category fallback table and an education program.
func (e *Engine) BuildCertifications(
	targetJob, major string,
	quals []qnet.Qualification,
	schedules []qnet.ExamSchedule,
	extractedKeywords []string,
) []Certification {
	certs := FilterRelevantQualifications(quals, schedules, targetJob, major, extractedKeywords)

	if len(certs) < 3 && (IsDevJob(targetJob) || IsDataJob(targetJob)) {
		hasInfoProcessing := false
		for _, c := range certs {
			if strings.Contains(c.Name, "정보처리") {
				hasInfoProcessing = true
				break
			}
		}
		if !hasInfoProcessing {
			t := infoProcessingCert
			certs = append([]Certification{{
				Type:   "자격증",
				Name:   t.name,
				Status: t.status,
				Color:  t.color,
				Details: &CertDetails{
					Written:      t.written,
					Practical:    t.practical,
					Difficulty:   t.difficulty,
					ExamSchedule: findExamDate(schedules, t.name, t.defaultDate),
					Description:  t.description,
				},
			}}, certs...)
		}
	}

	return append(certs, e.buildFallbackCerts(targetJob, schedules)...)
}

// PlanToMilestones maps generated plan steps to the milestone timeline. The
// first milestone starts in progress; later ones stay locked until advanced
// by the counselor.
func (e *Engine) PlanToMilestones(
	plan []PlanStep,
	summary string,
	targetCompany string,
	companyInfos []websearch.CompanyResult,
) []Milestone {
	info := make([]Milestone, 0, len(plan))
	for i, step := range plan {
		first := i == 0

		actionItems := make([]string, 0, len(step.Activities))
		for _, a := range step.Activities {
			actionItems = append(actionItems, StripMetaPhrases(a))
		}

		var resources []Resource
		if len(companyInfos) > 0 && (i == 1 || i == 2) {
			for _, co := range companyInfos {
				if co.TalentProfile != "" {
					resources = append(resources, Resource{Title: co.CompanyName + " 인재상", URL: "#", Type: "article", Content: truncateRunes(co.TalentProfile, 1500)})
				}
				if co.RecruitmentInfo != "" {
					resources = append(resources, Resource{Title: co.CompanyName + " 채용·공고 요약", URL: "#", Type: "article", Content: truncateRunes(co.RecruitmentInfo, 1500)})
				}
				if co.TechStack != "" {
					resources = append(resources, Resource{Title: co.CompanyName + " 기술 스택·개발 환경", URL: "#", Type: "article", Content: truncateRunes(co.TechStack, 1500)})
				}
			}
		}
		if targetCompany == "" && (i == 0 || i == 1) {
			resources = append(resources, Resource{Title: "목표 구체화 가이드", URL: "#", Type: "article", Content: GoalConcretizationContent})
		}
		if first && len(step.Qualifications) > 0 {
			title := strings.TrimSpace(step.Qualifications[0].Name)
			if title == "" {
				title = "자격 정보"
			}
			resources = append(resources, Resource{Title: title, URL: "#", Type: "article"})
		}
		if first && len(step.Industries) > 0 {
			industries := step.Industries
			if len(industries) > 3 {
				industries = industries[:3]
			}
			resources = append(resources, Resource{Title: "산업분야·대표기업: " + strings.Join(industries, ", "), URL: "#", Type: "article"})
		}
		if len(step.JobFamilies) > 0 {
			families := step.JobFamilies
			if len(families) > 2 {
				families = families[:2]
			}
			resources = append(resources, Resource{Title: "직업군: " + strings.Join(families, ", "), URL: "#", Type: "article"})
		}
		if len(resources) == 0 {
			resources = append(resources, Resource{Title: "진로 가이드", URL: "#", Type: "article"})
		}

		description := e.stepDescription(step, i, summary, targetCompany, actionItems)

		status := StatusLocked
		date := ""
		if first {
			status = StatusInProgress
			date = e.koreanDate()
		}
		info = append(info, Milestone{
			ID:          fmt.Sprintf("step-%d", i+1),
			Title:       concreteTitle(step, i),
			Description: description,
			Status:      status,
			Date:        date,
			QuizScore:   0,
			Resources:   resources,
			ActionItems: actionItems,
		})
	}

	if len(info) == 0 {
		info = append(info, Milestone{
			ID:          "step-1",
			Title:       "1단계: 목표 설정",
			Description: "상담 및 프로필을 바탕으로 목표를 구체화합니다.",
			Status:      StatusInProgress,
			Date:        e.koreanDate(),
			QuizScore:   0,
			Resources:   []Resource{{Title: "진로 가이드", URL: "#", Type: "article"}},
			ActionItems: []string{"목표 직무·기업 조사", "역량 갭 분석"},
		})
	}
	return info
}

func (e *Engine) stepDescription(step PlanStep, i int, summary, targetCompany string, actionItems []string) string {
	joinCompetencies := func() string { return strings.Join(step.Competencies, ". ") }

	switch {
	case summary != "" && i == 0:
		return summary
	case i == 1:
		if anyLongerThan(step.Competencies, 30) {
			return joinCompetencies()
		}
		if len(actionItems) > 0 {
			return joinFiltered(actionItems, midActionRe)
		}
		if len(step.Competencies) > 0 {
			return joinCompetencies()
		}
		if targetCompany != "" {
			return "목표 기업 맞춤형 역량 강화를 위한 구체적인 방안을 수립합니다."
		}
		return "목표 직무(직무목표)에 맞춘 역량 강화를 위한 구체적인 방안을 수립합니다."
	case i == 2:
		if anyMatches(step.Competencies, finalValueRe) {
			return joinCompetencies()
		}
		if len(actionItems) > 0 {
			return joinFiltered(actionItems, finalActionRe)
		}
		if len(step.Competencies) > 0 {
			return joinCompetencies()
		}
		if targetCompany != "" {
			return "최종 합격을 위한 전략 수립 및 면접 준비를 진행합니다."
		}
		return "목표 직무 달성을 위한 최종 합격 및 면접 전략 수립을 진행합니다."
	case len(step.Competencies) > 0:
		return joinCompetencies()
	default:
		return "단계별 목표를 진행합니다."
	}
}

func joinFiltered(items []string, re *regexp.Regexp) string {
	var relevant []string
	for _, it := range items {
		if re.MatchString(it) {
			relevant = append(relevant, it)
		}
	}
	if len(relevant) == 0 {
		relevant = items
	}
	if len(relevant) > 2 {
		relevant = relevant[:2]
	}
	return strings.Join(relevant, ". ")
}

func anyLongerThan(items []string, n int) bool {
	for _, it := range items {
		if len([]rune(it)) > n {
			return true
		}
	}
	return false
}

func anyMatches(items []string, re *regexp.Regexp) bool {
	for _, it := range items {
		if re.MatchString(it) {
			return true
		}
	}
	return false
}

func truncateRunes(s string, n int) string {
	runes := []rune(s)
	if len(runes) <= n {
		return s
	}
	return string(runes[:n])
}

func (e *Engine) koreanDate() string {
	t := e.now()
	return fmt.Sprintf("%d. %d. %d.", t.Year(), int(t.Month()), t.Day())
}
