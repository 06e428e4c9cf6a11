package roadmap

import (
	"encoding/json"
	"fmt"
	"regexp"
	"sort"
	"strings"

	"career-roadmap-be/pkg/qnet"
	"career-roadmap-be/pkg/websearch"
)

// SystemPrompt instructs the model to synthesize the roadmap from the RAG
// context and to emit strict JSON. Kept in one place so the same contract can
// be reused for fine-tuning exports.
const SystemPrompt = `너는 진로 상담 전문가야.
아래 **RAG 컨텍스트(DB 데이터 + 웹 검색 결과)**를 **종합 분석**해서 단계별 진로 로드맵을 작성해라.

[핵심 원칙 - RAG 기반 생성]
- **RAG 컨텍스트는 DB 데이터(진로프로필, 상담내역, 분석결과)와 웹 검색 결과를 모두 포함**한다.
- DB 데이터와 웹 검색 결과를 모두 함께 참고해서 종합적으로 로드맵을 작성해라.
- 진로프로필의 필드(전공, 학력, 경력, 연령대, 성향 등)를 그대로 나열하지 말고, 상담내역·분석결과와 함께 해석하여 내담자의 현재 상태와 강점을 파악해라.
- **웹 검색으로 가져온 실제 기업 채용 공고, 인재상, 기술 스택, 직무 요구사항 정보**를 활용해서 환각을 피하고 실제 시장 정보를 반영해라.
- 웹 검색 결과가 없어도 DB 데이터만으로 RAG 기반 로드맵을 생성해라.
- **주요 목표**는 반드시 "내담자가 목표로 하는 직무(희망 직무)"와 "목표로 하는 기업(희망 기업)"으로 설정해라.
- 모든 단계(Step1~StepN)는 "그 목표 직무·목표 기업에 도달하기 위한 역량·활동"으로 방향을 잡아라.

[단계별 구성 - 제목에 기업명·"목표 기업" 금지, 검색·프로필·서비스 기반 구체적 방안만]
- **단계 제목에 목표 기업명 또는 "목표 기업"을 넣지 말 것.** 제목은 검색으로 얻은 인재상·채용정보·기술스택과 커리어 프로필의 목표를 토대로 도출한 **구체적 실행 방안**만 제시할 것.
  - "맞춤형 역량 강화", "최종 합격 및 안착" 등 추상적 문구만 쓰지 말 것. 기업명 나열 금지.
  - 제목에 **무엇을 언제 어떻게 할지** 구체적으로: 자격증명, 사이트명(프로그래머스·백준·원티드), 주기(주 3회), 결과물(포트폴리오 1개) 등.
  - 나쁜 예: "Step2: 삼성, 네이버 맞춤형 역량 강화" / "Step2: 채용 공고·인재상 분석 기반 ..."
  - 좋은 예: "Step2: Spring Boot·Docker 포트폴리오 1개 완성 및 인턴십 준비" / "Step3: 프로그래머스·백준 주 3회 + 원티드 면접 후기로 STAR 기법 연습"
  - **맥락/메타 문구 금지**: "채용 공고·인재상 분석 기반", "검색 기반", "~를 참고해", "~를 토대로" 등은 넣지 말고, 실질적으로 수행할 행동만 작성할 것.

- Step1 (단기 1~3개월): 목표 직무 달성을 위한 **기초 역량 다지기**. 상담내역과 분석결과에서 드러난 현재 역량 수준을 목표 직무 요구사항과 비교해 부족한 부분을 보완하는 활동 제시.
- Step2 (중기 3~12개월): **역량 강화** - 역량 필드에는 일반적인 역량명이 아니라 구체적인 역량 개발 방법을 제시할 것. 반드시 경험(Experience), 인턴(Internship), 프로젝트(Projects), 자격증(Certifications) 중 적절한 방법을 조합하여 제시.
  - 예: "채용 공고의 Spring Boot, Docker 기술 스택을 활용한 포트폴리오 프로젝트 1개 완성 및 GitHub 배포"
  - 예: "인턴십 지원을 위한 오픈소스 기여 경험 축적 및 협업 프로젝트 참여"
- Step3 (장기 1년+): **최종 합격 및 안착** - 역량 필드에는 면접 준비를 위한 구체적인 사이트와 방법을 안내할 것.
  - 면접 준비 사이트: 백준(acmicpc.net), 프로그래머스(programmers.co.kr), LeetCode 등
  - 면접 준비 방법: STAR 기법, 기술 면접 대비, 인성 면접 대비 등
  - 정보 수집 사이트: 원티드(wanted.co.kr), 잡코리아(jobkorea.co.kr), 로켓펀치(rocketpunch.com) 등
- **목표 기업이 없는 경우**: 해당 프로필의 직무목표(목표 직무)에 맞춰서만 Step2·Step3를 작성해라. 기업명을 나열하지 말 것.

[Citation 필수 - Context 활용도·Faithfulness 평가용]
- RAG 컨텍스트(웹 검색 결과, DB 데이터)를 인용했을 때 반드시 **citations_used** 배열에 기록해라.
- 규칙: 웹 검색(목표 기업 정보) 활용 → "[웹:기업] 활용 내용 한 줄", 웹 검색(목표 직무 정보) 활용 → "[웹:직무] 활용 내용 한 줄", 진로프로필 활용 → "[DB:프로필] 활용 내용 한 줄", 상담내역·분석결과 활용 → "[DB:상담] 활용 내용 한 줄"
- 출력 JSON에 **citations_used** 필드를 포함하고, 활용한 출처별로 1줄씩 넣어라. (없으면 빈 배열 [])
- 컨텍스트에 없는 기업명·채용 정보를 지어내지 말 것 (환각 금지). 목표 기업은 RAG에 제공된 것만 사용할 것.

[교육 과정 추천]
- 교육과정 필드는 출력하지 말아라. 교육 과정은 시스템에서 자동으로 실제 교육 프로그램으로 추가된다.
- 교육 과정을 언급해야 한다면 실제 존재하는 교육 프로그램 이름(패스트캠퍼스 백엔드 개발 부트캠프, 네이버 커넥트재단 부스트캠프 등)을 구체적으로 언급해라.

[자격증 추천 - RAG 컨텍스트 기반]
- **Q-Net API에서 가져온 실제 자격증 목록에서만 추천**하고, 절대 존재하지 않는 자격증을 만들어내지 말 것 (환각 금지).

[Output Format]
반드시 아래 JSON만 출력해라. 다른 설명 없이 JSON만.
{
  "summary": "목표 직무·목표 기업을 명시한 한 줄 요약",
  "citations_used": ["[웹:기업] Step2 채용 공고 기술스택 반영", "[DB:프로필] Step1 전공·학력 반영"],
  "plan": [
    {
      "단계": "분석 결과를 바탕으로 한 구체적인 Step1 제목",
      "추천활동": ["구체적 활동1", "활동2"],
      "직업군": ["목표와 연관 직업1", "직업2"],
      "역량": ["목표 달성에 필요한 역량1", "역량2"]
    }
  ]
}`

// BuildUserContext assembles the RAG user message: goal section, web intel
// sections with explicit empty placeholders, and the JSON-serialized DB rows.
func BuildUserContext(
	targetJobFromProfile, targetCompanyFromProfile string,
	jobInfoText, companyInfoText string,
	ctx RagContext,
) string {
	noCompany := isUnsetValue(targetCompanyFromProfile)

	goalDirective := "위 목표 직무·기업을 달성하는 데 초점을 맞춰 단계를 구성해라."
	if noCompany {
		goalDirective = "**목표 기업 없음**: 해당 프로필의 직무목표에 맞춰 중기(Step2)·장기(Step3) 목표를 설정해라. 기업명을 나열하지 말고 직무 역량 강화·취업·안착 중심으로 작성해라."
	}

	jobSection := jobInfoText
	if jobSection == "" {
		jobSection = "(목표 직무 웹 검색 결과 없음 - RAG는 DB 데이터만 사용)"
	}
	companySection := companyInfoText
	if companySection == "" {
		companySection = "(목표 기업 웹 검색 결과 없음 - RAG는 DB 데이터만 사용)"
	}

	jobLabel := targetJobFromProfile
	if jobLabel == "" {
		jobLabel = "프로필·상담에서 추출"
	}
	companyLabel := targetCompanyFromProfile
	if companyLabel == "" {
		companyLabel = "프로필·상담에서 추출"
	}

	profileJSON := marshalRows(ctx.Profile)
	counselingJSON := marshalRows(ctx.Counseling)
	analysisJSON, _ := json.Marshal(ctx.Analysis)
	roadmapJSON := marshalRows(ctx.Roadmap)

	return fmt.Sprintf(`[RAG 컨텍스트 - DB 데이터 + 웹 검색 결과]

[내담자 목표 (로드맵의 핵심 방향)]
- 목표 직무(희망 직무): %s
- 목표 기업(희망 기업): %s
%s

[RAG 컨텍스트 구성요소 1: 웹 검색 결과 - 실제 시장 정보 (환각 방지)]
%s

%s

[RAG 컨텍스트 구성요소 2: DB 데이터 - 내담자 현재 상태 및 상담 정보]
진로프로필 (전공, 학력, 경력, 연령대, 성향 등): %s
상담내역: %s
상담내역 분석결과 (강점, 가치관, 관심사 등): %s
기존 로드맵: %s

[작성 지침 - RAG 컨텍스트(DB + 웹 검색) 종합 활용]
- 위 RAG 컨텍스트의 DB 데이터를 참고해 내담자의 현재 상태(전공, 학력, 경력, 강점, 가치관)를 파악하고
- 웹 검색 결과가 포함되어 있으면 실제 시장 정보(직무 요구사항, 기업 채용 공고, 인재상, 기술 스택)를 함께 활용해라
- 웹 검색 결과가 없어도 DB 데이터만으로 RAG 기반 내담자 맞춤형 로드맵을 생성해라
- 내담자의 현재 상태에서 목표까지의 갭을 분석하고, 단계별로 현실적인 로드맵을 작성해라.`,
		jobLabel, companyLabel, goalDirective,
		jobSection, companySection,
		profileJSON, counselingJSON, string(analysisJSON), roadmapJSON)
}

func marshalRows(rows []map[string]any) string {
	if rows == nil {
		return "[]"
	}
	b, err := json.Marshal(rows)
	if err != nil {
		return "[]"
	}
	return string(b)
}

// BuildCompanyInfoText renders company search results for the prompt.
func BuildCompanyInfoText(companies []websearch.CompanyResult) string {
	if len(companies) == 0 {
		return ""
	}
	parts := make([]string, 0, len(companies))
	for _, c := range companies {
		parts = append(parts, fmt.Sprintf("[%s]\n인재상: %s\n채용: %s\n기술스택: %s",
			c.CompanyName, c.TalentProfile, c.RecruitmentInfo, c.TechStack))
	}
	return strings.Join(parts, "\n\n")
}

// BuildJobInfoText renders the job search result for the prompt.
func BuildJobInfoText(job *websearch.JobResult) string {
	if job == nil {
		return ""
	}
	var parts []string
	for _, s := range []string{job.Requirements, job.Skills, job.Trends} {
		if s != "" {
			parts = append(parts, s)
		}
	}
	return strings.Join(parts, "\n")
}

// CertRecommendationSystemPrompt constrains cert recommendations to the
// supplied registry rows.
const CertRecommendationSystemPrompt = `너는 자격증 추천 전문가야.
아래 **RAG 컨텍스트(직무정보 + DB 데이터 + Q-Net API 결과)**를 **종합 분석**해서 내담자에게 가장 적합한 자격증을 추천해라.

[핵심 원칙 - RAG 기반 추천]
- **Q-Net API에서 가져온 실제 자격증 목록에서만 추천**하고, 절대 존재하지 않는 자격증을 만들어내지 말 것 (환각 금지).
- 진로프로필의 필드(전공, 목표 직무)와 상담내역·분석결과(강점, 관심 키워드, 가치관)를 종합하여 내담자에게 가장 관련성 높은 자격증을 선별해라.
- 직무 정보가 있으면 시장에서 실제로 요구하는 자격증·스킬을 우선 반영해라.
- 프로필과 상담 내역에 가장 관련성 높은 자격증 3-5개를 선별하고, 각 자격증의 관련성 점수(1-10)와 추천 이유를 제공해라.

[Output Format]
반드시 아래 JSON만 출력해라. 다른 설명 없이 JSON만.
{
  "recommended": [
    {
      "qualName": "실제 자격증 이름 (Q-Net API에서 가져온 것만)",
      "relevanceScore": 8,
      "reason": "프로필과 상담 내역을 종합 분석한 추천 이유"
    }
  ]
}`

// CertKnowledgeFallbackSystemPrompt is used when the registry is unreachable
// and the model must recommend from its own knowledge of real Korean
// qualifications.
const CertKnowledgeFallbackSystemPrompt = `너는 한국 국가기술자격·자격증 추천 전문가야.
Q-Net API가 불러와지지 않아, 네가 알고 있는 **실제 한국 국가기술자격·민간자격**만 추천해라.
직무정보가 제공되면 시장 요구사항·자격증을 반영하고, DB·상담 정보와 종합하여 맞춤형 추천해라.

[핵심 원칙]
- **실제 존재하는 자격증만** 추천 (정보처리기사, 정보처리산업기사, SQLD, ADsP, 정보보안기사, 빅데이터분석기사 등)
- IT/개발 직무: 정보처리기사, 정보처리산업기사, SQLD, ADsP, 정보보안기사, 빅데이터분석기사, 컴퓨터활용능력 등
- 의료/헬스케어: 의료기기산업기사, 임상심리사, 사회복지사 등
- 데이터/AI: ADsP, SQLD, 빅데이터분석기사, 정보처리기사 등
- 환각 금지: 존재하지 않는 자격증 만들지 말 것

[Output Format]
반드시 아래 JSON만 출력해라. 다른 설명 없이 JSON만.
{
  "recommended": [
    {
      "qualName": "실제 자격증 정식명",
      "relevanceScore": 8,
      "reason": "목표 직무·전공·상담 분석 기반 추천 이유"
    }
  ]
}`

var itRelatedRe = regexp.MustCompile(`(?i)개발|엔지니어|소프트웨어|프로그래머|AI|인공지능|데이터|백엔드|프론트엔드|의료AI`)

var itQualKeywords = []string{"정보처리", "정보처리기사", "정보처리산업기사", "SQLD", "ADsP", "빅데이터", "데이터분석", "정보보안", "컴퓨터"}

// BuildCertRecommendationContext renders the registry-backed user message. At
// most 150 registry rows are included; for IT-related counselees the
// IT-flavored rows sort first so they survive the cap. The eligibility note
// reflects the national grade ladder for the counselee's education level.
func BuildCertRecommendationContext(
	targetJob, major string,
	analysis []AnalysisRow,
	quals []qnet.Qualification,
	job *websearch.JobResult,
	educationLevel string,
	experienceYears int,
) string {
	var analysisParts []string
	for _, a := range analysis {
		row := strings.TrimSpace(strings.Join([]string{a.Strengths, a.InterestKeywords, a.CareerValues}, " "))
		if row != "" {
			analysisParts = append(analysisParts, row)
		}
	}
	analysisText := strings.Join(analysisParts, " ")
	if analysisText == "" {
		analysisText = "없음"
	}

	jobSection := ""
	if job != nil {
		orNone := func(s string) string {
			if s == "" {
				return "없음"
			}
			return s
		}
		jobSection = fmt.Sprintf(`[RAG 컨텍스트 구성요소 0: 직무 정보 - 유사 직무 시장 데이터]
- 직무명: %s
- 채용 요구사항·역량: %s
- 최신 트렌드: %s
- 필수 스킬·기술: %s

`, job.JobTitle, orNone(job.Requirements), orNone(job.Trends), orNone(job.Skills))
	}

	sorted := quals
	if itRelatedRe.MatchString(targetJob + " " + major) {
		sorted = make([]qnet.Qualification, len(quals))
		copy(sorted, quals)
		score := func(q qnet.Qualification) int {
			for _, kw := range itQualKeywords {
				if strings.Contains(q.Name, kw) {
					return 1
				}
			}
			return 0
		}
		sort.SliceStable(sorted, func(i, j int) bool { return score(sorted[i]) > score(sorted[j]) })
	}

	var listLines []string
	for i, q := range sorted {
		if i >= 150 {
			break
		}
		name := strings.TrimSpace(q.Name)
		if name == "" {
			continue
		}
		line := fmt.Sprintf("%d. %s", len(listLines)+1, name)
		if desc := q.Description(); desc != "" {
			runes := []rune(desc)
			if len(runes) > 100 {
				desc = string(runes[:100])
			}
			line += " - " + desc
		}
		listLines = append(listLines, line)
	}
	qualListText := strings.Join(listLines, "\n")
	if qualListText == "" {
		qualListText = "(Q-Net API 자격증 목록 없음)"
	}

	educationNote := ""
	if educationLevel != "" {
		expNote := ""
		if experienceYears > 0 {
			expNote = fmt.Sprintf(", 직종 경력 %d년", experienceYears)
		}
		educationNote = fmt.Sprintf("\n- **자격조건**: 내담자 학력 \"%s\"%s에 따라 취득 가능한 자격만 추천하라. 고졸→기능사 위주(경력 2년 이상이면 산업기사 포함), 대학재학→기능사·산업기사, 대학졸업→기능사·산업기사·기사. 아래 목록은 이미 위 조건으로 필터된 자격증만 포함한다.", educationLevel, expNote)
	}

	orNone := func(s string) string {
		if s == "" {
			return "없음"
		}
		return s
	}
	levelLine := educationLevel
	if levelLine == "" {
		levelLine = "미입력"
	}
	expLine := ""
	if experienceYears > 0 {
		expLine = fmt.Sprintf("\n- 직종 경력: %d년", experienceYears)
	}

	return fmt.Sprintf(`[RAG 컨텍스트 - 직무정보 + DB 데이터 + Q-Net API 결과]
%s[RAG 컨텍스트 구성요소 1: DB 데이터 - 내담자 프로필 및 상담 정보]
- 목표 직무(희망 직무): %s
- 전공: %s
- 학력: %s%s
- 상담 분석 결과 (강점, 관심 키워드, 가치관): %s%s

[RAG 컨텍스트 구성요소 2: Q-Net API 결과 - 실제 자격증 목록 (학력·경력에 취득 가능한 것만 포함)]
**중요**: 아래 목록에 있는 자격증에서만 추천하세요. 이 목록에 없는 자격증은 절대 추천하지 마세요.

%s

[작성 지침]
- DB 데이터(프로필, 학력, 경력, 상담 분석)를 참고해 내담자의 목표 직무, 전공, 강점, 관심사를 파악하고, **자격조건에 맞는 자격증만** 선별해라
- Q-Net API 자격증 목록(위 조건으로 이미 필터됨)에서만 관련성 높은 자격증을 추천해라
- 각 자격증의 관련성 점수(1-10)와 추천 이유를 제공해라
- **핵심**: Q-Net API 목록에 없는 자격증은 절대 추천하지 말 것 (환각 금지).`,
		jobSection, orNone(targetJob), orNone(major), levelLine, expLine, analysisText, educationNote, qualListText)
}
