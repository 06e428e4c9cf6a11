package roadmap

import (
	"context"
	"fmt"
	"strings"

	"golang.org/x/sync/errgroup"

	"career-roadmap-be/pkg/websearch"
)

type searchSummary struct {
	techStack     string
	talentProfile string
	recruitment   string
	jobSkills     string
}

func summarizeFromSearch(companies []websearch.CompanyResult, job *websearch.JobResult) searchSummary {
	collect := func(pick func(websearch.CompanyResult) string, max int) string {
		var parts []string
		for _, c := range companies {
			if v := pick(c); v != "" {
				parts = append(parts, v)
			}
		}
		if len(parts) == 0 {
			return ""
		}
		joined := strings.TrimSpace(spacesRe.ReplaceAllString(strings.Join(parts, " "), " "))
		runes := []rune(joined)
		if len(runes) > max {
			return strings.TrimSpace(string(runes[:max])) + "…"
		}
		return joined
	}

	s := searchSummary{
		techStack:     collect(func(c websearch.CompanyResult) string { return c.TechStack }, 120),
		talentProfile: collect(func(c websearch.CompanyResult) string { return c.TalentProfile }, 100),
		recruitment:   collect(func(c websearch.CompanyResult) string { return c.RecruitmentInfo }, 100),
	}
	if job != nil {
		s.jobSkills = job.Skills
		if s.jobSkills == "" {
			s.jobSkills = job.Requirements
		}
	}
	return s
}

func (s searchSummary) hasData(companies []websearch.CompanyResult) bool {
	return len(companies) > 0 || s.techStack != "" || s.talentProfile != "" || s.recruitment != "" || s.jobSkills != ""
}

type ragSummary struct {
	strengths string
	interests string
}

func summarizeFromRag(analysis []AnalysisRow) ragSummary {
	var strengths, interests []string
	for _, a := range analysis {
		if a.Strengths != "" {
			strengths = append(strengths, a.Strengths)
		}
		if a.InterestKeywords != "" {
			interests = append(interests, a.InterestKeywords)
		} else if a.CareerValues != "" {
			interests = append(interests, a.CareerValues)
		}
	}
	return ragSummary{
		strengths: truncateRunes(strings.Join(strengths, " "), 80),
		interests: truncateRunes(strings.Join(interests, " "), 80),
	}
}

func isLowerEducation(level string) bool {
	return level == "고등학교 졸업" || level == "전문대 졸업" || level == "대학교 재학"
}

// buildRuleBased is the deterministic fallback: a fixed 3 phase plan shaped by
// the profile and whatever enrichment data arrives within its own timeouts.
func (e *Engine) buildRuleBased(ctx context.Context, client ClientData, ragCtx RagContext) *Plan {
	rag := summarizeFromRag(ragCtx.Analysis)

	targetJob := ResolveTargetJob(client.RecommendedCareers)
	targetCompany := ResolveTargetCompany(client.TargetCompany)
	companyNames := splitCompanyNames(targetCompany)

	var (
		companies []websearch.CompanyResult
		job       *websearch.JobResult
		registry  registryPair
	)
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		if len(companyNames) == 0 || e.adapters.SearchCompanies == nil {
			return nil
		}
		companies = raceNeutral(gctx, e.cfg.RuleSearchTimeout, nil, func(ctx context.Context) ([]websearch.CompanyResult, error) {
			return e.adapters.SearchCompanies(ctx, companyNames)
		})
		return nil
	})
	g.Go(func() error {
		if e.adapters.SearchJob == nil {
			return nil
		}
		if found, err := e.adapters.SearchJob(gctx, targetJob); err == nil {
			job = found
		}
		return nil
	})
	g.Go(func() error {
		registry = raceNeutral(gctx, e.cfg.RegistryTimeout, registryPair{}, func(ctx context.Context) (registryPair, error) {
			var p registryPair
			rg, rctx := errgroup.WithContext(ctx)
			rg.Go(func() error {
				if e.adapters.FetchQualifications == nil {
					return nil
				}
				quals, err := e.adapters.FetchQualifications(rctx)
				if err == nil {
					p.quals = quals
				}
				return nil
			})
			rg.Go(func() error {
				if e.adapters.FetchExamSchedules == nil {
					return nil
				}
				schedules, err := e.adapters.FetchExamSchedules(rctx)
				if err == nil {
					p.schedules = schedules
				}
				return nil
			})
			err := rg.Wait()
			return p, err
		})
		return nil
	})
	_ = g.Wait()

	quals := FilterEligibleQualifications(registry.quals, client.EducationLevel, client.WorkExperienceYears)
	schedules := registry.schedules
	search := summarizeFromSearch(companies, job)

	educationLevel := client.EducationLevel
	if educationLevel == "" {
		educationLevel = "정보 없음"
	}
	major := client.Major
	if major == "" {
		major = "전공 분야"
	}
	experience := client.WorkExperience
	isDev := IsDevJob(targetJob)
	hasSearch := search.hasData(companies)

	// Phase 1: profile driven foundation work.
	var phase1Title string
	switch {
	case isLowerEducation(educationLevel):
		phase1Title = fmt.Sprintf("1단계: %s 기초 역량 확보 및 자격증 준비", targetJob)
	case len([]rune(experience)) > 20:
		phase1Title = fmt.Sprintf("1단계: 경력 활용 %s 전문성 강화", targetJob)
	default:
		phase1Title = fmt.Sprintf("1단계: %s 실무 역량 기반 구축", targetJob)
	}
	phase1Desc := fmt.Sprintf("목표 직무(%s) 달성을 위한 기초 역량을 다집니다.", targetJob)

	phase1Actions := []string{
		"전공 지식 증명을 위해 **정보처리기사** 필기 일정 수립 및 3개월 내 1차 취득 목표",
		fmt.Sprintf("%s 실무 연계: %s 관련 소규모 프로젝트 1개 이상 기획·구현 (Git 저장소 관리)", major, targetJob),
		"협업 도구 숙달: Git 브랜치 전략, Jira 이슈/스프린트 작성 연습",
		"데이터 기반 문제 해결: 실무 데이터 분석 사례 1건 정리 (의사결정 근거 문서화)",
	}
	if isLowerEducation(educationLevel) {
		phase1Actions[0] = "정보처리기사 또는 관련 기초 자격증 준비 (필기 합격 목표)"
		phase1Actions[1] = fmt.Sprintf("%s 기초 이론 정리 및 %s 진로와 연결한 학습 로드맵 작성", major, targetJob)
	}
	if rag.interests != "" {
		phase1Actions = append(phase1Actions, "관심 분야를 직무와 연결한 학습 계획 반영")
	}

	// Phase 2: search enriched capability building.
	var (
		phase2Title   string
		phase2Desc    string
		phase2Actions []string
	)
	if hasSearch && (search.techStack != "" || search.recruitment != "" || search.talentProfile != "") {
		techLabel := ""
		if search.techStack != "" {
			runes := []rune(search.techStack)
			if len(runes) > 60 {
				techLabel = string(runes[:60]) + "…"
			} else {
				techLabel = search.techStack
			}
		}
		switch {
		case isDev && techLabel != "":
			phase2Title = fmt.Sprintf("2단계: %s 포트폴리오 1~2개 완성 및 인턴십·오픈소스 기여 준비", techLabel)
		case isDev:
			phase2Title = "2단계: 포트폴리오 1~2개 완성 및 인턴십·오픈소스 기여 준비"
		default:
			phase2Title = "2단계: 포트폴리오·자격증·실습으로 역량 보완 및 지원 준비"
		}
		phase2Desc = "포트폴리오 완성·오픈소스 기여·자격증 등 구체적 역량 개발을 실행합니다."
		certAction := "직무 관련 자격증(ADsP 등) 준비 및 데이터·분석 도구 실습"
		if isDev {
			certAction = "AWS 또는 GCP 실습 환경 구축 및 관련 자격증 준비"
		}
		phase2Actions = []string{
			"요구 기술 스택을 분석하고, 해당 기술을 활용한 포트폴리오 프로젝트 1~2개 기획",
			"추구 인재상에 맞춰 내 강점과 연결한 차별화 포인트를 정리해 프로젝트에 반영",
			"아키텍처·실무 스택 학습 후 프로젝트에 적용",
			certAction,
			"원티드·로켓펀치에서 채용 사이클·지원 절차 확인 및 네트워킹·설명회 일정 파악",
		}
	} else {
		phase2Title = fmt.Sprintf("2단계: %s 포트폴리오 1~2개 완성 및 관련 자격증·인턴 지원 준비", targetJob)
		phase2Desc = fmt.Sprintf("%s 역량 강화: 포트폴리오·인턴·자격증 등으로 실무 역량을 개발합니다.", targetJob)
		cloudAction := "데이터 분석/리포트 실무 사례 1건 정리 및 시각화 도구 활용"
		if isDev {
			cloudAction = "AWS 또는 직무 핵심 도구 활용 프로젝트 1건 추가 및 클라우드 배포 경험 축적"
		}
		phase2Actions = []string{
			fmt.Sprintf("%s 직무 기술서 및 실제 채용 공고를 분석하여 역량 갭 분석 및 보완 학습 계획 수립", targetJob),
			"포트폴리오용 실무 결과물 1~2개 완성 (Git, 문서화, 배포 URL 포함)",
			cloudAction,
			"희망 기업 리스트업 및 각 기업별 채용 사이클·지원 전략 상세 정리",
		}
	}

	// Phase 3: interview and landing.
	phase3Title := "3단계: 원티드·잡코리아 면접 후기 수집 및 STAR 기법으로 스토리텔링·이력서 맞춤 수정"
	if isDev {
		phase3Title = "3단계: 프로그래머스·백준 코딩테스트 주 3회 + 원티드 면접 후기로 STAR 기법 연습"
	}
	phase3Desc := "프로그래머스(programmers.co.kr)·백준(BOJ) 코딩테스트 연습, 원티드(wanted.co.kr) 면접 후기 참고 및 STAR 기법 스토리텔링 연습을 진행합니다."
	var phase3Actions []string
	if hasSearch {
		phase3Actions = []string{
			"이력서·자기소개서 초안 작성 (인재상과 내 경험 연결) 후 피드백 2회 이상 반영",
			"면접 형식(기술/인성) 확인 후 예상 질문 리스트 작성 및 STAR 기법 스토리텔링 연습",
			"채용 프로세스(서류→코딩테스트→기술면접→인성면접)에 맞춰 단계별 체크리스트·일정 수립",
			"입사 후 3개월 목표(온보딩·팀 적응·첫 프로젝트) 정리",
		}
	} else {
		phase3Actions = []string{
			"목표 기업별 이력서·자기소개서 버전 관리 및 인재상에 맞춘 맞춤 수정",
			"역량 기반 면접 스토리 및 기술 질문 대비 자료 정리 (STAR 기법 활용, 포트폴리오 기반 질문 대비)",
			"지원 일정·합격/불합격 피드백 기록으로 전략 보완 및 다음 지원에 반영",
			"입사 후 단기 목표 설정 (온보딩 완료, 첫 프로젝트 참여, 팀 적응 등)",
		}
	}

	var step2Resources, step3Resources []Resource
	for _, co := range companies {
		if co.TalentProfile != "" {
			talent := Resource{Title: co.CompanyName + " 인재상", URL: "#", Type: "article", Content: truncateRunes(co.TalentProfile, 1500)}
			step2Resources = append([]Resource{talent}, step2Resources...)
			step3Resources = append(step3Resources, talent)
		}
		if co.RecruitmentInfo != "" {
			step2Resources = append(step2Resources, Resource{Title: co.CompanyName + " 채용·공고 요약", URL: "#", Type: "article", Content: truncateRunes(co.RecruitmentInfo, 1500)})
		}
		if co.TechStack != "" {
			step2Resources = append(step2Resources, Resource{Title: co.CompanyName + " 기술 스택·개발 환경", URL: "#", Type: "article", Content: truncateRunes(co.TechStack, 1500)})
		}
	}
	if len(step2Resources) == 0 {
		step2Resources = append(step2Resources, Resource{Title: "직무 기술 가이드", URL: "#", Type: "article"})
	}
	goalResource := Resource{Title: "목표 구체화 가이드", URL: "#", Type: "article", Content: GoalConcretizationContent}
	if targetCompany == "" {
		step2Resources = append(step2Resources, goalResource)
	}
	step1Resources := []Resource{{Title: "실무 역량 강화 가이드", URL: "#", Type: "video"}}
	if targetCompany == "" {
		step1Resources = append(step1Resources, goalResource)
	}

	info := []Milestone{
		{ID: "step-1", Title: phase1Title, Description: phase1Desc, Status: StatusInProgress, Date: e.koreanDate(), QuizScore: 0, Resources: step1Resources, ActionItems: phase1Actions},
		{ID: "step-2", Title: phase2Title, Description: phase2Desc, Status: StatusLocked, Date: "", QuizScore: 0, Resources: step2Resources, ActionItems: phase2Actions},
		{ID: "step-3", Title: phase3Title, Description: phase3Desc, Status: StatusLocked, Date: "", QuizScore: 0, Resources: step3Resources, ActionItems: phase3Actions},
	}

	extractedKw := ExtractKeywordsFromAnalysis(ragCtx.Analysis)

	return &Plan{
		Info:          info,
		DynamicSkills: ComputeCompetencies(client, ragCtx.Analysis, targetJob, targetCompany, ""),
		DynamicCerts:  e.BuildCertifications(targetJob, major, quals, schedules, extractedKw),
		TargetJob:     targetJob,
		TargetCompany: targetCompany,
	}
}
