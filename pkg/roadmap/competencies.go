package roadmap

import (
	"regexp"
	"strings"
)

var analysisSplitRe = regexp.MustCompile(`[,\s·/]+`)

// ExtractKeywordsFromAnalysis pulls filter keywords out of the consultation
// analysis rows (strengths, interest keywords, values).
func ExtractKeywordsFromAnalysis(analysis []AnalysisRow) []string {
	var raw []string
	for _, a := range analysis {
		if a.Strengths != "" {
			raw = append(raw, a.Strengths)
		}
		if a.InterestKeywords != "" {
			raw = append(raw, a.InterestKeywords)
		}
		if a.CareerValues != "" {
			raw = append(raw, a.CareerValues)
		}
	}
	text := strings.TrimSpace(strings.Join(raw, " "))
	if text == "" {
		return nil
	}
	var keywords []string
	for _, k := range analysisSplitRe.Split(text, -1) {
		k = strings.TrimSpace(k)
		if len([]rune(k)) > 1 {
			keywords = append(keywords, k)
		}
	}
	return keywords
}

var keyPointRe = regexp.MustCompile(`(?i)역량|능력|경험|자격|스택|개발|관리|테스트|협업|분석|설계|운영|품질|데이터|API|프로젝트`)

// summarizeToKeyPoints condenses a long requirements string to at most three
// comma segments, preferring segments naming skills or experience.
func summarizeToKeyPoints(text string, maxSegments int) string {
	trimmed := strings.TrimSpace(text)
	if len([]rune(trimmed)) <= 100 {
		return trimmed
	}
	var segments []string
	for _, s := range regexp.MustCompile(`[,·]`).Split(trimmed, -1) {
		s = strings.TrimSpace(s)
		if len([]rune(s)) > 2 {
			segments = append(segments, s)
		}
	}
	var key, fallback []string
	for _, s := range segments {
		n := len([]rune(s))
		if keyPointRe.MatchString(s) && n <= 60 {
			key = append(key, s)
		}
		if n >= 5 && n <= 50 {
			fallback = append(fallback, s)
		}
	}
	candidates := key
	if len(candidates) == 0 {
		candidates = fallback
	}
	if len(candidates) > maxSegments {
		candidates = candidates[:maxSegments]
	}
	if len(candidates) > 0 {
		return strings.Join(candidates, ", ")
	}
	first := strings.TrimSpace(strings.SplitN(trimmed, ".", 2)[0])
	if first != "" && len([]rune(first)) <= 120 {
		return first
	}
	runes := []rune(trimmed)
	if len(runes) > 100 {
		return strings.TrimSpace(string(runes[:100])) + "…"
	}
	return trimmed
}

// ConcreteRequiredCompetencies is the fixed fallback table describing what a
// job family actually requires, used when no web-sourced requirements digest
// is available.
func ConcreteRequiredCompetencies(targetJob, major string) string {
	j := strings.ToLower(targetJob)
	m := strings.ToLower(major)

	match := func(s, pattern string) bool { return regexp.MustCompile(`(?i)` + pattern).MatchString(s) }

	isMedicalEng := match(m, `의학공학|의료공학|의료기기|바이오의공학|바이오공학`)
	isMedicalTechJob := match(j, `의료AI|헬스케어\s*AI|의료\s*개발|의료\s*엔지니어|의료기기`)
	if isMedicalEng || isMedicalTechJob {
		return "고가용성 시스템·데이터 파이프라인, 머신러닝·의료 데이터 품질 관리, 개발 역량"
	}

	if match(j, `의사|의료|의과|병원|클리닉`) || match(m, `의학|의과|간호|약학|보건`) {
		switch {
		case match(j, `신경외과`) || match(m, `신경외과`):
			return "의사면허, 신경외과 전문의·펠로우 경력, 수술·진료 역량"
		case match(j, `내과|가정의|일반의`):
			return "의사면허, 해당 과목 수련·전문의 자격, 진료 역량"
		case match(j, `외과|정형외과|흉부외과`):
			return "의사면허, 해당 과목 전문의·펠로우 경력, 수술 역량"
		case match(j, `소아과|소아청소년`):
			return "의사면허, 소아청소년과 전문의·수련, 진료 역량"
		case match(j, `정신과|정신의학`):
			return "의사면허, 정신과 전문의·수련, 상담·치료 역량"
		}
		return "의사면허, 해당 과목 전문의·수련 경력, 진료 역량"
	}
	if match(j, `간호|간호사`) {
		return "간호사 면허, 임상 경력, 환자 돌봄·기록 역량"
	}
	if match(j, `약사|약학`) {
		return "약사 면허, 조제·복약지도 역량, GMP·품질 관리"
	}

	if match(j, `백엔드|서버|backend`) {
		return "정보처리기사·관련 자격, 서버·DB 개발 역량, Git·API 설계 경험"
	}
	if match(j, `프론트엔드|프론트|frontend|웹 개발`) {
		return "HTML/CSS/JS·React 등 프레임워크, 반응형·접근성, Git·협업"
	}
	if match(j, `풀스택|fullstack|웹`) {
		return "프론트·백엔드 기술 스택, DB·API, Git·배포 경험"
	}
	if match(j, `소프트웨어|개발자|엔지니어|프로그래머`) && !match(j, `데이터|분석|AI`) {
		if match(j, `임베디드|펌웨어|IoT`) {
			return "C/C++·임베디드 개발, 하드웨어 이해, 디버깅·테스트 역량"
		}
		if match(j, `앱|android|ios|모바일`) {
			return "모바일 프레임워크(Android/iOS), API 연동, 스토어 배포 경험"
		}
		return "정보처리기사·관련 자격, 프로그래밍·설계 역량, Git·협업·프로젝트 경험"
	}

	if match(j, `데이터\s*분석|데이터분석|데이터\s*사이언티스트`) {
		return "SQL·데이터 분석 도구, ADsP·빅데이터분석기사 등, 리포팅·시각화 역량"
	}
	if match(j, `AI|인공지능|머신러닝|ML|딥러닝`) {
		return "Python·통계·ML 프레임워크, 데이터 파이프라인, 논문·실험 역량"
	}

	if match(j, `토목|건설|측량|건축|구조`) {
		return "토목기사·건설기사·측량기사 등, 설계·시공·안전 관리 역량"
	}
	if match(j, `안전|산업안전|건설안전|소방`) {
		return "산업안전기사·안전관리자 등, 위험성 평가·교육·점검 역량"
	}
	if match(j, `기계|자동차|메카트로닉스`) {
		return "기계기사·관련 자격, 설계·제조·정비 역량, CAD·시뮬레이션"
	}
	if match(j, `전기|전자|전기기사|전자기사`) {
		return "전기기사·전자기사 등, 설계·시공·유지보수 역량"
	}

	if match(j, `마케팅|기획|PM|프로덕트`) {
		return "시장 분석·기획 역량, 데이터 기반 의사결정, 커뮤니케이션·협업"
	}
	if match(j, `인사|HR|채용|조직`) {
		return "노무·채용 프로세스 이해, 조직 분석·역량 개발, 커뮤니케이션"
	}

	if match(j, `개발|엔지니어|소프트웨어`) {
		return "정보처리기사·관련 자격, 실무 기술 스택·프로젝트 경험, 협업·버전관리"
	}
	if match(j, `데이터|분석`) {
		return "데이터 분석 도구·SQL, ADsP 등 자격, 리포팅·의사결정 지원 역량"
	}
	return "해당 분야 자격·수련·실무 경력, 직무 수행에 필요한 핵심 역량"
}

func clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

func minInt(a, b int) int {
	if a < b {
		return a
	}
	return b
}

// ComputeCompetencies scores the four skill axes from the profile and
// consultation analysis. Deterministic: fixed inputs yield fixed output.
// jobRequirementsText, when present, replaces the fallback requirements table
// in the first competency's description.
func ComputeCompetencies(
	client ClientData,
	analysis []AnalysisRow,
	targetJob, targetCompany, jobRequirementsText string,
) []Competency {
	major := strings.TrimSpace(client.Major)
	educationLevel := strings.TrimSpace(client.EducationLevel)
	workYears := client.WorkExperienceYears
	hasTargetCompany := !isUnsetValue(targetCompany)

	var parts []string
	for _, a := range analysis {
		row := strings.TrimSpace(strings.Join([]string{a.Strengths, a.InterestKeywords, a.CareerValues}, " "))
		if row != "" {
			parts = append(parts, row)
		}
	}
	analysisText := strings.ToLower(strings.Join(parts, " "))

	hasStrength := func(keywords ...string) bool {
		for _, k := range keywords {
			if strings.Contains(analysisText, strings.ToLower(k)) {
				return true
			}
		}
		return false
	}

	educationScore := 0
	switch {
	case educationLevel == "":
		educationScore = 0
	case regexp.MustCompile(`대학원|석사|박사`).MatchString(educationLevel):
		educationScore = 15
	case regexp.MustCompile(`대학교\s*졸업|대졸|4년제`).MatchString(educationLevel):
		educationScore = 12
	case regexp.MustCompile(`전문대|대학교\s*재학|대재`).MatchString(educationLevel):
		educationScore = 8
	case regexp.MustCompile(`고등학교|고졸`).MatchString(educationLevel):
		educationScore = 3
	default:
		educationScore = 5
	}

	experienceScore := 0
	switch {
	case workYears >= 3:
		experienceScore = 20
	case workYears >= 1:
		experienceScore = 12
	case workYears > 0:
		experienceScore = 5
	}

	jobLower := strings.ToLower(targetJob)
	majorLower := strings.ToLower(major)

	majorJobMatch := 0
	jobWords := []string{"개발", "엔지니어", "소프트웨어", "데이터", "분석", "ai", "인공지능", "컴퓨터", "공학", "it", "프로그래머"}
	majorWords := []string{"컴퓨터", "공학", "소프트웨어", "정보", "데이터", "통계", "경영", "산업", "전자", "전기", "it"}
	jobMatch := false
	for _, w := range jobWords {
		if strings.Contains(jobLower, w) && (strings.Contains(majorLower, w) || strings.Contains(majorLower, "공학") || strings.Contains(majorLower, "정보")) {
			jobMatch = true
			break
		}
	}
	majorMatch := false
	for _, w := range majorWords {
		if strings.Contains(majorLower, w) && strings.Contains(jobLower, w) {
			majorMatch = true
			break
		}
	}
	switch {
	case jobMatch || majorMatch:
		majorJobMatch = 25
	case majorLower != "" && jobLower != "" && (strings.Contains(majorLower, "공학") || strings.Contains(majorLower, "학과")):
		majorJobMatch = 12
	}

	jobLevel := 45 + majorJobMatch + minInt(educationScore, 15) + minInt(experienceScore, 15)
	if hasTargetCompany {
		jobLevel += 5
	}
	if hasStrength("기술", "개발", "코딩", "프로그래밍", "문제해결", "논리", "분석") {
		jobLevel += 10
	}
	jobLevel = clamp(jobLevel, 25, 95)

	isDataJob := regexp.MustCompile(`(?i)데이터|분석|AI|인공지능|빅데이터`).MatchString(targetJob)
	isDataMajor := regexp.MustCompile(`데이터|통계|경영|정보|컴퓨터`).MatchString(majorLower)
	dataLevel := 40
	if isDataJob {
		dataLevel += 25
	}
	if isDataMajor {
		dataLevel += 15
	}
	dataLevel += minInt(experienceScore, 10) + minInt(educationScore, 10)
	if hasStrength("데이터", "분석", "통계", "수치", "리포트") {
		dataLevel += 10
	}
	dataLevel = clamp(dataLevel, 30, 95)

	collabLevel := 50 + minInt(experienceScore, 25) + minInt(educationScore, 15)
	if hasStrength("협업", "소통", "팀", "커뮤니케이션", "협력") {
		collabLevel += 10
	}
	collabLevel = clamp(collabLevel, 35, 95)

	problemLevel := 50 + minInt(experienceScore, 20) + minInt(educationScore, 15)
	if hasStrength("문제해결", "논리", "분석", "해결", "도전") {
		problemLevel += 10
	}
	problemLevel = clamp(problemLevel, 35, 95)

	concrete := strings.TrimSpace(jobRequirementsText)
	if concrete == "" {
		concrete = ConcreteRequiredCompetencies(targetJob, major)
	}

	firstTitle := firstCompetencyTitle(targetJob, majorLower)

	rawKeyPoints := concrete
	if len([]rune(concrete)) > 100 {
		rawKeyPoints = summarizeToKeyPoints(concrete, 3)
	}
	stripped := regexp.MustCompile(`\s*프로필\s*·?\s*상담\s*반영\s*`).ReplaceAllString(rawKeyPoints, " ")
	stripped = strings.TrimSpace(regexp.MustCompile(`\s+·\s*$`).ReplaceAllString(strings.TrimSpace(stripped), ""))
	firstDesc := stripped
	if firstDesc == "" {
		firstDesc = "목표 직무 요구 역량"
	}

	rest := trailingCompetencies(jobLower, majorLower, dataLevel, collabLevel, problemLevel)

	return append([]Competency{{Title: firstTitle, Desc: firstDesc, Level: jobLevel}}, rest...)
}

// firstCompetencyTitle synthesizes the leading competency title from the job
// family, distinguishing physicians from medical-engineering roles.
func firstCompetencyTitle(targetJob, majorLower string) string {
	j := strings.ToLower(targetJob)
	match := func(s, pattern string) bool { return regexp.MustCompile(`(?i)` + pattern).MatchString(s) }

	switch {
	case match(j, `의사|의과|진료|전문의|내과|외과|소아과|정신과|신경외과|가정의|일반의`):
		return "진료·전문의 역량"
	case match(majorLower, `의학공학|의료공학|의료기기|바이오의공학|바이오공학`) ||
		match(j, `의료AI|의료기기|헬스케어\s*AI|의료\s*개발|의료\s*엔지니어`):
		return "의료기기·의료AI 역량"
	case match(j, `의료|의과|병원|클리닉`):
		return "의료·기술 역량"
	case match(j, `간호|약사|약학`):
		return "면허·실무 역량"
	case match(j, `백엔드|프론트|풀스택|소프트웨어|개발자|엔지니어|프로그래머`):
		return "개발·설계 역량"
	case match(j, `데이터|분석|AI|인공지능|머신러닝`):
		return "데이터·분석 역량"
	case match(j, `토목|건설|안전|기계|전기|전자`):
		return "기술·관리 역량"
	case match(j, `마케팅|기획|PM|인사|HR`):
		return "기획·협업 역량"
	case targetJob != "":
		return targetJob + " 핵심 역량"
	default:
		return "목표 직무 역량"
	}
}

// trailingCompetencies returns the second through fourth competencies for the
// job family, carrying the data, collaboration and problem-solving levels.
func trailingCompetencies(jobLower, majorLower string, dataLevel, collabLevel, problemLevel int) []Competency {
	match := func(s, pattern string) bool { return regexp.MustCompile(`(?i)` + pattern).MatchString(s) }

	switch {
	case match(jobLower, `토목|건설|측량|건축|구조`):
		return []Competency{
			{Title: "설계·시공 역량", Desc: "설계 도면·시공·감리 등 실무 수행 능력", Level: dataLevel},
			{Title: "안전·품질 관리", Desc: "현장 안전·품질 관리 및 점검 역량", Level: collabLevel},
			{Title: "협업·현장 소통", Desc: "현장 협력·소통 및 공정 관리 능력", Level: problemLevel},
		}
	case match(jobLower, `안전|산업안전|건설안전|소방`):
		return []Competency{
			{Title: "위험성 평가 역량", Desc: "위험성 평가·안전 점검·교육 수행 능력", Level: dataLevel},
			{Title: "안전·품질 관리", Desc: "안전관리체계·점검·리포트 역량", Level: collabLevel},
			{Title: "협업·소통", Desc: "현장·관리부서와의 협업 및 소통 능력", Level: problemLevel},
		}
	case match(jobLower, `기계|자동차|메카트로닉스`):
		return []Competency{
			{Title: "설계·제조 역량", Desc: "설계·제조·정비·CAD 등 실무 역량", Level: dataLevel},
			{Title: "장비·품질 관리", Desc: "장비 운용·점검·품질 관리 역량", Level: collabLevel},
			{Title: "문제 해결", Desc: "설비·공정 문제를 논리적으로 진단·해결하는 능력", Level: problemLevel},
		}
	case match(jobLower, `전기|전자|전기기사|전자기사`):
		return []Competency{
			{Title: "설계·시공·유지보수", Desc: "전기·전자 설비 설계·시공·유지보수 역량", Level: dataLevel},
			{Title: "안전·규격 준수", Desc: "전기안전·규격 준수 및 점검 역량", Level: collabLevel},
			{Title: "문제 해결", Desc: "장애 진단·원인 분석 및 해결 능력", Level: problemLevel},
		}
	case match(jobLower, `데이터|분석|AI|인공지능|머신러닝`):
		return []Competency{
			{Title: "데이터 분석 및 활용", Desc: "실무 데이터 기반 문제 해결 및 의사결정 능력", Level: dataLevel},
			{Title: "협업 도구 활용", Desc: "팀 협업·소통 및 협업 도구 숙련도", Level: collabLevel},
			{Title: "문제 해결", Desc: "복잡한 실무 문제를 논리적으로 분해하고 해결하는 능력", Level: problemLevel},
		}
	case match(jobLower, `백엔드|프론트|풀스택|소프트웨어|개발자|엔지니어|프로그래머`):
		return []Competency{
			{Title: "기술 스택·실무 역량", Desc: "개발 환경·버전관리·API 설계 등 실무 역량", Level: dataLevel},
			{Title: "협업 도구 활용", Desc: "Git·이슈트래킹·팀 소통 역량", Level: collabLevel},
			{Title: "문제 해결", Desc: "버그·요구사항을 논리적으로 분해하고 해결하는 능력", Level: problemLevel},
		}
	case match(jobLower, `의료|의학|바이오|의료기기|헬스케어`) || match(majorLower, `의학공학|의료공학|바이오`):
		return []Competency{
			{Title: "의료·기술 융합 역량", Desc: "의료·기기·규제 이해 및 기술 적용 역량", Level: dataLevel},
			{Title: "협업·소통", Desc: "임상·연구·제조 부서와의 협업 역량", Level: collabLevel},
			{Title: "문제 해결", Desc: "품질·검증·장애를 논리적으로 해결하는 능력", Level: problemLevel},
		}
	case match(jobLower, `마케팅|기획|PM|인사|HR|경영`):
		return []Competency{
			{Title: "시장·데이터 분석", Desc: "시장 분석·데이터 기반 의사결정 능력", Level: dataLevel},
			{Title: "협업·커뮤니케이션", Desc: "팀·고객과의 협업 및 소통 역량", Level: collabLevel},
			{Title: "문제 해결", Desc: "과제를 논리적으로 분해하고 실행하는 능력", Level: problemLevel},
		}
	case match(jobLower, `간호|약사|약학|의사|진료`):
		secondTitle := "전문 실무 역량"
		if match(jobLower, `약사|약학`) {
			secondTitle = "조제·복약지도 역량"
		} else if match(jobLower, `간호`) {
			secondTitle = "환자 돌봄·기록 역량"
		}
		return []Competency{
			{Title: secondTitle, Desc: "전문 분야 실무·기록·절차 수행 능력", Level: dataLevel},
			{Title: "협업·소통", Desc: "환자·동료·타 부서와의 협업·소통 역량", Level: collabLevel},
			{Title: "문제 해결", Desc: "상황 판단·대응 및 의사결정 능력", Level: problemLevel},
		}
	default:
		return []Competency{
			{Title: "실무 역량", Desc: "목표 직무에 필요한 실무 수행 능력", Level: dataLevel},
			{Title: "협업 도구 활용", Desc: "팀 협업·소통 및 협업 도구 숙련도", Level: collabLevel},
			{Title: "문제 해결", Desc: "복잡한 실무 문제를 논리적으로 분해하고 해결하는 능력", Level: problemLevel},
		}
	}
}
