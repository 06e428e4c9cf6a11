package roadmap

import (
	"regexp"
	"strings"

	"career-roadmap-be/pkg/qnet"
)

// Tier is a national technical qualification grade.
type Tier string

const (
	TierCraftsman          Tier = "기능사"
	TierIndustrialEngineer Tier = "산업기사"
	TierEngineer           Tier = "기사"
	TierProfessional       Tier = "기술사"
)

var allTiers = []Tier{TierCraftsman, TierIndustrialEngineer, TierEngineer, TierProfessional}

// EligibleTiers returns the qualification grades the counselee can sit for,
// following the national qualification act ladder. Unknown education levels
// place no restriction.
func EligibleTiers(educationLevel string, experienceYears int) []Tier {
	level := strings.TrimSpace(educationLevel)
	switch {
	case level == "":
		return allTiers
	case strings.Contains(level, "고등학교") || strings.Contains(level, "고졸"):
		tiers := []Tier{TierCraftsman}
		if experienceYears >= 2 {
			tiers = append(tiers, TierIndustrialEngineer)
		}
		return tiers
	case strings.Contains(level, "재학") || strings.Contains(level, "전문대"):
		return []Tier{TierCraftsman, TierIndustrialEngineer}
	case strings.Contains(level, "졸업") || strings.Contains(level, "대졸") ||
		strings.Contains(level, "대학원") || strings.Contains(level, "석사") || strings.Contains(level, "박사"):
		tiers := []Tier{TierCraftsman, TierIndustrialEngineer, TierEngineer}
		if experienceYears >= 4 {
			tiers = append(tiers, TierProfessional)
		}
		return tiers
	default:
		return allTiers
	}
}

// tierOf recognizes the grade from a registry series label. Longer names
// first so 산업기사 is not mistaken for 기사.
func tierOf(series string) (Tier, bool) {
	switch {
	case strings.Contains(series, "산업기사"):
		return TierIndustrialEngineer, true
	case strings.Contains(series, "기술사"):
		return TierProfessional, true
	case strings.Contains(series, "기능사"):
		return TierCraftsman, true
	case strings.Contains(series, "기사"):
		return TierEngineer, true
	default:
		return "", false
	}
}

// FilterEligibleQualifications drops registry rows whose grade the counselee
// cannot sit for. Rows with an unrecognized series are kept.
func FilterEligibleQualifications(quals []qnet.Qualification, educationLevel string, experienceYears int) []qnet.Qualification {
	eligible := EligibleTiers(educationLevel, experienceYears)
	allowed := make(map[Tier]bool, len(eligible))
	for _, t := range eligible {
		allowed[t] = true
	}

	var out []qnet.Qualification
	for _, q := range quals {
		tier, known := tierOf(q.Series)
		if !known || allowed[tier] {
			out = append(out, q)
		}
	}
	return out
}

var certColors = []string{
	"text-blue-600 bg-blue-50",
	"text-green-600 bg-green-50",
	"text-orange-600 bg-orange-50",
	"text-purple-600 bg-purple-50",
	"text-red-600 bg-red-50",
}

var certStatuses = []string{"취득 권장", "준비 중", "관심 분야"}

var jobCategoryKeywords = []struct {
	re       *regexp.Regexp
	keywords []string
}{
	{regexp.MustCompile(`개발|엔지니어|소프트웨어|프로그래머`), []string{"정보처리", "소프트웨어", "it", "컴퓨터"}},
	{regexp.MustCompile(`(?i)데이터|분석|AI|인공지능`), []string{"데이터", "분석", "빅데이터", "ai"}},
	{regexp.MustCompile(`토목|건설|측량|건축|구조`), []string{"토목", "건설", "측량", "건축", "구조"}},
	{regexp.MustCompile(`안전|산업안전|건설안전`), []string{"안전", "산업안전", "건설안전", "소방"}},
	{regexp.MustCompile(`기계|자동차|메카트로닉스`), []string{"기계", "자동차", "용접", "메카트로닉스"}},
	{regexp.MustCompile(`전기|전자|전기기사|전자기사`), []string{"전기", "전자", "전기공사", "산업계측"}},
	{regexp.MustCompile(`의료|의학|바이오|생명`), []string{"의료", "의학", "바이오", "생명", "의료기기"}},
	{regexp.MustCompile(`마케팅|경영|경제|상경`), []string{"마케팅", "경영", "경제", "사회조사", "컨설팅"}},
}

var majorCategoryKeywords = []struct {
	re       *regexp.Regexp
	keywords []string
}{
	{regexp.MustCompile(`(?i)컴퓨터|정보|소프트웨어|IT|전산`), []string{"정보처리", "컴퓨터활용", "정보보안"}},
	{regexp.MustCompile(`의학|의료|바이오|생명|의공학`), []string{"의료기기", "바이오", "생명", "임상"}},
	{regexp.MustCompile(`토목|건설|건축|측량|구조`), []string{"토목", "건설", "건축", "측량", "구조"}},
	{regexp.MustCompile(`기계|자동차|메카트로닉스|기계공학`), []string{"기계", "자동차", "용접", "메카트로닉스"}},
	{regexp.MustCompile(`전기|전자|전기공학|전자공학`), []string{"전기", "전자", "전기공사", "산업계측"}},
	{regexp.MustCompile(`안전|소방|산업안전`), []string{"안전", "산업안전", "건설안전", "소방"}},
	{regexp.MustCompile(`경영|경제|마케팅|상경|경제학`), []string{"경영", "마케팅", "경제", "사회조사", "컨설팅"}},
	{regexp.MustCompile(`데이터|통계|경영정보`), []string{"데이터", "분석", "빅데이터", "통계"}},
}

var tokenSplitRe = regexp.MustCompile(`[,\s]+`)

// buildFilterKeywords assembles the lowercase keyword set for relevance
// matching: extracted analysis keywords, target-job tokens (category
// expansions only when no analysis keywords), and major tokens with their
// category expansions.
func buildFilterKeywords(targetJob, major string, extracted []string) []string {
	var keywords []string
	keywords = append(keywords, extracted...)

	if targetJob != "" {
		for _, t := range tokenSplitRe.Split(targetJob, -1) {
			if len([]rune(t)) > 1 {
				keywords = append(keywords, t)
			}
		}
		if len(extracted) == 0 {
			for _, jc := range jobCategoryKeywords {
				if jc.re.MatchString(targetJob) {
					keywords = append(keywords, jc.keywords...)
				}
			}
		}
	}

	if major != "" && major != "정보 없음" && major != "전공 분야" {
		for _, t := range tokenSplitRe.Split(major, -1) {
			if len([]rune(t)) > 1 {
				keywords = append(keywords, t)
			}
		}
		for _, mc := range majorCategoryKeywords {
			if mc.re.MatchString(major) {
				keywords = append(keywords, mc.keywords...)
			}
		}
	}

	seen := make(map[string]bool, len(keywords))
	var unique []string
	for _, k := range keywords {
		lower := strings.ToLower(strings.TrimSpace(k))
		if lower == "" || seen[lower] {
			continue
		}
		seen[lower] = true
		unique = append(unique, lower)
	}
	return unique
}

// findExamScheduleInfo locates an exam date for the qualification name in the
// schedule rows.
func findExamScheduleInfo(qualName string, schedules []qnet.ExamSchedule) string {
	qualLower := strings.ToLower(qualName)
	for _, exam := range schedules {
		examName := strings.TrimSpace(exam.Description)
		if examName == "" {
			examName = strings.TrimSpace(exam.QualClass)
		}
		examDate := strings.TrimSpace(exam.DocExamStart)
		if examDate == "" {
			examDate = strings.TrimSpace(exam.PracExamStart)
		}
		if examName == "" || examDate == "" {
			continue
		}
		examLower := strings.ToLower(examName)
		tierMatch := strings.Contains(examName, "기사") && strings.Contains(qualLower, "기사")
		if strings.Contains(qualLower, examLower) || strings.Contains(examLower, qualLower) || tierMatch {
			return "시험일정: " + examDate
		}
	}
	return ""
}

// FilterRelevantQualifications is the keyword fallback: pick up to four
// registry rows matching the counselee's keywords (or any national-tier
// qualification when no keyword matches by name), deduplicated by name.
func FilterRelevantQualifications(
	quals []qnet.Qualification,
	schedules []qnet.ExamSchedule,
	targetJob, major string,
	extractedKeywords []string,
) []Certification {
	keywords := buildFilterKeywords(targetJob, major, extractedKeywords)

	var certs []Certification
	seen := make(map[string]bool)

	for _, qual := range quals {
		name := strings.TrimSpace(qual.Name)
		if name == "" || seen[name] {
			continue
		}
		nameLower := strings.ToLower(name)
		descLower := strings.ToLower(qual.Description())

		matches := false
		for _, kw := range keywords {
			if strings.Contains(nameLower, kw) || strings.Contains(descLower, kw) {
				matches = true
				break
			}
		}
		if len(keywords) > 0 && !matches &&
			!strings.Contains(nameLower, "기사") && !strings.Contains(nameLower, "산업기사") {
			continue
		}

		schedInfo := findExamScheduleInfo(name, schedules)
		if schedInfo == "" {
			schedInfo = "시험일정: Q-Net 공식 사이트 확인"
		}
		desc := qual.Description()
		if desc == "" {
			desc = name + "에 관한 국가기술자격증입니다."
		}

		certs = append(certs, Certification{
			Type:   "자격증",
			Name:   name,
			Status: certStatuses[len(certs)%len(certStatuses)],
			Color:  certColors[len(certs)%len(certColors)],
			Details: &CertDetails{
				Description:  desc,
				ExamSchedule: schedInfo,
				Difficulty:   "난이도: 중",
				Written:      "필기: 100점 만점에 60점 이상",
				Practical:    "실기: 100점 만점에 60점 이상",
			},
		})
		seen[name] = true

		if len(certs) >= 4 {
			break
		}
	}

	return certs
}
