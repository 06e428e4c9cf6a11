package roadmap

import "regexp"

// Category is the job family bucket driving certification tables, phase
// titles and competency templates.
type Category int

const (
	CategoryData Category = iota
	CategoryCivil
	CategorySafety
	CategoryMech
	CategoryElec
	CategoryDev
	CategoryMedical
	CategoryBusiness
	CategoryGeneral
)

func (c Category) String() string {
	switch c {
	case CategoryData:
		return "data"
	case CategoryCivil:
		return "civil"
	case CategorySafety:
		return "safety"
	case CategoryMech:
		return "mech"
	case CategoryElec:
		return "elec"
	case CategoryDev:
		return "dev"
	case CategoryMedical:
		return "medical"
	case CategoryBusiness:
		return "business"
	default:
		return "general"
	}
}

// Ordered first-match-wins table. Order matters: "건설안전" classifies as
// civil because the civil pattern is checked before safety.
var categoryPatterns = []struct {
	re  *regexp.Regexp
	cat Category
}{
	{regexp.MustCompile(`(?i)데이터|분석|AI|인공지능`), CategoryData},
	{regexp.MustCompile(`토목|건설|측량|건축|구조`), CategoryCivil},
	{regexp.MustCompile(`안전|산업안전|건설안전`), CategorySafety},
	{regexp.MustCompile(`기계|자동차|메카트로닉스`), CategoryMech},
	{regexp.MustCompile(`전기|전자|전기기사|전자기사`), CategoryElec},
	{regexp.MustCompile(`개발|엔지니어|소프트웨어|프로그래머`), CategoryDev},
	{regexp.MustCompile(`의료|의학|의사|간호|약사|바이오|병원|헬스케어`), CategoryMedical},
	{regexp.MustCompile(`(?i)마케팅|기획|PM|인사|HR|경영`), CategoryBusiness},
}

// Classify maps job text to a category, first match wins.
func Classify(job string) Category {
	for _, p := range categoryPatterns {
		if p.re.MatchString(job) {
			return p.cat
		}
	}
	return CategoryGeneral
}

var (
	devJobRe  = regexp.MustCompile(`개발|엔지니어|소프트웨어|프로그래머`)
	dataJobRe = regexp.MustCompile(`(?i)데이터|분석|AI|인공지능`)
)

// IsDevJob matches developer-flavored titles independently of Classify, for
// decisions that treat "데이터 엔지니어" as a developer (coding-test phase
// titles, the 정보처리기사 prepend, program selection).
func IsDevJob(job string) bool {
	return devJobRe.MatchString(job)
}

func IsDataJob(job string) bool {
	return dataJobRe.MatchString(job)
}
