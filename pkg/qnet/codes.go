package qnet

import "strings"

// CodeMap is a static jmCd mapping for frequently requested qualifications,
// used when the registry list is unavailable or too slow.
var CodeMap = map[string]string{
	// IT
	"정보처리기사":     "1320",
	"정보처리산업기사":   "2190",
	"정보보안기사":     "1082",
	"빅데이터분석기사":   "", // 한국데이터산업진흥원 주관, Q-Net API 미지원

	// 안전
	"산업안전기사":     "2150",
	"건설안전기사":     "2010",
	"소방설비기사(전기)": "2451",
	"소방설비기사(기계)": "2450",

	// 건설/토목
	"건축기사": "1650",
	"토목기사": "1730",

	// 전기/전자
	"전기기사":   "1150",
	"전기공사기사": "1140",

	// 기계
	"일반기계기사":   "0071",
	"공조냉동기계기사": "0181",

	// 환경/에너지
	"수질환경기사":  "2560",
	"대기환경기사":  "2540",
	"폐기물처리기사": "2660",
}

// FindCode looks up a jmCd by qualification name with partial matching.
func FindCode(name string) (string, bool) {
	clean := strings.ReplaceAll(name, " ", "")
	for key, code := range CodeMap {
		if strings.Contains(clean, key) || strings.Contains(key, clean) {
			return code, true
		}
	}
	return "", false
}
