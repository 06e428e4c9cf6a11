package roadmap

import (
	"fmt"
	"regexp"
	"strings"
)

// OutputCheck is one structural check on the model output.
type OutputCheck struct {
	OK    bool
	Label string
}

// OutputEvaluation is the structural quality score, logged only.
type OutputEvaluation struct {
	Score  int
	Checks []OutputCheck
}

// EvaluateOutput runs the three structural checks: at least three phases, a
// non-empty summary, and a title plus activities on every step.
func EvaluateOutput(result *GenerationResult) OutputEvaluation {
	var checks []OutputCheck

	hasPlan := result != nil && len(result.Plan) >= 3
	checks = append(checks, OutputCheck{OK: hasPlan, Label: "plan 3단계 이상"})

	hasSummary := result != nil && strings.TrimSpace(result.Summary) != ""
	checks = append(checks, OutputCheck{OK: hasSummary, Label: "summary 존재"})

	stepsValid := hasPlan
	if hasPlan {
		for _, step := range result.Plan {
			if strings.TrimSpace(step.Title) == "" || len(step.Activities) == 0 {
				stepsValid = false
				break
			}
		}
	}
	checks = append(checks, OutputCheck{OK: stepsValid, Label: "단계별 제목·추천활동 존재"})

	passed := 0
	for _, c := range checks {
		if c.OK {
			passed++
		}
	}
	score := int(float64(passed)/float64(len(checks))*100 + 0.5)
	return OutputEvaluation{Score: score, Checks: checks}
}

// ContextEvaluation reports citation usage and the faithfulness score for the
// employer-mention hallucination check. Logged only, never gating.
type ContextEvaluation struct {
	CitationCount     int
	CitationIncluded  bool
	FaithfulnessScore float64
	Details           []string
}

// Fixed lexicon of well-known Korean employers used to spot company mentions
// that were not part of the supplied context.
var knownCompanyRe = regexp.MustCompile(`(?i)(네이버|카카오|카카오엔터프라이즈|삼성전자|삼성|현대자동차|현대|LG|SK텔레콤|SK|쿠팡|토스|라인|배달의민족|우아한형제들|당근|엔씨소프트|크래프톤|펄어비스|하이브|JYP|CJ|한화|롯데|POSCO|포스코|두산|GS|KT)`)

const hallucinationPenalty = 0.35

// EvaluateContextUtilization checks which lexicon companies the output
// mentions against the companies actually present in the context. With no
// allowed companies the score is 1.0; otherwise each hallucinated mention
// costs 0.35, floored at zero.
func EvaluateContextUtilization(result *GenerationResult, allowedCompanyNames []string) ContextEvaluation {
	var details []string

	citations := result.Citations
	citationCount := len(citations)
	details = append(details, fmt.Sprintf("citation 개수: %d", citationCount))
	if citationCount > 0 {
		head := citations
		if len(head) > 5 {
			head = head[:5]
		}
		details = append(details, "citations_used: "+strings.Join(head, " | "))
	}

	var allowed []string
	for _, n := range allowedCompanyNames {
		n = strings.ToLower(strings.TrimSpace(n))
		if n != "" {
			allowed = append(allowed, n)
		}
	}

	var textParts []string
	textParts = append(textParts, result.Summary)
	for _, step := range result.Plan {
		textParts = append(textParts, step.Title)
		textParts = append(textParts, step.Activities...)
	}
	fullText := strings.Join(textParts, " ")

	var mentioned []string
	seen := make(map[string]bool)
	for _, m := range knownCompanyRe.FindAllString(fullText, -1) {
		name := strings.ToLower(m)
		if !seen[name] {
			seen[name] = true
			mentioned = append(mentioned, name)
		}
	}

	var hallucinated []string
	if len(allowed) > 0 {
		for _, name := range mentioned {
			inAllowed := false
			for _, a := range allowed {
				if strings.Contains(name, a) || strings.Contains(a, name) {
					inAllowed = true
					break
				}
			}
			if !inAllowed {
				hallucinated = append(hallucinated, name)
			}
		}
	}

	score := 1.0
	if len(allowed) > 0 && len(hallucinated) > 0 {
		score = 1.0 - float64(len(hallucinated))*hallucinationPenalty
		if score < 0 {
			score = 0
		}
	}

	if len(hallucinated) > 0 {
		details = append(details, "환각 가능 기업명(컨텍스트에 없음): "+strings.Join(hallucinated, ", "))
	}
	details = append(details, fmt.Sprintf("Faithfulness score: %.0f%%", score*100))

	return ContextEvaluation{
		CitationCount:     citationCount,
		CitationIncluded:  citationCount > 0,
		FaithfulnessScore: score,
		Details:           details,
	}
}
