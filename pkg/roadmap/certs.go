package roadmap

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"golang.org/x/sync/errgroup"

	"career-roadmap-be/pkg/llm"
	"career-roadmap-be/pkg/qnet"
	"career-roadmap-be/pkg/websearch"
)

// CertRequest carries the counselee data for the standalone certification
// recommendation flow.
type CertRequest struct {
	TargetJob       string
	Major           string
	EducationLevel  string
	ExperienceYears int
	Analysis        []AnalysisRow
	JobInfo         *websearch.JobResult
}

type certRecommendation struct {
	QualName       string `json:"qualName"`
	RelevanceScore int    `json:"relevanceScore"`
	Reason         string `json:"reason"`
}

type certRecommendationResponse struct {
	Recommended []certRecommendation `json:"recommended"`
}

func statusForScore(score int) string {
	switch {
	case score >= 8:
		return certStatuses[0]
	case score >= 6:
		return certStatuses[1]
	default:
		return certStatuses[2]
	}
}

// CertificationsForRoadmap is the single entry point of the certification
// sub-pipeline: registry-grounded model ranking when registry data exists,
// knowledge-only model recommendation when it does not, keyword filtering
// when the model is unavailable or fails.
func (e *Engine) CertificationsForRoadmap(ctx context.Context, req CertRequest) []Certification {
	var (
		quals     []qnet.Qualification
		schedules []qnet.ExamSchedule
	)
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		if e.adapters.FetchQualifications == nil {
			return nil
		}
		fetched, err := e.adapters.FetchQualifications(gctx)
		if err != nil {
			e.logger.Printf("[CERT] qualification fetch failed: %v", err)
			return nil
		}
		quals = fetched
		return nil
	})
	g.Go(func() error {
		if e.adapters.FetchExamSchedules == nil {
			return nil
		}
		fetched, err := e.adapters.FetchExamSchedules(gctx)
		if err != nil {
			e.logger.Printf("[CERT] exam schedule fetch failed: %v", err)
			return nil
		}
		schedules = fetched
		return nil
	})
	_ = g.Wait()

	quals = FilterEligibleQualifications(quals, req.EducationLevel, req.ExperienceYears)
	if len(quals) == 0 {
		e.logger.Printf("[CERT] registry empty, switching to knowledge-only recommendation")
		return e.certsFromModelKnowledge(ctx, req)
	}
	return e.recommendWithRegistry(ctx, req, quals, schedules)
}

// recommendWithRegistry asks the model to rank registry rows; recommendations
// that do not match a registry name are discarded, never fabricated.
func (e *Engine) recommendWithRegistry(ctx context.Context, req CertRequest, quals []qnet.Qualification, schedules []qnet.ExamSchedule) []Certification {
	if e.provider == nil {
		return e.keywordFallback(req, quals, schedules)
	}

	userPrompt := BuildCertRecommendationContext(req.TargetJob, req.Major, req.Analysis, quals, req.JobInfo, req.EducationLevel, req.ExperienceYears)

	e.logger.Printf("[CERT] ranking %d registry rows", len(quals))
	raw, err := e.provider.Chat(ctx, []llm.Message{
		{Role: "system", Content: CertRecommendationSystemPrompt},
		{Role: "user", Content: userPrompt},
	},
		llm.WithModel(e.model),
		llm.WithTemperature(0.3),
		llm.WithJSONOutput(),
	)
	if err != nil {
		e.logger.Printf("[CERT] model call failed: %v", err)
		return e.keywordFallback(req, quals, schedules)
	}

	var parsed certRecommendationResponse
	if err := json.Unmarshal([]byte(stripCodeFences(raw)), &parsed); err != nil {
		e.logger.Printf("[CERT] model output parse failed: %v", err)
		return e.keywordFallback(req, quals, schedules)
	}
	if len(parsed.Recommended) == 0 {
		e.logger.Printf("[CERT] model returned no recommendations, using keyword filtering")
		return e.keywordFallback(req, quals, schedules)
	}

	recs := parsed.Recommended
	if len(recs) > 5 {
		recs = recs[:5]
	}

	var certs []Certification
	seen := make(map[string]bool)
	for _, rec := range recs {
		matched, ok := matchQualification(quals, rec.QualName)
		if !ok {
			continue
		}
		name := strings.TrimSpace(matched.Name)
		if name == "" || seen[name] {
			continue
		}
		seen[name] = true

		description := rec.Reason
		if description == "" {
			description = matched.Description()
		}
		if description == "" {
			description = fmt.Sprintf("%s에 관한 국가기술자격증입니다.", name)
		}

		schedule := e.certScheduleText(ctx, name, schedules)

		certs = append(certs, Certification{
			Type:   "자격증",
			Name:   name,
			Status: statusForScore(rec.RelevanceScore),
			Color:  certColors[len(certs)%len(certColors)],
			Details: &CertDetails{
				Description:  description,
				ExamSchedule: schedule,
				Difficulty:   "난이도: 중",
				Written:      "필기: 100점 만점에 60점 이상",
				Practical:    "실기: 100점 만점에 60점 이상",
			},
		})
	}

	e.logger.Printf("[CERT] recommendation done, %d certifications", len(certs))
	return certs
}

func matchQualification(quals []qnet.Qualification, recName string) (qnet.Qualification, bool) {
	recName = strings.TrimSpace(recName)
	if recName == "" {
		return qnet.Qualification{}, false
	}
	for _, q := range quals {
		name := strings.TrimSpace(q.Name)
		if name == "" {
			continue
		}
		if name == recName || strings.Contains(name, recName) || strings.Contains(recName, name) {
			return q, true
		}
	}
	return qnet.Qualification{}, false
}

// certScheduleText resolves the exam date line for one certification. The
// yearly calendar is tried first; on a miss the per-qualification lookup
// answers, since calendar rows describe series rather than single
// qualifications.
func (e *Engine) certScheduleText(ctx context.Context, name string, schedules []qnet.ExamSchedule) string {
	if s := findCertExamSchedule(schedules, name); s != "" {
		return s
	}
	if e.adapters.FetchQualSchedule != nil {
		rounds, err := e.adapters.FetchQualSchedule(ctx, name)
		if err != nil {
			e.logger.Printf("[CERT] schedule lookup failed for %s: %v", name, err)
		}
		for _, exam := range rounds {
			date := strings.TrimSpace(exam.DocExamStart)
			if date == "" {
				date = strings.TrimSpace(exam.PracExamStart)
			}
			if date != "" {
				return "시험일정: " + date
			}
		}
	}
	return "시험일정: Q-Net 공식 사이트 확인"
}

func findCertExamSchedule(schedules []qnet.ExamSchedule, qualName string) string {
	qualLower := strings.ToLower(qualName)
	for _, exam := range schedules {
		examName := strings.TrimSpace(exam.Description)
		if examName == "" {
			continue
		}
		examLower := strings.ToLower(examName)
		matches := strings.Contains(qualLower, examLower) ||
			strings.Contains(examLower, qualLower) ||
			((strings.Contains(examName, "기사") || strings.Contains(examName, "산업기사")) && strings.Contains(qualLower, "기사"))
		if !matches {
			continue
		}
		date := strings.TrimSpace(exam.DocExamStart)
		if date == "" {
			date = strings.TrimSpace(exam.PracExamStart)
		}
		if date != "" {
			return "시험일정: " + date
		}
	}
	return ""
}

// certsFromModelKnowledge recommends from the model's own knowledge of real
// national qualifications when the registry is unreachable.
func (e *Engine) certsFromModelKnowledge(ctx context.Context, req CertRequest) []Certification {
	if e.provider == nil {
		return nil
	}

	var analysisParts []string
	for _, a := range req.Analysis {
		row := strings.TrimSpace(strings.Join([]string{a.Strengths, a.InterestKeywords, a.CareerValues}, " "))
		if row != "" {
			analysisParts = append(analysisParts, row)
		}
	}
	orNone := func(s string) string {
		if s == "" {
			return "없음"
		}
		return s
	}

	jobSection := ""
	if req.JobInfo != nil {
		jobSection = fmt.Sprintf(`[직무 정보 - 시장 요구사항]
- 직무: %s
- 채용 요구사항·역량: %s
- 최신 트렌드: %s
- 필수 스킬: %s

`, req.JobInfo.JobTitle, orNone(req.JobInfo.Requirements), orNone(req.JobInfo.Trends), orNone(req.JobInfo.Skills))
	}

	userPrompt := fmt.Sprintf(`[내담자 정보 - DB·상담 기반]
- 목표 직무: %s
- 전공: %s
- 상담 분석 (강점, 관심, 가치관): %s
%s위 정보(직무정보 + DB·상담)를 종합하여 목표 직무에 도움이 되는 한국 국가기술자격·민간자격 3~5개를 맞춤형으로 추천해라. JSON만 출력.`,
		orNone(req.TargetJob), orNone(req.Major), orNone(strings.Join(analysisParts, " ")), jobSection)

	raw, err := e.provider.Chat(ctx, []llm.Message{
		{Role: "system", Content: CertKnowledgeFallbackSystemPrompt},
		{Role: "user", Content: userPrompt},
	},
		llm.WithModel(e.model),
		llm.WithTemperature(0.3),
		llm.WithJSONOutput(),
	)
	if err != nil {
		e.logger.Printf("[CERT] knowledge-only recommendation failed: %v", err)
		return nil
	}

	var parsed certRecommendationResponse
	if err := json.Unmarshal([]byte(stripCodeFences(raw)), &parsed); err != nil {
		e.logger.Printf("[CERT] knowledge-only output parse failed: %v", err)
		return nil
	}

	recs := parsed.Recommended
	if len(recs) > 5 {
		recs = recs[:5]
	}
	certs := make([]Certification, 0, len(recs))
	for i, rec := range recs {
		name := strings.TrimSpace(rec.QualName)
		if name == "" {
			continue
		}
		description := rec.Reason
		if description == "" {
			description = fmt.Sprintf("%s에 관한 국가기술자격증입니다.", name)
		}
		certs = append(certs, Certification{
			Type:   "자격증",
			Name:   name,
			Status: statusForScore(rec.RelevanceScore),
			Color:  certColors[i%len(certColors)],
			Details: &CertDetails{
				Description:  description,
				ExamSchedule: "시험일정: Q-Net(www.q-net.or.kr) 공식 사이트 확인",
				Difficulty:   "난이도: 중",
				Written:      "필기: 100점 만점에 60점 이상",
				Practical:    "실기: 100점 만점에 60점 이상",
			},
		})
	}
	return certs
}

func (e *Engine) keywordFallback(req CertRequest, quals []qnet.Qualification, schedules []qnet.ExamSchedule) []Certification {
	extracted := ExtractKeywordsFromAnalysis(req.Analysis)
	return FilterRelevantQualifications(quals, schedules, req.TargetJob, req.Major, extracted)
}
