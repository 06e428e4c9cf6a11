package websearch

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"golang.org/x/sync/errgroup"
)

// CompanyResult aggregates web intel about a single employer.
type CompanyResult struct {
	CompanyName     string   `json:"companyName"`
	RecruitmentInfo string   `json:"recruitmentInfo"`
	TechStack       string   `json:"techStack"`
	TalentProfile   string   `json:"talentProfile"`
	Sources         []string `json:"sources"`
}

// JobResult aggregates web intel about a job family.
type JobResult struct {
	JobTitle     string   `json:"jobTitle"`
	Requirements string   `json:"requirements"`
	Trends       string   `json:"trends"`
	Skills       string   `json:"skills"`
	Sources      []string `json:"sources"`
}

type TavilyClient struct {
	BaseURL string
	APIKey  string
	Client  *http.Client
}

func NewTavilyClient(apiKey string) *TavilyClient {
	return &TavilyClient{
		BaseURL: "https://api.tavily.com",
		APIKey:  apiKey,
		Client: &http.Client{
			Timeout: 15 * time.Second,
		},
	}
}

// --- Request/Response structs (Internal to this package) ---

type searchRequest struct {
	APIKey            string `json:"api_key"`
	Query             string `json:"query"`
	SearchDepth       string `json:"search_depth"`
	IncludeAnswer     bool   `json:"include_answer"`
	IncludeRawContent bool   `json:"include_raw_content"`
	MaxResults        int    `json:"max_results"`
}

type searchResult struct {
	Title   string `json:"title"`
	URL     string `json:"url"`
	Content string `json:"content"`
}

type searchResponse struct {
	Answer  string         `json:"answer"`
	Results []searchResult `json:"results"`
}

func (t *TavilyClient) search(ctx context.Context, query string, maxResults int) ([]searchResult, error) {
	reqPayload := searchRequest{
		APIKey:            t.APIKey,
		Query:             query,
		SearchDepth:       "basic",
		IncludeAnswer:     true,
		IncludeRawContent: false,
		MaxResults:        maxResults,
	}

	payloadBytes, err := json.Marshal(reqPayload)
	if err != nil {
		return nil, fmt.Errorf("marshal request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, "POST", t.BaseURL+"/search", bytes.NewBuffer(payloadBytes))
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := t.Client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("tavily request failed: %w", err)
	}
	defer resp.Body.Close()

	bodyBytes, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("read response: %w", err)
	}

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("tavily error: status %d, body: %s", resp.StatusCode, string(bodyBytes))
	}

	var searchResp searchResponse
	if err := json.Unmarshal(bodyBytes, &searchResp); err != nil {
		return nil, fmt.Errorf("unmarshal response: %w", err)
	}

	results := searchResp.Results
	if strings.TrimSpace(searchResp.Answer) != "" {
		// The synthesized answer is usually the densest snippet, keep it first.
		results = append([]searchResult{{Title: "검색 요약", Content: searchResp.Answer}}, results...)
	}

	return results, nil
}

// SearchCompanyInfo runs three recruiting-oriented queries for the company and
// buckets the snippets into recruiting, tech stack and talent profile fields.
func (t *TavilyClient) SearchCompanyInfo(ctx context.Context, companyName string) (*CompanyResult, error) {
	queries := []string{
		companyName + " 채용 공고 인재상",
		companyName + " 기술 스택 개발 환경",
		companyName + " 기업 문화 인재상",
	}

	buckets := make([][]searchResult, len(queries))
	g, gctx := errgroup.WithContext(ctx)
	for i, q := range queries {
		g.Go(func() error {
			results, err := t.search(gctx, q, 3)
			if err != nil {
				return err
			}
			buckets[i] = results
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, fmt.Errorf("company search %q: %w", companyName, err)
	}

	result := &CompanyResult{CompanyName: companyName}
	for _, bucket := range buckets {
		for _, r := range bucket {
			text := strings.TrimSpace(r.Title + " " + r.Content)
			if text == "" {
				continue
			}
			switch {
			case containsAny(text, "기술", "스택", "개발 환경", "tech"):
				result.TechStack = appendSnippet(result.TechStack, text)
			case containsAny(text, "인재상", "문화", "가치관"):
				result.TalentProfile = appendSnippet(result.TalentProfile, text)
			default:
				result.RecruitmentInfo = appendSnippet(result.RecruitmentInfo, text)
			}
			if r.URL != "" && len(result.Sources) < 5 {
				result.Sources = append(result.Sources, r.URL)
			}
		}
	}

	return result, nil
}

// SearchJobInfo runs three queries about the job family and splits the
// snippets into requirements, trends and skills.
func (t *TavilyClient) SearchJobInfo(ctx context.Context, jobTitle string) (*JobResult, error) {
	queries := []string{
		jobTitle + " 채용 요구사항 역량",
		jobTitle + " 최신 트렌드 2025 2026",
		jobTitle + " 필수 스킬 기술",
	}

	buckets := make([][]searchResult, len(queries))
	g, gctx := errgroup.WithContext(ctx)
	for i, q := range queries {
		g.Go(func() error {
			results, err := t.search(gctx, q, 3)
			if err != nil {
				return err
			}
			buckets[i] = results
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, fmt.Errorf("job search %q: %w", jobTitle, err)
	}

	result := &JobResult{JobTitle: jobTitle}
	fields := []*string{&result.Requirements, &result.Trends, &result.Skills}
	for i, bucket := range buckets {
		for _, r := range bucket {
			text := strings.TrimSpace(r.Title + " " + r.Content)
			if text == "" {
				continue
			}
			*fields[i] = appendSnippet(*fields[i], text)
			if r.URL != "" && len(result.Sources) < 5 {
				result.Sources = append(result.Sources, r.URL)
			}
		}
	}

	return result, nil
}

const snippetLimit = 1000

func appendSnippet(existing, text string) string {
	if existing == "" {
		return truncate(text, snippetLimit)
	}
	if len(existing) >= snippetLimit {
		return existing
	}
	return truncate(existing+"\n"+text, snippetLimit)
}

func truncate(s string, limit int) string {
	runes := []rune(s)
	if len(runes) <= limit {
		return s
	}
	return string(runes[:limit])
}

func containsAny(s string, subs ...string) bool {
	for _, sub := range subs {
		if strings.Contains(s, sub) {
			return true
		}
	}
	return false
}
