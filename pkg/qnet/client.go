package qnet

import (
	"context"
	"encoding/xml"
	"fmt"
	"io"
	"log"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/patrickmn/go-cache"
)

const (
	listURL     = "https://openapi.q-net.or.kr/api/service/rest/InquiryListNationalQualifcationSVC/getList"
	scheduleURL = "https://openapi.q-net.or.kr/api/service/rest/InquiryTestInformationNTQSVC"

	cacheTTL = 7 * 24 * time.Hour

	qualificationsCacheKey = "qnet:qualifications"
	scheduleCacheKey       = "qnet:exam-schedule"
)

// Qualification is one row of the national qualification registry.
type Qualification struct {
	Code        string `xml:"jmcd" json:"code"`
	Name        string `xml:"jmfldnm" json:"name"`
	Series      string `xml:"seriesnm" json:"series"`
	Field       string `xml:"obligfldnm" json:"field"`
	MiddleField string `xml:"mdobligfldnm" json:"middleField"`
}

// Description is the obligation field pair, the closest thing the registry
// has to a free-text summary.
func (q Qualification) Description() string {
	if q.Field == "" {
		return q.MiddleField
	}
	if q.MiddleField == "" {
		return q.Field
	}
	return q.Field + " " + q.MiddleField
}

// ExamSchedule is one exam round published by the HRD Korea test calendar.
type ExamSchedule struct {
	QualClass     string `xml:"qualgbnm" json:"qualClass"`
	Description   string `xml:"description" json:"description"`
	ImplYear      string `xml:"implYy" json:"implYear"`
	ImplSeq       string `xml:"implSeq" json:"implSeq"`
	DocRegStart   string `xml:"docRegStartDt" json:"docRegStart"`
	DocRegEnd     string `xml:"docRegEndDt" json:"docRegEnd"`
	DocExamStart  string `xml:"docExamStartDt" json:"docExamStart"`
	DocExamEnd    string `xml:"docExamEndDt" json:"docExamEnd"`
	PracExamStart string `xml:"pracExamStartDt" json:"pracExamStart"`
	PracExamEnd   string `xml:"pracExamEndDt" json:"pracExamEnd"`
}

type Client struct {
	ServiceKey string
	ListURL    string
	SchedURL   string
	HTTPClient *http.Client

	cache  *cache.Cache
	logger *log.Logger
}

func NewClient(serviceKey string, logger *log.Logger) *Client {
	if logger == nil {
		logger = log.Default()
	}
	return &Client{
		ServiceKey: serviceKey,
		ListURL:    listURL,
		SchedURL:   scheduleURL,
		HTTPClient: &http.Client{Timeout: 30 * time.Second},
		cache:      cache.New(cacheTTL, time.Hour),
		logger:     logger,
	}
}

// --- XML envelopes ---

type listResponse struct {
	XMLName xml.Name `xml:"response"`
	Header  struct {
		ResultCode string `xml:"resultCode"`
		ResultMsg  string `xml:"resultMsg"`
	} `xml:"header"`
	Body struct {
		Items struct {
			Item []Qualification `xml:"item"`
		} `xml:"items"`
		TotalCount int `xml:"totalCount"`
	} `xml:"body"`
}

type scheduleResponse struct {
	XMLName xml.Name `xml:"response"`
	Header  struct {
		ResultCode string `xml:"resultCode"`
		ResultMsg  string `xml:"resultMsg"`
	} `xml:"header"`
	Body struct {
		Items struct {
			Item []ExamSchedule `xml:"item"`
		} `xml:"items"`
	} `xml:"body"`
}

func (c *Client) fetchXML(ctx context.Context, rawURL string, params map[string]string, out any) error {
	q := url.Values{}
	for k, v := range params {
		q.Set(k, v)
	}
	q.Set("serviceKey", c.ServiceKey)

	req, err := http.NewRequestWithContext(ctx, "GET", rawURL+"?"+q.Encode(), nil)
	if err != nil {
		return fmt.Errorf("create request: %w", err)
	}

	resp, err := c.HTTPClient.Do(req)
	if err != nil {
		return fmt.Errorf("qnet request failed: %w", err)
	}
	defer resp.Body.Close()

	bodyBytes, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("read response: %w", err)
	}
	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("qnet error: status %d, body: %s", resp.StatusCode, string(bodyBytes[:min(len(bodyBytes), 500)]))
	}

	if err := xml.Unmarshal(bodyBytes, out); err != nil {
		return fmt.Errorf("unmarshal response: %w", err)
	}
	return nil
}

// GetAllQualifications pages through the registry list, 100 rows per page and
// at most 5 pages, stopping early on a short page. Results are cached for
// seven days.
func (c *Client) GetAllQualifications(ctx context.Context) ([]Qualification, error) {
	if cached, ok := c.cache.Get(qualificationsCacheKey); ok {
		quals := cached.([]Qualification)
		c.logger.Printf("[QNET] qualification list from cache: %d rows", len(quals))
		return quals, nil
	}
	if c.ServiceKey == "" {
		c.logger.Printf("[QNET] service key missing, skipping qualification list")
		return nil, nil
	}

	const (
		pageSize = 100
		maxPages = 5
	)

	var all []Qualification
	for page := 1; page <= maxPages; page++ {
		var parsed listResponse
		err := c.fetchXML(ctx, c.ListURL, map[string]string{
			"pageNo":    strconv.Itoa(page),
			"numOfRows": strconv.Itoa(pageSize),
		}, &parsed)
		if err != nil {
			return nil, fmt.Errorf("qualification list page %d: %w", page, err)
		}
		items := parsed.Body.Items.Item
		if len(items) == 0 {
			if parsed.Header.ResultMsg != "" {
				c.logger.Printf("[QNET] empty page %d: resultCode=%s resultMsg=%s",
					page, parsed.Header.ResultCode, parsed.Header.ResultMsg)
			}
			break
		}
		all = append(all, items...)
		if len(items) < pageSize {
			break
		}
	}

	c.logger.Printf("[QNET] qualification list fetched: %d rows", len(all))
	if len(all) > 0 {
		c.cache.Set(qualificationsCacheKey, all, cacheTTL)
	}
	return all, nil
}

// GetExamSchedules merges engineer (getEList) and professional-engineer
// (getPEList) calendars. A failure on either endpoint degrades to the rows
// of the other. Cached for seven days.
func (c *Client) GetExamSchedules(ctx context.Context) ([]ExamSchedule, error) {
	if cached, ok := c.cache.Get(scheduleCacheKey); ok {
		schedules := cached.([]ExamSchedule)
		c.logger.Printf("[QNET] exam schedule from cache: %d rows", len(schedules))
		return schedules, nil
	}
	if c.ServiceKey == "" {
		c.logger.Printf("[QNET] service key missing, skipping exam schedule")
		return nil, nil
	}

	year := strconv.Itoa(time.Now().Year())
	var all []ExamSchedule
	for _, path := range []string{"/getEList", "/getPEList"} {
		var parsed scheduleResponse
		err := c.fetchXML(ctx, c.SchedURL+path, map[string]string{"implYy": year}, &parsed)
		if err != nil {
			c.logger.Printf("[QNET] schedule fetch %s failed: %v", path, err)
			continue
		}
		all = append(all, parsed.Body.Items.Item...)
	}

	c.logger.Printf("[QNET] exam schedule fetched: %d rows", len(all))
	if len(all) > 0 {
		c.cache.Set(scheduleCacheKey, all, cacheTTL)
	}
	return all, nil
}

// GetSchedulesForQualification returns the exam rounds of one qualification.
// Names in the static code map are queried directly by jmCd; anything else
// falls back to filtering the yearly calendar by its description.
func (c *Client) GetSchedulesForQualification(ctx context.Context, name string) ([]ExamSchedule, error) {
	code, ok := FindCode(name)
	if !ok || code == "" {
		all, err := c.GetExamSchedules(ctx)
		if err != nil {
			return nil, err
		}
		clean := strings.ReplaceAll(name, " ", "")
		var matched []ExamSchedule
		for _, s := range all {
			desc := strings.TrimSpace(s.Description)
			if desc != "" && strings.Contains(clean, desc) {
				matched = append(matched, s)
			}
		}
		return matched, nil
	}

	cacheKey := scheduleCacheKey + ":" + code
	if cached, ok := c.cache.Get(cacheKey); ok {
		return cached.([]ExamSchedule), nil
	}
	if c.ServiceKey == "" {
		c.logger.Printf("[QNET] service key missing, skipping schedule for %s", name)
		return nil, nil
	}

	var parsed scheduleResponse
	err := c.fetchXML(ctx, c.SchedURL+"/getEList", map[string]string{
		"implYy": strconv.Itoa(time.Now().Year()),
		"jmCd":   code,
	}, &parsed)
	if err != nil {
		return nil, fmt.Errorf("schedule for %s (jmCd %s): %w", name, code, err)
	}

	rounds := parsed.Body.Items.Item
	c.logger.Printf("[QNET] schedule for %s (jmCd %s): %d rounds", name, code, len(rounds))
	if len(rounds) > 0 {
		c.cache.Set(cacheKey, rounds, cacheTTL)
	}
	return rounds, nil
}
